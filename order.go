package tagsum

import "sort"

// CompareImages is the display order over merged images within one platform
// group. A nil image ranks below any image. An image with a dominant tag
// ranks above one without, regardless of timestamps; otherwise the dominant
// tags decide and the freshest timestamp breaks ties. Two images without
// dominant tags order by timestamp alone.
func CompareImages(a, b *Image) int {
	return compareOptional(a, b, func(x, y Image) int {
		at, bt := x.DominantTag(), y.DominantTag()
		if at == nil && bt == nil {
			return x.LastUpdated.Compare(y.LastUpdated)
		}

		if c := compareOptional(at, bt, VersionKey.Compare); c != 0 {
			return c
		}

		return x.LastUpdated.Compare(y.LastUpdated)
	})
}

// SortImages orders images in place, most relevant first.
func SortImages(in []*Image) {
	if len(in) < 2 {
		return
	}

	sort.SliceStable(in, func(i, j int) bool {
		return CompareImages(in[i], in[j]) > 0
	})
}
