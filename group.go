package tagsum

import (
	"sort"
	"time"
)

// Record is one flat (tag, platform, digest, timestamp) observation, as
// handed over by the fetch collaborator. One registry tag yields one Record
// per platform variant.
type Record struct {
	// Tag is the registry tag name owning this variant.
	Tag string

	// Status is the tag status as reported by the registry ("active", ...).
	Status string

	Platform Platform

	// Digest is the content hash of the variant; the grouping identity
	// together with Platform.
	Digest string

	// TagUpdated is the tag-level last-updated timestamp; zero when the
	// feed omitted it.
	TagUpdated time.Time

	// Pushed is the variant-level push timestamp; zero when omitted.
	Pushed time.Time
}

// lastUpdated is the record's combined timestamp: the later of the tag-level
// and variant-level ones. Zero values sort oldest and never win.
func (r Record) lastUpdated() time.Time {
	if r.Pushed.After(r.TagUpdated) {
		return r.Pushed
	}

	return r.TagUpdated
}

// Grouped maps each platform to its images, keyed by digest.
type Grouped map[Platform]map[string]*Image

// Group folds a flat record slice into Platform -> digest -> Image.
// Every record lands somewhere: records sharing (platform, digest) always
// merge, never split, and nothing is dropped. The only possible error is a
// merge mismatch, which cannot occur for keys derived here and would mean
// a defect rather than bad input.
func Group(recs []Record) (Grouped, error) {
	out := make(Grouped)

	for _, r := range recs {
		byDigest, ok := out[r.Platform]
		if !ok {
			byDigest = make(map[string]*Image)
			out[r.Platform] = byDigest
		}

		im, ok := byDigest[r.Digest]
		if !ok {
			byDigest[r.Digest] = newImage(r)
			continue
		}

		if err := im.Merge(r); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Platforms returns the platform keys in a stable display order.
func (g Grouped) Platforms() []Platform {
	out := make([]Platform, 0, len(g))
	for p := range g {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return comparePlatforms(out[i], out[j]) < 0
	})

	return out
}

// Images returns one platform's images, most relevant first.
func (g Grouped) Images(p Platform) []*Image {
	byDigest := g[p]
	if len(byDigest) == 0 {
		return nil
	}

	out := make([]*Image, 0, len(byDigest))
	for _, im := range byDigest {
		out = append(out, im)
	}

	SortImages(out)

	return out
}
