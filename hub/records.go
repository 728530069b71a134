package hub

import (
	"time"

	"github.com/containerkit/tagsum"
)

// Records flattens fetched tags into one core record per platform variant.
// Absent timestamps become the zero time, which sorts oldest and can never
// win a freshness comparison.
func Records(tags []Tag) []tagsum.Record {
	out := make([]tagsum.Record, 0, len(tags))

	for _, tag := range tags {
		updated := tsOrEpoch(tag.LastUpdated)

		for _, img := range tag.Images {
			out = append(out, tagsum.Record{
				Tag:    tag.Name,
				Status: tag.Status,
				Platform: tagsum.Platform{
					Architecture: img.Architecture,
					Features:     img.Features,
					Variant:      img.Variant,
					OS:           img.OS,
					OSFeatures:   img.OSFeatures,
					OSVersion:    img.OSVersion,
				},
				Digest:     img.Digest,
				TagUpdated: updated,
				Pushed:     tsOrEpoch(img.LastPushed),
			})
		}
	}

	return out
}

func tsOrEpoch(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}
