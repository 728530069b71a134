package tagsum

import (
	"strings"
	"time"
)

// Row is one merged image ready for line-oriented display.
type Row struct {
	// LastUpdated is the image's freshest timestamp.
	LastUpdated time.Time

	// Tags holds the ranked tag names, dominant first.
	Tags []string
}

// TagList joins the ranked tag names for display.
func (r Row) TagList() string {
	return strings.Join(r.Tags, ", ")
}

// PlatformSummary is one platform group's ordered output.
type PlatformSummary struct {
	Platform Platform
	Rows     []Row
}

// Summarize filters, groups, ranks, and orders records in one call.
// Simple, readable pipeline:
//  1. drop records outside the requested platform/status filters
//  2. fold the rest into Platform -> digest -> Image
//  3. order each platform's images, most relevant first
//  4. render rows, capped by Limit per platform
//
// Platform groups come out in a stable display order. The only possible
// error is a merge-mismatch defect surfaced by the grouping step.
func Summarize(recs []Record, opt Options) ([]PlatformSummary, error) {
	kept := make([]Record, 0, len(recs))
	for _, r := range recs {
		if opt.keep(r) {
			kept = append(kept, r)
		}
	}

	grouped, err := Group(kept)
	if err != nil {
		return nil, err
	}

	out := make([]PlatformSummary, 0, len(grouped))
	for _, p := range grouped.Platforms() {
		images := grouped.Images(p)

		rows := make([]Row, 0, len(images))
		for _, im := range images {
			rows = append(rows, Row{
				LastUpdated: im.LastUpdated,
				Tags:        im.TagNames(),
			})
		}

		out = append(out, PlatformSummary{
			Platform: p,
			Rows:     capRows(rows, opt.Limit),
		})
	}

	return out, nil
}
