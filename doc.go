/*
Package tagsum groups and ranks container image tags so the most current
tag set for each platform can be reported.

The package is network-agnostic: it operates purely on a slice of flat
Record values (tag name, platform, digest, timestamps). Typical flow:

 1. Fetch raw tag metadata elsewhere (e.g., via the hub subpackage).
 2. Call Summarize with desired Options (platform filter, status filter, limit).
 3. Print the resulting per-platform rows.

Records sharing one platform and digest merge into a single Image: tags are
deduplicated by name, the freshest timestamp wins, and the tag set is ranked
so that the most general compatible-release tag leads. A tag like "1.2" that
covers "1.2.0" and "1.2.1" is considered more representative of the image
than any of the narrow tags, and becomes the dominant one for display.

Version notes:
  - Tags must start with a digit to take part in version ranking; anything
    else ("latest", "v1", "stable") sorts after versioned tags, lexically.
  - Shorthand tags X and X.Y are accepted and compare as X.0.0 / X.Y.0.
  - Compatible-release matching uses pessimistic ("~") range semantics.

Usage example:

	records := hub.Records(tags)

	groups, err := tagsum.Summarize(records, tagsum.Options{
		Architecture: "amd64",       // keep one architecture of interest
		OS:           "linux",       // optionally pin the OS too
		ActiveOnly:   true,          // drop inactive tags before grouping
		Limit:        10,            // at most 10 images per platform
	})
	if err != nil {
		return err
	}

	for _, g := range groups {
		fmt.Println(g.Platform)
		for _, row := range g.Rows {
			fmt.Println(row.LastUpdated.Format(time.RFC3339), row.TagList())
		}
	}
*/
package tagsum
