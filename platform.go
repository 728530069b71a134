package tagsum

import "strings"

// Platform identifies a hardware/OS variant of an image. It is a pure
// grouping key: two records belong to the same platform group iff every
// field matches, absent fields included. The struct is comparable and is
// used directly as a map key.
type Platform struct {
	Architecture string
	Features     string
	Variant      string
	OS           string
	OSFeatures   string
	OSVersion    string
}

// String renders the familiar os/arch[/variant] form, with the OS version
// in parentheses when present. Display only; never used for grouping.
func (p Platform) String() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.OS, p.Architecture, p.Variant} {
		if s != "" {
			parts = append(parts, s)
		}
	}

	out := strings.Join(parts, "/")
	if out == "" {
		out = "unknown"
	}

	if p.OSVersion != "" {
		out += " (" + p.OSVersion + ")"
	}

	return out
}

// comparePlatforms is a deterministic order for displaying platform groups.
// Field-by-field in declaration order; carries no semantic meaning.
func comparePlatforms(a, b Platform) int {
	for _, pair := range [...][2]string{
		{a.OS, b.OS},
		{a.Architecture, b.Architecture},
		{a.Variant, b.Variant},
		{a.OSVersion, b.OSVersion},
		{a.Features, b.Features},
		{a.OSFeatures, b.OSFeatures},
	} {
		if c := strings.Compare(pair[0], pair[1]); c != 0 {
			return c
		}
	}

	return 0
}
