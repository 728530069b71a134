package tagsum

import (
	"strings"

	"github.com/woozymasta/semver"
)

// VersionKey is a tag name with its parsed version, when the name is one.
// The name is the identity: two keys are equal iff their names are equal,
// whether or not either parsed.
type VersionKey struct {
	// Name is the original tag string.
	Name string

	ver semver.Semver
	ok  bool
}

// ParseVersionKey builds a key from a tag name. A name that is not a valid
// version is not an error: the key stays usable for grouping and sorting,
// it just falls back to lexical comparison.
//
// Only names starting with a digit are considered versions. Shorthands X and
// X.Y are accepted and compare as X.0.0 / X.Y.0.
func ParseVersionKey(name string) VersionKey {
	if !digitLead(name) {
		return VersionKey{Name: name}
	}

	v, ok := semver.Parse(name)
	if !ok || !v.IsValid() {
		return VersionKey{Name: name}
	}

	// keep original for tiebreaks inside the semver comparator
	v.Original = name

	return VersionKey{Name: name, ver: v, ok: true}
}

// Versioned reports whether the name parsed as a version.
func (k VersionKey) Versioned() bool {
	return k.ok
}

// Compare orders two keys: version precedence first when both parsed,
// name as tiebreak; lexical by name when either did not parse.
func (k VersionKey) Compare(o VersionKey) int {
	if !k.ok || !o.ok {
		return strings.Compare(k.Name, o.Name)
	}

	if c := k.ver.Compare(o.ver); c != 0 {
		return c
	}

	return strings.Compare(k.Name, o.Name)
}

// digitLead reports whether s starts with an ASCII digit. Tags like "v1" or
// "latest" are never treated as versions, matching registry conventions
// where versioned tags are bare numbers.
func digitLead(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
