package tagsum

import (
	"sort"

	mmsemver "github.com/Masterminds/semver/v3"
)

// rankTags orders a deduplicated tag set so that the most representative tag
// leads. Versioned tags are scored by how many of the versioned tags fall
// inside their compatible-release range: a broad tag like "1.2" that covers
// "1.2.0" and "1.2.1" outscores any of the narrow ones. Unversioned tags
// always follow the versioned ones, sorted lexically.
//
// The result depends only on the set, never on insertion order.
func rankTags(keys []VersionKey) []VersionKey {
	if len(keys) < 2 {
		return keys
	}

	var plain []VersionKey
	voters := make([]voter, 0, len(keys))

	for _, k := range keys {
		if !k.Versioned() {
			plain = append(plain, k)
			continue
		}

		voters = append(voters, newVoter(k))
	}

	// Score every voter against the whole versioned subset. A tag whose
	// range could not be built scores zero; since a surviving tag always
	// satisfies its own range, zero is below every real score.
	for i := range voters {
		if voters[i].rng == nil {
			continue
		}

		for _, o := range voters {
			if o.ver != nil && voters[i].rng.Check(o.ver) {
				voters[i].count++
			}
		}
	}

	// Narrowest first: ascending count, longer names ahead within a score.
	sort.SliceStable(voters, func(i, j int) bool {
		a, b := voters[i], voters[j]
		if a.count != b.count {
			return a.count < b.count
		}

		if len(a.key.Name) != len(b.key.Name) {
			return len(a.key.Name) > len(b.key.Name)
		}

		return a.key.Compare(b.key) < 0
	})

	// Flip so the most general tag leads the final set.
	out := make([]VersionKey, 0, len(keys))
	for i := len(voters) - 1; i >= 0; i-- {
		out = append(out, voters[i].key)
	}

	sort.SliceStable(plain, func(i, j int) bool {
		return plain[i].Name < plain[j].Name
	})

	return append(out, plain...)
}

// voter is one versioned tag in the dominance vote: its strict version for
// being counted by others, and its pessimistic range for counting others.
// Either side may be nil when the constraint engine rejects the name; such
// a tag stays in the set but sits the vote out.
type voter struct {
	key   VersionKey
	ver   *mmsemver.Version
	rng   *mmsemver.Constraints
	count int
}

func newVoter(k VersionKey) voter {
	vt := voter{key: k}

	if v, err := mmsemver.NewVersion(k.Name); err == nil {
		vt.ver = v
	}

	// Pessimistic range: ~1.2 admits >=1.2.0 <1.3.0, ~1.2.3 admits
	// >=1.2.3 <1.3.0. Boundary semantics for prereleases and build
	// metadata are whatever the constraint engine defines.
	if c, err := mmsemver.NewConstraint("~" + k.Name); err == nil {
		vt.rng = c
	}

	return vt
}
