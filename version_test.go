package tagsum

import "testing"

func TestParseVersionKey(t *testing.T) {
	t.Parallel()

	versioned := []string{"1", "1.2", "1.2.3", "2.0", "1.3.0-alpha.1", "10.20.30"}
	plain := []string{"", "latest", "v1", "v2", "v1.2.3", "stable", "alpine", "edge"}

	for _, s := range versioned {
		if k := ParseVersionKey(s); !k.Versioned() {
			t.Fatalf("want %q versioned", s)
		}
	}

	for _, s := range plain {
		if k := ParseVersionKey(s); k.Versioned() {
			t.Fatalf("want %q unversioned", s)
		}
	}
}

func TestVersionKeyCompare_Precedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.10", -1}, // numeric, not lexical
		{"1.10.0", "1.9.9", 1},
		{"2.0.0", "2.0.0", 0},
		{"1.2", "1.2.3", -1},      // shorthand fills with zeros
		{"1.2", "1.2.0", -1},      // equal versions, name breaks the tie
		{"1.2.3-rc.1", "1.2.3", -1},
		{"latest", "edge", 1},  // both unversioned: lexical
		{"1.2.3", "latest", -1}, // either unversioned: lexical by name
		{"9", "alpine", -1},
	}

	for _, c := range cases {
		got := ParseVersionKey(c.a).Compare(ParseVersionKey(c.b))
		if sign(got) != c.want {
			t.Fatalf("Compare(%q, %q) = %d; want sign %d", c.a, c.b, got, c.want)
		}
	}
}

// Exactly one of a<b, a==b, a>b must hold for any pair, and the order must
// flip with its operands.
func TestVersionKeyCompare_Totality(t *testing.T) {
	t.Parallel()

	names := []string{"1", "1.2", "1.2.0", "1.2.3", "2.0", "latest", "v1", "", "1.2.3-rc.1"}

	for _, a := range names {
		for _, b := range names {
			ka, kb := ParseVersionKey(a), ParseVersionKey(b)

			ab, ba := sign(ka.Compare(kb)), sign(kb.Compare(ka))
			if ab != -ba {
				t.Fatalf("Compare(%q, %q)=%d but Compare(%q, %q)=%d", a, b, ab, b, a, ba)
			}

			if a == b && ab != 0 {
				t.Fatalf("Compare(%q, %q) = %d; want 0", a, b, ab)
			}
		}
	}
}

func TestCompareOptional_AbsentRanksLower(t *testing.T) {
	t.Parallel()

	k := ParseVersionKey("1.0.0")

	if got := compareOptional(&k, nil, VersionKey.Compare); got <= 0 {
		t.Fatalf("present vs absent = %d; want > 0", got)
	}

	if got := compareOptional[VersionKey](nil, &k, VersionKey.Compare); got >= 0 {
		t.Fatalf("absent vs present = %d; want < 0", got)
	}

	if got := compareOptional[VersionKey](nil, nil, VersionKey.Compare); got != 0 {
		t.Fatalf("absent vs absent = %d; want 0", got)
	}
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
