package tagsum

import (
	"reflect"
	"testing"
)

func summarizeFixture() []Record {
	arm := Platform{Architecture: "arm64", OS: "linux", Variant: "v8"}

	recs := []Record{
		rec("1.2", "sha256:aa", ts("2020-01-01T00:00:00Z")),
		rec("1.2.0", "sha256:aa", ts("2020-01-02T00:00:00Z")),
		rec("latest", "sha256:aa", ts("2020-01-03T00:00:00Z")),
		rec("1.1.0", "sha256:bb", ts("2019-06-01T00:00:00Z")),
	}

	other := rec("1.2.0", "sha256:cc", ts("2020-01-02T00:00:00Z"))
	other.Platform = arm

	return append(recs, other)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	got, err := Summarize(summarizeFixture(), Options{Architecture: "amd64"})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d platform groups; want 1", len(got))
	}

	g := got[0]
	if g.Platform != linuxAmd64 {
		t.Fatalf("platform %v; want %v", g.Platform, linuxAmd64)
	}

	wantTags := [][]string{
		{"1.2", "1.2.0", "latest"},
		{"1.1.0"},
	}
	if len(g.Rows) != len(wantTags) {
		t.Fatalf("got %d rows; want %d", len(g.Rows), len(wantTags))
	}
	for i, row := range g.Rows {
		if !reflect.DeepEqual(row.Tags, wantTags[i]) {
			t.Fatalf("row %d tags %v; want %v", i, row.Tags, wantTags[i])
		}
	}

	if !g.Rows[0].LastUpdated.Equal(ts("2020-01-03T00:00:00Z")) {
		t.Fatalf("row 0 timestamp %v", g.Rows[0].LastUpdated)
	}

	if want := "1.2, 1.2.0, latest"; g.Rows[0].TagList() != want {
		t.Fatalf("TagList %q; want %q", g.Rows[0].TagList(), want)
	}
}

func TestSummarize_AllPlatforms(t *testing.T) {
	t.Parallel()

	got, err := Summarize(summarizeFixture(), Options{})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d platform groups; want 2", len(got))
	}
}

func TestSummarize_Limit(t *testing.T) {
	t.Parallel()

	got, err := Summarize(summarizeFixture(), Options{Architecture: "amd64", Limit: 1})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if rows := got[0].Rows; len(rows) != 1 || !reflect.DeepEqual(rows[0].Tags, []string{"1.2", "1.2.0", "latest"}) {
		t.Fatalf("limited rows %v", rows)
	}
}

func TestSummarize_ActiveOnly(t *testing.T) {
	t.Parallel()

	inactive := rec("0.9", "sha256:ee", ts("2018-01-01T00:00:00Z"))
	inactive.Status = "inactive"
	active := rec("1.0", "sha256:ff", ts("2020-01-01T00:00:00Z"))
	active.Status = "active"

	got, err := Summarize([]Record{inactive, active}, Options{Architecture: "amd64", ActiveOnly: true})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if len(got) != 1 || len(got[0].Rows) != 1 || !reflect.DeepEqual(got[0].Rows[0].Tags, []string{"1.0"}) {
		t.Fatalf("active-only result %v", got)
	}
}

func TestOptionsKeep_EmptyStatusKept(t *testing.T) {
	t.Parallel()

	opt := Options{ActiveOnly: true}
	if !opt.keep(rec("1.0", "sha256:aa", ts("2020-01-01T00:00:00Z"))) {
		t.Fatal("record without status should be kept")
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opt := DefaultOptions()
	if opt.Architecture != "amd64" || opt.OS != "" || opt.ActiveOnly || opt.Limit != 0 {
		t.Fatalf("unexpected defaults: %+v", opt)
	}
}
