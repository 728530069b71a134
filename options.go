package tagsum

// Options configures Summarize.
type Options struct {
	// Architecture keeps only platform groups with this architecture.
	// Empty means all architectures.
	Architecture string

	// OS keeps only platform groups with this operating system.
	// Empty means all.
	OS string

	// ActiveOnly drops records whose tag status is not "active" before
	// grouping. Records without a status are kept.
	ActiveOnly bool

	// Limit caps the number of images reported per platform (<=0 = all).
	Limit int
}

// DefaultOptions returns a practical preset for a quick repository summary:
//
//   - Architecture: "amd64"  // the common case
//   - OS:           ""       // any
//   - ActiveOnly:   false    // keep everything the feed reports
//   - Limit:        0        // unlimited
func DefaultOptions() Options {
	return Options{
		Architecture: "amd64",
	}
}

// keep reports whether a record passes the pre-grouping filters.
func (o Options) keep(r Record) bool {
	if o.Architecture != "" && r.Platform.Architecture != o.Architecture {
		return false
	}

	if o.OS != "" && r.Platform.OS != o.OS {
		return false
	}

	if o.ActiveOnly && r.Status != "" && toTok(r.Status) != "active" {
		return false
	}

	return true
}
