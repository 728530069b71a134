package tagsum

import (
	"errors"
	"fmt"
	"time"
)

// ErrMergeMismatch reports an attempt to merge a record into an image whose
// platform or digest differs. The grouping key is derived from exactly those
// fields, so hitting this is a defect in the caller, not a data condition.
var ErrMergeMismatch = errors.New("tagsum: record does not belong to image")

// Image is the aggregate of every record sharing one platform and digest.
// Tags are deduplicated by name and kept ranked, dominant first.
type Image struct {
	// Platform and Digest are constant after creation.
	Platform Platform
	Digest   string

	// Tags holds the ranked tag set; Tags[0] is the dominant tag.
	Tags []VersionKey

	// LastUpdated is the freshest timestamp seen across contributing records.
	LastUpdated time.Time
}

// newImage seeds an image from the first record of a (platform, digest) pair.
func newImage(r Record) *Image {
	return &Image{
		Platform:    r.Platform,
		Digest:      r.Digest,
		Tags:        []VersionKey{ParseVersionKey(r.Tag)},
		LastUpdated: r.lastUpdated(),
	}
}

// Merge folds one more record into the image: the tag is added unless the
// name is already present, the ranking is recomputed, and LastUpdated
// advances to the max of the current value and the record's timestamps.
//
// A record carrying a different platform or digest returns ErrMergeMismatch
// and leaves the image untouched.
func (im *Image) Merge(r Record) error {
	if r.Digest != im.Digest {
		return fmt.Errorf("%w: digest %q, image has %q", ErrMergeMismatch, r.Digest, im.Digest)
	}

	if r.Platform != im.Platform {
		return fmt.Errorf("%w: platform %s, image has %s", ErrMergeMismatch, r.Platform, im.Platform)
	}

	if !im.hasTag(r.Tag) {
		im.Tags = append(im.Tags, ParseVersionKey(r.Tag))
		im.Tags = rankTags(im.Tags)
	}

	if ts := r.lastUpdated(); ts.After(im.LastUpdated) {
		im.LastUpdated = ts
	}

	return nil
}

func (im *Image) hasTag(name string) bool {
	for _, t := range im.Tags {
		if t.Name == name {
			return true
		}
	}

	return false
}

// DominantTag returns the tag chosen to represent this image, or nil when
// the tag set is empty.
func (im *Image) DominantTag() *VersionKey {
	if len(im.Tags) == 0 {
		return nil
	}

	return &im.Tags[0]
}

// TagNames returns the ranked tag names, dominant first.
func (im *Image) TagNames() []string {
	out := make([]string, len(im.Tags))
	for i, t := range im.Tags {
		out[i] = t.Name
	}

	return out
}
