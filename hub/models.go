// Package hub fetches tag metadata from the Docker Hub v2 API and flattens
// it into the records the core operates on.
package hub

import "time"

// Tag is one repository tag as reported by the tags endpoint.
type Tag struct {
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	LastUpdated *time.Time `json:"last_updated"`
	Images      []Image    `json:"images"`
}

// Image is one platform variant under a tag.
type Image struct {
	Architecture string     `json:"architecture"`
	Features     string     `json:"features"`
	Variant      string     `json:"variant"`
	OS           string     `json:"os"`
	OSFeatures   string     `json:"os_features"`
	OSVersion    string     `json:"os_version"`
	Digest       string     `json:"digest"`
	Status       string     `json:"status"`
	LastPushed   *time.Time `json:"last_pushed"`
}

// TagsResponse is one page of the paginated tags listing.
type TagsResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Tag   `json:"results"`
}
