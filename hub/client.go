package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultBaseURL = "https://hub.docker.com"

	// pageSize is the largest page the tags endpoint serves.
	pageSize = 100

	// maxPages bounds pagination so a broken next-link chain cannot loop.
	maxPages = 1000
)

// Client is a minimal Docker Hub API client for listing repository tags.
// It is anonymous-only: the tags endpoint needs no authentication for
// public repositories.
type Client struct {
	http *http.Client
	base string
	log  *log.Logger
}

// NewClient returns a client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		base: defaultBaseURL,
		log:  log.Default(),
	}
}

// Tags fetches every tag of a repository, exhausting all pages before
// returning. The repository may be "name" (expanded to "library/name") or
// "namespace/name".
func (c *Client) Tags(ctx context.Context, repository string) ([]Tag, error) {
	repo := NormalizeRepository(repository)
	url := fmt.Sprintf("%s/v2/repositories/%s/tags?page_size=%d", c.base, repo, pageSize)

	var out []Tag
	for page := 1; url != ""; page++ {
		if page > maxPages {
			return nil, fmt.Errorf("hub: %s: pagination did not terminate after %d pages", repo, maxPages)
		}

		tr, err := c.page(ctx, repo, url)
		if err != nil {
			return nil, err
		}

		out = append(out, tr.Results...)
		c.log.Debug("fetched tags page", "repository", repo, "page", page, "tags", len(tr.Results))

		if tr.Next == nil {
			break
		}
		url = *tr.Next
	}

	c.log.Info("fetched tags", "repository", repo, "total", len(out))

	return out, nil
}

// page fetches and decodes a single page of the tags listing.
func (c *Client) page(ctx context.Context, repo, url string) (*TagsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("hub: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hub: fetch tags: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch resp.StatusCode {
	case http.StatusOK:

	case http.StatusNotFound:
		return nil, fmt.Errorf("hub: repository %q not found", repo)

	default:
		return nil, fmt.Errorf("hub: fetch tags: unexpected status %s", resp.Status)
	}

	var tr TagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("hub: decode tags page: %w", err)
	}

	return &tr, nil
}

// NormalizeRepository expands a bare repository name into the "library/"
// namespace used by official images.
func NormalizeRepository(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "/") {
		return s
	}

	return "library/" + s
}
