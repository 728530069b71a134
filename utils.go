package tagsum

import "strings"

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// capRows returns in[:min(limit, len(in))] if limit>0; otherwise in.
func capRows(in []Row, limit int) []Row {
	if limit > 0 && limit < len(in) {
		return in[:limit]
	}

	return in
}
