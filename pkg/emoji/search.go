package emoji

import "strings"

// Search filters emojis to those whose searchable name contains the query,
// preserving the relative order of the input. Matching is case-insensitive
// and substring-based over the normalized Unicode name. A blank query
// matches nothing: searching is always narrowing, never an identity pass.
func Search(emojis []Emoji, query string) []Emoji {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Emoji{}
	}
	result := []Emoji{}
	for _, e := range emojis {
		if strings.Contains(e.UnicodeName(), q) {
			result = append(result, e)
		}
	}
	return result
}
