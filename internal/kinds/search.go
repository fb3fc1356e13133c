package kinds

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest ranks corpus against query by fuzzy score and returns at most
// limit entries. An empty query suggests nothing; limit <= 0 means no cap.
func Suggest(query string, corpus []string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(corpus) == 0 {
		return nil
	}
	matches := fuzzy.Find(query, corpus)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
