// Package sanitize makes free-text fragments safe to use as fuzzy-match
// terms against the task store.
package sanitize

import "strings"

// MaxTermLength bounds search terms to keep LIKE scans cheap.
const MaxTermLength = 100

// Term strips the SQL LIKE wildcard characters, collapses whitespace,
// and truncates the fragment to MaxTermLength runes.
func Term(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '%' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}

	cleaned := strings.Join(strings.Fields(b.String()), " ")

	runes := []rune(cleaned)
	if len(runes) > MaxTermLength {
		runes = runes[:MaxTermLength]
	}
	return strings.TrimSpace(string(runes))
}
