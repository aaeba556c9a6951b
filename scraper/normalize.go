package scraper

import "strings"

// normalizeNumber reduces a displayed amount like "$450,000", "1,800 sqft" or
// "2.5+" to its bare digits and decimal point. Returns "" when nothing
// numeric remains.
func normalizeNumber(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapseSpace trims a string and folds internal runs of whitespace
// (including newlines from multi-line card text) into single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
