package scraper

import (
	"regexp"
	"strings"
)

var reviewsCountRegex = regexp.MustCompile(`\(([^)]+)`)

// ReviewsCount pulls the count out of review text such as "(128), 4.5 stars".
// Only the text before the first comma is considered.
func ReviewsCount(text string) (string, bool) {
	head, _, _ := strings.Cut(text, ",")
	m := reviewsCountRegex.FindStringSubmatch(head)
	if m == nil {
		return "", false
	}
	return m[1], true
}
