package scraper

import (
	"bytes"
	"log"

	"github.com/PuerkitoBio/goquery"
)

func Parse(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, NewScrapeError(ErrCodeParse, "failed to parse HTML", err)
	}
	return doc, nil
}

// Locate returns every product container on the page, in document order.
func Locate(doc *goquery.Document, rules Rules) []*goquery.Selection {
	var containers []*goquery.Selection
	doc.FindMatcher(rules.container).Each(func(_ int, s *goquery.Selection) {
		containers = append(containers, s)
	})
	log.Printf("%s: Nr rows on page: %d\n", rules.Site, len(containers))
	return containers
}
