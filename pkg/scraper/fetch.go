package scraper

import (
	"fmt"

	"github.com/gocolly/colly/v2"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:128.0) Gecko/20100101 Firefox/128.0"

// Fetcher returns the raw body of a page.
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

// CollyFetcher issues one GET per call. Responses with an error status are
// returned like any other body.
type CollyFetcher struct {
	options []colly.CollectorOption
}

// cacheDir can be empty to disable caching.
func NewCollyFetcher(cacheDir string) *CollyFetcher {
	options := []colly.CollectorOption{
		colly.UserAgent(userAgent),
		colly.ParseHTTPErrorResponse(),
		colly.DetectCharset(),
	}

	if cacheDir != "" {
		options = append(options, colly.CacheDir(cacheDir))
	}

	return &CollyFetcher{options: options}
}

func (f *CollyFetcher) Fetch(url string) ([]byte, error) {
	// a collector per call keeps the visited set and callbacks private to one page
	c := colly.NewCollector(f.options...)

	var body []byte
	c.OnRequest(func(r *colly.Request) {
		fmt.Println("Visiting", r.URL.String())
	})
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	if err := c.Visit(url); err != nil {
		return nil, NewScrapeError(ErrCodeFetch, fmt.Sprintf("failed to visit %s", url), err)
	}
	return body, nil
}
