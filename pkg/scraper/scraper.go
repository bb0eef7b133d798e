package scraper

type Scraper struct {
	fetcher      Fetcher
	strictImages bool
}

// NewScraper builds a scraper around fetcher. With strictImages set, a
// product container without an image aborts the whole page instead of being
// skipped.
func NewScraper(fetcher Fetcher, strictImages bool) Scraper {
	return Scraper{
		fetcher:      fetcher,
		strictImages: strictImages,
	}
}

// Scrape fetches src and extracts one record per complete product container,
// in page order.
func (s Scraper) Scrape(src SourceDefinition) ([]Record, error) {
	rules, err := RulesFor(src.Site)
	if err != nil {
		return nil, err
	}

	body, err := s.fetcher.Fetch(src.URL)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(body)
	if err != nil {
		return nil, err
	}

	records := []Record{}
	for _, c := range Locate(doc, rules) {
		r, ok, err := Extract(rules, c, s.strictImages)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, r)
		}
	}
	return records, nil
}
