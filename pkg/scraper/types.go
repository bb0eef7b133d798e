package scraper

import "fmt"

type SiteKind int

const (
	Brico SiteKind = iota
	Dedeman
)

func (k SiteKind) String() string {
	switch k {
	case Brico:
		return "BRICO"
	case Dedeman:
		return "DEDEMAN"
	}
	return fmt.Sprintf("SiteKind(%d)", int(k))
}

// SourceDefinition is one category page to scrape and the table it produces.
type SourceDefinition struct {
	URL        string
	Site       SiteKind
	OutputName string
}

func DefaultSources() []SourceDefinition {
	return []SourceDefinition{
		{URL: "https://www.bricodepot.ro/bucatarie.html", Site: Brico, OutputName: "brico"},
		{URL: "https://www.dedeman.ro/ro/mobila-bucatarie/c/84", Site: Dedeman, OutputName: "dedeman"},
	}
}

// Record is one extracted product row. The concrete type depends on the site.
type Record interface {
	Site() SiteKind
	Row() []string
}

type BricoRecord struct {
	Name  string
	Price string
	Image string
}

func (BricoRecord) Site() SiteKind { return Brico }

func (r BricoRecord) Row() []string {
	return []string{r.Name, r.Price, r.Image}
}

type DedemanRecord struct {
	Name     string
	Price    string
	Currency string
	// ReviewsCount is nil when the box has no review count.
	ReviewsCount *string
	Image        string
}

func (DedemanRecord) Site() SiteKind { return Dedeman }

func (r DedemanRecord) Row() []string {
	reviews := ""
	if r.ReviewsCount != nil {
		reviews = *r.ReviewsCount
	}
	return []string{r.Name, r.Price, r.Currency, reviews, r.Image}
}
