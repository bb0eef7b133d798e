package scraper

import (
	"fmt"

	"github.com/andybalholm/cascadia"
)

type Field int

const (
	FieldName Field = iota
	FieldPrice
	FieldCurrency
	FieldReviews
	FieldImage
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldPrice:
		return "price"
	case FieldCurrency:
		return "currency"
	case FieldReviews:
		return "reviews"
	case FieldImage:
		return "image"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Fields holds the values found in one container, keyed by field. Absent
// fields have no key.
type Fields map[Field]string

// FieldRule says where a field lives inside a product container.
type FieldRule struct {
	Field    Field
	Selector string
	// Attr is read instead of the element text when set.
	Attr      string
	Mandatory bool
	// Unguarded marks lookups that fault instead of skipping the container
	// when Options.StrictImages is set.
	Unguarded bool
	// Transform post-processes the raw value; returning false drops the field.
	Transform func(string) (string, bool)

	matcher cascadia.Selector
}

// Rules is the extraction table for one site.
type Rules struct {
	Site      SiteKind
	Header    []string
	Container string
	Fields    []FieldRule
	Build     func(Fields) Record

	container cascadia.Selector
}

func (r Rules) compile() Rules {
	r.container = cascadia.MustCompile(r.Container)
	fields := make([]FieldRule, len(r.Fields))
	for i, f := range r.Fields {
		f.matcher = cascadia.MustCompile(f.Selector)
		fields[i] = f
	}
	r.Fields = fields
	return r
}

var bricoRules = Rules{
	Site:      Brico,
	Header:    []string{"Name", "Price", "Image"},
	Container: "div.product-item-info",
	Fields: []FieldRule{
		{Field: FieldName, Selector: "a.product-item-link", Mandatory: true},
		{Field: FieldPrice, Selector: "span.price", Mandatory: true},
		{Field: FieldImage, Selector: "img.product-image-photo", Attr: "src", Mandatory: true, Unguarded: true},
	},
	Build: func(f Fields) Record {
		return BricoRecord{
			Name:  f[FieldName],
			Price: f[FieldPrice],
			Image: f[FieldImage],
		}
	},
}.compile()

var dedemanRules = Rules{
	Site:      Dedeman,
	Header:    []string{"Name", "Price", "Currency", "Nr of Reviews", "Image"},
	Container: "div.product-box",
	Fields: []FieldRule{
		{Field: FieldName, Selector: "span.product-name", Mandatory: true},
		{Field: FieldPrice, Selector: "div.product-price", Mandatory: true},
		{Field: FieldCurrency, Selector: "span.currency", Mandatory: true},
		{Field: FieldImage, Selector: "span.thumbnail img", Attr: "src", Mandatory: true, Unguarded: true},
		{Field: FieldReviews, Selector: "span.reviews-count", Transform: ReviewsCount},
	},
	Build: func(f Fields) Record {
		r := DedemanRecord{
			Name:     f[FieldName],
			Price:    f[FieldPrice],
			Currency: f[FieldCurrency],
			Image:    f[FieldImage],
		}
		if v, ok := f[FieldReviews]; ok {
			r.ReviewsCount = &v
		}
		return r
	},
}.compile()

func RulesFor(site SiteKind) (Rules, error) {
	switch site {
	case Brico:
		return bricoRules, nil
	case Dedeman:
		return dedemanRules, nil
	}
	return Rules{}, fmt.Errorf("no extraction rules for %v", site)
}
