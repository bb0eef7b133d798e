package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extract maps one product container to a record. ok is false when a
// mandatory field is missing and the container should be skipped. With
// strict set, a missing unguarded field is an error instead of a skip.
func Extract(rules Rules, container *goquery.Selection, strict bool) (r Record, ok bool, err error) {
	fields := make(Fields, len(rules.Fields))
	skip := false
	for _, fr := range rules.Fields {
		v, found := lookup(container, fr)
		if found {
			fields[fr.Field] = v
			continue
		}
		if fr.Unguarded && strict {
			return nil, false, NewScrapeError(ErrCodeMissingField, fmt.Sprintf("%s: no match for %q", rules.Site, fr.Selector), nil)
		}
		if fr.Mandatory {
			skip = true
		}
	}
	if skip {
		return nil, false, nil
	}
	return rules.Build(fields), true, nil
}

func lookup(container *goquery.Selection, fr FieldRule) (string, bool) {
	el := container.FindMatcher(fr.matcher).First()
	if el.Length() == 0 {
		return "", false
	}

	var v string
	if fr.Attr != "" {
		v = el.AttrOr(fr.Attr, "")
	} else {
		v = strings.TrimSpace(el.Text())
	}

	if fr.Transform != nil {
		return fr.Transform(v)
	}
	return v, true
}
