package io

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/geniass/kitchen-dealz/pkg/scraper"
)

// Table is the header plus the rows of one site, in insertion order.
type Table struct {
	Header []string
	Rows   [][]string
}

func NewTable(header []string) *Table {
	return &Table{Header: header}
}

func (t *Table) Append(r scraper.Record) {
	t.Rows = append(t.Rows, r.Row())
}

// WriteFile writes t as CSV, replacing filename if it exists.
func WriteFile(filename string, t *Table) error {
	f, err := os.Create(filename)
	if err != nil {
		return scraper.NewScrapeError(scraper.ErrCodeWrite, fmt.Sprintf("failed to create %s", filename), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return scraper.NewScrapeError(scraper.ErrCodeWrite, fmt.Sprintf("failed to write %s", filename), err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return scraper.NewScrapeError(scraper.ErrCodeWrite, fmt.Sprintf("failed to write %s", filename), err)
	}
	if err := f.Close(); err != nil {
		return scraper.NewScrapeError(scraper.ErrCodeWrite, fmt.Sprintf("failed to close %s", filename), err)
	}
	return nil
}

func LoadFromFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header", filename)
	}
	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}
