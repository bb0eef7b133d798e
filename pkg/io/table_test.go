package io

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/geniass/kitchen-dealz/pkg/scraper"
)

func TestWriteFileThenLoad(t *testing.T) {
	reviews := "12"
	table := NewTable([]string{"Name", "Price", "Currency", "Nr of Reviews", "Image"})
	table.Append(scraper.DedemanRecord{Name: `Dulap "Nora", alb`, Price: "1.299,00", Currency: "lei", ReviewsCount: &reviews, Image: "/a.jpg"})
	table.Append(scraper.DedemanRecord{Name: "Corp baza", Price: "289", Currency: "lei", Image: "/b.jpg"})

	filename := filepath.Join(t.TempDir(), "dedeman.csv")
	if err := WriteFile(filename, table); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFromFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded.Header, table.Header) {
		t.Errorf("wrong header: got %q expected %q", loaded.Header, table.Header)
	}
	if !reflect.DeepEqual(loaded.Rows, table.Rows) {
		t.Errorf("wrong rows: got %q expected %q", loaded.Rows, table.Rows)
	}
}

func TestWriteFileFormat(t *testing.T) {
	table := NewTable([]string{"Name", "Price", "Image"})
	table.Append(scraper.BricoRecord{Name: "Chiuveta, inox", Price: "199,90 lei", Image: "/3.jpg"})

	filename := filepath.Join(t.TempDir(), "brico.csv")
	if err := WriteFile(filename, table); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	expected := "Name,Price,Image\n\"Chiuveta, inox\",\"199,90 lei\",/3.jpg\n"
	if string(b) != expected {
		t.Errorf("wrong file contents: got %q expected %q", b, expected)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "brico.csv")
	if err := os.WriteFile(filename, []byte("stale,data,from,an,old,run\n1,2,3,4,5,6\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(filename, NewTable([]string{"Name", "Price", "Image"})); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "Name,Price,Image\n" {
		t.Errorf("file not overwritten: got %q", b)
	}
}

func TestWriteFileInvalidPath(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing", "brico.csv")
	err := WriteFile(filename, NewTable([]string{"Name"}))

	var se *scraper.ScrapeError
	if !errors.As(err, &se) || se.Code != scraper.ErrCodeWrite {
		t.Errorf("expected %s, got %v", scraper.ErrCodeWrite, err)
	}
}
