package main

import (
	"log"
	"os"

	cli "github.com/jawher/mow.cli"

	"github.com/geniass/kitchen-dealz/pkg/runner"
	"github.com/geniass/kitchen-dealz/pkg/scraper"
)

func main() {
	app := cli.App("scraper", "Scrape the Brico Depot and Dedeman kitchen categories into CSV files")

	dirArg := app.StringOpt("dir", ".", "directory in which to write the CSV files")
	cacheDirArg := app.StringOpt("cache", "", "cache directory")
	strictImagesArg := app.BoolOpt("strict-images", false, "fail a site instead of skipping products that have no image")

	app.Action = func() {
		if err := os.MkdirAll(*dirArg, os.ModeDir|0755); err != nil {
			log.Fatal(err)
		}

		s := scraper.NewScraper(scraper.NewCollyFetcher(*cacheDirArg), *strictImagesArg)
		r := runner.New(s, *dirArg, runner.DefaultParallelism)

		for _, res := range r.Run(scraper.DefaultSources()) {
			log.Printf("%s: %s\n", res.Source.Site, res.State)
		}
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
