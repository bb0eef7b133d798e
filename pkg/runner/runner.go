package runner

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/kennygrant/sanitize"
	"golang.org/x/sync/errgroup"

	dataio "github.com/geniass/kitchen-dealz/pkg/io"
	"github.com/geniass/kitchen-dealz/pkg/scraper"
)

// DefaultParallelism runs every default source at once.
const DefaultParallelism = 2

type State int

const (
	Pending State = iota
	Running
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Running:
		return "RUNNING"
	case Succeeded:
		return "SUCCEEDED"
	case Failed:
		return "FAILED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result is how one source's task settled.
type Result struct {
	Source  scraper.SourceDefinition
	State   State
	File    string
	Records int
	Err     error
}

type indexedResult struct {
	index int
	Result
}

// Runner scrapes each source in its own task and writes one table per source.
// A failed task never affects the others.
type Runner struct {
	scraper     scraper.Scraper
	dir         string
	parallelism int

	mutex  *sync.Mutex
	states []State
}

// dir is where tables are written; empty means the working directory.
func New(s scraper.Scraper, dir string, parallelism int) *Runner {
	return &Runner{
		scraper:     s,
		dir:         dir,
		parallelism: parallelism,
		mutex:       &sync.Mutex{},
	}
}

// Run blocks until every task has settled and returns the results in the
// order of sources.
func (r *Runner) Run(sources []scraper.SourceDefinition) []Result {
	r.mutex.Lock()
	r.states = make([]State, len(sources))
	r.mutex.Unlock()

	limit := r.parallelism
	if limit < 1 {
		limit = len(sources)
	}

	results := make(chan indexedResult, len(sources))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, src := range sources {
		g.Go(func() error {
			results <- indexedResult{index: i, Result: r.runTask(i, src)}
			return nil
		})
	}
	_ = g.Wait() // tasks report through results, never through the group
	close(results)

	out := make([]Result, len(sources))
	for res := range results {
		out[res.index] = res.Result
	}
	return out
}

// States returns a snapshot of every task's state.
func (r *Runner) States() []State {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]State(nil), r.states...)
}

func (r *Runner) runTask(i int, src scraper.SourceDefinition) (res Result) {
	res.Source = src
	res.File = r.OutputPath(src)
	r.setState(i, Running)

	defer func() {
		if p := recover(); p != nil {
			res.Err = scraper.NewScrapeError(scraper.ErrCodePanic, fmt.Sprintf("%s task panicked", src.Site), fmt.Errorf("%v", p))
		}
		if res.Err != nil {
			res.State = Failed
			log.Printf("Generated an exception: %v\n", res.Err)
		} else {
			res.State = Succeeded
		}
		r.setState(i, res.State)
	}()

	rules, err := scraper.RulesFor(src.Site)
	if err != nil {
		res.Err = err
		return res
	}

	records, err := r.scraper.Scrape(src)
	if err != nil {
		res.Err = err
		return res
	}

	t := dataio.NewTable(rules.Header)
	for _, rec := range records {
		t.Append(rec)
	}
	if err := dataio.WriteFile(res.File, t); err != nil {
		res.Err = err
		return res
	}

	res.Records = len(records)
	log.Printf("%s: wrote %d rows to %s\n", src.Site, res.Records, res.File)
	return res
}

// setState only moves forward: PENDING -> RUNNING -> SUCCEEDED|FAILED.
func (r *Runner) setState(i int, s State) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	cur := r.states[i]
	switch {
	case cur == Pending && s == Running:
	case cur == Running && (s == Succeeded || s == Failed):
	default:
		return
	}
	r.states[i] = s
}

func (r *Runner) OutputPath(src scraper.SourceDefinition) string {
	return filepath.Join(r.dir, sanitize.BaseName(src.OutputName)+".csv")
}
