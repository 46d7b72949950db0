// Package batch runs many estimations from a TOML case file. Cases are
// independent pure computations, so they are fanned out over a small worker
// pool and collected in file order.
package batch

import (
	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/Andre-4949/y-plus-estimation/calculator"
	"github.com/Andre-4949/y-plus-estimation/model"
)

// Case is one [[case]] table in the file.
type Case struct {
	Name             string `toml:"name"`
	model.Conditions        // inlined condition keys
}

type caseFile struct {
	Cases []Case `toml:"case"`
}

// Outcome pairs a case with its result or failure.
type Outcome struct {
	Name   string
	Result *model.Result
	Err    error
}

// Load reads a TOML case file.
func Load(path string) ([]Case, error) {
	var file caseFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, err
	}
	return file.Cases, nil
}

// Run estimates every case using the given number of workers and returns the
// outcomes in case order. Failed cases carry their error; the rest of the
// file still runs.
func Run(cases []Case, workers int) []Outcome {
	if workers < 1 {
		workers = 1
	}
	c := calculator.NewCalculator()
	outcomes := make([]Outcome, len(cases))

	tasks := make(chan int)
	done := make(chan struct{})
	for w := 0; w < workers; w++ {
		go func() {
			for i := range tasks {
				res, err := c.Estimate(cases[i].Conditions)
				outcomes[i] = Outcome{Name: cases[i].Name, Result: res, Err: err}
				done <- struct{}{}
			}
		}()
	}

	go func() {
		for i := range cases {
			tasks <- i
		}
		close(tasks)
	}()
	for range cases {
		<-done
	}

	for _, o := range outcomes {
		if o.Err != nil {
			log.WithField("case", o.Name).Error(o.Err)
		}
	}
	return outcomes
}
