package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/reugn/go-proleptic/calendar"
	"github.com/reugn/go-proleptic/logger"
	"gopkg.in/yaml.v3"
)

// batchFile is the YAML input of the batch command.
type batchFile struct {
	Jobs []batchJob `yaml:"jobs"`
}

// batchJob converts a date or a tick, optionally shifted by an offset.
// Exactly one of Tick and Date must be set.
type batchJob struct {
	Name   string       `yaml:"name"`
	Tick   *int64       `yaml:"tick,omitempty"`
	Date   *batchDate   `yaml:"date,omitempty"`
	Offset *batchOffset `yaml:"offset,omitempty"`
}

type batchDate struct {
	Year   int64 `yaml:"year"`
	Month  int   `yaml:"month"`
	Day    int   `yaml:"day"`
	Hour   int   `yaml:"hour"`
	Minute int   `yaml:"minute"`
	Second int   `yaml:"second"`
}

type batchOffset struct {
	Years   int64 `yaml:"years"`
	Months  int64 `yaml:"months"`
	Days    int64 `yaml:"days"`
	Hours   int64 `yaml:"hours"`
	Minutes int64 `yaml:"minutes"`
	Seconds int64 `yaml:"seconds"`
}

// batchResult is one entry of the YAML output of the batch command.
type batchResult struct {
	Name    string `yaml:"name"`
	Tick    int64  `yaml:"tick"`
	Display string `yaml:"display,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

var errBatchSource = errors.New("job needs exactly one of tick and date")

// runBatch evaluates every job read from r and writes the results to w.
// A failing job is reported in its result and does not stop the batch.
func runBatch(r io.Reader, w io.Writer, flags calendar.DisplayFlags) error {
	var file batchFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && err != io.EOF {
		return fmt.Errorf("parse batch: %w", err)
	}

	results := make([]batchResult, 0, len(file.Jobs))
	for i, job := range file.Jobs {
		if job.Name == "" {
			job.Name = fmt.Sprintf("job-%d", i+1)
		}
		result := batchResult{Name: job.Name}
		tick, err := job.evaluate()
		if err != nil {
			logger.Warn("Batch job failed", "job", job.Name, "error", err)
			result.Error = err.Error()
		} else {
			result.Tick = int64(tick)
			result.Display = calendar.TickToDisplayString(tick, flags)
		}
		results = append(results, result)
	}
	logger.Debug("Batch evaluated", "jobs", len(results))

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(map[string][]batchResult{"results": results}); err != nil {
		return err
	}
	return encoder.Close()
}

func (job batchJob) evaluate() (calendar.Tick, error) {
	var tick calendar.Tick
	switch {
	case job.Tick != nil && job.Date == nil:
		tick = calendar.Tick(*job.Tick)
	case job.Date != nil && job.Tick == nil:
		d := job.Date
		dt, err := calendar.NewDateTime(calendar.Year(d.Year), d.Month, d.Day,
			d.Hour, d.Minute, d.Second)
		if err != nil {
			return 0, err
		}
		tick = dt.Tick()
	default:
		return 0, errBatchSource
	}

	if job.Offset != nil {
		tick = tick.Add(job.Offset.toOffset())
	}
	return tick, nil
}

func (o *batchOffset) toOffset() calendar.Offset {
	return calendar.Offset{
		Years:   o.Years,
		Months:  o.Months,
		Days:    o.Days,
		Hours:   o.Hours,
		Minutes: o.Minutes,
		Seconds: o.Seconds,
	}
}
