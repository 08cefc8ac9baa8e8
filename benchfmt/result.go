// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt writes parser timings in the Go benchmark format,
// so that they can be compared and summarized with benchstat.
//
// This implements the format documented at
// https://golang.org/design/14313-benchmark-format.
//
// Each fixture produces one result per parser, named
// "Parse/file=<fixture>/parser=<label>", reporting the mean time per
// parse and, when measurable, the throughput in bytes per second.
package benchfmt

import (
	"runtime"
	"strings"

	"golang.org/x/json5bench/fixture"
	"golang.org/x/json5bench/timing"
)

// A Result is a single benchmark result and all of its measurements.
type Result struct {
	// Config is the set of file configuration pairs in effect for
	// this result, in output order.
	Config []Config

	// Name is the full benchmark name, without the "Benchmark"
	// prefix.
	Name string

	// Iters is the number of iterations Values were averaged over.
	Iters int

	Values []Value
}

// A Config is a single key/value file configuration pair.
type Config struct {
	Key   string
	Value string
}

// A Value is a single value/unit measurement.
type Value struct {
	Value float64
	Unit  string
}

// GetConfig returns the value of a configuration key, or "" if not
// present.
func (r *Result) GetConfig(key string) string {
	for _, cfg := range r.Config {
		if cfg.Key == key {
			return cfg.Value
		}
	}
	return ""
}

// Value returns the measurement for the given unit.
func (r *Result) Value(unit string) (float64, bool) {
	for _, v := range r.Values {
		if v.Unit == unit {
			return v.Value, true
		}
	}
	return 0, false
}

// A Run describes how a set of timings was collected.
type Run struct {
	Iterations int
	Mode       string    // Strict parser mode, such as "accelerated"
	Labels     [2]string // Baseline and candidate parser labels
}

// Results converts the timing of each fixture in set into two
// benchmark results, baseline first. pairs[i] must be the timing of
// set[i].
func (run Run) Results(set fixture.Set, pairs []timing.Pair) []*Result {
	cfg := []Config{
		{"goos", runtime.GOOS},
		{"goarch", runtime.GOARCH},
		{"mode", run.Mode},
	}
	var out []*Result
	for i, f := range set {
		if i >= len(pairs) {
			break
		}
		totals := [2]float64{pairs[i].Baseline.Seconds(), pairs[i].Candidate.Seconds()}
		for j, label := range run.Labels {
			res := &Result{
				Config: cfg,
				Name:   "Parse/file=" + nameSafe(f.Name()) + "/parser=" + nameSafe(label),
				Iters:  run.Iterations,
			}
			perOp := totals[j] / float64(run.Iterations)
			res.Values = append(res.Values, Value{perOp * 1e9, "ns/op"})
			if perOp > 0 {
				res.Values = append(res.Values, Value{float64(len(f.Text)) / perOp / 1e6, "MB/s"})
			}
			out = append(out, res)
		}
	}
	return out
}

// nameSafe replaces the characters that would split a benchmark name
// into separate fields or name parts.
func nameSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '/':
			return '_'
		}
		return r
	}, s)
}
