// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timing measures the wall-clock cost of two parsers on the
// same fixtures.
//
// Each iteration parses a fixture with the baseline parser and then
// immediately with the candidate parser, so both measurements see the
// same cache and scheduler conditions. After every iteration the two
// decoded values must be equal; a mismatch stops the run.
package timing

import (
	"fmt"
	"time"

	"golang.org/x/json5bench/fixture"
	"golang.org/x/json5bench/parser"
	"golang.org/x/json5bench/value"
)

// DefaultIterations is the iteration count used when none is given.
const DefaultIterations = 3

// A Config controls how fixtures are timed.
type Config struct {
	// Iterations is the number of times each parser decodes each
	// fixture. It must be at least 1.
	Iterations int
}

// A Pair is the accumulated parse time of both parsers on one fixture,
// summed over all iterations.
type Pair struct {
	Baseline  time.Duration
	Candidate time.Duration
}

// A Runner times a baseline and a candidate parser.
type Runner struct {
	Baseline  parser.Parser
	Candidate parser.Parser
	Config

	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time

	// Logf, if non-nil, is called with a progress message after
	// each fixture is timed.
	Logf func(format string, args ...any)
}

// A MismatchError reports that the two parsers decoded a fixture to
// different values.
type MismatchError struct {
	Fixture   string
	Iteration int // 1-based
	Baseline  value.Value
	Candidate value.Value
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: parsers disagree on iteration %d (-baseline +candidate):\n%s",
		e.Fixture, e.Iteration, value.Diff(e.Baseline, e.Candidate))
}

// Run times every fixture in set and returns one Pair per fixture, in
// set order. It stops at the first parse error or mismatch.
func (r *Runner) Run(set fixture.Set) ([]Pair, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, len(set))
	for _, f := range set {
		p, err := r.RunFixture(f)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// RunFixture times a single fixture.
func (r *Runner) RunFixture(f fixture.Fixture) (Pair, error) {
	if err := r.check(); err != nil {
		return Pair{}, err
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}

	var p Pair
	for i := 1; i <= r.Iterations; i++ {
		start := now()
		a, err := r.Baseline.Parse(f.Text)
		if err != nil {
			return Pair{}, fmt.Errorf("%s: %w", f.Name(), err)
		}
		mid := now()
		b, err := r.Candidate.Parse(f.Text)
		if err != nil {
			return Pair{}, fmt.Errorf("%s: %w", f.Name(), err)
		}
		end := now()

		p.Baseline += elapsed(start, mid)
		p.Candidate += elapsed(mid, end)

		if !value.Equal(a, b) {
			return Pair{}, &MismatchError{f.Name(), i, a, b}
		}
	}

	if r.Logf != nil {
		r.Logf("%s: %d iterations, %s %v, %s %v", f.Name(), r.Iterations,
			r.Baseline.Name(), p.Baseline, r.Candidate.Name(), p.Candidate)
	}
	return p, nil
}

func (r *Runner) check() error {
	if r.Baseline == nil || r.Candidate == nil {
		return fmt.Errorf("timing: Runner needs both a baseline and a candidate parser")
	}
	if r.Iterations < 1 {
		return fmt.Errorf("timing: iteration count must be at least 1, got %d", r.Iterations)
	}
	return nil
}

// elapsed returns the time from t0 to t1. A clock that steps backwards
// counts as zero so totals never decrease.
func elapsed(t0, t1 time.Time) time.Duration {
	if d := t1.Sub(t0); d > 0 {
		return d
	}
	return 0
}
