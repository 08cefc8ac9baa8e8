// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report formats timing results as one line of text per
// fixture, stating which parser was faster and by how much.
//
// A parser whose total is zero, which happens on small fixtures with a
// coarse clock, is reported as "too fast to measure".
package report

import (
	"fmt"
	"io"

	"golang.org/x/json5bench/fixture"
	"golang.org/x/json5bench/timing"
)

// A Formatter renders timing pairs using the given parser labels.
type Formatter struct {
	Baseline  string
	Candidate string
}

// DefaultFormatter labels the strict parser "JSON" and the relaxed
// parser "JSON5".
var DefaultFormatter = Formatter{Baseline: "JSON", Candidate: "JSON5"}

// Line returns the report line for the fixture name, without a
// trailing newline.
//
// When both totals are equal and non-zero, the baseline is reported as
// the faster one with a ratio of 1.0.
func (f Formatter) Line(name string, p timing.Pair) string {
	base, cand := p.Baseline.Seconds(), p.Candidate.Seconds()
	switch {
	case base > 0 && cand > 0:
		if cand >= base {
			return fmt.Sprintf("%-20s: %s was %5.1fx faster (%.6fs to %.6fs)",
				name, f.Baseline, cand/base, base, cand)
		}
		return fmt.Sprintf("%-20s: %s was %5.1fx faster (%.6fs to %.6fs)",
			name, f.Candidate, base/cand, cand, base)
	case cand > 0:
		return fmt.Sprintf("%-20s: %s took %.6f secs, %s was too fast to measure",
			name, f.Candidate, cand, f.Baseline)
	case base > 0:
		return fmt.Sprintf("%-20s: %s took %.6f secs, %s was too fast to measure",
			name, f.Baseline, base, f.Candidate)
	}
	return fmt.Sprintf("%-20s: both were too fast to measure", name)
}

// Write writes one line per fixture in set to w. pairs[i] must be the
// timing of set[i].
func (f Formatter) Write(w io.Writer, set fixture.Set, pairs []timing.Pair) error {
	if len(set) != len(pairs) {
		return fmt.Errorf("report: %d fixtures but %d timings", len(set), len(pairs))
	}
	for i, fx := range set {
		if _, err := fmt.Fprintln(w, f.Line(fx.Name(), pairs[i])); err != nil {
			return err
		}
	}
	return nil
}
