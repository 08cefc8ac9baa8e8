// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Json5bench compares the speed of a strict JSON parser with a JSON5
// parser on the same documents.
//
// Usage:
//
//	json5bench [-n iterations] [--pure] [--format text|bench] [--png file] [--dir dir] [fixture.json ...]
//
// Each fixture is read into memory once and then parsed by both
// parsers, back to back, n times (3 by default). After every iteration
// json5bench checks that the two parsers decoded the same value and
// stops with an error if they did not.
//
// If no fixtures are given, json5bench times ios-simulator.json,
// mb_config.json, chromium.linux.json, and chromium.perf.json from the
// --dir directory. Without --dir, it uses the directory containing the
// json5bench binary if the four files are there, and otherwise the
// first benchmarks directory found in the current directory or one of
// its parents. The repository ships small stand-ins under benchmarks/.
//
// The strict parser normally uses an accelerated decoder. The --pure
// flag switches it to the reflection-based decoder of encoding/json.
//
// For each fixture, json5bench prints which parser was faster in
// total and by what factor:
//
//	$ json5bench -n 10 testdata/one.json testdata/two.json
//	one.json            : JSON was   1.8x faster (0.000041s to 0.000074s)
//	two.json            : JSON5 took 0.000012 secs, JSON was too fast to measure
//
// A parser whose total time is zero is reported as too fast to
// measure.
//
// With --format bench, json5bench instead prints the mean time per
// parse in the Go benchmark format, which can be summarized with
// benchstat using -col /parser. The --png flag additionally draws a bar
// chart of the totals.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"golang.org/x/json5bench/benchfmt"
	"golang.org/x/json5bench/chart"
	"golang.org/x/json5bench/fixture"
	"golang.org/x/json5bench/parser"
	"golang.org/x/json5bench/report"
	"golang.org/x/json5bench/timing"
)

func main() {
	log.SetPrefix("json5bench: ")
	log.SetFlags(0)

	if err := json5bench(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		code, report := exitStatus(err)
		if report {
			log.Print(err)
		}
		os.Exit(code)
	}
}

// exitStatus returns the exit code for err and whether err still needs
// to be printed.
func exitStatus(err error) (code int, report bool) {
	var ue *usageError
	if errors.As(err, &ue) {
		return 2, !ue.printed
	}
	return 1, true
}

// A usageError reports bad command-line arguments.
type usageError struct {
	err     error
	printed bool // already written to stderr along with the usage text
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func json5bench(stdout, stderr io.Writer, args []string) error {
	flags := pflag.NewFlagSet("json5bench", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: json5bench [options] [fixture.json ...]\noptions:\n")
		flags.PrintDefaults()
	}
	flagIters := flags.IntP("num-iterations", "n", timing.DefaultIterations, "parse each fixture `n` times with each parser")
	flagPure := flags.Bool("pure", false, "use the reflection-based encoding/json decoder for the strict parser")
	flagFormat := flags.String("format", "text", "output `format`: text or bench")
	flagPNG := flags.String("png", "", "also write a bar chart of total parse times to `file`")
	flagVerbose := flags.BoolP("verbose", "v", false, "log progress to stderr")
	flagDir := flags.String("dir", "", "read the default fixtures from `dir`")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		// With ContinueOnError pflag prints neither the error nor the usage.
		fmt.Fprintf(stderr, "json5bench: %v\n", err)
		flags.Usage()
		return &usageError{err: err, printed: true}
	}
	if *flagIters < 1 {
		return &usageError{err: fmt.Errorf("-n must be at least 1, got %d", *flagIters)}
	}
	if *flagFormat != "text" && *flagFormat != "bench" {
		return &usageError{err: fmt.Errorf("unknown format %q", *flagFormat)}
	}

	paths := flags.Args()
	if len(paths) == 0 {
		dir, err := defaultDir(*flagDir)
		if err != nil {
			return fmt.Errorf("locating default fixtures: %w", err)
		}
		paths = fixture.DefaultPaths(dir)
	}
	set, err := fixture.Load(paths)
	if err != nil {
		return err
	}

	mode := parser.Accelerated
	if *flagPure {
		mode = parser.Pure
	}
	r := &timing.Runner{
		Baseline:  parser.NewStrict(mode),
		Candidate: parser.NewRelaxed(),
		Config:    timing.Config{Iterations: *flagIters},
	}
	if *flagVerbose {
		r.Logf = log.New(stderr, "json5bench: ", 0).Printf
		r.Logf("timing %d fixtures, %d iterations, %s mode", len(set), *flagIters, mode)
	}
	pairs, err := r.Run(set)
	if err != nil {
		return err
	}

	labels := [2]string{r.Baseline.Name(), r.Candidate.Name()}
	switch *flagFormat {
	case "text":
		f := report.Formatter{Baseline: labels[0], Candidate: labels[1]}
		if err := f.Write(stdout, set, pairs); err != nil {
			return err
		}
	case "bench":
		run := benchfmt.Run{Iterations: *flagIters, Mode: mode.String(), Labels: labels}
		w := benchfmt.NewWriter(stdout)
		for _, res := range run.Results(set, pairs) {
			if err := w.Write(res); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
	}

	if *flagPNG != "" {
		if err := chart.Write(*flagPNG, set, pairs, labels); err != nil {
			return err
		}
	}
	return nil
}

// defaultDir returns the directory holding the default fixtures. An
// explicit dir is used as is.
func defaultDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	// A missing executable path just skips that candidate.
	exeDir, _ := fixture.ToolDir()
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return fixture.FindDefaultDir(exeDir, wd)
}
