// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"golang.org/x/json5bench/fixture"
	"golang.org/x/json5bench/parser"
)

// lineRE matches every form of report line.
var lineRE = regexp.MustCompile(`^(\S+) *: (` +
	`JSON5? was +\d+\.\dx faster \(\d+\.\d{6}s to \d+\.\d{6}s\)|` +
	`JSON5? took \d+\.\d{6} secs, JSON5? was too fast to measure|` +
	`both were too fast to measure)$`)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	t.Logf("json5bench %s", strings.Join(args, " "))
	err = json5bench(&out, &errOut, args)
	return out.String(), errOut.String(), err
}

func TestText(t *testing.T) {
	for _, args := range [][]string{
		{"-n", "1"},
		{"--num-iterations=2", "--pure"},
		{},
	} {
		args = append(args, "testdata/one.json", "testdata/two.json")
		stdout, stderr, err := run(t, args...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stderr != "" {
			t.Errorf("unexpected stderr: %q", stderr)
		}
		lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("want 2 lines, got:\n%s", stdout)
		}
		for i, want := range []string{"one.json", "two.json"} {
			m := lineRE.FindStringSubmatch(lines[i])
			if m == nil {
				t.Errorf("malformed line %q", lines[i])
				continue
			}
			if m[1] != want {
				t.Errorf("line %d: want fixture %s, got %s", i, want, m[1])
			}
			if !strings.HasPrefix(lines[i], want+strings.Repeat(" ", 20-len(want))+": ") {
				t.Errorf("line %d: name not padded to 20 columns: %q", i, lines[i])
			}
		}
	}
}

func TestBench(t *testing.T) {
	stdout, _, err := run(t, "-n", "2", "--format", "bench", "testdata/one.json", "testdata/two.json")
	if err != nil {
		t.Fatal(err)
	}
	var benches []string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "Benchmark") {
			benches = append(benches, strings.Fields(line)[0])
			if f := strings.Fields(line); f[1] != "2" || f[3] != "ns/op" {
				t.Errorf("bad benchmark line %q", line)
			}
		}
	}
	want := []string{
		"BenchmarkParse/file=one.json/parser=JSON",
		"BenchmarkParse/file=one.json/parser=JSON5",
		"BenchmarkParse/file=two.json/parser=JSON",
		"BenchmarkParse/file=two.json/parser=JSON5",
	}
	if strings.Join(benches, "\n") != strings.Join(want, "\n") {
		t.Errorf("want benchmarks:\n%s\ngot:\n%s", strings.Join(want, "\n"), strings.Join(benches, "\n"))
	}
	if !strings.Contains(stdout, "mode: accelerated\n") {
		t.Errorf("missing mode configuration:\n%s", stdout)
	}
}

func TestVerbose(t *testing.T) {
	_, stderr, err := run(t, "-v", "-n", "1", "testdata/one.json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "json5bench: one.json: 1 iterations") {
		t.Errorf("missing progress in stderr:\n%s", stderr)
	}
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if _, _, err := run(t, "-n", "1", "--png", path, "testdata/one.json", "testdata/two.json"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("chart is not a PNG")
	}
}

func TestMissingFixture(t *testing.T) {
	stdout, _, err := run(t, "testdata/one.json", "testdata/missing.json")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want not-exist error, got %v", err)
	}
	if stdout != "" {
		t.Errorf("want no output before timing, got %q", stdout)
	}
}

func TestParseFailure(t *testing.T) {
	stdout, _, err := run(t, "testdata/one.json", "testdata/broken.json")
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want *parser.ParseError, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "broken.json: ") {
		t.Errorf("error does not name the fixture: %v", err)
	}
	if stdout != "" {
		t.Errorf("want no partial report, got %q", stdout)
	}
}

func TestRelaxedOnlyFixture(t *testing.T) {
	stdout, _, err := run(t, "-n", "1", "testdata/one.json", "testdata/relaxed.json5")
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want *parser.ParseError, got %v", err)
	}
	if pe.Parser != "JSON" {
		t.Errorf("want the strict parser to reject the fixture, got %s", pe.Parser)
	}
	if !strings.HasPrefix(err.Error(), "relaxed.json5: JSON: ") {
		t.Errorf("error does not name the fixture and parser: %v", err)
	}
	if stdout != "" {
		t.Errorf("want no partial report, got %q", stdout)
	}
}

func checkDefaultReport(t *testing.T, stdout string) {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != len(fixture.DefaultNames) {
		t.Fatalf("want %d lines, got:\n%s", len(fixture.DefaultNames), stdout)
	}
	for i, want := range fixture.DefaultNames {
		m := lineRE.FindStringSubmatch(lines[i])
		if m == nil {
			t.Errorf("malformed line %q", lines[i])
			continue
		}
		if m[1] != want {
			t.Errorf("line %d: want fixture %s, got %s", i, want, m[1])
		}
	}
}

func TestDefaultFixtures(t *testing.T) {
	// With no arguments, the shipped benchmarks directory is found
	// from the working directory.
	stdout, stderr, err := run(t)
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
	checkDefaultReport(t, stdout)

	stdout, _, err = run(t, "-n", "1", "--dir", filepath.Join("..", "..", fixture.DefaultDirName))
	if err != nil {
		t.Fatal(err)
	}
	checkDefaultReport(t, stdout)

	_, _, err = run(t, "--dir", t.TempDir())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("--dir without fixtures: want not-exist error, got %v", err)
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{
		{"-n", "0", "testdata/one.json"},
		{"-n", "x"},
		{"--format", "xml", "testdata/one.json"},
		{"--bogus"},
	} {
		_, _, err := run(t, args...)
		var ue *usageError
		if !errors.As(err, &ue) {
			t.Errorf("%v: want usage error, got %v", args, err)
		}
	}

	_, stderr, err := run(t, "--help")
	if err != nil {
		t.Errorf("--help: unexpected error %v", err)
	}
	if !strings.Contains(stderr, "usage: json5bench") || !strings.Contains(stderr, "--num-iterations") {
		t.Errorf("--help: unexpected usage text:\n%s", stderr)
	}
}

func TestExitStatus(t *testing.T) {
	// pflag reports its own errors; they must not be printed again.
	_, stderr, err := run(t, "--bogus")
	if err == nil {
		t.Fatal("--bogus: want error")
	}
	if n := strings.Count(stderr, err.Error()); n != 1 {
		t.Errorf("--bogus: error appears %d times in stderr:\n%s", n, stderr)
	}
	if !strings.Contains(stderr, "usage: json5bench") {
		t.Errorf("--bogus: missing usage text:\n%s", stderr)
	}
	if code, report := exitStatus(err); code != 2 || report {
		t.Errorf("--bogus: exitStatus = %d, %v; want 2, false", code, report)
	}

	_, stderr, err = run(t, "-n", "0", "testdata/one.json")
	if stderr != "" {
		t.Errorf("-n 0: unexpected stderr %q", stderr)
	}
	if code, report := exitStatus(err); code != 2 || !report {
		t.Errorf("-n 0: exitStatus = %d, %v; want 2, true", code, report)
	}

	_, _, err = run(t, "testdata/broken.json")
	if code, report := exitStatus(err); code != 1 || !report {
		t.Errorf("parse failure: exitStatus = %d, %v; want 1, true", code, report)
	}
}
