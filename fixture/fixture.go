// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixture loads the documents that json5bench times.
//
// All fixtures are read into memory before any timing starts.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
)

// A Fixture is a single document to parse.
type Fixture struct {
	Path string // Path the fixture was read from
	Text string // Full contents of the file
}

// Name returns the display name of f, which is the base name of its
// path.
func (f Fixture) Name() string {
	return filepath.Base(f.Path)
}

// A Set is an ordered sequence of fixtures. Reports list fixtures in
// Set order.
type Set []Fixture

// DefaultNames are the fixture files used when none are given on the
// command line.
var DefaultNames = []string{
	"ios-simulator.json",
	"mb_config.json",
	"chromium.linux.json",
	"chromium.perf.json",
}

// DefaultPaths returns DefaultNames resolved relative to dir.
func DefaultPaths(dir string) []string {
	paths := make([]string, len(DefaultNames))
	for i, name := range DefaultNames {
		paths[i] = filepath.Join(dir, name)
	}
	return paths
}

// ToolDir returns the directory containing the running executable.
func ToolDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// DefaultDirName is the directory searched for in the working
// directory and its parents when the default fixtures are not next to
// the executable.
const DefaultDirName = "benchmarks"

// FindDefaultDir returns the first directory holding every file in
// DefaultNames. It tries exeDir first, then DefaultDirName in wd and
// each parent of wd.
func FindDefaultDir(exeDir, wd string) (string, error) {
	if hasDefaults(exeDir) {
		return exeDir, nil
	}
	wd, err := filepath.Abs(wd)
	if err != nil {
		return "", err
	}
	for dir := wd; ; {
		if cand := filepath.Join(dir, DefaultDirName); hasDefaults(cand) {
			return cand, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("no directory with the default fixtures: tried %s and %s in %s and its parents",
		exeDir, DefaultDirName, wd)
}

func hasDefaults(dir string) bool {
	if dir == "" {
		return false
	}
	for _, path := range DefaultPaths(dir) {
		if fi, err := os.Stat(path); err != nil || !fi.Mode().IsRegular() {
			return false
		}
	}
	return true
}

// Load reads every path in order. If any path cannot be read, Load
// stops and returns the error, which wraps the underlying *fs.PathError.
func Load(paths []string) (Set, error) {
	set := make(Set, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading fixture: %w", err)
		}
		set = append(set, Fixture{Path: path, Text: string(data)})
	}
	return set, nil
}
