// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"fmt"
	"io"
)

// A Writer writes the Go benchmark format.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer

	first      bool
	fileConfig map[string]string
	order      []string
}

// NewWriter returns a writer that writes benchmark results to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, first: true, fileConfig: make(map[string]string)}
}

// Write writes res to w. If res's configuration differs from the
// configuration currently in effect in w, it first emits the
// configuration lines needed to change it.
func (w *Writer) Write(res *Result) error {
	if w.configChanged(res) {
		w.writeFileConfig(res)
	}

	fmt.Fprintf(&w.buf, "Benchmark%s %d", res.Name, res.Iters)
	for _, val := range res.Values {
		fmt.Fprintf(&w.buf, " %v %s", val.Value, val.Unit)
	}
	w.buf.WriteByte('\n')
	w.first = false

	// Writes to the buffer can't fail, so only this one needs checking.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

func (w *Writer) configChanged(res *Result) bool {
	if len(w.fileConfig) != len(res.Config) {
		return true
	}
	for _, cfg := range res.Config {
		if have, ok := w.fileConfig[cfg.Key]; !ok || have != cfg.Value {
			return true
		}
	}
	return false
}

func (w *Writer) writeFileConfig(res *Result) {
	if !w.first {
		// Configuration blocks after results get an extra blank.
		w.buf.WriteByte('\n')
		w.first = true
	}

	// Walk keys we know to find changes and deletions.
	for i := 0; i < len(w.order); i++ {
		key := w.order[i]
		val, ok := lookup(res, key)
		if !ok {
			// An empty value clears the key.
			fmt.Fprintf(&w.buf, "%s:\n", key)
			delete(w.fileConfig, key)
			w.order = append(w.order[:i], w.order[i+1:]...)
			i--
			continue
		}
		if w.fileConfig[key] != val {
			fmt.Fprintf(&w.buf, "%s: %s\n", key, val)
			w.fileConfig[key] = val
		}
	}

	// Find new keys.
	for _, cfg := range res.Config {
		if _, ok := w.fileConfig[cfg.Key]; ok {
			continue
		}
		fmt.Fprintf(&w.buf, "%s: %s\n", cfg.Key, cfg.Value)
		w.fileConfig[cfg.Key] = cfg.Value
		w.order = append(w.order, cfg.Key)
	}

	w.buf.WriteByte('\n')
}

func lookup(res *Result, key string) (string, bool) {
	for _, cfg := range res.Config {
		if cfg.Key == key {
			return cfg.Value, true
		}
	}
	return "", false
}
