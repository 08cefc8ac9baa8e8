// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser provides the document parsers compared by json5bench.
//
// The baseline is a strict JSON parser, available in two
// configurations selected by Mode. The candidate is a JSON5 parser,
// which accepts a superset of JSON. Both decode into a value.Value so
// their results can be compared.
package parser

import (
	"encoding/json"
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/titanous/json5"

	"golang.org/x/json5bench/value"
)

// A Parser decodes a complete document.
type Parser interface {
	// Name returns the label used for this parser in reports.
	Name() string

	// Parse decodes text. If text is not a valid document, it
	// returns a *ParseError.
	Parse(text string) (value.Value, error)
}

// A ParseError reports that a parser rejected its input.
type ParseError struct {
	Parser string // Name of the rejecting parser
	Err    error  // Error returned by the underlying decoder
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Parser, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// A Mode selects the implementation of the strict parser.
type Mode int

const (
	// Accelerated decodes with github.com/goccy/go-json.
	Accelerated Mode = iota
	// Pure decodes with the reflection-based encoding/json.
	Pure
)

func (m Mode) String() string {
	switch m {
	case Accelerated:
		return "accelerated"
	case Pure:
		return "pure"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

type decodeFunc func(data []byte, v any) error

type decoder struct {
	name   string
	decode decodeFunc
}

// NewStrict returns the strict JSON parser in the given mode.
func NewStrict(mode Mode) Parser {
	switch mode {
	case Accelerated:
		return &decoder{"JSON", gojson.Unmarshal}
	case Pure:
		return &decoder{"JSON", json.Unmarshal}
	}
	panic(fmt.Sprintf("bad Mode %v", mode))
}

// NewRelaxed returns the JSON5 parser.
func NewRelaxed() Parser {
	return &decoder{"JSON5", json5.Unmarshal}
}

func (d *decoder) Name() string {
	return d.name
}

func (d *decoder) Parse(text string) (value.Value, error) {
	var x any
	if err := d.decode([]byte(text), &x); err != nil {
		return value.Value{}, &ParseError{d.name, err}
	}
	v, err := value.FromInterface(x)
	if err != nil {
		return value.Value{}, &ParseError{d.name, err}
	}
	return v, nil
}
