// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value provides a decoder-independent representation of a
// decoded JSON or JSON5 document.
//
// Different decoders produce different Go representations of the same
// document (maps with randomized iteration order, NaN numbers that are
// unequal to themselves, and so on). A Value normalizes these into a single tagged union so two
// decoded documents can be compared structurally without relying on
// reflect.DeepEqual.
package value

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// A Kind is the type of a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Value is a single decoded document node.
//
// Only the field corresponding to Kind is meaningful; the others are
// zero.
type Value struct {
	Kind Kind

	Bool bool
	Num  float64
	Str  string

	// Elems holds the elements of an Array, in document order.
	Elems []Value

	// Members holds the members of an Object, sorted by Key. Keys
	// are unique.
	Members []Member
}

// A Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// FromInterface converts the result of decoding a document into an
// "any" with an encoding/json-compatible decoder.
func FromInterface(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Value{Kind: Null}, nil
	case bool:
		return Value{Kind: Bool, Bool: x}, nil
	case float64:
		return Value{Kind: Number, Num: x}, nil
	case string:
		return Value{Kind: String, Str: x}, nil
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			v, err := FromInterface(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Value{Kind: Array, Elems: elems}, nil
	case map[string]any:
		members := make([]Member, 0, len(x))
		for k, e := range x {
			v, err := FromInterface(e)
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{k, v})
		}
		sort.Slice(members, func(i, j int) bool {
			return members[i].Key < members[j].Key
		})
		return Value{Kind: Object, Members: members}, nil
	}
	return Value{}, fmt.Errorf("unsupported decoded type %T", x)
}

// Get returns the value of Object member key.
func (v Value) Get(key string) (Value, bool) {
	i := sort.Search(len(v.Members), func(i int) bool {
		return v.Members[i].Key >= key
	})
	if i < len(v.Members) && v.Members[i].Key == key {
		return v.Members[i].Value, true
	}
	return Value{}, false
}

// Equal reports whether a and b are structurally the same document:
// the same kinds, scalars, element order, and member sets.
//
// Two NaN numbers are equal.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Null:
		return true
	case Bool:
		return a.Bool == b.Bool
	case Number:
		if math.IsNaN(a.Num) {
			return math.IsNaN(b.Num)
		}
		return a.Num == b.Num
	case String:
		return a.Str == b.Str
	case Array:
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if a.Members[i].Key != b.Members[i].Key {
				return false
			}
			if !Equal(a.Members[i].Value, b.Members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns a compact JSON-like rendering of v. Non-finite
// numbers are written as NaN, Infinity, and -Infinity.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.Kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case Number:
		switch {
		case math.IsNaN(v.Num):
			sb.WriteString("NaN")
		case math.IsInf(v.Num, 1):
			sb.WriteString("Infinity")
		case math.IsInf(v.Num, -1):
			sb.WriteString("-Infinity")
		default:
			sb.WriteString(strconv.FormatFloat(v.Num, 'g', -1, 64))
		}
	case String:
		sb.WriteString(strconv.Quote(v.Str))
	case Array:
		sb.WriteByte('[')
		for i, e := range v.Elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.write(sb)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(m.Key))
			sb.WriteByte(':')
			m.Value.write(sb)
		}
		sb.WriteByte('}')
	}
}
