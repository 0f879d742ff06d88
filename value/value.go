/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package value provides the dynamic value shape design tokens carry:
// a tagged sum type over string, number, bool, array, object, and null,
// mirroring the document package's Node but detached from source
// positions so it can be freely rebuilt as aliases resolve.
package value

import "github.com/tokentree/dtcgnorm/document"

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// Value is an immutable snapshot of a token's $value (or a sub-field of
// one). Resolving an alias produces a new Value rather than mutating
// this one in place.
type Value struct {
	Kind   Kind
	Str    string
	Num    float64
	Bool   bool
	Array  []Value
	Keys   []string // object key order
	Object map[string]Value
}

// Null is the zero Value.
var Null = Value{Kind: KindNull}

func String(s string) Value { return Value{Kind: KindString, Str: s} }
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }
func Bool(b bool) Value     { return Value{Kind: KindBool, Bool: b} }

func Array(items []Value) Value { return Value{Kind: KindArray, Array: items} }

// NewObject builds an object Value from ordered keys, preserving key
// order on later iteration.
func NewObject(keys []string, fields map[string]Value) Value {
	return Value{Kind: KindObject, Keys: keys, Object: fields}
}

// IsZero reports whether v is the Go zero Value (equivalent to Null).
func (v Value) IsZero() bool { return v.Kind == KindNull && v.Str == "" && !v.Bool && v.Num == 0 && v.Array == nil && v.Object == nil }

// Truthy reports whether v is truthy: zero numbers, empty strings,
// empty arrays, false, and null are all falsy; objects are truthy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNull:
		return false
	case KindString:
		return v.Str != ""
	case KindNumber:
		return v.Num != 0
	case KindBool:
		return v.Bool
	case KindArray:
		return len(v.Array) > 0
	case KindObject:
		return true
	default:
		return false
	}
}

// FromNode converts a parsed document.Node into a Value, recursively.
func FromNode(n *document.Node) Value {
	if n == nil {
		return Null
	}
	switch n.Kind {
	case document.KindString:
		return String(n.Str)
	case document.KindNumber:
		return Number(n.Num)
	case document.KindBool:
		return Bool(n.Bool)
	case document.KindArray:
		items := make([]Value, 0, len(n.Array))
		for _, e := range n.Array {
			items = append(items, FromNode(e))
		}
		return Array(items)
	case document.KindObject:
		keys := make([]string, 0, len(n.Object))
		fields := make(map[string]Value, len(n.Object))
		for _, m := range n.Object {
			keys = append(keys, m.Key)
			fields[m.Key] = FromNode(m.Value)
		}
		return NewObject(keys, fields)
	default:
		return Null
	}
}

// ToAny converts a Value into a plain Go value tree (string, float64,
// bool, nil, []any, map[string]any) suitable for JSON marshaling or
// display.
func ToAny(v Value) any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	case KindArray:
		out := make([]any, 0, len(v.Array))
		for _, e := range v.Array {
			out = append(out, ToAny(e))
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.Object))
		for _, k := range v.Keys {
			out[k] = ToAny(v.Object[k])
		}
		return out
	default:
		return nil
	}
}

// WithField returns a copy of an object Value with key set to val,
// appending key to the key order if it is new.
func (v Value) WithField(key string, val Value) Value {
	if v.Kind != KindObject {
		return v
	}
	fields := make(map[string]Value, len(v.Object))
	for k, fv := range v.Object {
		fields[k] = fv
	}
	keys := v.Keys
	if _, exists := fields[key]; !exists {
		keys = append(append([]string{}, v.Keys...), key)
	}
	fields[key] = val
	return Value{Kind: KindObject, Keys: keys, Object: fields}
}

// WithElement returns a copy of an array Value with index i set to val.
func (v Value) WithElement(i int, val Value) Value {
	if v.Kind != KindArray || i < 0 || i >= len(v.Array) {
		return v
	}
	items := make([]Value, len(v.Array))
	copy(items, v.Array)
	items[i] = val
	return Array(items)
}
