/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package document provides the navigable node tree the normalization
// core walks. A Source pairs one parsed document with the filename and
// raw bytes it came from, so diagnostics can point back at a precise
// line and column.
package document

// Kind tags the dynamic shape of a Node, mirroring the JSON/YAML value
// model: string, number, bool, array, object, or null.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// Member is one key/value pair of an object Node, kept in source order.
type Member struct {
	Key   string
	Value *Node
}

// Node is one position in the parsed document tree, carrying its
// source location for diagnostics.
type Node struct {
	Kind Kind

	Str    string
	Num    float64
	Bool   bool
	Array  []*Node
	Object []Member

	Line   int
	Column int
}

// Get returns the member value for key on an object node, preserving
// first-match semantics. Returns (nil, false) for non-objects or a
// missing key.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindObject {
		return nil, false
	}
	for _, m := range n.Object {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether an object node has a member named key.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Keys returns the object's member names in source order, skipping
// metadata keys (those starting with '$') when skipDollar is true.
func (n *Node) Keys(skipDollar bool) []string {
	if n == nil || n.Kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(n.Object))
	for _, m := range n.Object {
		if skipDollar && len(m.Key) > 0 && m.Key[0] == '$' {
			continue
		}
		keys = append(keys, m.Key)
	}
	return keys
}

// IsScalar reports whether the node is a string, number, bool, or null.
func (n *Node) IsScalar() bool {
	if n == nil {
		return true
	}
	switch n.Kind {
	case KindString, KindNumber, KindBool, KindNull:
		return true
	}
	return false
}

// Source pairs a parsed document with its origin, per the "Input
// source" abstraction consumed by the normalization core.
type Source struct {
	Filename string
	Src      []byte
	Root     *Node
}
