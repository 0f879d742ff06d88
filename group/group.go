/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package group implements the Group Indexer component: it maintains
// the global path -> GroupNormalized mapping and performs the
// ancestor-property cascade ($type, $deprecated, $description)
// described by the normalization spec. $extensions is taken only from
// the group's own node and is not inherited from ancestors.
package group

import (
	"strings"

	"github.com/tokentree/dtcgnorm/document"
	"github.com/tokentree/dtcgnorm/natural"
)

// Normalized is one group in the flattened token tree.
type Normalized struct {
	ID     string // dotted path, e.g. "color.brand"
	JSONID string // "#/color/brand"
	Path   []string

	// Type, Description, and Deprecated use nullish-override semantics:
	// nil means "inherit from the nearest ancestor that sets it",
	// any non-nil value (including an explicit false) wins locally.
	Type        *string
	Description *string
	Deprecated  *bool
	Extensions  map[string]any

	// Tokens holds the dotted IDs of tokens directly in this group, kept
	// deduplicated and naturally sorted by AddToken as tokens register.
	Tokens []string
}

// Indexer owns the group table and performs the ancestor cascade. It is
// not safe for concurrent use; the pipeline's walk phase is
// single-threaded by design.
type Indexer struct {
	groups map[string]*Normalized
	order  []string // insertion order, ancestors always precede descendants
}

// New creates an empty Indexer.
func New() *Indexer {
	return &Indexer{groups: make(map[string]*Normalized)}
}

// Lookup returns the group at jsonID if one has been indexed.
func (idx *Indexer) Lookup(jsonID string) (*Normalized, bool) {
	g, ok := idx.groups[jsonID]
	return g, ok
}

// All returns every indexed group in insertion (ancestors-first) order.
func (idx *Indexer) All() []*Normalized {
	out := make([]*Normalized, 0, len(idx.order))
	for _, id := range idx.order {
		out = append(out, idx.groups[id])
	}
	return out
}

// PathToID joins path segments into the dotted group ID.
func PathToID(path []string) string {
	return strings.Join(path, ".")
}

// PathToJSONID joins path segments into the "#/a/b" group JSONID.
func PathToJSONID(path []string) string {
	if len(path) == 0 {
		return "#/"
	}
	return "#/" + strings.Join(path, "/")
}

// Index registers (or re-registers) the group at path, cascading
// ancestor properties and then applying any local override the node
// declares. It is idempotent: calling it again for the same path and
// node content produces the same result, because the cascade always
// starts from the group's currently-stored state and the local override
// is applied last and unconditionally.
func (idx *Indexer) Index(path []string, node *document.Node) *Normalized {
	id := PathToID(path)
	jsonID := PathToJSONID(path)

	g, existed := idx.groups[jsonID]
	if !existed {
		g = &Normalized{ID: id, JSONID: jsonID, Path: append([]string{}, path...)}
		idx.groups[jsonID] = g
		idx.order = append(idx.order, jsonID)
	}

	idx.cascade(g)
	applyLocalOverride(g, node)

	return g
}

// cascade copies $type/$description/$deprecated from every ancestor of
// g into g wherever g's own field is still nil, nearest ancestor
// winning. Ancestors are found structurally (path-prefix comparison)
// rather than by lexicographic key sort, so cascade order is correct
// even when sibling group names don't happen to sort the same way as
// their path depth.
func (idx *Indexer) cascade(g *Normalized) {
	type ancestor struct {
		depth int
		g     *Normalized
	}
	var ancestors []ancestor
	for _, other := range idx.groups {
		if other == g {
			continue
		}
		if isProperPrefix(other.Path, g.Path) {
			ancestors = append(ancestors, ancestor{depth: len(other.Path), g: other})
		}
	}
	// Nearest ancestor (greatest depth) is visited first; each field is
	// only filled while still nil, so it wins over more distant ancestors
	// when both set the same nullish field.
	for d := len(g.Path) - 1; d >= 0; d-- {
		for _, a := range ancestors {
			if a.depth != d {
				continue
			}
			if g.Type == nil && a.g.Type != nil {
				g.Type = a.g.Type
			}
			if g.Description == nil && a.g.Description != nil {
				g.Description = a.g.Description
			}
			if g.Deprecated == nil && a.g.Deprecated != nil {
				g.Deprecated = a.g.Deprecated
			}
		}
	}
}

func isProperPrefix(prefix, full []string) bool {
	if len(prefix) >= len(full) {
		return false
	}
	for i, seg := range prefix {
		if full[i] != seg {
			return false
		}
	}
	return true
}

func applyLocalOverride(g *Normalized, node *document.Node) {
	if node == nil || node.Kind != document.KindObject {
		return
	}
	if v, ok := node.Get("$type"); ok && v.Kind == document.KindString {
		s := v.Str
		g.Type = &s
	}
	if v, ok := node.Get("$description"); ok && v.Kind == document.KindString {
		s := v.Str
		g.Description = &s
	}
	if v, ok := node.Get("$deprecated"); ok {
		b := v.Bool
		if v.Kind == document.KindBool {
			g.Deprecated = &b
		} else if v.Kind == document.KindString {
			truth := true
			g.Deprecated = &truth
		}
	}
	if v, ok := node.Get("$extensions"); ok && v.Kind == document.KindObject {
		ext := make(map[string]any, len(v.Object))
		for _, m := range v.Object {
			ext[m.Key] = nodeToAny(m.Value)
		}
		g.Extensions = ext
	}
}

func nodeToAny(n *document.Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case document.KindString:
		return n.Str
	case document.KindNumber:
		return n.Num
	case document.KindBool:
		return n.Bool
	case document.KindArray:
		out := make([]any, 0, len(n.Array))
		for _, e := range n.Array {
			out = append(out, nodeToAny(e))
		}
		return out
	case document.KindObject:
		out := make(map[string]any, len(n.Object))
		for _, m := range n.Object {
			out[m.Key] = nodeToAny(m.Value)
		}
		return out
	default:
		return nil
	}
}

// AddToken registers tokenID under the group's Tokens list, keeping it
// deduplicated and naturally sorted.
func (g *Normalized) AddToken(tokenID string) {
	for _, t := range g.Tokens {
		if t == tokenID {
			return
		}
	}
	g.Tokens = append(g.Tokens, tokenID)
	natural.Sort(g.Tokens)
}
