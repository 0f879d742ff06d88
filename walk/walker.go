/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package walk implements the Document Walker and Token Normalizer: a
// single depth-first pass that classifies each object node as a token
// or a group, indexes groups (with their ancestor cascade), and emits
// normalized token records with their modes expanded.
package walk

import (
	"strings"

	"github.com/tokentree/dtcgnorm/document"
	"github.com/tokentree/dtcgnorm/group"
	"github.com/tokentree/dtcgnorm/ignore"
	"github.com/tokentree/dtcgnorm/token"
	"github.com/tokentree/dtcgnorm/value"
)

// Options configures a single document's walk.
type Options struct {
	Ignore ignore.Config
}

// Run walks src's document tree, returning every token that survives
// the ignore filters. idx accumulates groups across however many
// documents are walked into it, so callers merging multiple files
// should reuse one Indexer.
func Run(src *document.Source, idx *group.Indexer, opts Options) []*token.Normalized {
	w := &walker{src: src, idx: idx, opts: opts}
	var out []*token.Normalized
	w.walk(src.Root, nil, &out)
	return out
}

type walker struct {
	src  *document.Source
	idx  *group.Indexer
	opts Options
}

// walk classifies node at path: a Token if it is an object carrying a
// $value member, otherwise a Group if it is an object at all. Groups
// are indexed (and therefore have their cascade available) before
// their children are visited. Non-object nodes are leaves and are not
// descended into.
func (w *walker) walk(node *document.Node, path []string, out *[]*token.Normalized) {
	if node == nil || node.Kind != document.KindObject {
		return
	}

	if node.Has("$value") {
		if t := w.normalizeToken(node, path); t != nil {
			*out = append(*out, t)
		}
		return
	}

	w.idx.Index(path, node)

	for _, key := range node.Keys(true) {
		child, _ := node.Get(key)
		w.walk(child, append(append([]string{}, path...), key), out)
	}
}

func (w *walker) normalizeToken(node *document.Node, path []string) *token.Normalized {
	id := strings.Join(path, ".")
	jsonID := group.PathToJSONID(path)

	groupPath := path[:len(path)-1]
	g, _ := w.idx.Lookup(group.PathToJSONID(groupPath))

	t := token.NewNormalized(id, jsonID)
	t.Group = g
	t.Source = token.Source{Filename: w.src.Filename, Node: node}

	valueNode, hasValue := node.Get("$value")

	ownType, hasOwnType := stringMember(node, "$type")
	switch {
	case hasOwnType:
		t.Type = ownType
	case g != nil && g.Type != nil:
		t.Type = *g.Type
	}

	if desc, ok := stringMember(node, "$description"); ok {
		t.Description = &desc
	}

	t.Deprecated = deprecatedOf(node, g)

	if extNode, ok := node.Get("$extensions"); ok && extNode.Kind == document.KindObject {
		t.Extensions = nodeToAny(extNode).(map[string]any)
	}

	rootValue := fromNode(valueNode)
	t.Value = rootValue

	def := t.AddMode(token.DefaultMode)
	defSource := token.Source{Filename: w.src.Filename, Node: node}
	if hasValue {
		defSource.Node = valueNode
	}
	def.Value = rootValue
	def.OriginalValue = rootValue
	def.Source = defSource

	if extNode, ok := node.Get("$extensions"); ok {
		if modeNode, ok := extNode.Get("mode"); ok && modeNode.Kind == document.KindObject {
			for _, m := range modeNode.Object {
				ms := t.AddMode(m.Key)
				mv := fromNode(m.Value)
				ms.Value = mv
				ms.OriginalValue = mv
				ms.Source = token.Source{Filename: w.src.Filename, Node: m.Value}
			}
		}
	}

	deprecatedBool := t.Deprecated != nil && *t.Deprecated
	if w.opts.Ignore.ShouldDrop(id, deprecatedBool) {
		return nil
	}

	if g != nil {
		g.AddToken(id)
	}

	return t
}

func deprecatedOf(node *document.Node, g *group.Normalized) *bool {
	if v, ok := node.Get("$deprecated"); ok {
		switch v.Kind {
		case document.KindBool:
			b := v.Bool
			return &b
		case document.KindString:
			truth := true
			return &truth
		}
	}
	if g != nil {
		return g.Deprecated
	}
	return nil
}

func stringMember(node *document.Node, key string) (string, bool) {
	v, ok := node.Get(key)
	if !ok || v.Kind != document.KindString {
		return "", false
	}
	return v.Str, true
}

func fromNode(n *document.Node) value.Value {
	return value.FromNode(n)
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
