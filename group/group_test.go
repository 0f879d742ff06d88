/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package group_test

import (
	"testing"

	"github.com/tokentree/dtcgnorm/document"
	"github.com/tokentree/dtcgnorm/group"
)

func strNode(s string) *document.Node { return &document.Node{Kind: document.KindString, Str: s} }
func boolNode(b bool) *document.Node  { return &document.Node{Kind: document.KindBool, Bool: b} }

func objNode(members ...document.Member) *document.Node {
	return &document.Node{Kind: document.KindObject, Object: members}
}

func TestCascadeInheritsNearestAncestorType(t *testing.T) {
	idx := group.New()

	root := objNode(document.Member{Key: "$type", Value: strNode("color")})
	idx.Index(nil, root)

	brand := objNode()
	idx.Index([]string{"brand"}, brand)

	g, ok := idx.Lookup("#/brand")
	if !ok {
		t.Fatal("expected group to be indexed")
	}
	if g.Type == nil || *g.Type != "color" {
		t.Errorf("expected cascaded $type color, got %v", g.Type)
	}
}

func TestNearestAncestorWinsOverDistant(t *testing.T) {
	idx := group.New()

	idx.Index(nil, objNode(document.Member{Key: "$type", Value: strNode("color")}))
	idx.Index([]string{"brand"}, objNode(document.Member{Key: "$type", Value: strNode("dimension")}))
	idx.Index([]string{"brand", "accent"}, objNode())

	got, _ := idx.Lookup("#/brand/accent")
	if got.Type == nil || *got.Type != "dimension" {
		t.Errorf("expected nearest ancestor's $type dimension, got %v", got.Type)
	}
}

func TestDeprecatedNullishOverride(t *testing.T) {
	idx := group.New()
	idx.Index(nil, objNode(document.Member{Key: "$deprecated", Value: boolNode(true)}))
	idx.Index([]string{"brand"}, objNode(document.Member{Key: "$deprecated", Value: boolNode(false)}))

	g, _ := idx.Lookup("#/brand")
	if g.Deprecated == nil || *g.Deprecated != false {
		t.Errorf("explicit false should override ancestor true, got %v", g.Deprecated)
	}
}

func TestIndexIsIdempotent(t *testing.T) {
	idx := group.New()
	node := objNode(document.Member{Key: "$type", Value: strNode("color")})

	first := idx.Index([]string{"brand"}, node)
	second := idx.Index([]string{"brand"}, node)

	if first.Type == nil || second.Type == nil || *first.Type != *second.Type {
		t.Error("re-indexing should be idempotent")
	}
}

func TestAddTokenNaturalSortAndDedup(t *testing.T) {
	g := &group.Normalized{}
	g.AddToken("x10")
	g.AddToken("x2")
	g.AddToken("x2")

	if len(g.Tokens) != 2 || g.Tokens[0] != "x2" || g.Tokens[1] != "x10" {
		t.Errorf("unexpected tokens: %v", g.Tokens)
	}
}
