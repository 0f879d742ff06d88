/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package graphlink_test

import (
	"reflect"
	"testing"

	"github.com/tokentree/dtcgnorm/alias"
	"github.com/tokentree/dtcgnorm/diag"
	"github.com/tokentree/dtcgnorm/graphlink"
	"github.com/tokentree/dtcgnorm/token"
	"github.com/tokentree/dtcgnorm/value"
)

func newToken(id, typeName string, v value.Value) *token.Normalized {
	tok := token.NewNormalized(id, "#/"+id)
	tok.Type = typeName
	ms := tok.AddMode(token.DefaultMode)
	ms.Value = v
	ms.OriginalValue = v
	return tok
}

func TestLinkSimpleAlias(t *testing.T) {
	tokens := map[string]*token.Normalized{
		"color.red":    newToken("color.red", "color", value.String("#ff0000")),
		"color.danger": newToken("color.danger", "color", value.String("{color.red}")),
	}

	refMap := alias.NewModeRefMap()
	alias.ResolveMode(tokens, []string{"color.red", "color.danger"}, token.DefaultMode, refMap, diag.Discard{})
	graphlink.LinkMode(tokens, token.DefaultMode, refMap)

	danger := tokens["color.danger"]
	if danger.AliasOf == nil || *danger.AliasOf != "color.red" {
		t.Fatalf("aliasOf = %v, want color.red", danger.AliasOf)
	}

	red := tokens["color.red"]
	if !reflect.DeepEqual(red.AliasedBy, []string{"color.danger"}) {
		t.Errorf("aliasedBy = %v, want [color.danger]", red.AliasedBy)
	}
}

func TestLinkTransitiveChainAndReverseLinks(t *testing.T) {
	tokens := map[string]*token.Normalized{
		"a": newToken("a", "color", value.String("{b}")),
		"b": newToken("b", "color", value.String("{c}")),
		"c": newToken("c", "color", value.String("#112233")),
	}

	refMap := alias.NewModeRefMap()
	alias.ResolveMode(tokens, []string{"a", "b", "c"}, token.DefaultMode, refMap, diag.Discard{})
	graphlink.LinkMode(tokens, token.DefaultMode, refMap)

	if !reflect.DeepEqual(tokens["a"].AliasChain, []string{"b", "c"}) {
		t.Errorf("aliasChain = %v, want [b c]", tokens["a"].AliasChain)
	}
	if !reflect.DeepEqual(tokens["c"].AliasedBy, []string{"a", "b"}) {
		t.Errorf("c.aliasedBy = %v, want [a b]", tokens["c"].AliasedBy)
	}
	if !reflect.DeepEqual(tokens["b"].AliasedBy, []string{"a"}) {
		t.Errorf("b.aliasedBy = %v, want [a]", tokens["b"].AliasedBy)
	}
}

func TestLinkPartialAliasInsideShadow(t *testing.T) {
	shadowValue := value.NewObject(
		[]string{"color", "offsetX"},
		map[string]value.Value{
			"color":   value.String("{color.red}"),
			"offsetX": value.String("2px"),
		},
	)

	tokens := map[string]*token.Normalized{
		"color.red": newToken("color.red", "color", value.String("#ff0000")),
		"shadow1":   newToken("shadow1", "shadow", shadowValue),
	}

	refMap := alias.NewModeRefMap()
	alias.ResolveMode(tokens, []string{"color.red", "shadow1"}, token.DefaultMode, refMap, diag.Discard{})
	graphlink.LinkMode(tokens, token.DefaultMode, refMap)

	shadow1 := tokens["shadow1"]
	if shadow1.AliasOf != nil {
		t.Errorf("a partial alias must not set aliasOf, got %v", shadow1.AliasOf)
	}
	if shadow1.PartialAliasOf == nil {
		t.Fatal("expected partialAliasOf to be populated")
	}
	got := shadow1.PartialAliasOf.Object["color"].Str
	if got != "color.red" {
		t.Errorf("partialAliasOf.color = %q, want color.red", got)
	}
}

func TestLinkDependenciesHoldRawRefs(t *testing.T) {
	tokens := map[string]*token.Normalized{
		"color.red":    newToken("color.red", "color", value.String("#ff0000")),
		"color.danger": newToken("color.danger", "color", value.String("{color.red}")),
	}

	refMap := alias.NewModeRefMap()
	alias.ResolveMode(tokens, []string{"color.red", "color.danger"}, token.DefaultMode, refMap, diag.Discard{})
	graphlink.LinkMode(tokens, token.DefaultMode, refMap)

	deps := tokens["color.danger"].Dependencies
	if !reflect.DeepEqual(deps, []string{"#/color/red/$value"}) {
		t.Errorf("dependencies = %v, want [#/color/red/$value]", deps)
	}
}

func TestLinkPromotesDefaultModeToRoot(t *testing.T) {
	tokens := map[string]*token.Normalized{
		"color.red":    newToken("color.red", "color", value.String("#ff0000")),
		"color.danger": newToken("color.danger", "color", value.String("{color.red}")),
	}

	refMap := alias.NewModeRefMap()
	alias.ResolveMode(tokens, []string{"color.red", "color.danger"}, token.DefaultMode, refMap, diag.Discard{})
	graphlink.LinkMode(tokens, token.DefaultMode, refMap)

	if tokens["color.danger"].Value.Str != "#ff0000" {
		t.Errorf("root value = %v, want promoted #ff0000", tokens["color.danger"].Value)
	}
}
