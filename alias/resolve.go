/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package alias implements the Alias Resolver component: it traverses
// each token's per-mode $value, resolves DTCG aliases (including
// transitive chains and per-field nested aliases on composite types),
// checks target $type compatibility, and records every reference site
// into a ModeRefMap for the graph linker to consume.
package alias

import (
	"fmt"
	"strings"

	"github.com/tokentree/dtcgnorm/diag"
	"github.com/tokentree/dtcgnorm/document"
	"github.com/tokentree/dtcgnorm/pointer"
	"github.com/tokentree/dtcgnorm/schema"
	"github.com/tokentree/dtcgnorm/token"
	"github.com/tokentree/dtcgnorm/value"
)

// RefSite is one recorded alias reference: the file it was resolved
// from and the full hop-by-hop $ref chain to its terminal target.
type RefSite struct {
	Filename string
	RefChain []string
}

// ModeRefMap maps mode name -> site pointer -> RefSite, exactly the
// shape the graph linker expects.
type ModeRefMap map[string]map[string]RefSite

// NewModeRefMap returns an empty ModeRefMap.
func NewModeRefMap() ModeRefMap { return ModeRefMap{} }

func (m ModeRefMap) record(mode, site string, rs RefSite) {
	sites, ok := m[mode]
	if !ok {
		sites = map[string]RefSite{}
		m[mode] = sites
	}
	sites[site] = rs
}

// ResolveMode resolves every token's value for a single mode, mutating
// each token's ModeState.Value in place and recording reference sites
// into refMap. Tokens are visited in the order given by ids.
func ResolveMode(tokens map[string]*token.Normalized, ids []string, mode string, refMap ModeRefMap, sink diag.Sink) {
	for _, id := range ids {
		t := tokens[id]
		ms, ok := t.Mode[mode]
		if !ok {
			continue
		}
		c := &ctx{
			mode:     mode,
			tokenID:  t.ID,
			tokens:   tokens,
			refMap:   refMap,
			sink:     sink,
			filename: ms.Source.Filename,
		}
		expected := expectedTypesFor(t.Type)
		sitePath := pointer.DottedToPointerPath(t.ID) + "/$value"
		resolved := c.resolve(ms.OriginalValue, ms.Source.Node, expected, sitePath)
		// Falsy resolutions are still real resolutions; only an
		// unchanged-because-unresolved/invalid site keeps the original.
		ms.Value = resolved
	}
}

func expectedTypesFor(typeName string) []string {
	if typeName == "" {
		return nil
	}
	return []string{typeName}
}

type ctx struct {
	mode     string
	tokenID  string
	tokens   map[string]*token.Normalized
	refMap   ModeRefMap
	sink     diag.Sink
	filename string
}

func (c *ctx) resolve(v value.Value, node *document.Node, expectedTypes []string, sitePath string) value.Value {
	switch v.Kind {
	case value.KindString:
		return c.resolveString(v, node, expectedTypes, sitePath)

	case value.KindArray:
		elementExpected := expectedTypes
		if containsType(expectedTypes, "cubicBezier") {
			elementExpected = []string{"number"}
		}
		out := v
		for i, el := range v.Array {
			out = out.WithElement(i, c.resolve(el, node, elementExpected, fmt.Sprintf("%s/%d", sitePath, i)))
		}
		return out

	case value.KindObject:
		out := v
		for _, k := range v.Keys {
			slotExpected, isSlot := slotForFirst(expectedTypes, k)
			if !isSlot {
				continue
			}
			out = out.WithField(k, c.resolve(v.Object[k], node, slotExpected, sitePath+"/"+k))
		}
		return out

	default:
		return v
	}
}

func slotForFirst(expectedTypes []string, field string) ([]string, bool) {
	if len(expectedTypes) == 0 {
		return nil, false
	}
	return slotFor(expectedTypes[0], field)
}

func containsType(types []string, name string) bool {
	for _, t := range types {
		if t == name {
			return true
		}
	}
	return false
}

func (c *ctx) resolveString(v value.Value, node *document.Node, expectedTypes []string, sitePath string) value.Value {
	aliasPath, isAlias := pointer.ParseAlias(v.Str)
	if !isAlias {
		if !containsType(expectedTypes, "string") && (strings.ContainsRune(v.Str, '{') || strings.ContainsRune(v.Str, '}')) {
			c.report(diag.InvalidAliasSyntax, node, capitalize(schema.ErrInvalidAliasSyntax.Error())+".")
		}
		return v
	}
	return c.resolveAlias(aliasPath, v, node, expectedTypes, sitePath)
}

func (c *ctx) resolveAlias(aliasPath string, original value.Value, node *document.Node, expectedTypes []string, sitePath string) value.Value {
	ref := pointer.ToRef(aliasPath)
	visited := map[string]bool{}
	var chain []string

	var terminal *token.Normalized
	var terminalMode *token.ModeState

	for {
		if visited[ref] {
			c.report(diag.CircularAlias, node, capitalize(schema.ErrCircularAlias.Error())+".")
			return original
		}
		visited[ref] = true
		chain = append(chain, ref)

		targetID := pointer.TokenIDFromRef(ref)
		target, ok := c.tokens[targetID]
		if !ok {
			c.report(diag.UnresolvedAlias, node, fmt.Sprintf("%s {%s}.", capitalize(schema.ErrUnresolvedAlias.Error()), aliasPath))
			return original
		}

		tmode, ok := target.Mode[c.mode]
		if !ok {
			tmode = target.Mode[token.DefaultMode]
		}

		if tmode.OriginalValue.Kind == value.KindString {
			if nextPath, nextIsAlias := pointer.ParseAlias(tmode.OriginalValue.Str); nextIsAlias {
				ref = pointer.ToRef(nextPath)
				aliasPath = nextPath
				continue
			}
		}

		terminal = target
		terminalMode = tmode
		break
	}

	if len(expectedTypes) > 0 && !containsType(expectedTypes, terminal.Type) {
		c.report(diag.TypeMismatch, node, fmt.Sprintf("%s: target $type %q, expected %q.", capitalize(schema.ErrTypeMismatch.Error()), terminal.Type, strings.Join(expectedTypes, "/")))
		c.refMap.record(c.mode, sitePath, RefSite{Filename: c.filename, RefChain: chain})
		return original
	}

	c.refMap.record(c.mode, sitePath, RefSite{Filename: c.filename, RefChain: chain})

	// terminalMode's own value is never itself a whole-value alias (the
	// forwarding loop above only stops once that's true). Aliases nested
	// inside a composite terminal value are only resolved in it once that
	// token's own resolve pass for this mode has run.
	return terminalMode.Value
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (c *ctx) report(kind diag.Kind, node *document.Node, message string) {
	if c.sink == nil {
		return
	}
	c.sink.Error(diag.Diagnostic{
		Kind:    kind,
		Group:   c.mode,
		Label:   c.tokenID,
		Message: message,
		Node:    node,
		Src:     c.filename,
	})
}
