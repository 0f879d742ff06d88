/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the flat, normalized token types produced by
// the walk phase and mutated in place by the resolve and link phases.
package token

import (
	"github.com/tokentree/dtcgnorm/document"
	"github.com/tokentree/dtcgnorm/group"
	"github.com/tokentree/dtcgnorm/value"
)

// Source points a token or mode back at the document AST node it was
// defined by, for diagnostics. It is a relation, not an ownership: the
// document's Source owns the node, the token only borrows it.
type Source struct {
	Filename string
	Node     *document.Node
}

// ModeState is one mode's worth of a token's alias state: its own
// $value, the pre-resolution original value, and the alias fields
// scoped to that mode alone.
type ModeState struct {
	Name          string
	Value         value.Value
	OriginalValue value.Value
	Source        Source

	AliasOf        *string
	AliasChain     []string
	AliasedBy      []string
	Dependencies   []string
	PartialAliasOf *value.Value
}

// Normalized is one token in the flat token set.
type Normalized struct {
	ID     string // dotted path, e.g. "color.danger"
	JSONID string // "#/color/danger"

	Type        string
	Description *string
	Deprecated  *bool
	Extensions  map[string]any

	// Value mirrors mode "." after the link phase promotes it.
	Value value.Value

	Group  *group.Normalized
	Source Source

	// Mode holds every declared mode, keyed by name; "." is always
	// present. ModeOrder lists names ascending with "." first, for
	// deterministic iteration.
	Mode      map[string]*ModeState
	ModeOrder []string

	// Root alias fields mirror mode "."'s after the link phase.
	AliasOf        *string
	AliasChain     []string
	AliasedBy      []string
	Dependencies   []string
	PartialAliasOf *value.Value
}

// DefaultMode is the name of the always-present default mode.
const DefaultMode = "."

// NewNormalized creates a token shell with an empty mode map; callers
// populate Type/Description/etc. and add the default mode (and any
// further modes) via AddMode before the resolve phase runs.
func NewNormalized(id, jsonID string) *Normalized {
	return &Normalized{
		ID:        id,
		JSONID:    jsonID,
		Mode:      map[string]*ModeState{},
		ModeOrder: nil,
	}
}

// AddMode registers a mode (if not already present) and keeps
// ModeOrder sorted with "." first, then the rest ascending.
func (t *Normalized) AddMode(name string) *ModeState {
	if ms, ok := t.Mode[name]; ok {
		return ms
	}
	ms := &ModeState{Name: name}
	t.Mode[name] = ms
	t.ModeOrder = append(t.ModeOrder, name)
	sortModes(t.ModeOrder)
	return ms
}

func sortModes(names []string) {
	// "." always first; remaining names ascending.
	for i := 1; i < len(names); i++ {
		for j := i; j > 0; j-- {
			a, b := names[j-1], names[j]
			if a == DefaultMode {
				break
			}
			if b == DefaultMode || b < a {
				names[j-1], names[j] = names[j], names[j-1]
				continue
			}
			break
		}
	}
}

// DefaultModeState returns the "." mode, which is always present once
// the token has been walked.
func (t *Normalized) DefaultModeState() *ModeState {
	return t.Mode[DefaultMode]
}
