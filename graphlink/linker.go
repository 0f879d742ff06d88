/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package graphlink implements the Graph Linker: given the reference
// sites recorded by the alias resolver, it derives each token's
// dependencies, direct and transitive alias links, partial-alias map,
// and the reverse aliasedBy index, then promotes mode "."'s links to
// the token root.
package graphlink

import (
	"strconv"

	"github.com/tokentree/dtcgnorm/alias"
	"github.com/tokentree/dtcgnorm/natural"
	"github.com/tokentree/dtcgnorm/pointer"
	"github.com/tokentree/dtcgnorm/token"
	"github.com/tokentree/dtcgnorm/value"
)

// LinkMode derives alias links for every token's mode-m state from
// refMap, then, if mode is the default mode, promotes those links to
// each token's root fields.
func LinkMode(tokens map[string]*token.Normalized, mode string, refMap alias.ModeRefMap) {
	sites := refMap[mode]

	deps := map[string][]string{}       // ownerID -> raw dependency $refs (deduped later)
	aliasOf := map[string]string{}      // ownerID -> terminal token ID (whole-value alias only)
	aliasChain := map[string][]string{} // ownerID -> hop token IDs, whole-value alias only
	partial := map[string]*partialNode{}
	aliasedBy := map[string][]string{}

	for site, rs := range sites {
		id := pointer.TokenIDFromRef(pointer.OwnerRef(site))
		if _, ok := tokens[id]; !ok {
			continue
		}

		targets := make([]string, 0, len(rs.RefChain))
		for _, ref := range rs.RefChain {
			targets = append(targets, pointer.TokenIDFromRef(ref))
		}
		if len(targets) == 0 {
			continue
		}
		// Dependencies hold the raw $ref strings a token's value
		// mentions, not the token IDs those refs resolve to.
		deps[id] = append(deps[id], rs.RefChain...)

		nodes := append([]string{id}, targets[:len(targets)-1]...)
		for k, target := range targets {
			aliasedBy[target] = append(aliasedBy[target], nodes[:k+1]...)
		}

		if segments := pointer.SubPath(site); segments != nil {
			root, ok := partial[id]
			if !ok {
				root = &partialNode{}
				partial[id] = root
			}
			root.insert(segments, targets[len(targets)-1])
			continue
		}

		aliasOf[id] = targets[len(targets)-1]
		aliasChain[id] = targets
	}

	for id, t := range tokens {
		ms, ok := t.Mode[mode]
		if !ok {
			continue
		}

		ms.Dependencies = natural.SortUnique(deps[id])

		if terminal, ok := aliasOf[id]; ok {
			terminal := terminal
			ms.AliasOf = &terminal
			ms.AliasChain = aliasChain[id]
		} else {
			ms.AliasOf = nil
			ms.AliasChain = nil
		}

		if root, ok := partial[id]; ok {
			pv := root.toValue()
			ms.PartialAliasOf = &pv
		} else {
			ms.PartialAliasOf = nil
		}

		ms.AliasedBy = natural.SortUnique(aliasedBy[id])
	}

	if mode != token.DefaultMode {
		return
	}
	for _, t := range tokens {
		def := t.DefaultModeState()
		if def == nil {
			continue
		}
		t.Value = def.Value
		t.AliasOf = def.AliasOf
		t.AliasChain = def.AliasChain
		t.AliasedBy = def.AliasedBy
		t.Dependencies = def.Dependencies
		t.PartialAliasOf = def.PartialAliasOf
	}
}

// partialNode accumulates a nested tree of leaf token IDs keyed by the
// composite field/array-index path the alias resolver recorded each
// reference site under.
type partialNode struct {
	isLeaf bool
	leaf   string

	object      map[string]*partialNode
	objectOrder []string

	array    map[int]*partialNode
	arrayLen int
}

func (n *partialNode) insert(segments []string, targetID string) {
	if len(segments) == 0 {
		n.isLeaf = true
		n.leaf = targetID
		return
	}
	seg, rest := segments[0], segments[1:]
	if idx, err := strconv.Atoi(seg); err == nil {
		if n.array == nil {
			n.array = map[int]*partialNode{}
		}
		child, ok := n.array[idx]
		if !ok {
			child = &partialNode{}
			n.array[idx] = child
		}
		if idx+1 > n.arrayLen {
			n.arrayLen = idx + 1
		}
		child.insert(rest, targetID)
		return
	}
	if n.object == nil {
		n.object = map[string]*partialNode{}
	}
	child, ok := n.object[seg]
	if !ok {
		child = &partialNode{}
		n.object[seg] = child
		n.objectOrder = append(n.objectOrder, seg)
	}
	child.insert(rest, targetID)
}

func (n *partialNode) toValue() value.Value {
	if n.isLeaf {
		return value.String(n.leaf)
	}
	if n.array != nil {
		items := make([]value.Value, n.arrayLen)
		for i := 0; i < n.arrayLen; i++ {
			if c, ok := n.array[i]; ok {
				items[i] = c.toValue()
			} else {
				items[i] = value.Null
			}
		}
		return value.Array(items)
	}
	fields := make(map[string]value.Value, len(n.objectOrder))
	for _, k := range n.objectOrder {
		fields[k] = n.object[k].toValue()
	}
	return value.NewObject(n.objectOrder, fields)
}
