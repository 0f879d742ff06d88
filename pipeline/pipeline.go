/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pipeline orchestrates the three-phase normalization core:
// walk every input document into a flat token set, resolve aliases mode
// by mode, then link the resulting dependency and alias graph. The
// whole run is deterministic and single-threaded by design, so the
// phases share no mutable state beyond what each explicitly hands the
// next.
package pipeline

import (
	"sort"

	"github.com/tokentree/dtcgnorm/alias"
	"github.com/tokentree/dtcgnorm/diag"
	"github.com/tokentree/dtcgnorm/document"
	"github.com/tokentree/dtcgnorm/graphlink"
	"github.com/tokentree/dtcgnorm/group"
	"github.com/tokentree/dtcgnorm/ignore"
	"github.com/tokentree/dtcgnorm/token"
	"github.com/tokentree/dtcgnorm/walk"
)

// Options configures a normalization run.
type Options struct {
	// Ignore is the default ignore configuration applied to every
	// source, unless overridden per file in PerFileIgnore.
	Ignore ignore.Config

	// PerFileIgnore, keyed by document.Source.Filename, overrides Ignore
	// for the tokens walked out of that one file. Populated from
	// config.FileSpec.Ignore via config.Config.IgnoreForFile.
	PerFileIgnore map[string]ignore.Config

	Sink diag.Sink
}

func (o Options) ignoreFor(filename string) ignore.Config {
	if cfg, ok := o.PerFileIgnore[filename]; ok {
		return cfg
	}
	return o.Ignore
}

// Result is the immutable output of a normalization run: every
// surviving token keyed by its dotted ID, plus the groups discovered
// along the way.
type Result struct {
	Tokens map[string]*token.Normalized
	Groups *group.Indexer
}

// Run normalizes one or more parsed documents into a single flat token
// set. Documents are walked in the order given; a later document's
// group cascade sees groups indexed by earlier documents, so ancestor
// properties compose across files the same way they would within one.
func Run(sources []*document.Source, opts Options) *Result {
	sink := opts.Sink
	if sink == nil {
		sink = diag.Discard{}
	}

	idx := group.New()
	tokens := map[string]*token.Normalized{}

	// Phase 1: walk. ids tracks walk.Run's DFS emission order across all
	// sources; ranging the tokens map instead would make resolution order
	// (and therefore the resolved value of an alias to an
	// not-yet-resolved composite) depend on map iteration, which Go does
	// not guarantee to be stable.
	var ids []string
	for _, src := range sources {
		for _, t := range walk.Run(src, idx, walk.Options{Ignore: opts.ignoreFor(src.Filename)}) {
			if _, exists := tokens[t.ID]; !exists {
				ids = append(ids, t.ID)
			}
			tokens[t.ID] = t
		}
	}

	modes := collectModes(tokens)

	// Phase 2: resolve, one mode at a time, tokens in a stable order so
	// a run over the same input is reproducible.
	refMap := alias.NewModeRefMap()
	for _, mode := range modes {
		alias.ResolveMode(tokens, ids, mode, refMap, sink)
	}

	// Phase 3: link, in the same mode order; LinkMode promotes only the
	// default mode's links to each token's root fields.
	for _, mode := range modes {
		graphlink.LinkMode(tokens, mode, refMap)
	}

	return &Result{Tokens: tokens, Groups: idx}
}

// collectModes returns every mode name present on any token, "."
// first, the rest ascending, so resolution order is deterministic
// regardless of map iteration order.
func collectModes(tokens map[string]*token.Normalized) []string {
	seen := map[string]bool{token.DefaultMode: true}
	order := []string{token.DefaultMode}
	for _, t := range tokens {
		for _, m := range t.ModeOrder {
			if seen[m] {
				continue
			}
			seen[m] = true
			order = append(order, m)
		}
	}
	// token.ModeOrder already keeps "." first per-token; re-sort the
	// merged set the same way so cross-token mode names come out
	// ascending too.
	rest := append([]string{}, order[1:]...)
	sort.Strings(rest)
	return append([]string{token.DefaultMode}, rest...)
}
