/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package diag provides the diagnostic sink capability passed to every
// component of the normalization pipeline. The pipeline never panics or
// returns an error for a problem in the input document; it reports a
// Diagnostic to the sink and keeps going.
package diag

import "github.com/tokentree/dtcgnorm/document"

// Kind identifies one of the four diagnostic categories the alias
// resolver can raise.
type Kind string

const (
	InvalidAliasSyntax Kind = "InvalidAliasSyntax"
	UnresolvedAlias    Kind = "UnresolvedAlias"
	CircularAlias      Kind = "CircularAlias"
	TypeMismatch       Kind = "TypeMismatch"
)

// Diagnostic is a single reported problem, carrying enough context for a
// consumer to point back at the offending source location.
type Diagnostic struct {
	Kind    Kind
	Group   string
	Label   string
	Message string
	Node    *document.Node
	Src     string
}

// Sink receives diagnostics. Implementations must not block or panic.
type Sink interface {
	Error(d Diagnostic)
}

// Discard is a Sink that drops every diagnostic. Useful in tests that
// only care about the resulting token set.
type Discard struct{}

func (Discard) Error(Diagnostic) {}

// Collector accumulates diagnostics in the order they were reported, for
// tests and callers that want to inspect them after a run.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) Error(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}
