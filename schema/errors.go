/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema provides the sentinel errors shared across the
// normalization pipeline.
package schema

import "errors"

// Sentinel errors describing the four diagnostic kinds the alias
// resolver can report, plus structural failures that abort a document
// before the walk begins.
var (
	// ErrInvalidAliasSyntax indicates a non-alias string contained '{' or
	// '}' in a position where an alias was expected.
	ErrInvalidAliasSyntax = errors.New("invalid alias syntax")

	// ErrUnresolvedAlias indicates an alias's target token is not present
	// in the token set.
	ErrUnresolvedAlias = errors.New("could not resolve alias")

	// ErrCircularAlias indicates an alias chain revisited a ref already in
	// its own chain.
	ErrCircularAlias = errors.New("circular alias detected")

	// ErrTypeMismatch indicates an alias target's $type is not among the
	// expected types for the alias site.
	ErrTypeMismatch = errors.New("alias target type mismatch")

	// ErrNotAnObject indicates a top-level document node was not an
	// object, which is fatal to the surrounding load step.
	ErrNotAnObject = errors.New("document root is not an object")
)
