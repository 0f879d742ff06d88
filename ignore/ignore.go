/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package ignore implements the token-drop filters consumed by the
// token normalizer: dropping deprecated tokens and tokens whose ID
// matches a configured glob pattern.
package ignore

import "github.com/bmatcuk/doublestar/v4"

// Config mirrors the "Ignore configuration" external interface.
type Config struct {
	// Deprecated, when true, drops any token whose resolved $deprecated
	// is truthy.
	Deprecated bool

	// Tokens is a list of doublestar glob patterns; a token whose ID
	// matches any of them is dropped.
	Tokens []string
}

// ShouldDrop reports whether a token with the given id and resolved
// deprecated flag should be dropped, per §4.C step 7: applied after the
// token's fields (including $deprecated) have been fully assembled.
func (c Config) ShouldDrop(id string, deprecated bool) bool {
	if c.Deprecated && deprecated {
		return true
	}
	for _, pattern := range c.Tokens {
		if ok, _ := doublestar.Match(pattern, id); ok {
			return true
		}
	}
	return false
}
