/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package natural provides the locale-independent, numeric-aware
// ordering the spec calls "natural sort" (e.g. "x10" sorts after "x2").
// It is built on golang.org/x/text/collate's Numeric option rather than
// a hand-rolled digit-run comparator.
package natural

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var col = collate.New(language.Und, collate.Numeric)

// Less reports whether a sorts before b under natural ordering.
func Less(a, b string) bool {
	return col.CompareString(a, b) < 0
}

// Sort orders ss in place using natural ordering.
func Sort(ss []string) {
	sort.Slice(ss, func(i, j int) bool { return Less(ss[i], ss[j]) })
}

// SortUnique returns a sorted, deduplicated copy of ss.
func SortUnique(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	Sort(out)
	return out
}
