/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pointer implements the DTCG alias <-> JSON Pointer encoding
// used throughout the alias resolver and graph linker.
package pointer

import (
	"regexp"
	"strings"
)

// aliasPattern matches a whole-string alias: "{dotted.path}" end to end.
// Aliases embedded in larger strings are not supported.
var aliasPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

// IsAlias reports whether value is exactly a curly-brace alias.
func IsAlias(value string) bool {
	return aliasPattern.MatchString(value)
}

// ParseAlias extracts the dotted path from a "{a.b.c}" alias string.
func ParseAlias(value string) (string, bool) {
	m := aliasPattern.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ToRef converts a dotted alias path ("color.brand.100") into its
// JSON-Pointer-style $ref ("#/color/brand/100/$value"). Within each
// dot-separated segment, '~' is escaped to '~0' and '/' to '~1' before
// the segments are rejoined with '/'.
func ToRef(aliasPath string) string {
	segments := strings.Split(aliasPath, ".")
	for i, s := range segments {
		s = strings.ReplaceAll(s, "~", "~0")
		s = strings.ReplaceAll(s, "/", "~1")
		segments[i] = s
	}
	return "#/" + strings.Join(segments, "/") + "/$value"
}

// TokenIDFromRef is the inverse of ToRef: it strips the leading "#/",
// drops a trailing "$value" segment (and anything after it), unescapes
// each segment, and rejoins with '.' to produce the dotted token ID.
func TokenIDFromRef(ref string) string {
	path := strings.TrimPrefix(ref, "#/")
	parts := strings.Split(path, "/")

	if idx := indexOf(parts, "$value"); idx >= 0 {
		parts = parts[:idx]
	}

	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		p = strings.ReplaceAll(p, "~0", "~")
		parts[i] = p
	}
	return strings.Join(parts, ".")
}

// OwnerRef strips a trailing "/$value" (and any sub-path after it) from
// a reference-site pointer, yielding the pointer of the token that owns
// the site, e.g. "#/shadow1/$value/color" -> "#/shadow1".
func OwnerRef(siteRef string) string {
	idx := strings.Index(siteRef, "/$value")
	if idx < 0 {
		return siteRef
	}
	return siteRef[:idx]
}

// SubPath returns the path segments after "/$value/" in a site pointer,
// or nil if the site addresses the $value itself with no sub-path.
func SubPath(siteRef string) []string {
	const marker = "/$value/"
	idx := strings.Index(siteRef, marker)
	if idx < 0 {
		return nil
	}
	rest := siteRef[idx+len(marker):]
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

// DottedToPointerPath joins a dotted token ID into its "#/a/b/c" form,
// with no trailing "/$value".
func DottedToPointerPath(dotted string) string {
	return "#/" + strings.ReplaceAll(dotted, ".", "/")
}

func indexOf(ss []string, target string) int {
	for i, s := range ss {
		if s == target {
			return i
		}
	}
	return -1
}
