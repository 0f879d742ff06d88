/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package document_test

import (
	"testing"

	"github.com/tokentree/dtcgnorm/document"
)

func TestParseJSON(t *testing.T) {
	src, err := document.Parse("tokens.json", []byte(`{"color": {"$value": "#fff"}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	color, ok := src.Root.Get("color")
	if !ok {
		t.Fatal("expected color member")
	}
	value, ok := color.Get("$value")
	if !ok || value.Str != "#fff" {
		t.Errorf("unexpected $value: %+v", value)
	}
}

func TestParseJSONC(t *testing.T) {
	src, err := document.Parse("tokens.jsonc", []byte(`{
		// a comment
		"color": {"$value": "#fff"}
	}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !src.Root.Has("color") {
		t.Error("expected color member to survive comment stripping")
	}
}

func TestParseYAML(t *testing.T) {
	src, err := document.Parse("tokens.yaml", []byte("color:\n  \"$value\": \"#fff\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !src.Root.Has("color") {
		t.Error("expected color member")
	}
}

func TestParseRejectsNonObjectRoot(t *testing.T) {
	if _, err := document.Parse("tokens.json", []byte(`"just a string"`)); err == nil {
		t.Fatal("expected an error for a non-object document root")
	}
}

func TestParseNumbersAndBooleans(t *testing.T) {
	src, err := document.Parse("tokens.json", []byte(`{"n": 1.5, "b": true, "z": null}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	n, _ := src.Root.Get("n")
	if n.Kind != document.KindNumber || n.Num != 1.5 {
		t.Errorf("n = %+v", n)
	}
	b, _ := src.Root.Get("b")
	if b.Kind != document.KindBool || !b.Bool {
		t.Errorf("b = %+v", b)
	}
	z, _ := src.Root.Get("z")
	if z.Kind != document.KindNull {
		t.Errorf("z = %+v", z)
	}
}
