/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokentree/dtcgnorm/diag"
	"github.com/tokentree/dtcgnorm/document"
	"github.com/tokentree/dtcgnorm/ignore"
	"github.com/tokentree/dtcgnorm/pipeline"
)

func run(t *testing.T, src string, sink diag.Sink) *pipeline.Result {
	t.Helper()
	s, err := document.Parse("tokens.json", []byte(src))
	require.NoError(t, err)
	return pipeline.Run([]*document.Source{s}, pipeline.Options{Sink: sink})
}

func TestScenario1SimpleAlias(t *testing.T) {
	result := run(t, `{
		"color": {
			"red":    { "$value": "#ff0000", "$type": "color" },
			"danger": { "$value": "{color.red}", "$type": "color" }
		}
	}`, nil)

	danger := result.Tokens["color.danger"]
	require.NotNil(t, danger)
	require.Equal(t, "#ff0000", danger.Value.Str)
	require.NotNil(t, danger.AliasOf)
	require.Equal(t, "color.red", *danger.AliasOf)
	require.Equal(t, []string{"color.danger"}, result.Tokens["color.red"].AliasedBy)
}

func TestScenario2TransitiveChain(t *testing.T) {
	result := run(t, `{
		"a": { "$value": "{b}", "$type": "color" },
		"b": { "$value": "{c}", "$type": "color" },
		"c": { "$value": "#112233", "$type": "color" }
	}`, nil)

	require.Equal(t, []string{"b", "c"}, result.Tokens["a"].AliasChain)
	require.Equal(t, []string{"a", "b"}, result.Tokens["c"].AliasedBy)
}

func TestScenario3TypeMismatch(t *testing.T) {
	var collector diag.Collector
	run(t, `{
		"x": { "$value": "5px", "$type": "dimension" },
		"y": { "$value": "{x}", "$type": "color" }
	}`, &collector)

	var mismatches int
	for _, d := range collector.Diagnostics {
		if d.Kind == diag.TypeMismatch {
			mismatches++
		}
	}
	require.Equal(t, 1, mismatches)
}

func TestScenario4PartialAliasInsideShadow(t *testing.T) {
	result := run(t, `{
		"color": { "red": { "$value": "#ff0000", "$type": "color" } },
		"shadow1": {
			"$type": "shadow",
			"$value": {
				"color": "{color.red}",
				"offsetX": "2px",
				"offsetY": "2px",
				"blur": "4px",
				"spread": "0",
				"inset": false
			}
		}
	}`, nil)

	shadow1 := result.Tokens["shadow1"]
	require.NotNil(t, shadow1.PartialAliasOf)
	require.Equal(t, "color.red", shadow1.PartialAliasOf.Object["color"].Str)
}

func TestScenario5CubicBezierNumberAliasing(t *testing.T) {
	result := run(t, `{
		"timing": { "start": { "$value": 0.3, "$type": "number" } },
		"easing": { "$type": "cubicBezier", "$value": [0, "{timing.start}", 1, 1] }
	}`, nil)

	easing := result.Tokens["easing"]
	require.InDelta(t, 0.3, easing.Value.Array[1].Num, 1e-9)
	require.Contains(t, easing.Dependencies, "#/timing/start/$value")
}

func TestScenario6Cycle(t *testing.T) {
	var collector diag.Collector
	result := run(t, `{
		"a": { "$value": "{b}", "$type": "color" },
		"b": { "$value": "{a}", "$type": "color" }
	}`, &collector)

	var cycles int
	for _, d := range collector.Diagnostics {
		if d.Kind == diag.CircularAlias {
			cycles++
		}
	}
	require.GreaterOrEqual(t, cycles, 1)
	require.Equal(t, "{b}", result.Tokens["a"].Value.Str)
	require.Equal(t, "{a}", result.Tokens["b"].Value.Str)
}

func TestPerFileIgnoreOverridesDefault(t *testing.T) {
	a, err := document.Parse("a.json", []byte(`{
		"color": { "old": { "$value": "#ff0000", "$type": "color", "$deprecated": true } }
	}`))
	require.NoError(t, err)
	b, err := document.Parse("b.json", []byte(`{
		"spacing": { "old": { "$value": "4px", "$type": "dimension", "$deprecated": true } }
	}`))
	require.NoError(t, err)

	result := pipeline.Run([]*document.Source{a, b}, pipeline.Options{
		Ignore: ignore.Config{Deprecated: true},
		PerFileIgnore: map[string]ignore.Config{
			"b.json": {Deprecated: false},
		},
	})

	require.Nil(t, result.Tokens["color.old"])
	require.NotNil(t, result.Tokens["spacing.old"])
}

func TestAliasResolutionIsReproducible(t *testing.T) {
	result := run(t, `{
		"color": {
			"red":    { "$value": "#ff0000", "$type": "color" },
			"danger": { "$value": "{color.red}", "$type": "color" }
		}
	}`, nil)
	first := result.Tokens["color.danger"].Value.Str

	src, err := document.Parse("tokens.json", []byte(`{
		"color": {
			"red":    { "$value": "#ff0000", "$type": "color" },
			"danger": { "$value": "{color.red}", "$type": "color" }
		}
	}`))
	require.NoError(t, err)
	second := pipeline.Run([]*document.Source{src}, pipeline.Options{}).Tokens["color.danger"].Value.Str

	require.Equal(t, first, second)
}
