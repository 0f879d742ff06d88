/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package alias

// Slot describes one nested field of a composite token type and the
// $types an alias in that field is allowed to target.
type Slot struct {
	Field    string
	Expected []string
}

// compositeSlots enumerates, verbatim, the nested-alias slots of every
// composite DTCG token type.
var compositeSlots = map[string][]Slot{
	"border": {
		{"color", []string{"color"}},
		{"stroke", []string{"strokeStyle"}},
		{"width", []string{"dimension"}},
	},
	"gradient": {
		{"color", []string{"color"}},
		{"position", []string{"number"}},
	},
	"shadow": {
		{"color", []string{"color"}},
		{"offsetX", []string{"dimension"}},
		{"offsetY", []string{"dimension"}},
		{"blur", []string{"dimension"}},
		{"spread", []string{"dimension"}},
		{"inset", []string{"boolean"}},
	},
	"strokeStyle": {
		{"dashArray", []string{"dimension"}},
	},
	"transition": {
		{"duration", []string{"duration"}},
		{"delay", []string{"duration"}},
		{"timingFunction", []string{"cubicBezier"}},
	},
	"typography": {
		{"fontFamily", []string{"fontFamily"}},
		{"fontWeight", []string{"fontWeight"}},
		{"fontSize", []string{"dimension"}},
		{"lineHeight", []string{"dimension", "number"}},
		{"letterSpacing", []string{"dimension"}},
	},
}

// slotFor returns the expected types for field on a composite typeName,
// if that field is a known nested-alias slot.
func slotFor(typeName, field string) ([]string, bool) {
	slots, ok := compositeSlots[typeName]
	if !ok {
		return nil, false
	}
	for _, s := range slots {
		if s.Field == field {
			return s.Expected, true
		}
	}
	return nil, false
}
