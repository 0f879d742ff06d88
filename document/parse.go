/*
Copyright 2026 tokentree contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package document

import (
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/tokentree/dtcgnorm/schema"
)

// Parse builds a Source from raw JSON(C) or YAML bytes. JSON is a
// strict subset of YAML, so both dialects are decoded through the same
// yaml.v3 AST, which is what gives every Node its line/column: the
// underlying document model is assumed pre-parsed by a caller in
// production use, but something has to build the tree this package
// walks, and yaml.v3 is the library the rest of this module already
// depends on for position tracking.
func Parse(filename string, src []byte) (*Source, error) {
	clean := src
	if isLikelyJSON(src) {
		clean = jsonc.ToJSON(src)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(clean, &root); err != nil {
		return nil, fmt.Errorf("document: parse %s: %w", filename, err)
	}

	var node *Node
	if len(root.Content) > 0 {
		node = fromYAML(root.Content[0])
	} else {
		node = &Node{Kind: KindNull}
	}

	if node.Kind != KindObject {
		return nil, fmt.Errorf("document: parse %s: %w", filename, schema.ErrNotAnObject)
	}

	return &Source{Filename: filename, Src: src, Root: node}, nil
}

func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r', 0xEF, 0xBB, 0xBF:
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func fromYAML(n *yaml.Node) *Node {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) > 0 {
			return fromYAML(n.Content[0])
		}
		return &Node{Kind: KindNull}

	case yaml.MappingNode:
		obj := &Node{Kind: KindObject, Line: n.Line - 1, Column: n.Column - 1}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			val := n.Content[i+1]
			obj.Object = append(obj.Object, Member{
				Key:   key.Value,
				Value: fromYAML(val),
			})
		}
		return obj

	case yaml.SequenceNode:
		arr := &Node{Kind: KindArray, Line: n.Line - 1, Column: n.Column - 1}
		for _, c := range n.Content {
			arr.Array = append(arr.Array, fromYAML(c))
		}
		return arr

	case yaml.ScalarNode:
		return scalarFromYAML(n)

	case yaml.AliasNode:
		if n.Alias != nil {
			return fromYAML(n.Alias)
		}
		return &Node{Kind: KindNull}

	default:
		return &Node{Kind: KindNull}
	}
}

func scalarFromYAML(n *yaml.Node) *Node {
	loc := func(k Kind) *Node { return &Node{Kind: k, Line: n.Line - 1, Column: n.Column - 1} }

	switch n.Tag {
	case "!!null":
		return loc(KindNull)
	case "!!bool":
		node := loc(KindBool)
		node.Bool = n.Value == "true"
		return node
	case "!!int", "!!float":
		var f float64
		if _, err := fmt.Sscanf(n.Value, "%g", &f); err != nil {
			node := loc(KindString)
			node.Str = n.Value
			return node
		}
		node := loc(KindNumber)
		node.Num = f
		return node
	default:
		node := loc(KindString)
		node.Str = n.Value
		return node
	}
}
