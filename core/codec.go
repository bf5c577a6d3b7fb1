// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Order-preserving JSON and YAML codecs for Map.
//
// encoding/json decodes objects into Go maps and loses key order, so JSON input
// is walked token-wise with jsonparser. YAML input is walked as a yaml.Node tree,
// which keeps mapping order natively.
//
// Null neighbour lists (`"A": null`, `A:` in YAML) decode as empty lists.

package core

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes a JSON object {"region": ["neighbour", ...], ...} into a new Map,
// keeping the document's key order as region order.
func ParseJSON(data []byte) (*Map, error) {
	m := NewMap()
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	return m, nil
}

// ParseYAML decodes a YAML mapping (JSON documents are accepted too) into a new Map.
func ParseYAML(data []byte) (*Map, error) {
	m := NewMap()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}

	return m, nil
}

// UnmarshalJSON implements json.Unmarshaler. The receiver's previous content is
// replaced only when the whole document decodes successfully.
func (m *Map) UnmarshalJSON(data []byte) error {
	// 1. The document itself must be an object.
	_, dt, _, err := jsonparser.Get(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotObject, err)
	}
	if dt != jsonparser.Object {
		return fmt.Errorf("%w: got %s", ErrNotObject, dt)
	}

	// 2. Walk keys in document order.
	fresh := NewMap()
	err = jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		// ObjectEach hands over keys already unescaped.
		id := string(key)
		nbs, lerr := decodeJSONList(id, value, vt)
		if lerr != nil {
			return lerr
		}

		return fresh.SetNeighbors(id, nbs...)
	})
	if err != nil {
		return err
	}

	m.replace(fresh)

	return nil
}

// decodeJSONList decodes one neighbour list value.
func decodeJSONList(id string, value []byte, vt jsonparser.ValueType) ([]string, error) {
	switch vt {
	case jsonparser.Null:
		return nil, nil
	case jsonparser.Array:
	default:
		return nil, fmt.Errorf("region %q: %w: got %s", id, ErrNotList, vt)
	}

	var (
		nbs     []string
		itemErr error
	)
	_, err := jsonparser.ArrayEach(value, func(item []byte, it jsonparser.ValueType, _ int, _ error) {
		if itemErr != nil {
			return
		}
		if it != jsonparser.String {
			itemErr = fmt.Errorf("region %q: %w: item of type %s", id, ErrNotList, it)
			return
		}
		s, perr := jsonparser.ParseString(item)
		if perr != nil {
			itemErr = fmt.Errorf("region %q: %w: %v", id, ErrNotList, perr)
			return
		}
		nbs = append(nbs, s)
	})
	if err != nil {
		return nil, fmt.Errorf("region %q: %w: %v", id, ErrNotList, err)
	}
	if itemErr != nil {
		return nil, itemErr
	}

	return nbs, nil
}

// MarshalJSON implements json.Marshaler, emitting regions in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	order, adj := m.Snapshot()

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(adj[id])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler on the node tree so mapping order survives.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrNotObject)
	}

	fresh := NewMap(WithCapacity(len(node.Content) / 2))
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: %w: non-scalar key", k.Line, ErrNotObject)
		}

		var nbs []string
		switch {
		case v.Kind == yaml.ScalarNode && v.ShortTag() == "!!null":
		case v.Kind == yaml.SequenceNode:
			nbs = make([]string, 0, len(v.Content))
			for _, item := range v.Content {
				if item.Kind != yaml.ScalarNode {
					return fmt.Errorf("line %d: region %q: %w", item.Line, k.Value, ErrNotList)
				}
				nbs = append(nbs, item.Value)
			}
		default:
			return fmt.Errorf("line %d: region %q: %w", v.Line, k.Value, ErrNotList)
		}

		if err := fresh.SetNeighbors(k.Value, nbs...); err != nil {
			return fmt.Errorf("line %d: %w", k.Line, err)
		}
	}

	m.replace(fresh)

	return nil
}

// MarshalYAML implements yaml.Marshaler: a block mapping of flow sequences,
// e.g. `A: [B, C]`, in insertion order.
func (m *Map) MarshalYAML() (interface{}, error) {
	order, adj := m.Snapshot()

	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, id := range order {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, nb := range adj[id] {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: nb})
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id},
			seq,
		)
	}

	return root, nil
}

// replace swaps the receiver's catalog for src's. src must not be shared.
func (m *Map) replace(src *Map) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.order = src.order
	m.index = src.index
	m.neighbors = src.neighbors
}
