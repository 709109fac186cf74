package foldmap

import "gopkg.in/yaml.v3"

// MarshalYAML encodes the entries as a YAML mapping in insertion order, with
// canonical keys. An explicit mapping node is built so the order survives
// encoding; nested *Map values encode the same way.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, ck := range m.order {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ck}
		valNode := &yaml.Node{}
		if err := valNode.Encode(m.entries[ck]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, replacing m's entries. Keys are
// normalized and nested mappings and sequences come out supporting
// insensitive access. The normalizer and default mechanism configured on m
// are kept.
func (m *Map) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	m.Clear()
	for k, v := range raw {
		m.Set(k, v)
	}
	return nil
}
