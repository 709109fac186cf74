package foldmap

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes the entries as a JSON object in insertion order, with
// canonical keys. Nested *Map values encode the same way.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ck := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(ck)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.entries[ck])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, replacing m's entries. Keys are
// normalized and nested objects and arrays come out supporting insensitive
// access. The normalizer and default mechanism configured on m are kept.
func (m *Map) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Clear()
	for k, v := range raw {
		m.Set(k, v)
	}
	return nil
}
