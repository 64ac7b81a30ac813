package ast

import (
	"encoding/json"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is a table keyed by identifier that preserves insertion order.
//
// The zero value is an empty map ready to use.
type Map[V any] struct {
	m *orderedmap.OrderedMap[string, V]
}

// NewMap creates an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{m: orderedmap.New[string, V]()}
}

// Insert adds name to the map. It returns false, leaving the map unchanged,
// if name is already present.
func (m *Map[V]) Insert(name string, value V) bool {
	if m.m == nil {
		m.m = orderedmap.New[string, V]()
	}
	if _, ok := m.m.Get(name); ok {
		return false
	}
	m.m.Set(name, value)
	return true
}

// Get returns the value stored under name.
func (m *Map[V]) Get(name string) (V, bool) {
	if m == nil || m.m == nil {
		var zero V
		return zero, false
	}
	return m.m.Get(name)
}

// Has reports whether name is present.
func (m *Map[V]) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, m.Len())
	for name := range m.All() {
		keys = append(keys, name)
	}
	return keys
}

// All iterates over the entries in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil || m.m == nil {
			return
		}
		for pair := m.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	if m == nil || m.m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.m)
}
