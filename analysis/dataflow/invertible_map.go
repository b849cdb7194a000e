// Copyright (c) the solidity-go authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataflow

import "fmt"

// An InvertibleMap is a key-value map that maintains an exact reverse index:
// after every operation, ReferencedBy(v) is precisely the set of keys mapped
// to v. This makes erasing by value as cheap as erasing by key, which the
// analyzer relies on every time a variable dies while appearing on either
// side of a storage fact.
//
// The zero value is not usable; construct instances with NewInvertibleMap.
type InvertibleMap[K comparable] struct {
	values     map[K]K
	references map[K]map[K]bool
}

// NewInvertibleMap returns an empty map.
func NewInvertibleMap[K comparable]() *InvertibleMap[K] {
	return &InvertibleMap[K]{
		values:     map[K]K{},
		references: map[K]map[K]bool{},
	}
}

// Set maps key to value, replacing any previous mapping of key. The previous
// mapping's reverse entry is removed first so the index stays exact.
func (m *InvertibleMap[K]) Set(key, value K) {
	m.EraseKey(key)
	m.values[key] = value
	refs := m.references[value]
	if refs == nil {
		refs = map[K]bool{}
		m.references[value] = refs
	}
	refs[key] = true
}

// EraseKey removes the mapping of key, if any.
func (m *InvertibleMap[K]) EraseKey(key K) {
	value, ok := m.values[key]
	if !ok {
		return
	}
	delete(m.values, key)
	refs := m.references[value]
	delete(refs, key)
	if len(refs) == 0 {
		delete(m.references, value)
	}
}

// EraseValue removes every mapping whose value is value.
func (m *InvertibleMap[K]) EraseValue(value K) {
	for key := range m.references[value] {
		delete(m.values, key)
	}
	delete(m.references, value)
}

// Clear removes all mappings.
func (m *InvertibleMap[K]) Clear() {
	m.values = map[K]K{}
	m.references = map[K]map[K]bool{}
}

// Get returns the value mapped to key, and whether a mapping exists.
func (m *InvertibleMap[K]) Get(key K) (K, bool) {
	v, ok := m.values[key]
	return v, ok
}

// ReferencedBy returns the set of keys currently mapped to value, or nil when
// there are none. The returned map is the live index; callers must not mutate
// it.
func (m *InvertibleMap[K]) ReferencedBy(value K) map[K]bool {
	return m.references[value]
}

// Len returns the number of mappings.
func (m *InvertibleMap[K]) Len() int {
	return len(m.values)
}

// ForEach calls f for every (key, value) mapping, in unspecified order. f
// must not mutate the map.
func (m *InvertibleMap[K]) ForEach(f func(key, value K)) {
	for k, v := range m.values {
		f(k, v)
	}
}

// Copy returns an independent copy. Mutating either map afterwards leaves the
// other untouched; this is the snapshot primitive for branch joins.
func (m *InvertibleMap[K]) Copy() *InvertibleMap[K] {
	c := &InvertibleMap[K]{
		values:     make(map[K]K, len(m.values)),
		references: make(map[K]map[K]bool, len(m.references)),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	for v, refs := range m.references {
		set := make(map[K]bool, len(refs))
		for k := range refs {
			set[k] = true
		}
		c.references[v] = set
	}
	return c
}

// consistencyError returns a description of the first reverse-index violation
// found, or nil. Used by the analyzer's invariant checking.
func (m *InvertibleMap[K]) consistencyError() error {
	for k, v := range m.values {
		if !m.references[v][k] {
			return fmt.Errorf("missing reverse entry for %v -> %v", k, v)
		}
	}
	for v, refs := range m.references {
		if len(refs) == 0 {
			return fmt.Errorf("empty reference set kept for value %v", v)
		}
		for k := range refs {
			if mapped, ok := m.values[k]; !ok || mapped != v {
				return fmt.Errorf("stale reverse entry %v -> %v", k, v)
			}
		}
	}
	return nil
}
