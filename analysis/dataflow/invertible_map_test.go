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

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/tenfinney/solidity/analysis/lang"
)

func checkMapping(t *testing.T, m *InvertibleMap[lang.Name], key, want lang.Name) {
	t.Helper()
	got, ok := m.Get(key)
	if !ok {
		t.Errorf("Get(%s): no entry, expected %s", key, want)
		return
	}
	if got != want {
		t.Errorf("Get(%s) = %s, expected %s", key, got, want)
	}
}

func checkNoMapping(t *testing.T, m *InvertibleMap[lang.Name], key lang.Name) {
	t.Helper()
	if got, ok := m.Get(key); ok {
		t.Errorf("Get(%s) = %s, expected no entry", key, got)
	}
}

func checkConsistent(t *testing.T, m *InvertibleMap[lang.Name]) {
	t.Helper()
	if err := m.consistencyError(); err != nil {
		t.Errorf("map inconsistent: %v", err)
	}
}

func TestInvertibleMapSetOverwrite(t *testing.T) {
	m := NewInvertibleMap[lang.Name]()
	m.Set("p", "x")
	m.Set("q", "x")
	checkMapping(t, m, "p", "x")
	checkMapping(t, m, "q", "x")
	if refs := m.ReferencedBy("x"); len(refs) != 2 || !refs["p"] || !refs["q"] {
		t.Errorf("ReferencedBy(x) = %v, expected p and q", refs)
	}

	m.Set("p", "y")
	checkMapping(t, m, "p", "y")
	if refs := m.ReferencedBy("x"); len(refs) != 1 || !refs["q"] {
		t.Errorf("ReferencedBy(x) = %v after overwriting p, expected only q", refs)
	}
	checkConsistent(t, m)
}

func TestInvertibleMapEraseKey(t *testing.T) {
	m := NewInvertibleMap[lang.Name]()
	m.Set("p", "x")
	m.Set("q", "x")
	m.EraseKey("p")
	checkNoMapping(t, m, "p")
	checkMapping(t, m, "q", "x")
	if refs := m.ReferencedBy("x"); len(refs) != 1 || !refs["q"] {
		t.Errorf("ReferencedBy(x) = %v after erasing p, expected only q", refs)
	}

	// Erasing an absent key changes nothing.
	m.EraseKey("nope")
	if m.Len() != 1 {
		t.Errorf("Len() = %d after erasing an absent key, expected 1", m.Len())
	}
	checkConsistent(t, m)
}

func TestInvertibleMapEraseValue(t *testing.T) {
	m := NewInvertibleMap[lang.Name]()
	m.Set("p", "x")
	m.Set("q", "x")
	m.Set("r", "y")
	m.EraseValue("x")
	checkNoMapping(t, m, "p")
	checkNoMapping(t, m, "q")
	checkMapping(t, m, "r", "y")
	if refs := m.ReferencedBy("x"); refs != nil {
		t.Errorf("ReferencedBy(x) = %v after erasing the value, expected none", refs)
	}
	checkConsistent(t, m)
}

func TestInvertibleMapClear(t *testing.T) {
	m := NewInvertibleMap[lang.Name]()
	m.Set("p", "x")
	m.Set("q", "y")
	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Len() = %d after Clear, expected 0", m.Len())
	}
	checkNoMapping(t, m, "p")
	checkConsistent(t, m)
}

func TestInvertibleMapCopy(t *testing.T) {
	m := NewInvertibleMap[lang.Name]()
	m.Set("p", "x")
	m.Set("q", "y")
	c := m.Copy()

	m.Set("p", "z")
	m.EraseKey("q")
	checkMapping(t, c, "p", "x")
	checkMapping(t, c, "q", "y")

	c.Set("r", "w")
	checkNoMapping(t, m, "r")
	checkConsistent(t, m)
	checkConsistent(t, c)
}

// TestInvertibleMapRandomized drives the map against a plain map model and
// checks the reverse index invariant after every operation.
func TestInvertibleMapRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	names := []lang.Name{"a", "b", "c", "d", "e", "f"}
	pick := func() lang.Name { return names[rng.Intn(len(names))] }

	m := NewInvertibleMap[lang.Name]()
	model := map[lang.Name]lang.Name{}

	for step := 0; step < 2000; step++ {
		switch rng.Intn(10) {
		case 0:
			m.Clear()
			model = map[lang.Name]lang.Name{}
		case 1, 2:
			k := pick()
			m.EraseKey(k)
			delete(model, k)
		case 3, 4:
			v := pick()
			m.EraseValue(v)
			for k, kv := range model {
				if kv == v {
					delete(model, k)
				}
			}
		default:
			k, v := pick(), pick()
			m.Set(k, v)
			model[k] = v
		}

		if err := m.consistencyError(); err != nil {
			t.Fatalf("step %d: map inconsistent: %v", step, err)
		}
		if m.Len() != len(model) {
			t.Fatalf("step %d: Len() = %d, model has %d entries", step, m.Len(), len(model))
		}
		for _, k := range names {
			got, ok := m.Get(k)
			want, wantOK := model[k]
			if ok != wantOK || (ok && got != want) {
				t.Fatalf("step %d: Get(%s) = %s, %v, model has %s, %v", step, k, got, ok, want, wantOK)
			}
		}
	}
}

func TestInvertibleMapForEach(t *testing.T) {
	m := NewInvertibleMap[lang.Name]()
	m.Set("p", "x")
	m.Set("q", "y")
	seen := map[string]bool{}
	m.ForEach(func(k, v lang.Name) { seen[fmt.Sprintf("%s=%s", k, v)] = true })
	if len(seen) != 2 || !seen["p=x"] || !seen["q=y"] {
		t.Errorf("ForEach visited %v, expected p=x and q=y", seen)
	}
}
