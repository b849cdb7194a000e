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

package dialect

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tenfinney/solidity/analysis/lang"
	"github.com/tenfinney/solidity/internal/funcutil"
)

// Spec is the YAML shape of a custom dialect: a capability table, optionally
// layered on top of a named base dialect.
type Spec struct {
	Name     string        `yaml:"name"`
	Extends  string        `yaml:"extends,omitempty"`
	Builtins []BuiltinSpec `yaml:"builtins"`
}

// BuiltinSpec is the YAML shape of one builtin row.
type BuiltinSpec struct {
	Name               string `yaml:"name"`
	Parameters         int    `yaml:"parameters"`
	Returns            int    `yaml:"returns"`
	Movable            bool   `yaml:"movable,omitempty"`
	SideEffectFree     bool   `yaml:"side-effect-free,omitempty"`
	InvalidatesStorage bool   `yaml:"invalidates-storage,omitempty"`
	Terminating        bool   `yaml:"terminating,omitempty"`
	StorageStore       bool   `yaml:"storage-store,omitempty"`
}

// Load reads a dialect capability table from a YAML file.
func Load(path string) (*Dialect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read dialect file: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("could not parse dialect file %s: %w", path, err)
	}
	d, err := FromSpec(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid dialect file %s: %w", path, err)
	}
	return d, nil
}

// FromSpec validates a spec and builds the dialect it describes. Builtins of
// the spec override same-named builtins of the base dialect.
func FromSpec(spec Spec) (*Dialect, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("dialect must have a name")
	}
	var base map[lang.Name]Builtin
	switch spec.Extends {
	case "":
		base = map[lang.Name]Builtin{}
	case "evm":
		base = EVM().builtins
	default:
		return nil, fmt.Errorf("unknown base dialect %q", spec.Extends)
	}
	seen := map[lang.Name]bool{}
	overrides := map[lang.Name]Builtin{}
	for i, bs := range spec.Builtins {
		if bs.Name == "" {
			return nil, fmt.Errorf("builtin %d has no name", i)
		}
		name := lang.Name(bs.Name)
		if seen[name] {
			return nil, fmt.Errorf("duplicate builtin %q", bs.Name)
		}
		seen[name] = true
		if bs.Parameters < 0 || bs.Returns < 0 {
			return nil, fmt.Errorf("builtin %q has a negative arity", bs.Name)
		}
		if bs.Movable && !bs.SideEffectFree {
			return nil, fmt.Errorf("builtin %q is movable but not side-effect free", bs.Name)
		}
		if bs.StorageStore && (bs.Parameters != 2 || bs.Returns != 0) {
			return nil, fmt.Errorf("builtin %q: a storage store takes (slot, value) and returns nothing", bs.Name)
		}
		overrides[name] = Builtin{
			Name:               name,
			Parameters:         bs.Parameters,
			Returns:            bs.Returns,
			Movable:            bs.Movable,
			SideEffectFree:     bs.SideEffectFree,
			InvalidatesStorage: bs.InvalidatesStorage,
			Terminating:        bs.Terminating,
			StorageStore:       bs.StorageStore,
		}
	}
	funcutil.Merge(base, overrides, func(_, override Builtin) Builtin { return override })
	return &Dialect{name: spec.Name, builtins: base}, nil
}
