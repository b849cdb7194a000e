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
	"sort"
	"strings"

	"github.com/tenfinney/solidity/analysis/lang"
	"github.com/tenfinney/solidity/analysis/semantics"
	"github.com/tenfinney/solidity/internal/funcutil"
	"github.com/tenfinney/solidity/internal/graphutil"
)

// CheckInvariants verifies the analyzer's internal consistency: the
// reference maps are exact mutual inverses, every recorded value's read set
// matches its reference entry, the storage map's reverse index is exact,
// and the recorded values form no reference cycle. A violation is an engine
// bug. In check-invariants mode the analyzer runs this after every
// statement and panics on failure.
func CheckInvariants(a *Analyzer) error {
	for name, refs := range a.references {
		for ref := range refs {
			if !a.referencedBy[ref][name] {
				return fmt.Errorf("reference %s -> %s has no inverse entry", name, ref)
			}
		}
	}
	for ref, names := range a.referencedBy {
		for name := range names {
			if !a.references[name][ref] {
				return fmt.Errorf("inverse entry %s -> %s has no forward reference", ref, name)
			}
		}
	}

	for name, value := range a.values {
		reads := semantics.CheckMovability(a.dialect, value).ReferencedVariables()
		recorded := a.references[name]
		if len(reads) != len(recorded) {
			return fmt.Errorf("references of %s do not match the reads of its value %s", name, lang.Print(value))
		}
		for ref := range reads {
			if !recorded[ref] {
				return fmt.Errorf("read of %s missing from the references of %s", ref, name)
			}
		}
	}

	if err := a.storage.consistencyError(); err != nil {
		return fmt.Errorf("storage map: %w", err)
	}

	return checkValuesAcyclic(a)
}

// checkValuesAcyclic rejects reference cycles among recorded values. A
// recorded value whose reference chain leads back to its own variable means
// some update ran against a stale state; substituting along such a chain
// would never terminate.
func checkValuesAcyclic(a *Analyzer) error {
	tracked := map[lang.Name]bool{}
	for name := range a.values {
		tracked[name] = true
	}
	nodes := funcutil.SetToOrderedSlice(tracked)
	successors := func(n lang.Name) []lang.Name { return valueReferences(a, n) }
	for _, scc := range graphutil.StronglyConnectedComponents(nodes, successors) {
		if len(scc) > 1 || funcutil.Contains(successors(scc[0]), scc[0]) {
			return fmt.Errorf("recorded values form a reference cycle: %s", describeValueCycles(a))
		}
	}
	return nil
}

// valueReferences returns the references of name restricted to variables
// that themselves have a recorded value, in name order.
func valueReferences(a *Analyzer, name lang.Name) []lang.Name {
	out := map[lang.Name]bool{}
	for ref := range a.references[name] {
		if _, ok := a.values[ref]; ok {
			out[ref] = true
		}
	}
	return funcutil.SetToOrderedSlice(out)
}

// describeValueCycles names every elementary cycle among the recorded
// values, for the error message.
func describeValueCycles(a *Analyzer) string {
	adjacency := map[string][]string{}
	for name := range a.values {
		adjacency[string(name)] = funcutil.Map(valueReferences(a, name),
			func(n lang.Name) string { return string(n) })
	}
	cg := graphutil.NewLabeledGraph(adjacency)
	var chains []string
	for _, cycle := range graphutil.FindAllElementaryCycles(cg) {
		labels := funcutil.Map(cycle, func(id int64) string { return cg.IDMap[id].Label })
		chains = append(chains, strings.Join(labels, " -> "))
	}
	sort.Strings(chains)
	return strings.Join(chains, "; ")
}
