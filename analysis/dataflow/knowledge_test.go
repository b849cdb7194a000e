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
	"testing"

	"github.com/tenfinney/solidity/analysis/dialect"
	"github.com/tenfinney/solidity/analysis/lang"
	"github.com/tenfinney/solidity/analysis/simplify"
)

// ruleFunc adapts a function to the RuleSet interface for stubbing.
type ruleFunc func(e lang.Expression, values func(lang.Name) (lang.Expression, bool)) (lang.Expression, bool)

func (f ruleFunc) FindFirstMatch(e lang.Expression, values func(lang.Name) (lang.Expression, bool)) (lang.Expression, bool) {
	return f(e, values)
}

func valuesFromMap(m map[lang.Name]lang.Expression) func(lang.Name) (lang.Expression, bool) {
	return func(n lang.Name) (lang.Expression, bool) {
		e, ok := m[n]
		return e, ok
	}
}

func checkDifferent(t *testing.T, kb *KnowledgeBase, a, b lang.Name, want bool) {
	t.Helper()
	if got := kb.KnownToBeDifferent(a, b); got != want {
		t.Errorf("KnownToBeDifferent(%s, %s) = %v, expected %v", a, b, got, want)
	}
}

func checkEqual(t *testing.T, kb *KnowledgeBase, a, b lang.Name, want bool) {
	t.Helper()
	if got := kb.KnownToBeEqual(a, b); got != want {
		t.Errorf("KnownToBeEqual(%s, %s) = %v, expected %v", a, b, got, want)
	}
}

func TestKnowledgeOverLiteralBindings(t *testing.T) {
	values := valuesFromMap(map[lang.Name]lang.Expression{
		"a": lang.NewInt(1),
		"b": lang.NewInt(2),
		"c": lang.NewInt(1),
	})
	kb := NewKnowledgeBase(simplify.NewRules(dialect.EVM()), values, 0)

	checkDifferent(t, kb, "a", "b", true)
	checkDifferent(t, kb, "b", "a", true)
	checkDifferent(t, kb, "a", "c", false)
	checkEqual(t, kb, "a", "c", true)
	checkEqual(t, kb, "a", "b", false)

	// A variable is never different from itself, bound or not.
	checkDifferent(t, kb, "a", "a", false)
	checkDifferent(t, kb, "unbound", "unbound", false)
	checkEqual(t, kb, "a", "a", true)
	checkEqual(t, kb, "unbound", "unbound", true)

	// Nothing is provable about unbound variables.
	checkDifferent(t, kb, "a", "unbound", false)
	checkEqual(t, kb, "a", "unbound", false)
}

func TestKnowledgeThroughBindingChains(t *testing.T) {
	// c and d resolve to the same movable expression through chains of
	// different length; e reads the environment differently.
	values := valuesFromMap(map[lang.Name]lang.Expression{
		"a": lang.NewInt(7),
		"b": lang.NewIdent("a"),
		"c": lang.NewIdent("b"),
		"d": lang.NewInt(7),
		"e": lang.NewInt(9),
	})
	kb := NewKnowledgeBase(simplify.NewRules(dialect.EVM()), values, 0)

	checkEqual(t, kb, "c", "d", true)
	checkDifferent(t, kb, "c", "e", true)
	checkDifferent(t, kb, "c", "d", false)
}

func TestKnowledgeEqualMovableContext(t *testing.T) {
	// Two variables holding the same movable context read are provably
	// equal without folding to any word.
	values := valuesFromMap(map[lang.Name]lang.Expression{
		"a": lang.NewCall("caller"),
		"b": lang.NewCall("caller"),
	})
	kb := NewKnowledgeBase(simplify.NewRules(dialect.EVM()), values, 0)

	checkEqual(t, kb, "a", "b", true)
	checkDifferent(t, kb, "a", "b", false)
}

func TestKnowledgeWithNilRules(t *testing.T) {
	values := valuesFromMap(map[lang.Name]lang.Expression{
		"a": lang.NewInt(1),
		"b": lang.NewInt(2),
	})
	kb := NewKnowledgeBase(nil, values, 0)

	checkDifferent(t, kb, "a", "b", false)
	checkEqual(t, kb, "a", "b", false)
	checkEqual(t, kb, "a", "a", true)
}

func TestKnowledgeEqFallback(t *testing.T) {
	// A rule set that cannot simplify subtractions but collapses equality
	// comparisons still answers through the eq probe.
	eqOnly := func(result *lang.Literal) ruleFunc {
		return func(e lang.Expression, _ func(lang.Name) (lang.Expression, bool)) (lang.Expression, bool) {
			call, ok := e.(*lang.FunctionCall)
			if !ok || call.FunctionName != "eq" {
				return nil, false
			}
			return result, true
		}
	}

	kb := NewKnowledgeBase(eqOnly(lang.NewInt(0)), valuesFromMap(nil), 0)
	checkDifferent(t, kb, "a", "b", true)
	checkEqual(t, kb, "a", "b", false)

	kb = NewKnowledgeBase(eqOnly(lang.NewInt(1)), valuesFromMap(nil), 0)
	checkDifferent(t, kb, "a", "b", false)
	checkEqual(t, kb, "a", "b", true)
}

func TestKnowledgeDepthLimit(t *testing.T) {
	// peel needs one rewrite per layer, so a tight depth limit leaves the
	// probe uncollapsed and the query degrades to not provable.
	peel := ruleFunc(func(e lang.Expression, _ func(lang.Name) (lang.Expression, bool)) (lang.Expression, bool) {
		call, ok := e.(*lang.FunctionCall)
		if !ok {
			return nil, false
		}
		switch call.FunctionName {
		case "sub":
			return lang.NewCall("peel", lang.NewCall("peel", lang.NewInt(7))), true
		case "peel":
			return lang.Clone(call.Arguments[0]), true
		}
		return nil, false
	})

	deep := NewKnowledgeBase(peel, valuesFromMap(nil), 16)
	checkDifferent(t, deep, "a", "b", true)

	shallow := NewKnowledgeBase(peel, valuesFromMap(nil), 2)
	checkDifferent(t, shallow, "a", "b", false)
}

func TestKnowledgeStringLiteralHasNoWord(t *testing.T) {
	// A probe collapsing to a wordless literal proves nothing.
	toString := ruleFunc(func(e lang.Expression, _ func(lang.Name) (lang.Expression, bool)) (lang.Expression, bool) {
		if call, ok := e.(*lang.FunctionCall); ok && call.FunctionName == "sub" {
			return lang.NewString("oops"), true
		}
		return nil, false
	})
	kb := NewKnowledgeBase(toString, valuesFromMap(nil), 0)
	checkDifferent(t, kb, "a", "b", false)
	checkEqual(t, kb, "a", "b", false)
}
