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
	"math/big"

	"github.com/tenfinney/solidity/analysis/config"
	"github.com/tenfinney/solidity/analysis/lang"
)

// A RuleSet supplies the rewrite rules the knowledge base collapses
// synthetic comparisons with. simplify.Rules implements it; the interface
// lives here so the knowledge base can be exercised against stub rule sets.
type RuleSet interface {
	// FindFirstMatch returns a replacement for e if some rule applies,
	// resolving identifiers through values while matching. It must not
	// mutate e.
	FindFirstMatch(e lang.Expression, values func(lang.Name) (lang.Expression, bool)) (lang.Expression, bool)
}

// A KnowledgeBase answers whether two variables provably hold different or
// provably hold equal values under the current bindings. Queries are
// one-sided: a false answer means "not provable", never "provably not". It
// works by building a synthetic comparison of the two variables and
// checking whether the rule set collapses it to a literal.
type KnowledgeBase struct {
	rules      RuleSet
	values     func(lang.Name) (lang.Expression, bool)
	depthLimit int
}

// NewKnowledgeBase returns a knowledge base over the given rule set and the
// live view of variable bindings. rules may be nil, in which case queries
// degrade to name identity. A depthLimit of zero or less means
// config.DefaultSimplifyDepthLimit.
func NewKnowledgeBase(rules RuleSet, values func(lang.Name) (lang.Expression, bool), depthLimit int) *KnowledgeBase {
	if depthLimit <= 0 {
		depthLimit = config.DefaultSimplifyDepthLimit
	}
	return &KnowledgeBase{rules: rules, values: values, depthLimit: depthLimit}
}

// KnownToBeDifferent reports whether a and b provably hold different
// values: their difference collapses to a nonzero literal, or their
// equality comparison collapses to zero.
func (kb *KnowledgeBase) KnownToBeDifferent(a, b lang.Name) bool {
	if word, ok := kb.collapse(lang.NewCall("sub", lang.NewIdent(a), lang.NewIdent(b))); ok {
		return word.Sign() != 0
	}
	if word, ok := kb.collapse(lang.NewCall("eq", lang.NewIdent(a), lang.NewIdent(b))); ok {
		return word.Sign() == 0
	}
	return false
}

// KnownToBeEqual reports whether a and b provably hold the same value: they
// are the same name, their difference collapses to zero, or their equality
// comparison collapses to a nonzero literal.
func (kb *KnowledgeBase) KnownToBeEqual(a, b lang.Name) bool {
	if a == b {
		return true
	}
	if word, ok := kb.collapse(lang.NewCall("sub", lang.NewIdent(a), lang.NewIdent(b))); ok {
		return word.Sign() == 0
	}
	if word, ok := kb.collapse(lang.NewCall("eq", lang.NewIdent(a), lang.NewIdent(b))); ok {
		return word.Sign() != 0
	}
	return false
}

// collapse simplifies a synthetic expression and returns its word value if
// it became a literal denoting one.
func (kb *KnowledgeBase) collapse(e lang.Expression) (*big.Int, bool) {
	lit, ok := kb.simplify(e, kb.depthLimit).(*lang.Literal)
	if !ok {
		return nil, false
	}
	return lit.Word()
}

// simplify rewrites e bottom-up: children first, then the node itself is
// replaced through the rule set, and the replacement is simplified in turn.
// It owns and mutates e, so callers hand it freshly built trees. Once the
// depth limit is exhausted the expression is returned as is, degrading the
// query to "not provable".
func (kb *KnowledgeBase) simplify(e lang.Expression, depth int) lang.Expression {
	if kb.rules == nil || depth <= 0 {
		return e
	}
	if call, ok := e.(*lang.FunctionCall); ok {
		for i := range call.Arguments {
			call.Arguments[i] = kb.simplify(call.Arguments[i], depth-1)
		}
	}
	if replacement, ok := kb.rules.FindFirstMatch(e, kb.values); ok {
		return kb.simplify(replacement, depth-1)
	}
	return e
}
