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

// Package simplify implements local rewrite rules for expressions: constant
// folding of pure builtins and a small set of algebraic identities. Rules
// match a single expression node at a time; callers drive repetition and
// recursion into subexpressions.
package simplify

import (
	"math/big"

	"github.com/tenfinney/solidity/analysis/dialect"
	"github.com/tenfinney/solidity/analysis/lang"
	"github.com/tenfinney/solidity/analysis/semantics"
)

// maxBindingHops bounds identifier resolution through the values function.
// Binding chains are acyclic, so hitting the bound only forgoes a match.
const maxBindingHops = 32

// Rules is a simplification rule set specialized to one dialect. Matching
// never mutates the candidate expression; replacements are freshly built
// nodes.
type Rules struct {
	dialect *dialect.Dialect
}

func NewRules(d *dialect.Dialect) *Rules {
	return &Rules{dialect: d}
}

// FindFirstMatch returns a replacement for e if some rule applies. The values
// function supplies current variable bindings; identifiers are resolved
// through it while matching, so a comparison of two variables holding the
// same movable expression still folds. The second result reports whether a
// rule matched.
func (r *Rules) FindFirstMatch(e lang.Expression, values func(lang.Name) (lang.Expression, bool)) (lang.Expression, bool) {
	call, ok := e.(*lang.FunctionCall)
	if !ok {
		return nil, false
	}
	builtin, ok := r.dialect.Builtin(call.FunctionName)
	if !ok || len(call.Arguments) != builtin.Parameters {
		return nil, false
	}
	if folded, ok := r.foldConstants(call, builtin, values); ok {
		return folded, true
	}
	return r.applyIdentity(call, values)
}

// foldConstants evaluates a pure builtin whose arguments all resolve to
// literal words.
func (r *Rules) foldConstants(call *lang.FunctionCall, builtin dialect.Builtin, values func(lang.Name) (lang.Expression, bool)) (lang.Expression, bool) {
	if !builtin.Movable {
		return nil, false
	}
	args := make([]*big.Int, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		lit, ok := resolve(arg, values).(*lang.Literal)
		if !ok {
			return nil, false
		}
		word, ok := lit.Word()
		if !ok {
			return nil, false
		}
		args = append(args, word)
	}
	result, ok := evalBuiltin(call.FunctionName, args)
	if !ok {
		return nil, false
	}
	return lang.NewNumber(result.String()), true
}

// applyIdentity matches the algebraic identities. Rules that erase an operand
// require it to be movable, so that dropping it cannot change observable
// behavior.
func (r *Rules) applyIdentity(call *lang.FunctionCall, values func(lang.Name) (lang.Expression, bool)) (lang.Expression, bool) {
	arg := func(i int) lang.Expression { return call.Arguments[i] }
	view := func(i int) lang.Expression { return resolve(arg(i), values) }

	switch call.FunctionName {
	case "add":
		if isZeroLiteral(view(0)) {
			return lang.Clone(arg(1)), true
		}
		if isZeroLiteral(view(1)) {
			return lang.Clone(arg(0)), true
		}
	case "sub":
		if isZeroLiteral(view(1)) {
			return lang.Clone(arg(0)), true
		}
		if lang.Equal(view(0), view(1)) && r.movable(arg(0)) && r.movable(arg(1)) {
			return lang.NewInt(0), true
		}
	case "mul":
		if isOneLiteral(view(0)) {
			return lang.Clone(arg(1)), true
		}
		if isOneLiteral(view(1)) {
			return lang.Clone(arg(0)), true
		}
		if isZeroLiteral(view(0)) && r.movable(arg(1)) {
			return lang.NewInt(0), true
		}
		if isZeroLiteral(view(1)) && r.movable(arg(0)) {
			return lang.NewInt(0), true
		}
	case "div":
		if isOneLiteral(view(1)) {
			return lang.Clone(arg(0)), true
		}
	case "eq":
		if lang.Equal(view(0), view(1)) && r.movable(arg(0)) && r.movable(arg(1)) {
			return lang.NewInt(1), true
		}
	case "iszero":
		if inner, ok := r.collapseIsZeroChain(arg(0), values); ok {
			return inner, true
		}
	}
	return nil, false
}

// collapseIsZeroChain rewrites iszero(iszero(iszero(x))) to iszero(x).
// Double negation alone cannot be dropped, the outer pair normalizes the
// word to zero or one.
func (r *Rules) collapseIsZeroChain(arg lang.Expression, values func(lang.Name) (lang.Expression, bool)) (lang.Expression, bool) {
	second, ok := r.isZeroCall(resolve(arg, values))
	if !ok {
		return nil, false
	}
	third, ok := r.isZeroCall(resolve(second, values))
	if !ok {
		return nil, false
	}
	return lang.NewCall("iszero", lang.Clone(third)), true
}

// isZeroCall returns the argument of e if e is a well-formed iszero call.
func (r *Rules) isZeroCall(e lang.Expression) (lang.Expression, bool) {
	call, ok := e.(*lang.FunctionCall)
	if !ok || call.FunctionName != "iszero" || len(call.Arguments) != 1 {
		return nil, false
	}
	return call.Arguments[0], true
}

func (r *Rules) movable(e lang.Expression) bool {
	return semantics.CheckMovability(r.dialect, e).Movable()
}

// resolve follows identifier bindings until reaching a non-identifier or an
// unbound name. Only movable expressions ever enter the bindings, so the
// resolved view denotes the same word as the identifier it replaces.
func resolve(e lang.Expression, values func(lang.Name) (lang.Expression, bool)) lang.Expression {
	if values == nil {
		return e
	}
	for hops := 0; hops < maxBindingHops; hops++ {
		id, ok := e.(*lang.Identifier)
		if !ok {
			return e
		}
		bound, ok := values(id.Name)
		if !ok || bound == nil {
			return e
		}
		e = bound
	}
	return e
}

func isZeroLiteral(e lang.Expression) bool {
	lit, ok := e.(*lang.Literal)
	if !ok {
		return false
	}
	word, ok := lit.Word()
	return ok && word.Sign() == 0
}

func isOneLiteral(e lang.Expression) bool {
	lit, ok := e.(*lang.Literal)
	if !ok {
		return false
	}
	word, ok := lit.Word()
	return ok && word.Cmp(big.NewInt(1)) == 0
}
