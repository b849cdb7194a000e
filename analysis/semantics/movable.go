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

// Package semantics answers questions about what program fragments may do:
// whether an expression can be moved or dropped, whether code can invalidate
// storage knowledge, and whether a statement unconditionally diverts control
// flow. All answers are driven by dialect capability lookups and degrade to
// the pessimistic side for calls the dialect does not know.
package semantics

import (
	"github.com/tenfinney/solidity/analysis/dialect"
	"github.com/tenfinney/solidity/analysis/lang"
)

// A MovableChecker accumulates the semantic properties of the expressions it
// visits: whether they could be moved or duplicated freely, whether they are
// free of side effects, whether they might invalidate storage knowledge, and
// which variables they read. The checker deliberately accepts only
// expressions; statement-level effects are outside its contract.
type MovableChecker struct {
	dialect            *dialect.Dialect
	movable            bool
	sideEffectFree     bool
	invalidatesStorage bool
	variablesRead      map[lang.Name]bool
}

// NewMovableChecker returns a checker in the optimistic starting state: an
// empty sequence of expressions is movable and effect free.
func NewMovableChecker(d *dialect.Dialect) *MovableChecker {
	return &MovableChecker{
		dialect:        d,
		movable:        true,
		sideEffectFree: true,
		variablesRead:  map[lang.Name]bool{},
	}
}

// CheckMovability is the one-shot form: a fresh checker after visiting e.
func CheckMovability(d *dialect.Dialect, e lang.Expression) *MovableChecker {
	c := NewMovableChecker(d)
	c.Visit(e)
	return c
}

// Visit folds the effects of e into the checker. Visiting several expressions
// accumulates, as if they were evaluated in sequence.
func (c *MovableChecker) Visit(e lang.Expression) {
	lang.Inspect(e, func(n lang.Node) bool {
		switch n := n.(type) {
		case *lang.Identifier:
			c.variablesRead[n.Name] = true
		case *lang.FunctionCall:
			b, known := c.dialect.Builtin(n.FunctionName)
			if !known {
				b = dialect.Pessimistic(n.FunctionName)
			}
			c.movable = c.movable && b.Movable
			c.sideEffectFree = c.sideEffectFree && b.SideEffectFree
			if b.InvalidatesStorage {
				c.invalidatesStorage = true
			}
		}
		return true
	})
}

// Movable reports whether everything visited so far may be duplicated or
// reordered freely.
func (c *MovableChecker) Movable() bool {
	return c.movable
}

// SideEffectFree reports whether everything visited so far can be dropped if
// its results are unused.
func (c *MovableChecker) SideEffectFree() bool {
	return c.sideEffectFree
}

// InvalidatesStorage reports whether anything visited so far might invalidate
// storage knowledge.
func (c *MovableChecker) InvalidatesStorage() bool {
	return c.invalidatesStorage
}

// ReferencedVariables returns the set of variables read by the visited
// expressions. The returned map is the checker's own; callers must copy it if
// they keep it.
func (c *MovableChecker) ReferencedVariables() map[lang.Name]bool {
	return c.variablesRead
}
