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
	"github.com/tenfinney/solidity/analysis/config"
	"github.com/tenfinney/solidity/analysis/dialect"
	"github.com/tenfinney/solidity/analysis/lang"
	"github.com/tenfinney/solidity/analysis/semantics"
	"github.com/tenfinney/solidity/internal/funcutil"
)

// An Analyzer maintains a sound approximation of what is known about
// variables and storage while it traverses a program: which variables hold a
// syntactically known value, which variables are read by those values, and
// which storage slots hold which variables. Optimization passes drive it
// through the statement operations, consume the approximation through the
// accessors, and substitute expressions through the VisitExpr hook.
//
// Knowledge only ever shrinks at control-flow joins and is discarded
// whenever an effect might have destroyed it; the per-construct policy lives
// in the statement operations. An Analyzer drives a single traversal and is
// not safe for concurrent use.
type Analyzer struct {
	// VisitExpr, when non-nil, is invoked at every expression slot after
	// the slot's children have been traversed. A pass substitutes by
	// assigning through the pointer; the analyzer itself never rewrites
	// the program.
	VisitExpr func(e *lang.Expression)

	// The dialect supplying builtin capabilities.
	dialect *dialect.Dialect

	// The logger used during the analysis.
	logger *config.LogGroup

	// values maps a variable to the expression currently known to equal
	// it. Entries are clones owned by the analyzer and are recorded only
	// for single-target assignments of movable, self-reference-free
	// expressions.
	values map[lang.Name]lang.Expression

	// references[x] is the set of variables read by the expression last
	// assigned to x; referencedBy is its exact inverse. Neither map keeps
	// empty sets.
	references   map[lang.Name]map[lang.Name]bool
	referencedBy map[lang.Name]map[lang.Name]bool

	// storage maps slot variables to the variable last known to be stored
	// at the slot, with its reverse index. Facts come only from
	// recognized simple stores.
	storage *InvertibleMap[lang.Name]

	// The lexical scope stack. Popping a scope forgets everything known
	// about its variables.
	scopes []*scope

	// knowledge answers provable-difference and provable-equality queries
	// over the live values map.
	knowledge *KnowledgeBase

	// checkInvariants re-validates the internal state after every
	// statement (see CheckInvariants).
	checkInvariants bool
}

// A scope holds the variables declared at one level of the block structure.
// Function scopes additionally cut off visibility: InScope never looks past
// the innermost function boundary.
type scope struct {
	isFunction bool
	variables  map[lang.Name]bool
}

func (s *scope) declare(names ...lang.Name) {
	for _, name := range names {
		s.variables[name] = true
	}
}

// savedState is a snapshot of the four knowledge members that are swapped
// out around function definitions. Keeping the swap explicit makes the
// isolation of function bodies auditable.
type savedState struct {
	values       map[lang.Name]lang.Expression
	references   map[lang.Name]map[lang.Name]bool
	referencedBy map[lang.Name]map[lang.Name]bool
	storage      *InvertibleMap[lang.Name]
}

// NewAnalyzer returns an analyzer for programs in the given dialect. rules
// feeds the knowledge base's relational queries; with a nil rules those
// degrade to name identity. logger and cfg control output, the
// simplification depth limit and invariant checking; both may be nil, in
// which case the defaults of config.NewDefault apply.
func NewAnalyzer(d *dialect.Dialect, rules RuleSet, logger *config.LogGroup, cfg *config.Config) *Analyzer {
	if cfg == nil {
		cfg = config.NewDefault()
	}
	if logger == nil {
		logger = config.NewLogGroup(cfg)
	}
	a := &Analyzer{
		dialect:         d,
		logger:          logger,
		values:          map[lang.Name]lang.Expression{},
		references:      map[lang.Name]map[lang.Name]bool{},
		referencedBy:    map[lang.Name]map[lang.Name]bool{},
		storage:         NewInvertibleMap[lang.Name](),
		checkInvariants: cfg.CheckInvariants,
	}
	a.knowledge = NewKnowledgeBase(rules, a.valueOf, cfg.SimplifyDepthLimit)
	return a
}

// Value returns the expression currently known to equal name, or nil. The
// returned node is owned by the analyzer; passes must clone it before
// substituting it into a program.
func (a *Analyzer) Value(name lang.Name) lang.Expression {
	return a.values[name]
}

// References returns the set of variables read by the expression last
// assigned to name.
func (a *Analyzer) References(name lang.Name) map[lang.Name]bool {
	return funcutil.CopySet(a.references[name])
}

// ReferencedBy returns the set of variables whose last assigned expression
// reads name.
func (a *Analyzer) ReferencedBy(name lang.Name) map[lang.Name]bool {
	return funcutil.CopySet(a.referencedBy[name])
}

// StorageValue returns the variable known to be stored at the slot denoted
// by slot, if any.
func (a *Analyzer) StorageValue(slot lang.Name) (lang.Name, bool) {
	return a.storage.Get(slot)
}

// ForEachStorage calls f once per known (slot, value) storage fact, in
// unspecified order.
func (a *Analyzer) ForEachStorage(f func(slot, value lang.Name)) {
	a.storage.ForEach(f)
}

// Knowledge returns the knowledge base answering queries over the current
// bindings.
func (a *Analyzer) Knowledge() *KnowledgeBase {
	return a.knowledge
}

// InScope reports whether name is visible at the current program point.
// Scopes are searched innermost outward, stopping at the first function
// boundary.
func (a *Analyzer) InScope(name lang.Name) bool {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if a.scopes[i].variables[name] {
			return true
		}
		if a.scopes[i].isFunction {
			return false
		}
	}
	return false
}

// valueOf is the live view of the bindings handed to the knowledge base. A
// closure rather than the map itself, so the knowledge base observes the
// state swaps around function definitions.
func (a *Analyzer) valueOf(name lang.Name) (lang.Expression, bool) {
	e, ok := a.values[name]
	return e, ok
}

// handleAssignment updates the knowledge for an assignment or declaration of
// names. A nil value is a declaration without initializer, so every target
// holds a known zero. For a single target whose value is movable and does
// not read the target itself, a clone of the value is recorded. Every
// target then carries the read set of the value as its references and loses
// all storage facts mentioning it, since the variable's content changed.
func (a *Analyzer) handleAssignment(names map[lang.Name]bool, value lang.Expression) {
	a.clearValues(names)

	checker := semantics.NewMovableChecker(a.dialect)
	if value != nil {
		checker.Visit(value)
	} else {
		for name := range names {
			a.values[name] = lang.NewInt(0)
			a.logger.Tracef("%s declared without initializer, known to be zero", name)
		}
	}

	if value != nil && len(names) == 1 {
		var name lang.Name
		for n := range names {
			name = n
		}
		if checker.Movable() && !checker.ReferencedVariables()[name] {
			a.values[name] = lang.Clone(value)
			a.logger.Tracef("value of %s is now %s", name, lang.Print(value))
		}
	}

	reads := checker.ReferencedVariables()
	for name := range names {
		if len(reads) > 0 {
			a.references[name] = funcutil.CopySet(reads)
			for ref := range reads {
				edges := a.referencedBy[ref]
				if edges == nil {
					edges = map[lang.Name]bool{}
					a.referencedBy[ref] = edges
				}
				edges[name] = true
			}
		}
		a.storage.EraseKey(name)
		a.storage.EraseValue(name)
	}
}

// clearValues forgets the values of names and, exactly one level further, of
// every variable whose recorded expression reads one of them: that
// expression is stale now. The cascade is not transitive. A variable two
// reference hops away keeps its value, because the variables that value
// reads still hold the contents it was recorded against. Each affected
// variable also loses its reference edges in both directions and is erased
// from the storage approximation as both slot and stored value.
func (a *Analyzer) clearValues(names map[lang.Name]bool) {
	if len(names) == 0 {
		return
	}
	affected := funcutil.CopySet(names)
	for name := range names {
		for ref := range a.referencedBy[name] {
			affected[ref] = true
		}
	}
	if a.logger.Level() >= config.TraceLevel {
		a.logger.Tracef("forgetting values of %v", funcutil.SetToOrderedSlice(affected))
	}
	for name := range affected {
		delete(a.values, name)
	}
	for name := range affected {
		for ref := range a.references[name] {
			edges := a.referencedBy[ref]
			delete(edges, name)
			if len(edges) == 0 {
				delete(a.referencedBy, ref)
			}
		}
		delete(a.references, name)
		a.storage.EraseKey(name)
		a.storage.EraseValue(name)
	}
}

// clearStorageIfInvalidatedExpr drops all storage facts if evaluating e
// might write to storage.
func (a *Analyzer) clearStorageIfInvalidatedExpr(e lang.Expression) {
	if semantics.ExprInvalidatesStorage(a.dialect, e) {
		if n := a.storage.Len(); n > 0 {
			a.logger.Debugf("dropping %d storage facts: %s may write to storage", n, lang.Print(e))
		}
		a.storage.Clear()
	}
}

// clearStorageIfInvalidatedBlock drops all storage facts if executing b
// might write to storage.
func (a *Analyzer) clearStorageIfInvalidatedBlock(b *lang.Block) {
	if semantics.BlockInvalidatesStorage(a.dialect, b) {
		if n := a.storage.Len(); n > 0 {
			a.logger.Debugf("dropping %d storage facts: block may write to storage", n)
		}
		a.storage.Clear()
	}
}

// clearKnowledgeTouchedBy is the barrier applied around loop back edges,
// where an unknown number of iterations separates two visits of the same
// program point: the values of all names in assigned are forgotten, and
// storage knowledge is dropped if any of the given fragments might
// invalidate it. condition may be nil.
func (a *Analyzer) clearKnowledgeTouchedBy(assigned map[lang.Name]bool, condition lang.Expression, blocks ...*lang.Block) {
	a.clearValues(assigned)
	if condition != nil {
		a.clearStorageIfInvalidatedExpr(condition)
	}
	for _, b := range blocks {
		a.clearStorageIfInvalidatedBlock(b)
	}
}

// joinStorageKnowledge keeps only the storage facts present with the same
// value in both the current state and other: the facts the two sides of a
// branch agree on.
func (a *Analyzer) joinStorageKnowledge(other *InvertibleMap[lang.Name]) {
	var stale []lang.Name
	a.storage.ForEach(func(slot, value lang.Name) {
		if v, ok := other.Get(slot); !ok || v != value {
			stale = append(stale, slot)
		}
	})
	for _, slot := range stale {
		a.storage.EraseKey(slot)
	}
	if len(stale) > 0 {
		a.logger.Tracef("storage join dropped %d facts", len(stale))
	}
}

// saveState replaces the four knowledge members with fresh empty ones and
// returns the previous contents. Entering a function definition saves the
// surrounding state so that nothing can leak into or out of the body.
func (a *Analyzer) saveState() savedState {
	saved := savedState{
		values:       a.values,
		references:   a.references,
		referencedBy: a.referencedBy,
		storage:      a.storage,
	}
	a.values = map[lang.Name]lang.Expression{}
	a.references = map[lang.Name]map[lang.Name]bool{}
	a.referencedBy = map[lang.Name]map[lang.Name]bool{}
	a.storage = NewInvertibleMap[lang.Name]()
	return saved
}

// restoreState reinstates a snapshot taken by saveState.
func (a *Analyzer) restoreState(saved savedState) {
	a.values = saved.values
	a.references = saved.references
	a.referencedBy = saved.referencedBy
	a.storage = saved.storage
}

func (a *Analyzer) pushScope(isFunction bool) {
	a.scopes = append(a.scopes, &scope{isFunction: isFunction, variables: map[lang.Name]bool{}})
}

// popScope forgets everything known about the scope's variables before
// removing it from the stack.
func (a *Analyzer) popScope() {
	top := a.scopes[len(a.scopes)-1]
	a.clearValues(top.variables)
	a.scopes = a.scopes[:len(a.scopes)-1]
}

func (a *Analyzer) currentScope() *scope {
	return a.scopes[len(a.scopes)-1]
}
