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

	"github.com/tenfinney/solidity/analysis/lang"
	"github.com/tenfinney/solidity/internal/funcutil"
)

// This file implements the statement operations of the analyzer: the
// per-construct policy deciding what knowledge survives each statement.

// Analyze runs the analysis over a whole program. The root scope stays open
// afterwards so the final state remains inspectable through the accessors.
// An Analyzer drives a single traversal; create a fresh one per program.
func (a *Analyzer) Analyze(program *lang.Block) {
	a.pushScope(false)
	for _, s := range program.Statements {
		a.statement(s)
	}
}

// statement dispatches one statement and, in check-invariants mode,
// re-validates the internal state afterwards.
func (a *Analyzer) statement(s lang.Statement) {
	lang.StmtSwitch(a, s)
	if a.checkInvariants {
		if err := CheckInvariants(a); err != nil {
			panic(fmt.Sprintf("analyzer state corrupted after %q: %v", lang.Print(s), err))
		}
	}
}

// visitExpression traverses the expression held in the given slot, child
// slots first, invoking the VisitExpr hook at each one. Hooks substitute by
// assigning through the pointer; replacements are not traversed again.
func (a *Analyzer) visitExpression(e *lang.Expression) {
	if call, ok := (*e).(*lang.FunctionCall); ok {
		for i := range call.Arguments {
			a.visitExpression(&call.Arguments[i])
		}
	}
	if a.VisitExpr != nil {
		a.VisitExpr(e)
	}
}

// DoBlock opens a fresh scope around the block's statements. The scope
// stack must return to its entry depth; anything else is a fatal internal
// inconsistency.
func (a *Analyzer) DoBlock(b *lang.Block) {
	depth := len(a.scopes)
	a.pushScope(false)
	for _, s := range b.Statements {
		a.statement(s)
	}
	a.popScope()
	if len(a.scopes) != depth {
		panic(fmt.Sprintf("scope stack depth is %d after a block entered at depth %d", len(a.scopes), depth))
	}
}

// DoExpressionStatement handles the one statement shape that creates
// storage knowledge: a call to the dialect's storage-store builtin with two
// identifier operands records that the slot holds the value. Every prior
// fact the new one cannot be proven compatible with is dropped, since the
// written slot may alias it. Any other expression either leaves storage
// alone or wipes the storage knowledge entirely.
func (a *Analyzer) DoExpressionStatement(s *lang.ExpressionStatement) {
	slot, value, isStore := a.simpleStorageStore(s)
	if !isStore {
		a.clearStorageIfInvalidatedExpr(s.Expression)
		a.visitExpression(&s.Expression)
		return
	}
	a.visitExpression(&s.Expression)
	a.storage.Set(slot, value)
	// Keep (k, v) only when the slots are provably distinct or the stored
	// values provably agree.
	var stale []lang.Name
	a.storage.ForEach(func(k, v lang.Name) {
		if a.knowledge.KnownToBeDifferent(slot, k) || a.knowledge.KnownToBeEqual(value, v) {
			return
		}
		stale = append(stale, k)
	})
	for _, k := range stale {
		a.storage.EraseKey(k)
	}
	a.logger.Tracef("storage slot %s now holds %s", slot, value)
}

// DoAssignment visits the right-hand side, then updates the knowledge about
// the targets. Assignments always carry a right-hand side; a missing one is
// a malformed program.
func (a *Analyzer) DoAssignment(s *lang.Assignment) {
	if s.Value == nil {
		panic("assignment without a right-hand side: " + lang.Print(s))
	}
	a.clearStorageIfInvalidatedExpr(s.Value)
	a.visitExpression(&s.Value)
	a.handleAssignment(funcutil.SliceToSet(s.VariableNames), s.Value)
}

// DoVariableDeclaration registers the declared names in the current scope,
// then treats the declaration like an assignment. Without an initializer
// the variables are known to be zero.
func (a *Analyzer) DoVariableDeclaration(s *lang.VariableDeclaration) {
	a.currentScope().declare(s.Variables...)
	if s.Value != nil {
		a.clearStorageIfInvalidatedExpr(s.Value)
		a.visitExpression(&s.Value)
	}
	a.handleAssignment(funcutil.SliceToSet(s.Variables), s.Value)
}

// DoIf approximates a body that may or may not run: storage facts survive
// only if they agree with the pre-branch state, and the values of all
// variables assigned anywhere in the body are forgotten.
func (a *Analyzer) DoIf(s *lang.If) {
	a.clearStorageIfInvalidatedExpr(s.Condition)
	snapshot := a.storage.Copy()
	a.visitExpression(&s.Condition)
	a.DoBlock(s.Body)
	a.joinStorageKnowledge(snapshot)
	a.clearValues(lang.Assignments(s.Body))
}

// DoSwitch treats each case as a branch that may or may not run: per case,
// storage facts must agree with the pre-case state, and the values assigned
// in any case are forgotten for all of them. Case labels are literals and
// are not visited.
func (a *Analyzer) DoSwitch(s *lang.Switch) {
	a.clearStorageIfInvalidatedExpr(s.Expression)
	a.visitExpression(&s.Expression)
	assigned := map[lang.Name]bool{}
	for _, c := range s.Cases {
		snapshot := a.storage.Copy()
		a.DoBlock(c.Body)
		a.joinStorageKnowledge(snapshot)
		caseAssigned := lang.Assignments(c.Body)
		funcutil.Union(assigned, caseAssigned)
		a.clearValues(caseAssigned)
		a.clearStorageIfInvalidatedBlock(c.Body)
	}
	for _, c := range s.Cases {
		a.clearStorageIfInvalidatedBlock(c.Body)
	}
	a.clearValues(assigned)
}

// DoFunctionDefinition analyzes the body in complete isolation: the
// surrounding knowledge is swapped out and restored verbatim, since the
// function can be called from arbitrary contexts. Parameters are unknown on
// entry and return variables start at a known zero.
func (a *Analyzer) DoFunctionDefinition(f *lang.FunctionDefinition) {
	a.logger.Debugf("analyzing function %s in isolation", f.Name)
	saved := a.saveState()
	a.pushScope(true)
	a.currentScope().declare(f.Parameters...)
	for _, ret := range f.ReturnVariables {
		a.currentScope().declare(ret)
		a.handleAssignment(map[lang.Name]bool{ret: true}, nil)
	}
	a.DoBlock(f.Body)
	a.popScope()
	a.restoreState(saved)
}

// DoForLoop applies the loop barrier around the back edge: with the
// iteration count unknown, everything assigned in the body or post block is
// unknown both when the condition runs and after the loop. The pre block
// must have been rewritten to empty by an earlier pipeline stage.
func (a *Analyzer) DoForLoop(s *lang.ForLoop) {
	if len(s.Pre.Statements) != 0 {
		panic("for loop with a non-empty pre block: " + lang.Print(s.Pre))
	}

	sinceContinue := lang.AssignmentsSinceContinue(s.Body)
	assigned := lang.Assignments(s.Body)
	funcutil.Union(assigned, lang.Assignments(s.Post))

	a.clearKnowledgeTouchedBy(assigned, s.Condition, s.Post, s.Body)
	a.visitExpression(&s.Condition)
	a.DoBlock(s.Body)
	// Control may reach the post block through a continue, skipping the
	// assignments after it.
	a.clearKnowledgeTouchedBy(sinceContinue, nil, s.Body)
	a.DoBlock(s.Post)
	a.clearKnowledgeTouchedBy(assigned, s.Condition, s.Post, s.Body)
}

// DoBreak is a no-op: the enclosing loop already cleared everything an
// iteration boundary could change.
func (a *Analyzer) DoBreak(*lang.Break) {}

// DoContinue is a no-op, for the same reason as DoBreak.
func (a *Analyzer) DoContinue(*lang.Continue) {}

// simpleStorageStore recognizes a call to the dialect's storage-store
// builtin with two plain identifier operands, the only statement shape that
// yields a storage fact.
func (a *Analyzer) simpleStorageStore(s *lang.ExpressionStatement) (slot, value lang.Name, ok bool) {
	call, isCall := s.Expression.(*lang.FunctionCall)
	if !isCall {
		return "", "", false
	}
	b, known := a.dialect.Builtin(call.FunctionName)
	if !known || !b.StorageStore || len(call.Arguments) != 2 {
		return "", "", false
	}
	slotID, okSlot := call.Arguments[0].(*lang.Identifier)
	valueID, okValue := call.Arguments[1].(*lang.Identifier)
	if !okSlot || !okValue {
		return "", "", false
	}
	return slotID.Name, valueID.Name, true
}
