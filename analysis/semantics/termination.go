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

package semantics

import (
	"github.com/tenfinney/solidity/analysis/dialect"
	"github.com/tenfinney/solidity/analysis/lang"
)

// ControlFlow classifies how control leaves a statement or statement
// sequence.
type ControlFlow int

const (
	// FlowOut: execution can reach the point after the statement.
	FlowOut ControlFlow = iota
	// FlowBreak: the statement unconditionally breaks out of the loop.
	FlowBreak
	// FlowContinue: the statement unconditionally continues the loop.
	FlowContinue
	// FlowTerminate: the statement unconditionally ends execution.
	FlowTerminate
)

func (c ControlFlow) String() string {
	switch c {
	case FlowOut:
		return "flow out"
	case FlowBreak:
		return "break"
	case FlowContinue:
		return "continue"
	case FlowTerminate:
		return "terminate"
	}
	return "unknown"
}

// A TerminationFinder detects statements that unconditionally divert control
// flow. Only direct evidence counts: a compound statement that diverts on
// some of its paths is still FlowOut, and a call the dialect does not know is
// never assumed to terminate.
type TerminationFinder struct {
	dialect *dialect.Dialect
}

// NewTerminationFinder returns a finder for the given dialect.
func NewTerminationFinder(d *dialect.Dialect) TerminationFinder {
	return TerminationFinder{dialect: d}
}

// FirstUnconditionalControlFlowChange scans the statement list in order and
// returns the kind and index of the first statement that unconditionally
// diverts control flow. When execution can flow past the end of the list the
// result is (FlowOut, -1).
func (f TerminationFinder) FirstUnconditionalControlFlowChange(stmts []lang.Statement) (ControlFlow, int) {
	for i, s := range stmts {
		if kind := f.ControlFlowKind(s); kind != FlowOut {
			return kind, i
		}
	}
	return FlowOut, -1
}

// ControlFlowKind classifies a single statement.
func (f TerminationFinder) ControlFlowKind(s lang.Statement) ControlFlow {
	switch s := s.(type) {
	case *lang.Break:
		return FlowBreak
	case *lang.Continue:
		return FlowContinue
	case *lang.ExpressionStatement:
		if f.IsTerminatingCall(s.Expression) {
			return FlowTerminate
		}
	}
	return FlowOut
}

// IsTerminatingCall reports whether e is a direct call to a builtin that
// never returns control.
func (f TerminationFinder) IsTerminatingCall(e lang.Expression) bool {
	call, ok := e.(*lang.FunctionCall)
	if !ok {
		return false
	}
	b, known := f.dialect.Builtin(call.FunctionName)
	return known && b.Terminating
}
