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
	"testing"

	"github.com/tenfinney/solidity/analysis/dialect"
	"github.com/tenfinney/solidity/analysis/lang"
)

func TestFirstUnconditionalControlFlowChange(t *testing.T) {
	f := NewTerminationFinder(dialect.EVM())
	assign := func(n lang.Name) lang.Statement { return lang.NewAssign(n, lang.NewInt(1)) }

	cases := []struct {
		name      string
		stmts     []lang.Statement
		wantKind  ControlFlow
		wantIndex int
	}{
		{
			"break after assignment",
			[]lang.Statement{assign("a"), &lang.Break{}, assign("b")},
			FlowBreak, 1,
		},
		{
			"flows out",
			[]lang.Statement{assign("a"), assign("b")},
			FlowOut, -1,
		},
		{
			"empty list flows out",
			nil,
			FlowOut, -1,
		},
		{
			"continue",
			[]lang.Statement{&lang.Continue{}},
			FlowContinue, 0,
		},
		{
			"revert terminates",
			[]lang.Statement{assign("a"), lang.NewExprStmt(lang.NewCall("revert", lang.NewInt(0), lang.NewInt(0)))},
			FlowTerminate, 1,
		},
		{
			"unknown call does not terminate",
			[]lang.Statement{lang.NewExprStmt(lang.NewCall("abortEverything"))},
			FlowOut, -1,
		},
		{
			"conditional diversion is not unconditional",
			[]lang.Statement{lang.NewIf(lang.NewIdent("c"), lang.NewBlock(&lang.Break{}))},
			FlowOut, -1,
		},
		{
			"only the first diversion counts",
			[]lang.Statement{&lang.Continue{}, &lang.Break{}},
			FlowContinue, 0,
		},
	}
	for _, c := range cases {
		kind, idx := f.FirstUnconditionalControlFlowChange(c.stmts)
		if kind != c.wantKind || idx != c.wantIndex {
			t.Errorf("%s: expected (%v, %d), got (%v, %d)", c.name, c.wantKind, c.wantIndex, kind, idx)
		}
	}
}

func TestIsTerminatingCall(t *testing.T) {
	f := NewTerminationFinder(dialect.EVM())
	if !f.IsTerminatingCall(lang.NewCall("return", lang.NewInt(0), lang.NewInt(32))) {
		t.Errorf("return terminates")
	}
	if !f.IsTerminatingCall(lang.NewCall("selfdestruct", lang.NewIdent("a"))) {
		t.Errorf("selfdestruct terminates")
	}
	if f.IsTerminatingCall(lang.NewCall("add", lang.NewInt(1), lang.NewInt(2))) {
		t.Errorf("add does not terminate")
	}
	if f.IsTerminatingCall(lang.NewIdent("x")) {
		t.Errorf("an identifier is not a terminating call")
	}
	// Termination must be proved, so unknown calls never count.
	if f.IsTerminatingCall(lang.NewCall("userAbort")) {
		t.Errorf("unknown calls must not be assumed to terminate")
	}
}
