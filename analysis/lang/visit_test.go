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

package lang

import (
	"fmt"
	"testing"
)

func checkNames(t *testing.T, got map[Name]bool, want ...Name) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("expected %d names, got %v", len(want), got)
	}
	for _, n := range want {
		if !got[n] {
			t.Errorf("expected %q in %v", n, got)
		}
	}
}

func TestInspectOrder(t *testing.T) {
	b := NewBlock(
		NewDecl("x", NewInt(5)),
		NewAssign("y", NewCall("add", NewIdent("x"), NewInt(2))),
	)
	var got []string
	Inspect(b, func(n Node) bool {
		got = append(got, fmt.Sprintf("%T", n))
		return true
	})
	want := []string{
		"*lang.Block",
		"*lang.VariableDeclaration",
		"*lang.Literal",
		"*lang.Assignment",
		"*lang.FunctionCall",
		"*lang.Identifier",
		"*lang.Literal",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d nodes, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("node %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestInspectSkipsFunctionNames(t *testing.T) {
	// add(x, mul(y, 2)) reads two variables; the function names are not
	// identifier nodes and must not be visited.
	e := NewCall("add", NewIdent("x"), NewCall("mul", NewIdent("y"), NewInt(2)))
	reads := 0
	Inspect(e, func(n Node) bool {
		if _, ok := n.(*Identifier); ok {
			reads++
		}
		return true
	})
	if reads != 2 {
		t.Errorf("expected 2 identifier visits, got %d", reads)
	}
}

func TestInspectPrune(t *testing.T) {
	b := NewBlock(NewExprStmt(NewCall("add", NewIdent("x"), NewIdent("y"))))
	visited := 0
	Inspect(b, func(n Node) bool {
		visited++
		_, isCall := n.(*FunctionCall)
		return !isCall
	})
	// Block, ExpressionStatement, FunctionCall; the call arguments are pruned.
	if visited != 3 {
		t.Errorf("expected 3 visits with pruning, got %d", visited)
	}
}

type popCounter struct {
	visits int
	pops   int
}

func (c *popCounter) Visit(n Node) Visitor {
	if n == nil {
		c.pops++
		return nil
	}
	c.visits++
	return c
}

func TestWalkPopNotification(t *testing.T) {
	b := NewBlock(NewExprStmt(NewIdent("x")))
	c := &popCounter{}
	Walk(c, b)
	if c.visits != c.pops {
		t.Errorf("expected one pop per visit, got %d visits and %d pops", c.visits, c.pops)
	}
}

func TestAssignments(t *testing.T) {
	b := NewBlock(
		NewDecl("declared", NewInt(0)),
		NewAssign("a", NewInt(1)),
		NewIf(NewIdent("c"), NewBlock(
			NewMultiAssign([]Name{"b", "c"}, NewCall("f")),
		)),
		NewFor(NewTrue(), NewBlock(NewAssign("i", NewInt(2))), NewBlock(
			NewAssign("d", NewInt(3)),
		)),
	)
	checkNames(t, Assignments(b), "a", "b", "c", "i", "d")
}

func TestAssignmentsSinceContinue(t *testing.T) {
	body := NewBlock(
		NewAssign("before", NewInt(1)),
		NewIf(NewIdent("c"), NewBlock(&Continue{})),
		NewAssign("after", NewInt(2)),
		NewFor(NewTrue(), NewBlock(), NewBlock(
			&Continue{},
			NewAssign("inner", NewInt(3)),
		)),
		NewAssign("last", NewInt(4)),
	)
	// Everything after the outer continue counts, including assignments
	// inside the nested loop.
	checkNames(t, AssignmentsSinceContinue(body), "after", "inner", "last")
}

func TestAssignmentsSinceContinueInnerLoopOnly(t *testing.T) {
	body := NewBlock(
		NewFor(NewTrue(), NewBlock(), NewBlock(
			&Continue{},
			NewAssign("inner", NewInt(1)),
		)),
		NewAssign("after", NewInt(2)),
	)
	// The continue belongs to the inner loop, so the window never opens for
	// the outer body.
	checkNames(t, AssignmentsSinceContinue(body))
}

func TestAssignmentsSinceContinueRejectsFunctions(t *testing.T) {
	body := NewBlock(NewFunction("f", nil, nil, NewBlock()))
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic on a function definition in a loop body")
		}
	}()
	AssignmentsSinceContinue(body)
}
