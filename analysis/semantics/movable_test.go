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

func checkMovability(t *testing.T, c *MovableChecker, movable, sideEffectFree, invalidates bool) {
	t.Helper()
	if c.Movable() != movable {
		t.Errorf("expected movable=%v", movable)
	}
	if c.SideEffectFree() != sideEffectFree {
		t.Errorf("expected sideEffectFree=%v", sideEffectFree)
	}
	if c.InvalidatesStorage() != invalidates {
		t.Errorf("expected invalidatesStorage=%v", invalidates)
	}
}

func TestMovableCheckerPureExpression(t *testing.T) {
	// add(x, mul(y, 3)) is pure arithmetic over variables.
	e := lang.NewCall("add", lang.NewIdent("x"), lang.NewCall("mul", lang.NewIdent("y"), lang.NewInt(3)))
	c := CheckMovability(dialect.EVM(), e)
	checkMovability(t, c, true, true, false)
	refs := c.ReferencedVariables()
	if len(refs) != 2 || !refs["x"] || !refs["y"] {
		t.Errorf("expected reads {x, y}, got %v", refs)
	}
}

func TestMovableCheckerUnknownCallIsPessimistic(t *testing.T) {
	// One unrecognized call anywhere flips every flag.
	e := lang.NewCall("add", lang.NewIdent("x"), lang.NewCall("userFunc", lang.NewIdent("y")))
	c := CheckMovability(dialect.EVM(), e)
	checkMovability(t, c, false, false, true)
	refs := c.ReferencedVariables()
	if len(refs) != 2 || !refs["x"] || !refs["y"] {
		t.Errorf("reads are still collected for unknown calls, got %v", refs)
	}
}

func TestMovableCheckerContextReads(t *testing.T) {
	// sload(p) may not move but has no side effects and keeps storage
	// knowledge intact.
	c := CheckMovability(dialect.EVM(), lang.NewCall("sload", lang.NewIdent("p")))
	checkMovability(t, c, false, true, false)

	// mstore(p, v) has side effects but storage knowledge survives.
	c = CheckMovability(dialect.EVM(), lang.NewCall("mstore", lang.NewIdent("p"), lang.NewIdent("v")))
	checkMovability(t, c, false, false, false)

	// sstore(p, v) additionally invalidates storage knowledge.
	c = CheckMovability(dialect.EVM(), lang.NewCall("sstore", lang.NewIdent("p"), lang.NewIdent("v")))
	checkMovability(t, c, false, false, true)
}

func TestMovableCheckerAccumulates(t *testing.T) {
	c := NewMovableChecker(dialect.EVM())
	c.Visit(lang.NewIdent("a"))
	checkMovability(t, c, true, true, false)
	c.Visit(lang.NewCall("call", lang.NewIdent("g"), lang.NewIdent("t"), lang.NewIdent("v"),
		lang.NewInt(0), lang.NewInt(0), lang.NewInt(0), lang.NewInt(0)))
	checkMovability(t, c, false, false, true)
	// Later pure expressions do not win the flags back.
	c.Visit(lang.NewInt(1))
	checkMovability(t, c, false, false, true)
}

func TestMovableCheckerLiteralOnly(t *testing.T) {
	c := CheckMovability(dialect.EVM(), lang.NewInt(42))
	checkMovability(t, c, true, true, false)
	if len(c.ReferencedVariables()) != 0 {
		t.Errorf("literals read no variables, got %v", c.ReferencedVariables())
	}
}
