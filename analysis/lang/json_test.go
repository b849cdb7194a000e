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
	"strings"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	prog := NewBlock(
		NewDecl("x", NewInt(5)),
		NewMultiDecl([]Name{"a", "b"}, nil),
		NewAssign("x", NewCall("add", NewIdent("x"), NewNumber("0x10"))),
		NewExprStmt(NewCall("sstore", NewIdent("x"), NewIdent("a"))),
		NewIf(NewCall("lt", NewIdent("x"), NewInt(10)), NewBlock(
			NewAssign("x", NewInt(0)),
		)),
		NewSwitch(NewIdent("x"),
			NewCase(NewInt(0), NewBlock(NewAssign("a", NewTrue()))),
			NewDefaultCase(NewBlock(NewAssign("a", NewString("s")))),
		),
		NewFor(NewIdent("a"), NewBlock(NewAssign("x", NewCall("add", NewIdent("x"), NewInt(1)))), NewBlock(
			NewIf(NewIdent("b"), NewBlock(&Break{})),
			&Continue{},
		)),
		NewFunction("f", []Name{"p"}, []Name{"r"}, NewBlock(
			NewAssign("r", NewIdent("p")),
		)),
	)

	data, err := EncodeJSON(prog)
	if err != nil {
		t.Fatalf("encoding failed: %v", err)
	}
	decoded, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("decoding failed: %v", err)
	}
	if got, want := Print(decoded), Print(prog); got != want {
		t.Errorf("round trip changed the program:\n%s\nwas:\n%s", got, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			"not json",
			`{`,
			"program",
		},
		{
			"missing node type",
			`{"statements":[]}`,
			"missing nodeType",
		},
		{
			"top level not a block",
			`{"nodeType":"Identifier","name":"x"}`,
			"expected Block",
		},
		{
			"unknown statement type",
			`{"nodeType":"Block","statements":[{"nodeType":"Goto"}]}`,
			`unknown statement type "Goto"`,
		},
		{
			"assignment without value",
			`{"nodeType":"Block","statements":[{"nodeType":"Assignment","variableNames":["x"]}]}`,
			"assignment without value",
		},
		{
			"assignment without targets",
			`{"nodeType":"Block","statements":[{"nodeType":"Assignment","value":{"nodeType":"Literal","kind":"number","value":"1"}}]}`,
			"assignment without targets",
		},
		{
			"unknown literal kind",
			`{"nodeType":"Block","statements":[{"nodeType":"ExpressionStatement","expression":{"nodeType":"Literal","kind":"float","value":"1.5"}}]}`,
			`unknown literal kind "float"`,
		},
		{
			"case label not a literal",
			`{"nodeType":"Block","statements":[{"nodeType":"Switch","expression":{"nodeType":"Identifier","name":"x"},"cases":[{"nodeType":"Case","value":{"nodeType":"Identifier","name":"y"},"body":{"nodeType":"Block","statements":[]}}]}]}`,
			"case label must be a literal",
		},
		{
			"for loop missing post",
			`{"nodeType":"Block","statements":[{"nodeType":"ForLoop","pre":{"nodeType":"Block","statements":[]},"condition":{"nodeType":"Identifier","name":"c"},"body":{"nodeType":"Block","statements":[]}}]}`,
			"for loop requires",
		},
	}
	for _, c := range cases {
		_, err := DecodeJSON([]byte(c.input))
		if err == nil {
			t.Errorf("%s: expected an error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.wantErr) {
			t.Errorf("%s: expected error containing %q, got %q", c.name, c.wantErr, err)
		}
	}
}

func TestDecodeErrorNamesPath(t *testing.T) {
	input := `{"nodeType":"Block","statements":[
		{"nodeType":"ExpressionStatement","expression":{"nodeType":"Identifier","name":"x"}},
		{"nodeType":"If","condition":{"nodeType":"Bad"},"body":{"nodeType":"Block","statements":[]}}
	]}`
	_, err := DecodeJSON([]byte(input))
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "program.statements[1].condition") {
		t.Errorf("expected the error to name the JSON path, got %q", err)
	}
}
