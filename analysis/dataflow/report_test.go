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
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/tenfinney/solidity/analysis/lang"
)

func TestReportGolden(t *testing.T) {
	a := analyze(t,
		lang.NewDecl("a", lang.NewInt(1)),
		lang.NewDecl("b", lang.NewIdent("a")),
		lang.NewDecl("p", lang.NewInt(2)),
		lang.NewExprStmt(lang.NewCall("sstore", lang.NewIdent("p"), lang.NewIdent("b"))),
	)

	var out bytes.Buffer
	Report(a, &out, "dataflow report")
	goldie.New(t).Assert(t, t.Name(), out.Bytes())
}

func TestReportEmptyGolden(t *testing.T) {
	a := analyze(t)

	var out bytes.Buffer
	Report(a, &out, "dataflow report")
	goldie.New(t).Assert(t, t.Name(), out.Bytes())
}

func TestWriteReferenceGraphDOT(t *testing.T) {
	a := analyze(t,
		lang.NewDecl("a", lang.NewInt(1)),
		lang.NewDecl("b", lang.NewIdent("a")),
		lang.NewDecl("c", lang.NewCall("add", lang.NewIdent("a"), lang.NewIdent("b"))),
	)

	var out bytes.Buffer
	if err := WriteReferenceGraphDOT(a, &out, "references"); err != nil {
		t.Fatalf("WriteReferenceGraphDOT: %v", err)
	}
	dot := out.String()
	for _, want := range []string{"digraph references", "b -> a", "c -> a", "c -> b"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}
