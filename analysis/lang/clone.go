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

// Clone returns a deep copy of e sharing no nodes with the original. The
// analyses clone every expression at the moment they record it, so a later
// in-place rewrite of the program cannot corrupt recorded knowledge.
// Clone(nil) is nil.
func Clone(e Expression) Expression {
	switch e := e.(type) {
	case nil:
		return nil
	case *Literal:
		c := *e
		return &c
	case *Identifier:
		c := *e
		return &c
	case *FunctionCall:
		args := make([]Expression, len(e.Arguments))
		for i, a := range e.Arguments {
			args[i] = Clone(a)
		}
		return &FunctionCall{FunctionName: e.FunctionName, Arguments: args}
	default:
		panic(e)
	}
}

// Equal reports whether a and b are structurally identical expressions.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch a := a.(type) {
	case *Literal:
		b, ok := b.(*Literal)
		return ok && a.Kind == b.Kind && a.Value == b.Value
	case *Identifier:
		b, ok := b.(*Identifier)
		return ok && a.Name == b.Name
	case *FunctionCall:
		b, ok := b.(*FunctionCall)
		if !ok || a.FunctionName != b.FunctionName || len(a.Arguments) != len(b.Arguments) {
			return false
		}
		for i := range a.Arguments {
			if !Equal(a.Arguments[i], b.Arguments[i]) {
				return false
			}
		}
		return true
	default:
		panic(a)
	}
}
