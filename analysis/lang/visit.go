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

// A Visitor's Visit method is invoked for each node encountered by Walk. If
// the result visitor w is not nil, Walk visits each of the children of node
// with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses a syntax tree in depth-first order: it starts by calling
// v.Visit(node); node must not be nil. If the visitor w returned by
// v.Visit(node) is not nil, Walk is invoked recursively with visitor w for
// each of the non-nil children of node, followed by a call of w.Visit(nil).
//
// Children are visited in syntactic order. Function names of calls and the
// name lists of declarations, assignments and function definitions are plain
// data, not children, so a visited Identifier is always a variable read.
func Walk(v Visitor, n Node) {
	if v = v.Visit(n); v == nil {
		return
	}

	switch n := n.(type) {
	case *Block:
		for _, s := range n.Statements {
			Walk(v, s)
		}
	case *ExpressionStatement:
		Walk(v, n.Expression)
	case *Assignment:
		Walk(v, n.Value)
	case *VariableDeclaration:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *FunctionDefinition:
		Walk(v, n.Body)
	case *If:
		Walk(v, n.Condition)
		Walk(v, n.Body)
	case *Switch:
		Walk(v, n.Expression)
		for _, c := range n.Cases {
			Walk(v, c)
		}
	case *Case:
		if n.Value != nil {
			Walk(v, n.Value)
		}
		Walk(v, n.Body)
	case *ForLoop:
		Walk(v, n.Pre)
		Walk(v, n.Condition)
		Walk(v, n.Post)
		Walk(v, n.Body)
	case *Break, *Continue, *Literal, *Identifier:
		// leaves
	case *FunctionCall:
		for _, a := range n.Arguments {
			Walk(v, a)
		}
	default:
		panic(n)
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if n != nil && f(n) {
		return f
	}
	return nil
}

// Inspect traverses a syntax tree in depth-first order: it starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}
