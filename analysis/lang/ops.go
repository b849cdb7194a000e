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

// A StmtOp must implement methods for ALL statement variants. Implementing
// this interface is how a traversal proves it handles the whole language;
// StmtSwitch panics on any statement outside the closed node set.
type StmtOp interface {
	DoBlock(*Block)
	DoExpressionStatement(*ExpressionStatement)
	DoAssignment(*Assignment)
	DoVariableDeclaration(*VariableDeclaration)
	DoFunctionDefinition(*FunctionDefinition)
	DoIf(*If)
	DoSwitch(*Switch)
	DoForLoop(*ForLoop)
	DoBreak(*Break)
	DoContinue(*Continue)
}

// StmtSwitch is a map from the different statement variants to the methods of the visitor.
func StmtSwitch(visitor StmtOp, stmt Statement) {
	switch stmt := stmt.(type) {
	case *Block:
		visitor.DoBlock(stmt)
	case *ExpressionStatement:
		visitor.DoExpressionStatement(stmt)
	case *Assignment:
		visitor.DoAssignment(stmt)
	case *VariableDeclaration:
		visitor.DoVariableDeclaration(stmt)
	case *FunctionDefinition:
		visitor.DoFunctionDefinition(stmt)
	case *If:
		visitor.DoIf(stmt)
	case *Switch:
		visitor.DoSwitch(stmt)
	case *ForLoop:
		visitor.DoForLoop(stmt)
	case *Break:
		visitor.DoBreak(stmt)
	case *Continue:
		visitor.DoContinue(stmt)
	default:
		panic(stmt)
	}
}

// An ExprOp must implement methods for ALL expression variants.
type ExprOp interface {
	DoLiteral(*Literal)
	DoIdentifier(*Identifier)
	DoFunctionCall(*FunctionCall)
}

// ExprSwitch is a map from the different expression variants to the methods of the visitor.
func ExprSwitch(visitor ExprOp, expr Expression) {
	switch expr := expr.(type) {
	case *Literal:
		visitor.DoLiteral(expr)
	case *Identifier:
		visitor.DoIdentifier(expr)
	case *FunctionCall:
		visitor.DoFunctionCall(expr)
	default:
		panic(expr)
	}
}
