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

// Package lang defines the intermediate representation the analyses in this
// module operate on: a block-structured Yul program form with a closed set of
// statement and expression node types, plus the visitors, constructors,
// printer and JSON interchange codec that the rest of the module builds on.
//
// The node set is deliberately closed: only the pointer types declared in
// this package implement Statement and Expression, and the dispatch helpers
// (StmtSwitch, ExprSwitch, Walk) fail loudly on anything else. Code that must
// handle every variant implements StmtOp or ExprOp and gets one method per
// variant.
package lang

// Name identifies a variable or function. Programs reaching the analyses are
// expected to have globally unique names, so a Name is never relative to a
// scope.
type Name string

// Node is implemented by every syntax node in this package.
type Node interface {
	node()
}

// Statement is implemented by all statement nodes.
type Statement interface {
	Node
	stmtNode()
}

// Expression is implemented by all expression nodes.
type Expression interface {
	Node
	exprNode()
}

// A Block is a sequence of statements introducing its own lexical scope.
type Block struct {
	Statements []Statement
}

// An ExpressionStatement evaluates an expression for its effects and discards
// any results. The expression must return zero values in a well-formed
// program.
type ExpressionStatement struct {
	Expression Expression
}

// An Assignment assigns the results of Value to one or more existing
// variables. Value is never nil in a well-formed program.
type Assignment struct {
	VariableNames []Name
	Value         Expression
}

// A VariableDeclaration introduces one or more variables in the enclosing
// scope. Value may be nil, in which case every variable holds zero.
type VariableDeclaration struct {
	Variables []Name
	Value     Expression
}

// A FunctionDefinition declares a function with named parameters and named
// return variables. Return variables are zero-initialized on entry and their
// final values are the call results.
type FunctionDefinition struct {
	Name            Name
	Parameters      []Name
	ReturnVariables []Name
	Body            *Block
}

// An If runs its body when the condition evaluates to a nonzero value.
// There is no else branch in this program form.
type If struct {
	Condition Expression
	Body      *Block
}

// A Switch compares its expression against each case label and runs the first
// matching body, or the default case if present and nothing matches.
type Switch struct {
	Expression Expression
	Cases      []*Case
}

// A Case is one arm of a Switch. A nil Value marks the default case.
type Case struct {
	Value *Literal
	Body  *Block
}

// A ForLoop runs Body while Condition is nonzero, executing Post between
// iterations. The analyses in this module require Pre to have been rewritten
// to an empty block beforehand.
type ForLoop struct {
	Pre       *Block
	Condition Expression
	Post      *Block
	Body      *Block
}

// A Break terminates the innermost enclosing loop.
type Break struct{}

// A Continue skips to the Post block of the innermost enclosing loop.
type Continue struct{}

// LiteralKind discriminates the syntactic form of a Literal.
type LiteralKind int

const (
	// NumberLiteral is a decimal or 0x-prefixed hexadecimal constant.
	NumberLiteral LiteralKind = iota
	// BooleanLiteral is true or false.
	BooleanLiteral
	// StringLiteral is a quoted string constant.
	StringLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case NumberLiteral:
		return "number"
	case BooleanLiteral:
		return "bool"
	case StringLiteral:
		return "string"
	}
	return "unknown"
}

// A Literal is a constant value. Value holds the source text of the constant
// (for booleans, "true" or "false").
type Literal struct {
	Kind  LiteralKind
	Value string
}

// An Identifier is a read of a variable.
type Identifier struct {
	Name Name
}

// A FunctionCall invokes a builtin or user-defined function. The function
// name is plain data rather than an Identifier node so that visiting an
// Identifier always means a variable read.
type FunctionCall struct {
	FunctionName Name
	Arguments    []Expression
}

func (*Block) node()               {}
func (*ExpressionStatement) node() {}
func (*Assignment) node()          {}
func (*VariableDeclaration) node() {}
func (*FunctionDefinition) node()  {}
func (*If) node()                  {}
func (*Switch) node()              {}
func (*Case) node()                {}
func (*ForLoop) node()             {}
func (*Break) node()               {}
func (*Continue) node()            {}
func (*Literal) node()             {}
func (*Identifier) node()          {}
func (*FunctionCall) node()        {}

func (*Block) stmtNode()               {}
func (*ExpressionStatement) stmtNode() {}
func (*Assignment) stmtNode()          {}
func (*VariableDeclaration) stmtNode() {}
func (*FunctionDefinition) stmtNode()  {}
func (*If) stmtNode()                  {}
func (*Switch) stmtNode()              {}
func (*ForLoop) stmtNode()             {}
func (*Break) stmtNode()               {}
func (*Continue) stmtNode()            {}

func (*Literal) exprNode()      {}
func (*Identifier) exprNode()   {}
func (*FunctionCall) exprNode() {}
