package lang

import "strconv"

// NewTrue returns a new literal node that represents the boolean true
func NewTrue() *Literal {
	return &Literal{Kind: BooleanLiteral, Value: "true"}
}

// NewFalse returns a new literal node that represents the boolean false
func NewFalse() *Literal {
	return &Literal{Kind: BooleanLiteral, Value: "false"}
}

// NewInt returns a new literal node that represents the integer value
func NewInt(value int64) *Literal {
	return &Literal{Kind: NumberLiteral, Value: strconv.FormatInt(value, 10)}
}

// NewNumber returns a new literal node with the given number source text
func NewNumber(value string) *Literal {
	return &Literal{Kind: NumberLiteral, Value: value}
}

// NewString returns a new literal node that represents the string value
func NewString(value string) *Literal {
	return &Literal{Kind: StringLiteral, Value: value}
}

// NewIdent returns a new identifier node reading the named variable
func NewIdent(name Name) *Identifier {
	return &Identifier{Name: name}
}

// NewCall returns a new call of the named function over the arguments args ...
func NewCall(name Name, args ...Expression) *FunctionCall {
	return &FunctionCall{FunctionName: name, Arguments: args}
}

// NewBlock returns a new block containing the given statements
func NewBlock(stmts ...Statement) *Block {
	return &Block{Statements: stmts}
}

// NewExprStmt returns a new expression statement evaluating e
func NewExprStmt(e Expression) *ExpressionStatement {
	return &ExpressionStatement{Expression: e}
}

// NewAssign returns a new single-target assignment name := value
func NewAssign(name Name, value Expression) *Assignment {
	return &Assignment{VariableNames: []Name{name}, Value: value}
}

// NewMultiAssign returns a new assignment of value to several targets
func NewMultiAssign(names []Name, value Expression) *Assignment {
	return &Assignment{VariableNames: names, Value: value}
}

// NewDecl returns a new single-variable declaration; value may be nil
func NewDecl(name Name, value Expression) *VariableDeclaration {
	return &VariableDeclaration{Variables: []Name{name}, Value: value}
}

// NewMultiDecl returns a new declaration of several variables; value may be nil
func NewMultiDecl(names []Name, value Expression) *VariableDeclaration {
	return &VariableDeclaration{Variables: names, Value: value}
}

// NewIf returns a new if statement with the given condition and body
func NewIf(cond Expression, body *Block) *If {
	return &If{Condition: cond, Body: body}
}

// NewSwitch returns a new switch over e with the given cases
func NewSwitch(e Expression, cases ...*Case) *Switch {
	return &Switch{Expression: e, Cases: cases}
}

// NewCase returns a new case arm labelled with the given literal
func NewCase(value *Literal, body *Block) *Case {
	return &Case{Value: value, Body: body}
}

// NewDefaultCase returns a new default case arm
func NewDefaultCase(body *Block) *Case {
	return &Case{Body: body}
}

// NewFor returns a new for loop with an empty pre block, as the analyses
// expect loops to be shaped
func NewFor(cond Expression, post *Block, body *Block) *ForLoop {
	return &ForLoop{Pre: NewBlock(), Condition: cond, Post: post, Body: body}
}

// NewFunction returns a new function definition node
func NewFunction(name Name, params []Name, returns []Name, body *Block) *FunctionDefinition {
	return &FunctionDefinition{Name: name, Parameters: params, ReturnVariables: returns, Body: body}
}
