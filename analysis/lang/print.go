package lang

import (
	"strconv"
	"strings"
)

// Print returns the canonical Yul text form of a node. The output of Print
// over a well-formed program parses back to the same tree; it is the format
// used by reports, logs and error messages.
func Print(n Node) string {
	p := &printer{}
	p.node(n)
	return p.buf.String()
}

const indentUnit = "    "

type printer struct {
	buf    strings.Builder
	indent int
}

func (p *printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(indentUnit)
	}
}

func (p *printer) node(n Node) {
	switch n := n.(type) {
	case nil:
		p.buf.WriteString("<nil>")
	case Expression:
		p.expr(n)
	case *Block:
		p.block(n)
	case *Case:
		p.caseArm(n)
	case Statement:
		p.stmt(n)
	default:
		panic(n)
	}
}

func (p *printer) names(names []Name) {
	for i, n := range names {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		p.buf.WriteString(string(n))
	}
}

func (p *printer) block(b *Block) {
	if len(b.Statements) == 0 {
		p.buf.WriteString("{ }")
		return
	}
	p.buf.WriteString("{\n")
	p.indent++
	for _, s := range b.Statements {
		p.writeIndent()
		p.stmt(s)
		p.buf.WriteByte('\n')
	}
	p.indent--
	p.writeIndent()
	p.buf.WriteByte('}')
}

func (p *printer) stmt(s Statement) {
	switch s := s.(type) {
	case *Block:
		p.block(s)
	case *ExpressionStatement:
		p.expr(s.Expression)
	case *Assignment:
		p.names(s.VariableNames)
		p.buf.WriteString(" := ")
		p.expr(s.Value)
	case *VariableDeclaration:
		p.buf.WriteString("let ")
		p.names(s.Variables)
		if s.Value != nil {
			p.buf.WriteString(" := ")
			p.expr(s.Value)
		}
	case *FunctionDefinition:
		p.buf.WriteString("function ")
		p.buf.WriteString(string(s.Name))
		p.buf.WriteByte('(')
		p.names(s.Parameters)
		p.buf.WriteByte(')')
		if len(s.ReturnVariables) > 0 {
			p.buf.WriteString(" -> ")
			p.names(s.ReturnVariables)
		}
		p.buf.WriteByte(' ')
		p.block(s.Body)
	case *If:
		p.buf.WriteString("if ")
		p.expr(s.Condition)
		p.buf.WriteByte(' ')
		p.block(s.Body)
	case *Switch:
		p.buf.WriteString("switch ")
		p.expr(s.Expression)
		for _, c := range s.Cases {
			p.buf.WriteByte('\n')
			p.writeIndent()
			p.caseArm(c)
		}
	case *ForLoop:
		p.buf.WriteString("for ")
		p.block(s.Pre)
		p.buf.WriteByte(' ')
		p.expr(s.Condition)
		p.buf.WriteByte(' ')
		p.block(s.Post)
		p.buf.WriteByte(' ')
		p.block(s.Body)
	case *Break:
		p.buf.WriteString("break")
	case *Continue:
		p.buf.WriteString("continue")
	default:
		panic(s)
	}
}

func (p *printer) caseArm(c *Case) {
	if c.Value == nil {
		p.buf.WriteString("default ")
	} else {
		p.buf.WriteString("case ")
		p.expr(c.Value)
		p.buf.WriteByte(' ')
	}
	p.block(c.Body)
}

func (p *printer) expr(e Expression) {
	switch e := e.(type) {
	case *Literal:
		if e.Kind == StringLiteral {
			p.buf.WriteString(strconv.Quote(e.Value))
		} else {
			p.buf.WriteString(e.Value)
		}
	case *Identifier:
		p.buf.WriteString(string(e.Name))
	case *FunctionCall:
		p.buf.WriteString(string(e.FunctionName))
		p.buf.WriteByte('(')
		for i, a := range e.Arguments {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.expr(a)
		}
		p.buf.WriteByte(')')
	default:
		panic(e)
	}
}

func (b *Block) String() string               { return Print(b) }
func (s *ExpressionStatement) String() string { return Print(s) }
func (s *Assignment) String() string          { return Print(s) }
func (s *VariableDeclaration) String() string { return Print(s) }
func (s *FunctionDefinition) String() string  { return Print(s) }
func (s *If) String() string                  { return Print(s) }
func (s *Switch) String() string              { return Print(s) }
func (c *Case) String() string                { return Print(c) }
func (s *ForLoop) String() string             { return Print(s) }
func (s *Break) String() string               { return Print(s) }
func (s *Continue) String() string            { return Print(s) }
func (e *Literal) String() string             { return Print(e) }
func (e *Identifier) String() string          { return Print(e) }
func (e *FunctionCall) String() string        { return Print(e) }
