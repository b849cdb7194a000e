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
	"encoding/json"
	"fmt"
)

// The JSON interchange format mirrors the node structs one to one, with a
// "nodeType" discriminator on every object. It is the format external
// frontends hand programs to the analyses in; this package never parses Yul
// source text.

// EncodeJSON renders a program in the JSON interchange format.
func EncodeJSON(b *Block) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// DecodeJSON reads a program in the JSON interchange format. Unknown node
// types and structurally malformed nodes are rejected with an error naming
// the JSON path of the offending node.
func DecodeJSON(data []byte) (*Block, error) {
	return decodeBlock(data, "program")
}

func (b *Block) MarshalJSON() ([]byte, error) {
	stmts := b.Statements
	if stmts == nil {
		stmts = []Statement{}
	}
	return json.Marshal(struct {
		NodeType   string      `json:"nodeType"`
		Statements []Statement `json:"statements"`
	}{"Block", stmts})
}

func (s *ExpressionStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType   string     `json:"nodeType"`
		Expression Expression `json:"expression"`
	}{"ExpressionStatement", s.Expression})
}

func (s *Assignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType      string     `json:"nodeType"`
		VariableNames []Name     `json:"variableNames"`
		Value         Expression `json:"value"`
	}{"Assignment", s.VariableNames, s.Value})
}

func (s *VariableDeclaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType  string     `json:"nodeType"`
		Variables []Name     `json:"variables"`
		Value     Expression `json:"value,omitempty"`
	}{"VariableDeclaration", s.Variables, s.Value})
}

func (s *FunctionDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType        string `json:"nodeType"`
		Name            Name   `json:"name"`
		Parameters      []Name `json:"parameters,omitempty"`
		ReturnVariables []Name `json:"returnVariables,omitempty"`
		Body            *Block `json:"body"`
	}{"FunctionDefinition", s.Name, s.Parameters, s.ReturnVariables, s.Body})
}

func (s *If) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType  string     `json:"nodeType"`
		Condition Expression `json:"condition"`
		Body      *Block     `json:"body"`
	}{"If", s.Condition, s.Body})
}

func (s *Switch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType   string     `json:"nodeType"`
		Expression Expression `json:"expression"`
		Cases      []*Case    `json:"cases"`
	}{"Switch", s.Expression, s.Cases})
}

func (c *Case) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string   `json:"nodeType"`
		Value    *Literal `json:"value"`
		Body     *Block   `json:"body"`
	}{"Case", c.Value, c.Body})
}

func (s *ForLoop) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType  string     `json:"nodeType"`
		Pre       *Block     `json:"pre"`
		Condition Expression `json:"condition"`
		Post      *Block     `json:"post"`
		Body      *Block     `json:"body"`
	}{"ForLoop", s.Pre, s.Condition, s.Post, s.Body})
}

func (s *Break) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"nodeType"`
	}{"Break"})
}

func (s *Continue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"nodeType"`
	}{"Continue"})
}

func (e *Literal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"nodeType"`
		Kind     string `json:"kind"`
		Value    string `json:"value"`
	}{"Literal", e.Kind.String(), e.Value})
}

func (e *Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"nodeType"`
		Name     Name   `json:"name"`
	}{"Identifier", e.Name})
}

func (e *FunctionCall) MarshalJSON() ([]byte, error) {
	args := e.Arguments
	if args == nil {
		args = []Expression{}
	}
	return json.Marshal(struct {
		NodeType     string       `json:"nodeType"`
		FunctionName Name         `json:"functionName"`
		Arguments    []Expression `json:"arguments"`
	}{"FunctionCall", e.FunctionName, args})
}

func nodeType(data []byte, path string) (string, error) {
	var header struct {
		NodeType string `json:"nodeType"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if header.NodeType == "" {
		return "", fmt.Errorf("%s: missing nodeType", path)
	}
	return header.NodeType, nil
}

func decodeBlock(data []byte, path string) (*Block, error) {
	nt, err := nodeType(data, path)
	if err != nil {
		return nil, err
	}
	if nt != "Block" {
		return nil, fmt.Errorf("%s: expected Block, got %s", path, nt)
	}
	var raw struct {
		Statements []json.RawMessage `json:"statements"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b := &Block{Statements: make([]Statement, 0, len(raw.Statements))}
	for i, sd := range raw.Statements {
		s, err := decodeStatement(sd, fmt.Sprintf("%s.statements[%d]", path, i))
		if err != nil {
			return nil, err
		}
		b.Statements = append(b.Statements, s)
	}
	return b, nil
}

//gocyclo:ignore
func decodeStatement(data []byte, path string) (Statement, error) {
	nt, err := nodeType(data, path)
	if err != nil {
		return nil, err
	}
	switch nt {
	case "Block":
		return decodeBlock(data, path)
	case "ExpressionStatement":
		var raw struct {
			Expression json.RawMessage `json:"expression"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if raw.Expression == nil {
			return nil, fmt.Errorf("%s: missing expression", path)
		}
		e, err := decodeExpression(raw.Expression, path+".expression")
		if err != nil {
			return nil, err
		}
		return &ExpressionStatement{Expression: e}, nil
	case "Assignment":
		var raw struct {
			VariableNames []Name          `json:"variableNames"`
			Value         json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if len(raw.VariableNames) == 0 {
			return nil, fmt.Errorf("%s: assignment without targets", path)
		}
		if raw.Value == nil {
			return nil, fmt.Errorf("%s: assignment without value", path)
		}
		v, err := decodeExpression(raw.Value, path+".value")
		if err != nil {
			return nil, err
		}
		return &Assignment{VariableNames: raw.VariableNames, Value: v}, nil
	case "VariableDeclaration":
		var raw struct {
			Variables []Name          `json:"variables"`
			Value     json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if len(raw.Variables) == 0 {
			return nil, fmt.Errorf("%s: declaration without variables", path)
		}
		d := &VariableDeclaration{Variables: raw.Variables}
		if raw.Value != nil {
			v, err := decodeExpression(raw.Value, path+".value")
			if err != nil {
				return nil, err
			}
			d.Value = v
		}
		return d, nil
	case "FunctionDefinition":
		var raw struct {
			Name            Name            `json:"name"`
			Parameters      []Name          `json:"parameters"`
			ReturnVariables []Name          `json:"returnVariables"`
			Body            json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if raw.Name == "" {
			return nil, fmt.Errorf("%s: function without a name", path)
		}
		if raw.Body == nil {
			return nil, fmt.Errorf("%s: function without a body", path)
		}
		body, err := decodeBlock(raw.Body, path+".body")
		if err != nil {
			return nil, err
		}
		return &FunctionDefinition{
			Name:            raw.Name,
			Parameters:      raw.Parameters,
			ReturnVariables: raw.ReturnVariables,
			Body:            body,
		}, nil
	case "If":
		var raw struct {
			Condition json.RawMessage `json:"condition"`
			Body      json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if raw.Condition == nil || raw.Body == nil {
			return nil, fmt.Errorf("%s: if requires condition and body", path)
		}
		cond, err := decodeExpression(raw.Condition, path+".condition")
		if err != nil {
			return nil, err
		}
		body, err := decodeBlock(raw.Body, path+".body")
		if err != nil {
			return nil, err
		}
		return &If{Condition: cond, Body: body}, nil
	case "Switch":
		var raw struct {
			Expression json.RawMessage   `json:"expression"`
			Cases      []json.RawMessage `json:"cases"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if raw.Expression == nil {
			return nil, fmt.Errorf("%s: switch without expression", path)
		}
		e, err := decodeExpression(raw.Expression, path+".expression")
		if err != nil {
			return nil, err
		}
		sw := &Switch{Expression: e}
		for i, cd := range raw.Cases {
			c, err := decodeCase(cd, fmt.Sprintf("%s.cases[%d]", path, i))
			if err != nil {
				return nil, err
			}
			sw.Cases = append(sw.Cases, c)
		}
		return sw, nil
	case "ForLoop":
		var raw struct {
			Pre       json.RawMessage `json:"pre"`
			Condition json.RawMessage `json:"condition"`
			Post      json.RawMessage `json:"post"`
			Body      json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if raw.Pre == nil || raw.Condition == nil || raw.Post == nil || raw.Body == nil {
			return nil, fmt.Errorf("%s: for loop requires pre, condition, post and body", path)
		}
		pre, err := decodeBlock(raw.Pre, path+".pre")
		if err != nil {
			return nil, err
		}
		cond, err := decodeExpression(raw.Condition, path+".condition")
		if err != nil {
			return nil, err
		}
		post, err := decodeBlock(raw.Post, path+".post")
		if err != nil {
			return nil, err
		}
		body, err := decodeBlock(raw.Body, path+".body")
		if err != nil {
			return nil, err
		}
		return &ForLoop{Pre: pre, Condition: cond, Post: post, Body: body}, nil
	case "Break":
		return &Break{}, nil
	case "Continue":
		return &Continue{}, nil
	default:
		return nil, fmt.Errorf("%s: unknown statement type %q", path, nt)
	}
}

func decodeCase(data []byte, path string) (*Case, error) {
	nt, err := nodeType(data, path)
	if err != nil {
		return nil, err
	}
	if nt != "Case" {
		return nil, fmt.Errorf("%s: expected Case, got %s", path, nt)
	}
	var raw struct {
		Value json.RawMessage `json:"value"`
		Body  json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if raw.Body == nil {
		return nil, fmt.Errorf("%s: case without body", path)
	}
	c := &Case{}
	if raw.Value != nil && string(raw.Value) != "null" {
		v, err := decodeExpression(raw.Value, path+".value")
		if err != nil {
			return nil, err
		}
		lit, ok := v.(*Literal)
		if !ok {
			return nil, fmt.Errorf("%s.value: case label must be a literal", path)
		}
		c.Value = lit
	}
	body, err := decodeBlock(raw.Body, path+".body")
	if err != nil {
		return nil, err
	}
	c.Body = body
	return c, nil
}

func decodeExpression(data []byte, path string) (Expression, error) {
	nt, err := nodeType(data, path)
	if err != nil {
		return nil, err
	}
	switch nt {
	case "Literal":
		var raw struct {
			Kind  string `json:"kind"`
			Value string `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		var kind LiteralKind
		switch raw.Kind {
		case "number":
			kind = NumberLiteral
		case "bool":
			kind = BooleanLiteral
		case "string":
			kind = StringLiteral
		default:
			return nil, fmt.Errorf("%s: unknown literal kind %q", path, raw.Kind)
		}
		return &Literal{Kind: kind, Value: raw.Value}, nil
	case "Identifier":
		var raw struct {
			Name Name `json:"name"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if raw.Name == "" {
			return nil, fmt.Errorf("%s: identifier without a name", path)
		}
		return &Identifier{Name: raw.Name}, nil
	case "FunctionCall":
		var raw struct {
			FunctionName Name              `json:"functionName"`
			Arguments    []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if raw.FunctionName == "" {
			return nil, fmt.Errorf("%s: call without a function name", path)
		}
		call := &FunctionCall{FunctionName: raw.FunctionName}
		for i, ad := range raw.Arguments {
			a, err := decodeExpression(ad, fmt.Sprintf("%s.arguments[%d]", path, i))
			if err != nil {
				return nil, err
			}
			call.Arguments = append(call.Arguments, a)
		}
		return call, nil
	default:
		return nil, fmt.Errorf("%s: unknown expression type %q", path, nt)
	}
}
