// Package ast defines the gorb abstract syntax tree.
//
// Every node carries the token.Token it was parsed from (spec.md §3),
// used both for diagnostics and for TokenLiteral(). Printing follows
// the conventions in spec.md §4.3 exactly; tests assert against those
// exact strings. The node taxonomy is grounded on
// go-mix/parser/node.go's statement/expression split, simplified from
// its full Visitor interface to plain String() methods — gorb has no
// second traversal algorithm that would justify the double dispatch.
package ast

import (
	"strings"

	"github.com/teatov/gorb/token"
)

// Node is any AST node: statement or expression.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a node usable directly inside a Block.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Block holds an ordered list of statements sharing one scope. It also
// serves as the parser's program root (spec.md §4.2: "the outer
// program is a block that ends at eof").
type Block struct {
	Token      token.Token // the '{' that opened the block, or the first token of the program
	Statements []Statement
}

func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) String() string {
	var out strings.Builder
	for _, s := range b.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}
func (b *Block) statementNode() {}

// Return is a `return EXPR;` statement.
type Return struct {
	Token token.Token // the "return" token
	Value Expression
}

func (r *Return) TokenLiteral() string { return r.Token.Literal }
func (r *Return) String() string {
	var out strings.Builder
	out.WriteString("return ")
	if r.Value != nil {
		out.WriteString(r.Value.String())
	}
	out.WriteString(";")
	return out.String()
}
func (r *Return) statementNode() {}

// Declaration is a `so NAME = EXPR;` binding statement.
type Declaration struct {
	Token token.Token // the "so" token
	Name  *Identifier
	Value Expression
}

func (d *Declaration) TokenLiteral() string { return d.Token.Literal }
func (d *Declaration) String() string {
	var out strings.Builder
	out.WriteString("so ")
	out.WriteString(d.Name.String())
	out.WriteString(" = ")
	if d.Value != nil {
		out.WriteString(d.Value.String())
	}
	out.WriteString(";")
	return out.String()
}
func (d *Declaration) statementNode() {}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Token      token.Token // the expression's first token
	Expression Expression
}

func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) String() string {
	if e.Expression != nil {
		return e.Expression.String()
	}
	return ""
}
func (e *ExpressionStatement) statementNode() {}

// If is an `if (COND) { CONSEQ } else { ALT }` expression; ALT is nil
// when there is no else clause.
type If struct {
	Token       token.Token // the "if" token
	Condition   Expression
	Consequence *Block
	Alternative *Block
}

func (i *If) TokenLiteral() string { return i.Token.Literal }
func (i *If) String() string {
	var out strings.Builder
	out.WriteString("if ")
	out.WriteString(i.Condition.String())
	out.WriteString(" ")
	out.WriteString(i.Consequence.String())
	if i.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(i.Alternative.String())
	}
	return out.String()
}
func (i *If) expressionNode() {}

// Index is a `LEFT[INDEX]` expression.
type Index struct {
	Token token.Token // the "[" token
	Left  Expression
	Index Expression
}

func (ix *Index) TokenLiteral() string { return ix.Token.Literal }
func (ix *Index) String() string {
	return "(" + ix.Left.String() + "[" + ix.Index.String() + "])"
}
func (ix *Index) expressionNode() {}

// Call is a `CALLEE(ARG, ARG, …)` function application.
type Call struct {
	Token     token.Token // the "(" token
	Function  Expression
	Arguments []Expression
}

func (c *Call) TokenLiteral() string { return c.Token.Literal }
func (c *Call) String() string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	return c.Function.String() + "(" + strings.Join(args, ", ") + ")"
}
func (c *Call) expressionNode() {}

// Unary is a prefix operator expression: `!X` or `-X`.
type Unary struct {
	Token    token.Token // the operator token
	Operator string
	Right    Expression
}

func (u *Unary) TokenLiteral() string { return u.Token.Literal }
func (u *Unary) String() string {
	return "(" + u.Operator + u.Right.String() + ")"
}
func (u *Unary) expressionNode() {}

// Binary is an infix operator expression: `LEFT op RIGHT`.
type Binary struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *Binary) TokenLiteral() string { return b.Token.Literal }
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}
func (b *Binary) expressionNode() {}

// Identifier is a bare name reference.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) expressionNode()      {}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) String() string       { return b.Token.Literal }
func (b *BooleanLiteral) expressionNode()      {}

// IntegerLiteral is a decimal integer literal, stored as a 32-bit
// signed integer per spec.md §3.
type IntegerLiteral struct {
	Token token.Token
	Value int32
}

func (i *IntegerLiteral) TokenLiteral() string { return i.Token.Literal }
func (i *IntegerLiteral) String() string       { return i.Token.Literal }
func (i *IntegerLiteral) expressionNode()      {}

// StringLiteral holds the already-decoded string content.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) String() string       { return s.Value }
func (s *StringLiteral) expressionNode()      {}

// ArrayLiteral is `[e1, e2, …]`.
type ArrayLiteral struct {
	Token    token.Token // the "[" token
	Elements []Expression
}

func (a *ArrayLiteral) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayLiteral) String() string {
	elems := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}
func (a *ArrayLiteral) expressionNode() {}

// HashPair is one key:value entry of a HashLiteral, kept in parse
// order per spec.md §3 ("insertion order preserved").
type HashPair struct {
	Key   Expression
	Value Expression
}

// HashLiteral is `{k1: v1, k2: v2, …}`.
type HashLiteral struct {
	Token token.Token // the "{" token
	Pairs []HashPair
}

func (h *HashLiteral) TokenLiteral() string { return h.Token.Literal }
func (h *HashLiteral) String() string {
	pairs := make([]string, len(h.Pairs))
	for i, p := range h.Pairs {
		pairs[i] = p.Key.String() + ":" + p.Value.String()
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
func (h *HashLiteral) expressionNode() {}

// FunctionLiteral is `fn(p1, p2, …){ body }`.
type FunctionLiteral struct {
	Token      token.Token // the "fn" token
	Parameters []*Identifier
	Body       *Block
}

func (f *FunctionLiteral) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionLiteral) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	return "fn(" + strings.Join(params, ", ") + "){" + f.Body.String() + "}"
}
func (f *FunctionLiteral) expressionNode() {}
