// Package parser implements gorb's Pratt (operator-precedence) parser.
//
// Grounded on go-mix/parser/parser.go + parser_precedence.go: a
// two-token lookahead (curToken/peekToken), unaryFuncs/binaryFuncs
// dispatch tables (kept under the teacher's own naming — go-mix
// already calls prefix-position parse functions "unary" and
// infix-position ones "binary", which matches spec.md's own Unary/
// Binary node names), and an accumulating Errors slice rather than a
// panic on first bad token. gorb's precedence ladder is spec.md §4.2's
// 8-level table, pruned from the teacher's much larger C-like grammar
// (no bitwise/shift/assignment/member-access levels — Non-goals
// exclude mutation and structs).
package parser

import (
	"github.com/teatov/gorb/ast"
	"github.com/teatov/gorb/diagnostic"
	"github.com/teatov/gorb/lexer"
	"github.com/teatov/gorb/token"
)

// Precedence levels, lowest to highest, per spec.md §4.2.
const (
	_ int = iota
	LOWEST
	EQUALITY    // == !=
	COMPARISON  // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -X !X
	CALL        // fn(X)
	INDEX       // arr[X]
)

var precedences = map[token.Type]int{
	token.EQ:       EQUALITY,
	token.NOT_EQ:   EQUALITY,
	token.LT:       COMPARISON,
	token.GT:       COMPARISON,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

type unaryParseFn func() ast.Expression
type binaryParseFn func(ast.Expression) ast.Expression

// Parser consumes a lexer's token stream and builds an AST, collecting
// diagnostics instead of aborting on the first one.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string

	unaryFuncs  map[token.Type]unaryParseFn
	binaryFuncs map[token.Type]binaryParseFn
}

// New creates a Parser reading from l and primes the two-token
// lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.unaryFuncs = make(map[token.Type]unaryParseFn)
	p.registerUnary(token.IDENT, p.parseIdentifier)
	p.registerUnary(token.INT, p.parseIntegerLiteral)
	p.registerUnary(token.STRING, p.parseStringLiteral)
	p.registerUnary(token.TRUE, p.parseBoolean)
	p.registerUnary(token.FALSE, p.parseBoolean)
	p.registerUnary(token.BANG, p.parseUnaryExpression)
	p.registerUnary(token.MINUS, p.parseUnaryExpression)
	p.registerUnary(token.LPAREN, p.parseGroupedExpression)
	p.registerUnary(token.IF, p.parseIfExpression)
	p.registerUnary(token.FUNCTION, p.parseFunctionLiteral)
	p.registerUnary(token.LBRACKET, p.parseArrayLiteral)
	p.registerUnary(token.LBRACE, p.parseHashLiteral)

	p.binaryFuncs = make(map[token.Type]binaryParseFn)
	for _, t := range []token.Type{token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
		token.EQ, token.NOT_EQ, token.LT, token.GT} {
		p.registerBinary(t, p.parseBinaryExpression)
	}
	p.registerBinary(token.LPAREN, p.parseCallExpression)
	p.registerBinary(token.LBRACKET, p.parseIndexExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerUnary(t token.Type, fn unaryParseFn)   { p.unaryFuncs[t] = fn }
func (p *Parser) registerBinary(t token.Type, fn binaryParseFn) { p.binaryFuncs[t] = fn }

// Errors returns every diagnostic accumulated during parsing. A
// non-empty result means ParseProgram's root should not be evaluated
// (spec.md §4.2/§7).
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

// expectPeek advances so that peekToken becomes curToken if it matches
// t; otherwise it records a diagnostic and does not advance, leaving the
// unexpected token as peekToken.
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	msg := diagnostic.Format("expected "+string(t)+", got "+string(p.peekToken.Type), p.peekToken)
	p.errors = append(p.errors, msg)
}

func (p *Parser) noUnaryParseFnError(t token.Type) {
	msg := diagnostic.Format("no unary parse function for "+string(t)+" found", p.curToken)
	p.errors = append(p.errors, msg)
}

// ParseProgram parses the entire token stream into a root Block, the
// same node type used for nested blocks (spec.md §4.2).
func (p *Parser) ParseProgram() *ast.Block {
	program := &ast.Block{Token: p.curToken, Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.DECLARE:
		return p.parseDeclaration()
	case token.RETURN:
		return p.parseReturn()
	default:
		return p.parseExpressionStatement()
	}
}

// parseDeclaration parses `so NAME = EXPR ;?`.
func (p *Parser) parseDeclaration() ast.Statement {
	decl := &ast.Declaration{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	decl.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return decl
}

// parseReturn parses `return EXPR ;?`.
func (p *Parser) parseReturn() ast.Statement {
	ret := &ast.Return{Token: p.curToken}
	p.nextToken()

	ret.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return ret
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseExpression is the Pratt loop: a unary parse produces the left
// operand, then binary parse functions consume operators of strictly
// greater precedence than the caller's, left-associatively.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	unary, ok := p.unaryFuncs[p.curToken.Type]
	if !ok {
		p.noUnaryParseFnError(p.curToken.Type)
		return nil
	}
	left := unary()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		binary, ok := p.binaryFuncs[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = binary(left)
	}
	return left
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}
	var value int64
	for _, c := range p.curToken.Literal {
		value = value*10 + int64(c-'0')
	}
	lit.Value = int32(value)
	return lit
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	expr := &ast.Unary{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.Binary{Token: p.curToken, Operator: p.curToken.Literal, Left: left}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.If{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlock()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlock()
	}
	return expr
}

func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Token: p.curToken, Statements: []ast.Statement{}}
	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	lit.Body = p.parseBlock()
	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return identifiers
	}

	p.nextToken()
	identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return identifiers
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.Call{Token: p.curToken, Function: function}
	expr.Arguments = p.parseExpressionList(token.RPAREN)
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.curToken}
	arr.Elements = p.parseExpressionList(token.RBRACKET)
	return arr
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.Index{Token: p.curToken, Left: left}
	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return expr
}

func (p *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{Token: p.curToken}

	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)

		hash.Pairs = append(hash.Pairs, ast.HashPair{Key: key, Value: value})

		if !p.peekTokenIs(token.RBRACE) && !p.expectPeek(token.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return hash
}
