package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatov/gorb/ast"
	"github.com/teatov/gorb/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Block {
	t.Helper()
	p := New(lexer.New(input, ""))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())
	return program
}

func TestDeclarationStatements(t *testing.T) {
	tests := []struct {
		input              string
		expectedIdentifier string
	}{
		{"so x = 5;", "x"},
		{"so y = true;", "y"},
		{"so foobar = y;", "foobar"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)

		decl, ok := program.Statements[0].(*ast.Declaration)
		require.True(t, ok)
		assert.Equal(t, "so", decl.TokenLiteral())
		assert.Equal(t, tt.expectedIdentifier, decl.Name.Value)
	}
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, "return 5; return true; return foobar;")
	require.Len(t, program.Statements, 3)

	for _, stmt := range program.Statements {
		ret, ok := stmt.(*ast.Return)
		require.True(t, ok)
		assert.Equal(t, "return", ret.TokenLiteral())
	}
}

func TestOptionalTrailingSemicolon(t *testing.T) {
	withSemi := parseProgram(t, "so x = 5;")
	withoutSemi := parseProgram(t, "so x = 5")
	assert.Equal(t, withSemi.String(), withoutSemi.String())
}

func TestPrecedenceScenarios(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("scenario%d", i+1), func(t *testing.T) {
			program := parseProgram(t, tt.input)
			assert.Equal(t, tt.expected, program.String())
		})
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	expr, ok := stmt.Expression.(*ast.If)
	require.True(t, ok)
	assert.Nil(t, expr.Alternative)
	assert.Equal(t, "(x < y)", expr.Condition.String())
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr := stmt.Expression.(*ast.If)
	require.NotNil(t, expr.Alternative)
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "fn(x, y) { x + y; }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "y", fn.Parameters[1].Value)
	require.Len(t, fn.Body.Statements, 1)
}

func TestFunctionLiteralNoParams(t *testing.T) {
	program := parseProgram(t, "fn() { 1; }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn := stmt.Expression.(*ast.FunctionLiteral)
	assert.Empty(t, fn.Parameters)
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "add", call.Function.String())
	require.Len(t, call.Arguments, 3)
}

func TestArrayLiteralParsing(t *testing.T) {
	program := parseProgram(t, "[1, 2 * 2, 3 + 3]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	arr, ok := stmt.Expression.(*ast.ArrayLiteral)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
}

func TestEmptyArrayLiteral(t *testing.T) {
	program := parseProgram(t, "[]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	arr := stmt.Expression.(*ast.ArrayLiteral)
	assert.Empty(t, arr.Elements)
}

func TestIndexExpressionParsing(t *testing.T) {
	program := parseProgram(t, "myArray[1 + 1]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	idx, ok := stmt.Expression.(*ast.Index)
	require.True(t, ok)
	assert.Equal(t, "myArray", idx.Left.String())
	assert.Equal(t, "(1 + 1)", idx.Index.String())
}

func TestHashLiteralStringKeys(t *testing.T) {
	program := parseProgram(t, `{"one": 1, "two": 2, "three": 3}`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash, ok := stmt.Expression.(*ast.HashLiteral)
	require.True(t, ok)
	require.Len(t, hash.Pairs, 3)
}

func TestEmptyHashLiteral(t *testing.T) {
	program := parseProgram(t, "{}")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash := stmt.Expression.(*ast.HashLiteral)
	assert.Empty(t, hash.Pairs)
}

func TestParserErrorOnMissingToken(t *testing.T) {
	p := New(lexer.New("so x 5;", ""))
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], "expected =")
}

func TestParserErrorOnNoUnaryParseFunction(t *testing.T) {
	p := New(lexer.New(")", ""))
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], "no unary parse function")
}

// TestRoundTripStability exercises spec.md §8's universal invariant:
// parse(print(parse(P))) reproduces the same printed form as parse(P).
func TestRoundTripStability(t *testing.T) {
	inputs := []string{
		"-a * b",
		"a + b * c + d / e - f",
		"if (x < y) { x } else { y }",
		"fn(x, y) { x + y; }",
		"add(a, b, 1, 2 * 3)",
		`{"one": 1, "two": 2}`,
		"so x = [1, 2, 3][1];",
	}

	for _, input := range inputs {
		first := parseProgram(t, input)
		printed := first.String()
		second := parseProgram(t, printed)
		assert.Equal(t, printed, second.String(), "round trip mismatch for %q", input)
	}
}
