// Package diagnostic renders (message, token) pairs into the
// multi-line, position-pointing diagnostic format spec.md §4.7
// requires, shared by the parser and the evaluator. It is grounded on
// go-mix/eval/evaluator.go's CreateError (which prefixes "[line:col]"
// onto a message) generalized to also print the source line and a
// caret pointer, the way compiler diagnostics across the pack's other
// parser/lexer implementations report a location.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/teatov/gorb/token"
)

// Format renders message and the offending token as:
//
//	error: MESSAGE
//	FILE:LINE:COL
//	<source line>
//	<spaces><carets> here
//
// Caret width is max(1, len(literal)), plus 2 for string tokens to
// account for the surrounding quotes that do not appear in Literal
// (which holds the decoded content, not the raw source slice).
func Format(message string, tok token.Token) string {
	var out strings.Builder
	out.WriteString("error: ")
	out.WriteString(message)
	out.WriteByte('\n')
	out.WriteString(fmt.Sprintf("%s:%d:%d\n", tok.File, tok.Line, tok.Column))
	out.WriteString(tok.LineText)
	out.WriteByte('\n')

	width := len(tok.Literal)
	if tok.Type == token.STRING {
		width += 2
	}
	if width < 1 {
		width = 1
	}

	col := tok.Column
	if col < 1 {
		col = 1
	}
	out.WriteString(strings.Repeat(" ", col-1))
	out.WriteString(strings.Repeat("^", width))
	out.WriteString(" here")
	return out.String()
}
