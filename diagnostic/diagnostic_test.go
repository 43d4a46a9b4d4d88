package diagnostic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teatov/gorb/token"
)

func TestFormat(t *testing.T) {
	tok := token.Token{
		Type:     token.IDENT,
		Literal:  "foo",
		Line:     3,
		Column:   5,
		LineText: "so foo = 1",
		File:     "test.gorb",
	}

	out := Format("identifier 'foo' not found", tok)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "error: identifier 'foo' not found", lines[0])
	assert.Equal(t, "test.gorb:3:5", lines[1])
	assert.Equal(t, "so foo = 1", lines[2])
	assert.Equal(t, "    ^^^ here", lines[3])
}

func TestFormatStringTokenCaretWidth(t *testing.T) {
	tok := token.Token{
		Type:     token.STRING,
		Literal:  "hi",
		Line:     1,
		Column:   1,
		LineText: `"hi"`,
	}

	out := Format("oops", tok)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "^^^^ here", lines[3])
}

func TestFormatEmptyFileLabel(t *testing.T) {
	tok := token.Token{Line: 1, Column: 1, LineText: "x"}
	out := Format("m", tok)
	lines := strings.Split(out, "\n")
	assert.Equal(t, ":1:1", lines[1])
}
