// Package repl implements gorb's interactive Read-Eval-Print Loop.
//
// Grounded on go-mix/repl/repl.go's Repl{Banner, Prompt, ...} struct
// and its Start/executeWithRecovery split — readline for input,
// fatih/color for colored result/error output, a persistent
// environment across lines, and panic recovery so a host-level bug
// in one line doesn't kill the session. Per spec.md §6 the exit
// command is the bare line `exit` (not go-mix's `.exit`), and the
// environment is a *environment.Environment rather than go-mix's
// Scope.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/teatov/gorb/config"
	"github.com/teatov/gorb/environment"
	"github.com/teatov/gorb/evaluator"
	"github.com/teatov/gorb/lexer"
	"github.com/teatov/gorb/object"
	"github.com/teatov/gorb/parser"
)

// Repl is a configured interactive session.
type Repl struct {
	Prompt string
	Banner string
	Colors bool
}

// New builds a Repl from a loaded config.
func New(cfg config.Config) *Repl {
	return &Repl{Prompt: cfg.Prompt, Banner: cfg.Banner, Colors: cfg.Colors}
}

var (
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgYellow)
	bannerColor = color.New(color.FgGreen)
)

func (r *Repl) fprintErr(w io.Writer, format string, a ...any) {
	if r.Colors {
		errorColor.Fprintf(w, format, a...)
		return
	}
	fmt.Fprintf(w, format, a...)
}

func (r *Repl) fprintResult(w io.Writer, format string, a ...any) {
	if r.Colors {
		resultColor.Fprintf(w, format, a...)
		return
	}
	fmt.Fprintf(w, format, a...)
}

// Start runs the loop until the user types `exit` or sends EOF
// (spec.md §6). The environment persists across lines; reader is
// unused directly (readline owns stdin) but kept in the signature to
// mirror the teacher's Start(reader, writer) shape and to let a
// caller redirect readline's underlying terminal.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	if r.Banner != "" {
		bannerColor.Fprintf(writer, "%s\n", r.Banner)
	}

	rl, err := readline.New(r.Prompt)
	if err != nil {
		fmt.Fprintf(writer, "could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	env := environment.NewWithOutput(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "bye")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			fmt.Fprintln(writer, "bye")
			return
		}
		rl.SaveHistory(line)

		r.execute(writer, line, env)
	}
}

func (r *Repl) execute(writer io.Writer, line string, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.fprintErr(writer, "[internal error] %v\n", recovered)
		}
	}()

	l := lexer.New(line, "")
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, e := range p.Errors() {
			r.fprintErr(writer, "%s\n", e)
		}
		return
	}

	result := evaluator.Evaluate(program, env)
	if result == nil {
		return
	}
	if result.Type() == object.ERROR_OBJ {
		r.fprintErr(writer, "%s\n", result.Inspect())
		return
	}
	r.fprintResult(writer, "%s\n", result.Inspect())
}
