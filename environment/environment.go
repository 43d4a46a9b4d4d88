// Package environment implements gorb's lexically scoped binding
// chain, grounded on go-mix/scope/scope.go's Scope{Variables, Parent}
// shape. Pruned to spec.md §3's single-binding model: there is no
// assignment/update operator in gorb, only fresh binding via `so`, so
// unlike the teacher's Scope this carries no Consts/LetVars/LetTypes
// bookkeeping.
package environment

import (
	"io"
	"os"

	"github.com/teatov/gorb/object"
)

// Environment is a chained mapping from names to values. Lookup walks
// outer on miss; insertion always targets the local map only. Each
// environment also carries the output sink `puts` writes to — set once
// per session (REPL session, file run, or server connection) and
// inherited by every environment enclosed from it, so concurrent
// sessions (e.g. the socket-served REPL's one-goroutine-per-connection
// model) never share a writer.
type Environment struct {
	store  map[string]object.Object
	outer  *Environment
	output io.Writer
}

// New creates a fresh top-level environment with no parent, writing to
// os.Stdout by default.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object), output: os.Stdout}
}

// NewWithOutput creates a fresh top-level environment that writes to
// w, used by each session's own entry point (a REPL instance, a file
// run, a server connection) to give `puts` its own channel.
func NewWithOutput(w io.Writer) *Environment {
	env := New()
	env.output = w
	return env
}

// NewEnclosed creates an environment nested inside outer, as used for
// each function call (spec.md §3: "Function-call environments are
// freshly enclosed over the closure's captured environment"). It
// inherits outer's output sink, so a closure always writes to the
// session it was ultimately called from.
func NewEnclosed(outer *Environment) *Environment {
	env := New()
	env.outer = outer
	env.output = outer.output
	return env
}

// Get resolves name, walking outer scopes on a local miss.
func (e *Environment) Get(name string) (object.Object, bool) {
	val, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return val, ok
}

// Set binds name to val in this environment only. gorb has no
// reassignment operator, so every Set call is a declaration of a fresh
// name in the current scope — it may shadow an outer binding, but it
// never mutates one.
func (e *Environment) Set(name string, val object.Object) {
	e.store[name] = val
}

// Output returns the writer `puts` should write to for this session.
func (e *Environment) Output() io.Writer {
	return e.output
}
