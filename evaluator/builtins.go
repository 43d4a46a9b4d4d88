package evaluator

import (
	"fmt"

	"github.com/teatov/gorb/object"
	"github.com/teatov/gorb/token"
)

// builtins is the fixed table spec.md §4.5 specifies: len, first,
// last, rest, push, puts. Grounded on go-mix/objects/builtins.go's
// Builtins-slice-plus-CallbackFunc shape, narrowed to a name-keyed map
// since gorb has no user-registrable builtins.
var builtins = map[string]*object.Builtin{
	"len":   {Fn: builtinLen},
	"first": {Fn: builtinFirst},
	"last":  {Fn: builtinLast},
	"rest":  {Fn: builtinRest},
	"push":  {Fn: builtinPush},
	"puts":  {Fn: builtinPuts},
}

// arityMessage matches spec.md §4.5's pluralization rule: no trailing
// "s" when exactly one argument is expected.
func arityMessage(expected, got int) string {
	noun := "arguments"
	if expected == 1 {
		noun = "argument"
	}
	return fmt.Sprintf("expected %d %s, got %d", expected, noun, got)
}

func builtinLen(tok token.Token, env object.Environment, args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError(tok, arityMessage(1, len(args)))
	}

	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int32(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int32(len(arg.Elements))}
	default:
		return newError(tok, "'len' does not support "+object.Stringify(args[0]))
	}
}

func builtinFirst(tok token.Token, env object.Environment, args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError(tok, arityMessage(1, len(args)))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError(tok, "'first' does not support "+object.Stringify(args[0]))
	}
	if len(arr.Elements) > 0 {
		return arr.Elements[0]
	}
	return NULL
}

func builtinLast(tok token.Token, env object.Environment, args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError(tok, arityMessage(1, len(args)))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError(tok, "'last' does not support "+object.Stringify(args[0]))
	}
	length := len(arr.Elements)
	if length > 0 {
		return arr.Elements[length-1]
	}
	return NULL
}

func builtinRest(tok token.Token, env object.Environment, args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError(tok, arityMessage(1, len(args)))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError(tok, "'rest' does not support "+object.Stringify(args[0]))
	}
	length := len(arr.Elements)
	if length > 0 {
		newElements := make([]object.Object, length-1)
		copy(newElements, arr.Elements[1:length])
		return &object.Array{Elements: newElements}
	}
	return NULL
}

func builtinPush(tok token.Token, env object.Environment, args ...object.Object) object.Object {
	if len(args) != 2 {
		return newError(tok, arityMessage(2, len(args)))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError(tok, "'push' does not support "+object.Stringify(args[0]))
	}

	length := len(arr.Elements)
	newElements := make([]object.Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &object.Array{Elements: newElements}
}

// builtinPuts prints each argument's inspection text with no
// separator between them (spec.md §4.5), followed by a single
// trailing newline, to the calling environment's own output sink —
// never a shared global — so concurrent sessions never cross-talk.
func builtinPuts(tok token.Token, env object.Environment, args ...object.Object) object.Object {
	w := env.Output()
	for _, arg := range args {
		fmt.Fprint(w, arg.Inspect())
	}
	fmt.Fprintln(w)
	return NULL
}
