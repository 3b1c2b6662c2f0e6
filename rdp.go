/*
Package rdp is a small generic grammar engine: a backtracking tokenizer driven by
a declared lexical transition graph and a backtracking recursive-descent parser
driven by a declared grammar of ordered alternatives.

Consists of subpackages:
  - lexer: Token capability (pattern, successor categories, terminator flag) and lexer
    turning source text into a token stream;
  - parser: Rule capability, the four rule types (Match, Sub, Repeat, Sequence),
    syntax tree nodes and the parser itself;
  - interp: Interpreter capability reducing a syntax tree to a semantic value;
  - tree: read-only traversal and formatting helpers for syntax trees;
  - langdef: grammars declared in YAML instead of Go enums;
  - cmd/rdp: console utility running a YAML grammar against input files.

Typical usage is:

1. Declare lexical categories as a Go type implementing lexer.Token
(usually an int enum with a switch per method) and grammar productions
as a type implementing parser.Rule.

2. Create a lexer for the root category and a parser for the grammar.

3. Lex the source, parse the token stream starting at the root rule,
then walk the resulting tree with an Interpreter.
*/
package rdp

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LangDefErrors = 1   // used by langdef
	LexicalErrors = 101 // used by lexer
	SyntaxErrors  = 201 // used by parser
)

// Error is the error type used by rdp subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message.
	Message string
}

// NewError creates new Error structure.
func NewError(code int, msg string) *Error {
	return &Error{code, msg}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure,
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg)
}
