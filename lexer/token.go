package lexer

// Token describes one lexical category. T is the implementing type itself,
// usually an int enum, so categories are compared with ==.
//
// A lexical grammar consists of a root category, never emitted, whose Next()
// lists the categories allowed at the start of input, and of a terminator
// category that has to match exactly at the end of input.
type Token[T any] interface {
	comparable

	// Pattern returns a regexp (RE2 syntax) matching a lexeme of this category.
	// Lexer anchors the pattern at the current position itself.
	// The token literal is the text captured by the group named "token"
	// if present, otherwise by the first capturing group, otherwise the whole match.
	Pattern() string

	// Next returns categories that may follow this one, in order of preference.
	Next() []T

	// IsTerminator reports whether this category marks the end of input.
	IsTerminator() bool
}

// ParsedToken is a lexeme fetched by Lexer.
// Literal is a substring of the source, it is never copied.
type ParsedToken[T any] struct {
	// Token contains lexical category.
	Token T

	// Literal contains token text, see Token.Pattern.
	Literal string

	// Offset contains the byte offset where the lexeme match starts.
	Offset int
}

// LiteralGroup is the name of the capturing group holding the token literal.
const LiteralGroup = "token"
