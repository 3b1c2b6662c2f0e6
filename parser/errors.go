package parser

import (
	"github.com/ava12/rdp"
)

// Error codes used by parser:
const (
	// TokensExhaustedError indicates that a token was required but the token stream has ended.
	TokensExhaustedError = rdp.SyntaxErrors + iota

	// NoAlternativeError indicates that no alternative of the rule matched.
	NoAlternativeError

	// TooComplexError indicates that rule nesting has reached maximum depth.
	TooComplexError
)

func tokensExhaustedError(root any) *rdp.Error {
	return rdp.FormatError(TokensExhaustedError, "cannot parse %v: unexpected end of token stream", root)
}

func noAlternativeError(root any) *rdp.Error {
	return rdp.FormatError(NoAlternativeError, "cannot parse %v: no alternative matched", root)
}

func tooComplexError(root any, depth int) *rdp.Error {
	return rdp.FormatError(TooComplexError, "cannot parse %v: maximum rule depth (%d) reached", root, depth)
}

type failure int

const (
	success failure = iota
	tokensExhausted
	noAlternative
	tooComplex
)

func (f failure) toError(root any, maxDepth int) error {
	switch f {
	case tokensExhausted:
		return tokensExhaustedError(root)
	case noAlternative:
		return noAlternativeError(root)
	case tooComplex:
		return tooComplexError(root, maxDepth)
	default:
		return nil
	}
}
