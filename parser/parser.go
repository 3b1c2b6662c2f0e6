// Package parser defines backtracking recursive descent parser driven by a grammar
// of ordered alternatives.
package parser

import (
	"github.com/ava12/rdp/lexer"
)

// DefaultMaxDepth is the default limit of rule nesting.
const DefaultMaxDepth = 100

type options struct {
	maxDepth int
	resume   bool
}

// Option configures Parser.
type Option func(*options)

// WithMaxDepth sets the limit of rule nesting, the root rule has depth 0.
// A rule entered at the limit depth fails with TooComplexError, see Parser.Parse.
// Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithResume enables or disables resuming alternative search
// from the alternative that matched last time at the same depth (enabled by default).
// Resuming never changes parse results, an alternative is skipped only
// when it is known to fail at the current position.
func WithResume(enabled bool) Option {
	return func(o *options) {
		o.resume = enabled
	}
}

// Parser builds syntax trees from token streams. Parser has no mutable state,
// each Parse call uses its own context, so a Parser is safe for concurrent use.
type Parser[T lexer.Token[T], R Rule[T, R]] struct {
	maxDepth int
	resume   bool
}

// New creates new Parser for token category type T and rule type R.
func New[T lexer.Token[T], R Rule[T, R]](opts ...Option) *Parser[T, R] {
	o := options{maxDepth: DefaultMaxDepth, resume: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser[T, R]{maxDepth: o.maxDepth, resume: o.resume}
}

// MaxDepth returns the limit of rule nesting.
func (p *Parser[T, R]) MaxDepth() int {
	return p.maxDepth
}

// Parse applies the root rule to tokens starting at the first one.
// Token nodes of the resulting tree point to elements of tokens slice.
//
// Parse does not require all tokens to be consumed, see Result.Remaining.
// Returned error is *rdp.Error with one of TokensExhaustedError, NoAlternativeError or
// TooComplexError codes, no partial tree is returned in this case.
//
// Failures pass unchanged through Sub and Sequence alternatives. A rule fails with
// TokensExhaustedError if any of its alternatives ran out of tokens, and with
// NoAlternativeError otherwise. Reaching the depth limit stops the search of alternatives
// at every level up to the nearest Repeat, which just ends the repetition like any
// other failure does; without an enclosing Repeat the parse fails with TooComplexError.
func (p *Parser[T, R]) Parse(tokens []lexer.ParsedToken[T], root R) (*Result[T, R], error) {
	pc := newParseContext(p, tokens, root)
	n, pos, f := pc.parseRule(root, 0, 0)
	if f != success {
		return nil, f.toError(root, p.maxDepth)
	}

	return &Result[T, R]{Node: n, Remaining: tokens[pos:]}, nil
}

type cursor[R any] struct {
	rule  R
	index int
	set   bool
}

type parseContext[T lexer.Token[T], R Rule[T, R]] struct {
	parser   *Parser[T, R]
	tokens   []lexer.ParsedToken[T]
	root     R
	cursors  []cursor[R]
	analysis *analysis[T, R]
	skipped  int
}

func newParseContext[T lexer.Token[T], R Rule[T, R]](p *Parser[T, R], tokens []lexer.ParsedToken[T], root R) *parseContext[T, R] {
	pc := &parseContext[T, R]{parser: p, tokens: tokens, root: root}
	if p.resume {
		pc.cursors = make([]cursor[R], p.maxDepth)
	}
	return pc
}

func (pc *parseContext[T, R]) nextToken(pos int) *lexer.ParsedToken[T] {
	if pos < len(pc.tokens) {
		return &pc.tokens[pos]
	}
	return nil
}

func (pc *parseContext[T, R]) firstAlternative(r R, pos, depth int) int {
	if !pc.parser.resume {
		return 0
	}

	c := pc.cursors[depth]
	if !c.set || c.index == 0 || c.rule != r {
		return 0
	}

	if pc.analysis == nil {
		pc.analysis = analyze[T, R](pc.root)
	}
	if !pc.analysis.canSkip(r, c.index, pc.nextToken(pos), depth, pc.parser.maxDepth) {
		return 0
	}

	pc.skipped += c.index
	return c.index
}

func (pc *parseContext[T, R]) parseRule(r R, pos, depth int) (*Node[T, R], int, failure) {
	if depth >= pc.parser.maxDepth {
		return nil, pos, tooComplex
	}

	result := noAlternative
	alts := r.Children()
	for i := pc.firstAlternative(r, pos, depth); i < len(alts); i++ {
		n, next, f := pc.parseType(r, alts[i], pos, depth)
		switch f {
		case success:
			if pc.cursors != nil {
				pc.cursors[depth] = cursor[R]{r, i, true}
			}
			return n, next, success

		case tooComplex:
			return nil, pos, f

		case tokensExhausted:
			result = f
		}
	}

	return nil, pos, result
}

func (pc *parseContext[T, R]) parseType(r R, rt RuleType[T, R], pos, depth int) (*Node[T, R], int, failure) {
	switch rt.kind {
	case TokenKind:
		t := pc.nextToken(pos)
		if t == nil {
			return nil, pos, tokensExhausted
		}
		if t.Token != rt.token {
			return nil, pos, noAlternative
		}
		return &Node[T, R]{Rule: r, Token: t}, pos + 1, success

	case RuleKind:
		child, next, f := pc.parseRule(rt.rules[0], pos, depth+1)
		if f != success {
			return nil, pos, f
		}
		return &Node[T, R]{Rule: r, Children: []*Node[T, R]{child}}, next, success

	case RepeatKind:
		children := make([]*Node[T, R], 0)
		for {
			child, next, f := pc.parseRule(rt.rules[0], pos, depth+1)
			if f != success || next == pos {
				break
			}

			children = append(children, child)
			pos = next
		}
		return &Node[T, R]{Rule: r, Children: children}, pos, success

	case SequenceKind:
		start := pos
		children := make([]*Node[T, R], len(rt.rules))
		for i, s := range rt.rules {
			child, next, f := pc.parseRule(s, pos, depth+1)
			if f != success {
				return nil, start, f
			}

			children[i] = child
			pos = next
		}
		return &Node[T, R]{Rule: r, Children: children}, pos, success

	default:
		return nil, pos, noAlternative
	}
}
