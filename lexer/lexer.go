// Package lexer defines lexical analyzer driven by a graph of token categories.
package lexer

import (
	"regexp"

	"github.com/ava12/rdp"
	"github.com/ava12/rdp/internal/queue"
)

// Error codes used by lexer:
const (
	// NoMatchError indicates that no path through the token graph consumes the entire input.
	NoMatchError = rdp.LexicalErrors + iota

	// BadPatternError indicates that a token pattern is not a valid regexp.
	BadPatternError
)

func noMatchError() *rdp.Error {
	return rdp.FormatError(NoMatchError, "no token sequence matches the entire input")
}

func badPatternError(t any, e error) *rdp.Error {
	return rdp.FormatError(BadPatternError, "bad pattern for token %v: %s", t, e)
}

type category[T any] struct {
	re         *regexp.Regexp
	named      int
	hasGroup   bool
	next       []T
	terminator bool
}

// Lexer splits source text into tokens following the token graph.
// Lexer itself is immutable, stateless, and safe for concurrent use.
//
// Starting at the root category, lexer tries categories listed by Next() in order,
// a matched lexeme is accepted only if the rest of the source can be tokenized as well,
// otherwise lexer backtracks and tries the next candidate.
// Only the terminator category may match an empty string, and only at the end of input.
// Empty matches of other categories are discarded, so a category never leads to its Next()
// categories at a position where its pattern matches nothing. E.g. for a sign pattern `-?`
// followed by a number category, "-5" is tokenized while "5" is not unless the number
// is also reachable without the sign.
type Lexer[T Token[T]] struct {
	root       T
	categories map[T]*category[T]
}

// New creates new Lexer for the token graph reachable from root.
// Patterns of all reachable categories are compiled here,
// BadPatternError is returned if any of them is invalid.
func New[T Token[T]](root T) (*Lexer[T], error) {
	l := &Lexer[T]{root: root, categories: make(map[T]*category[T])}
	q := queue.NewUnique(root)
	for !q.IsEmpty() {
		t, _ := q.First()
		re, e := regexp.Compile("^(?:" + t.Pattern() + ")")
		if e != nil {
			return nil, badPatternError(t, e)
		}

		c := &category[T]{
			re:         re,
			named:      re.SubexpIndex(LiteralGroup),
			hasGroup:   re.NumSubexp() > 0,
			next:       t.Next(),
			terminator: t.IsTerminator(),
		}
		l.categories[t] = c
		for _, n := range c.next {
			q.Append(n)
		}
	}

	return l, nil
}

// Root returns the root category.
func (l *Lexer[T]) Root() T {
	return l.root
}

func (c *category[T]) literal(loc []int) (start, end int) {
	if c.named > 0 && loc[c.named<<1] >= 0 {
		return loc[c.named<<1], loc[c.named<<1+1]
	}

	if c.hasGroup && loc[2] >= 0 {
		return loc[2], loc[3]
	}

	return loc[0], loc[1]
}

type lexState[T comparable] struct {
	token  T
	offset int
}

type frame[T any] struct {
	token            T
	cat              *category[T]
	start, end       int
	litStart, litEnd int
	candidate        int
}

// Parse splits src into tokens. The result ends with a token of terminator category
// and does not contain the root token. Every byte of src belongs to some token:
// a token spans from its Offset to the Offset of the next one.
//
// Returns nil and NoMatchError if there is no way to tokenize the entire source.
func (l *Lexer[T]) Parse(src string) ([]ParsedToken[T], error) {
	stack := []frame[T]{{token: l.root, cat: l.categories[l.root]}}
	failed := make(map[lexState[T]]bool)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.cat.terminator && top.end == len(src) {
			return collect(src, stack[1:]), nil
		}

		if top.cat.terminator || top.candidate >= len(top.cat.next) {
			failed[lexState[T]{top.token, top.end}] = true
			stack = stack[:len(stack)-1]
			continue
		}

		t := top.cat.next[top.candidate]
		top.candidate++
		c := l.categories[t]
		loc := c.re.FindStringSubmatchIndex(src[top.end:])
		if loc == nil || (loc[1] == 0 && !c.terminator) {
			continue
		}

		end := top.end + loc[1]
		if failed[lexState[T]{t, end}] {
			continue
		}

		ls, le := c.literal(loc)
		stack = append(stack, frame[T]{
			token:    t,
			cat:      c,
			start:    top.end,
			end:      end,
			litStart: top.end + ls,
			litEnd:   top.end + le,
		})
	}

	return nil, noMatchError()
}

func collect[T any](src string, frames []frame[T]) []ParsedToken[T] {
	result := make([]ParsedToken[T], len(frames))
	for i, f := range frames {
		result[i] = ParsedToken[T]{f.token, src[f.litStart:f.litEnd], f.start}
	}
	return result
}
