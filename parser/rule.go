package parser

import (
	"fmt"
	"strings"
)

// Rule describes one grammar production. R is the implementing type itself,
// usually an int enum, and T is the lexical category type of the grammar.
type Rule[T, R any] interface {
	comparable

	// Children returns alternatives of the production, in order of preference.
	// The first alternative matching at the current position wins.
	Children() []RuleType[T, R]
}

// Kind tells which composition primitive a RuleType is.
type Kind int

const (
	// TokenKind matches exactly one token of given category.
	TokenKind Kind = iota

	// RuleKind matches exactly one application of a sub-rule.
	RuleKind

	// RepeatKind matches zero or more consecutive applications of a sub-rule.
	RepeatKind

	// SequenceKind matches sub-rules one after another, all or nothing.
	SequenceKind
)

var kindNames = [...]string{"Match", "Sub", "Repeat", "Sequence"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// RuleType is one alternative of a Rule, built with Match, Sub, Repeat or Sequence.
type RuleType[T, R any] struct {
	kind  Kind
	token T
	rules []R
}

// Match creates an alternative matching one token of category t, literal text is ignored.
func Match[T, R any](t T) RuleType[T, R] {
	return RuleType[T, R]{kind: TokenKind, token: t}
}

// Sub creates an alternative matching one application of rule r.
func Sub[T, R any](r R) RuleType[T, R] {
	return RuleType[T, R]{kind: RuleKind, rules: []R{r}}
}

// Repeat creates an alternative greedily matching rule r zero or more times.
// It never fails and never gives back an application once matched.
func Repeat[T, R any](r R) RuleType[T, R] {
	return RuleType[T, R]{kind: RepeatKind, rules: []R{r}}
}

// Sequence creates an alternative matching all rules consecutively in given order.
func Sequence[T, R any](rules ...R) RuleType[T, R] {
	return RuleType[T, R]{kind: SequenceKind, rules: rules}
}

func (rt RuleType[T, R]) Kind() Kind {
	return rt.kind
}

// Token returns token category of TokenKind alternative, zero value for other kinds.
func (rt RuleType[T, R]) Token() T {
	return rt.token
}

// Rules returns sub-rules of the alternative, nil for TokenKind.
// Result must not be modified.
func (rt RuleType[T, R]) Rules() []R {
	return rt.rules
}

func (rt RuleType[T, R]) String() string {
	if rt.kind == TokenKind {
		return fmt.Sprintf("Match(%v)", rt.token)
	}

	names := make([]string, len(rt.rules))
	for i, r := range rt.rules {
		names[i] = fmt.Sprint(r)
	}
	return rt.kind.String() + "(" + strings.Join(names, ", ") + ")"
}
