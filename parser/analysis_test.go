package parser

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/rdp/lexer"
)

func firstTokens(a *analysis[tok, rule], r rule) []tok {
	var result []tok
	ri := a.rules[r]
	for t, i := range a.tokens {
		if ri.first.Contains(i) {
			result = append(result, t)
		}
	}
	slices.Sort(result)
	return result
}

func TestReachableRules(t *testing.T) {
	a := analyze[tok, rule](rDoc)
	expected := []rule{rDoc, rItems, rEnd, rValue, rCall, rSum, rName, rNum, rGroup, rLParen, rRParen, rPlus}
	assert.Equal(t, expected, a.order)
	assert.NotContains(t, a.tokens, tComma)
}

func TestNullable(t *testing.T) {
	a := analyze[tok, rule](rDoc)
	assert.True(t, a.rules[rItems].nullable)
	assert.False(t, a.rules[rDoc].nullable)
	assert.False(t, a.rules[rValue].nullable)
	assert.False(t, a.rules[rGroup].nullable)

	a = analyze[tok, rule](rOpt)
	assert.True(t, a.rules[rMaybe].nullable)
	assert.False(t, a.rules[rMaybe].alts[0].nullable)
	assert.True(t, a.rules[rMaybe].alts[1].nullable)
	assert.False(t, a.rules[rOpt].nullable)
}

func TestFirstSets(t *testing.T) {
	a := analyze[tok, rule](rDoc)
	assert.Equal(t, []tok{tNum, tName, tLParen}, firstTokens(a, rValue))
	assert.Equal(t, []tok{tNum, tName, tLParen}, firstTokens(a, rItems))
	assert.Equal(t, []tok{tNum, tName, tLParen, tEnd}, firstTokens(a, rDoc))
	assert.Equal(t, []tok{tName}, firstTokens(a, rCall))

	a = analyze[tok, rule](rOpt)
	assert.Equal(t, []tok{tName, tComma}, firstTokens(a, rOpt))
}

func TestLeadDepth(t *testing.T) {
	a := analyze[tok, rule](rDoc)
	assert.Equal(t, 0, a.rules[rNum].lead)
	assert.Equal(t, 1, a.rules[rCall].lead)
	assert.Equal(t, 2, a.rules[rValue].lead)
	assert.Equal(t, 3, a.rules[rItems].lead)
	assert.Equal(t, 4, a.rules[rDoc].lead)

	a = analyze[tok, rule](rLeft)
	assert.Equal(t, unbounded, a.rules[rLeft].lead)
	assert.Equal(t, unbounded, a.rules[rLeft].alts[0].lead)
	assert.Equal(t, 1, a.rules[rLeft].alts[1].lead)

	a = analyze[tok, rule](rLoop)
	assert.Equal(t, unbounded, a.rules[rLoop].lead)

	a = analyze[tok, rule](rNest)
	assert.Equal(t, 1, a.rules[rNest].lead)
}

func TestCanSkip(t *testing.T) {
	a := analyze[tok, rule](rDoc)
	next := func(t tok) *lexer.ParsedToken[tok] {
		return &lexer.ParsedToken[tok]{Token: t}
	}

	assert.False(t, a.canSkip(rValue, 3, next(tNum), 2, DefaultMaxDepth))
	assert.True(t, a.canSkip(rValue, 4, next(tLParen), 2, DefaultMaxDepth))
	assert.True(t, a.canSkip(rValue, 4, next(tEnd), 2, DefaultMaxDepth))
	assert.True(t, a.canSkip(rValue, 4, next(tComma), 2, DefaultMaxDepth))
	assert.False(t, a.canSkip(rValue, 4, nil, 2, DefaultMaxDepth))
	assert.False(t, a.canSkip(rValue, 4, next(tLParen), DefaultMaxDepth-2, DefaultMaxDepth))
	assert.True(t, a.canSkip(rValue, 4, next(tLParen), DefaultMaxDepth-3, DefaultMaxDepth))
	assert.False(t, a.canSkip(rValue, 6, next(tLParen), 2, DefaultMaxDepth))
	assert.False(t, a.canSkip(rMaybe, 1, nil, 2, DefaultMaxDepth))
	require.False(t, a.canSkip(rItems, 1, next(tComma), 1, DefaultMaxDepth))
	assert.True(t, a.canSkip(rDoc, 1, next(tComma), 0, DefaultMaxDepth))

	a = analyze[tok, rule](rLeft)
	assert.False(t, a.canSkip(rLeft, 1, next(tComma), 0, DefaultMaxDepth))
}
