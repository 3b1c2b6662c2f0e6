package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ava12/rdp/internal/test"
	"github.com/ava12/rdp/lexer"
)

type testToken struct {
	name, pattern string
	next          []*testToken
	terminator    bool
}

func (t *testToken) Pattern() string {
	return t.pattern
}

func (t *testToken) Next() []*testToken {
	return t.next
}

func (t *testToken) IsTerminator() bool {
	return t.terminator
}

func (t *testToken) String() string {
	return t.name
}

func token(name, pattern string) *testToken {
	return &testToken{name: name, pattern: pattern}
}

func (t *testToken) to(next ...*testToken) *testToken {
	t.next = append(t.next, next...)
	return t
}

func end(pattern string) *testToken {
	return &testToken{name: "end", pattern: pattern, terminator: true}
}

func dump(tokens []lexer.ParsedToken[*testToken]) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = fmt.Sprintf("%s:%q@%d", t.Token, t.Literal, t.Offset)
	}
	return strings.Join(parts, " ")
}

func newLexer(t *testing.T, root *testToken) *lexer.Lexer[*testToken] {
	l, e := lexer.New(root)
	require.NoError(t, e)
	return l
}

// words and numbers separated by spaces, optionally ending with a dot
func wordsGraph() *testToken {
	root := token("root", "")
	word := token("word", `[a-z]+`)
	num := token("num", `\d+`)
	space := token("space", `\s+`)
	dot := token("dot", `\.`)
	eoi := end(`$`)

	root.to(word, num, space, eoi)
	word.to(space, dot, eoi)
	num.to(space, dot, eoi)
	space.to(word, num, eoi)
	dot.to(eoi)
	return root
}

type sample struct {
	src, expected string
}

func testSamples(t *testing.T, root *testToken, samples []sample) {
	l := newLexer(t, root)
	for i, s := range samples {
		tokens, e := l.Parse(s.src)
		if !assert.NoError(t, e, "sample #%d (%q)", i, s.src) {
			continue
		}

		assert.Equal(t, s.expected, dump(tokens), "sample #%d (%q)", i, s.src)
	}
}

func TestSimple(t *testing.T) {
	samples := []sample{
		{"", `end:""@0`},
		{"foo", `word:"foo"@0 end:""@3`},
		{"foo 12 bar.", `word:"foo"@0 space:" "@3 num:"12"@4 space:" "@6 word:"bar"@7 dot:"."@10 end:""@11`},
		{" 1 ", `space:" "@0 num:"1"@1 space:" "@2 end:""@3`},
	}
	testSamples(t, wordsGraph(), samples)
}

func TestNoMatch(t *testing.T) {
	l := newLexer(t, wordsGraph())
	samples := []string{"foo12", "foo..", ". foo", "foo-bar", "Foo"}
	for _, src := range samples {
		tokens, e := l.Parse(src)
		assert.Nil(t, tokens, "source %q", src)
		test.ExpectErrorCode(t, lexer.NoMatchError, e)
	}
}

func TestBacktracking(t *testing.T) {
	root := token("root", "")
	ab := token("ab", "ab")
	a := token("a", "a")
	bc := token("bc", "bc")
	eoi := end("$")
	root.to(ab, a)
	ab.to(eoi)
	a.to(bc)
	bc.to(eoi)

	samples := []sample{
		{"ab", `ab:"ab"@0 end:""@2`},
		{"abc", `a:"a"@0 bc:"bc"@1 end:""@3`},
	}
	testSamples(t, root, samples)
}

func TestDeclaredOrderWins(t *testing.T) {
	root := token("root", "")
	first := token("first", `\w+`)
	second := token("second", `\w+`)
	eoi := end("$")
	root.to(first, second)
	first.to(eoi)
	second.to(eoi)

	testSamples(t, root, []sample{{"foo", `first:"foo"@0 end:""@3`}})
}

func TestLiterals(t *testing.T) {
	root := token("root", "")
	named := token("named", `\s*<(\w+)=(?P<token>\w+)>\s*`)
	group := token("group", `\s*\[(\w+)\]\s*`)
	whole := token("whole", `\s*\{\w*\}\s*`)
	optional := token("optional", `\((\w*?)(?P<token>\d+)?\)`)
	eoi := end(`\s*$`)
	root.to(named, group, whole, optional, eoi)
	named.to(named, group, whole, optional, eoi)
	group.to(named, group, whole, optional, eoi)
	whole.to(named, group, whole, optional, eoi)
	optional.to(named, group, whole, optional, eoi)

	samples := []sample{
		{" <a=b> ", `named:"b"@0 end:""@7`},
		{"[foo] {bar} ", `group:"foo"@0 whole:"{bar} "@6 end:""@12`},
		{"(12)(x)()", `optional:"12"@0 optional:"x"@4 optional:""@7 end:""@9`},
		{"  ", `end:"  "@0`},
	}
	testSamples(t, root, samples)
}

func TestTerminatorAtEndOnly(t *testing.T) {
	root := token("root", "")
	word := token("word", `[a-z]+`)
	semi := end(`;`)
	root.to(word, semi)
	word.to(semi)

	l := newLexer(t, root)
	tokens, e := l.Parse("foo;")
	require.NoError(t, e)
	assert.Equal(t, `word:"foo"@0 end:";"@3`, dump(tokens))

	_, e = l.Parse("foo;bar;")
	test.ExpectErrorCode(t, lexer.NoMatchError, e)
}

func TestZeroWidthTokensSkipped(t *testing.T) {
	root := token("root", "")
	space := token("space", `\s*`)
	word := token("word", `[a-z]+`)
	eoi := end("$")
	root.to(space, word, eoi)
	space.to(space, word, eoi)
	word.to(space, eoi)

	samples := []sample{
		{"foo", `word:"foo"@0 end:""@3`},
		{"foo bar", `word:"foo"@0 space:" "@3 word:"bar"@4 end:""@7`},
		{"", `end:""@0`},
	}
	testSamples(t, root, samples)

	_, e := newLexer(t, root).Parse("foo!")
	test.ExpectErrorCode(t, lexer.NoMatchError, e)
}

func TestOptionalTokenNeedsText(t *testing.T) {
	root := token("root", "")
	sign := token("sign", `-?`)
	num := token("num", `\d+`)
	eoi := end("$")
	root.to(sign)
	sign.to(num)
	num.to(eoi)

	l := newLexer(t, root)
	tokens, e := l.Parse("-5")
	require.NoError(t, e)
	assert.Equal(t, `sign:"-"@0 num:"5"@1 end:""@2`, dump(tokens))

	_, e = l.Parse("5")
	test.ExpectErrorCode(t, lexer.NoMatchError, e)

	root.to(num)
	testSamples(t, root, []sample{
		{"5", `num:"5"@0 end:""@1`},
		{"-5", `sign:"-"@0 num:"5"@1 end:""@2`},
	})
}

func TestDeepInput(t *testing.T) {
	l := newLexer(t, wordsGraph())
	src := strings.Repeat("ab ", 100000) + "end."
	tokens, e := l.Parse(src)
	require.NoError(t, e)
	require.Len(t, tokens, 200003)
	assert.Equal(t, "end", tokens[200000].Literal)
	assert.Equal(t, len(src), tokens[len(tokens)-1].Offset)
}

func TestExponentialBacktracking(t *testing.T) {
	root := token("root", "")
	a1 := token("a1", "a")
	a2 := token("a2", "a")
	b := token("b", "b")
	eoi := end("$")
	root.to(a1, a2)
	a1.to(a1, a2, b)
	a2.to(a1, a2, b)
	b.to(eoi)

	l := newLexer(t, root)
	_, e := l.Parse(strings.Repeat("a", 200) + "c")
	test.ExpectErrorCode(t, lexer.NoMatchError, e)

	tokens, e := l.Parse(strings.Repeat("a", 200) + "b")
	require.NoError(t, e)
	assert.Len(t, tokens, 202)
	for _, tok := range tokens[:200] {
		assert.Same(t, a1, tok.Token)
	}
}

func TestBadPattern(t *testing.T) {
	root := token("root", "")
	bad := token("bad", "(")
	root.to(bad, end("$"))
	l, e := lexer.New(root)
	assert.Nil(t, l)
	test.ExpectErrorCode(t, lexer.BadPatternError, e)
}

func TestTokenOrdering(t *testing.T) {
	l := newLexer(t, wordsGraph())
	sources := []string{"", "a", "a b c", "  12 foo\t\tbar 3.", "x 1 y 2 z 3"}
	for _, src := range sources {
		tokens, e := l.Parse(src)
		require.NoError(t, e, "source %q", src)
		require.NotEmpty(t, tokens)
		assert.Equal(t, 0, tokens[0].Offset, "source %q", src)
		for i := 1; i < len(tokens); i++ {
			assert.Less(t, tokens[i-1].Offset, tokens[i].Offset, "source %q, token #%d", src, i)
		}
		last := tokens[len(tokens)-1]
		assert.True(t, last.Token.IsTerminator())
		assert.Equal(t, len(src), last.Offset)
	}
}

var sameToken = cmp.Comparer(func(a, b *testToken) bool {
	return a == b
})

func TestDeterminism(t *testing.T) {
	l := newLexer(t, wordsGraph())
	src := "foo 12 bar baz 7."
	first, e := l.Parse(src)
	require.NoError(t, e)
	for i := 0; i < 5; i++ {
		next, e := l.Parse(src)
		require.NoError(t, e)
		if diff := cmp.Diff(first, next, sameToken); diff != "" {
			t.Fatalf("run #%d: token stream mismatch (-first +next):\n%s", i, diff)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	l := newLexer(t, wordsGraph())
	var g errgroup.Group
	results := make([]string, 16)
	for i := range results {
		g.Go(func() error {
			tokens, e := l.Parse(fmt.Sprintf("item %d.", i))
			if e == nil {
				results[i] = dump(tokens)
			}
			return e
		})
	}
	require.NoError(t, g.Wait())

	for i, r := range results {
		expected := fmt.Sprintf(`word:"item"@0 space:" "@4 num:"%d"@5 dot:"."@%d end:""@%d`, i, 5+len(fmt.Sprint(i)), 6+len(fmt.Sprint(i)))
		assert.Equal(t, expected, r)
	}
}
