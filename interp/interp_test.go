package interp_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ava12/rdp/interp"
	"github.com/ava12/rdp/lexer"
	"github.com/ava12/rdp/parser"
)

type node = parser.Node[string, string]

func leaf(rule, literal string) *node {
	return &node{Rule: rule, Token: &lexer.ParsedToken[string]{Token: rule, Literal: literal}}
}

func inner(rule string, children ...*node) *node {
	return &node{Rule: rule, Children: children}
}

// sum adds up numbers, empty lists have no value
var sum interp.Func[string, string, int]

func init() {
	sum = func(n *node) (int, bool) {
		if n.IsToken() {
			v, e := strconv.Atoi(n.Token.Literal)
			return v, e == nil
		}

		values := interp.Values[string, string, int](sum, n.Children)
		if len(values) == 0 {
			return 0, false
		}

		result := 0
		for _, v := range values {
			result += v
		}
		return result, true
	}
}

func TestInterpret(t *testing.T) {
	res := &parser.Result[string, string]{
		Node: inner("list", leaf("num", "1"), inner("list", leaf("num", "2"), leaf("sep", ";")), leaf("num", "3")),
	}
	v, ok := interp.Interpret[string, string, int](sum, res)
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	v, ok = interp.Interpret[string, string, int](sum, &parser.Result[string, string]{Node: inner("list")})
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestNilResult(t *testing.T) {
	v, ok := interp.Interpret[string, string, int](sum, nil)
	assert.False(t, ok)
	assert.Zero(t, v)

	v, ok = interp.Interpret[string, string, int](sum, &parser.Result[string, string]{})
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestValues(t *testing.T) {
	nodes := []*node{leaf("num", "1"), leaf("sep", ";"), inner("list"), leaf("num", "5")}
	assert.Equal(t, []int{1, 5}, interp.Values[string, string, int](sum, nodes))
	assert.Empty(t, interp.Values[string, string, int](sum, nil))
}
