// Package interp defines the interface of semantic reducers over syntax trees.
package interp

import (
	"github.com/ava12/rdp/parser"
)

// Interpreter reduces syntax tree nodes of one grammar to semantic values of type V.
// OnNode usually switches on n.Rule and recurses into n.Children as needed.
// A false second result means that the node has no value, it is not an error.
type Interpreter[T, R, V any] interface {
	OnNode(n *parser.Node[T, R]) (V, bool)
}

// Func adapts an ordinary function to Interpreter interface.
type Func[T, R, V any] func(n *parser.Node[T, R]) (V, bool)

func (f Func[T, R, V]) OnNode(n *parser.Node[T, R]) (V, bool) {
	return f(n)
}

// Interpret calls i.OnNode for the root node of parse result.
// Returns zero value and false if res or its root node is nil.
func Interpret[T, R, V any](i Interpreter[T, R, V], res *parser.Result[T, R]) (V, bool) {
	if res == nil || res.Node == nil {
		var zero V
		return zero, false
	}

	return i.OnNode(res.Node)
}

// Values calls i.OnNode for each node and returns the values produced, in node order.
// Nodes without value are skipped.
func Values[T, R, V any](i Interpreter[T, R, V], nodes []*parser.Node[T, R]) []V {
	result := make([]V, 0, len(nodes))
	for _, n := range nodes {
		if v, ok := i.OnNode(n); ok {
			result = append(result, v)
		}
	}
	return result
}
