package parser

import (
	"github.com/ava12/rdp/lexer"
)

// Node is a syntax tree node created by a successful application of Rule.
// A node created by a Match alternative holds the matched token and has no children,
// any other node holds no token. Children of Sub, Repeat and Sequence nodes are nodes
// of their sub-rules in declaration (and repetition) order.
//
// Tree is never modified after the parse call that built it returns.
type Node[T, R any] struct {
	Rule     R
	Token    *lexer.ParsedToken[T]
	Children []*Node[T, R]
}

// IsToken returns true for nodes created by a Match alternative.
func (n *Node[T, R]) IsToken() bool {
	return n.Token != nil
}

// Result is returned by successful Parser.Parse call.
type Result[T, R any] struct {
	// Node is the root of the syntax tree.
	Node *Node[T, R]

	// Remaining contains tokens not consumed by the root rule, a suffix of parsed token slice.
	// It is empty if the grammar requires the terminator at the end of the root rule.
	Remaining []lexer.ParsedToken[T]
}
