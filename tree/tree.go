// Package tree contains read-only helpers for syntax trees built by parser:
// traversal, node search and selection, and text dump.
package tree

import (
	"fmt"
	"strings"

	"github.com/ava12/rdp/lexer"
	"github.com/ava12/rdp/parser"
)

type Node[T, R any] = parser.Node[T, R]

// NthChild returns i-th child of n, negative i counts from the last child (-1 is the last one).
// Returns nil if there is no such child.
func NthChild[T, R any](n *Node[T, R], i int) *Node[T, R] {
	if n == nil {
		return nil
	}

	if i < 0 {
		i += len(n.Children)
	}
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

const AllLevels = -1

// NumOfChildren counts descendants of parent down to given number of levels,
// 0 means direct children only, AllLevels means all descendants.
func NumOfChildren[T, R any](parent *Node[T, R], levels int) int {
	if parent == nil {
		return 0
	}

	i := len(parent.Children)
	if levels != 0 {
		for _, c := range parent.Children {
			i += NumOfChildren(c, levels-1)
		}
	}
	return i
}

// FirstTokenNode returns the leftmost token node in the subtree or nil.
func FirstTokenNode[T, R any](n *Node[T, R]) *Node[T, R] {
	if n == nil || n.IsToken() {
		return n
	}

	for _, c := range n.Children {
		if tn := FirstTokenNode(c); tn != nil {
			return tn
		}
	}
	return nil
}

// LastTokenNode returns the rightmost token node in the subtree or nil.
func LastTokenNode[T, R any](n *Node[T, R]) *Node[T, R] {
	if n == nil || n.IsToken() {
		return n
	}

	for i := len(n.Children) - 1; i >= 0; i-- {
		if tn := LastTokenNode(n.Children[i]); tn != nil {
			return tn
		}
	}
	return nil
}

// Tokens returns tokens of the subtree in source order.
func Tokens[T, R any](n *Node[T, R]) []*lexer.ParsedToken[T] {
	res := make([]*lexer.ParsedToken[T], 0)
	Walk(n, WalkLtr, func(n *Node[T, R]) (bool, bool) {
		if n.IsToken() {
			res = append(res, n.Token)
		}
		return true, true
	})
	return res
}

type NodeVisitor[T, R any] func(n *Node[T, R]) (walkChildren, walkSiblings bool)

type WalkMode int

const (
	WalkLtr WalkMode = 0
	WalkRtl WalkMode = 1
)

// Walk visits n and its descendants depth first.
// Children of a node are skipped if visitor returns false walkChildren for it,
// following siblings of a node are skipped if visitor returns false walkSiblings.
func Walk[T, R any](n *Node[T, R], mode WalkMode, visitor NodeVisitor[T, R]) {
	if n != nil {
		visitNode(n, visitor, (mode&WalkRtl) != 0)
	}
}

func visitNode[T, R any](n *Node[T, R], v NodeVisitor[T, R], rtl bool) (visitSiblings bool) {
	vc, vs := v(n)
	if !vc {
		return vs
	}

	l := len(n.Children)
	for i := 0; i < l && vc; i++ {
		if rtl {
			vc = visitNode(n.Children[l-i-1], v, true)
		} else {
			vc = visitNode(n.Children[i], v, false)
		}
	}
	return vs
}

type NodeFilter[T, R any] func(n *Node[T, R]) bool
type NodeExtractor[T, R any] func(n *Node[T, R]) []*Node[T, R]

// Search returns nodes of the subtree accepted by filter, in depth first order.
// Descendants of accepted nodes are searched only if deep is true.
func Search[T, R any](n *Node[T, R], nf NodeFilter[T, R], deep bool) []*Node[T, R] {
	res := make([]*Node[T, R], 0)
	Walk(n, WalkLtr, func(nn *Node[T, R]) (bool, bool) {
		if nf(nn) {
			res = append(res, nn)
			return deep, true
		}
		return true, true
	})
	return res
}

// Selector is a chain of node transformations applied to a set of nodes,
// each step is applied to every result of the previous one.
type Selector[T, R any] struct {
	steps []NodeExtractor[T, R]
}

func NewSelector[T, R any]() *Selector[T, R] {
	return &Selector[T, R]{}
}

// Apply runs the chain for input nodes, returning unique result nodes in order of appearance.
func (s *Selector[T, R]) Apply(input ...*Node[T, R]) []*Node[T, R] {
	res := make([]*Node[T, R], 0)
	index := make(map[*Node[T, R]]bool)

	for _, n := range input {
		if n == nil {
			continue
		}

		ns := []*Node[T, R]{n}
		for _, step := range s.steps {
			var next []*Node[T, R]
			for _, nn := range ns {
				next = append(next, step(nn)...)
			}
			ns = next
		}

		for _, tn := range ns {
			if !index[tn] {
				index[tn] = true
				res = append(res, tn)
			}
		}
	}

	return res
}

func (s *Selector[T, R]) Extract(ne NodeExtractor[T, R]) *Selector[T, R] {
	if ne != nil {
		s.steps = append(s.steps, ne)
	}
	return s
}

func (s *Selector[T, R]) Filter(nf NodeFilter[T, R]) *Selector[T, R] {
	return s.Extract(func(n *Node[T, R]) []*Node[T, R] {
		if nf(n) {
			return []*Node[T, R]{n}
		}
		return nil
	})
}

func (s *Selector[T, R]) Search(nf NodeFilter[T, R], deep bool) *Selector[T, R] {
	return s.Extract(func(n *Node[T, R]) []*Node[T, R] {
		return Search(n, nf, deep)
	})
}

func IsNot[T, R any](f NodeFilter[T, R]) NodeFilter[T, R] {
	return func(n *Node[T, R]) bool {
		return !f(n)
	}
}

func IsAny[T, R any](fs ...NodeFilter[T, R]) NodeFilter[T, R] {
	return func(n *Node[T, R]) bool {
		for _, f := range fs {
			if f(n) {
				return true
			}
		}
		return false
	}
}

func IsAll[T, R any](fs ...NodeFilter[T, R]) NodeFilter[T, R] {
	return func(n *Node[T, R]) bool {
		for _, f := range fs {
			if !f(n) {
				return false
			}
		}
		return true
	}
}

// IsA accepts nodes built by any of given rules.
func IsA[T any, R comparable](rules ...R) NodeFilter[T, R] {
	return func(n *Node[T, R]) bool {
		for _, r := range rules {
			if n.Rule == r {
				return true
			}
		}
		return false
	}
}

// IsAToken accepts token nodes of any of given categories.
func IsAToken[T comparable, R any](tokens ...T) NodeFilter[T, R] {
	return func(n *Node[T, R]) bool {
		if !n.IsToken() {
			return false
		}

		for _, t := range tokens {
			if n.Token.Token == t {
				return true
			}
		}
		return false
	}
}

// IsALiteral accepts token nodes having any of given literals.
func IsALiteral[T, R any](texts ...string) NodeFilter[T, R] {
	return func(n *Node[T, R]) bool {
		if !n.IsToken() {
			return false
		}

		for _, text := range texts {
			if n.Token.Literal == text {
				return true
			}
		}
		return false
	}
}

func Any[T, R any](nes ...NodeExtractor[T, R]) NodeExtractor[T, R] {
	return func(n *Node[T, R]) (res []*Node[T, R]) {
		for _, ne := range nes {
			res = ne(n)
			if len(res) > 0 {
				break
			}
		}
		return
	}
}

func All[T, R any](nes ...NodeExtractor[T, R]) NodeExtractor[T, R] {
	return func(n *Node[T, R]) (res []*Node[T, R]) {
		for _, ne := range nes {
			res = append(res, ne(n)...)
		}
		return
	}
}

func NthChildren[T, R any](indexes ...int) NodeExtractor[T, R] {
	return func(n *Node[T, R]) []*Node[T, R] {
		res := make([]*Node[T, R], 0)
		for _, i := range indexes {
			if nn := NthChild(n, i); nn != nil {
				res = append(res, nn)
			}
		}
		return res
	}
}

// Format dumps the subtree as S-expression: "(Rule child ...)" for inner nodes
// and "(Rule "literal")" for token nodes. Rules are printed with %v.
func Format[T, R any](n *Node[T, R]) string {
	if n == nil {
		return ""
	}

	sb := &strings.Builder{}
	format(sb, n)
	return sb.String()
}

func format[T, R any](sb *strings.Builder, n *Node[T, R]) {
	fmt.Fprintf(sb, "(%v", n.Rule)
	if n.IsToken() {
		fmt.Fprintf(sb, " %q", n.Token.Literal)
	}
	for _, c := range n.Children {
		sb.WriteByte(' ')
		format(sb, c)
	}
	sb.WriteByte(')')
}
