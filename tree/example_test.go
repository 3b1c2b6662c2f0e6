package tree_test

import (
	"fmt"
	"strings"

	"github.com/ava12/rdp/tree"
)

func ExampleWalk() {
	root, e := parseDescription("(var name) (op eq) (value (string bar))")
	if e != nil {
		fmt.Println(e)
		return
	}

	level := 0
	indent := strings.Repeat("-", 10)
	var visit func(n *strNode) (bool, bool)
	visit = func(n *strNode) (bool, bool) {
		if n.IsToken() {
			fmt.Printf("%s%q\n", indent[:level*2], n.Token.Literal)
			return false, true
		}

		fmt.Printf("%s%s:\n", indent[:level*2], n.Rule)
		level++
		for _, c := range n.Children {
			tree.Walk(c, tree.WalkLtr, visit)
		}
		level--
		return false, true
	}
	tree.Walk(root, tree.WalkLtr, visit)
	// Output:
	// root:
	// --var:
	// ----"name"
	// --op:
	// ----"eq"
	// --value:
	// ----string:
	// ------"bar"
}

func ExampleFormat() {
	res, e := parseSource("(a b)")
	if e != nil {
		fmt.Println(e)
		return
	}

	fmt.Println(tree.Format(res.Node))
	// Output:
	// (Forest (Items (Item (Open "(") (Word "a") (Items (Item (Word "b"))) (Close ")"))) (End ""))
}
