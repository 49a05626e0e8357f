package driver

import (
	"fmt"

	"github.com/npillmayer/lrtab"
	"github.com/npillmayer/lrtab/grammar"
)

// Node is a node of a derivation tree. Leaves hold the tokens of terminals,
// inner nodes are labeled with the rule they have been reduced by.
type Node struct {
	Symbol   grammar.Symbol
	Rule     int         // serial of the reduced rule, -1 for terminals
	Token    lrtab.Token // token of a terminal, nil for non-terminals
	Span     lrtab.Span  // input covered by this node
	Value    interface{} // result of semantic action
	Children []*Node
}

// IsLeaf is true for terminal nodes.
func (n *Node) IsLeaf() bool {
	return n.Rule < 0
}

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%v %q", n.Symbol, n.Token.Lexeme())
	}
	return fmt.Sprintf("%v %v", n.Symbol, n.Span)
}

// Walk traverses a tree in pre-order, calling f for each node together with
// its depth.
func (n *Node) Walk(f func(node *Node, depth int)) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(*Node, int), depth int) {
	if n == nil {
		return
	}
	f(n, depth)
	for _, ch := range n.Children {
		ch.walk(f, depth+1)
	}
}

// Leaves returns the terminal nodes of a tree, from left to right.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(node *Node, _ int) {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	})
	return leaves
}
