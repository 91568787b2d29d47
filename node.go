// Copyright (c) 2026 the redd authors
//
// MIT License

package redd

// Node is a vertex in a decision diagram: either a Boolean constant or a
// decision on one variable. Nodes are immutable after construction and are
// compared by identity; building the same vertex twice gives two distinct
// nodes until a call to Reduce unifies them.
type Node struct {
	level int   // variable index for a decision vertex
	low   *Node // nil for constants
	high  *Node // nil for constants
	value bool  // constant value, meaningful only when low is nil
}

// Constant returns a new terminal node carrying the constant v.
func Constant(v bool) *Node {
	return &Node{value: v}
}

// Decision returns a new decision vertex branching on the variable level,
// with low taken when the variable is false and high when it is true. The
// levels of low and high, when they are not constants, must be strictly
// greater than level.
func Decision(level int, low, high *Node) *Node {
	return &Node{level: level, low: low, high: high}
}

// Terminal reports whether n is a constant and, if so, its value.
func (n *Node) Terminal() (bool, bool) {
	if n.low == nil {
		return n.value, true
	}
	return false, false
}

// Level returns the variable index of a decision vertex. The result is -1 for
// a constant, which has no variable.
func (n *Node) Level() int {
	if n.low == nil {
		return -1
	}
	return n.level
}

// Low returns the false branch of a decision vertex, or nil if n is a
// constant. Callers must test Terminal before following branches.
func (n *Node) Low() *Node { return n.low }

// High returns the true branch of a decision vertex, or nil if n is a
// constant.
func (n *Node) High() *Node { return n.high }

// unifiedKey totally orders nodes for branch selection: constants map to 0
// and 1, a decision on variable v maps to v+2. The smallest non-constant key
// among a set of operands tells which variable to branch on next.
func (n *Node) unifiedKey() int {
	if n.low == nil {
		if n.value {
			return 1
		}
		return 0
	}
	return n.level + 2
}

// AllNodes returns every node reachable from n, including n itself, each node
// exactly once, in depth-first preorder. The order is an implementation
// detail that callers must not rely on.
func (n *Node) AllNodes() []*Node {
	seen := make(map[*Node]bool)
	var nodes []*Node
	var walk func(*Node)
	walk = func(m *Node) {
		if seen[m] {
			return
		}
		seen[m] = true
		nodes = append(nodes, m)
		if m.low != nil {
			walk(m.low)
			walk(m.high)
		}
	}
	walk(n)
	return nodes
}

// Size returns the number of nodes reachable from n, including n itself.
func (n *Node) Size() int {
	return len(n.AllNodes())
}

// Eval computes the value of the function rooted at n under the given
// assignment, where assignment[v] is the value of variable v. The slice must
// cover every level reachable from n.
func (n *Node) Eval(assignment []bool) bool {
	for n.low != nil {
		if assignment[n.level] {
			n = n.high
		} else {
			n = n.low
		}
	}
	return n.value
}
