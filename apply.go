// Copyright (c) 2026 the redd authors
//
// MIT License

package redd

// Apply computes the diagram of op(d, other): the function obtained by
// combining the two operands pointwise with the operator. Both operands must
// be canonical under the same rule and use the same variable ordering; the
// result is canonicalized under the receiver's rule before being returned.
//
//	Identifier    Description            Truth table
//
//	OPand         logical and            [0,0,0,1]
//	OPxor         logical xor            [0,1,1,0]
//	OPor          logical or             [0,1,1,1]
//	OPnand        logical not-and        [1,1,1,0]
//	OPnor         logical not-or         [1,0,0,0]
//	OPimp         implication            [1,1,0,1]
//	OPbiimp       equivalence            [1,0,0,1]
//	OPdiff        set difference         [0,0,1,0]
//	OPless        less than              [0,1,0,0]
//	OPinvimp      reverse implication    [1,0,1,1]
func (d Diagram) Apply(other Diagram, op Operator) Diagram {
	a := &applier{
		op:   op,
		ix:   newIndexer(d.root, other.root),
		memo: make(map[[2]int]*Node),
	}
	return Reduce(a.apply(d.root, other.root), d.rule)
}

// applier carries the per-call state of one Apply: the operator, the indexer
// over both operand graphs, and the pair memoization table that guarantees
// each pair of vertices is expanded at most once.
type applier struct {
	op   Operator
	ix   *indexer
	memo map[[2]int]*Node
}

func (a *applier) apply(v1, v2 *Node) *Node {
	key := [2]int{a.ix.id(v1), a.ix.id(v2)}
	if res, ok := a.memo[key]; ok {
		return res
	}
	res, ok := a.shortcut(v1, v2)
	if !ok {
		// branch on the smallest variable present in either operand; an
		// operand that does not mention it is constant along that axis and
		// contributes itself to both branches
		k1, k2 := v1.unifiedKey(), v2.unifiedKey()
		k := k1
		if k < 2 || (k2 >= 2 && k2 < k) {
			k = k2
		}
		low1, high1 := cofactor(v1, k-2)
		low2, high2 := cofactor(v2, k-2)
		res = Decision(k-2, a.apply(low1, low2), a.apply(high1, high2))
	}
	a.memo[key] = res
	return res
}

// shortcut resolves the pairs that do not need a recursive descent: both
// operands constant, or one operand at an absorbing value of the operator.
func (a *applier) shortcut(v1, v2 *Node) (*Node, bool) {
	b1, t1 := v1.Terminal()
	b2, t2 := v2.Terminal()
	if t1 && t2 {
		return a.ix.terminal(a.op.eval(b1, b2)), true
	}
	if u, ok := a.op.absorbing(); ok {
		if (t1 && b1 == u) || (t2 && b2 == u) {
			return a.ix.terminal(a.op.eval(u, u)), true
		}
		return nil, false
	}
	// one-sided short circuits
	switch a.op {
	case OPimp:
		if (t1 && !b1) || (t2 && b2) {
			return a.ix.terminal(true), true
		}
	case OPinvimp:
		if (t1 && b1) || (t2 && !b2) {
			return a.ix.terminal(true), true
		}
	case OPdiff:
		if (t1 && !b1) || (t2 && b2) {
			return a.ix.terminal(false), true
		}
	case OPless:
		if (t1 && b1) || (t2 && !b2) {
			return a.ix.terminal(false), true
		}
	}
	return nil, false
}

// cofactor splits n along the variable level: a vertex branching on level
// contributes its branches, everything else is constant in level and passes
// through unchanged on both sides.
func cofactor(n *Node, level int) (*Node, *Node) {
	if n.low != nil && n.level == level {
		return n.low, n.high
	}
	return n, n
}
