// Copyright (c) 2026 the redd authors
//
// MIT License

package redd

// Compose returns the diagram of d with every occurrence of the variable
// level replaced by the function other, that is d[level := other]. Both
// operands must be canonical under the same rule and share one variable
// ordering; the result is canonicalized under the receiver's rule.
//
// The descent tracks three cursors at once: the cofactor of d under
// level=false, the cofactor of d under level=true, and other. When all three
// resolve to constants the composed value is the multiplexer
// (!b && low) || (b && high) with b the value of other. Triples are memoized
// by their id triple, so each one is expanded at most once.
func (d Diagram) Compose(other Diagram, level int) Diagram {
	c := &composer{
		level: level,
		ix:    newIndexer(d.root, other.root),
		memo:  make(map[[3]int]*Node),
	}
	return Reduce(c.compose(d.root, d.root, other.root), d.rule)
}

type composer struct {
	level int // the substituted variable
	ix    *indexer
	memo  map[[3]int]*Node
}

func (c *composer) compose(low, high, other *Node) *Node {
	// drop the substituted variable from both cofactor cursors
	if low.low != nil && low.level == c.level {
		low = low.low
	}
	if high.low != nil && high.level == c.level {
		high = high.high
	}
	key := [3]int{c.ix.id(low), c.ix.id(high), c.ix.id(other)}
	if res, ok := c.memo[key]; ok {
		return res
	}
	var res *Node
	lv, lok := low.Terminal()
	hv, hok := high.Terminal()
	ov, ook := other.Terminal()
	if lok && hok && ook {
		res = c.ix.terminal((!ov && lv) || (ov && hv))
	} else {
		k := minkey(low.unifiedKey(), high.unifiedKey(), other.unifiedKey())
		next := k - 2
		low0, low1 := cofactor(low, next)
		high0, high1 := cofactor(high, next)
		other0, other1 := cofactor(other, next)
		res = Decision(next,
			c.compose(low0, high0, other0),
			c.compose(low1, high1, other1))
	}
	c.memo[key] = res
	return res
}

// minkey returns the smallest non-constant unified key among the three
// operands. At least one operand is a decision vertex when this is called.
func minkey(p, q, r int) int {
	res := -1
	for _, k := range [3]int{p, q, r} {
		if k >= 2 && (res < 0 || k < res) {
			res = k
		}
	}
	return res
}
