// Copyright (c) 2026 the redd authors
//
// MIT License

package redd

import "math/big"

// SatisfyOne reports whether at least one path from n reaches the true
// constant. A visited set keeps the traversal linear in the number of nodes
// even on heavily shared graphs; never drop it to call the naive recursion on
// a raw tree, where the number of paths is exponential.
func (n *Node) SatisfyOne() bool {
	return satisfyone(n, make(map[*Node]bool))
}

// SatisfyOne reports whether the diagram has at least one satisfying path.
func (d Diagram) SatisfyOne() bool {
	return d.root.SatisfyOne()
}

// dead records the nodes already known to reach no true constant.
func satisfyone(n *Node, dead map[*Node]bool) bool {
	if v, ok := n.Terminal(); ok {
		return v
	}
	if dead[n] {
		return false
	}
	if satisfyone(n.low, dead) || satisfyone(n.high, dead) {
		return true
	}
	dead[n] = true
	return false
}

// SatisfyAll returns the number of distinct paths from n to the true
// constant, computed in time linear in the graph size by memoizing the count
// per node.
//
// On a complete decision tree every path fixes every variable, so the path
// count equals the number of satisfying assignments. The same holds for a
// ZDD, where each path to true is one set of the encoded family. On a reduced
// BDD, use Satcount to weigh the variables a path leaves free.
func (n *Node) SatisfyAll() int {
	return satisfyall(n, make(map[*Node]int))
}

// SatisfyAll returns the number of satisfying paths of the diagram.
func (d Diagram) SatisfyAll() int {
	return d.root.SatisfyAll()
}

func satisfyall(n *Node, count map[*Node]int) int {
	if v, ok := n.Terminal(); ok {
		return btoi(v)
	}
	if c, ok := count[n]; ok {
		return c
	}
	c := satisfyall(n.low, count) + satisfyall(n.high, count)
	count[n] = c
	return c
}

// Satcount computes the number of satisfying variable assignments of a BDD
// over the variables [0..varnum). Variables skipped along a path count for
// two assignments each, which is what distinguishes this from SatisfyAll on a
// reduced diagram. We return a result using arbitrary-precision arithmetic to
// avoid possible overflows.
func (d Diagram) Satcount(varnum int) *big.Int {
	res := big.NewInt(0)
	// We compute 2^level with a bit shift 1 << level
	res.SetBit(res, lvl(d.root, varnum), 1)
	satc := make(map[*Node]*big.Int)
	return res.Mul(res, satcount(d.root, varnum, satc))
}

// lvl is the level of n with the constants pushed below the last variable.
func lvl(n *Node, varnum int) int {
	if n.low == nil {
		return varnum
	}
	return n.level
}

func satcount(n *Node, varnum int, satc map[*Node]*big.Int) *big.Int {
	if v, ok := n.Terminal(); ok {
		return big.NewInt(int64(btoi(v)))
	}
	if res, ok := satc[n]; ok {
		return res
	}
	res := big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, lvl(n.low, varnum)-n.level-1, 1)
	res.Add(res, two.Mul(two, satcount(n.low, varnum, satc)))
	two = big.NewInt(0)
	two.SetBit(two, lvl(n.high, varnum)-n.level-1, 1)
	res.Add(res, two.Mul(two, satcount(n.high, varnum, satc)))
	satc[n] = res
	return res
}

// Allsat iterates through the satisfying variable assignments of a BDD over
// the variables [0..varnum) and calls f on each of them. The slice passed to
// f has one entry per variable: 0 if the variable is false, 1 if it is true,
// and -1 if it is a don't care for that path. The slice is reused between
// calls; f must copy it to retain it. We stop and return the error if f
// returns one at some point.
func (d Diagram) Allsat(varnum int, f func([]int) error) error {
	prof := make([]int, varnum)
	for k := range prof {
		prof[k] = -1
	}
	return allsat(d.root, varnum, prof, f)
}

func allsat(n *Node, varnum int, prof []int, f func([]int) error) error {
	if v, ok := n.Terminal(); ok {
		if v {
			return f(prof)
		}
		return nil
	}
	prof[n.level] = 0
	for k := n.level + 1; k < lvl(n.low, varnum); k++ {
		prof[k] = -1
	}
	if err := allsat(n.low, varnum, prof, f); err != nil {
		return err
	}
	prof[n.level] = 1
	for k := n.level + 1; k < lvl(n.high, varnum); k++ {
		prof[k] = -1
	}
	if err := allsat(n.high, varnum, prof, f); err != nil {
		return err
	}
	prof[n.level] = -1
	return nil
}
