// Copyright (c) 2026 the redd authors
//
// MIT License

// Package fixture builds the raw decision trees used by the command line
// driver, the tests, and the examples of the documentation. The functions are
// classics from the decision-diagram literature: the independent sets of the
// cycle on six vertices (and their kernels), the three-variable majority
// function, and the running examples from Figure 7 of Randal E. Bryant,
// Graph-Based Algorithms for Boolean Function Manipulation, IEEE Trans. on
// Comp., C-35-8, pp. 677-691, Aug. 1986.
package fixture

import "github.com/pzeller/redd"

// Tree builds the complete decision tree of the predicate pred over the
// variables [0..varnum): a tree with 2^(varnum+1)-1 vertices where every
// branch fixes every variable. The slice passed to pred has one entry per
// variable.
func Tree(varnum int, pred func([]bool) bool) *redd.Node {
	assignment := make([]bool, varnum)
	var build func(level int) *redd.Node
	build = func(level int) *redd.Node {
		if level == varnum {
			return redd.Constant(pred(assignment))
		}
		assignment[level] = false
		low := build(level + 1)
		assignment[level] = true
		high := build(level + 1)
		return redd.Decision(level, low, high)
	}
	return build(0)
}

// IndependentSet returns the tree of the independent sets of the cyclic chain
// with six vertices: assignments where no two adjacent variables are both
// true. The function has exactly 18 satisfying assignments.
func IndependentSet() *redd.Node {
	return Tree(6, func(x []bool) bool {
		for i := range x {
			if x[i] && x[(i+1)%len(x)] {
				return false
			}
		}
		return true
	})
}

// Kernels returns the tree of the maximal independent sets, also called
// kernels, of the same cyclic chain: the independent sets in which there also
// are no three consecutive false variables.
func Kernels() *redd.Node {
	return Tree(6, func(x []bool) bool {
		for i := range x {
			if x[i] && x[(i+1)%len(x)] {
				return false
			}
			if !x[i] && !x[(i+1)%len(x)] && !x[(i+2)%len(x)] {
				return false
			}
		}
		return true
	})
}

// Majority returns the tree of the three-variable majority function, true
// when at least two of the variables are. The function has 4 satisfying
// assignments, reached along 3 accepting paths.
func Majority() *redd.Node {
	f := redd.Constant(false)
	t := redd.Constant(true)
	x3a := redd.Decision(2, f, t)
	x3b := redd.Decision(2, f, t)
	return redd.Decision(0,
		redd.Decision(1, f, x3a),
		redd.Decision(1, x3b, t))
}

// X1X3 returns the first operand of Bryant's Figure 7 example, over the
// variables x1 and x3 (levels 0 and 2).
func X1X3() *redd.Node {
	return redd.Decision(0,
		redd.Constant(true),
		redd.Decision(2, redd.Constant(true), redd.Constant(false)))
}

// X2X3 returns the second operand of Bryant's Figure 7 example, the
// conjunction of x2 and x3 (levels 1 and 2).
func X2X3() *redd.Node {
	return redd.Decision(1,
		redd.Constant(false),
		redd.Decision(2, redd.Constant(false), redd.Constant(true)))
}

// X1X2X4 returns the three-variable example used by the compose operation,
// over the levels 0, 1 and 3.
func X1X2X4() *redd.Node {
	return redd.Decision(0,
		redd.Decision(1, redd.Constant(true), redd.Decision(3, redd.Constant(true), redd.Constant(false))),
		redd.Decision(1, redd.Constant(false), redd.Constant(true)))
}

// ByName maps the fixture names understood by the command line driver to
// their constructors.
var ByName = map[string]func() *redd.Node{
	"independent-set": IndependentSet,
	"kernels":         Kernels,
	"majority":        Majority,
	"x1x3":            X1X3,
	"x2x3":            X2X3,
	"x1x2x4":          X1X2X4,
}
