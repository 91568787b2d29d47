// Copyright (c) 2026 the redd authors
//
// MIT License

package redd

import "fmt"

// Rule selects the elimination rule used by Reduce and carried by the
// resulting Diagram.
type Rule int

const (
	// BDD eliminates every vertex whose low and high branches coincide.
	BDD Rule = iota
	// ZDD eliminates every vertex whose high branch is the false constant.
	ZDD
)

func (r Rule) String() string {
	if r == ZDD {
		return "zdd"
	}
	return "bdd"
}

// Diagram is a canonical decision diagram: a root node together with the
// reduction rule it was canonicalized under. The zero value is not a valid
// diagram; use Reduce, From, True or False.
//
// Diagrams of different rules represent different things (a BDD encodes a
// Boolean function, a ZDD a family of sets) and must not be mixed in Apply or
// Compose without an explicit re-reduction under a common rule.
type Diagram struct {
	root *Node
	rule Rule
}

// True returns the diagram of the constant true under the given rule.
func True(rule Rule) Diagram {
	return Diagram{root: Constant(true), rule: rule}
}

// False returns the diagram of the constant false under the given rule.
func False(rule Rule) Diagram {
	return Diagram{root: Constant(false), rule: rule}
}

// From returns a constant diagram from a Boolean value.
func From(v bool, rule Rule) Diagram {
	if v {
		return True(rule)
	}
	return False(rule)
}

// Root returns the root node of the diagram.
func (d Diagram) Root() *Node { return d.root }

// Rule returns the reduction rule the diagram was canonicalized under.
func (d Diagram) Rule() Rule { return d.rule }

// Size returns the number of nodes in the diagram, constants included.
func (d Diagram) Size() int { return d.root.Size() }

// AllNodes returns every node reachable from the root, in no specified
// order.
func (d Diagram) AllNodes() []*Node { return d.root.AllNodes() }

// Eval computes the value of the function under the given assignment, where
// assignment[v] is the value of variable v. This reads the diagram with
// if-then-else semantics, which is the function a BDD denotes; for a ZDD the
// result is the raw path value, not membership in the encoded family.
func (d Diagram) Eval(assignment []bool) bool { return d.root.Eval(assignment) }

// Not returns the negation of the diagram.
func (d Diagram) Not() Diagram {
	return d.Apply(From(true, d.rule), OPxor)
}

// And returns the conjunction of a sequence of diagrams.
func And(n ...Diagram) Diagram {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return True(BDD)
	}
	return n[0].Apply(And(n[1:]...), OPand)
}

// Or returns the disjunction of a sequence of diagrams.
func Or(n ...Diagram) Diagram {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return False(BDD)
	}
	return n[0].Apply(Or(n[1:]...), OPor)
}

// Imp returns the implication between two diagrams.
func Imp(n1, n2 Diagram) Diagram {
	return n1.Apply(n2, OPimp)
}

// Equiv returns the bi-implication between two diagrams.
func Equiv(n1, n2 Diagram) Diagram {
	return n1.Apply(n2, OPbiimp)
}

// Equal tests whether two canonical diagrams represent the same function,
// that is whether their graphs are isomorphic. Reducing any two trees of the
// same function under the same rule yields Equal diagrams.
func Equal(a, b Diagram) bool {
	if a.rule != b.rule {
		return false
	}
	type pair struct{ x, y *Node }
	seen := make(map[pair]bool)
	var eq func(x, y *Node) bool
	eq = func(x, y *Node) bool {
		if x == y {
			return true
		}
		xv, xok := x.Terminal()
		yv, yok := y.Terminal()
		if xok || yok {
			return xok && yok && xv == yv
		}
		if x.level != y.level {
			return false
		}
		p := pair{x, y}
		if seen[p] {
			return true
		}
		seen[p] = true
		return eq(x.low, y.low) && eq(x.high, y.high)
	}
	return eq(a.root, b.root)
}

// String returns a one-line description of the diagram.
func (d Diagram) String() string {
	if v, ok := d.root.Terminal(); ok {
		if v {
			return "True"
		}
		return "False"
	}
	return fmt.Sprintf("%s(level %d, %d nodes)", d.rule, d.root.level, d.Size())
}
