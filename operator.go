// Copyright (c) 2026 the redd authors
//
// MIT License

package redd

// Operator describes the binary Boolean operations available in Apply.
type Operator int

const (
	OPand    Operator = iota // Conjunction
	OPxor                    // Exclusive or
	OPor                     // Disjunction
	OPnand                   // Negation of and
	OPnor                    // Negation of or
	OPimp                    // Implication
	OPbiimp                  // Equivalence
	OPdiff                   // Difference (left and not right)
	OPless                   // Less than (not left and right)
	OPinvimp                 // Reverse implication
)

var opnames = [10]string{
	OPand:    "and",
	OPxor:    "xor",
	OPor:     "or",
	OPnand:   "nand",
	OPnor:    "nor",
	OPimp:    "imp",
	OPbiimp:  "biimp",
	OPdiff:   "diff",
	OPless:   "less",
	OPinvimp: "invimp",
}

func (op Operator) String() string {
	return opnames[op]
}

var opres = [10][2][2]int{
	//                      00    01               10    11
	OPand:    {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 0, 1: 1}}, // 0001
	OPxor:    {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 0}}, // 0110
	OPor:     {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 1, 1: 1}}, // 0111
	OPnand:   {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 1, 1: 0}}, // 1110
	OPnor:    {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 0}}, // 1000
	OPimp:    {0: [2]int{0: 1, 1: 1}, 1: [2]int{0: 0, 1: 1}}, // 1101
	OPbiimp:  {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 0, 1: 1}}, // 1001
	OPdiff:   {0: [2]int{0: 0, 1: 0}, 1: [2]int{0: 1, 1: 0}}, // 0010
	OPless:   {0: [2]int{0: 0, 1: 1}, 1: [2]int{0: 0, 1: 0}}, // 0100
	OPinvimp: {0: [2]int{0: 1, 1: 0}, 1: [2]int{0: 1, 1: 1}}, // 1011
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// eval applies the truth table of op to a pair of constants.
func (op Operator) eval(a, b bool) bool {
	return opres[op][btoi(a)][btoi(b)] == 1
}

// absorbing returns the absorbing (or "unit") input value of op, when it has
// a symmetric one: op(u, x) and op(x, u) do not depend on x. The asymmetric
// short circuits of imp, invimp, diff and less are handled separately in
// apply.
func (op Operator) absorbing() (bool, bool) {
	switch op {
	case OPand, OPnand:
		return false, true
	case OPor, OPnor:
		return true, true
	}
	return false, false
}
