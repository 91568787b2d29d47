// Copyright (c) 2026 the redd authors
//
// MIT License

package redd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzeller/redd"
	"github.com/pzeller/redd/fixture"
)

func TestComposeSubstitution(t *testing.T) {
	a := redd.Reduce(fixture.X1X2X4(), redd.BDD)
	b := redd.Reduce(fixture.X2X3(), redd.BDD)
	c := a.Compose(b, 1)
	assert.Equal(t, redd.BDD, c.Rule())

	// a with level 1 replaced by b: evaluating c must agree with evaluating
	// a after overwriting the substituted variable with b's value
	for _, x := range assignments(4) {
		y := make([]bool, len(x))
		copy(y, x)
		y[1] = b.Eval(x)
		assert.Equal(t, a.Eval(y), c.Eval(x), "%v", x)
	}
}

func TestComposeAbsentLevel(t *testing.T) {
	// substituting a level the diagram never branches on leaves it unchanged
	a := redd.Reduce(fixture.X1X3(), redd.BDD)
	b := redd.Reduce(fixture.Majority(), redd.BDD)
	c := a.Compose(b, 5)
	assert.True(t, redd.Equal(a, c))
}

func TestComposeWithConstant(t *testing.T) {
	// substituting a constant is a restriction
	a := redd.Reduce(fixture.Majority(), redd.BDD)
	hi := a.Compose(redd.True(redd.BDD), 0)
	lo := a.Compose(redd.False(redd.BDD), 0)
	for _, x := range assignments(3) {
		y := make([]bool, len(x))
		copy(y, x)
		y[0] = true
		assert.Equal(t, a.Eval(y), hi.Eval(x))
		y[0] = false
		assert.Equal(t, a.Eval(y), lo.Eval(x))
	}
	// majority restricted on x0 is x1 or x2, resp. x1 and x2
	x1 := redd.Reduce(redd.Decision(1, redd.Constant(false), redd.Constant(true)), redd.BDD)
	x2 := redd.Reduce(redd.Decision(2, redd.Constant(false), redd.Constant(true)), redd.BDD)
	assert.True(t, redd.Equal(hi, redd.Or(x1, x2)))
	assert.True(t, redd.Equal(lo, redd.And(x1, x2)))
}

func TestComposeIdentity(t *testing.T) {
	// substituting a variable with itself is the identity
	a := redd.Reduce(fixture.Kernels(), redd.BDD)
	x2 := redd.Reduce(redd.Decision(2, redd.Constant(false), redd.Constant(true)), redd.BDD)
	c := a.Compose(x2, 2)
	require.True(t, redd.Equal(a, c))
}
