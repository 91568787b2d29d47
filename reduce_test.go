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

// assignments enumerates all 2^varnum assignments over levels [0, varnum).
func assignments(varnum int) [][]bool {
	res := make([][]bool, 0, 1<<varnum)
	for m := 0; m < 1<<varnum; m++ {
		a := make([]bool, varnum)
		for i := 0; i < varnum; i++ {
			a[i] = m&(1<<i) != 0
		}
		res = append(res, a)
	}
	return res
}

func TestReduceTerminals(t *testing.T) {
	for _, rule := range []redd.Rule{redd.BDD, redd.ZDD} {
		d := redd.Reduce(redd.Constant(true), rule)
		assert.Equal(t, 1, d.Size())
		v, ok := d.Root().Terminal()
		require.True(t, ok)
		assert.True(t, v)
		assert.Equal(t, rule, d.Rule())
	}
}

func TestReduceRedundantVertex(t *testing.T) {
	f := redd.Constant(false)

	// under the BDD rule a vertex with equal branches collapses to the branch
	d := redd.Reduce(redd.Decision(0, f, redd.Constant(false)), redd.BDD)
	assert.Equal(t, 1, d.Size())
	v, ok := d.Root().Terminal()
	require.True(t, ok)
	assert.False(t, v)

	// the same tree is irreducible under the ZDD rule; its high branch is
	// false, so the vertex itself is eliminated instead
	z := redd.Reduce(redd.Decision(0, f, redd.Constant(false)), redd.ZDD)
	assert.Equal(t, 1, z.Size())

	// a ZDD keeps a vertex with equal non-false branches
	tt := redd.Constant(true)
	z = redd.Reduce(redd.Decision(0, tt, redd.Constant(true)), redd.ZDD)
	assert.Equal(t, 2, z.Size())
}

func TestReduceSharing(t *testing.T) {
	// two isomorphic subtrees on the same level must end up shared
	mk := func() *redd.Node {
		return redd.Decision(1, redd.Constant(false), redd.Constant(true))
	}
	d := redd.Reduce(redd.Decision(0, mk(), mk()), redd.BDD)
	// x1 alone: the level 0 vertex is redundant once its branches are shared
	assert.Equal(t, 3, d.Size())
	assert.Equal(t, 1, d.Root().Level())
}

func TestReducePreservesSemantics(t *testing.T) {
	raw := fixture.IndependentSet()
	d := redd.Reduce(raw, redd.BDD)
	// 14 decision vertices plus the two constants
	assert.Equal(t, 16, d.Size())
	for _, a := range assignments(6) {
		assert.Equal(t, raw.Eval(a), d.Eval(a), "%v", a)
	}
	// the ZDD drops every vertex whose high branch is false, and none of
	// the remaining vertices reaches the false constant at all
	z := redd.Reduce(raw, redd.ZDD)
	assert.Equal(t, 10, z.Size())
}

func TestReduceIdempotent(t *testing.T) {
	d := redd.Reduce(fixture.Kernels(), redd.BDD)
	again := redd.Reduce(d.Root(), redd.BDD)
	assert.Equal(t, d.Size(), again.Size())
	assert.True(t, redd.Equal(d, again))
}

func TestReduceCanonical(t *testing.T) {
	// two structurally different trees of the same function reduce to
	// isomorphic diagrams
	f := redd.Constant(false)
	tt := redd.Constant(true)
	// x0 && x1, once as a tree and once with a duplicated low branch
	a := redd.Decision(0, f, redd.Decision(1, redd.Constant(false), tt))
	b := redd.Decision(0,
		redd.Decision(1, redd.Constant(false), redd.Constant(false)),
		redd.Decision(1, redd.Constant(false), redd.Constant(true)))
	da := redd.Reduce(a, redd.BDD)
	db := redd.Reduce(b, redd.BDD)
	assert.Equal(t, da.Size(), db.Size())
	assert.True(t, redd.Equal(da, db))
}

func TestReduceMajoritySize(t *testing.T) {
	d := redd.Reduce(fixture.Majority(), redd.BDD)
	// false, true, and four decision vertices
	assert.Equal(t, 6, d.Size())
	for _, a := range assignments(3) {
		want := (a[0] && a[1]) || (a[0] && a[2]) || (a[1] && a[2])
		assert.Equal(t, want, d.Eval(a), "%v", a)
	}
}
