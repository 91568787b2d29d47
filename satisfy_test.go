// Copyright (c) 2026 the redd authors
//
// MIT License

package redd_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzeller/redd"
	"github.com/pzeller/redd/fixture"
)

func independent(a []bool) bool {
	for i := range a {
		if a[i] && a[(i+1)%len(a)] {
			return false
		}
	}
	return true
}

func TestSatisfyAllTree(t *testing.T) {
	// on a complete tree every accepting path is one full assignment
	raw := fixture.IndependentSet()
	assert.Equal(t, 18, raw.SatisfyAll())
	assert.Equal(t, 5, fixture.Kernels().SatisfyAll())

	// majority accepts along 3 paths, and the count survives reduction
	assert.Equal(t, 3, fixture.Majority().SatisfyAll())
	assert.Equal(t, 3, redd.Reduce(fixture.Majority(), redd.BDD).SatisfyAll())
}

func TestSatisfyAllZDD(t *testing.T) {
	// the ZDD rule only removes vertices whose high branch is false, which
	// never loses an accepting path
	z := redd.Reduce(fixture.IndependentSet(), redd.ZDD)
	assert.Equal(t, 18, z.SatisfyAll())
	assert.Equal(t, 5, redd.Reduce(fixture.Kernels(), redd.ZDD).SatisfyAll())
}

func TestSatisfyAllBDD(t *testing.T) {
	// collapsing a vertex with equal branches merges two paths into one, so
	// a reduced BDD can report fewer paths than assignments
	d := redd.Reduce(fixture.IndependentSet(), redd.BDD)
	assert.Less(t, d.SatisfyAll(), 18)
	assert.Greater(t, d.SatisfyAll(), 0)
}

func TestSatisfyOne(t *testing.T) {
	assert.True(t, fixture.IndependentSet().SatisfyOne())
	assert.True(t, redd.Reduce(fixture.Majority(), redd.BDD).SatisfyOne())
	assert.False(t, redd.False(redd.BDD).SatisfyOne())
	assert.True(t, redd.True(redd.ZDD).SatisfyOne())

	// unsatisfiable tree, still 127 vertices before reduction
	contra := fixture.Tree(6, func([]bool) bool { return false })
	assert.False(t, contra.SatisfyOne())
	assert.Equal(t, 0, contra.SatisfyAll())
}

func TestSatisfyConsistency(t *testing.T) {
	// a diagram has a satisfying path exactly when it has a positive count
	roots := []*redd.Node{
		fixture.IndependentSet(),
		fixture.Kernels(),
		fixture.Majority(),
		fixture.Tree(6, func([]bool) bool { return false }),
		redd.Constant(true),
		redd.Constant(false),
	}
	for _, raw := range roots {
		assert.Equal(t, raw.SatisfyAll() > 0, raw.SatisfyOne())
		for _, rule := range []redd.Rule{redd.BDD, redd.ZDD} {
			d := redd.Reduce(raw, rule)
			assert.Equal(t, d.SatisfyAll() > 0, d.SatisfyOne(), "%s", rule)
		}
	}
}

func TestSatcount(t *testing.T) {
	d := redd.Reduce(fixture.IndependentSet(), redd.BDD)
	assert.Equal(t, int64(18), d.Satcount(6).Int64())
	// majority is true for 011, 101, 110 and 111: four assignments reached
	// by three paths, the 11x path leaving x2 free
	assert.Equal(t, int64(4), redd.Reduce(fixture.Majority(), redd.BDD).Satcount(3).Int64())
	assert.Equal(t, int64(0), redd.False(redd.BDD).Satcount(6).Int64())
	assert.Equal(t, int64(64), redd.True(redd.BDD).Satcount(6).Int64())
	assert.Equal(t, int64(5), redd.Reduce(fixture.Kernels(), redd.BDD).Satcount(6).Int64())
}

func TestAllsat(t *testing.T) {
	d := redd.Reduce(fixture.IndependentSet(), redd.BDD)
	count := 0
	err := d.Allsat(6, func(prof []int) error {
		// expand the don't care entries and check every completion
		free := []int{}
		for i, v := range prof {
			if v < 0 {
				free = append(free, i)
			}
		}
		for m := 0; m < 1<<len(free); m++ {
			a := make([]bool, 6)
			for i, v := range prof {
				a[i] = v == 1
			}
			for i, pos := range free {
				a[pos] = m&(1<<i) != 0
			}
			require.True(t, independent(a), "%v", a)
			count++
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 18, count)
}

func TestAllsatError(t *testing.T) {
	boom := errors.New("stop")
	d := redd.Reduce(fixture.Majority(), redd.BDD)
	err := d.Allsat(3, func([]int) error { return boom })
	assert.ErrorIs(t, err, boom)
}
