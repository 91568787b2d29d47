// Copyright (c) 2026 the redd authors
//
// MIT License

package redd

import "sort"

// Reduce canonicalizes the tree rooted at root under the given rule. The
// result represents the same Boolean function (for BDD) or the same family of
// sets (for ZDD), contains no two distinct vertices with the same
// sub-function, and contains no vertex violating the elimination rule.
//
// The pass works bottom-up, one level at a time from the deepest variable to
// the root, so that the branches of a vertex always carry canonical ids
// before the vertex itself is examined. Within a level, vertices are staged
// under the key (id(low), id(high)) and merged by sorting the staged keys:
// runs of equal keys share one materialized vertex and one id.
func Reduce(root *Node, rule Rule) Diagram {
	ix := newIndexer(root)

	// Put each decision vertex on the list of its level.
	vlist := make(map[int][]*Node)
	for _, n := range root.AllNodes() {
		if n.low != nil {
			vlist[n.level] = append(vlist[n.level], n)
		}
	}
	levels := make([]int, 0, len(vlist))
	for level := range vlist {
		levels = append(levels, level)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))

	type staged struct {
		key [2]int
		n   *Node
	}
	for _, level := range levels {
		q := make([]staged, 0, len(vlist[level]))
		for _, n := range vlist[level] {
			low, high := ix.id(n.low), ix.id(n.high)
			if redundant(rule, low, high) {
				ix.setID(n, low)
				continue
			}
			q = append(q, staged{key: [2]int{low, high}, n: n})
		}
		sort.Slice(q, func(i, j int) bool {
			if q[i].key[0] != q[j].key[0] {
				return q[i].key[0] < q[j].key[0]
			}
			return q[i].key[1] < q[j].key[1]
		})
		cur := -1
		var old [2]int
		for _, s := range q {
			if cur >= 0 && s.key == old {
				// same branches as the previous vertex: share its id
				ix.setID(s.n, cur)
				continue
			}
			nn := Decision(s.n.level, ix.at(s.key[0]), ix.at(s.key[1]))
			cur = ix.register(nn)
			ix.setID(s.n, cur)
			old = s.key
		}
	}
	return Diagram{root: ix.at(ix.id(root)), rule: rule}
}

// redundant reports whether a vertex with the given canonical branch ids is
// eliminated by the rule. Its replacement is always the low branch.
func redundant(rule Rule, low, high int) bool {
	if rule == ZDD {
		return high == 0
	}
	return low == high
}
