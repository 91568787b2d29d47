// Copyright (c) 2026 the redd authors
//
// MIT License

package redd

// indexer is the transient bidirectional mapping between nodes and small
// integer identifiers used by Reduce, Apply and Compose. Identifiers 0 and 1
// are pinned to the false and true constants, every other reachable vertex
// gets an identifier starting from 2, in discovery order. An indexer is built
// fresh for each operation and thrown away with it; identifiers have no
// meaning outside the call that allocated them.
type indexer struct {
	ids  map[*Node]int // node -> id; constants are resolved by value, not here
	node map[int]*Node // id -> node; only constants and canonical vertices
	next int
}

func newIndexer(roots ...*Node) *indexer {
	ix := &indexer{
		ids:  make(map[*Node]int),
		node: make(map[int]*Node),
		next: 2,
	}
	ix.node[0] = Constant(false)
	ix.node[1] = Constant(true)
	for _, r := range roots {
		ix.walk(r)
	}
	return ix
}

func (ix *indexer) walk(n *Node) {
	if n.low == nil {
		return
	}
	if _, ok := ix.ids[n]; ok {
		return
	}
	ix.ids[n] = ix.next
	ix.next++
	ix.walk(n.low)
	ix.walk(n.high)
}

// id returns the identifier of n. Distinct constant objects share the ids 0
// and 1, which is how the algorithms normalize the terminals to id-based
// identity.
func (ix *indexer) id(n *Node) int {
	if n.low == nil {
		if n.value {
			return 1
		}
		return 0
	}
	return ix.ids[n]
}

// setID reassigns the identifier of a raw vertex, typically to the canonical
// id chosen for it during a reduction.
func (ix *indexer) setID(n *Node, id int) {
	ix.ids[n] = id
}

// register allocates the next identifier for a freshly materialized canonical
// vertex and records it in both directions.
func (ix *indexer) register(n *Node) int {
	id := ix.next
	ix.next++
	ix.ids[n] = id
	ix.node[id] = n
	return id
}

// at returns the canonical node registered under id.
func (ix *indexer) at(id int) *Node {
	return ix.node[id]
}

// terminal returns this indexer's shared constant node for v.
func (ix *indexer) terminal(v bool) *Node {
	if v {
		return ix.node[1]
	}
	return ix.node[0]
}
