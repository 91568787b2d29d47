// Copyright (c) 2026 the redd authors
//
// MIT License

/*
Package redd implements Binary Decision Diagrams (BDD) and Zero-suppressed
Decision Diagrams (ZDD), two canonical, shared-DAG representations for Boolean
functions over a fixed, totally ordered set of variables.

# Basics

A function is first described as a raw decision tree built from two kinds of
vertices: constants (see Constant) and decisions (see Decision). A decision
vertex carries a variable index, called its level, together with a low branch
(the value of the function when the variable is false) and a high branch (its
value when the variable is true). Raw trees may contain duplicated subgraphs
and redundant vertices; they are compacted into a canonical Diagram with
Reduce, which merges isomorphic subgraphs and eliminates the vertices
forbidden by the chosen reduction rule (see Rule).

Levels must strictly increase along every branch of a tree, from the root down
to the constants. All the algorithms in this package rely on this ordering and
on the fact that vertices are never mutated after construction.

Canonical diagrams can be combined with Apply, which computes op(A, B) for any
of the binary operators in Operator, and with Compose, which substitutes a
function for one of the variables of another. Both operations use memoized
recursive descent over pairs (respectively triples) of vertices, so their cost
is polynomial in the size of the operand diagrams rather than exponential in
the number of variables.

# Node identity

Equality between vertices is reference equality. Two independently built
vertices with the same contents are distinct until Reduce unifies them into a
single shared vertex; after that, "same subgraph" is a pointer comparison.
Node identifiers used internally by the algorithms are ephemeral: each call to
Reduce, Apply or Compose builds its own indexer and discards it on return.
There is no process-wide table of nodes, so reductions performed in separate
calls never share vertices.

# Memory management

The library is written in pure Go with no unsafe code. Vertices are shared by
ordinary pointers and reclaimed by the Go runtime when the last diagram that
reaches them is dropped. No explicit free operation exists, and none is
needed.
*/
package redd
