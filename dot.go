// Copyright (c) 2026 the redd authors
//
// MIT License

package redd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// WriteDot writes a graph-like description of the diagram in Graphviz's DOT
// format to w. The two constants are always present, drawn as filled boxes
// with ids 0 and 1; every decision vertex is labeled with its variable. When
// the two branches of a vertex coincide we draw a single thick edge,
// otherwise the low branch is the dotted red edge and the high branch the
// solid blue one. A write failure on w is returned as is.
func (d Diagram) WriteDot(w io.Writer) error {
	return d.root.WriteDot(w)
}

// WriteDot writes the graph reachable from n in Graphviz's DOT format. See
// Diagram.WriteDot.
func (n *Node) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	ix := newIndexer(n)
	nodes := n.AllNodes()
	fmt.Fprintln(bw, "digraph redd {")
	fmt.Fprintln(bw, "  fontname=\"Helvetica,Arial,sans-serif\"")
	fmt.Fprintln(bw, "  node [fontname=\"Helvetica,Arial,sans-serif\"]")
	fmt.Fprintln(bw, "  0 [style=filled, fillcolor=\"gray80\", label=\"false\", shape=box];")
	fmt.Fprintln(bw, "  1 [style=filled, fillcolor=\"gray95\", label=\"true\", shape=box];")
	for _, v := range nodes {
		if v.low != nil {
			fmt.Fprintf(bw, "  %d [label=\"%d\"];\n", ix.id(v), v.level)
		}
	}
	for _, v := range nodes {
		if v.low == nil {
			continue
		}
		i := ix.id(v)
		j := ix.id(v.low)
		k := ix.id(v.high)
		if j == k {
			fmt.Fprintf(bw, "  %d -> %d [color=black, penwidth=2];\n", i, j)
		} else {
			fmt.Fprintf(bw, "  %d -> %d [color=red, style=dotted];\n", i, j)
			fmt.Fprintf(bw, "  %d -> %d [color=blue];\n", i, k)
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// PrintDot writes the DOT description of the diagram on the standard output.
func (d Diagram) PrintDot() error {
	return d.WriteDot(os.Stdout)
}

// FPrintDot writes the DOT description of the diagram to the named file,
// created or truncated as needed. The name "-" stands for the standard
// output.
func (d Diagram) FPrintDot(filename string) error {
	if filename == "-" {
		return d.WriteDot(os.Stdout)
	}
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := d.WriteDot(out); err != nil {
		return err
	}
	return out.Close()
}

// Print writes a plain textual listing of the diagram to w, one line per
// decision vertex in the form "id [level] ? low : high". Constant roots are
// printed as True or False.
func (d Diagram) Print(w io.Writer) error {
	if v, ok := d.root.Terminal(); ok {
		if v {
			_, err := fmt.Fprintln(w, "True")
			return err
		}
		_, err := fmt.Fprintln(w, "False")
		return err
	}
	ix := newIndexer(d.root)
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "root: %d\n", ix.id(d.root))
	for _, v := range d.root.AllNodes() {
		if v.low != nil {
			fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", ix.id(v), v.level, ix.id(v.low), ix.id(v.high))
		}
	}
	return tw.Flush()
}
