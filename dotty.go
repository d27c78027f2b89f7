package ordnung

import (
	"fmt"
	"io"
	"strings"
)

var dotEscaper = strings.NewReplacer(`"`, `\"`, `\`, `\\`)

// ToDot outputs the internal structure of a Collection in Graphviz DOT
// format (for debugging purposes). Every tree node becomes one box listing
// the node's items; edges connect nodes to their children.
func (coll *Collection[T]) ToDot(w io.Writer) error {
	type dotNode struct {
		id    int
		label string
	}
	var nodes []dotNode
	edgelist := ""
	hasChildren := make(map[int]bool)
	coll.unwrap().EachNode(func(id, parent, depth int, items []T) bool {
		labels := make([]string, len(items))
		for i, item := range items {
			labels[i] = dotEscaper.Replace(fmt.Sprintf("%v", item))
		}
		nodes = append(nodes, dotNode{id: id, label: strings.Join(labels, " | ")})
		if parent >= 0 {
			hasChildren[parent] = true
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", parent, id)
		}
		return true
	})
	nodelist := ""
	for _, n := range nodes {
		styles := ",style=filled,shape=box,fillcolor=white"
		if hasChildren[n.id] {
			styles = ",style=filled,shape=box,fillcolor=\"#a3d7e4\""
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", n.id, n.label, styles)
	}
	var err error
	for _, block := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist,
		edgelist,
		"}\n",
	} {
		if _, err = io.WriteString(w, block); err != nil {
			tracer().Errorf("collection DOT: %s", err.Error())
			return err
		}
	}
	return nil
}
