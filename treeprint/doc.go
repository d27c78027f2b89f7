/*
Package treeprint renders the node layout of sorted collections on terminals
and other writers.

Output is one tree level per line, optionally colored by depth. It is meant
for diagnostics and for teaching, not for serialization; see the ToDot
method of collections for a graphviz rendering.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package treeprint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordnung'
func tracer() tracing.Trace {
	return tracing.Select("ordnung")
}
