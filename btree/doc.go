/*
Package btree implements the balanced multi-way search tree backing ordered
collections (package ordnung).

The package is a value container, not a key/value map. Trees hold items of a
single client type T, kept in comparator order, with duplicates allowed. All
mutating operations work top-down in a single pass: inserts split full nodes
on the way down, deletes rebalance under-filled children before descending
into them, so no backtracking or parent pointers are needed.

Nodes obey the classical occupancy bounds for a minimum degree t: every node
except the root holds between t-1 and 2t-1 items, and an internal node with k
items has exactly k+1 children. All leaves sit at the same depth. The Check
method validates these invariants and is used heavily by the tests.

Trees are not safe for concurrent use. Clients that share a tree across
goroutines must serialize access themselves.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
