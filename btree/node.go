package btree

import "slices"

// node is a single tree node. Leaves have no children; an internal node with
// k items has exactly k+1 children. Nodes of one tree share the tree's
// configuration, which is immutable after construction, so a node can
// compare and rebalance without a reference to the owning tree.
type node[T any] struct {
	cfg      *Config[T]
	items    []T
	children []*node[T]
}

func newLeaf[T any](cfg *Config[T]) *node[T] {
	assert(cfg != nil, "node requires a configuration")
	return &node[T]{cfg: cfg}
}

func (n *node[T]) isLeaf() bool {
	return len(n.children) == 0
}

// full reports whether the node holds the maximum of 2t-1 items. Inserts
// split a full child before descending into it.
func (n *node[T]) full() bool {
	return len(n.items) == n.cfg.maxItems()
}

// atMinimum reports whether the node sits at the occupancy floor of t-1
// items. Deletes never descend into a child at the floor; the child is
// topped up by rotation, or merged away, first.
func (n *node[T]) atMinimum() bool {
	return len(n.items) <= n.cfg.minItems()
}

// canDonate reports whether the node may give up one item during a rotation
// without falling below the occupancy floor.
func (n *node[T]) canDonate() bool {
	return len(n.items) > n.cfg.minItems()
}

// search locates the lower bound of value within the node's items: the index
// of the first item that does not sort before value. found is true if the
// item at that index compares equal, so runs of duplicates always report
// their first position.
func (n *node[T]) search(value T) (idx int, found bool) {
	low, high := 0, len(n.items)
	for low < high {
		mid := (low + high) / 2
		if n.cfg.Compare(n.items[mid], value) < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	if low < len(n.items) && n.cfg.Compare(n.items[low], value) == 0 {
		return low, true
	}
	return low, false
}

// contains reports whether value occurs in the subtree rooted at n.
func (n *node[T]) contains(value T) bool {
	idx, found := n.search(value)
	if found {
		return true
	}
	if n.isLeaf() {
		return false
	}
	return n.children[idx].contains(value)
}

// min returns the smallest item of the subtree. ok is false only for an
// empty node, which can occur at the root alone.
func (n *node[T]) min() (item T, ok bool) {
	if n.isLeaf() {
		if len(n.items) == 0 {
			return item, false
		}
		return n.items[0], true
	}
	return n.children[0].min()
}

// max returns the largest item of the subtree. ok is false only for an
// empty node.
func (n *node[T]) max() (item T, ok bool) {
	if n.isLeaf() {
		if len(n.items) == 0 {
			return item, false
		}
		return n.items[len(n.items)-1], true
	}
	return n.children[len(n.children)-1].max()
}

// --- Slice editing ---------------------------------------------------------

// insertAt inserts values into a slice at idx.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	return slices.Insert(src, idx, values...)
}

// removeRange removes the half-open interval [from,to) from a slice.
func removeRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	return slices.Delete(src, from, to)
}

func (n *node[T]) insertItemAt(idx int, value T) {
	n.items = insertAt(n.items, idx, value)
}

func (n *node[T]) removeItemAt(idx int) T {
	assert(idx >= 0 && idx < len(n.items), "removeItemAt index out of range")
	value := n.items[idx]
	n.items = removeRange(n.items, idx, idx+1)
	return value
}

func (n *node[T]) insertChildAt(idx int, child *node[T]) {
	n.children = insertAt(n.children, idx, child)
}

func (n *node[T]) removeChildAt(idx int) *node[T] {
	assert(idx >= 0 && idx < len(n.children), "removeChildAt index out of range")
	child := n.children[idx]
	n.children = removeRange(n.children, idx, idx+1)
	return child
}
