package btree

// add inserts value into the subtree rooted at n, which must not be full:
// the caller (the tree for the root, the parent node otherwise) splits
// beforehand, so the insert runs top-down in a single pass.
func (n *node[T]) add(value T) {
	assert(!n.full(), "add called on a full node")
	idx, _ := n.search(value)
	if n.isLeaf() {
		n.insertItemAt(idx, value)
		return
	}
	if n.children[idx].full() {
		n.splitChild(idx)
		// The promoted median now sits at idx. Values greater than it belong
		// to the new right sibling; equal values descend left, consistent
		// with the lower-bound search.
		if n.cfg.Compare(value, n.items[idx]) > 0 {
			idx++
		}
	}
	n.children[idx].add(value)
}

// splitChild splits the full child at childIdx and receives its promoted
// median: the median enters n.items at childIdx, the child's new right
// sibling enters n.children at childIdx+1. The parent must have room, which
// the top-down insert guarantees.
func (n *node[T]) splitChild(childIdx int) {
	assert(!n.full(), "splitChild called on a full parent")
	median, sibling := n.children[childIdx].split()
	n.insertItemAt(childIdx, median)
	n.insertChildAt(childIdx+1, sibling)
}

// split halves a full node. The median at index t-1 is returned for
// promotion into the parent, the items right of it move to a newly created
// right sibling, and for an internal node the upper t children follow. The
// receiver keeps the lower t-1 items. Splitting a non-full node is a
// contract violation.
func (n *node[T]) split() (median T, sibling *node[T]) {
	assert(n.full(), "split called on a non-full node")
	t := n.cfg.Degree
	median = n.items[t-1]
	sibling = &node[T]{cfg: n.cfg}
	sibling.items = append([]T(nil), n.items[t:]...)
	n.items = removeRange(n.items, t-1, len(n.items))
	if !n.isLeaf() {
		sibling.children = append([]*node[T](nil), n.children[t:]...)
		n.children = removeRange(n.children, t, len(n.children))
	}
	return median, sibling
}
