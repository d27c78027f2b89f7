package btree

// remove deletes the first item comparing equal to value from the subtree
// rooted at n and reports whether one was found. Rebalancing happens on the
// way down: a child at the occupancy floor is topped up by rotation, or
// widened by a merge, before the removal descends into it, so nodes never
// underflow and no backtracking is needed.
func (n *node[T]) remove(value T) bool {
	idx, found := n.search(value)
	if n.isLeaf() {
		if !found {
			return false
		}
		n.removeItemAt(idx)
		return true
	}
	if found {
		return n.removeSeparator(idx)
	}
	return n.removeFromChild(idx, value)
}

// removeSeparator deletes the item at idx of an internal node. A separator
// cannot simply be plucked out, it divides two subtrees, so it is replaced
// by its in-order predecessor or successor when the defining child can
// donate one, and otherwise removed after both children have been folded
// into a single node.
func (n *node[T]) removeSeparator(idx int) bool {
	left, right := n.children[idx], n.children[idx+1]
	if left.canDonate() {
		pred, ok := left.max()
		assert(ok, "internal node with an empty subtree")
		n.items[idx] = pred
		return left.remove(pred)
	}
	if right.canDonate() {
		succ, ok := right.min()
		assert(ok, "internal node with an empty subtree")
		n.items[idx] = succ
		return right.remove(succ)
	}
	value := n.items[idx]
	n.mergeChildren(idx)
	return n.children[idx].remove(value)
}

// removeFromChild continues the removal in the child at idx, rebalancing
// first if the child sits at the occupancy floor: borrow from the right
// sibling when it can donate, from the left sibling otherwise, and merge
// when neither can. Merging prefers the right sibling and falls back to the
// left one when idx is the rightmost child.
func (n *node[T]) removeFromChild(idx int, value T) bool {
	if n.children[idx].atMinimum() {
		switch {
		case idx+1 < len(n.children) && n.children[idx+1].canDonate():
			n.rotateLeft(idx)
		case idx > 0 && n.children[idx-1].canDonate():
			n.rotateRight(idx - 1)
		case idx+1 < len(n.children):
			n.mergeChildren(idx)
		default:
			idx--
			n.mergeChildren(idx)
		}
	}
	return n.children[idx].remove(value)
}

// rotateLeft moves the separator at idx down into the child at idx and the
// right sibling's first item up into the separator slot. For internal
// children the sibling's first child crosses over as well.
func (n *node[T]) rotateLeft(idx int) {
	child, sibling := n.children[idx], n.children[idx+1]
	assert(sibling.canDonate(), "rotation from a sibling at the occupancy floor")
	child.items = append(child.items, n.items[idx])
	n.items[idx] = sibling.removeItemAt(0)
	if !sibling.isLeaf() {
		child.children = append(child.children, sibling.removeChildAt(0))
	}
}

// rotateRight mirrors rotateLeft: the separator at idx descends into the
// child at idx+1 and the left sibling's last item ascends.
func (n *node[T]) rotateRight(idx int) {
	sibling, child := n.children[idx], n.children[idx+1]
	assert(sibling.canDonate(), "rotation from a sibling at the occupancy floor")
	child.insertItemAt(0, n.items[idx])
	n.items[idx] = sibling.removeItemAt(len(sibling.items) - 1)
	if !sibling.isLeaf() {
		child.insertChildAt(0, sibling.removeChildAt(len(sibling.children)-1))
	}
}

// mergeChildren folds the separator at idx and the child at idx+1 into the
// child at idx. Both children sit at the occupancy floor when this is
// called, so the merged node holds exactly 2t-1 items.
func (n *node[T]) mergeChildren(idx int) {
	left, right := n.children[idx], n.children[idx+1]
	assert(!left.canDonate() && !right.canDonate(), "merge of children above the occupancy floor")
	left.items = append(left.items, n.removeItemAt(idx))
	left.items = append(left.items, right.items...)
	left.children = append(left.children, right.children...)
	n.removeChildAt(idx + 1)
}
