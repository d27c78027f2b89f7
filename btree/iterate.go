package btree

import "iter"

// ForEachItem walks the items in comparator order.
//
// Iteration stops early if the callback returns false.
func (t *Tree[T]) ForEachItem(fn func(item T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.root.forEachItem(fn)
}

// forEachItem interleaves subtrees and separators: child i comes before
// item i, which comes before child i+1.
func (n *node[T]) forEachItem(fn func(item T) bool) bool {
	assert(n != nil, "forEachItem called with nil node")
	if n.isLeaf() {
		for _, item := range n.items {
			if !fn(item) {
				return false
			}
		}
		return true
	}
	for i, child := range n.children {
		if !child.forEachItem(fn) {
			return false
		}
		if i < len(n.items) && !fn(n.items[i]) {
			return false
		}
	}
	return true
}

// All returns an iterator over the items in comparator order. The sequence
// may be ranged over more than once; every use walks the tree anew. The
// tree must not be mutated while a walk is in progress.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEachItem(yield)
	}
}

// CopyInto copies all items, in comparator order, into buf starting at
// offset at. It fails with ErrIndexOutOfBounds when at is negative or buf
// has no room for all items behind at; buf stays untouched then.
func (t *Tree[T]) CopyInto(buf []T, at int) error {
	if at < 0 || len(buf)-at < t.Len() {
		return ErrIndexOutOfBounds
	}
	i := at
	t.ForEachItem(func(item T) bool {
		buf[i] = item
		i++
		return true
	})
	return nil
}

// Levels returns the node layout as a level-order snapshot: one slice per
// depth holding each node's items, left to right. The item slices are
// copies. Levels serves tests and tree rendering.
func (t *Tree[T]) Levels() [][][]T {
	if t == nil || t.root == nil {
		return nil
	}
	var levels [][][]T
	t.root.collectLevel(0, &levels)
	return levels
}

func (n *node[T]) collectLevel(depth int, levels *[][][]T) {
	if len(*levels) == depth {
		*levels = append(*levels, nil)
	}
	(*levels)[depth] = append((*levels)[depth], append([]T(nil), n.items...))
	for _, child := range n.children {
		child.collectLevel(depth+1, levels)
	}
}

// EachNode visits every node in preorder, passing the node's preorder id,
// the id of its parent (-1 for the root), its depth, and its items. The
// walk stops early if the callback returns false. The items slice is the
// node's own and must not be retained or modified.
func (t *Tree[T]) EachNode(fn func(id, parent, depth int, items []T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	next := 0
	t.root.eachNode(-1, 0, &next, fn)
}

func (n *node[T]) eachNode(parent, depth int, next *int, fn func(id, parent, depth int, items []T) bool) bool {
	id := *next
	*next = id + 1
	if !fn(id, parent, depth, n.items) {
		return false
	}
	for _, child := range n.children {
		if !child.eachNode(id, depth+1, next, fn) {
			return false
		}
	}
	return true
}
