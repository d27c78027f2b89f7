package btree

// Tree is a self-balancing ordered container for items of a single type T.
// Values comparing equal may occur more than once; the tree keeps them in
// one contiguous run. All reachable trees satisfy the occupancy and depth
// invariants checked by Check.
//
// The zero Tree is not usable, construct trees with New. Trees are not safe
// for concurrent use, and mutating a tree during an iteration started on it
// is undefined.
type Tree[T any] struct {
	cfg   *Config[T]
	root  *node[T]
	count int
}

// New creates an empty tree from cfg. A zero Degree selects DefaultDegree;
// the comparator is required.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T]{cfg: &cfg}
	t.root = newLeaf(t.cfg)
	return t, nil
}

// Config returns a copy of the tree's configuration.
func (t *Tree[T]) Config() Config[T] {
	if t == nil || t.cfg == nil {
		return Config[T]{}
	}
	return *t.cfg
}

// Add inserts value, keeping the tree ordered. A value equal to ones
// already present is inserted at the head of their run. Add runs in a
// single top-down pass; a full root grows the tree by one level before the
// descent starts.
func (t *Tree[T]) Add(value T) {
	assert(t != nil && t.root != nil, "tree not initialized, use New")
	if t.root.full() {
		root := &node[T]{cfg: t.cfg, children: []*node[T]{t.root}}
		root.splitChild(0)
		t.root = root
	}
	t.root.add(value)
	t.count++
}

// Remove deletes one instance of value, the first in comparator order, and
// reports whether one was present. A removal that finds nothing leaves the
// item sequence untouched; the node layout may still shift, since
// rebalancing happens on the way down, before absence can be detected. An
// internal root emptied by a merge hands the root role to its only child,
// shrinking the tree by one level.
func (t *Tree[T]) Remove(value T) bool {
	assert(t != nil && t.root != nil, "tree not initialized, use New")
	removed := t.root.remove(value)
	if removed {
		t.count--
	}
	if len(t.root.items) == 0 && !t.root.isLeaf() {
		t.root = t.root.children[0]
	}
	return removed
}

// Contains reports whether at least one item equal to value is present.
func (t *Tree[T]) Contains(value T) bool {
	if t == nil || t.root == nil {
		return false
	}
	return t.root.contains(value)
}

// Len returns the number of items in the tree, duplicates counted.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree holds no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.count == 0
}

// Clear discards all items. The tree shrinks back to a single empty leaf
// and keeps its configuration.
func (t *Tree[T]) Clear() {
	assert(t != nil && t.cfg != nil, "tree not initialized, use New")
	t.root = newLeaf(t.cfg)
	t.count = 0
}

// Height returns the number of node levels. An empty tree consists of a
// single empty leaf and has height 1.
func (t *Tree[T]) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	h := 1
	for n := t.root; !n.isLeaf(); n = n.children[0] {
		h++
	}
	return h
}
