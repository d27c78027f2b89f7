package btree

import "fmt"

// Check validates the structural invariants of the tree: occupancy bounds
// on every node, the child-count rule for internal nodes, uniform leaf
// depth, item order, and agreement between the walked item total and Len.
//
// This checker is intentionally strict and meant to be called from tests
// after every mutation.
func (t *Tree[T]) Check() error {
	if t == nil || t.cfg == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidConfig)
	}
	items, _, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if items != t.count {
		return fmt.Errorf("%w: item count drift (walked %d, counted %d)", ErrInvalidConfig, items, t.count)
	}
	// The per-node checks do not relate separators to their subtrees; the
	// full in-order walk does: it must come out non-decreasing.
	ordered := true
	var prev T
	first := true
	t.ForEachItem(func(item T) bool {
		if !first && t.cfg.Compare(prev, item) > 0 {
			ordered = false
			return false
		}
		prev, first = item, false
		return true
	})
	if !ordered {
		return fmt.Errorf("%w: traversal out of order", ErrInvalidConfig)
	}
	return nil
}

func (t *Tree[T]) checkNode(n *node[T], isRoot bool) (items int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvalidConfig)
	}
	if !isRoot && len(n.items) < t.cfg.minItems() {
		return 0, 0, fmt.Errorf("%w: node below occupancy floor (%d items, floor %d)",
			ErrInvalidConfig, len(n.items), t.cfg.minItems())
	}
	if len(n.items) > t.cfg.maxItems() {
		return 0, 0, fmt.Errorf("%w: node above occupancy cap (%d items, cap %d)",
			ErrInvalidConfig, len(n.items), t.cfg.maxItems())
	}
	for i := 1; i < len(n.items); i++ {
		if t.cfg.Compare(n.items[i-1], n.items[i]) > 0 {
			return 0, 0, fmt.Errorf("%w: items out of order within a node", ErrInvalidConfig)
		}
	}
	if n.isLeaf() {
		return len(n.items), 1, nil
	}
	if len(n.children) != len(n.items)+1 {
		return 0, 0, fmt.Errorf("%w: internal node with %d items and %d children",
			ErrInvalidConfig, len(n.items), len(n.children))
	}
	total := len(n.items)
	var childHeight int
	for i, child := range n.children {
		cItems, cHeight, cErr := t.checkNode(child, false)
		if cErr != nil {
			return 0, 0, cErr
		}
		total += cItems
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvalidConfig)
		}
	}
	return total, childHeight + 1, nil
}
