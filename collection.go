package ordnung

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ordnung/btree"
)

// Collection stores values of a single type T in comparator order, backed
// by a self-balancing multi-way search tree. Collections are multisets:
// equal values are kept as separate instances.
//
// Collections must be created by one of the constructors. The zero value
// carries no comparator; it answers read operations like an empty
// collection but cannot be added to.
type Collection[T any] struct {
	tree *btree.Tree[T]
}

// New creates an empty collection over T's natural order, with the default
// branching bound.
func New[T cmp.Ordered]() *Collection[T] {
	coll, err := NewWith(0, btree.NaturalOrder[T]())
	assert(err == nil, "New: collection over natural order must construct")
	return coll
}

// NewWith creates an empty collection ordered by compare. degree bounds the
// backing tree's branching: every node except the root holds between
// degree-1 and 2*degree-1 items. A degree of 0 selects btree.DefaultDegree.
// NewWith fails with btree.ErrInvalidConfig for a nil comparator or a
// degree below 2.
func NewWith[T any](degree int, compare btree.CompareFunc[T]) (*Collection[T], error) {
	tree, err := btree.New(btree.Config[T]{Degree: degree, Compare: compare})
	if err != nil {
		return nil, err
	}
	return &Collection[T]{tree: tree}, nil
}

// FromSlice creates a collection over T's natural order holding all of
// values, duplicates included.
func FromSlice[T cmp.Ordered](values []T) *Collection[T] {
	coll := New[T]()
	coll.AddAll(values...)
	return coll
}

// FromSeq creates a collection over T's natural order and fills it from an
// iterator.
func FromSeq[T cmp.Ordered](seq iter.Seq[T]) *Collection[T] {
	coll := New[T]()
	for v := range seq {
		coll.Add(v)
	}
	return coll
}

// unwrap tolerates nil and zero-value collections; the backing tree's
// read operations treat a nil tree as empty.
func (coll *Collection[T]) unwrap() *btree.Tree[T] {
	if coll == nil {
		return nil
	}
	return coll.tree
}

// Add inserts value, keeping the collection sorted.
func (coll *Collection[T]) Add(value T) {
	assert(coll != nil && coll.tree != nil, "collection not initialized, use New")
	coll.tree.Add(value)
}

// AddAll inserts all values.
func (coll *Collection[T]) AddAll(values ...T) {
	for _, v := range values {
		coll.Add(v)
	}
}

// Remove deletes one instance of value and reports whether one was present.
func (coll *Collection[T]) Remove(value T) bool {
	assert(coll != nil && coll.tree != nil, "collection not initialized, use New")
	return coll.tree.Remove(value)
}

// Contains reports whether at least one instance of value is present.
func (coll *Collection[T]) Contains(value T) bool {
	return coll.unwrap().Contains(value)
}

// Len returns the number of items, duplicates counted.
func (coll *Collection[T]) Len() int {
	return coll.unwrap().Len()
}

// IsEmpty reports whether the collection holds no items.
func (coll *Collection[T]) IsEmpty() bool {
	return coll.unwrap().IsEmpty()
}

// Clear discards all items. Order and branching configuration survive.
func (coll *Collection[T]) Clear() {
	assert(coll != nil && coll.tree != nil, "collection not initialized, use New")
	coll.tree.Clear()
}

// All returns an iterator over the items in comparator order. The sequence
// may be ranged over more than once; every use walks the collection anew.
// The collection must not be mutated while a walk is in progress.
func (coll *Collection[T]) All() iter.Seq[T] {
	return coll.unwrap().All()
}

// Each visits all items in comparator order. Iteration stops at the first
// callback error and returns that error to the caller.
func (coll *Collection[T]) Each(f func(item T) error) error {
	var err error
	coll.unwrap().ForEachItem(func(item T) bool {
		err = f(item)
		return err == nil
	})
	return err
}

// CopyTo copies all items, in comparator order, into buf starting at
// offset at. It fails with ErrIndexOutOfBounds when at is negative or the
// room behind at cannot hold all items; buf stays untouched then.
func (coll *Collection[T]) CopyTo(buf []T, at int) error {
	if err := coll.unwrap().CopyInto(buf, at); err != nil {
		return ErrIndexOutOfBounds
	}
	return nil
}

// Values returns all items in comparator order as a freshly allocated
// slice, or nil for an empty collection.
func (coll *Collection[T]) Values() []T {
	n := coll.Len()
	if n == 0 {
		return nil
	}
	buf := make([]T, n)
	err := coll.unwrap().CopyInto(buf, 0)
	assert(err == nil, "Values: fitted buffer cannot overflow")
	return buf
}

// String renders the collection like a slice literal, e.g. "[1 2 7]". This
// may be an expensive operation, as it materializes every item.
func (coll *Collection[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for item := range coll.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", item)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Height returns the number of levels of the backing tree, a diagnostic
// like Levels. An initialized empty collection reports 1, a single leaf;
// the zero-value collection has no tree and reports 0.
func (coll *Collection[T]) Height() int {
	return coll.unwrap().Height()
}

// Levels exposes the backing tree's node layout for diagnostics and
// rendering: one slice per depth, holding each node's items left to right.
func (coll *Collection[T]) Levels() [][][]T {
	return coll.unwrap().Levels()
}
