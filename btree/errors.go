package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrIndexOutOfBounds signals a copy destination too small for the tree's items.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
)
