package btree

import (
	"cmp"
	"fmt"
)

// DefaultDegree is the minimum degree used when a configuration leaves
// Degree unset. Nodes then hold between 5 and 11 items.
const DefaultDegree = 6

// CompareFunc is a total order on T. It returns a negative number if a sorts
// before b, zero if the two are equal, and a positive number otherwise.
type CompareFunc[T any] func(a, b T) int

// NaturalOrder returns the comparator induced by the < operator.
func NaturalOrder[T cmp.Ordered]() CompareFunc[T] {
	return cmp.Compare[T]
}

// Config configures a tree: its minimum degree and the order of its items.
type Config[T any] struct {
	// Degree is the minimum degree t of the tree. Every node except the root
	// holds between t-1 and 2t-1 items. Zero selects DefaultDegree.
	Degree int
	// Compare defines the item order. Items comparing equal are kept as
	// duplicates.
	Compare CompareFunc[T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.Degree < 2 {
		return fmt.Errorf("%w: minimum degree must be at least 2, is %d", ErrInvalidConfig, cfg.Degree)
	}
	return nil
}

// maxItems is the capacity bound 2t-1. A node at maxItems is full and will
// be split before an insert descends into it.
func (cfg *Config[T]) maxItems() int {
	return 2*cfg.Degree - 1
}

// minItems is the occupancy floor t-1 for every node except the root.
func (cfg *Config[T]) minItems() int {
	return cfg.Degree - 1
}
