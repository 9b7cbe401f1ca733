// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import "polybsp/geom"

const (
	DefaultSplitWeight   = 8
	DefaultBalanceWeight = 1
	DefaultMaxDepth      = 4096
	DefaultParallelMin   = 256
)

// Options control tree construction.
type Options[T geom.Cuttable[T]] struct {
	// Selector picks the splitting plane of every node. nil means the
	// default Balanced selector.
	Selector Selector[T]
	// MaxDepth aborts construction with ErrDepthExceeded when a branch
	// grows deeper.
	MaxDepth int
	// ParallelMin is the minimum size both halves of a partition need
	// to get built concurrently. 0 builds everything on the calling
	// goroutine.
	ParallelMin int
}

func DefaultOptions[T geom.Cuttable[T]]() Options[T] {
	return Options[T]{
		Selector: Balanced[T]{
			SplitWeight:   DefaultSplitWeight,
			BalanceWeight: DefaultBalanceWeight,
		},
		MaxDepth:    DefaultMaxDepth,
		ParallelMin: DefaultParallelMin,
	}
}

func (o Options[T]) withDefaults() Options[T] {
	d := DefaultOptions[T]()
	if o.Selector == nil {
		o.Selector = d.Selector
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = d.MaxDepth
	}
	if o.ParallelMin < 0 {
		o.ParallelMin = 0
	}
	return o
}
