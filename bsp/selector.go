// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/chewxy/math32"

	"polybsp/geom"
)

// Selector picks the item whose plane splits the current set. Select is
// only called with a non empty slice and must return an index into it.
type Selector[T geom.Cuttable[T]] interface {
	Select(items []T) int
}

// FirstPolygon always picks the first item. Cheap, but the tree quality
// depends entirely on the input order.
type FirstPolygon[T geom.Cuttable[T]] struct{}

func (FirstPolygon[T]) Select(items []T) int {
	return 0
}

// Balanced tries the plane of each candidate against the whole set and
// picks the one with the lowest cost
//
//	BalanceWeight*|front-back| + SplitWeight*spanning
//
// Ties go to the earliest candidate. With SampleSize > 0 only about
// SampleSize candidates, taken at an even stride, are tried.
type Balanced[T geom.Cuttable[T]] struct {
	SplitWeight   float32
	BalanceWeight float32
	SampleSize    int
}

func (b Balanced[T]) Select(items []T) int {
	stride := 1
	if b.SampleSize > 0 && len(items) > b.SampleSize {
		stride = (len(items) + b.SampleSize - 1) / b.SampleSize
	}
	best := 0
	bestCost := float32(math32.MaxFloat32)
	for i := 0; i < len(items); i += stride {
		cost, ok := b.cost(items, i, bestCost)
		if ok && cost < bestCost {
			best, bestCost = i, cost
		}
	}
	return best
}

// cost evaluates candidate i. It gives up once the split cost alone
// exceeds limit.
func (b Balanced[T]) cost(items []T, i int, limit float32) (float32, bool) {
	pl := items[i].Plane()
	front, back, spanning := 0, 0, 0
	for j, it := range items {
		if j == i {
			continue
		}
		switch it.Classify(pl) {
		case geom.InFront:
			front++
		case geom.Behind:
			back++
		case geom.Spanning:
			spanning++
			if b.SplitWeight*float32(spanning) > limit {
				return 0, false
			}
		}
	}
	diff := front - back
	if diff < 0 {
		diff = -diff
	}
	return b.BalanceWeight*float32(diff) + b.SplitWeight*float32(spanning), true
}
