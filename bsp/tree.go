// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import "polybsp/geom"

// Tree is an immutable BSP tree. The zero value is an empty tree.
// All methods are safe for concurrent use.
type Tree[T geom.Cuttable[T]] struct {
	root  *Node[T]
	stats Stats
}

func (t *Tree[T]) Empty() bool {
	return t == nil || t.root == nil
}

// Root returns the root node or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// PolygonCount returns the number of items stored in the tree, fragments
// included.
func (t *Tree[T]) PolygonCount() int {
	return t.Root().PolygonCount()
}

func (t *Tree[T]) Depth() int {
	return t.Root().Depth()
}

// Polygons returns every stored item in no particular order.
func (t *Tree[T]) Polygons() []T {
	r := make([]T, 0, t.PolygonCount())
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		r = append(r, n.coplanarFront...)
		r = append(r, n.coplanarBack...)
		walk(n.front)
		walk(n.back)
	}
	walk(t.Root())
	return r
}

func (t *Tree[T]) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	return t.stats
}
