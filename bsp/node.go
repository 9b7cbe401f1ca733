// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"polybsp/geom"
	"polybsp/math/vec"
)

// Node splits space with its plane. Items lying in the plane are stored
// at the node, split by facing; everything else lives in the children.
type Node[T geom.Cuttable[T]] struct {
	plane geom.Plane
	// coplanarFront face the same way as plane, coplanarBack the other way.
	coplanarFront []T
	coplanarBack  []T
	front         *Node[T]
	back          *Node[T]
	// count of items in the whole subtree
	count int
}

func (n *Node[T]) Plane() geom.Plane {
	return n.plane
}

func (n *Node[T]) CoplanarFront() []T {
	return n.coplanarFront
}

func (n *Node[T]) CoplanarBack() []T {
	return n.coplanarBack
}

// Coplanar returns all items stored at this node, front facing first.
func (n *Node[T]) Coplanar() []T {
	r := make([]T, 0, len(n.coplanarFront)+len(n.coplanarBack))
	r = append(r, n.coplanarFront...)
	return append(r, n.coplanarBack...)
}

// Front returns the subtree in front of the plane, nil if there is none.
func (n *Node[T]) Front() *Node[T] {
	return n.front
}

// Back returns the subtree behind the plane, nil if there is none.
func (n *Node[T]) Back() *Node[T] {
	return n.back
}

func (n *Node[T]) IsLeaf() bool {
	return n.front == nil && n.back == nil
}

// PolygonCount returns the number of items in the subtree rooted at n.
func (n *Node[T]) PolygonCount() int {
	if n == nil {
		return 0
	}
	return n.count
}

// Depth returns the height of the subtree, 1 for a leaf and 0 for nil.
func (n *Node[T]) Depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.front.Depth(), n.back.Depth())
}

func (n *Node[T]) add(it T) {
	if vec.Dot(it.Plane().Normal, n.plane.Normal) > 0 {
		n.coplanarFront = append(n.coplanarFront, it)
	} else {
		n.coplanarBack = append(n.coplanarBack, it)
	}
}

func (n *Node[T]) coplanarCount() int {
	return len(n.coplanarFront) + len(n.coplanarBack)
}
