// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"iter"

	"polybsp/geom"
)

// TraverseBackToFront calls v for every stored item, farthest from eye
// first. An item that occludes another from eye is visited after it.
func (t *Tree[T]) TraverseBackToFront(eye geom.Point, v Visitor[T]) {
	for it := range t.BackToFront(eye) {
		v.Visit(it)
	}
}

// TraverseFrontToBack visits in exactly the reverse order of
// TraverseBackToFront.
func (t *Tree[T]) TraverseFrontToBack(eye geom.Point, v Visitor[T]) {
	for it := range t.FrontToBack(eye) {
		v.Visit(it)
	}
}

// BackToFront returns the back to front order as a sequence. Every range
// over it starts a new traversal.
func (t *Tree[T]) BackToFront(eye geom.Point) iter.Seq[T] {
	root := t.Root()
	return func(yield func(T) bool) {
		seqBackToFront(root, eye, yield)
	}
}

func (t *Tree[T]) FrontToBack(eye geom.Point) iter.Seq[T] {
	root := t.Root()
	return func(yield func(T) bool) {
		seqFrontToBack(root, eye, yield)
	}
}

// eyeInFront decides which half the eye is in. An eye on the plane counts
// as in front.
func eyeInFront(pl geom.Plane, eye geom.Point) bool {
	return pl.ClassifyPoint(eye) != geom.Back
}

// farNear returns the subtree farther from the eye, the one closer to it
// and the node's items facing away from the eye and towards it.
func (n *Node[T]) farNear(eye geom.Point) (far, near *Node[T], away, facing []T) {
	if eyeInFront(n.plane, eye) {
		return n.back, n.front, n.coplanarBack, n.coplanarFront
	}
	return n.front, n.back, n.coplanarFront, n.coplanarBack
}

// seqBackToFront and seqFrontToBack return false once yield asked to stop.
func seqBackToFront[T geom.Cuttable[T]](n *Node[T], eye geom.Point, yield func(T) bool) bool {
	if n == nil {
		return true
	}
	far, near, away, facing := n.farNear(eye)
	if !seqBackToFront(far, eye, yield) {
		return false
	}
	for _, it := range away {
		if !yield(it) {
			return false
		}
	}
	for _, it := range facing {
		if !yield(it) {
			return false
		}
	}
	return seqBackToFront(near, eye, yield)
}

func seqFrontToBack[T geom.Cuttable[T]](n *Node[T], eye geom.Point, yield func(T) bool) bool {
	if n == nil {
		return true
	}
	far, near, away, facing := n.farNear(eye)
	if !seqFrontToBack(near, eye, yield) {
		return false
	}
	for i := len(facing) - 1; i >= 0; i-- {
		if !yield(facing[i]) {
			return false
		}
	}
	for i := len(away) - 1; i >= 0; i-- {
		if !yield(away[i]) {
			return false
		}
	}
	return seqFrontToBack(far, eye, yield)
}
