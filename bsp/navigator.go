// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"iter"
	"strings"

	"polybsp/geom"
)

// Step is one move from a node to one of its children.
type Step int

const (
	StepFront Step = iota
	StepBack
)

func (s Step) String() string {
	if s == StepFront {
		return "F"
	}
	return "B"
}

// Navigator walks a tree one node at a time, e.g. to inspect a single
// subtree. It never changes the tree. A Navigator is not safe for
// concurrent use, but any number of them may share a tree.
type Navigator[T geom.Cuttable[T]] struct {
	tree  *Tree[T]
	path  []Step
	nodes []*Node[T] // nodes[0] is the root, nodes[len(path)] the current node
}

// NewNavigator starts at the root of t.
func NewNavigator[T geom.Cuttable[T]](t *Tree[T]) *Navigator[T] {
	n := &Navigator[T]{tree: t}
	n.GoRoot()
	return n
}

// Current returns the node the navigator points at, nil for an empty tree.
func (n *Navigator[T]) Current() *Node[T] {
	if len(n.nodes) == 0 {
		return nil
	}
	return n.nodes[len(n.nodes)-1]
}

// GoFront moves into the front child. It reports false and stays put if
// there is none.
func (n *Navigator[T]) GoFront() bool {
	return n.step(StepFront)
}

// GoBack moves into the back child. It reports false and stays put if
// there is none.
func (n *Navigator[T]) GoBack() bool {
	return n.step(StepBack)
}

func (n *Navigator[T]) step(s Step) bool {
	cur := n.Current()
	if cur == nil {
		return false
	}
	next := cur.front
	if s == StepBack {
		next = cur.back
	}
	if next == nil {
		return false
	}
	n.path = append(n.path, s)
	n.nodes = append(n.nodes, next)
	return true
}

// GoParent moves one level up. It reports false at the root.
func (n *Navigator[T]) GoParent() bool {
	if len(n.path) == 0 {
		return false
	}
	n.path = n.path[:len(n.path)-1]
	n.nodes = n.nodes[:len(n.nodes)-1]
	return true
}

func (n *Navigator[T]) GoRoot() {
	n.path = n.path[:0]
	n.nodes = n.nodes[:0]
	if r := n.tree.Root(); r != nil {
		n.nodes = append(n.nodes, r)
	}
}

// Path returns the steps taken from the root to the current node.
func (n *Navigator[T]) Path() []Step {
	return append([]Step(nil), n.path...)
}

// Depth is the number of steps below the root.
func (n *Navigator[T]) Depth() int {
	return len(n.path)
}

func (n *Navigator[T]) String() string {
	if len(n.path) == 0 {
		return "root"
	}
	s := make([]string, len(n.path))
	for i, p := range n.path {
		s[i] = p.String()
	}
	return strings.Join(s, " -> ")
}

// BackToFront orders the items of the current subtree only.
func (n *Navigator[T]) BackToFront(eye geom.Point) iter.Seq[T] {
	cur := n.Current()
	return func(yield func(T) bool) {
		seqBackToFront(cur, eye, yield)
	}
}

// TraverseBackToFront is the visitor form of BackToFront.
func (n *Navigator[T]) TraverseBackToFront(eye geom.Point, v Visitor[T]) {
	for it := range n.BackToFront(eye) {
		v.Visit(it)
	}
}
