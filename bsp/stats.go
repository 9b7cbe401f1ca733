// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import "fmt"

// Stats describe the shape of a built tree.
type Stats struct {
	Input    int // items passed to Build
	Polygons int // items stored, Input + Splits
	Nodes    int
	Leaves   int
	Depth    int
	Splits   int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d polygons (%d input, %d splits) in %d nodes, %d leaves, depth %d",
		s.Polygons, s.Input, s.Splits, s.Nodes, s.Leaves, s.Depth)
}

func (t *Tree[T]) collectStats(input, splits int) Stats {
	s := Stats{
		Input:    input,
		Polygons: t.PolygonCount(),
		Depth:    t.Depth(),
		Splits:   splits,
	}
	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		s.Nodes++
		if n.IsLeaf() {
			s.Leaves++
		}
		walk(n.front)
		walk(n.back)
	}
	walk(t.root)
	return s
}
