// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import "polybsp/geom"

// Visitor receives the items of a traversal, one call per item.
type Visitor[T geom.Cuttable[T]] interface {
	Visit(item T)
}

type VisitorFunc[T geom.Cuttable[T]] func(item T)

func (f VisitorFunc[T]) Visit(item T) {
	f(item)
}

// Collector appends every visited item to Items.
type Collector[T geom.Cuttable[T]] struct {
	Items []T
}

func (c *Collector[T]) Visit(item T) {
	c.Items = append(c.Items, item)
}
