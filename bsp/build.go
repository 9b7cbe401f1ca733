// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"log/slog"
	"slices"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"polybsp/geom"
)

var ErrDepthExceeded = errors.New("bsp tree exceeds the maximum depth")

// Build partitions items into a new tree. items is copied; the caller keeps
// ownership of the slice. On error no tree is returned.
func Build[T geom.Cuttable[T]](items []T, opts Options[T]) (*Tree[T], error) {
	start := time.Now()
	b := builder[T]{opts: opts.withDefaults()}
	root, splits, err := b.build(slices.Clone(items), 0)
	if err != nil {
		return nil, err
	}
	t := &Tree[T]{root: root}
	t.stats = t.collectStats(len(items), splits)
	slog.Debug("bsp: built tree",
		"input", len(items),
		"polygons", t.stats.Polygons,
		"splits", splits,
		"nodes", t.stats.Nodes,
		"depth", t.stats.Depth,
		"duration", time.Since(start))
	return t, nil
}

// FromPolygons builds a tree with DefaultOptions.
func FromPolygons(polygons []geom.Polygon) (*Tree[geom.Polygon], error) {
	return Build(polygons, DefaultOptions[geom.Polygon]())
}

type builder[T geom.Cuttable[T]] struct {
	opts Options[T]
}

// build returns the subtree for items and the number of splits done in it.
// items is owned by the call.
func (b *builder[T]) build(items []T, depth int) (*Node[T], int, error) {
	if len(items) == 0 {
		return nil, 0, nil
	}
	if depth >= b.opts.MaxDepth {
		return nil, 0, errors.Wrapf(ErrDepthExceeded, "depth %d with %d items left", depth, len(items))
	}
	idx := b.opts.Selector.Select(items)
	if idx < 0 || idx >= len(items) {
		return nil, 0, errors.Errorf("bsp: selector returned index %d for %d items", idx, len(items))
	}

	splitter := items[idx]
	n := &Node[T]{plane: splitter.Plane()}
	n.add(splitter)

	var front, back []T
	splits := 0
	for i, it := range items {
		if i == idx {
			continue
		}
		switch c := it.Classify(n.plane); c {
		case geom.Coplanar:
			n.add(it)
		case geom.InFront:
			front = append(front, it)
		case geom.Behind:
			back = append(back, it)
		case geom.Spanning:
			f, bk, err := it.Cut(n.plane)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "bsp: splitting at depth %d", depth)
			}
			front = append(front, f)
			back = append(back, bk)
			splits++
		default:
			return nil, 0, errors.Errorf("bsp: unknown classification %v", c)
		}
	}

	fs, bs, err := b.children(n, front, back, depth+1)
	if err != nil {
		return nil, 0, err
	}
	n.count = n.coplanarCount() + n.front.PolygonCount() + n.back.PolygonCount()
	return n, splits + fs + bs, nil
}

// children builds both subtrees of n. The two halves share nothing, so
// large ones are built concurrently.
func (b *builder[T]) children(n *Node[T], front, back []T, depth int) (int, int, error) {
	var fs, bs int
	if b.opts.ParallelMin <= 0 || len(front) < b.opts.ParallelMin || len(back) < b.opts.ParallelMin {
		var err error
		if n.front, fs, err = b.build(front, depth); err != nil {
			return 0, 0, err
		}
		if n.back, bs, err = b.build(back, depth); err != nil {
			return 0, 0, err
		}
		return fs, bs, nil
	}
	var g errgroup.Group
	g.Go(func() error {
		var err error
		n.front, fs, err = b.build(front, depth)
		return err
	})
	g.Go(func() error {
		var err error
		n.back, bs, err = b.build(back, depth)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	return fs, bs, nil
}
