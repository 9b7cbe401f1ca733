// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"log/slog"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"

	"polybsp/geom"
)

// FromSDF tessellates s with marching cubes, cells along the longest side
// of its bounding box. Slivers without a usable plane are dropped.
func FromSDF(s sdf.SDF3, cells int) ([]geom.Polygon, error) {
	if cells < 1 {
		return nil, errors.Errorf("marching cubes needs at least one cell, got %d", cells)
	}
	tris := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	r := make([]geom.Polygon, 0, len(tris))
	dropped := 0
	for _, t := range tris {
		var pts [3]geom.Point
		for j := 0; j < 3; j++ {
			v := t[j]
			pts[j] = geom.Point{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
		}
		p, err := geom.NewTriangle(pts[0], pts[1], pts[2])
		if errors.Is(err, geom.ErrDegenerate) || errors.Is(err, geom.ErrNotCoplanar) {
			dropped++
			continue
		}
		if err != nil {
			return nil, err
		}
		r = append(r, p)
	}
	slog.Debug("scene: tessellated sdf", "cells", cells, "triangles", len(tris), "dropped", dropped)
	return r, nil
}

// Part is a block with a hole bored through it along z.
func Part() (sdf.SDF3, error) {
	block, err := sdf.Box3D(v3.Vec{X: 4, Y: 4, Z: 2}, 0)
	if err != nil {
		return nil, errors.Wrap(err, "part block")
	}
	hole, err := sdf.Cylinder3D(3, 1, 0)
	if err != nil {
		return nil, errors.Wrap(err, "part hole")
	}
	return sdf.Difference3D(block, hole), nil
}
