// SPDX-License-Identifier: GPL-2.0-or-later

// Package scene generates polygon sets to build trees from.
package scene

import (
	"github.com/pkg/errors"

	"polybsp/geom"
	"polybsp/math/vec"
)

// corner offsets of a unit cube, -z face first
var cubeCorners = [8]vec.Vec3{
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: 1},
}

// counter clockwise seen from outside
var cubeFaces = [6][4]int{
	{4, 5, 6, 7}, // +z
	{1, 0, 3, 2}, // -z
	{0, 4, 7, 3}, // -x
	{5, 1, 2, 6}, // +x
	{7, 6, 2, 3}, // +y
	{0, 1, 5, 4}, // -y
}

// Turn is a rotation by Angle radians around Axis.
type Turn struct {
	Axis  vec.Vec3
	Angle float32
}

// Rotation applies its turns in order.
type Rotation []Turn

func (r Rotation) Apply(v vec.Vec3) vec.Vec3 {
	for _, t := range r {
		v = vec.RotateAxis(v, t.Axis, t.Angle)
	}
	return v
}

func corners(center geom.Point, size float32, rot Rotation) [8]geom.Point {
	var c [8]geom.Point
	for i, o := range cubeCorners {
		c[i] = vec.Add(center, rot.Apply(o.Scale(size/2)))
	}
	return c
}

// Cube returns the six outward facing faces of the axis aligned cube with
// edge length size around center. The +z face comes first.
func Cube(center geom.Point, size float32) ([]geom.Polygon, error) {
	c := corners(center, size, nil)
	r := make([]geom.Polygon, 0, len(cubeFaces))
	for _, f := range cubeFaces {
		p, err := geom.RectangleFromCorners(c[f[0]], c[f[1]], c[f[2]], c[f[3]])
		if err != nil {
			return nil, errors.Wrapf(err, "cube at %v size %v", center, size)
		}
		r = append(r, p)
	}
	return r, nil
}

// RotatedCube is Cube turned by rot around its center.
func RotatedCube(center geom.Point, size float32, rot Rotation) ([]geom.Polygon, error) {
	c := corners(center, size, rot)
	r := make([]geom.Polygon, 0, len(cubeFaces))
	for _, f := range cubeFaces {
		p, err := coplanarQuad(c[f[0]], c[f[1]], c[f[2]], c[f[3]])
		if err != nil {
			return nil, errors.Wrapf(err, "rotated cube at %v size %v", center, size)
		}
		r = append(r, p)
	}
	return r, nil
}

// coplanarQuad moves d onto the plane of a, b and c. Rotated corners drift
// off their face plane by rounding.
func coplanarQuad(a, b, c, d geom.Point) (geom.Polygon, error) {
	pl, err := geom.PlaneFromPoints(a, b, c)
	if err != nil {
		return geom.Polygon{}, err
	}
	return geom.RectangleFromCorners(a, b, c, pl.ProjectPoint(d))
}
