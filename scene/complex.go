// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"polybsp/geom"
	"polybsp/math/vec"
)

// Complex is a small room: a tilted cube and an upright one standing over
// a floor.
func Complex() ([]geom.Polygon, error) {
	tilt := Rotation{
		{Axis: vec.Vec3{X: 1}, Angle: 0.3},
		{Axis: vec.Vec3{Y: 1}, Angle: 0.4},
		{Axis: vec.Vec3{Z: 1}, Angle: 0.25},
	}
	r, err := RotatedCube(geom.Point{X: -1}, 0.8, tilt)
	if err != nil {
		return nil, err
	}
	upright, err := Cube(geom.Point{X: 1}, 0.8)
	if err != nil {
		return nil, err
	}
	r = append(r, upright...)
	floor, err := geom.RectangleFromCorners(
		geom.Point{X: -1.5, Y: -1, Z: -1.5},
		geom.Point{X: 1.5, Y: -1, Z: -1.5},
		geom.Point{X: 1.5, Y: -1, Z: 1.5},
		geom.Point{X: -1.5, Y: -1, Z: 1.5})
	if err != nil {
		return nil, err
	}
	return append(r, floor), nil
}
