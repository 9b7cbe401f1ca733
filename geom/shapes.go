// SPDX-License-Identifier: GPL-2.0-or-later

package geom

import "polybsp/math/vec"

// NewTriangle returns the polygon a, b, c. Its normal is (b-a) x (c-a).
func NewTriangle(a, b, c Point) (Polygon, error) {
	return NewPolygon([]Point{a, b, c})
}

// NewRectangle returns the quad origin, origin+u, origin+u+v, origin+v.
// Its normal is u x v.
func NewRectangle(origin Point, u, v vec.Vec3) (Polygon, error) {
	return NewPolygon([]Point{
		origin,
		vec.Add(origin, u),
		vec.Add(vec.Add(origin, u), v),
		vec.Add(origin, v),
	})
}

// RectangleFromCorners returns the quad a, b, c, d in that winding order.
func RectangleFromCorners(a, b, c, d Point) (Polygon, error) {
	return NewPolygon([]Point{a, b, c, d})
}
