// SPDX-License-Identifier: GPL-2.0-or-later

package geom

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"polybsp/math/vec"
)

const (
	// Epsilon is the distance below which a point counts as lying on a
	// plane. Classification and splitting both use it.
	Epsilon = 1e-5

	// vectors shorter than this can not be normalized
	minNormalLength = 1e-7
)

// Point is a position in 3D space.
type Point = vec.Vec3

// Plane is the set of points p with Dot(Normal, p) == Dist.
// Normal always has unit length.
type Plane struct {
	Normal vec.Vec3
	Dist   float32
}

// NewPlane normalizes normal and scales dist accordingly.
func NewPlane(normal vec.Vec3, dist float32) (Plane, error) {
	l := normal.Length()
	if l < minNormalLength {
		return Plane{}, errors.Wrapf(ErrDegenerate, "plane normal %v", normal)
	}
	return Plane{
		Normal: normal.Scale(1 / l),
		Dist:   dist / l,
	}, nil
}

// PlaneFromPointNormal returns the plane through p facing normal.
func PlaneFromPointNormal(p Point, normal vec.Vec3) (Plane, error) {
	l := normal.Length()
	if l < minNormalLength {
		return Plane{}, errors.Wrapf(ErrDegenerate, "plane normal %v", normal)
	}
	n := normal.Scale(1 / l)
	return Plane{
		Normal: n,
		Dist:   vec.DoublePrecDot(n, p),
	}, nil
}

// PlaneFromPoints returns the plane through a, b and c. The normal follows
// the right hand rule: (b - a) x (c - a).
func PlaneFromPoints(a, b, c Point) (Plane, error) {
	n := vec.Cross(vec.Sub(b, a), vec.Sub(c, a))
	p, err := PlaneFromPointNormal(a, n)
	if err != nil {
		return Plane{}, errors.Wrapf(err, "collinear points %v %v %v", a, b, c)
	}
	return p, nil
}

// Distance returns the signed distance of p to the plane, positive on the
// side the normal points to.
func (pl Plane) Distance(p Point) float32 {
	return vec.DoublePrecDot(pl.Normal, p) - pl.Dist
}

func (pl Plane) ClassifyPoint(p Point) Side {
	return pl.ClassifyPointEpsilon(p, Epsilon)
}

func (pl Plane) ClassifyPointEpsilon(p Point, eps float32) Side {
	return sideOf(pl.Distance(p), eps)
}

func sideOf(d, eps float32) Side {
	switch {
	case d > eps:
		return Front
	case d < -eps:
		return Back
	default:
		return OnPlane
	}
}

// Flipped returns the same plane facing the other way.
func (pl Plane) Flipped() Plane {
	return Plane{
		Normal: pl.Normal.Neg(),
		Dist:   -pl.Dist,
	}
}

// ProjectPoint returns the point on the plane closest to p.
func (pl Plane) ProjectPoint(p Point) Point {
	return vec.Sub(p, pl.Normal.Scale(pl.Distance(p)))
}

// IntersectSegment returns where the segment start-end crosses the plane.
// t is the interpolation parameter, 0 at start and 1 at end.
// ok is false for segments parallel to the plane or ending before it.
func (pl Plane) IntersectSegment(start, end Point) (t float32, p Point, ok bool) {
	dir := vec.Sub(end, start)
	denom := vec.Dot(pl.Normal, dir)
	if math32.Abs(denom) < minNormalLength {
		return 0, Point{}, false
	}
	t = -pl.Distance(start) / denom
	if t < 0 || t > 1 {
		return 0, Point{}, false
	}
	return t, vec.Add(start, dir.Scale(t)), true
}
