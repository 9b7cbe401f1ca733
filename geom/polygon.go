// SPDX-License-Identifier: GPL-2.0-or-later

package geom

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"polybsp/math/vec"
)

// Polygon is a flat, closed loop of at least 3 vertices. The winding
// determines the facing: counter-clockwise when seen from the front.
//
// A Polygon never changes after construction. Copies share the vertex
// storage, which is fine since nothing writes to it.
type Polygon struct {
	vertices []Point
	plane    Plane
	// source identifies the input polygon this one was cut from.
	source uuid.UUID
}

// NewPolygon validates points and copies them into a new polygon with a
// fresh source id.
func NewPolygon(points []Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, errors.Wrapf(ErrTooFewVertices, "got %d", len(points))
	}
	plane, err := loopPlane(points)
	if err != nil {
		return Polygon{}, err
	}
	for i, p := range points {
		if d := plane.Distance(p); plane.ClassifyPoint(p) != OnPlane {
			return Polygon{}, errors.Wrapf(ErrNotCoplanar, "vertex %d %v is %g off the plane", i, p, d)
		}
	}
	vs := make([]Point, len(points))
	copy(vs, points)
	return Polygon{
		vertices: vs,
		plane:    plane,
		source:   uuid.Must(uuid.NewV7()),
	}, nil
}

// MustPolygon is like NewPolygon but panics on invalid input.
func MustPolygon(points ...Point) Polygon {
	p, err := NewPolygon(points)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// loopPlane finds the plane of the first three non-collinear vertices.
func loopPlane(points []Point) (Plane, error) {
	a := points[0]
	for i := 1; i < len(points)-1; i++ {
		ab := vec.Sub(points[i], a)
		if ab.Length() < minNormalLength {
			continue
		}
		for j := i + 1; j < len(points); j++ {
			n := vec.Cross(ab, vec.Sub(points[j], a))
			if n.Length() < minNormalLength {
				continue
			}
			return PlaneFromPointNormal(a, n)
		}
	}
	return Plane{}, errors.Wrap(ErrDegenerate, "all polygon vertices are collinear")
}

// Vertices returns the vertex loop. The slice must not be modified.
func (p Polygon) Vertices() []Point {
	return p.vertices
}

func (p Polygon) Len() int {
	return len(p.vertices)
}

// Plane returns the plane the polygon lies in, facing like the polygon.
func (p Polygon) Plane() Plane {
	return p.plane
}

// Normal returns the unit normal of the polygon.
func (p Polygon) Normal() vec.Vec3 {
	return p.plane.Normal
}

func (p Polygon) Source() uuid.UUID {
	return p.source
}

// WithSource returns a copy of p carrying id as its source id.
func (p Polygon) WithSource(id uuid.UUID) Polygon {
	p.source = id
	return p
}

func (p Polygon) Centroid() Point {
	var sum Point
	for _, v := range p.vertices {
		sum = vec.Add(sum, v)
	}
	return sum.Scale(1 / float32(len(p.vertices)))
}

// Area uses the Newell sum, so it is exact for convex and concave loops.
func (p Polygon) Area() float32 {
	var s vec.Vec3
	n := len(p.vertices)
	for i, v := range p.vertices {
		s = vec.Add(s, vec.Cross(v, p.vertices[(i+1)%n]))
	}
	a := vec.Dot(s, p.plane.Normal) / 2
	if a < 0 {
		return -a
	}
	return a
}

// FacesSameWay reports whether the polygon's normal points the same
// direction as the normal of pl.
func (p Polygon) FacesSameWay(pl Plane) bool {
	return vec.Dot(p.plane.Normal, pl.Normal) > 0
}

// Classify classifies every vertex against pl.
func (p Polygon) Classify(pl Plane) Classification {
	front, back := 0, 0
	for _, v := range p.vertices {
		switch pl.ClassifyPoint(v) {
		case Front:
			front++
		case Back:
			back++
		}
	}
	return classify(front, back)
}

// Equal compares the vertex loops exactly. The source id is ignored.
func (p Polygon) Equal(o Polygon) bool {
	if len(p.vertices) != len(o.vertices) {
		return false
	}
	for i := range p.vertices {
		if !vec.Equal(p.vertices[i], o.vertices[i]) {
			return false
		}
	}
	return true
}
