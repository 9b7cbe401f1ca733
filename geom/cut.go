// SPDX-License-Identifier: GPL-2.0-or-later

package geom

import (
	"github.com/pkg/errors"

	"polybsp/math/vec"
)

// Cuttable is geometry that can take part in BSP construction: it knows
// its own plane, where it lies relative to another plane and how to cut
// itself in two along a plane it spans.
type Cuttable[T any] interface {
	Plane() Plane
	Classify(p Plane) Classification
	Cut(p Plane) (front, back T, err error)
}

var _ Cuttable[Polygon] = Polygon{}

// Cut splits a spanning polygon along pl. Both fragments keep the winding,
// plane and source id of p. Intersection points land in both fragments, as
// do vertices lying on pl.
//
// Calling Cut on a polygon that does not classify as Spanning against pl
// returns ErrNotSpanning.
func (p Polygon) Cut(pl Plane) (front, back Polygon, err error) {
	n := len(p.vertices)
	dist := make([]float32, n)
	sides := make([]Side, n)
	nf, nb := 0, 0
	for i, v := range p.vertices {
		dist[i] = pl.Distance(v)
		sides[i] = sideOf(dist[i], Epsilon)
		switch sides[i] {
		case Front:
			nf++
		case Back:
			nb++
		}
	}
	if c := classify(nf, nb); c != Spanning {
		return Polygon{}, Polygon{}, errors.Wrapf(ErrNotSpanning, "polygon is %v", c)
	}

	fv := make([]Point, 0, n+1)
	bv := make([]Point, 0, n+1)
	for i, v := range p.vertices {
		j := (i + 1) % n
		switch sides[i] {
		case Front:
			fv = append(fv, v)
		case Back:
			bv = append(bv, v)
		default:
			fv = append(fv, v)
			bv = append(bv, v)
		}
		if (sides[i] == Front && sides[j] == Back) || (sides[i] == Back && sides[j] == Front) {
			t := dist[i] / (dist[i] - dist[j])
			x := vec.Lerp(v, p.vertices[j], t)
			fv = append(fv, x)
			bv = append(bv, x)
		}
	}
	if len(fv) < 3 || len(bv) < 3 {
		return Polygon{}, Polygon{}, errors.Wrapf(ErrDegenerateSplit, "front %d back %d vertices", len(fv), len(bv))
	}
	return p.fragment(fv), p.fragment(bv), nil
}

// fragment builds a polygon from a split vertex list. The list lies in p's
// plane by construction so it skips validation.
func (p Polygon) fragment(vs []Point) Polygon {
	return Polygon{
		vertices: vs,
		plane:    p.plane,
		source:   p.source,
	}
}
