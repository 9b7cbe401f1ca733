// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"polybsp/bsp"
)

func TestFromSDF(t *testing.T) {
	box, err := sdf.Box3D(v3.Vec{X: 2, Y: 2, Z: 2}, 0)
	if err != nil {
		t.Fatalf("Box3D: %v", err)
	}
	tris, err := FromSDF(box, 8)
	if err != nil {
		t.Fatalf("FromSDF: %v", err)
	}
	if len(tris) == 0 {
		t.Fatalf("FromSDF gave no triangles")
	}
	for _, p := range tris {
		if p.Len() != 3 {
			t.Errorf("polygon with %d vertices", p.Len())
		}
		for _, v := range p.Vertices() {
			if math32.Abs(v.X) > 1.5 || math32.Abs(v.Y) > 1.5 || math32.Abs(v.Z) > 1.5 {
				t.Errorf("vertex %v outside of the box", v)
			}
		}
	}
	if _, err := FromSDF(box, 0); err == nil {
		t.Errorf("FromSDF with 0 cells succeeded")
	}
}

func TestPart(t *testing.T) {
	s, err := Part()
	if err != nil {
		t.Fatalf("Part: %v", err)
	}
	tris, err := FromSDF(s, 12)
	if err != nil {
		t.Fatalf("FromSDF: %v", err)
	}
	tree, err := bsp.FromPolygons(tris)
	if err != nil {
		t.Fatalf("FromPolygons: %v", err)
	}
	if tree.PolygonCount() < len(tris) {
		t.Errorf("PolygonCount() = %v want >= %v", tree.PolygonCount(), len(tris))
	}
}
