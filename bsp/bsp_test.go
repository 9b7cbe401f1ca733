// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"polybsp/geom"
	"polybsp/math/vec"
)

func rect(t *testing.T, origin, u, v vec.Vec3) geom.Polygon {
	t.Helper()
	p, err := geom.NewRectangle(origin, u, v)
	if err != nil {
		t.Fatalf("NewRectangle(%v, %v, %v): %v", origin, u, v, err)
	}
	return p
}

// square returns the 2x2 square at height z facing +z.
func square(t *testing.T, z float32) geom.Polygon {
	return rect(t, vec.Vec3{X: -1, Y: -1, Z: z}, vec.Vec3{X: 2, Y: 0, Z: 0}, vec.Vec3{X: 0, Y: 2, Z: 0})
}

// cube returns the six outward facing faces of the cube with the given
// half size around the origin. The +z face comes first.
func cube(t *testing.T, h float32) []geom.Polygon {
	x := vec.Vec3{X: 2 * h, Y: 0, Z: 0}
	y := vec.Vec3{X: 0, Y: 2 * h, Z: 0}
	z := vec.Vec3{X: 0, Y: 0, Z: 2 * h}
	return []geom.Polygon{
		rect(t, vec.Vec3{X: -h, Y: -h, Z: h}, x, y),
		rect(t, vec.Vec3{X: -h, Y: -h, Z: -h}, y, x),
		rect(t, vec.Vec3{X: h, Y: -h, Z: -h}, y, z),
		rect(t, vec.Vec3{X: -h, Y: -h, Z: -h}, z, y),
		rect(t, vec.Vec3{X: -h, Y: h, Z: -h}, z, x),
		rect(t, vec.Vec3{X: -h, Y: -h, Z: -h}, x, z),
	}
}

// crossedSquares returns the square at z=0 and the same square rotated by
// 45 degrees around the x axis. Each one spans the plane of the other.
func crossedSquares(t *testing.T) []geom.Polygon {
	c := math32.Cos(math32.Pi / 4)
	return []geom.Polygon{
		square(t, 0),
		rect(t, vec.Vec3{X: -1, Y: -c, Z: -c}, vec.Vec3{X: 2, Y: 0, Z: 0}, vec.Vec3{X: 0, Y: 2 * c, Z: 2 * c}),
	}
}

// triangles returns n small triangles scattered and turned in all
// directions.
func triangles(t *testing.T, n int) []geom.Polygon {
	t.Helper()
	r := make([]geom.Polygon, 0, n)
	for i := 0; i < n; i++ {
		f := float32(i)
		c := vec.Vec3{X: math32.Sin(f*1.3) * 4, Y: math32.Cos(f*0.7) * 4, Z: math32.Sin(f*2.1) * 4}
		axis := vec.Vec3{X: math32.Sin(f), Y: math32.Cos(f), Z: 1}
		a := f * 0.37
		p, err := geom.NewTriangle(
			c,
			vec.Add(c, vec.RotateAxis(vec.Vec3{X: 2, Y: 0, Z: 0}, axis, a)),
			vec.Add(c, vec.RotateAxis(vec.Vec3{X: 0, Y: 2, Z: 0}, axis, a)))
		if err != nil {
			t.Fatalf("triangle %d: %v", i, err)
		}
		r = append(r, p)
	}
	return r
}

func build(t *testing.T, items []geom.Polygon, opts Options[geom.Polygon]) *Tree[geom.Polygon] {
	t.Helper()
	tree, err := Build(items, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tree
}

func backToFront(tree *Tree[geom.Polygon], eye geom.Point) []geom.Polygon {
	var c Collector[geom.Polygon]
	tree.TraverseBackToFront(eye, &c)
	return c.Items
}

func frontToBack(tree *Tree[geom.Polygon], eye geom.Point) []geom.Polygon {
	var c Collector[geom.Polygon]
	tree.TraverseFrontToBack(eye, &c)
	return c.Items
}

// key identifies a stored polygon. Every stored polygon owns its own
// vertex storage.
func key(p geom.Polygon) *geom.Point {
	return &p.Vertices()[0]
}

func TestEmptyTree(t *testing.T) {
	tree, err := FromPolygons(nil)
	if err != nil {
		t.Fatalf("FromPolygons(nil): %v", err)
	}
	if !tree.Empty() {
		t.Errorf("tree of nothing is not empty")
	}
	if got := tree.PolygonCount(); got != 0 {
		t.Errorf("PolygonCount() = %v want 0", got)
	}
	if got := tree.Depth(); got != 0 {
		t.Errorf("Depth() = %v want 0", got)
	}
	if got := backToFront(tree, geom.Point{}); len(got) != 0 {
		t.Errorf("traversal of an empty tree visited %d polygons", len(got))
	}
	var zero Tree[geom.Polygon]
	if !zero.Empty() || zero.PolygonCount() != 0 {
		t.Errorf("zero Tree is not empty")
	}
}

func TestSinglePolygon(t *testing.T) {
	sq := square(t, 0)
	tree := build(t, []geom.Polygon{sq}, DefaultOptions[geom.Polygon]())
	if got := tree.PolygonCount(); got != 1 {
		t.Errorf("PolygonCount() = %v want 1", got)
	}
	if !tree.Root().IsLeaf() {
		t.Errorf("single polygon root is not a leaf")
	}
	for _, eye := range []geom.Point{{X: 0, Y: 0, Z: 5}, {X: 0, Y: 0, Z: -5}, {X: 0, Y: 0, Z: 0}} {
		got := backToFront(tree, eye)
		if len(got) != 1 || !got[0].Equal(sq) {
			t.Errorf("backToFront(%v) = %v want [%v]", eye, got, sq)
		}
	}
}

func TestBuildDoesNotAlias(t *testing.T) {
	items := []geom.Polygon{square(t, 0), square(t, 1)}
	first := items[0]
	tree := build(t, items, DefaultOptions[geom.Polygon]())
	items[0] = square(t, 7)
	for _, p := range tree.Polygons() {
		if p.Equal(items[0]) {
			t.Errorf("tree sees a change to the input slice")
		}
	}
	if got := backToFront(tree, geom.Point{X: 0, Y: 0, Z: 5}); !got[0].Equal(first) {
		t.Errorf("farthest polygon = %v want %v", got[0], first)
	}
}

func TestCube(t *testing.T) {
	faces := cube(t, 0.5)
	top := faces[0]
	for _, sel := range []Selector[geom.Polygon]{
		FirstPolygon[geom.Polygon]{},
		Balanced[geom.Polygon]{SplitWeight: 8, BalanceWeight: 1},
	} {
		tree := build(t, faces, Options[geom.Polygon]{Selector: sel})
		if got := tree.PolygonCount(); got != 6 {
			t.Errorf("%T: PolygonCount() = %v want 6", sel, got)
		}
		if s := tree.Stats(); s.Splits != 0 || s.Input != 6 {
			t.Errorf("%T: Stats() = %v", sel, s)
		}
		got := backToFront(tree, geom.Point{X: 0, Y: 0, Z: 100})
		if len(got) != 6 {
			t.Fatalf("%T: visited %d faces want 6", sel, len(got))
		}
		if !got[5].Equal(top) {
			t.Errorf("%T: last face = %v want %v", sel, got[5], top)
		}
		got = frontToBack(tree, geom.Point{X: 0, Y: 0, Z: 100})
		if !got[0].Equal(top) {
			t.Errorf("%T: first face front to back = %v want %v", sel, got[0], top)
		}
	}
}

func TestCrossedSquares(t *testing.T) {
	tree := build(t, crossedSquares(t), DefaultOptions[geom.Polygon]())
	if got := tree.PolygonCount(); got <= 2 {
		t.Errorf("PolygonCount() = %v want > 2", got)
	}
	want := Stats{Input: 2, Polygons: 3, Nodes: 3, Leaves: 2, Depth: 2, Splits: 1}
	if got := tree.Stats(); got != want {
		t.Errorf("Stats() = %v want %v", got, want)
	}

	above := backToFront(tree, geom.Point{X: 0, Y: 0, Z: 10})
	below := backToFront(tree, geom.Point{X: 0, Y: 0, Z: -10})
	if len(above) != 3 || len(below) != 3 {
		t.Fatalf("visited %d and %d polygons want 3", len(above), len(below))
	}
	if z := above[0].Centroid().Z; z >= 0 {
		t.Errorf("from above the farthest fragment has centroid z %v want < 0", z)
	}
	if z := below[0].Centroid().Z; z <= 0 {
		t.Errorf("from below the farthest fragment has centroid z %v want > 0", z)
	}
	if key(above[0]) != key(below[2]) || key(above[2]) != key(below[0]) {
		t.Errorf("fragment order did not swap when the eye crossed the plane")
	}
}

func TestCountInvariant(t *testing.T) {
	for _, tc := range []struct {
		name  string
		items []geom.Polygon
	}{
		{"cube", cube(t, 1)},
		{"crossed", crossedSquares(t)},
		{"triangles", triangles(t, 40)},
	} {
		tree := build(t, tc.items, DefaultOptions[geom.Polygon]())
		s := tree.Stats()
		if s.Polygons < len(tc.items) {
			t.Errorf("%s: PolygonCount() = %v want >= %v", tc.name, s.Polygons, len(tc.items))
		}
		if s.Polygons != len(tc.items)+s.Splits {
			t.Errorf("%s: %v polygons from %v inputs and %v splits", tc.name, s.Polygons, len(tc.items), s.Splits)
		}
		if got := len(tree.Polygons()); got != s.Polygons {
			t.Errorf("%s: len(Polygons()) = %v want %v", tc.name, got, s.Polygons)
		}
	}
}

func TestTraversalTotality(t *testing.T) {
	tree := build(t, triangles(t, 40), DefaultOptions[geom.Polygon]())
	stored := make(map[*geom.Point]bool)
	for _, p := range tree.Polygons() {
		stored[key(p)] = true
	}
	for _, eye := range []geom.Point{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 10, Z: 10}, {X: -3, Y: 2, Z: 0.5}, {X: 0, Y: -20, Z: 1}} {
		for name, got := range map[string][]geom.Polygon{
			"back to front": backToFront(tree, eye),
			"front to back": frontToBack(tree, eye),
		} {
			seen := make(map[*geom.Point]bool)
			for _, p := range got {
				k := key(p)
				if seen[k] {
					t.Errorf("%s %v: polygon %v visited twice", name, eye, p)
				}
				if !stored[k] {
					t.Errorf("%s %v: polygon %v is not stored in the tree", name, eye, p)
				}
				seen[k] = true
			}
			if len(seen) != len(stored) {
				t.Errorf("%s %v: visited %d polygons want %d", name, eye, len(seen), len(stored))
			}
		}
	}
}

func TestFrontToBackIsReverse(t *testing.T) {
	tree := build(t, triangles(t, 30), DefaultOptions[geom.Polygon]())
	for _, eye := range []geom.Point{{X: 0, Y: 0, Z: 0}, {X: 7, Y: -1, Z: 3}, {X: -5, Y: -5, Z: -5}} {
		b2f := backToFront(tree, eye)
		f2b := frontToBack(tree, eye)
		if len(b2f) != len(f2b) {
			t.Fatalf("%v: lengths %d and %d differ", eye, len(b2f), len(f2b))
		}
		for i := range b2f {
			if key(b2f[i]) != key(f2b[len(f2b)-1-i]) {
				t.Errorf("%v: front to back is not the reverse at %d", eye, i)
				break
			}
		}
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	items := triangles(t, 30)
	eye := geom.Point{X: 3, Y: 4, Z: 5}
	a := build(t, items, DefaultOptions[geom.Polygon]())
	b := build(t, items, DefaultOptions[geom.Polygon]())
	if a.PolygonCount() != b.PolygonCount() {
		t.Fatalf("PolygonCount() = %v and %v", a.PolygonCount(), b.PolygonCount())
	}
	sa, sb := backToFront(a, eye), backToFront(b, eye)
	for i := range sa {
		if !sa[i].Equal(sb[i]) {
			t.Errorf("traversals differ at %d: %v and %v", i, sa[i], sb[i])
			break
		}
	}
}

func TestPainterOrder(t *testing.T) {
	near := square(t, 1)
	far := square(t, 0)
	for _, items := range [][]geom.Polygon{{near, far}, {far, near}} {
		tree := build(t, items, DefaultOptions[geom.Polygon]())
		for _, eye := range []geom.Point{{X: 0, Y: 0, Z: 5}, {X: 3, Y: -2, Z: 1.5}, {X: 100, Y: 100, Z: 2}} {
			got := backToFront(tree, eye)
			if len(got) != 2 || !got[0].Equal(far) || !got[1].Equal(near) {
				t.Errorf("backToFront(%v) = %v want [%v %v]", eye, got, far, near)
			}
		}
	}
}

func TestCoplanarFacing(t *testing.T) {
	up := square(t, 0)
	down := rect(t, vec.Vec3{X: -1, Y: -1, Z: 0}, vec.Vec3{X: 0, Y: 2, Z: 0}, vec.Vec3{X: 2, Y: 0, Z: 0})
	tree := build(t, []geom.Polygon{up, down}, DefaultOptions[geom.Polygon]())
	root := tree.Root()
	if len(root.CoplanarFront()) != 1 || len(root.CoplanarBack()) != 1 {
		t.Fatalf("coplanar front %d back %d want 1 and 1", len(root.CoplanarFront()), len(root.CoplanarBack()))
	}
	for _, tc := range []struct {
		eye  geom.Point
		want []geom.Polygon
	}{
		{geom.Point{X: 0, Y: 0, Z: 5}, []geom.Polygon{down, up}},
		{geom.Point{X: 0, Y: 0, Z: 0}, []geom.Polygon{down, up}},
		{geom.Point{X: 0, Y: 0, Z: -5}, []geom.Polygon{up, down}},
	} {
		got := backToFront(tree, tc.eye)
		if len(got) != 2 || !got[0].Equal(tc.want[0]) || !got[1].Equal(tc.want[1]) {
			t.Errorf("backToFront(%v) = %v want %v", tc.eye, got, tc.want)
		}
	}
}

func TestParallelBuild(t *testing.T) {
	items := triangles(t, 80)
	serial := build(t, items, Options[geom.Polygon]{ParallelMin: 0})
	parallel := build(t, items, Options[geom.Polygon]{ParallelMin: 2})
	if serial.Stats() != parallel.Stats() {
		t.Fatalf("Stats() = %v and %v", serial.Stats(), parallel.Stats())
	}
	eye := geom.Point{X: 1, Y: 2, Z: 3}
	a, b := backToFront(serial, eye), backToFront(parallel, eye)
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Errorf("traversals differ at %d", i)
			break
		}
	}
}

func TestMaxDepth(t *testing.T) {
	items := []geom.Polygon{square(t, 0), square(t, 1)}
	tree, err := Build(items, Options[geom.Polygon]{MaxDepth: 1})
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("Build with MaxDepth 1 = %v want %v", err, ErrDepthExceeded)
	}
	if tree != nil {
		t.Errorf("failed Build returned a tree")
	}
	if _, err := Build(items, Options[geom.Polygon]{MaxDepth: 2}); err != nil {
		t.Errorf("Build with MaxDepth 2: %v", err)
	}
}

type badSelector struct{}

func (badSelector) Select(items []geom.Polygon) int {
	return len(items)
}

func TestBadSelector(t *testing.T) {
	if _, err := Build([]geom.Polygon{square(t, 0)}, Options[geom.Polygon]{Selector: badSelector{}}); err == nil {
		t.Errorf("Build with an out of range selector succeeded")
	}
}

func TestIteratorStops(t *testing.T) {
	tree := build(t, cube(t, 1), DefaultOptions[geom.Polygon]())
	n := 0
	for range tree.BackToFront(geom.Point{X: 0, Y: 0, Z: 10}) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d times want 2", n)
	}
	var got []geom.Polygon
	tree.TraverseFrontToBack(geom.Point{X: 0, Y: 0, Z: 10}, VisitorFunc[geom.Polygon](func(p geom.Polygon) {
		got = append(got, p)
	}))
	i := len(got) - 1
	for p := range tree.BackToFront(geom.Point{X: 0, Y: 0, Z: 10}) {
		if key(p) != key(got[i]) {
			t.Errorf("iterator and visitor disagree at %d", i)
		}
		i--
	}
}
