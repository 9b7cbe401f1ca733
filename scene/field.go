// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"github.com/chewxy/math32"

	"polybsp/geom"
	"polybsp/math/vec"
	"polybsp/rand"
)

// Field scatters cubes of random size in the box of half size Spread
// around the origin.
type Field struct {
	Count   int
	Spread  float32
	MinSize float32
	MaxSize float32
	// Rotate turns every cube around a random axis.
	Rotate bool
}

func DefaultField() Field {
	return Field{
		Count:   10,
		Spread:  15,
		MinSize: 3,
		MaxSize: 8,
		Rotate:  true,
	}
}

// Generate returns the faces of all cubes. Equal seeds give equal fields.
func (f Field) Generate(seed uint32) ([]geom.Polygon, error) {
	g := rand.New(seed)
	r := make([]geom.Polygon, 0, 6*f.Count)
	for i := 0; i < f.Count; i++ {
		center := geom.Point{
			X: g.Range(-f.Spread, f.Spread),
			Y: g.Range(-f.Spread, f.Spread),
			Z: g.Range(-f.Spread, f.Spread),
		}
		size := g.Range(f.MinSize, f.MaxSize)
		var (
			cube []geom.Polygon
			err  error
		)
		if f.Rotate {
			axis := vec.Vec3{X: g.Float32() - 0.5, Y: g.Float32() - 0.5, Z: g.Float32() - 0.5}
			if axis.Length() <= 0.01 {
				axis = vec.Vec3{X: 1}
			}
			rot := Rotation{{Axis: axis, Angle: g.Float32() * 2 * math32.Pi}}
			cube, err = RotatedCube(center, size, rot)
		} else {
			cube, err = Cube(center, size)
		}
		if err != nil {
			return nil, err
		}
		r = append(r, cube...)
	}
	return r, nil
}
