// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"github.com/chewxy/math32"

	"polybsp/geom"
	"polybsp/math"
	"polybsp/math/vec"
)

const maxPitch = 1.5

// Orbit is an eye circling Target. Yaw turns around the y axis starting at
// +z, Pitch lifts the eye towards +y.
type Orbit struct {
	Target      geom.Point
	Distance    float32
	Yaw         float32
	Pitch       float32
	MinDistance float32
	MaxDistance float32
}

func NewOrbit(distance, yaw, pitch float32) *Orbit {
	o := &Orbit{
		Distance:    distance,
		MinDistance: 0,
		MaxDistance: math32.MaxFloat32,
	}
	o.Rotate(yaw, pitch)
	return o
}

// Rotate turns the eye. Pitch stops short of the poles.
func (o *Orbit) Rotate(yaw, pitch float32) {
	o.Yaw = math.WrapRadians(o.Yaw + yaw)
	o.Pitch = math.Clamp(-maxPitch, o.Pitch+pitch, maxPitch)
}

// Zoom multiplies the distance by f within [MinDistance, MaxDistance].
func (o *Orbit) Zoom(f float32) {
	o.Distance = math.Clamp(o.MinDistance, o.Distance*f, o.MaxDistance)
}

func (o *Orbit) Eye() geom.Point {
	sy, cy := math32.Sincos(o.Yaw)
	sp, cp := math32.Sincos(o.Pitch)
	return vec.Add(o.Target, vec.Vec3{
		X: o.Distance * cp * sy,
		Y: o.Distance * sp,
		Z: o.Distance * cp * cy,
	})
}
