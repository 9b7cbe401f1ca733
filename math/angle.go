// SPDX-License-Identifier: GPL-2.0-or-later

package math

import "github.com/chewxy/math32"

const tau = 2 * math32.Pi

// Radians converts degrees to radians
func Radians(deg float32) float32 {
	return deg * (math32.Pi / 180)
}

// WrapRadians changes an angle to be within [0, 2*Pi[
func WrapRadians(a float32) float32 {
	r := a - math32.Floor(a/tau)*tau
	if r >= tau {
		return 0
	}
	return r
}
