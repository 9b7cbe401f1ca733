// SPDX-License-Identifier: GPL-2.0-or-later

package geom

import "fmt"

// Side is the position of a single point relative to a plane.
type Side int

const (
	Front Side = iota
	Back
	OnPlane
)

func (s Side) String() string {
	switch s {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case OnPlane:
		return "OnPlane"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Classification is the position of a whole polygon relative to a plane.
type Classification int

const (
	InFront Classification = iota
	Behind
	Coplanar
	Spanning
)

func (c Classification) String() string {
	switch c {
	case InFront:
		return "Front"
	case Behind:
		return "Back"
	case Coplanar:
		return "Coplanar"
	case Spanning:
		return "Spanning"
	}
	return fmt.Sprintf("Classification(%d)", int(c))
}

// classify folds per vertex sides into a polygon classification.
// Every input maps to exactly one case.
func classify(front, back int) Classification {
	switch {
	case front == 0 && back == 0:
		return Coplanar
	case back == 0:
		return InFront
	case front == 0:
		return Behind
	default:
		return Spanning
	}
}
