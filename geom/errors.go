// SPDX-License-Identifier: GPL-2.0-or-later

package geom

import "github.com/pkg/errors"

var (
	// Construction errors, caused by bad input geometry.
	ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")
	ErrDegenerate     = errors.New("degenerate geometry")
	ErrNotCoplanar    = errors.New("polygon vertices are not coplanar")

	// Internal invariant violations. Seeing one of these means the caller
	// skipped or got the classification wrong.
	ErrNotSpanning     = errors.New("cut on a polygon that does not span the plane")
	ErrDegenerateSplit = errors.New("split produced a fragment with less than 3 vertices")
)
