// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"polybsp/geom"
)

var (
	verbose bool
	stats   bool

	seed  uint
	eye   = vec3{geom.Point{X: 3, Y: 2, Z: 10}, false}
	yaw   float64
	pitch float64

	order     string
	sceneName string
)

// vec3 is a point flag written as "x,y,z". set reports whether the flag
// was given.
type vec3 struct {
	p   geom.Point
	set bool
}

func (v *vec3) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return errors.Errorf("want x,y,z, got %q", s)
	}
	var c [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return err
		}
		c[i] = float32(f)
	}
	v.p = geom.Point{X: c[0], Y: c[1], Z: c[2]}
	v.set = true
	return nil
}

func (v *vec3) String() string {
	return fmt.Sprintf("%g,%g,%g", v.p.X, v.p.Y, v.p.Z)
}

func init() {
	flag.BoolVar(&verbose, "v", false, "log debug records")
	flag.BoolVar(&stats, "stats", false, "print tree statistics only")

	flag.UintVar(&seed, "seed", 42, "seed of random scenes")
	flag.Var(&eye, "eye", "eye position x,y,z, default orbits the scene")
	flag.Float64Var(&yaw, "yaw", 23, "orbit yaw in degrees when -eye is not given")
	flag.Float64Var(&pitch, "pitch", 23, "orbit pitch in degrees when -eye is not given")

	flag.StringVar(&order, "order", "b2f", "traversal order, b2f or f2b")
	flag.StringVar(&sceneName, "scene", "complex", "cube, rotated, field, complex or part")
}

func Verbose() bool {
	return verbose
}

func Stats() bool {
	return stats
}

func Seed() uint32 {
	return uint32(seed)
}

// Eye returns the eye position and whether one was given.
func Eye() (geom.Point, bool) {
	return eye.p, eye.set
}

// Orbit returns yaw and pitch in degrees.
func Orbit() (float32, float32) {
	return float32(yaw), float32(pitch)
}

func FrontToBack() bool {
	return order == "f2b"
}

func Order() string {
	return order
}

func Scene() string {
	return sceneName
}

// Commands returns the console commands given after the flags, one per
// line. Every argument starting with '+' starts a new command:
//
//	polybsp -scene field +set bsp_selector first +bsp_sample 4
func Commands() string {
	return commands(flag.Args())
}

func commands(args []string) string {
	var b strings.Builder
	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "+"):
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(a[1:])
		case b.Len() > 0:
			b.WriteByte(' ')
			if strings.ContainsAny(a, " \t") {
				b.WriteString(strconv.Quote(a))
			} else {
				b.WriteString(a)
			}
		}
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	return b.String()
}
