// SPDX-License-Identifier: GPL-2.0-or-later

// polybsp builds a BSP tree from a generated scene and prints its polygons
// in painter's order for one eye position.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"polybsp/alias"
	"polybsp/bsp"
	"polybsp/cbuf"
	"polybsp/cmd"
	"polybsp/commandline"
	"polybsp/conlog"
	"polybsp/cvar"
	"polybsp/cvars"
	"polybsp/geom"
	"polybsp/math"
	"polybsp/scene"
)

func main() {
	flag.Parse()
	conlog.Init(os.Stderr, commandline.Verbose())
	if err := run(); err != nil {
		slog.Error("polybsp failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	aliases := alias.New()
	if err := aliases.Register(cmd.AddCommand); err != nil {
		return err
	}
	console := cbuf.New(cmd.Execute, cvar.Execute)
	console.AddExecutor(aliases.Executor(console))
	console.AddText(commandline.Commands())
	if err := console.Execute(); err != nil {
		return err
	}

	polygons, err := loadScene(commandline.Scene(), commandline.Seed())
	if err != nil {
		return err
	}
	opts, err := cvars.BuildOptions()
	if err != nil {
		return err
	}
	tree, err := bsp.Build(polygons, opts)
	if err != nil {
		return errors.Wrapf(err, "building scene %s", commandline.Scene())
	}
	conlog.Logger().Info("tree built", "scene", commandline.Scene(), "stats", tree.Stats().String())
	if commandline.Stats() {
		conlog.Printf("%v\n", tree.Stats())
		return nil
	}

	eye, ok := commandline.Eye()
	if !ok {
		yaw, pitch := commandline.Orbit()
		eye = defaultEye(polygons, yaw, pitch)
	}
	seq := tree.BackToFront(eye)
	if commandline.FrontToBack() {
		seq = tree.FrontToBack(eye)
	}
	conlog.Printf("eye %v, %s\n", eye, commandline.Order())
	i := 0
	for p := range seq {
		conlog.Printf("%4d %s %d vertices centroid %v normal %v\n",
			i, p.Source().String()[:8], p.Len(), p.Centroid(), p.Normal())
		i++
	}
	return nil
}

func loadScene(name string, seed uint32) ([]geom.Polygon, error) {
	switch name {
	case "cube":
		return scene.Cube(geom.Point{}, 2)
	case "rotated":
		f := scene.DefaultField()
		f.Count = 1
		f.Spread = 0
		return f.Generate(seed)
	case "field":
		f := scene.DefaultField()
		f.Count = cvars.SceneCount.Int()
		f.Spread = cvars.SceneSpread.Value()
		return f.Generate(seed)
	case "complex":
		return scene.Complex()
	case "part":
		s, err := scene.Part()
		if err != nil {
			return nil, err
		}
		return scene.FromSDF(s, cvars.SceneCells.Int())
	default:
		return nil, errors.Errorf("unknown scene %q", name)
	}
}

// defaultEye looks at the scene from outside its bounds. yaw and pitch
// are in degrees.
func defaultEye(polygons []geom.Polygon, yaw, pitch float32) geom.Point {
	var r float32 = 1
	for _, p := range polygons {
		for _, v := range p.Vertices() {
			r = max(r, v.Length())
		}
	}
	return scene.NewOrbit(2*r, math.Radians(yaw), math.Radians(pitch)).Eye()
}
