// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"strconv"

	"github.com/pkg/errors"

	"polybsp/bsp"
	"polybsp/cvar"
	"polybsp/geom"
)

var (
	BSPBalanceWeight *cvar.Cvar
	BSPMaxDepth      *cvar.Cvar
	BSPParallel      *cvar.Cvar
	BSPSample        *cvar.Cvar
	BSPSelector      *cvar.Cvar
	BSPSplitWeight   *cvar.Cvar
	SceneCells       *cvar.Cvar
	SceneCount       *cvar.Cvar
	SceneSpread      *cvar.Cvar
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func init() {
	BSPBalanceWeight = cvar.MustRegister("bsp_balanceweight", itoa(bsp.DefaultBalanceWeight), cvar.ARCHIVE).
		SetHelp("cost of each polygon of imbalance between front and back")
	BSPMaxDepth = cvar.MustRegister("bsp_maxdepth", itoa(bsp.DefaultMaxDepth), cvar.ARCHIVE).
		SetHelp("fail a build that gets deeper than this")
	BSPParallel = cvar.MustRegister("bsp_parallel", itoa(bsp.DefaultParallelMin), cvar.ARCHIVE).
		SetHelp("minimum polygons on both sides to build them concurrently, 0 is never")
	BSPSample = cvar.MustRegister("bsp_sample", "0", cvar.ARCHIVE).
		SetHelp("splitting planes tried per node, 0 tries all")
	BSPSelector = cvar.MustRegister("bsp_selector", "balanced", cvar.ARCHIVE).
		SetHelp("balanced or first")
	BSPSplitWeight = cvar.MustRegister("bsp_splitweight", itoa(bsp.DefaultSplitWeight), cvar.ARCHIVE).
		SetHelp("cost of each polygon a splitting plane cuts")
	SceneCells = cvar.MustRegister("scene_cells", "16", cvar.NONE).
		SetHelp("marching cubes cells along the longest side of sdf scenes")
	SceneCount = cvar.MustRegister("scene_count", "10", cvar.NONE).
		SetHelp("number of cubes in random scenes")
	SceneSpread = cvar.MustRegister("scene_spread", "15", cvar.NONE).
		SetHelp("half size of the region random cubes are placed in")
}

// BuildOptions returns the tree construction options set by the bsp_*
// cvars.
func BuildOptions() (bsp.Options[geom.Polygon], error) {
	var sel bsp.Selector[geom.Polygon]
	switch s := BSPSelector.String(); s {
	case "balanced":
		sel = bsp.Balanced[geom.Polygon]{
			SplitWeight:   BSPSplitWeight.Value(),
			BalanceWeight: BSPBalanceWeight.Value(),
			SampleSize:    BSPSample.Int(),
		}
	case "first":
		sel = bsp.FirstPolygon[geom.Polygon]{}
	default:
		return bsp.Options[geom.Polygon]{}, errors.Errorf("unknown bsp_selector %q, want balanced or first", s)
	}
	return bsp.Options[geom.Polygon]{
		Selector:    sel,
		MaxDepth:    BSPMaxDepth.Int(),
		ParallelMin: BSPParallel.Int(),
	}, nil
}
