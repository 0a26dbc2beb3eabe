// Command demo builds a walkability grid over a small synthetic scene, bridges
// two plateaus with an off-mesh link, and runs smoothed path queries.
package main

import (
	"github.com/gorustyt/gonavgrid/common"
	"github.com/gorustyt/gonavgrid/common/logger"
	"github.com/gorustyt/gonavgrid/navgrid"
	"github.com/gorustyt/gonavgrid/navigation"
	"go.uber.org/zap"
)

// boxSampler raycasts against the flat top faces of axis-aligned boxes.
type boxSampler struct {
	surfaces []navgrid.Surface
}

func (b *boxSampler) Raycast(origin, dir common.Vec3, maxDist float32) (navgrid.RaycastHit, bool) {
	var best navgrid.RaycastHit
	found := false
	for i, s := range b.surfaces {
		x, z := origin.X(), origin.Z()
		if x < s.BMin.X() || x > s.BMax.X() || z < s.BMin.Z() || z > s.BMax.Z() {
			continue
		}
		dist := origin.Y() - s.BMax.Y()
		if dist < 0 || dist > maxDist {
			continue
		}
		if !found || dist < best.Distance {
			best = navgrid.RaycastHit{
				Distance: dist,
				Point:    common.Vec3{x, s.BMax.Y(), z},
				Normal:   common.Vec3{0, 1, 0},
				Surface:  i,
			}
			found = true
		}
	}
	return best, found
}

func main() {
	log := logger.New(logger.DefaultConfig())
	defer log.Sync()

	// Two plateaus with a chasm between them; the right one is marshy and
	// costs more to cross.
	surfaces := []navgrid.Surface{
		{BMin: common.Vec3{0, 0, 0}, BMax: common.Vec3{10, 0, 10}, Navigable: true},
		{BMin: common.Vec3{14, 0, 0}, BMax: common.Vec3{24, 1, 10}, Navigable: true, CostMultiplier: 2},
	}
	sampler := &boxSampler{surfaces: surfaces}

	sys, err := navigation.NewNavSystem(navgrid.DefaultBuildSettings(), sampler, navigation.WithLogger(log))
	if err != nil {
		log.Fatal("create nav system", zap.Error(err))
	}

	// Authored before the scene finishes loading; applied automatically
	// once the grid exists.
	sys.RegisterLink(common.Vec3{9.5, 0, 5}, common.Vec3{14.5, 1, 5}, true, 2)

	if err := sys.Build(surfaces); err != nil {
		log.Fatal("build grid", zap.Error(err))
	}

	start := common.Vec3{1, 0, 1}
	end := common.Vec3{23, 1, 9}
	path := sys.FindPath(start, end, navigation.FindPathOptions{Smooth: true})
	if len(path) == 0 {
		log.Warn("no path", zap.Any("start", start), zap.Any("end", end))
		return
	}
	log.Info("path found", zap.Int("waypoints", len(path)))
	for i, p := range path {
		log.Info("waypoint", zap.Int("i", i), zap.Float32("x", p.X()), zap.Float32("y", p.Y()), zap.Float32("z", p.Z()))
	}
}
