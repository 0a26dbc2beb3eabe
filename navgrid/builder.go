package navgrid

import (
	"math"

	"github.com/gorustyt/gonavgrid/common"
	"go.uber.org/zap"
)

// Step applied past a rejected hit so the next cast sees the surface below it.
const kRayMarchEpsilon float32 = 1e-3

var kUp = common.Vec3{0, 1, 0}

// BuildGrid samples every cell center of the region covered by the navigable
// surfaces and keeps the cells with acceptable footing. A scene with no
// navigable surfaces is a normal outcome and yields a nil grid with no error.
//
// The build is synchronous and performs O(CellsX*CellsZ) raycasts; it belongs
// in a scene-initialization phase, not in a per-frame update.
func BuildGrid(surfaces []Surface, sampler SceneSampler, cfg *BuildSettings, log *zap.Logger) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	bmin, bmax, any := navigableBounds(surfaces)
	if !any {
		log.Info("navgrid: no navigable surfaces, grid not built")
		return nil, nil
	}
	bmin[0] -= cfg.Padding
	bmin[2] -= cfg.Padding
	bmax[0] += cfg.Padding
	bmax[2] += cfg.Padding

	cellsX := common.Clamp(int32(math.Ceil(float64((bmax.X()-bmin.X())/cfg.CellSize))), 1, cfg.MaxGridCells)
	cellsZ := common.Clamp(int32(math.Ceil(float64((bmax.Z()-bmin.Z())/cfg.CellSize))), 1, cfg.MaxGridCells)

	grid := &Grid{
		OriginX:  bmin.X(),
		OriginZ:  bmin.Z(),
		CellSize: cfg.CellSize,
		CellsX:   cellsX,
		CellsZ:   cellsZ,
		Cells:    make([]Cell, cellsX*cellsZ),
		MinCost:  1,
	}

	slopeCos := float32(math.Cos(float64(common.DegToRad(cfg.MaxSlopeDegrees))))
	rayTop := bmax.Y() + cfg.SampleHeight
	rayLen := (bmax.Y() - bmin.Y()) + 2*cfg.SampleHeight

	walkable := 0
	for z := int32(0); z < cellsZ; z++ {
		for x := int32(0); x < cellsX; x++ {
			idx := grid.CellIndex(x, z)
			origin := common.Vec3{
				grid.OriginX + (float32(x)+0.5)*cfg.CellSize,
				rayTop,
				grid.OriginZ + (float32(z)+0.5)*cfg.CellSize,
			}
			hit, ok := sampleColumn(sampler, origin, rayLen, slopeCos)
			if !ok {
				continue
			}
			cost := float32(1)
			if hit.Surface >= 0 && hit.Surface < len(surfaces) {
				if m := surfaces[hit.Surface].CostMultiplier; m > 0 {
					cost = m
				}
			}
			grid.Cells[idx] = Cell{Height: hit.Point.Y(), Cost: cost, Walkable: true}
			if cost < grid.MinCost {
				grid.MinCost = cost
			}
			walkable++
		}
	}

	log.Info("navgrid: grid built",
		zap.Int32("cellsX", cellsX),
		zap.Int32("cellsZ", cellsZ),
		zap.Int("walkable", walkable),
		zap.Float32("cellSize", cfg.CellSize))
	return grid, nil
}

// sampleColumn marches a downward ray through the column, stepping past hits
// that are too steep. The sampler reports closest hits only, so the first
// qualifying intersection front-to-back is found by re-casting below each
// rejected one. With the origin above the scene this picks the topmost
// walkable surface under the point.
func sampleColumn(sampler SceneSampler, origin common.Vec3, maxDist, slopeCos float32) (RaycastHit, bool) {
	down := common.Vec3{0, -1, 0}
	remaining := maxDist
	for remaining > 0 {
		hit, ok := sampler.Raycast(origin, down, remaining)
		if !ok {
			break
		}
		if common.Abs(hit.Normal.Dot(kUp)) >= slopeCos {
			return hit, true
		}
		advance := hit.Distance + kRayMarchEpsilon
		origin = common.Vec3{origin.X(), origin.Y() - advance, origin.Z()}
		remaining -= advance
	}
	return RaycastHit{}, false
}

func navigableBounds(surfaces []Surface) (bmin, bmax common.Vec3, any bool) {
	for _, s := range surfaces {
		if !s.Navigable {
			continue
		}
		if !any {
			bmin, bmax = s.BMin, s.BMax
			any = true
			continue
		}
		for i := 0; i < 3; i++ {
			bmin[i] = min(bmin[i], s.BMin[i])
			bmax[i] = max(bmax[i], s.BMax[i])
		}
	}
	return bmin, bmax, any
}
