package navgrid

import (
	"github.com/gorustyt/gonavgrid/common"
)

// Cell is one sampled column of the walkability grid. Walkable false means
// the cell is absent: no qualifying surface was found under its center.
type Cell struct {
	Height   float32 // y of the walkable surface under the cell center
	Cost     float32 // traversal-cost multiplier, 1 by default
	Walkable bool
}

// Grid is a 2D heightfield of fixed-size cells on the xz-plane.
// Cell (x, z) lives at index z*CellsX + x.
type Grid struct {
	OriginX  float32
	OriginZ  float32
	CellSize float32
	CellsX   int32
	CellsZ   int32
	Cells    []Cell

	// Smallest cost multiplier present in the grid. Scales the A*
	// heuristic so it stays admissible when authoring uses multipliers
	// below 1.
	MinCost float32
}

func (g *Grid) NumCells() int32 {
	return g.CellsX * g.CellsZ
}

func (g *Grid) CellIndex(x, z int32) int32 {
	return z*g.CellsX + x
}

func (g *Grid) CellCoords(idx int32) (x, z int32) {
	return idx % g.CellsX, idx / g.CellsX
}

func (g *Grid) InBounds(x, z int32) bool {
	return x >= 0 && x < g.CellsX && z >= 0 && z < g.CellsZ
}

// IsWalkable reports whether idx names a present cell.
func (g *Grid) IsWalkable(idx int32) bool {
	return idx >= 0 && idx < g.NumCells() && g.Cells[idx].Walkable
}

// CellCenter returns the world-space center of a cell, at its sampled height.
func (g *Grid) CellCenter(idx int32) common.Vec3 {
	x, z := g.CellCoords(idx)
	return common.Vec3{
		g.OriginX + (float32(x)+0.5)*g.CellSize,
		g.Cells[idx].Height,
		g.OriginZ + (float32(z)+0.5)*g.CellSize,
	}
}

// WorldToCell maps a world position to grid coordinates. The result may be
// out of bounds; callers check with InBounds.
func (g *Grid) WorldToCell(pos common.Vec3) (x, z int32) {
	x = int32floor((pos.X() - g.OriginX) / g.CellSize)
	z = int32floor((pos.Z() - g.OriginZ) / g.CellSize)
	return x, z
}

func int32floor(v float32) int32 {
	i := int32(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}

// NearestCell resolves a world position to the closest walkable cell: the
// cell directly under the point first, then expanding square rings up to
// maxRing. Returns false when nothing walkable is within that radius.
func (g *Grid) NearestCell(pos common.Vec3, maxRing int32) (int32, bool) {
	cx, cz := g.WorldToCell(pos)
	if g.InBounds(cx, cz) {
		if idx := g.CellIndex(cx, cz); g.Cells[idx].Walkable {
			return idx, true
		}
	}
	for ring := int32(1); ring <= maxRing; ring++ {
		best := int32(-1)
		bestDist := float32(0)
		for z := cz - ring; z <= cz+ring; z++ {
			for x := cx - ring; x <= cx+ring; x++ {
				// Ring perimeter only; the interior was covered by
				// smaller rings.
				if x != cx-ring && x != cx+ring && z != cz-ring && z != cz+ring {
					continue
				}
				if !g.InBounds(x, z) {
					continue
				}
				idx := g.CellIndex(x, z)
				if !g.Cells[idx].Walkable {
					continue
				}
				d := common.Vdist2D(pos, g.CellCenter(idx))
				if best < 0 || d < bestDist || (d == bestDist && idx < best) {
					best = idx
					bestDist = d
				}
			}
		}
		if best >= 0 {
			return best, true
		}
	}
	return -1, false
}
