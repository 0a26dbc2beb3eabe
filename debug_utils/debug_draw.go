package debug_utils

import (
	"github.com/gorustyt/gonavgrid/common"
	"github.com/gorustyt/gonavgrid/navgrid"
)

type DuDebugDrawPrimitives int

const (
	DU_DRAW_POINTS DuDebugDrawPrimitives = iota
	DU_DRAW_LINES
)

// DuDebugDraw is the abstract sink developer tooling implements to render
// navigation debug geometry. Correctness never depends on it.
type DuDebugDraw interface {
	Begin(prim DuDebugDrawPrimitives, size ...float32)
	Vertex(pos common.Vec3, color Colorb)
	End()
}

// DuDebugDrawGridPoints emits one point per walkable cell center, colored by
// its traversal-cost multiplier (default cost renders cyan, overridden cost
// renders orange).
func DuDebugDrawGridPoints(dd DuDebugDraw, grid *navgrid.Grid, pointSize float32) {
	if dd == nil || grid == nil {
		return
	}
	defCol := DuRGBA(0, 192, 255, 255)
	costCol := DuRGBA(255, 160, 0, 255)

	dd.Begin(DU_DRAW_POINTS, pointSize)
	for i := int32(0); i < grid.NumCells(); i++ {
		if !grid.Cells[i].Walkable {
			continue
		}
		col := defCol
		if grid.Cells[i].Cost != 1 {
			col = costCol
		}
		dd.Vertex(grid.CellCenter(i), col)
	}
	dd.End()
}

// DuDebugDrawPath emits a waypoint polyline.
func DuDebugDrawPath(dd DuDebugDraw, points []common.Vec3, lineWidth float32) {
	if dd == nil || len(points) < 2 {
		return
	}
	col := DuRGBA(64, 255, 64, 255)
	dim := duMultCol(col, 165)

	dd.Begin(DU_DRAW_LINES, lineWidth)
	for i := 0; i+1 < len(points); i++ {
		dd.Vertex(points[i], dim)
		dd.Vertex(points[i+1], col)
	}
	dd.End()
}

// DuDebugDrawLinks emits one line per off-mesh link.
func DuDebugDrawLinks(dd DuDebugDraw, graph *navgrid.PathGraph, lineWidth float32) {
	if dd == nil || graph == nil {
		return
	}
	col := DuRGBA(255, 255, 0, 255)

	dd.Begin(DU_DRAW_LINES, lineWidth)
	for _, l := range graph.Links() {
		dd.Vertex(graph.Grid().CellCenter(l.CellA), col)
		dd.Vertex(graph.Grid().CellCenter(l.CellB), col)
	}
	dd.End()
}
