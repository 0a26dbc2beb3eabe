package navgrid

import (
	"math"

	"github.com/gorustyt/gonavgrid/common"
)

// OffMeshLink is an authored shortcut edge between two grid cells that are
// not spatially adjacent (ladder, teleporter). It bypasses the slope and
// step rules of normal adjacency.
type OffMeshLink struct {
	CellA         int32
	CellB         int32
	Bidirectional bool
	Cost          float32
}

type GraphEdge struct {
	To   int32
	Cost float32
}

// Eight neighbor offsets, cardinals first.
var neighborDirs = [8][2]int32{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// PathGraph is the grid's cell adjacency filtered by step height, with
// off-mesh links overlaid as extra edges.
type PathGraph struct {
	grid       *Grid
	stepHeight float32
	links      []OffMeshLink
}

func NewPathGraph(grid *Grid, stepHeight float32) *PathGraph {
	return &PathGraph{grid: grid, stepHeight: stepHeight}
}

func (p *PathGraph) Grid() *Grid {
	return p.grid
}

func (p *PathGraph) Links() []OffMeshLink {
	return p.links
}

// AddLink appends an off-mesh link. Cost <= 0 defaults to one cell width.
// Endpoints outside the grid or on absent cells are rejected.
func (p *PathGraph) AddLink(a, b int32, bidirectional bool, cost float32) bool {
	if !p.grid.IsWalkable(a) || !p.grid.IsWalkable(b) {
		return false
	}
	if cost <= 0 {
		cost = p.grid.CellSize
	}
	p.links = append(p.links, OffMeshLink{CellA: a, CellB: b, Bidirectional: bidirectional, Cost: cost})
	return true
}

// Neighbors appends the outgoing edges of cell to buf and returns it.
// Grid adjacency requires both cells walkable and a height difference within
// the step limit; edge cost is the planar center distance scaled by the mean
// of the two cost multipliers.
func (p *PathGraph) Neighbors(cell int32, buf []GraphEdge) []GraphEdge {
	g := p.grid
	if !g.IsWalkable(cell) {
		return buf
	}
	cx, cz := g.CellCoords(cell)
	h := g.Cells[cell].Height
	diag := g.CellSize * float32(math.Sqrt2)

	for i, d := range neighborDirs {
		nx, nz := cx+d[0], cz+d[1]
		if !g.InBounds(nx, nz) {
			continue
		}
		n := g.CellIndex(nx, nz)
		if !g.Cells[n].Walkable {
			continue
		}
		if common.Abs(g.Cells[n].Height-h) > p.stepHeight {
			continue
		}
		dist := g.CellSize
		if i >= 4 {
			dist = diag
		}
		costMul := (g.Cells[cell].Cost + g.Cells[n].Cost) * 0.5
		buf = append(buf, GraphEdge{To: n, Cost: dist * costMul})
	}

	for _, l := range p.links {
		if l.CellA == cell {
			buf = append(buf, GraphEdge{To: l.CellB, Cost: l.Cost})
		}
		if l.Bidirectional && l.CellB == cell {
			buf = append(buf, GraphEdge{To: l.CellA, Cost: l.Cost})
		}
	}
	return buf
}
