package pathfind

import (
	"testing"

	"github.com/gorustyt/gonavgrid/common"
	"github.com/gorustyt/gonavgrid/navgrid"
)

func gridOf(cellsX, cellsZ int32, walkable func(x, z int32) bool) *navgrid.Grid {
	g := &navgrid.Grid{
		CellSize: 1,
		CellsX:   cellsX,
		CellsZ:   cellsZ,
		Cells:    make([]navgrid.Cell, cellsX*cellsZ),
		MinCost:  1,
	}
	for z := int32(0); z < cellsZ; z++ {
		for x := int32(0); x < cellsX; x++ {
			if walkable(x, z) {
				g.Cells[g.CellIndex(x, z)] = navgrid.Cell{Cost: 1, Walkable: true}
			}
		}
	}
	return g
}

func queryOver(g *navgrid.Grid) *NavQuery {
	return NewNavQuery(navgrid.NewPathGraph(g, 0.4))
}

func TestFindCellPathConnected(t *testing.T) {
	g := gridOf(8, 8, func(x, z int32) bool { return true })
	q := queryOver(g)

	cells := q.FindCellPath(common.Vec3{0.5, 0, 0.5}, common.Vec3{7.5, 0, 7.5})
	if len(cells) == 0 {
		t.Fatal("expected a path on an open grid")
	}
	if cells[0] != g.CellIndex(0, 0) {
		t.Errorf("path starts at the resolved start cell, got %d", cells[0])
	}
	if cells[len(cells)-1] != g.CellIndex(7, 7) {
		t.Errorf("path ends at the resolved end cell, got %d", cells[len(cells)-1])
	}
	// Pure diagonal run across an open 8x8 grid.
	if len(cells) != 8 {
		t.Errorf("expected the 8-cell diagonal, got %d cells", len(cells))
	}
}

func TestFindCellPathDisconnected(t *testing.T) {
	// A full-height wall of absent cells at x == 3.
	g := gridOf(8, 4, func(x, z int32) bool { return x != 3 })
	q := queryOver(g)

	cells := q.FindCellPath(common.Vec3{0.5, 0, 0.5}, common.Vec3{7.5, 0, 3.5})
	if len(cells) != 0 {
		t.Fatalf("expected no path across the gap, got %d cells", len(cells))
	}
}

func TestLinkBridgesGap(t *testing.T) {
	g := gridOf(8, 4, func(x, z int32) bool { return x != 3 })
	graph := navgrid.NewPathGraph(g, 0.4)
	graph.AddLink(g.CellIndex(2, 1), g.CellIndex(4, 1), true, 0)
	q := NewNavQuery(graph)

	cells := q.FindCellPath(common.Vec3{0.5, 0, 0.5}, common.Vec3{7.5, 0, 3.5})
	if len(cells) == 0 {
		t.Fatal("expected the link to bridge the gap")
	}
	crossed := false
	for i := 0; i+1 < len(cells); i++ {
		if cells[i] == g.CellIndex(2, 1) && cells[i+1] == g.CellIndex(4, 1) {
			crossed = true
		}
	}
	if !crossed {
		t.Error("path does not traverse the registered link")
	}
}

func TestFindCellPathUnresolvableStart(t *testing.T) {
	g := gridOf(9, 9, func(x, z int32) bool { return x > 6 })
	q := queryOver(g)

	// Start sits more than three rings from any walkable cell.
	cells := q.FindCellPath(common.Vec3{0.5, 0, 0.5}, common.Vec3{7.5, 0, 7.5})
	if len(cells) != 0 {
		t.Fatal("start beyond the resolve radius must fail immediately")
	}
}

func TestFindCellPathSameCell(t *testing.T) {
	g := gridOf(4, 4, func(x, z int32) bool { return true })
	q := queryOver(g)

	cells := q.FindCellPath(common.Vec3{1.2, 0, 1.2}, common.Vec3{1.8, 0, 1.8})
	if len(cells) != 1 || cells[0] != g.CellIndex(1, 1) {
		t.Fatalf("same-cell query returns the single cell, got %v", cells)
	}
}

func TestFindCellPathDeterministic(t *testing.T) {
	// Symmetric open grid offers many equal-cost paths; equal f-scores
	// break toward lower cell indices, so repeated runs must agree.
	g := gridOf(12, 12, func(x, z int32) bool { return true })
	q := queryOver(g)

	first := q.FindCellPath(common.Vec3{0.5, 0, 5.5}, common.Vec3{11.5, 0, 5.5})
	for run := 0; run < 5; run++ {
		again := q.FindCellPath(common.Vec3{0.5, 0, 5.5}, common.Vec3{11.5, 0, 5.5})
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d != %d", run, len(again), len(first))
		}
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("run %d: cell %d differs", run, i)
			}
		}
	}
}

func TestCheapTerrainPreferred(t *testing.T) {
	// Three-row corridor: the middle row costs half as much, and the
	// heuristic stays admissible because MinCost scales it.
	g := gridOf(10, 3, func(x, z int32) bool { return true })
	for x := int32(0); x < 10; x++ {
		g.Cells[g.CellIndex(x, 1)].Cost = 0.5
	}
	g.MinCost = 0.5
	q := queryOver(g)

	cells := q.FindCellPath(common.Vec3{0.5, 0, 1.5}, common.Vec3{9.5, 0, 1.5})
	if len(cells) != 10 {
		t.Fatalf("expected the straight cheap row, got %d cells", len(cells))
	}
	for _, c := range cells {
		_, z := g.CellCoords(c)
		if z != 1 {
			t.Fatalf("path left the cheap row at cell %d", c)
		}
	}
}

func TestFindPathEndpoints(t *testing.T) {
	g := gridOf(8, 8, func(x, z int32) bool { return true })
	q := queryOver(g)

	start := common.Vec3{0.7, 0, 0.2}
	end := common.Vec3{7.1, 0, 7.9}
	points := q.FindPath(start, end, false)
	if len(points) == 0 {
		t.Fatal("expected a path")
	}
	if points[0].X() != start.X() || points[0].Z() != start.Z() {
		t.Errorf("first point keeps the query's planar start, got %v", points[0])
	}
	last := points[len(points)-1]
	if last.X() != end.X() || last.Z() != end.Z() {
		t.Errorf("last point keeps the query's planar end, got %v", last)
	}
}

func TestFindPathSameCellKeepsBothEndpoints(t *testing.T) {
	g := gridOf(4, 4, func(x, z int32) bool { return true })
	q := queryOver(g)

	start := common.Vec3{1.2, 0, 1.2}
	end := common.Vec3{1.8, 0, 1.8}
	points := q.FindPath(start, end, false)
	if len(points) != 2 {
		t.Fatalf("same-cell query returns start and end, got %v", points)
	}
	if points[0].X() != start.X() || points[0].Z() != start.Z() {
		t.Errorf("first point keeps the resolved start, got %v", points[0])
	}
	if points[1].X() != end.X() || points[1].Z() != end.Z() {
		t.Errorf("last point keeps the resolved end, got %v", points[1])
	}

	// Smoothing a two-point path is a no-op.
	smoothed := q.FindPath(start, end, true)
	if len(smoothed) != 2 {
		t.Fatalf("smoothed same-cell path keeps both endpoints, got %v", smoothed)
	}
}

func TestFindPathFailureIsEmptyNotNil(t *testing.T) {
	g := gridOf(4, 4, func(x, z int32) bool { return x < 2 })
	// End far outside the grid.
	points := queryOver(g).FindPath(common.Vec3{0.5, 0, 0.5}, common.Vec3{100, 0, 100}, true)
	if points == nil || len(points) != 0 {
		t.Fatalf("failure returns an empty, non-nil slice, got %v", points)
	}
}
