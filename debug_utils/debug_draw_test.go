package debug_utils

import (
	"testing"

	"github.com/gorustyt/gonavgrid/common"
	"github.com/gorustyt/gonavgrid/navgrid"
)

type captureDraw struct {
	prims    []DuDebugDrawPrimitives
	vertices []common.Vec3
	colors   []Colorb
	ends     int
}

func (c *captureDraw) Begin(prim DuDebugDrawPrimitives, size ...float32) {
	c.prims = append(c.prims, prim)
}

func (c *captureDraw) Vertex(pos common.Vec3, color Colorb) {
	c.vertices = append(c.vertices, pos)
	c.colors = append(c.colors, color)
}

func (c *captureDraw) End() { c.ends++ }

func testGrid() *navgrid.Grid {
	g := &navgrid.Grid{
		CellSize: 1,
		CellsX:   2,
		CellsZ:   2,
		Cells:    make([]navgrid.Cell, 4),
		MinCost:  1,
	}
	g.Cells[0] = navgrid.Cell{Cost: 1, Walkable: true}
	g.Cells[3] = navgrid.Cell{Cost: 2, Walkable: true}
	return g
}

func TestDuDebugDrawGridPoints(t *testing.T) {
	sink := &captureDraw{}
	DuDebugDrawGridPoints(sink, testGrid(), 3)

	if len(sink.prims) != 1 || sink.prims[0] != DU_DRAW_POINTS {
		t.Fatalf("expected one points pass, got %v", sink.prims)
	}
	if len(sink.vertices) != 2 {
		t.Fatalf("only walkable cells are drawn, got %d vertices", len(sink.vertices))
	}
	// Overridden cost renders in a distinct color.
	if sink.colors[0] == sink.colors[1] {
		t.Error("default and overridden cost share a color")
	}
	if sink.ends != 1 {
		t.Errorf("End called %d times", sink.ends)
	}
}

func TestDuDebugDrawPath(t *testing.T) {
	sink := &captureDraw{}
	points := []common.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}}
	DuDebugDrawPath(sink, points, 1)

	if len(sink.prims) != 1 || sink.prims[0] != DU_DRAW_LINES {
		t.Fatalf("expected one lines pass, got %v", sink.prims)
	}
	// Two segments, two vertices each.
	if len(sink.vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(sink.vertices))
	}

	// Degenerate inputs emit nothing.
	empty := &captureDraw{}
	DuDebugDrawPath(empty, points[:1], 1)
	DuDebugDrawPath(empty, nil, 1)
	if len(empty.prims) != 0 {
		t.Error("paths shorter than one segment draw nothing")
	}
}

func TestDuRGBA(t *testing.T) {
	c := DuRGBA(1, 2, 3, 4)
	if c.R() != 1 || c.G() != 2 || c.B() != 3 || c.A() != 4 {
		t.Fatalf("got %v", c)
	}
	if c.Int() != 0x04030201 {
		t.Fatalf("packed %#x", c.Int())
	}
}
