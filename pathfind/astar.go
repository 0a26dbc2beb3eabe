package pathfind

import (
	"github.com/gorustyt/gonavgrid/common"
	"github.com/gorustyt/gonavgrid/navgrid"
)

const (
	// Search heuristic scale, keeps A* slightly greedy toward the goal.
	hScale float32 = 0.999

	// Nearest-cell resolution searches square rings out to this radius.
	kResolveMaxRing int32 = 3
)

// NavQuery answers shortest-path queries over a path graph. It is read-only
// with respect to the grid and safe to call repeatedly within a tick.
type NavQuery struct {
	graph *navgrid.PathGraph
}

func NewNavQuery(graph *navgrid.PathGraph) *NavQuery {
	return &NavQuery{graph: graph}
}

// FindCellPath resolves both world positions to their nearest walkable cells
// and returns the minimal-cost cell index sequence between them, or nil when
// either point has no nearby cell or the cells are disconnected.
func (q *NavQuery) FindCellPath(startPos, endPos common.Vec3) []int32 {
	grid := q.graph.Grid()
	startIdx, ok := grid.NearestCell(startPos, kResolveMaxRing)
	if !ok {
		return nil
	}
	endIdx, ok := grid.NearestCell(endPos, kResolveMaxRing)
	if !ok {
		return nil
	}
	return q.findCellPath(startIdx, endIdx)
}

func (q *NavQuery) findCellPath(startIdx, endIdx int32) []int32 {
	if startIdx == endIdx {
		return []int32{startIdx}
	}
	grid := q.graph.Grid()

	// Euclidean distance stays admissible only while no edge is cheaper
	// than it; cost multipliers below 1 are compensated here.
	heuristicScale := hScale
	if grid.MinCost > 0 && grid.MinCost < 1 {
		heuristicScale *= grid.MinCost
	}
	endCenter := grid.CellCenter(endIdx)

	nodes := make(map[int32]*pathNode, 64)
	// Equal totals order by lower cell index, so results are deterministic
	// rather than an artifact of insertion order.
	openList := NewNodeQueue[*pathNode](func(t1, t2 *pathNode) bool {
		if t1.total != t2.total {
			return t1.total < t2.total
		}
		return t1.idx < t2.idx
	})

	startNode := &pathNode{
		idx:   startIdx,
		total: common.Vdist(grid.CellCenter(startIdx), endCenter) * heuristicScale,
		flags: nodeOpen,
	}
	nodes[startIdx] = startNode
	openList.Offer(startNode)

	// CPU guard for degenerate graphs; each cell can be reopened only by a
	// strictly better total, so this bound is generous.
	maxIters := int(grid.NumCells()) * 4
	edgeBuf := make([]navgrid.GraphEdge, 0, 16)

	for iter := 0; !openList.Empty() && iter < maxIters; iter++ {
		bestNode := openList.Poll()
		bestNode.flags &= ^uint8(nodeOpen)
		bestNode.flags |= nodeClosed

		if bestNode.idx == endIdx {
			return reconstructPath(bestNode)
		}

		edgeBuf = q.graph.Neighbors(bestNode.idx, edgeBuf[:0])
		for _, edge := range edgeBuf {
			cost := bestNode.cost + edge.Cost
			heuristic := float32(0)
			if edge.To != endIdx {
				heuristic = common.Vdist(grid.CellCenter(edge.To), endCenter) * heuristicScale
			}
			total := cost + heuristic

			neighborNode := nodes[edge.To]
			if neighborNode == nil {
				neighborNode = &pathNode{idx: edge.To}
				nodes[edge.To] = neighborNode
			} else if total >= neighborNode.total {
				// Already reached at least this cheaply, open or closed.
				continue
			}

			neighborNode.parent = bestNode
			neighborNode.cost = cost
			neighborNode.total = total
			if neighborNode.flags&nodeOpen != 0 {
				openList.Update(neighborNode)
			} else {
				neighborNode.flags = nodeOpen
				openList.Offer(neighborNode)
			}
		}
	}

	// Open set exhausted without reaching the goal: disconnected.
	return nil
}

func reconstructPath(end *pathNode) []int32 {
	n := 0
	for node := end; node != nil; node = node.parent {
		n++
	}
	path := make([]int32, n)
	for node := end; node != nil; node = node.parent {
		n--
		path[n] = node.idx
	}
	return path
}

// FindPath runs FindCellPath and converts the result to world-space
// waypoints, substituting the resolved start and end positions for the
// first and last cell centers. The returned slice is fresh per call and
// empty (never nil) on failure.
func (q *NavQuery) FindPath(startPos, endPos common.Vec3, smooth bool) []common.Vec3 {
	grid := q.graph.Grid()
	cells := q.FindCellPath(startPos, endPos)
	if len(cells) == 0 {
		return []common.Vec3{}
	}

	if len(cells) == 1 {
		// Both endpoints resolved to the same cell; keep them both so the
		// first point is still the resolved start.
		points := []common.Vec3{
			resolveOnCell(grid, cells[0], startPos),
			resolveOnCell(grid, cells[0], endPos),
		}
		if smooth {
			points = SmoothPath(points)
		}
		return points
	}

	points := make([]common.Vec3, len(cells))
	for i, c := range cells {
		points[i] = grid.CellCenter(c)
	}
	points[0] = resolveOnCell(grid, cells[0], startPos)
	points[len(points)-1] = resolveOnCell(grid, cells[len(cells)-1], endPos)

	if smooth {
		points = SmoothPath(points)
	}
	return points
}

// resolveOnCell keeps the query's planar position when it already lies on
// the resolved cell; otherwise the point was jittered to a nearby cell and
// its center is used. Height always comes from the sampled surface.
func resolveOnCell(grid *navgrid.Grid, cell int32, pos common.Vec3) common.Vec3 {
	x, z := grid.WorldToCell(pos)
	if grid.InBounds(x, z) && grid.CellIndex(x, z) == cell {
		return common.Vec3{pos.X(), grid.Cells[cell].Height, pos.Z()}
	}
	return grid.CellCenter(cell)
}
