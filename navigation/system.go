package navigation

import (
	"github.com/gorustyt/gonavgrid/common"
	"github.com/gorustyt/gonavgrid/debug_utils"
	"github.com/gorustyt/gonavgrid/navgrid"
	"github.com/gorustyt/gonavgrid/pathfind"
	"go.uber.org/zap"
)

// Nearest-cell search radius shared by query and link resolution.
const kLinkResolveMaxRing int32 = 3

type pendingLink struct {
	worldA        common.Vec3
	worldB        common.Vec3
	bidirectional bool
	cost          float32
}

type FindPathOptions struct {
	Smooth bool
}

// NavSystem is the navigation subsystem facade: it owns the walkability
// grid, the path graph with its off-mesh links, and the pending-link queue.
//
// The subsystem follows a single-threaded run-to-completion model: Build is
// a blocking scene-initialization call, FindPath is read-only afterwards,
// and RegisterLink mutates the link list and must not be interleaved with an
// in-flight FindPath.
type NavSystem struct {
	cfg     *navgrid.BuildSettings
	sampler navgrid.SceneSampler
	log     *zap.Logger

	grid  *navgrid.Grid
	graph *navgrid.PathGraph
	query *pathfind.NavQuery

	// Links requested before the grid exists; drained FIFO exactly once
	// per successful build. Owned by this instance, never shared.
	pending []pendingLink

	debugDraw    debug_utils.DuDebugDraw
	debugEnabled bool
}

type Option func(*NavSystem)

func WithLogger(log *zap.Logger) Option {
	return func(s *NavSystem) { s.log = log }
}

func NewNavSystem(cfg *navgrid.BuildSettings, sampler navgrid.SceneSampler, opts ...Option) (*NavSystem, error) {
	if cfg == nil {
		cfg = navgrid.DefaultBuildSettings()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &NavSystem{cfg: cfg, sampler: sampler, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// IsLoaded reports whether a grid has been built and queries can succeed.
func (s *NavSystem) IsLoaded() bool {
	return s.grid != nil
}

// Grid exposes the current grid for tooling; nil while not loaded.
func (s *NavSystem) Grid() *navgrid.Grid {
	return s.grid
}

// Graph exposes the current path graph for tooling; nil while not loaded.
func (s *NavSystem) Graph() *navgrid.PathGraph {
	return s.graph
}

// Build samples the navigable surfaces into a fresh grid, then drains the
// pending-link queue. Finding no navigable surfaces leaves the subsystem
// unloaded without error; queued links survive until a later build.
// Building again replaces the grid, and previously applied links are gone
// unless re-registered.
func (s *NavSystem) Build(surfaces []navgrid.Surface) error {
	grid, err := navgrid.BuildGrid(surfaces, s.sampler, s.cfg, s.log)
	if err != nil {
		return err
	}
	if grid == nil {
		return nil
	}
	s.install(grid)
	return nil
}

// LoadBakedGrid installs a grid previously serialized with Grid.ToBin,
// skipping the sampling raycasts. Pending links drain the same way as after
// Build.
func (s *NavSystem) LoadBakedGrid(data []byte) error {
	grid, err := navgrid.GridFromBin(data)
	if err != nil {
		return err
	}
	s.install(grid)
	return nil
}

func (s *NavSystem) install(grid *navgrid.Grid) {
	s.grid = grid
	s.graph = navgrid.NewPathGraph(grid, s.cfg.StepHeight)
	s.query = pathfind.NewNavQuery(s.graph)
	s.drainPending()
}

func (s *NavSystem) drainPending() {
	if len(s.pending) == 0 {
		return
	}
	s.log.Info("navigation: applying deferred links", zap.Int("count", len(s.pending)))
	for _, p := range s.pending {
		s.applyLink(p)
	}
	s.pending = nil
}

// RegisterLink overlays an authored shortcut between two world positions.
// Before the grid exists the request is queued and applied automatically
// after the next successful build; afterwards it resolves immediately.
// A link whose endpoints cannot be resolved is dropped with a warning.
func (s *NavSystem) RegisterLink(worldA, worldB common.Vec3, bidirectional bool, cost float32) {
	p := pendingLink{worldA: worldA, worldB: worldB, bidirectional: bidirectional, cost: cost}
	if !s.IsLoaded() {
		s.pending = append(s.pending, p)
		return
	}
	s.applyLink(p)
}

func (s *NavSystem) applyLink(p pendingLink) {
	cellA, okA := s.grid.NearestCell(p.worldA, kLinkResolveMaxRing)
	cellB, okB := s.grid.NearestCell(p.worldB, kLinkResolveMaxRing)
	if !okA || !okB {
		s.log.Warn("navigation: link endpoint has no nearby walkable cell, link dropped",
			zap.Any("worldA", p.worldA),
			zap.Any("worldB", p.worldB),
			zap.Bool("resolvedA", okA),
			zap.Bool("resolvedB", okB))
		return
	}
	s.graph.AddLink(cellA, cellB, p.bidirectional, p.cost)
}

// FindPath returns an ordered list of world-space waypoints from start to
// end, or an empty slice when the subsystem is unloaded, either point has no
// nearby walkable cell, or the cells are disconnected. Each call returns a
// fresh slice.
func (s *NavSystem) FindPath(start, end common.Vec3, opts FindPathOptions) []common.Vec3 {
	if !s.IsLoaded() {
		return []common.Vec3{}
	}
	return s.query.FindPath(start, end, opts.Smooth)
}
