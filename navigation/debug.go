package navigation

import (
	"github.com/gorustyt/gonavgrid/debug_utils"
)

// SetDebugDraw attaches a debug-draw sink. Pass nil to detach.
func (s *NavSystem) SetDebugDraw(dd debug_utils.DuDebugDraw) {
	s.debugDraw = dd
}

// SetDebugEnabled toggles debug rendering of the sampled cell centers.
func (s *NavSystem) SetDebugEnabled(enabled bool) {
	s.debugEnabled = enabled
}

// DrawDebug renders the walkable cell centers and off-mesh links through the
// attached sink. A no-op while disabled, detached, or unloaded.
func (s *NavSystem) DrawDebug() {
	if !s.debugEnabled || s.debugDraw == nil || !s.IsLoaded() {
		return
	}
	debug_utils.DuDebugDrawGridPoints(s.debugDraw, s.grid, 3)
	debug_utils.DuDebugDrawLinks(s.debugDraw, s.graph, 1)
}
