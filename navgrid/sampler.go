package navgrid

import (
	"github.com/gorustyt/gonavgrid/common"
)

// Surface is the authoring view of one scene surface, read at build time
// only. Navigable marks it part of the walkable world; CostMultiplier is an
// optional traversal-cost override (> 0 to take effect, anything else is
// ignored and the cell defaults to 1).
type Surface struct {
	BMin, BMax     common.Vec3
	Navigable      bool
	CostMultiplier float32
}

// RaycastHit describes the closest intersection of a sample ray.
// Surface indexes the surface slice the ray was cast against.
type RaycastHit struct {
	Distance float32
	Point    common.Vec3
	Normal   common.Vec3
	Surface  int
}

// SceneSampler is the injected ray-casting capability. Implementations cast
// against the navigable surface subset only and report the closest hit.
type SceneSampler interface {
	Raycast(origin, dir common.Vec3, maxDist float32) (RaycastHit, bool)
}
