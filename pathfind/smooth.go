package pathfind

import (
	"math"

	"github.com/gorustyt/gonavgrid/common"
)

// Interior points whose incoming and outgoing directions agree at least this
// closely on the horizontal plane are dropped.
const kCollinearCos float32 = 0.996

const kMinSegmentLen float32 = 1e-6

// SmoothPath prunes near-collinear interior points in a single left-to-right
// pass. Endpoints are preserved exactly and the result never grows.
//
// This is deliberately not an iterate-until-fixpoint reduction: a
// near-collinear run longer than two segments can keep interior points, and
// callers relying on that should not "fix" it here.
func SmoothPath(points []common.Vec3) []common.Vec3 {
	if len(points) <= 2 {
		out := make([]common.Vec3, len(points))
		copy(out, points)
		return out
	}

	out := make([]common.Vec3, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points)-1; i++ {
		prev := out[len(out)-1]
		cur := points[i]
		next := points[i+1]
		if horizontalCos(prev, cur, next) > kCollinearCos {
			continue
		}
		out = append(out, cur)
	}
	out = append(out, points[len(points)-1])
	return out
}

// horizontalCos returns the cosine of the turn angle at cur on the xz-plane.
// Degenerate segments count as straight so duplicate points collapse.
func horizontalCos(prev, cur, next common.Vec3) float32 {
	ax := cur.X() - prev.X()
	az := cur.Z() - prev.Z()
	bx := next.X() - cur.X()
	bz := next.Z() - cur.Z()
	la := float32(math.Sqrt(float64(ax*ax + az*az)))
	lb := float32(math.Sqrt(float64(bx*bx + bz*bz)))
	if la < kMinSegmentLen || lb < kMinSegmentLen {
		return 1
	}
	return (ax*bx + az*bz) / (la * lb)
}
