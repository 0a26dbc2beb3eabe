package navgrid

import (
	"errors"
	"fmt"
)

var (
	kMinCellSize     float32 = 0.01
	kMaxSlopeDegrees float32 = 90.0
)

const kDefaultMaxGridCells int32 = 256

var ErrBadSettings = errors.New("navgrid: bad build settings")

// BuildSettings controls walkability-grid sampling.
// All distances are in world units, slopes in degrees.
type BuildSettings struct {
	CellSize        float32 // edge length of one grid cell on the xz-plane
	MaxGridCells    int32   // upper bound per axis, caps memory at MaxGridCells^2
	MaxSlopeDegrees float32 // steepest surface still considered walkable
	StepHeight      float32 // max height difference between connected neighbors
	Padding         float32 // x/z expansion of the sampled bounds
	SampleHeight    float32 // vertical margin added above and below the bounds
}

func DefaultBuildSettings() *BuildSettings {
	return &BuildSettings{
		CellSize:        0.5,
		MaxGridCells:    kDefaultMaxGridCells,
		MaxSlopeDegrees: 45,
		StepHeight:      0.4,
		Padding:         0.5,
		SampleHeight:    2,
	}
}

func (s *BuildSettings) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil settings", ErrBadSettings)
	}
	if s.CellSize < kMinCellSize {
		return fmt.Errorf("%w: cellSize %v below minimum %v", ErrBadSettings, s.CellSize, kMinCellSize)
	}
	if s.MaxGridCells < 1 {
		return fmt.Errorf("%w: maxGridCells %v", ErrBadSettings, s.MaxGridCells)
	}
	if s.MaxSlopeDegrees < 0 || s.MaxSlopeDegrees > kMaxSlopeDegrees {
		return fmt.Errorf("%w: maxSlopeDegrees %v outside [0, %v]", ErrBadSettings, s.MaxSlopeDegrees, kMaxSlopeDegrees)
	}
	if s.StepHeight < 0 {
		return fmt.Errorf("%w: stepHeight %v", ErrBadSettings, s.StepHeight)
	}
	if s.SampleHeight <= 0 {
		return fmt.Errorf("%w: sampleHeight %v", ErrBadSettings, s.SampleHeight)
	}
	return nil
}
