package navgrid

import (
	"errors"
	"fmt"

	"github.com/gorustyt/gonavgrid/common/rw"
)

const (
	gridMagic   int32 = 'G'<<24 | 'N'<<16 | 'A'<<8 | 'V'
	gridVersion int32 = 1

	// Serialized size of one cell record: walkable byte, height, cost.
	cellRecordSize int64 = 9
)

var ErrBadGridData = errors.New("navgrid: bad grid data")

// ToBin serializes the baked grid so a game can load it at startup instead
// of re-running the sampling raycasts.
func (g *Grid) ToBin() []byte {
	w := rw.NewGridDataBinWriter()
	w.WriteInt32(gridMagic)
	w.WriteInt32(gridVersion)
	w.WriteFloat32(g.OriginX)
	w.WriteFloat32(g.OriginZ)
	w.WriteFloat32(g.CellSize)
	w.WriteInt32(g.CellsX)
	w.WriteInt32(g.CellsZ)
	w.WriteFloat32(g.MinCost)
	for i := range g.Cells {
		c := &g.Cells[i]
		if c.Walkable {
			w.WriteUInt8(1)
		} else {
			w.WriteUInt8(0)
		}
		w.WriteFloat32(c.Height)
		w.WriteFloat32(c.Cost)
	}
	return w.GetWriteBytes()
}

// GridFromBin decodes a grid produced by ToBin.
func GridFromBin(data []byte) (*Grid, error) {
	r := rw.NewGridDataBinReader(data)
	if magic := r.ReadInt32(); magic != gridMagic {
		return nil, fmt.Errorf("%w: magic %#x", ErrBadGridData, magic)
	}
	if version := r.ReadInt32(); version != gridVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadGridData, version)
	}
	g := &Grid{
		OriginX:  r.ReadFloat32(),
		OriginZ:  r.ReadFloat32(),
		CellSize: r.ReadFloat32(),
		CellsX:   r.ReadInt32(),
		CellsZ:   r.ReadInt32(),
		MinCost:  r.ReadFloat32(),
	}
	if r.Err() != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrBadGridData)
	}
	if g.CellSize <= 0 || g.CellsX < 1 || g.CellsZ < 1 {
		return nil, fmt.Errorf("%w: header %dx%d cellSize %v", ErrBadGridData, g.CellsX, g.CellsZ, g.CellSize)
	}
	// Header dims come from untrusted bytes; check them against the payload
	// before allocating so a corrupt header cannot demand a huge (or, after
	// int32 overflow, negative) slice.
	numCells := int64(g.CellsX) * int64(g.CellsZ)
	if numCells*cellRecordSize != int64(r.Size()) {
		return nil, fmt.Errorf("%w: %d cells, %d payload bytes", ErrBadGridData, numCells, r.Size())
	}
	g.Cells = make([]Cell, numCells)
	for i := range g.Cells {
		g.Cells[i].Walkable = r.ReadUInt8() != 0
		g.Cells[i].Height = r.ReadFloat32()
		g.Cells[i].Cost = r.ReadFloat32()
	}
	if r.Err() != nil {
		return nil, fmt.Errorf("%w: truncated cells", ErrBadGridData)
	}
	return g, nil
}
