package debug_utils

type Colorb [4]uint8

func (c Colorb) R() uint8 {
	return c[0]
}

func (c Colorb) G() uint8 {
	return c[1]
}

func (c Colorb) B() uint8 {
	return c[2]
}

func (c Colorb) A() uint8 {
	return c[3]
}

func (c Colorb) Int() uint32 {
	return uint32(c.R()) | (uint32(c.G()) << 8) | (uint32(c.B()) << 16) | (uint32(c.A()) << 24)
}

func DuRGBA(r, g, b, a int) Colorb {
	return Colorb{uint8(r), uint8(g), uint8(b), uint8(a)}
}

func duMultCol(col Colorb, d int) Colorb {
	return Colorb{
		uint8(int(col.R()) * d / 255),
		uint8(int(col.G()) * d / 255),
		uint8(int(col.B()) * d / 255),
		col.A(),
	}
}
