package common

import "math"

// / Returns the square of the value.
func Sqr[T IT](a T) T {
	return a * a
}

// / Returns the absolute value.
func Abs[T IT](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

func Clamp[T IT](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func DegToRad[T float32 | float64](deg T) T {
	return deg * T(math.Pi) / 180
}

// / Returns the distance between two points on the xz-plane.
func Vdist2D(v1, v2 Vec3) float32 {
	dx := v2.X() - v1.X()
	dz := v2.Z() - v1.Z()
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}

// / Returns the distance between two points.
func Vdist(v1, v2 Vec3) float32 {
	return v2.Sub(v1).Len()
}

func VequalEps(v1, v2 Vec3, eps float32) bool {
	return VdistSqr(v1, v2) < eps*eps
}

func VdistSqr(v1, v2 Vec3) float32 {
	d := v2.Sub(v1)
	return d.Dot(d)
}
