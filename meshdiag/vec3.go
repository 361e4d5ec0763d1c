package meshdiag

import "math"

// Vec3 is a point or direction in 3D space.
//
// Positions are supplied to Analyze as 32-bit floats (per the mesh
// data model), but all internal arithmetic is performed in float64
// to avoid compounding rounding error across sums, cross products
// and normalizations computed over many triangles.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(v1 Vec3) Vec3 {
	return Vec3{v.X + v1.X, v.Y + v1.Y, v.Z + v1.Z}
}

func (v Vec3) Sub(v1 Vec3) Vec3 {
	return Vec3{v.X - v1.X, v.Y - v1.Y, v.Z - v1.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(v1 Vec3) float64 {
	return v.X*v1.X + v.Y*v1.Y + v.Z*v1.Z
}

func (v Vec3) Cross(v1 Vec3) Vec3 {
	return Vec3{
		v.Y*v1.Z - v.Z*v1.Y,
		v.Z*v1.X - v.X*v1.Z,
		v.X*v1.Y - v.Y*v1.X,
	}
}

func (v Vec3) NormSquared() float64 {
	return v.Dot(v)
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.NormSquared())
}

func (v Vec3) Dist(v1 Vec3) float64 {
	return v.Sub(v1).Norm()
}

func (v Vec3) DistSquared(v1 Vec3) float64 {
	return v.Sub(v1).NormSquared()
}

// Normalize returns v scaled to unit length. Callers must guard
// against a near-zero norm themselves; this mirrors the teacher's
// convention of leaving degenerate-normal handling to the caller
// rather than silently returning a zero vector.
func (v Vec3) Normalize() Vec3 {
	return v.Scale(1 / v.Norm())
}

func (v Vec3) Min(v1 Vec3) Vec3 {
	return Vec3{math.Min(v.X, v1.X), math.Min(v.Y, v1.Y), math.Min(v.Z, v1.Z)}
}

func (v Vec3) Max(v1 Vec3) Vec3 {
	return Vec3{math.Max(v.X, v1.X), math.Max(v.Y, v1.Y), math.Max(v.Z, v1.Z)}
}

// Array returns the vector's components as axis-indexed array,
// convenient for generic per-axis loops in the self-intersection
// axis-projection and coplanar-projection steps.
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
