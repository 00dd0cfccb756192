// Package geom implements the geometry engine used to locate a measured
// blade against a reference coordinate system: least-squares plane fitting,
// quadratic interpolation, rigid transforms, Euler angle extraction, and
// Frenet-style local frames built from measured point clouds.
//
// All functions are pure: inputs are never mutated and every matrix or
// vector is returned by value (or freshly allocated), so concurrent calls
// with disjoint inputs are safe.
package geom

import (
	"errors"
	"math"
)

// Sentinel errors for the degeneracy taxonomy. Callers check with errors.Is.
var (
	// ErrDegenerateInput reports a singular or near-singular fit system,
	// e.g. collinear points in a plane fit or coincident x values in a
	// quadratic interpolation.
	ErrDegenerateInput = errors.New("degenerate input: singular fit system")

	// ErrZeroVector reports an attempt to normalize a zero-length vector.
	ErrZeroVector = errors.New("zero-length vector")
)

// zeroTol is the squared-length threshold below which a vector is treated
// as zero for normalization purposes.
const zeroTol = 1e-12

// Vec3 is a 3-component vector. Value type; no identity beyond coordinates.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to unit length. Returns ErrZeroVector when v is
// (numerically) the zero vector; normalizing it is undefined and must fail
// loudly rather than produce NaNs.
func (v Vec3) Unit() (Vec3, error) {
	n2 := v.Dot(v)
	if n2 < zeroTol {
		return Vec3{}, ErrZeroVector
	}
	inv := 1.0 / math.Sqrt(n2)
	return v.Scale(inv), nil
}

// forwardX is the canonical "forward" sign policy used by the frame
// builders: a direction is flipped so its x-component is non-negative.
// Keeping the convention in one place makes it auditable and testable.
func forwardX(v Vec3) Vec3 {
	if v.X < 0 {
		return v.Neg()
	}
	return v
}
