package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// gimbalEps bounds |cos(pitch)| below which the Euler decomposition is
// treated as gimbal-locked and the fallback convention (yaw fixed to zero)
// is used instead of dividing by a near-zero value.
const gimbalEps = 1e-9

// EulerSolution holds the two decompositions of a rotation matrix under the
// Rz(A)·Ry(B)·Rx(C) convention: A is yaw about Z, B pitch about Y, C roll
// about X. A rotation matrix has at most two distinct decompositions; at a
// gimbal-lock singularity both branches collapse to one representative with
// yaw fixed to zero.
type EulerSolution struct {
	A1, B1, C1 float64 // primary branch
	A2, B2, C2 float64 // alternate branch: A+180°, 180°-B, C+180°
}

// RotationToEuler extracts both Euler decompositions from the rotation
// block of r (the upper-left 3×3 is read; r may be 3×3 or 4×4). Angles are
// returned in degrees when inDegrees is true, radians otherwise. Neither
// branch is preferred; the caller decides.
func RotationToEuler(r mat.Matrix, inDegrees bool) EulerSolution {
	r00, r01, r02 := r.At(0, 0), r.At(0, 1), r.At(0, 2)
	r10 := r.At(1, 0)
	r20, r21, r22 := r.At(2, 0), r.At(2, 1), r.At(2, 2)

	var s EulerSolution
	sb := -r20
	if sb > 1 {
		sb = 1
	} else if sb < -1 {
		sb = -1
	}
	b1 := math.Asin(sb)

	if math.Abs(math.Cos(b1)) < gimbalEps {
		// Gimbal lock: yaw and roll are coupled. Fix yaw to zero and put
		// the whole coupled angle into roll. Both branches collapse.
		s.A1 = 0
		s.B1 = b1
		if r20 < 0 {
			s.C1 = math.Atan2(r01, r02)
		} else {
			s.C1 = math.Atan2(-r01, -r02)
		}
		s.A2, s.B2, s.C2 = s.A1, s.B1, s.C1
	} else {
		s.A1 = math.Atan2(r10, r00)
		s.B1 = b1
		s.C1 = math.Atan2(r21, r22)
		s.A2 = normRad(s.A1 + math.Pi)
		s.B2 = normRad(math.Pi - s.B1)
		s.C2 = normRad(s.C1 + math.Pi)
	}

	if inDegrees {
		s.A1, s.B1, s.C1 = degrees(s.A1), degrees(s.B1), degrees(s.C1)
		s.A2, s.B2, s.C2 = degrees(s.A2), degrees(s.B2), degrees(s.C2)
	}
	return s
}

// EulerToRotation builds the 3×3 rotation Rz(a)·Ry(b)·Rx(c). Angles are in
// degrees when inDegrees is true. Exact algebraic inverse of the primary
// branch of RotationToEuler.
func EulerToRotation(a, b, c float64, inDegrees bool) *mat.Dense {
	if inDegrees {
		a, b, c = radians(a), radians(b), radians(c)
	}
	ca, sa := math.Cos(a), math.Sin(a)
	cb, sb := math.Cos(b), math.Sin(b)
	cc, sc := math.Cos(c), math.Sin(c)
	return mat.NewDense(3, 3, []float64{
		ca * cb, ca*sb*sc - sa*cc, ca*sb*cc + sa*sc,
		sa * cb, sa*sb*sc + ca*cc, sa*sb*cc - ca*sc,
		-sb, cb * sc, cb * cc,
	})
}

// normRad normalizes an angle to (-pi, pi].
func normRad(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func radians(deg float64) float64 { return deg * math.Pi / 180 }
