package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Plane carries both representations of a fitted plane: the implicit form
// A·x + B·y + C·z + D = 0 with a unit normal (A,B,C), and the height-field
// form z = AA·x + BB·y + DD the fit actually solves for. Both describe the
// same plane; the implicit form is always derived from the height-field
// coefficients so they cannot drift apart. The normal's sign is fixed so C
// is positive ("up" is consistent regardless of point ordering).
type Plane struct {
	A, B, C, D float64 // implicit form, unit normal
	AA, BB, DD float64 // height-field form
}

// Normal returns the unit normal of the implicit form.
func (p Plane) Normal() Vec3 {
	return Vec3{p.A, p.B, p.C}
}

// HeightAt evaluates the height-field form at (x, y).
func (p Plane) HeightAt(x, y float64) float64 {
	return p.AA*x + p.BB*y + p.DD
}

// Distance returns the signed distance from pt to the plane, positive on
// the side the unit normal points to.
func (p Plane) Distance(pt Vec3) float64 {
	return p.A*pt.X + p.B*pt.Y + p.C*pt.Z + p.D
}

// FitPlane fits a plane through N >= 3 points given as aligned coordinate
// slices, by ordinary least squares on the height-field model
// z = AA·x + BB·y + DD. The 3×3 normal-equations system is solved with a
// rank-revealing QR factorization; collinear or coincident points make the
// system singular and return ErrDegenerateInput instead of garbage
// coefficients.
func FitPlane(x, y, z []float64) (Plane, error) {
	n := len(x)
	if len(y) != n || len(z) != n {
		return Plane{}, fmt.Errorf("plane fit: coordinate slices have mismatched lengths %d/%d/%d", len(x), len(y), len(z))
	}
	if n < 3 {
		return Plane{}, fmt.Errorf("plane fit: need at least 3 points, got %d", n)
	}

	sxx := floats.Dot(x, x)
	sxy := floats.Dot(x, y)
	syy := floats.Dot(y, y)
	sx := floats.Sum(x)
	sy := floats.Sum(y)
	u := mat.NewDense(3, 3, []float64{
		sxx, sxy, sx,
		sxy, syy, sy,
		sx, sy, float64(n),
	})
	v := mat.NewVecDense(3, []float64{
		floats.Dot(x, z),
		floats.Dot(y, z),
		floats.Sum(z),
	})

	var qr mat.QR
	qr.Factorize(u)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, v); err != nil {
		return Plane{}, fmt.Errorf("plane fit: %w", ErrDegenerateInput)
	}

	p := Plane{AA: sol.AtVec(0), BB: sol.AtVec(1), DD: sol.AtVec(2)}
	// Derive the implicit unit-normal form; C > 0 by construction.
	p.C = math.Sqrt(1 / (p.AA*p.AA + p.BB*p.BB + 1))
	p.A = -p.AA * p.C
	p.B = -p.BB * p.C
	p.D = -p.DD * p.C
	return p, nil
}
