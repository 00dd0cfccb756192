package geom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Quadratic holds the coefficients of y = A·x² + B·x + C.
type Quadratic struct {
	A, B, C float64
}

// At evaluates the quadratic at x.
func (q Quadratic) At(x float64) float64 {
	return q.A*x*x + q.B*x + q.C
}

// Slope returns dy/dx at x.
func (q Quadratic) Slope(x float64) float64 {
	return 2*q.A*x + q.B
}

// FitQuadratic interpolates the unique parabola through three points with
// distinct x coordinates (3 points, 3 unknowns: interpolation, not a fit).
// The Vandermonde system is solved with a rank-revealing QR factorization;
// coincident x values make it singular and return ErrDegenerateInput.
func FitQuadratic(x0, x1, x2, y0, y1, y2 float64) (Quadratic, error) {
	a := mat.NewDense(3, 3, []float64{
		x0 * x0, x0, 1,
		x1 * x1, x1, 1,
		x2 * x2, x2, 1,
	})
	b := mat.NewVecDense(3, []float64{y0, y1, y2})

	var qr mat.QR
	qr.Factorize(a)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, b); err != nil {
		return Quadratic{}, fmt.Errorf("quadratic through x=(%g,%g,%g): %w", x0, x1, x2, ErrDegenerateInput)
	}
	return Quadratic{A: sol.AtVec(0), B: sol.AtVec(1), C: sol.AtVec(2)}, nil
}
