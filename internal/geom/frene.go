package geom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Frene is an orthonormal local frame at a curve point: unit tangent T,
// binormal B and normal N (right-handed), anchored at P. Transform is the
// 4×4 homogeneous matrix with rotation columns [T, B, N] and translation
// column P; it is derived from the vectors at construction and the two
// never diverge.
type Frene struct {
	T, B, N, P Vec3
	Transform  *mat.Dense
}

// newFrene assembles a Frene and its transform from an orthonormal triad.
func newFrene(t, b, n, p Vec3) Frene {
	tr := identity4()
	setCol3(tr, 0, t)
	setCol3(tr, 1, b)
	setCol3(tr, 2, n)
	setCol3(tr, 3, p)
	return Frene{T: t, B: b, N: n, P: p, Transform: tr}
}

// FreneByPoly builds the local frame at p0 from curve neighbours: u1 and u2
// are the neighbours of p0 in the primary point family, v1 a neighbour in
// the second family. A parabola is interpolated through the (x, y) values
// of (u1, p0, u2); the primary tangent is (1, dy/dx at p0.x, 0) normalized
// and oriented forward in x. The normal is the cross product of the primary
// tangent with the direction to v1, and the binormal closes the
// right-handed triad as N × T.
func FreneByPoly(p0, u1, u2, v1 Vec3) (Frene, error) {
	q, err := FitQuadratic(u1.X, p0.X, u2.X, u1.Y, p0.Y, u2.Y)
	if err != nil {
		return Frene{}, fmt.Errorf("frene by poly: %w", err)
	}

	tu, err := Vec3{1, q.Slope(p0.X), 0}.Unit()
	if err != nil {
		return Frene{}, fmt.Errorf("frene by poly: tangent: %w", err)
	}
	tu = forwardX(tu)

	tv, err := v1.Sub(p0).Unit()
	if err != nil {
		return Frene{}, fmt.Errorf("frene by poly: second-family neighbour coincides with p0: %w", err)
	}

	n, err := tu.Cross(tv).Unit()
	if err != nil {
		return Frene{}, fmt.Errorf("frene by poly: tangents are parallel: %w", err)
	}
	b, err := n.Cross(tu).Unit()
	if err != nil {
		return Frene{}, fmt.Errorf("frene by poly: binormal: %w", err)
	}
	return newFrene(tu, b, n, p0), nil
}

// FreneByCirc builds the local frame at pt0 assuming the curve is locally a
// circle about the centre ptc: the radial direction is the normal, the
// in-plane perpendicular (oriented forward in x) is the tangent, and the
// binormal closes the triad as N × T. A zero-length radial vector
// (pt0 == ptc) is ErrZeroVector.
func FreneByCirc(pt0, ptc Vec3) (Frene, error) {
	n, err := pt0.Sub(ptc).Unit()
	if err != nil {
		return Frene{}, fmt.Errorf("frene by circle: radial vector: %w", err)
	}

	t, err := Vec3{-n.Y, n.X, 0}.Unit()
	if err != nil {
		return Frene{}, fmt.Errorf("frene by circle: radial vector is parallel to z: %w", err)
	}
	t = forwardX(t)

	b, err := n.Cross(t).Unit()
	if err != nil {
		return Frene{}, fmt.Errorf("frene by circle: binormal: %w", err)
	}
	return newFrene(t, b, n, pt0), nil
}
