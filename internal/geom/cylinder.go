package geom

import "fmt"

// Cylinder is an axis primitive measured on the part: a radius and a Frame
// whose z axis runs along the cylinder axis, anchored at the axis midpoint.
type Cylinder struct {
	R     float64
	Frame Frame
}

// CylinderFromAxis builds a Cylinder from two points on its axis and a
// measured radius. The frame sits at the midpoint of the two points with
// its z axis along the c1-to-c2 direction; the in-plane basis is completed
// the same way
// as for belt frames. Coincident axis points are ErrZeroVector.
func CylinderFromAxis(c1, c2 Vec3, r float64) (Cylinder, error) {
	n, err := c2.Sub(c1).Unit()
	if err != nil {
		return Cylinder{}, fmt.Errorf("cylinder axis: %w", err)
	}
	t, b, err := basisFromNormal(n)
	if err != nil {
		return Cylinder{}, fmt.Errorf("cylinder axis: %w", err)
	}

	mid := c1.Add(c2).Scale(0.5)
	tr := identity4()
	setCol3(tr, 0, t)
	setCol3(tr, 1, b)
	setCol3(tr, 2, n)
	setCol3(tr, 3, mid)
	return Cylinder{R: r, Frame: frameFromTransform(tr)}, nil
}
