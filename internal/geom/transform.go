package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Axis names a coordinate axis for axis-aligned rotations.
type Axis byte

const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
	AxisZ Axis = 'z'
)

// snapEps is the fixed snapping threshold for axis rotations: any matrix
// entry with absolute value at or below it is forced to exactly zero. This
// keeps 90°/180° rotations free of 1e-16 residues in comparisons and
// serialized output. It is deliberately lossy for angles that are nearly
// but not exactly axis-aligned.
const snapEps = 1e-4

// identity4 returns a fresh 4×4 identity matrix.
func identity4() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// setCol3 writes v into rows 0..2 of column j.
func setCol3(m *mat.Dense, j int, v Vec3) {
	m.Set(0, j, v.X)
	m.Set(1, j, v.Y)
	m.Set(2, j, v.Z)
}

// col3 reads rows 0..2 of column j.
func col3(m mat.Matrix, j int) Vec3 {
	return Vec3{m.At(0, j), m.At(1, j), m.At(2, j)}
}

// Translation returns the 4×4 homogeneous transform that translates by
// delta.
func Translation(delta Vec3) *mat.Dense {
	t := identity4()
	setCol3(t, 3, delta)
	return t
}

// AxisRotation returns the 4×4 homogeneous transform for a right-handed
// rotation of angleDeg degrees about the named axis. Entries within snapEps
// of zero are snapped to exactly zero. An unknown axis is an error.
func AxisRotation(angleDeg float64, axis Axis) (*mat.Dense, error) {
	r := identity4()
	a := angleDeg * math.Pi / 180
	c, s := math.Cos(a), math.Sin(a)
	switch axis {
	case AxisX:
		r.Set(1, 1, c)
		r.Set(1, 2, -s)
		r.Set(2, 1, s)
		r.Set(2, 2, c)
	case AxisY:
		r.Set(0, 0, c)
		r.Set(0, 2, s)
		r.Set(2, 0, -s)
		r.Set(2, 2, c)
	case AxisZ:
		r.Set(0, 0, c)
		r.Set(0, 1, -s)
		r.Set(1, 0, s)
		r.Set(1, 1, c)
	default:
		return nil, fmt.Errorf("unknown rotation axis %q", axis)
	}
	snapZeros(r)
	return r, nil
}

// snapZeros zeroes every entry with |v| <= snapEps, in place.
func snapZeros(m *mat.Dense) {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.Abs(m.At(i, j)) <= snapEps {
				m.Set(i, j, 0)
			}
		}
	}
}

// Compose multiplies homogeneous transforms left to right: Compose(a, b, c)
// returns a·b·c. All arguments must be 4×4.
func Compose(ms ...*mat.Dense) *mat.Dense {
	out := identity4()
	for _, m := range ms {
		var tmp mat.Dense
		tmp.Mul(out, m)
		out.CloneFrom(&tmp)
	}
	return out
}

// Apply transforms point p by the 4×4 homogeneous matrix t (rotation plus
// translation; w is assumed 1).
func Apply(t mat.Matrix, p Vec3) Vec3 {
	return Vec3{
		t.At(0, 0)*p.X + t.At(0, 1)*p.Y + t.At(0, 2)*p.Z + t.At(0, 3),
		t.At(1, 0)*p.X + t.At(1, 1)*p.Y + t.At(1, 2)*p.Z + t.At(1, 3),
		t.At(2, 0)*p.X + t.At(2, 1)*p.Y + t.At(2, 2)*p.Z + t.At(2, 3),
	}
}
