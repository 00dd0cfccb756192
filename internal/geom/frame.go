package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Frame is a rigid pose carried in two forms that always agree: a
// human-readable position + yaw/pitch/roll (degrees) and the 4×4
// homogeneous transform. Frames are only built by constructors that derive
// both forms from the same transform; neither side is ever edited on its
// own.
type Frame struct {
	Pos              Vec3
	Yaw, Pitch, Roll float64 // degrees
	Transform        *mat.Dense
}

// Vector returns the 6-component projection [x, y, z, yaw, pitch, roll].
func (f Frame) Vector() [6]float64 {
	return [6]float64{f.Pos.X, f.Pos.Y, f.Pos.Z, f.Yaw, f.Pitch, f.Roll}
}

// frameFromTransform decodes the pose of a 4×4 homogeneous transform:
// translation from the last column, yaw/pitch/roll from the rotation block
// (yaw = atan2(T10,T00), pitch = asin(-T20), roll = atan2(T21,T22), all in
// degrees).
func frameFromTransform(t *mat.Dense) Frame {
	sb := -t.At(2, 0)
	if sb > 1 {
		sb = 1
	} else if sb < -1 {
		sb = -1
	}
	return Frame{
		Pos:       col3(t, 3),
		Yaw:       degrees(math.Atan2(t.At(1, 0), t.At(0, 0))),
		Pitch:     degrees(math.Asin(sb)),
		Roll:      degrees(math.Atan2(t.At(2, 1), t.At(2, 2))),
		Transform: t,
	}
}

// basisFromNormal completes n (unit) to a right-handed orthonormal basis
// (t, b, n). The in-plane tangent comes from projecting a helper axis onto
// the plane orthogonal to n: global X unless n is nearly parallel to it
// (|n.x| >= 0.9), then global Y. The tangent is negated (fixed sign
// convention) and re-derived as b × n after the cross products so the basis
// is exactly orthonormal.
func basisFromNormal(n Vec3) (t, b Vec3, err error) {
	helper := Vec3{1, 0, 0}
	if math.Abs(n.X) >= 0.9 {
		helper = Vec3{0, 1, 0}
	}
	t, err = helper.Sub(n.Scale(helper.Dot(n))).Unit()
	if err != nil {
		return Vec3{}, Vec3{}, fmt.Errorf("helper axis parallel to normal: %w", err)
	}
	t = t.Neg()

	b, err = n.Cross(t).Unit()
	if err != nil {
		return Vec3{}, Vec3{}, fmt.Errorf("binormal: %w", err)
	}
	t = b.Cross(n)
	return t, b, nil
}

// BeltFrame builds the global frame of a belt datum: a plane is fitted
// through the surveyed sample points (aligned x/y/z slices), its unit
// normal becomes the frame's z axis, and the in-plane basis is completed
// deterministically by basisFromNormal. The frame is anchored at o, and its
// 6-vector is decoded from the assembled transform so both representations
// agree by construction.
func BeltFrame(o Vec3, x, y, z []float64) (Frame, error) {
	pl, err := FitPlane(x, y, z)
	if err != nil {
		return Frame{}, fmt.Errorf("belt frame: %w", err)
	}
	n := pl.Normal() // unit by construction

	t, b, err := basisFromNormal(n)
	if err != nil {
		return Frame{}, fmt.Errorf("belt frame: %w", err)
	}

	tr := identity4()
	setCol3(tr, 0, t)
	setCol3(tr, 1, b)
	setCol3(tr, 2, n)
	setCol3(tr, 3, o)
	return frameFromTransform(tr), nil
}
