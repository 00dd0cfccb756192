package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestTranslation(t *testing.T) {
	tr := Translation(Vec3{1.5, -2, 3})
	want := mat.NewDense(4, 4, []float64{
		1, 0, 0, 1.5,
		0, 1, 0, -2,
		0, 0, 1, 3,
		0, 0, 0, 1,
	})
	if !mat.Equal(tr, want) {
		t.Errorf("Translation = %v, want %v", mat.Formatted(tr), mat.Formatted(want))
	}
}

func TestAxisRotation(t *testing.T) {
	tests := []struct {
		name     string
		angleDeg float64
		axis     Axis
		want     []float64 // row-major 4x4
	}{
		{"z_90", 90, AxisZ, []float64{
			0, -1, 0, 0,
			1, 0, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		}},
		{"x_180", 180, AxisX, []float64{
			1, 0, 0, 0,
			0, -1, 0, 0,
			0, 0, -1, 0,
			0, 0, 0, 1,
		}},
		{"y_minus_90", -90, AxisY, []float64{
			0, 0, -1, 0,
			0, 1, 0, 0,
			1, 0, 0, 0,
			0, 0, 0, 1,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := AxisRotation(tt.angleDeg, tt.axis)
			if err != nil {
				t.Fatalf("AxisRotation: %v", err)
			}
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					// Snapping must yield exact values at axis-aligned
					// angles, not 1e-16 residues.
					if got := r.At(i, j); got != tt.want[i*4+j] {
						t.Errorf("entry (%d,%d) = %v, want exactly %v", i, j, got, tt.want[i*4+j])
					}
				}
			}
		})
	}
}

func TestAxisRotationGeneralAngle(t *testing.T) {
	r, err := AxisRotation(30, AxisZ)
	if err != nil {
		t.Fatalf("AxisRotation: %v", err)
	}
	c, s := math.Cos(30*math.Pi/180), math.Sin(30*math.Pi/180)
	if math.Abs(r.At(0, 0)-c) > 1e-15 || math.Abs(r.At(1, 0)-s) > 1e-15 {
		t.Errorf("rotation block = [[%v,%v],[%v,%v]], want cos/sin of 30°",
			r.At(0, 0), r.At(0, 1), r.At(1, 0), r.At(1, 1))
	}
}

func TestAxisRotationUnknownAxis(t *testing.T) {
	if _, err := AxisRotation(10, Axis('w')); err == nil {
		t.Fatal("expected error for unknown axis, got nil")
	}
}

func TestComposeAndApply(t *testing.T) {
	rot, err := AxisRotation(90, AxisZ)
	if err != nil {
		t.Fatalf("AxisRotation: %v", err)
	}
	tr := Translation(Vec3{10, 0, 0})

	// Translate then rotate the frame: point (1,0,0) rotates to (0,1,0)
	// and shifts by (10,0,0).
	m := Compose(tr, rot)
	got := Apply(m, Vec3{1, 0, 0})
	want := Vec3{10, 1, 0}
	if got.Sub(want).Norm() > 1e-12 {
		t.Errorf("Apply(Compose(T,R), p) = %v, want %v", got, want)
	}

	// Identity composition.
	if !mat.EqualApprox(Compose(rot), rot, 1e-15) {
		t.Error("Compose of one matrix should equal the matrix")
	}
}
