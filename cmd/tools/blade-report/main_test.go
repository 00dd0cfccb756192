package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/blade.align/internal/blade"
	"github.com/banshee-data/blade.align/internal/geom"
)

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      geom.Vec3
		expectErr bool
	}{
		{"basic", "1,2,3", geom.Vec3{X: 1, Y: 2, Z: 3}, false},
		{"with_spaces", " 1.5 , -2.25 , 0 ", geom.Vec3{X: 1.5, Y: -2.25, Z: 0}, false},
		{"survey_origin", "1009.15,-16.49,623.81", geom.Vec3{X: 1009.15, Y: -16.49, Z: 623.81}, false},
		{"too_few", "1,2", geom.Vec3{}, true},
		{"too_many", "1,2,3,4", geom.Vec3{}, true},
		{"non_numeric", "1,x,3", geom.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOrigin(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("parseOrigin(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOrigin(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseOrigin(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadBeltSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "belt.csv")
	content := "996.14,-16.14,625.57\n1010.89,-29.24,623.52\n1010.89,0.92,623.48\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	x, y, z, err := readBeltSamples(path)
	if err != nil {
		t.Fatalf("readBeltSamples: %v", err)
	}
	if len(x) != 3 || len(y) != 3 || len(z) != 3 {
		t.Fatalf("lengths = %d/%d/%d, want 3", len(x), len(y), len(z))
	}
	if x[0] != 996.14 || y[1] != -29.24 || z[2] != 623.48 {
		t.Errorf("unexpected values: x=%v y=%v z=%v", x, y, z)
	}
}

func TestReadBeltSamplesMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"wrong_column_count", "1,2\n"},
		{"non_numeric", "1,2,three\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "belt.csv")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, _, _, err := readBeltSamples(path); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestProfileReports(t *testing.T) {
	af := blade.Airfoil{
		{
			// Planar cross-section: frame fit succeeds.
			CX: blade.Cloud{
				{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0.1},
				{X: 0, Y: 1, Z: 0.2}, {X: 1, Y: 1, Z: 0.3},
			},
		},
		{
			// Too few points: reported, not fatal.
			CX: blade.Cloud{{X: 0, Y: 0, Z: 0}},
		},
		{
			// Collinear points: degenerate fit reported.
			CX: blade.Cloud{
				{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 2, Y: 2, Z: 0},
			},
		},
	}

	reports := profileReports(af)
	if len(reports) != 3 {
		t.Fatalf("got %d reports, want 3", len(reports))
	}

	if reports[0].Frame == nil {
		t.Fatalf("profile 0: expected frame, got fit error %q", reports[0].FitError)
	}
	if math.Abs(reports[0].Centroid[0]-0.5) > 1e-12 || math.Abs(reports[0].Centroid[1]-0.5) > 1e-12 {
		t.Errorf("profile 0 centroid = %v, want (0.5, 0.5, ...)", reports[0].Centroid)
	}

	if reports[1].Frame != nil || !strings.Contains(reports[1].FitError, "need 3") {
		t.Errorf("profile 1: expected point-count fit error, got %+v", reports[1])
	}

	if reports[2].Frame != nil || reports[2].FitError == "" {
		t.Errorf("profile 2: expected degenerate fit error, got %+v", reports[2])
	}
}
