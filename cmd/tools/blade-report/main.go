// Package main provides an offline blade locating report: it fits the belt
// datum frame from surveyed sample points and, when a blade survey JSON is
// given, summarizes each span profile with its centroid and fitted
// cross-section frame.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/banshee-data/blade.align/internal/blade"
	"github.com/banshee-data/blade.align/internal/geom"
)

// Config holds the report tool configuration.
type Config struct {
	BladeFile  string
	BeltFile   string
	Origin     string
	OutputJSON string
}

// FrameReport is the serializable projection of a computed frame.
type FrameReport struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float64 `json:"yaw_deg"`
	Pitch float64 `json:"pitch_deg"`
	Roll  float64 `json:"roll_deg"`
}

// ProfileReport summarizes one span station.
type ProfileReport struct {
	Index    int          `json:"index"`
	Points   int          `json:"points"`
	Centroid [3]float64   `json:"centroid"`
	Frame    *FrameReport `json:"frame,omitempty"`
	FitError string       `json:"fit_error,omitempty"`
}

// Report is the full tool output.
type Report struct {
	BeltFrame *FrameReport    `json:"belt_frame,omitempty"`
	Profiles  []ProfileReport `json:"profiles,omitempty"`
}

func frameReport(f geom.Frame) *FrameReport {
	return &FrameReport{
		X: f.Pos.X, Y: f.Pos.Y, Z: f.Pos.Z,
		Yaw: f.Yaw, Pitch: f.Pitch, Roll: f.Roll,
	}
}

// parseOrigin parses "x,y,z".
func parseOrigin(s string) (geom.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Vec3{}, fmt.Errorf("origin %q: want 3 comma-separated values", s)
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Vec3{}, fmt.Errorf("origin %q: %w", s, err)
		}
		vals[i] = v
	}
	return geom.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// readBeltSamples reads surveyed belt points from a CSV file with one
// x,y,z row per probed location.
func readBeltSamples(path string) (x, y, z []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open belt samples: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read belt samples: %w", err)
	}
	for i, row := range rows {
		if len(row) != 3 {
			return nil, nil, nil, fmt.Errorf("belt samples row %d has %d columns, want 3", i, len(row))
		}
		var vals [3]float64
		for j, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("belt samples row %d: %w", i, err)
			}
			vals[j] = v
		}
		x = append(x, vals[0])
		y = append(y, vals[1])
		z = append(z, vals[2])
	}
	return x, y, z, nil
}

// profileReports fits a frame per span station from its cross-section
// cloud. A degenerate cloud is reported, not fatal: the remaining stations
// still get their frames.
func profileReports(af blade.Airfoil) []ProfileReport {
	out := make([]ProfileReport, 0, len(af))
	for i, prof := range af {
		c := prof.CX.Centroid()
		pr := ProfileReport{
			Index:    i,
			Points:   prof.Points(),
			Centroid: [3]float64{c.X, c.Y, c.Z},
		}
		x, y, z := prof.CX.Columns()
		if len(x) >= 3 {
			f, err := geom.BeltFrame(c, x, y, z)
			if err != nil {
				pr.FitError = err.Error()
			} else {
				pr.Frame = frameReport(f)
			}
		} else {
			pr.FitError = fmt.Sprintf("cross-section has %d points, need 3", len(x))
		}
		out = append(out, pr)
	}
	return out
}

func main() {
	var cfg Config
	flag.StringVar(&cfg.BladeFile, "blade", "", "blade survey JSON file")
	flag.StringVar(&cfg.BeltFile, "belt", "", "CSV of surveyed belt points (x,y,z per row)")
	flag.StringVar(&cfg.Origin, "origin", "0,0,0", "belt frame origin as x,y,z")
	flag.StringVar(&cfg.OutputJSON, "out", "", "output JSON file (default stdout)")
	flag.Parse()

	if cfg.BladeFile == "" && cfg.BeltFile == "" {
		log.Fatal("[BladeReport] nothing to do: provide -blade and/or -belt")
	}

	var report Report

	if cfg.BeltFile != "" {
		origin, err := parseOrigin(cfg.Origin)
		if err != nil {
			log.Fatalf("[BladeReport] %v", err)
		}
		x, y, z, err := readBeltSamples(cfg.BeltFile)
		if err != nil {
			log.Fatalf("[BladeReport] %v", err)
		}
		f, err := geom.BeltFrame(origin, x, y, z)
		if err != nil {
			log.Fatalf("[BladeReport] belt frame: %v", err)
		}
		report.BeltFrame = frameReport(f)
		log.Printf("[BladeReport] belt frame: pos=(%.3f, %.3f, %.3f) yaw=%.3f° pitch=%.3f° roll=%.3f°",
			f.Pos.X, f.Pos.Y, f.Pos.Z, f.Yaw, f.Pitch, f.Roll)
	}

	if cfg.BladeFile != "" {
		af, err := blade.LoadAirfoil(cfg.BladeFile)
		if err != nil {
			log.Fatalf("[BladeReport] %v", err)
		}
		log.Printf("[BladeReport] loaded %d profiles from %s", len(af), cfg.BladeFile)
		report.Profiles = profileReports(af)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("[BladeReport] marshal report: %v", err)
	}
	out = append(out, '\n')

	if cfg.OutputJSON == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(cfg.OutputJSON, out, 0o644); err != nil {
		log.Fatalf("[BladeReport] write %s: %v", cfg.OutputJSON, err)
	}
	log.Printf("[BladeReport] wrote %s", cfg.OutputJSON)
}
