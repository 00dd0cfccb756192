package blade

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// cloudColors assigns a fixed color per named cloud so plots are
// comparable across profiles.
var cloudColors = map[string]color.RGBA{
	"cx": {R: 31, G: 119, B: 180, A: 255},
	"cv": {R: 44, G: 160, B: 44, A: 255},
	"le": {R: 214, G: 39, B: 40, A: 255},
	"re": {R: 255, G: 127, B: 14, A: 255},
}

// PlotProfiles writes one PNG per profile into dir, scattering the four
// clouds of each span station in the x/y plane. Returns the number of
// plots written.
func PlotProfiles(af Airfoil, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create plot dir: %w", err)
	}

	written := 0
	for i, prof := range af {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("Profile %d - Cross-Section Clouds", i)
		p.X.Label.Text = "X (mm)"
		p.Y.Label.Text = "Y (mm)"

		clouds := []struct {
			name string
			c    Cloud
		}{
			{"cx", prof.CX},
			{"cv", prof.CV},
			{"le", prof.LE},
			{"re", prof.RE},
		}

		for _, cl := range clouds {
			if len(cl.c) == 0 {
				continue
			}
			pts := make(plotter.XYs, 0, len(cl.c))
			for _, pt := range cl.c {
				pts = append(pts, plotter.XY{X: pt.X, Y: pt.Y})
			}
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return written, fmt.Errorf("profile %d cloud %s: %w", i, cl.name, err)
			}
			s.GlyphStyle.Color = cloudColors[cl.name]
			s.GlyphStyle.Radius = vg.Points(1.5)
			p.Add(s)
			p.Legend.Add(cl.name, s)
		}

		file := filepath.Join(dir, fmt.Sprintf("profile_%02d.png", i))
		if err := p.Save(8*vg.Inch, 6*vg.Inch, file); err != nil {
			return written, fmt.Errorf("save %s: %w", file, err)
		}
		written++
	}
	return written, nil
}
