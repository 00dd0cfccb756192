package blade

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteSpanChart renders an HTML scatter of every measured point across
// the span, projected to the x/y plane and colored by span station, for a
// quick visual sanity check of a loaded survey without the full UI.
func WriteSpanChart(af Airfoil, w io.Writer) error {
	if len(af) == 0 {
		return fmt.Errorf("span chart: empty airfoil")
	}

	scatter := charts.NewScatter()

	total := 0
	for i, prof := range af {
		data := make([]opts.ScatterData, 0, prof.Points())
		for _, c := range []Cloud{prof.CX, prof.CV, prof.LE, prof.RE} {
			for _, pt := range c {
				data = append(data, opts.ScatterData{Value: []interface{}{pt.X, pt.Y, i}})
			}
		}
		total += len(data)
		scatter.AddSeries(fmt.Sprintf("profile %d", i), data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	}

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Blade Span Overview",
			Theme:     "dark",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Blade Profiles (XY projection)",
			Subtitle: fmt.Sprintf("profiles=%d points=%d", len(af), total),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(len(af) - 1),
			Dimension:  "2",
			InRange: &opts.VisualMapInRange{Color: []string{
				"#440154", "#3e4989", "#26828e", "#35b779", "#b5de2b", "#fde725",
			}},
		}),
	)

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render span chart: %w", err)
	}
	return nil
}
