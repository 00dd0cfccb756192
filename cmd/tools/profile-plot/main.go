// Package main renders a loaded blade survey for visual inspection:
// per-profile PNG cross-section plots and an HTML span overview chart.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/banshee-data/blade.align/internal/blade"
)

func main() {
	bladeFile := flag.String("blade", "", "blade survey JSON file")
	outDir := flag.String("out-dir", "plots", "directory for per-profile PNG plots")
	htmlFile := flag.String("html", "", "optional HTML span chart output file")
	flag.Parse()

	if *bladeFile == "" {
		log.Fatal("[ProfilePlot] -blade is required")
	}

	af, err := blade.LoadAirfoil(*bladeFile)
	if err != nil {
		log.Fatalf("[ProfilePlot] %v", err)
	}
	log.Printf("[ProfilePlot] loaded %d profiles from %s", len(af), *bladeFile)

	n, err := blade.PlotProfiles(af, *outDir)
	if err != nil {
		log.Fatalf("[ProfilePlot] plot profiles: %v", err)
	}
	log.Printf("[ProfilePlot] wrote %d plots to %s", n, *outDir)

	if *htmlFile != "" {
		f, err := os.Create(*htmlFile)
		if err != nil {
			log.Fatalf("[ProfilePlot] create %s: %v", *htmlFile, err)
		}
		defer f.Close()
		if err := blade.WriteSpanChart(af, f); err != nil {
			log.Fatalf("[ProfilePlot] span chart: %v", err)
		}
		log.Printf("[ProfilePlot] wrote span chart to %s", *htmlFile)
	}
}
