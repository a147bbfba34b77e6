package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/rayleigh/internal/pipeline"
)

// PlotSweep draws the outputs of a sweep. Non-finite samples become gaps.
func PlotSweep(sw *pipeline.SweepResult, height, width int) string {
	data := make([]float64, len(sw.Outputs))
	finite := 0
	for i, v := range sw.Outputs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			data[i] = math.NaN()
			continue
		}
		data[i] = v
		finite++
	}
	if finite == 0 {
		return Subtle.Render("no finite samples to plot")
	}

	caption := fmt.Sprintf("%s over %s [%s]", sw.Pipeline, sw.Operand, sw.Dimension)
	if sw.Target != "" {
		caption = fmt.Sprintf("%s over %s [%s]", sw.Pipeline, sw.Operand, sw.Target)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
