package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/rayleigh/internal/dim"
	"github.com/san-kum/rayleigh/internal/pipeline"
	"github.com/san-kum/rayleigh/internal/units"
)

const maxBar = 4

// FormatValue formats a magnitude with the given number of significant digits.
func FormatValue(v float64, precision int) string {
	if precision <= 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// ExponentBars draws one line per base dimension, a bar per unit of
// exponent: green for positive, red for negative.
func ExponentBars(v dim.Vector) string {
	lines := make([]string, 0, dim.NumBases)
	for _, b := range dim.Bases() {
		e := v.Exponent(b)
		n := maxBar
		if a := math.Abs(math.Round(e)); a < maxBar {
			n = int(a)
		}
		if e != 0 && n == 0 {
			n = 1
		}
		bar := strings.Repeat("■", n) + strings.Repeat("·", maxBar-n)
		switch {
		case e > 0:
			bar = positiveBar.Render(bar)
		case e < 0:
			bar = negativeBar.Render(bar)
		default:
			bar = Subtle.Render(bar)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			LabelStyle.Width(19).Render(b.String()), bar, strconv.FormatFloat(e, 'g', -1, 64)))
	}
	return strings.Join(lines, "\n")
}

// RenderResult prints the trace of an evaluation followed by the cast outcome.
func RenderResult(res *pipeline.Result, precision int) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(res.Pipeline) + "\n\n")

	labelWidth := 8
	for _, step := range res.Trace {
		if len(step.Label) > labelWidth {
			labelWidth = len(step.Label)
		}
	}

	for _, step := range res.Trace {
		sb.WriteString(fmt.Sprintf("  %s %s  %s\n",
			LabelStyle.Width(labelWidth+1).Render(step.Label),
			ValueStyle.Render(FormatValue(step.Value.Value(), precision)),
			Subtle.Render(step.Value.Dimension().String()),
		))
	}
	sb.WriteString("\n")
	sb.WriteString(renderOutcome(res, precision))
	return sb.String()
}

func renderOutcome(res *pipeline.Result, precision int) string {
	var lines []string
	switch {
	case res.Target == "":
		lines = append(lines, LabelStyle.Render("no target; result is ")+ValueStyle.Render(res.Value.String()))
	case res.OK():
		lines = append(lines, OKStyle.Render("✓ ")+fmt.Sprintf("%s %s",
			ValueStyle.Render(FormatValue(res.Value.Value(), precision)), res.Target))
	default:
		lines = append(lines, ErrorStyle.Render("✗ "+res.Err.Error()))
	}
	if len(res.Matches) > 0 {
		lines = append(lines, Subtle.Render("matches: "+strings.Join(res.Matches, ", ")))
	}
	return strings.Join(lines, "\n")
}

// RenderUnits prints the unit catalog as a table.
func RenderUnits(defs []units.Def) string {
	nameW, symW := len("NAME"), len("SYMBOL")
	for _, d := range defs {
		nameW = max(nameW, lipgloss.Width(d.Name))
		symW = max(symW, lipgloss.Width(d.Symbol))
	}

	row := func(name, sym, dimension, aliases string) string {
		return fmt.Sprintf("%s  %s  %s  %s",
			lipgloss.NewStyle().Width(nameW).Render(name),
			lipgloss.NewStyle().Width(symW).Render(sym),
			dimension, aliases)
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(row("NAME", "SYMBOL", "DIMENSION", "ALIASES")) + "\n")
	for _, d := range defs {
		sb.WriteString(row(d.Name, d.Symbol, d.Dimension.String(), Subtle.Render(strings.Join(d.Aliases, ", "))) + "\n")
	}
	return sb.String()
}

// RenderDefinition describes a single unit, including the exponent bars.
func RenderDefinition(def units.Def) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(def.Name))
	if def.Symbol != "" {
		sb.WriteString(" " + Subtle.Render("("+def.Symbol+")"))
	}
	sb.WriteString("\n" + def.Dimension.String() + "\n\n")
	sb.WriteString(ExponentBars(def.Dimension) + "\n")
	return sb.String()
}
