package dashboard

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// valueRange returns the min and max of values, widened to include the
// critical line when one is set.
func valueRange(values []float64, critical *float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if critical != nil {
		lo = math.Min(lo, *critical)
		hi = math.Max(hi, *critical)
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 1
	}
	return lo, hi
}

// RenderSparkline renders the last width values as block characters scaled
// to [rangeMin, rangeMax]. Values at or above critical are drawn in red.
func RenderSparkline(values []float64, width int, rangeMin, rangeMax float64, color lipgloss.Color, critical *float64) string {
	if width <= 0 {
		return ""
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	if len(values) == 0 {
		return dim.Render(strings.Repeat("╌", width))
	}

	if len(values) > width {
		values = values[len(values)-width:]
	}

	span := rangeMax - rangeMin
	if span <= 0 {
		span = 1
	}

	var sb strings.Builder
	sb.WriteString(dim.Render(strings.Repeat("╌", width-len(values))))

	normal := lipgloss.NewStyle().Foreground(color)
	crit := lipgloss.NewStyle().Foreground(colorCrit).Bold(true)

	for _, v := range values {
		norm := (v - rangeMin) / span
		norm = math.Max(0, math.Min(1, norm))

		idx := int(norm * 7)
		if idx > 7 {
			idx = 7
		}

		style := normal
		if critical != nil && v >= *critical {
			style = crit
		}
		sb.WriteString(style.Render(string(sparkBlocks[idx])))
	}

	return sb.String()
}

// RenderTimeline labels the first and last points under a right-aligned
// sparkline of the given width. The first label is dropped when the two
// would collide.
func RenderTimeline(times []string, width int) string {
	if len(times) == 0 || width <= 0 {
		return ""
	}
	if len(times) > width {
		times = times[len(times)-width:]
	}

	line := []rune(strings.Repeat(" ", width))
	start := width - len(times)

	last := []rune(times[len(times)-1])
	lastPos := max(0, width-len(last))

	if first := []rune(times[0]); len(times) > 1 && start+len(first) < lastPos {
		copy(line[start:], first)
	}
	copy(line[lastPos:], last)

	return lipgloss.NewStyle().Foreground(colorDim).Render(string(line))
}
