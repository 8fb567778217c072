package dashboard

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSparkline(t *testing.T) {
	values := []float64{400, 410, 420, 450, 500, 480}
	result := RenderSparkline(values, 20, 400, 500, lipgloss.Color("78"), nil)
	if len(result) == 0 {
		t.Error("sparkline should not be empty")
	}
	if !strings.ContainsRune(result, '█') {
		t.Error("max value should render as a full block")
	}
	if !strings.ContainsRune(result, '▁') {
		t.Error("min value should render as the lowest block")
	}
	t.Logf("Sparkline: %s", result)
}

func TestSparkline_Empty(t *testing.T) {
	result := RenderSparkline(nil, 10, 0, 1, lipgloss.Color("78"), nil)
	if strings.Count(result, "╌") != 10 {
		t.Errorf("empty sparkline = %q, want 10 placeholders", result)
	}
	if RenderSparkline([]float64{1}, 0, 0, 1, lipgloss.Color("78"), nil) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestSparkline_TruncatesToWidth(t *testing.T) {
	values := make([]float64, 50)
	result := RenderSparkline(values, 8, 0, 1, lipgloss.Color("78"), nil)
	if got := lipgloss.Width(result); got != 8 {
		t.Errorf("width = %d, want 8", got)
	}
}

func TestSparkline_FlatSeries(t *testing.T) {
	lo, hi := valueRange([]float64{0, 0, 0}, nil)
	result := RenderSparkline([]float64{0, 0, 0}, 3, lo, hi, lipgloss.Color("78"), nil)
	if strings.Count(result, string(sparkBlocks[0])) != 3 {
		t.Errorf("flat series = %q, want three lowest blocks", result)
	}
}

func TestValueRange(t *testing.T) {
	critical := 120.0
	lo, hi := valueRange([]float64{0, 10, 5}, &critical)
	if lo != 0 || hi != 120 {
		t.Errorf("valueRange = (%v, %v), want (0, 120)", lo, hi)
	}

	lo, hi = valueRange(nil, nil)
	if lo != 0 || hi != 1 {
		t.Errorf("valueRange(nil) = (%v, %v), want (0, 1)", lo, hi)
	}
}

func TestRenderTimeline(t *testing.T) {
	var times []string
	for i := 0; i < 20; i++ {
		times = append(times, fmt.Sprintf("09:%02d", i))
	}

	result := RenderTimeline(times, 30)
	if !strings.Contains(result, "09:00") || !strings.Contains(result, "09:19") {
		t.Errorf("timeline = %q, want first and last labels", result)
	}
	if got := lipgloss.Width(result); got != 30 {
		t.Errorf("width = %d, want 30", got)
	}

	short := RenderTimeline([]string{"09:00", "09:05"}, 30)
	if strings.Contains(short, "09:00") || !strings.Contains(short, "09:05") {
		t.Errorf("short timeline = %q, want only the last label", short)
	}

	if RenderTimeline(nil, 10) != "" {
		t.Error("empty timeline should render nothing")
	}
}
