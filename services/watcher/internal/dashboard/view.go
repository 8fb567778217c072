package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/metric"
	"github.com/02loveslollipop/chamber-air-dashboard/internal/poller"
	"github.com/02loveslollipop/chamber-air-dashboard/internal/sensor"
	"github.com/02loveslollipop/chamber-air-dashboard/services/watcher/internal/layout"
)

const (
	minContentWidth = 40
	minCardWidth    = 22
	labelWidth      = 10
	valueWidth      = 8
)

func (m Model) View() string {
	if m.width == 0 {
		return "  Initializing..."
	}

	contentWidth := max(m.width-2, minContentWidth)

	sections := []string{m.renderHeader(contentWidth)}

	switch {
	case m.snap.Phase == poller.PhaseIdle || m.snap.Phase == poller.PhaseLoading:
		sections = append(sections, renderNotice(contentWidth, colorDim, "Loading sensor data..."))
	case m.snap.Phase == poller.PhaseFailed:
		sections = append(sections, renderNotice(contentWidth, colorCrit, "Error: "+m.snap.LastError))
	default:
		var latest *sensor.Record
		if rec, ok := m.snap.Latest(); ok {
			latest = &rec
		}
		sections = append(sections, m.renderCards(contentWidth, latest)...)
		sections = append(sections, m.renderCharts(contentWidth)...)
	}

	sections = append(sections, m.renderFooter(contentWidth))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.height <= 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	visible := max(m.height, 5)
	maxScroll := max(len(lines)-visible, 0)
	start := min(m.scroll, maxScroll)
	end := min(start+visible, len(lines))

	return strings.Join(lines[start:end], "\n")
}

func (m Model) renderHeader(width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorTitleFg).Render(m.layout.Title)
	subtitle := lipgloss.NewStyle().Foreground(colorDim).Render(m.layout.Subtitle)

	var status []string
	if m.snap.LastError != "" && m.snap.HasData() {
		status = append(status, lipgloss.NewStyle().Foreground(colorCrit).Bold(true).Render("Update failed. Retrying..."))
	}
	updated := "Loading..."
	if m.snap.LastUpdated != nil {
		updated = m.snap.LastUpdated.Local().Format("15:04:05")
	}
	status = append(status, lipgloss.NewStyle().Foreground(colorDim).Render("Last Updated: "+updated))

	left := lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
	right := lipgloss.JoinVertical(lipgloss.Right, status...)

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right))
}

func renderNotice(width int, color lipgloss.Color, text string) string {
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Padding(2, 0).
		Render(text)
}

// renderCards lays the metric cards out in as many rows as the width needs.
func (m Model) renderCards(width int, latest *sensor.Record) []string {
	cards := m.layout.Cards
	if len(cards) == 0 {
		return nil
	}

	perRow := max(min(width/minCardWidth, len(cards)), 1)
	cardWidth := width/perRow - 2

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rendered := make([]string, 0, end-i)
		for _, c := range cards[i:end] {
			rendered = append(rendered, renderCard(c, latest, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return rows
}

func renderCard(c layout.Card, latest *sensor.Record, width int) string {
	border := colorBorder
	valueColor := colorAccent
	if c.Primary {
		border = colorPrimary
		valueColor = colorPrimary
	}

	title := lipgloss.NewStyle().Foreground(colorLabel).Render(c.Title)
	value := lipgloss.NewStyle().Bold(true).Foreground(valueColor).Render(metric.Format(latest, c.Field)) +
		" " + lipgloss.NewStyle().Foreground(colorDim).Render(c.Unit)
	caption := lipgloss.NewStyle().Foreground(colorDim).Render("Current reading")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, value, caption))
}

func (m Model) renderCharts(width int) []string {
	times := make([]string, 0, len(m.snap.Points))
	for _, p := range m.snap.Points {
		times = append(times, p.Time)
	}

	out := make([]string, 0, len(m.layout.Charts))
	for _, ch := range m.layout.Charts {
		out = append(out, renderChart(ch, m.snap.Points, times, width))
	}
	return out
}

func renderChart(ch layout.Chart, points []sensor.Record, times []string, width int) string {
	inner := width - 4
	sparkWidth := max(inner-labelWidth-valueWidth-2, 10)

	series := make([][]float64, len(ch.Series))
	var all []float64
	for i, s := range ch.Series {
		series[i] = sensor.Values(points, s.Field)
		all = append(all, series[i]...)
	}
	lo, hi := valueRange(all, ch.Critical)

	var latest *sensor.Record
	if len(points) > 0 {
		latest = &points[len(points)-1]
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(colorLabel).Render(ch.Title),
	}
	if ch.Description != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render(ch.Description))
	}
	if ch.Critical != nil {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorCrit).Render(
			fmt.Sprintf("Critical ≥ %s", formatLevel(*ch.Critical))))
	}

	for i, s := range ch.Series {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Width(labelWidth).Render(truncate(s.Name, labelWidth-1))
		spark := RenderSparkline(series[i], sparkWidth, lo, hi, lipgloss.Color(s.Color), ch.Critical)
		value := lipgloss.NewStyle().Foreground(colorLabel).Width(valueWidth).Align(lipgloss.Right).Render(metric.Format(latest, s.Field))
		lines = append(lines, label+spark+"  "+value)
	}
	lines = append(lines, strings.Repeat(" ", labelWidth)+RenderTimeline(times, sparkWidth))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter(width int) string {
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	labelS := lipgloss.NewStyle().Foreground(colorLabel)

	keys := dimS.Render("q") + labelS.Render(":quit") +
		dimS.Render("  r") + labelS.Render(":refresh") +
		dimS.Render("  j/k") + labelS.Render(":scroll")

	count := dimS.Render(fmt.Sprintf("%d points │ %s", len(m.snap.Points), m.snap.Phase))

	gap := max(width-lipgloss.Width(keys)-lipgloss.Width(count)-2, 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Render(keys + strings.Repeat(" ", gap) + count)
}

func formatLevel(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}
