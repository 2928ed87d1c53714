package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/spendlens/spendlens/internal/chart"
	"github.com/spendlens/spendlens/internal/domain"
)

const maxBarWidth = 40

// RenderChart draws a chart payload as colored terminal output. An
// unrecognized type draws nothing; the turn's text still renders.
func RenderChart(p *domain.ChartPayload) string {
	if !chart.Renderable(p) {
		return ""
	}

	series := chart.BuildSeries(p)
	switch series.Type {
	case domain.ChartBar:
		return renderBar(series)
	case domain.ChartPie:
		return renderPie(series)
	}
	return ""
}

func renderBar(s *chart.Series) string {
	max := 0.0
	labelWidth := 0
	for i, v := range s.Values {
		if v > max {
			max = v
		}
		if len(s.Labels[i]) > labelWidth {
			labelWidth = len(s.Labels[i])
		}
	}
	if max <= 0 {
		max = 1
	}

	var b strings.Builder
	b.WriteString(mutedStyle.Render(s.Label) + "\n")
	for i, v := range s.Values {
		width := int(v / max * maxBarWidth)
		if width < 1 {
			width = 1
		}
		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Colors[i])).
			Render(strings.Repeat("█", width))
		fmt.Fprintf(&b, "%-*s %s %s\n", labelWidth, s.Labels[i], bar, humanize.Commaf(v))
	}
	return b.String()
}

func renderPie(s *chart.Series) string {
	total := 0.0
	for _, v := range s.Values {
		total += v
	}
	if total <= 0 {
		total = 1
	}

	var b strings.Builder
	b.WriteString(mutedStyle.Render(s.Label) + "\n")
	for i, v := range s.Values {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Colors[i])).
			Render("■")
		fmt.Fprintf(&b, "%s %s  %.1f%% (%s)\n", swatch, s.Labels[i], v/total*100, humanize.Commaf(v))
	}
	return b.String()
}
