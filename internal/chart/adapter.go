// Package chart validates inbound chart payloads and maps them into
// deterministic render parameters.
package chart

import "github.com/spendlens/spendlens/internal/domain"

// SeriesLabel names the single data series every chart carries.
const SeriesLabel = "Spend (USD)"

// Series is the renderable description of one chart: positionally
// paired labels, values and colors, plus the kind selector.
type Series struct {
	Label  string
	Type   string
	Labels []string
	Values []float64
	Colors []string
}

// Normalize converts an arbitrary inbound chart field into either nil
// (not renderable) or a well-formed payload. A payload is renderable iff
// it is present and both labels and data are non-empty; Type is not
// consulted here, only at render time.
//
// Labels and data of unequal length are truncated to the shorter
// sequence so the positional pairing stays sound.
func Normalize(raw *domain.ChartPayload) *domain.ChartPayload {
	if raw == nil {
		return nil
	}
	if len(raw.Labels) == 0 || len(raw.Data) == 0 {
		return nil
	}

	n := len(raw.Labels)
	if len(raw.Data) < n {
		n = len(raw.Data)
	}
	return &domain.ChartPayload{
		Type:   raw.Type,
		Labels: raw.Labels[:n],
		Data:   raw.Data[:n],
	}
}

// BuildSeries maps a normalized payload to its render parameters:
// one series labeled "Spend (USD)" with a palette color per category.
func BuildSeries(p *domain.ChartPayload) *Series {
	if p == nil {
		return nil
	}
	colors := make([]string, len(p.Labels))
	for i := range p.Labels {
		colors[i] = ColorAt(i)
	}
	return &Series{
		Label:  SeriesLabel,
		Type:   p.Type,
		Labels: p.Labels,
		Values: p.Data,
		Colors: colors,
	}
}

// Renderable reports whether a payload's type selects a known drawing
// strategy. An unknown type leaves the payload attached to its turn but
// nothing is drawn.
func Renderable(p *domain.ChartPayload) bool {
	if p == nil {
		return false
	}
	return p.Type == domain.ChartBar || p.Type == domain.ChartPie
}
