// File: klimakit/ppediag/plotstyle/style.go
package plotstyle

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Dash patterns for line styles, matching the conventional shorthand.
const (
	DashSolid   = "-"
	DashDashed  = "--"
	DashDotted  = ":"
	DashDashDot = "-."
)

// LineStyle describes how one statistic series is drawn.
type LineStyle struct {
	// Color as a hex string; may carry an alpha suffix.
	Color string

	// Dash pattern shorthand.
	Dash string

	// Width in points.
	Width float64

	// Marker symbol, empty for none.
	Marker string

	// Label for the legend.
	Label string
}

// RGB parses the style color. An 8-digit hex drops its alpha suffix.
func (s LineStyle) RGB() (colorful.Color, error) {
	h := s.Color
	if len(h) == 9 {
		h = h[:7]
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("bad style color %q: %w", s.Color, err)
	}
	return c, nil
}

// statisticStyles maps statistic measures and reference/observation
// cases to their drawing styles.
var statisticStyles = map[string]LineStyle{
	"mean":          {Color: "#000000", Dash: DashSolid, Width: 2, Label: "Mean"},
	"median":        {Color: "#2ca02c", Dash: DashDashed, Width: 2, Label: "Median"},
	"min":           {Color: "#000000", Dash: DashDotted, Width: 1, Label: "Min"},
	"max":           {Color: "#000000", Dash: DashDotted, Width: 1, Label: "Max"},
	"std":           {Color: "#335fff", Dash: DashDashDot, Width: 2, Label: "Std dev"},
	"stdrange":      {Color: "#33abff", Dash: DashDashed, Width: 2, Label: "Std range"},
	"percentile_10": {Color: "#8c564b", Dash: DashDotted, Width: 1, Label: "10th Percentile"},
	"percentile_90": {Color: "#e377c2", Dash: DashDotted, Width: 1, Label: "90th Percentile"},
	"iqr":           {Color: "#883838FF", Dash: DashDashed, Width: 2, Label: "IQR"},
	"observations": {
		Color: "#727272", Dash: DashSolid, Width: 3, Marker: "o", Label: "Observations",
	},
	"observationsrange": {
		Color: "#929292", Dash: DashDashed, Width: 2, Marker: "o", Label: "Obs. Range",
	},
	"reference_case": {
		Color: "#ff0000", Dash: DashDashed, Width: 2, Marker: "^", Label: "Reference Case",
	},
	"reference_case_historical": {
		Color: "#c21616", Dash: DashDashDot, Width: 2, Marker: "s", Label: "Reference Case (Hist.)",
	},
}

// StatisticStyle returns the drawing style for a statistic measure.
func StatisticStyle(name string) (LineStyle, bool) {
	s, ok := statisticStyles[name]
	return s, ok
}

// StatisticNames returns the known statistic measures, sorted.
func StatisticNames() []string {
	names := make([]string, 0, len(statisticStyles))
	for name := range statisticStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
