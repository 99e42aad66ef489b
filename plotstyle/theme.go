// File: klimakit/ppediag/plotstyle/theme.go
package plotstyle

// Theme carries the default figure styling as plain data: font sizes,
// figure dimensions, spine and grid toggles.
type Theme struct {
	TitleSize     float64
	AxisLabelSize float64
	TickLabelSize float64
	LegendSize    float64

	FigureWidth  float64
	FigureHeight float64

	SpineTop   bool
	SpineRight bool
	Grid       bool
}

// DefaultTheme returns the diagnostics house style: whitegrid with
// the top and right spines removed.
func DefaultTheme() Theme {
	return Theme{
		TitleSize:     16,
		AxisLabelSize: 14,
		TickLabelSize: 12,
		LegendSize:    12,
		FigureWidth:   8,
		FigureHeight:  6,
		SpineTop:      false,
		SpineRight:    false,
		Grid:          true,
	}
}

// Scaled returns a copy with every font size multiplied by factor.
// Figure dimensions and toggles are unchanged.
func (t Theme) Scaled(factor float64) Theme {
	t.TitleSize *= factor
	t.AxisLabelSize *= factor
	t.TickLabelSize *= factor
	t.LegendSize *= factor
	return t
}

// contextScales are the presentation contexts: the default theme
// scaled for papers, notebooks, talks, and posters.
var contextScales = map[string]float64{
	"paper":    0.8,
	"notebook": 1.0,
	"talk":     1.3,
	"poster":   1.6,
}

// Context returns the default theme scaled for a presentation context.
func Context(name string) (Theme, bool) {
	scale, ok := contextScales[name]
	if !ok {
		return Theme{}, false
	}
	return DefaultTheme().Scaled(scale), true
}

// Raster carries the default settings for gridded-field plots.
type Raster struct {
	// Colormap name, resolvable via Get.
	Colormap string

	// Robust scales color limits to the 2nd..98th percentile range.
	Robust bool

	// Colorbar toggles the colorbar.
	Colorbar bool
}

// RasterDefaults returns the defaults applied to gridded-field plots.
func RasterDefaults() Raster {
	return Raster{
		Colormap: "matter",
		Robust:   true,
		Colorbar: true,
	}
}
