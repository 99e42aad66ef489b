// File: klimakit/ppediag/plotstyle/palette.go
package plotstyle

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// continuous builds a blending colormap from hex control points.
func continuous(name string, hexes ...string) Colormap {
	return Colormap{name: name, stops: mustColors(hexes)}
}

// qualitative builds a discrete-index colormap from hex colors.
func qualitative(name string, hexes ...string) Colormap {
	return Colormap{name: name, stops: mustColors(hexes), qualitative: true}
}

func mustColors(hexes []string) []colorful.Color {
	out := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("bad palette hex %q: %v", h, err))
		}
		out[i] = c
	}
	return out
}

// registry holds the named palettes: the oceanographic maps the
// diagnostics plots use plus the qualitative tab family for ensemble
// members.
var registry = map[string]Colormap{
	"thermal": continuous("thermal",
		"#042333", "#24356c", "#60408f", "#9c4a8b", "#d35171", "#f2724c", "#f9a242", "#e8fa5b"),
	"haline": continuous("haline",
		"#2a186c", "#14439c", "#206e8b", "#3c9276", "#69b760", "#b3d65d", "#fdee99"),
	"matter": continuous("matter",
		"#feedb0", "#f7b37c", "#eb7858", "#ce4356", "#9f2462", "#661c5e", "#2f0f3e"),
	"tarn": continuous("tarn",
		"#1f0c00", "#6e4418", "#c29a5b", "#f1efec", "#6fb0a5", "#247d79", "#023f42"),
	"balance": continuous("balance",
		"#181c43", "#2254a1", "#90a8c8", "#f2f2f2", "#c98a76", "#a43527", "#3c0911"),
	"ice": continuous("ice",
		"#03051a", "#2b2d5e", "#4a5397", "#6f7fb8", "#9fb0d3", "#d3e4f0"),
	"deep": continuous("deep",
		"#fdfecc", "#a5dfa7", "#56b29b", "#348b9b", "#2e4b82", "#28336c"),
	"tab10": qualitative("tab10",
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"),
	"tab20": qualitative("tab20",
		"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
		"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
		"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
		"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5"),
}

// aliases maps plot roles to derived colormaps. The heatmap role crops
// the tarn diverging map by 30 percent on both ends so the extreme
// tails do not dominate anomaly heatmaps.
var aliases = map[string]func() Colormap{
	"heatmap": func() Colormap {
		return registry["tarn"].CropByPercent(30, CropBoth)
	},
}

// Get resolves a colormap name: the alias table first, then the
// registry. An unknown name fails immediately with the key in the
// error; there is no fallback map.
func Get(name string) (Colormap, error) {
	if alias, ok := aliases[name]; ok {
		return alias(), nil
	}
	if m, ok := registry[name]; ok {
		return m, nil
	}
	return Colormap{}, fmt.Errorf("%w: no colormap defined for %q", ErrUnknownColormap, name)
}

// Names returns every resolvable name (aliases and registry), sorted.
func Names() []string {
	names := make([]string, 0, len(registry)+len(aliases))
	for name := range registry {
		names = append(names, name)
	}
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
