// File: klimakit/ppediag/plotstyle/colormap.go

// Package plotstyle carries the plotting style tables of the PPE
// diagnostics: named colormaps, per-statistic line styles, ensemble
// member color assignment, and the default figure theme. It is pure
// data and lookup; rendering stays with the caller's charting layer.
package plotstyle

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColormap indicates a requested colormap name with no alias
// and no registry entry. The error text names the offending key.
var ErrUnknownColormap = errors.New("unknown colormap")

// Crop selects which end(s) of a colormap CropByPercent removes.
type Crop int

const (
	// CropMin removes from the low end.
	CropMin Crop = iota
	// CropMax removes from the high end.
	CropMax
	// CropBoth removes the percentage from each end.
	CropBoth
)

// Colormap is a named, immutable color sequence. Continuous maps sample
// by blending control points in CIE-Lab space; qualitative maps (the
// tab10/tab20 family) index discretely.
type Colormap struct {
	name        string
	stops       []colorful.Color
	qualitative bool
}

// Name returns the registered name of the map.
func (m Colormap) Name() string {
	return m.name
}

// Qualitative reports whether the map indexes discrete colors rather
// than blending.
func (m Colormap) Qualitative() bool {
	return m.qualitative
}

// At samples the map at position t in [0, 1]. Out-of-range positions
// clamp to the ends.
func (m Colormap) At(t float64) colorful.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	n := len(m.stops)
	if n == 1 {
		return m.stops[0]
	}

	if m.qualitative {
		idx := int(t * float64(n))
		if idx >= n {
			idx = n - 1
		}
		return m.stops[idx]
	}

	pos := t * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return m.stops[n-1]
	}
	return m.stops[i].BlendLab(m.stops[i+1], pos-float64(i)).Clamped()
}

// Colors samples n colors at positions i/n, matching the original
// member color assignment: member i of n gets At(i/n).
func (m Colormap) Colors(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := 0; i < n; i++ {
		out[i] = m.At(float64(i) / float64(n))
	}
	return out
}

// CropByPercent returns a copy with pct percent removed from the
// selected end(s), re-sampled over the remaining range. The "heatmap"
// alias uses 30 percent off both ends of tarn.
func (m Colormap) CropByPercent(pct float64, which Crop) Colormap {
	frac := pct / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 0.49 {
		frac = 0.49
	}

	lo, hi := 0.0, 1.0
	switch which {
	case CropMin:
		lo = frac
	case CropMax:
		hi = 1 - frac
	case CropBoth:
		lo, hi = frac, 1-frac
	}

	name := fmt.Sprintf("%s[%g%%]", m.name, pct)

	if m.qualitative {
		n := len(m.stops)
		start := int(lo * float64(n))
		end := int(hi*float64(n) + 0.5)
		if end <= start {
			end = start + 1
		}
		if end > n {
			end = n
		}
		return Colormap{name: name, stops: append([]colorful.Color{}, m.stops[start:end]...), qualitative: true}
	}

	n := len(m.stops)
	stops := make([]colorful.Color, n)
	for i := 0; i < n; i++ {
		t := lo + (hi-lo)*float64(i)/float64(n-1)
		stops[i] = m.At(t)
	}
	return Colormap{name: name, stops: stops}
}

// EnsembleColors returns one color per ensemble member, sampled from
// the named colormap at i/n. The empty name selects "tab20".
func EnsembleColors(n int, name string) ([]colorful.Color, error) {
	if name == "" {
		name = "tab20"
	}
	m, err := Get(name)
	if err != nil {
		return nil, err
	}
	return m.Colors(n), nil
}

// MemberColor returns the color of member i in an ensemble of n.
func MemberColor(i, n int, name string) (colorful.Color, error) {
	if i < 0 || i >= n {
		return colorful.Color{}, fmt.Errorf("member index %d out of range for ensemble of %d", i, n)
	}
	colors, err := EnsembleColors(n, name)
	if err != nil {
		return colorful.Color{}, err
	}
	return colors[i], nil
}
