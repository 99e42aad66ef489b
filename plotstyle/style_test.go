// File: klimakit/ppediag/plotstyle/style_test.go
package plotstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatisticStyle tests table lookups
func TestStatisticStyle(t *testing.T) {
	t.Run("Mean", func(t *testing.T) {
		s, ok := StatisticStyle("mean")
		require.True(t, ok)
		assert.Equal(t, "#000000", s.Color)
		assert.Equal(t, DashSolid, s.Dash)
		assert.Equal(t, 2.0, s.Width)
		assert.Equal(t, "Mean", s.Label)
		assert.Empty(t, s.Marker)
	})

	t.Run("ObservationsCarryMarkers", func(t *testing.T) {
		s, ok := StatisticStyle("observations")
		require.True(t, ok)
		assert.Equal(t, "o", s.Marker)
		assert.Equal(t, 3.0, s.Width)

		s, ok = StatisticStyle("reference_case")
		require.True(t, ok)
		assert.Equal(t, "^", s.Marker)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, ok := StatisticStyle("kurtosis")
		assert.False(t, ok)
	})
}

// TestStatisticNames tests the listing of known measures
func TestStatisticNames(t *testing.T) {
	names := StatisticNames()
	assert.Len(t, names, 13)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "iqr")
	assert.Contains(t, names, "reference_case_historical")
}

// TestLineStyleRGB tests hex parsing, including alpha-suffixed colors
func TestLineStyleRGB(t *testing.T) {
	t.Run("PlainHex", func(t *testing.T) {
		s, _ := StatisticStyle("std")
		c, err := s.RGB()
		require.NoError(t, err)
		assert.InDelta(t, 0.2, c.R, 0.01)
		assert.InDelta(t, 1.0, c.B, 0.01)
	})

	t.Run("AlphaSuffixDropped", func(t *testing.T) {
		// iqr's color carries an 8-digit alpha suffix
		s, _ := StatisticStyle("iqr")
		c, err := s.RGB()
		require.NoError(t, err)
		assert.InDelta(t, float64(0x88)/255, c.R, 0.01)
		assert.InDelta(t, float64(0x38)/255, c.G, 0.01)
	})

	t.Run("EveryTableColorParses", func(t *testing.T) {
		for _, name := range StatisticNames() {
			s, _ := StatisticStyle(name)
			_, err := s.RGB()
			assert.NoError(t, err, name)
		}
	})
}
