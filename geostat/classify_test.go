package geostat_test

import (
	"testing"

	"github.com/katalvlaran/minelab/geostat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassify_SpacingRule walks each band of the default rule.
func TestClassify_SpacingRule(t *testing.T) {
	th := geostat.DefaultThresholds() // 25 m / 50 m / 3 samples

	tests := []struct {
		name    string
		samples int
		spacing float64
		want    geostat.Class
	}{
		{name: "no data", samples: 0, spacing: 0, want: geostat.Unclassified},
		{name: "too few samples", samples: 2, spacing: 10, want: geostat.Inferred},
		{name: "tight spacing", samples: 8, spacing: 20, want: geostat.Measured},
		{name: "measured boundary", samples: 3, spacing: 25, want: geostat.Measured},
		{name: "moderate spacing", samples: 5, spacing: 40, want: geostat.Indicated},
		{name: "indicated boundary", samples: 5, spacing: 50, want: geostat.Indicated},
		{name: "wide spacing", samples: 5, spacing: 80, want: geostat.Inferred},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geostat.Classify(tc.samples, tc.spacing, th)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestClassify_Validation exercises threshold and input sentinels.
func TestClassify_Validation(t *testing.T) {
	_, err := geostat.Classify(3, 10, geostat.Thresholds{MeasuredSpacing: 50, IndicatedSpacing: 25, MinSamples: 3})
	assert.ErrorIs(t, err, geostat.ErrBadThresholds, "inverted spacings must fail")

	_, err = geostat.Classify(3, 10, geostat.Thresholds{MeasuredSpacing: 25, IndicatedSpacing: 50, MinSamples: 0})
	assert.ErrorIs(t, err, geostat.ErrBadThresholds, "MinSamples < 1 must fail")

	_, err = geostat.Classify(-1, 10, geostat.DefaultThresholds())
	assert.ErrorIs(t, err, geostat.ErrBadSamples)

	_, err = geostat.Classify(3, -5, geostat.DefaultThresholds())
	assert.ErrorIs(t, err, geostat.ErrBadSpacing)
}

// TestClassString covers the reporting labels.
func TestClassString(t *testing.T) {
	assert.Equal(t, "Unclassified", geostat.Unclassified.String())
	assert.Equal(t, "Inferred", geostat.Inferred.String())
	assert.Equal(t, "Indicated", geostat.Indicated.String())
	assert.Equal(t, "Measured", geostat.Measured.String())
}
