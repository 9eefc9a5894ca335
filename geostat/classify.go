package geostat

import (
	"fmt"
	"math"
)

// Classify assigns a resource-confidence class from the number of
// informing samples and their mean spacing, per the supplied spacing
// rule.
//
// Decision order:
//  1. samples == 0                         → Unclassified
//  2. samples < t.MinSamples               → Inferred (data exists but
//     cannot support a higher class)
//  3. spacing ≤ t.MeasuredSpacing          → Measured
//  4. spacing ≤ t.IndicatedSpacing         → Indicated
//  5. otherwise                            → Inferred
//
// Complexity: O(1).
func Classify(samples int, spacing float64, t Thresholds) (Class, error) {
	if err := validateThresholds(t); err != nil {
		return Unclassified, err
	}
	if samples < 0 {
		return Unclassified, fmt.Errorf("%w: got %d", ErrBadSamples, samples)
	}
	if spacing < 0 || math.IsNaN(spacing) || math.IsInf(spacing, 1) {
		return Unclassified, fmt.Errorf("%w: got %g", ErrBadSpacing, spacing)
	}

	switch {
	case samples == 0:
		return Unclassified, nil
	case samples < t.MinSamples:
		return Inferred, nil
	case spacing <= t.MeasuredSpacing:
		return Measured, nil
	case spacing <= t.IndicatedSpacing:
		return Indicated, nil
	default:
		return Inferred, nil
	}
}

// validateThresholds enforces 0 < measured < indicated and a usable
// sample minimum.
func validateThresholds(t Thresholds) error {
	if !(t.MeasuredSpacing > 0) || !(t.IndicatedSpacing > t.MeasuredSpacing) {
		return fmt.Errorf("%w: measured=%g indicated=%g",
			ErrBadThresholds, t.MeasuredSpacing, t.IndicatedSpacing)
	}
	if t.MinSamples < 1 {
		return fmt.Errorf("%w: MinSamples=%d", ErrBadThresholds, t.MinSamples)
	}

	return nil
}
