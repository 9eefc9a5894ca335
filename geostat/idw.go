package geostat

import (
	"fmt"
	"math"
	"sort"
)

// IDW estimates the value at `at` as the inverse-distance-power
// weighted mean of the samples.
//
// Steps:
//  1. Validate options and the sample set.
//  2. Compute distances; a sample closer than 1e-12 m short-circuits to
//     its exact value (the estimate honours data).
//  3. Drop samples outside opts.Radius (when set); error if none remain.
//  4. Keep the opts.MaxSamples nearest (when set), sorting by distance.
//  5. Return Σ w·v / Σ w with w = 1/d^Power.
//
// Complexity: O(n) time, O(n·log n) when MaxSamples forces a sort.
func IDW(samples []Sample, at Point, opts IDWOptions) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	if !(opts.Power > 0) || math.IsNaN(opts.Power) {
		return 0, fmt.Errorf("%w: got %g", ErrBadPower, opts.Power)
	}
	if opts.Radius < 0 || math.IsNaN(opts.Radius) {
		return 0, fmt.Errorf("%w: got %g", ErrBadRadius, opts.Radius)
	}

	type weighted struct {
		d, v float64
	}
	candidates := make([]weighted, 0, len(samples))
	for i := range samples {
		d := dist(samples[i].Point, at)
		if d < coincidentDist {
			return samples[i].Value, nil
		}
		if opts.Radius > 0 && d > opts.Radius {
			continue
		}
		candidates = append(candidates, weighted{d: d, v: samples[i].Value})
	}
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: radius %g m", ErrNoneInRadius, opts.Radius)
	}

	if opts.MaxSamples > 0 && len(candidates) > opts.MaxSamples {
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].d < candidates[j].d })
		candidates = candidates[:opts.MaxSamples]
	}

	var num, den float64
	for _, c := range candidates {
		w := 1 / math.Pow(c.d, opts.Power)
		num += w * c.v
		den += w
	}

	return num / den, nil
}
