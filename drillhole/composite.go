package drillhole

import (
	"fmt"
	"math"
)

// Composite re-bins assay intervals into fixed downhole lengths with
// length-weighted mean values.
//
// Bins start at the first interval's From and advance by length until
// the last interval's To is passed. For each bin the covered length and
// the length-weighted value sum are accumulated from every overlapping
// interval; the bin is emitted when covered/length ≥ opts.MinCoverage
// (and at least some data fell inside it).
//
// Gaps between intervals simply reduce a bin's coverage; they are not
// an error. Overlaps are: the same metre of core cannot carry two
// grades.
//
// Complexity: O(n + bins) time, O(bins) memory.
func Composite(intervals []Interval, length float64, opts CompositeOptions) ([]Interval, error) {
	if err := validateIntervals(intervals); err != nil {
		return nil, err
	}
	if !(length > 0) || math.IsInf(length, 1) {
		return nil, fmt.Errorf("%w: got %g", ErrBadLength, length)
	}
	if opts.MinCoverage < 0 || opts.MinCoverage > 1 || math.IsNaN(opts.MinCoverage) {
		return nil, fmt.Errorf("%w: got %g", ErrBadCoverage, opts.MinCoverage)
	}

	start := intervals[0].From
	end := intervals[len(intervals)-1].To
	var out []Interval

	first := 0 // first interval that can still reach the current bin
	for binFrom := start; binFrom < end; binFrom += length {
		binTo := binFrom + length
		for first < len(intervals) && intervals[first].To <= binFrom {
			first++
		}
		var covered, weighted float64
		for i := first; i < len(intervals) && intervals[i].From < binTo; i++ {
			iv := intervals[i]
			lo := math.Max(binFrom, iv.From)
			hi := math.Min(binTo, iv.To)
			if hi <= lo {
				continue
			}
			covered += hi - lo
			weighted += (hi - lo) * iv.Value
		}
		if covered <= 0 || covered/length < opts.MinCoverage {
			continue
		}
		out = append(out, Interval{From: binFrom, To: binTo, Value: weighted / covered})
	}

	return out, nil
}

// validateIntervals applies the assay record rules: sorted downhole,
// positive length, no overlap.
func validateIntervals(intervals []Interval) error {
	if len(intervals) == 0 {
		return ErrNoIntervals
	}
	for i, iv := range intervals {
		if iv.To <= iv.From {
			return fmt.Errorf("%w: interval %d [%g, %g)", ErrNegativeInterval, i, iv.From, iv.To)
		}
		if i == 0 {
			continue
		}
		if iv.From < intervals[i-1].From {
			return fmt.Errorf("%w: interval %d", ErrUnsortedIntervals, i)
		}
		if iv.From < intervals[i-1].To {
			return fmt.Errorf("%w: intervals %d and %d", ErrOverlap, i-1, i)
		}
	}

	return nil
}
