package survey

import (
	"fmt"
	"math"
)

const degToRad = math.Pi / 180

// Traverse computes running coordinates from a start point and a leg
// sequence, plus the closure of the implied loop back to the start.
//
// The returned slice holds len(legs)+1 points, the start included. The
// Closure measures end − start: for a loop traverse it is the raw
// misclosure, for an open traverse it is simply the net displacement.
//
// Complexity: O(n).
func Traverse(start Point2, legs []Leg) ([]Point2, Closure, error) {
	if err := validateLegs(legs); err != nil {
		return nil, Closure{}, err
	}

	points := make([]Point2, len(legs)+1)
	points[0] = start
	total := 0.0
	for i, leg := range legs {
		az := leg.Azimuth * degToRad
		points[i+1] = Point2{
			East:  points[i].East + leg.Distance*math.Sin(az),
			North: points[i].North + leg.Distance*math.Cos(az),
		}
		total += leg.Distance
	}

	end := points[len(points)-1]
	c := Closure{DE: end.East - start.East, DN: end.North - start.North}
	c.Linear = math.Hypot(c.DE, c.DN)
	if c.Linear == 0 {
		c.Precision = math.Inf(1)
	} else {
		c.Precision = total / c.Linear
	}

	return points, c, nil
}

// AdjustBowditch applies the compass rule to a loop traverse: each
// station is shifted against the misclosure in proportion to the
// traverse distance run so far, so the final station lands exactly on
// the start.
//
// Complexity: O(n).
func AdjustBowditch(start Point2, legs []Leg) ([]Point2, error) {
	raw, c, err := Traverse(start, legs)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, leg := range legs {
		total += leg.Distance
	}

	adjusted := make([]Point2, len(raw))
	adjusted[0] = start
	run := 0.0
	for i, leg := range legs {
		run += leg.Distance
		f := run / total
		adjusted[i+1] = Point2{
			East:  raw[i+1].East - c.DE*f,
			North: raw[i+1].North - c.DN*f,
		}
	}

	return adjusted, nil
}

// validateLegs applies the observation rules shared by the traverse
// routines.
func validateLegs(legs []Leg) error {
	if len(legs) == 0 {
		return ErrNoLegs
	}
	for i, leg := range legs {
		if leg.Azimuth < 0 || leg.Azimuth >= 360 || math.IsNaN(leg.Azimuth) {
			return fmt.Errorf("%w: leg %d has azimuth %g", ErrBadAzimuth, i, leg.Azimuth)
		}
		if !(leg.Distance > 0) || math.IsInf(leg.Distance, 1) {
			return fmt.Errorf("%w: leg %d has distance %g", ErrBadDistance, i, leg.Distance)
		}
	}

	return nil
}
