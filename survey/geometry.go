package survey

import (
	"fmt"
	"math"
)

// AzimuthBetween returns the grid azimuth from a to b in degrees
// [0, 360). Coincident points return 0.
func AzimuthBetween(a, b Point2) float64 {
	az := math.Atan2(b.East-a.East, b.North-a.North) / degToRad
	if az < 0 {
		az += 360
	}

	return az
}

// HorizontalDistance reduces a slope distance measured at the given
// zenith angle (degrees from upward vertical) to the horizontal:
//
//	h = s · sin(z)
func HorizontalDistance(slope, zenith float64) (float64, error) {
	if !(slope > 0) || math.IsInf(slope, 1) {
		return 0, fmt.Errorf("%w: got %g", ErrBadDistance, slope)
	}
	if zenith <= 0 || zenith >= 180 || math.IsNaN(zenith) {
		return 0, fmt.Errorf("%w: got %g", ErrBadZenith, zenith)
	}

	return slope * math.Sin(zenith*degToRad), nil
}

// Area returns the plan area enclosed by the polygon in m², by the
// shoelace formula. Vertex order (clockwise or counter-clockwise) does
// not matter; the polygon closes itself from last vertex to first.
func Area(points []Point2) (float64, error) {
	if len(points) < 3 {
		return 0, fmt.Errorf("%w: got %d", ErrFewPoints, len(points))
	}

	sum := 0.0
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].East*points[j].North - points[j].East*points[i].North
	}

	return math.Abs(sum) / 2, nil
}
