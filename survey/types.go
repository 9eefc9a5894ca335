// Package survey types and sentinel errors.
package survey

import "errors"

// Sentinel errors for surveying computations.
var (
	// ErrNoLegs indicates an empty traverse.
	ErrNoLegs = errors.New("survey: at least one leg is required")
	// ErrBadAzimuth indicates an azimuth outside [0, 360).
	ErrBadAzimuth = errors.New("survey: azimuth must be in [0, 360)")
	// ErrBadDistance indicates a non-positive leg or slope distance.
	ErrBadDistance = errors.New("survey: distance must be positive")
	// ErrBadZenith indicates a zenith angle outside (0, 180).
	ErrBadZenith = errors.New("survey: zenith angle must be in (0, 180)")
	// ErrFewPoints indicates a polygon with fewer than three vertices.
	ErrFewPoints = errors.New("survey: a polygon needs at least three points")
)

// Point2 is a plan position in mine grid coordinates (metres).
type Point2 struct {
	East  float64
	North float64
}

// Leg is one traverse observation: azimuth in degrees clockwise from
// grid north, distance in metres.
type Leg struct {
	Azimuth  float64
	Distance float64
}

// Closure reports how far a traverse loop misses its start.
type Closure struct {
	// DE and DN are the easting/northing misclosures, metres.
	DE float64
	DN float64
	// Linear is the misclosure length, metres.
	Linear float64
	// Precision is the traverse length divided by Linear (the "1:x"
	// figure); +Inf for a perfect close.
	Precision float64
}
