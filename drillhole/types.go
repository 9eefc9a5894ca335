// Package drillhole types, options, and sentinel errors.
package drillhole

import "errors"

// Sentinel errors for drillhole operations.
var (
	// ErrNoStations indicates an empty survey set.
	ErrNoStations = errors.New("drillhole: at least one survey station is required")
	// ErrUnsortedStations indicates station depths are not strictly increasing.
	ErrUnsortedStations = errors.New("drillhole: station depths must strictly increase")
	// ErrNegativeDepth indicates a station above the collar (depth < 0).
	ErrNegativeDepth = errors.New("drillhole: station depth must be non-negative")
	// ErrBadAzimuth indicates an azimuth outside [0, 360).
	ErrBadAzimuth = errors.New("drillhole: azimuth must be in [0, 360)")
	// ErrBadDip indicates a dip outside [-90, 90].
	ErrBadDip = errors.New("drillhole: dip must be in [-90, 90]")
	// ErrSharpDogleg indicates consecutive stations pointing in opposite
	// directions, for which the minimum-curvature arc is undefined.
	ErrSharpDogleg = errors.New("drillhole: dogleg angle too sharp between stations")

	// ErrNoIntervals indicates an empty assay set.
	ErrNoIntervals = errors.New("drillhole: at least one interval is required")
	// ErrBadLength indicates a non-positive composite length.
	ErrBadLength = errors.New("drillhole: composite length must be positive")
	// ErrNegativeInterval indicates an interval with To ≤ From.
	ErrNegativeInterval = errors.New("drillhole: interval To must exceed From")
	// ErrUnsortedIntervals indicates intervals not ordered by From.
	ErrUnsortedIntervals = errors.New("drillhole: intervals must be sorted downhole")
	// ErrOverlap indicates two intervals covering the same depth range.
	ErrOverlap = errors.New("drillhole: intervals must not overlap")
	// ErrBadCoverage indicates MinCoverage outside [0, 1].
	ErrBadCoverage = errors.New("drillhole: MinCoverage must be in [0, 1]")
)

// Station is one downhole survey measurement.
type Station struct {
	// Depth is the measured depth along the hole, metres from the collar.
	Depth float64
	// Azimuth is degrees clockwise from grid north, [0, 360).
	Azimuth float64
	// Dip is degrees from horizontal, negative down: -90 is vertical
	// down, 0 is horizontal.
	Dip float64
}

// Point is a 3-D position in mine grid coordinates.
type Point struct {
	East  float64
	North float64
	Elev  float64
}

// Interval is one downhole sample: [From, To) metres with its value
// (grade, density, or any length-weightable quantity).
type Interval struct {
	From  float64
	To    float64
	Value float64
}

// CompositeOptions tunes interval re-binning.
type CompositeOptions struct {
	// MinCoverage is the informed fraction of a bin's length required to
	// emit it, in [0, 1]. 0 keeps any bin with data, 1 keeps only fully
	// informed bins.
	MinCoverage float64
}

// DefaultCompositeOptions returns the production default: bins must be
// at least half informed.
func DefaultCompositeOptions() CompositeOptions {
	return CompositeOptions{MinCoverage: 0.5}
}
