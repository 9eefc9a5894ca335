// Package geostat types, options, and sentinel errors.
package geostat

import (
	"errors"
	"math"
)

// Sentinel errors for geostatistical operations.
var (
	// ErrBadThresholds indicates thresholds that are non-positive or not
	// strictly increasing (Measured spacing must be tighter than Indicated).
	ErrBadThresholds = errors.New("geostat: thresholds must satisfy 0 < measured < indicated")
	// ErrBadSpacing indicates a negative or non-finite sample spacing.
	ErrBadSpacing = errors.New("geostat: spacing must be non-negative and finite")
	// ErrBadSamples indicates a negative informing-sample count.
	ErrBadSamples = errors.New("geostat: sample count must be non-negative")
	// ErrNoSamples indicates an estimation call without any samples.
	ErrNoSamples = errors.New("geostat: at least one sample is required")
	// ErrBadPower indicates a non-positive IDW power.
	ErrBadPower = errors.New("geostat: power must be positive")
	// ErrBadRadius indicates a negative search radius.
	ErrBadRadius = errors.New("geostat: radius must be non-negative")
	// ErrNoneInRadius indicates no sample fell inside the search radius.
	ErrNoneInRadius = errors.New("geostat: no samples within search radius")
)

// coincidentDist is the distance below which a sample is treated as
// coincident with the estimation point.
const coincidentDist = 1e-12

// Class is a resource-confidence category in increasing order of
// geological confidence.
type Class int

const (
	// Unclassified marks blocks with no informing data.
	Unclassified Class = iota
	// Inferred is the lowest reportable confidence class.
	Inferred
	// Indicated supports mine planning at a pre-feasibility level.
	Indicated
	// Measured is the highest confidence class.
	Measured
)

// String implements fmt.Stringer for reporting tables.
func (c Class) String() string {
	switch c {
	case Inferred:
		return "Inferred"
	case Indicated:
		return "Indicated"
	case Measured:
		return "Measured"
	default:
		return "Unclassified"
	}
}

// Thresholds holds the spacing rule for one deposit.
type Thresholds struct {
	// MeasuredSpacing is the largest mean drillhole spacing (m) still
	// classed Measured.
	MeasuredSpacing float64
	// IndicatedSpacing is the largest mean spacing (m) still classed
	// Indicated; anything wider informs Inferred only.
	IndicatedSpacing float64
	// MinSamples is the minimum number of informing samples for any
	// class above Inferred.
	MinSamples int
}

// DefaultThresholds returns typical open-pit gold figures: 25 m
// Measured, 50 m Indicated, 3 informing samples. Calibrate per deposit.
func DefaultThresholds() Thresholds {
	return Thresholds{MeasuredSpacing: 25, IndicatedSpacing: 50, MinSamples: 3}
}

// Point is an estimation location in mine grid coordinates.
type Point struct {
	East  float64
	North float64
	Elev  float64
}

// Sample is one informing value at a location.
type Sample struct {
	Point
	Value float64
}

// IDWOptions tunes inverse-distance estimation.
type IDWOptions struct {
	// Power is the inverse-distance exponent; 2 is the industry default.
	Power float64
	// Radius limits the search to samples within this distance; 0 means
	// unlimited.
	Radius float64
	// MaxSamples caps the estimate to the N nearest samples; 0 means
	// all.
	MaxSamples int
}

// DefaultIDWOptions returns Power=2, unlimited radius and samples.
func DefaultIDWOptions() IDWOptions {
	return IDWOptions{Power: 2}
}

// dist returns the Euclidean distance between two points.
func dist(a, b Point) float64 {
	de, dn, dz := a.East-b.East, a.North-b.North, a.Elev-b.Elev

	return math.Sqrt(de*de + dn*dn + dz*dz)
}
