// SPDX-License-Identifier: MIT
// Package: minelab/vent
//
// types.go — airway, loop, options and result records plus sentinel errors.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context via fmt.Errorf("...: %w", ...).
//   • The solver MUST NOT panic at runtime.

package vent

import "errors"

// Sentinel errors for network validation and post-solve checks.
var (
	// ErrNoAirways indicates an empty airway set was supplied.
	ErrNoAirways = errors.New("vent: no airways supplied")
	// ErrEmptyAirwayID indicates an airway with an empty ID.
	ErrEmptyAirwayID = errors.New("vent: airway ID is empty")
	// ErrEmptyJunctionID indicates an airway endpoint with an empty junction ID.
	ErrEmptyJunctionID = errors.New("vent: junction ID is empty")
	// ErrDuplicateAirway indicates two airways share the same ID.
	ErrDuplicateAirway = errors.New("vent: duplicate airway ID")
	// ErrBadResistance indicates a non-positive or non-finite Atkinson resistance.
	ErrBadResistance = errors.New("vent: resistance must be positive and finite")
	// ErrBadFlow indicates a NaN or infinite initial flow estimate.
	ErrBadFlow = errors.New("vent: initial flow must be finite")
	// ErrSelfLoop indicates an airway whose From and To junctions coincide.
	ErrSelfLoop = errors.New("vent: airway joins a junction to itself")
	// ErrUnknownAirway indicates a loop references an airway ID absent from the network.
	ErrUnknownAirway = errors.New("vent: loop references unknown airway")
	// ErrEmptyLoop indicates a loop with no members.
	ErrEmptyLoop = errors.New("vent: loop has no members")
	// ErrBadLoopSign indicates a traversal sign other than +1 or -1.
	ErrBadLoopSign = errors.New("vent: loop sign must be +1 or -1")
	// ErrUncoveredAirway indicates a free airway appearing in no loop
	// (the network is under-determined).
	ErrUncoveredAirway = errors.New("vent: free airway not covered by any loop")
	// ErrBadTolerance indicates a non-positive or non-finite convergence tolerance.
	ErrBadTolerance = errors.New("vent: tolerance must be positive and finite")
	// ErrBadIterations indicates MaxIterations < 1.
	ErrBadIterations = errors.New("vent: max iterations must be at least 1")
	// ErrMassBalance indicates the post-solve junction check found a net-flow
	// drift, i.e. the supplied loop basis was malformed.
	ErrMassBalance = errors.New("vent: junction mass balance violated")
)

// Defaults for Options; see DefaultOptions.
const (
	// DefaultTolerance is the largest per-sweep flow correction (m³/s)
	// still considered converged.
	DefaultTolerance = 0.01
	// DefaultMaxIterations caps the number of Hardy Cross sweeps.
	DefaultMaxIterations = 100

	// minSensitivity guards the δQ division: loops whose Σ 2·R·|Q| falls
	// below it (all member flows ~zero) are skipped for the sweep.
	minSensitivity = 1e-12
)

// Airway is one ventilation branch of the network.
//
// From→To fixes the positive flow direction; a negative solved Flow
// simply means air moves against it. Resistance is the Atkinson
// coefficient in Ns²/m⁸ (head loss H = Resistance·Q·|Q|, Pa). Fixed
// airways hold their caller-supplied Flow through every sweep; use
// them for fan-driven or regulated branches.
type Airway struct {
	// ID uniquely identifies the airway within the network.
	ID string
	// From is the upstream junction ID for positive flow.
	From string
	// To is the downstream junction ID for positive flow.
	To string
	// Resistance is the Atkinson resistance coefficient, R > 0.
	Resistance float64
	// Flow is the signed airflow estimate in m³/s; for free airways it
	// seeds the iteration, for fixed airways it is the imposed value.
	Flow float64
	// Fixed marks the flow as externally imposed and immutable.
	Fixed bool
}

// LoopEdge references one airway inside a loop with its traversal sign:
// +1 along From→To, -1 against it.
type LoopEdge struct {
	AirwayID string
	Sign     int
}

// Loop is an ordered cycle of signed airway references.
type Loop []LoopEdge

// Options tunes the Hardy Cross iteration.
type Options struct {
	// Tolerance is the convergence threshold on the largest absolute
	// flow correction of a sweep, in m³/s.
	Tolerance float64
	// MaxIterations caps the number of sweeps; reaching it yields
	// Result.Converged=false, never an error.
	MaxIterations int
	// SkipBalanceCheck disables the post-solve junction sanity check.
	SkipBalanceCheck bool
	// OnIteration, when non-nil, observes every sweep with its largest
	// absolute correction. Useful for convergence diagnostics.
	OnIteration func(iteration int, maxCorrection float64)
}

// DefaultOptions returns production-safe solver settings:
// Tolerance=0.01 m³/s, MaxIterations=100, balance check enabled.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Result carries the balanced network state.
type Result struct {
	// Flows maps airway ID to its final signed flow in m³/s.
	Flows map[string]float64
	// Iterations is the number of sweeps performed.
	Iterations int
	// Converged reports whether the last sweep's largest correction
	// fell below Options.Tolerance.
	Converged bool
}
