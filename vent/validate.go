// SPDX-License-Identifier: MIT
// Package: minelab/vent
//
// validate.go — fail-fast topology and option validation.
//
// Everything here runs before the first Hardy Cross sweep: a malformed
// network is rejected with a sentinel error and no partial computation.

package vent

import (
	"fmt"
	"math"
)

// indexAirways checks every airway record and returns an ID→index map.
// Returned errors wrap the package sentinels with the offending record.
func indexAirways(airways []Airway) (map[string]int, error) {
	if len(airways) == 0 {
		return nil, ErrNoAirways
	}
	index := make(map[string]int, len(airways))
	for i, aw := range airways {
		if aw.ID == "" {
			return nil, fmt.Errorf("%w: airway at position %d", ErrEmptyAirwayID, i)
		}
		if aw.From == "" || aw.To == "" {
			return nil, fmt.Errorf("%w: airway %q", ErrEmptyJunctionID, aw.ID)
		}
		if _, dup := index[aw.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAirway, aw.ID)
		}
		if !(aw.Resistance > 0) || math.IsInf(aw.Resistance, 1) {
			return nil, fmt.Errorf("%w: airway %q has R=%g", ErrBadResistance, aw.ID, aw.Resistance)
		}
		if math.IsNaN(aw.Flow) || math.IsInf(aw.Flow, 0) {
			return nil, fmt.Errorf("%w: airway %q has Q=%g", ErrBadFlow, aw.ID, aw.Flow)
		}
		index[aw.ID] = i
	}

	return index, nil
}

// validateLoops resolves every loop reference against the airway index
// and verifies that each free airway is covered by at least one loop.
func validateLoops(loops []Loop, index map[string]int, airways []Airway) error {
	covered := make([]bool, len(airways))
	for li, loop := range loops {
		if len(loop) == 0 {
			return fmt.Errorf("%w: loop at position %d", ErrEmptyLoop, li)
		}
		for _, le := range loop {
			i, ok := index[le.AirwayID]
			if !ok {
				return fmt.Errorf("%w: %q in loop %d", ErrUnknownAirway, le.AirwayID, li)
			}
			if le.Sign != 1 && le.Sign != -1 {
				return fmt.Errorf("%w: airway %q in loop %d has sign %d",
					ErrBadLoopSign, le.AirwayID, li, le.Sign)
			}
			covered[i] = true
		}
	}
	for i, aw := range airways {
		if !aw.Fixed && !covered[i] {
			return fmt.Errorf("%w: %q", ErrUncoveredAirway, aw.ID)
		}
	}

	return nil
}

// validateOptions rejects meaningless solver settings.
func validateOptions(opts Options) error {
	if !(opts.Tolerance > 0) || math.IsInf(opts.Tolerance, 1) {
		return fmt.Errorf("%w: got %g", ErrBadTolerance, opts.Tolerance)
	}
	if opts.MaxIterations < 1 {
		return fmt.Errorf("%w: got %d", ErrBadIterations, opts.MaxIterations)
	}

	return nil
}
