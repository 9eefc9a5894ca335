// SPDX-License-Identifier: MIT
// Package: minelab/vent
//
// solve.go — Hardy Cross relaxation over an airway mesh.

package vent

import (
	"fmt"
	"math"
	"sort"
)

// Solve balances the network and returns the final flow per airway.
//
// Steps:
//  1. Validate options, airway records and the loop basis (fail fast).
//  2. Copy initial flows into a working slice; the caller's airways
//     are never mutated.
//  3. Sweep the loops in supplied order until the largest |δQ| of a
//     sweep is below opts.Tolerance or opts.MaxIterations is reached.
//  4. Sanity-check junction mass balance against the initial state and
//     assemble the Result.
//
// Non-convergence is reported via Result.Converged=false, not an error:
// callers may retry with a looser tolerance, a larger cap, or flag the
// design as unsolved.
//
// Complexity: O(iterations · Σ loop lengths) time, O(V + E) memory.
func Solve(airways []Airway, loops []Loop, opts Options) (*Result, error) {
	// 1) Fail-fast validation before any numeric work.
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	index, err := indexAirways(airways)
	if err != nil {
		return nil, err
	}
	if err = validateLoops(loops, index, airways); err != nil {
		return nil, err
	}

	// 2) Working copy of the signed flows, indexed like airways.
	flows := make([]float64, len(airways))
	for i := range airways {
		flows[i] = airways[i].Flow
	}

	// 3) Relaxation sweeps.
	converged := false
	iterations := 0
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		iterations = iter
		maxCorrection := 0.0

		for _, loop := range loops {
			// 3a) Signed head loss and sensitivity around the loop.
			//     Fixed members contribute to both but never move.
			var head, sens float64
			for _, le := range loop {
				i := index[le.AirwayID]
				q := flows[i]
				r := airways[i].Resistance
				head += float64(le.Sign) * r * q * math.Abs(q)
				sens += 2 * r * math.Abs(q)
			}
			// 3b) All member flows ~zero: δQ is undefined, skip this sweep.
			if sens < minSensitivity {
				continue
			}
			// 3c) Loop correction, applied to free members only.
			dq := -head / sens
			for _, le := range loop {
				i := index[le.AirwayID]
				if airways[i].Fixed {
					continue
				}
				flows[i] += float64(le.Sign) * dq
			}
			if a := math.Abs(dq); a > maxCorrection {
				maxCorrection = a
			}
		}

		if opts.OnIteration != nil {
			opts.OnIteration(iter, maxCorrection)
		}
		if maxCorrection < opts.Tolerance {
			converged = true
			break
		}
	}

	// 4) Loop corrections cancel junction-wise for any true cycle, so a
	//    net-flow drift proves a malformed basis; surface it instead of
	//    returning a silently wrong answer.
	if !opts.SkipBalanceCheck {
		if err = checkJunctionBalance(airways, flows, opts.Tolerance); err != nil {
			return nil, err
		}
	}

	final := make(map[string]float64, len(airways))
	for i := range airways {
		final[airways[i].ID] = flows[i]
	}

	return &Result{Flows: final, Iterations: iterations, Converged: converged}, nil
}

// checkJunctionBalance compares each junction's net signed flow after
// solving against its net under the initial estimates. Junctions
// incident to a fixed airway are exempt: fixed branches model fans and
// regulators exchanging air with the outside, so their junctions are
// not closed. Any drift beyond tol on a closed junction means the loop
// basis failed to cancel there.
func checkJunctionBalance(airways []Airway, flows []float64, tol float64) error {
	initial := make(map[string]float64, len(airways))
	final := make(map[string]float64, len(airways))
	exempt := make(map[string]bool)
	for i := range airways {
		aw := &airways[i]
		initial[aw.From] += aw.Flow
		initial[aw.To] -= aw.Flow
		final[aw.From] += flows[i]
		final[aw.To] -= flows[i]
		if aw.Fixed {
			exempt[aw.From] = true
			exempt[aw.To] = true
		}
	}

	// Deterministic junction order for reproducible error messages.
	junctions := make([]string, 0, len(initial))
	for j := range initial {
		junctions = append(junctions, j)
	}
	sort.Strings(junctions)

	for _, j := range junctions {
		if exempt[j] {
			continue
		}
		if drift := math.Abs(final[j] - initial[j]); drift > tol {
			return fmt.Errorf("%w: junction %q drifted by %g m³/s", ErrMassBalance, j, drift)
		}
	}

	return nil
}
