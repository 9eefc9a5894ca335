package vent_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/minelab/vent"
)

// Property-based invariant suite for the Hardy Cross solver. These
// properties must hold for ANY positive-resistance inputs, so they are
// expressed over generated values rather than hand-picked cases.
func TestSolveInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParametersWithSeed(1605)
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Invariant 1: loop corrections preserve the total flow through a
	// parallel split: junction mass conservation in its simplest form.
	properties.Property("parallel split conserves total flow", prop.ForAll(
		func(r1, r2 float64) bool {
			airways := []vent.Airway{
				{ID: "a", From: "J", To: "T", Resistance: r1, Flow: 30},
				{ID: "b", From: "J", To: "T", Resistance: r2, Flow: 30},
			}
			loops, err := vent.DeriveLoops(airways)
			if err != nil {
				return false
			}
			res, err := vent.Solve(airways, loops, vent.DefaultOptions())
			if err != nil {
				return false
			}

			return res.Converged && math.Abs(res.Flows["a"]+res.Flows["b"]-60) < 1e-6
		},
		gen.Float64Range(0.5, 50),
		gen.Float64Range(0.5, 50),
	))

	// Invariant 2: fixed airways come back bit-exact, no matter how many
	// sweeps ran or whether they converged.
	properties.Property("fixed flow is returned unchanged", prop.ForAll(
		func(rFree, rFixed, qFixed, qSeed float64) bool {
			airways := []vent.Airway{
				{ID: "free", From: "S", To: "T", Resistance: rFree, Flow: qSeed},
				{ID: "fan", From: "S", To: "T", Resistance: rFixed, Flow: qFixed, Fixed: true},
			}
			loops := []vent.Loop{{
				{AirwayID: "free", Sign: +1},
				{AirwayID: "fan", Sign: -1},
			}}
			res, err := vent.Solve(airways, loops, vent.DefaultOptions())
			if err != nil {
				return false
			}

			return res.Flows["fan"] == qFixed
		},
		gen.Float64Range(0.1, 10),
		gen.Float64Range(0.1, 10),
		gen.Float64Range(1, 50),
		gen.Float64Range(1, 50),
	))

	// Invariant 3: flipping the sign convention of the whole network
	// (negated seeds, reversed traversal) mirrors the solution exactly.
	properties.Property("sign-convention symmetry", prop.ForAll(
		func(r1, r2 float64) bool {
			forward := []vent.Airway{
				{ID: "a", From: "S", To: "T", Resistance: r1, Flow: 30},
				{ID: "b", From: "S", To: "T", Resistance: r2, Flow: 30},
			}
			reversed := []vent.Airway{
				{ID: "a", From: "S", To: "T", Resistance: r1, Flow: -30},
				{ID: "b", From: "S", To: "T", Resistance: r2, Flow: -30},
			}
			fwdLoops := []vent.Loop{{{AirwayID: "a", Sign: +1}, {AirwayID: "b", Sign: -1}}}
			revLoops := []vent.Loop{{{AirwayID: "a", Sign: -1}, {AirwayID: "b", Sign: +1}}}

			fwd, err := vent.Solve(forward, fwdLoops, vent.DefaultOptions())
			if err != nil {
				return false
			}
			rev, err := vent.Solve(reversed, revLoops, vent.DefaultOptions())
			if err != nil {
				return false
			}

			return math.Abs(fwd.Flows["a"]+rev.Flows["a"]) < 1e-9 &&
				math.Abs(fwd.Flows["b"]+rev.Flows["b"]) < 1e-9
		},
		gen.Float64Range(0.5, 50),
		gen.Float64Range(0.5, 50),
	))

	properties.TestingRun(t)
}
