package vent_test

import (
	"fmt"

	"github.com/katalvlaran/minelab/vent"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A raise and a fan-driven drift run in parallel between the same two
//	junctions. The drift's booster fan holds it at exactly 10 m³/s, so
//	the raise must take whatever flow balances the mesh pressure:
//	  R_raise·Q² = R_drift·10²  →  Q = 10·√(4/1) = 20 m³/s
//
// Use case:
//
//	Sizing the free split of a ventilation district around a regulated
//	branch.
//
// Complexity: O(iterations · loop length) time, O(V+E) memory.
func ExampleSolve() {
	airways := []vent.Airway{
		{ID: "raise", From: "level1", To: "level2", Resistance: 1, Flow: 10},
		{ID: "drift", From: "level1", To: "level2", Resistance: 4, Flow: 10, Fixed: true},
	}
	loops := []vent.Loop{{
		{AirwayID: "raise", Sign: +1},
		{AirwayID: "drift", Sign: -1},
	}}

	res, err := vent.Solve(airways, loops, vent.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("converged=%v\n", res.Converged)
	fmt.Printf("raise=%.0f m³/s drift=%.0f m³/s\n", res.Flows["raise"], res.Flows["drift"])
	// Output:
	// converged=true
	// raise=20 m³/s drift=10 m³/s
}

// ExampleDeriveLoops shows the fundamental cycle basis of a small
// triangle of drifts: 3 airways − 3 junctions + 1 component = 1 loop.
func ExampleDeriveLoops() {
	airways := []vent.Airway{
		{ID: "ab", From: "A", To: "B", Resistance: 1, Flow: 5},
		{ID: "bc", From: "B", To: "C", Resistance: 1, Flow: 5},
		{ID: "ca", From: "C", To: "A", Resistance: 1, Flow: 5},
	}

	loops, err := vent.DeriveLoops(airways)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("loops=%d members=%d\n", len(loops), len(loops[0]))
	// Output:
	// loops=1 members=3
}
