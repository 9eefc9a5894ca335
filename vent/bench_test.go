package vent_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/minelab/vent"
)

// makeLadder builds a chain of n junction pairs connected by parallel
// airways: n independent meshes, one loop each.
func makeLadder(n int) []vent.Airway {
	airways := make([]vent.Airway, 0, 2*n)
	for i := 0; i < n; i++ {
		from := fmt.Sprintf("J%04d", i)
		to := fmt.Sprintf("J%04d", i+1)
		airways = append(airways,
			vent.Airway{ID: fmt.Sprintf("main%04d", i), From: from, To: to, Resistance: 1, Flow: 60},
			vent.Airway{ID: fmt.Sprintf("alt%04d", i), From: from, To: to, Resistance: 4, Flow: 40},
		)
	}

	return airways
}

// benchmarkSolve derives the basis once, then times repeated solves.
func benchmarkSolve(b *testing.B, meshes int) {
	airways := makeLadder(meshes)
	loops, err := vent.DeriveLoops(airways)
	if err != nil {
		b.Fatalf("DeriveLoops failed: %v", err)
	}
	opts := vent.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = vent.Solve(airways, loops, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small times a 10-mesh ladder network.
func BenchmarkSolve_Small(b *testing.B) { benchmarkSolve(b, 10) }

// BenchmarkSolve_Medium times a 100-mesh ladder network.
func BenchmarkSolve_Medium(b *testing.B) { benchmarkSolve(b, 100) }

// BenchmarkSolve_Large times a 1000-mesh ladder network.
func BenchmarkSolve_Large(b *testing.B) { benchmarkSolve(b, 1000) }

// BenchmarkDeriveLoops times basis derivation alone on the large ladder.
func BenchmarkDeriveLoops(b *testing.B) {
	airways := makeLadder(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vent.DeriveLoops(airways); err != nil {
			b.Fatalf("DeriveLoops failed: %v", err)
		}
	}
}
