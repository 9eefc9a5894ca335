package drillhole_test

import (
	"fmt"

	"github.com/katalvlaran/minelab/drillhole"
)

// ExampleDesurvey traces a plumb exploration hole: measured depth maps
// one-to-one onto elevation loss.
func ExampleDesurvey() {
	collar := drillhole.Point{East: 5200, North: 81450, Elev: 312}
	stations := []drillhole.Station{
		{Depth: 0, Azimuth: 0, Dip: -90},
		{Depth: 60, Azimuth: 0, Dip: -90},
		{Depth: 120, Azimuth: 0, Dip: -90},
	}

	path, err := drillhole.Desurvey(collar, stations)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, p := range path {
		fmt.Printf("station %d: elev=%.1f\n", i, p.Elev)
	}
	// Output:
	// station 0: elev=312.0
	// station 1: elev=252.0
	// station 2: elev=192.0
}

// ExampleComposite folds 1 m assays into 2 m composites.
func ExampleComposite() {
	assays := []drillhole.Interval{
		{From: 0, To: 1, Value: 1.2},
		{From: 1, To: 2, Value: 2.4},
		{From: 2, To: 3, Value: 0.8},
		{From: 3, To: 4, Value: 3.6},
	}

	out, err := drillhole.Composite(assays, 2, drillhole.DefaultCompositeOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, c := range out {
		fmt.Printf("%.0f-%.0f m: %.1f g/t\n", c.From, c.To, c.Value)
	}
	// Output:
	// 0-2 m: 1.8 g/t
	// 2-4 m: 2.2 g/t
}
