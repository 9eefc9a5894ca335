// Package minelab is a toolbox of independent mining-engineering
// calculations — from drillhole geometry to ventilation network balancing.
//
// 🚀 What is minelab?
//
//	A pure-Go library of closed-form and short-iterative routines that
//	mine planners reach for every day:
//		• Ventilation: Hardy Cross balancing of airway networks (vent/)
//		• Drillholes: minimum-curvature desurvey & interval compositing (drillhole/)
//		• Geostatistics: resource classification & inverse-distance estimates (geostat/)
//		• Environment: dust, blast vibration, noise and CO₂ estimators (enviro/)
//		• Equipment: haul-cycle, match-factor and productivity formulas (equipment/)
//		• Surveying: traverse adjustment, azimuths, areas (survey/)
//		• I/O helpers: Geo-EAS (GSLIB) and CSV numeric tables (gslib/)
//
// ✨ Why choose minelab?
//
//   - Closed-form first — every routine takes plain scalars or small
//     records and returns a value, not a framework
//   - Explicit errors — sentinel errors per package, branch with errors.Is
//   - Pure Go — no cgo, no hidden deps, no global state
//   - Deterministic — same inputs, same outputs, loop order fixed
//
// Each subpackage is self-contained: it owns its types, options, and
// sentinel errors, and can be imported without dragging in the rest.
//
// The one iterative core is vent.Solve — a Hardy Cross relaxation over a
// mesh of airways with Atkinson resistances, fixed (fan-driven) branches,
// and an explicit or derived loop basis.
//
// Quick ASCII example (a two-level mine ventilation mesh):
//
//	    Portal───A───Face
//	      │            │
//	      └─────B──────┘
//
//	two parallel airways form one balancing loop.
//
// Dive into each package's doc.go for formulas, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/minelab
package minelab
