// Package drillhole turns raw downhole survey and assay records into
// usable geometry: 3-D hole paths via the minimum-curvature method and
// fixed-length grade composites via length-weighted re-binning.
//
// # Desurvey (minimum curvature)
//
// Each survey Station carries measured depth, azimuth (degrees
// clockwise from grid north) and dip (degrees from horizontal, negative
// down — the mining convention). Between consecutive stations the hole
// is modeled as a circular arc:
//
//	t       = (cos dip·sin az, cos dip·cos az, sin dip)   unit tangent
//	β       = ∠(t₁, t₂)                                    dogleg angle
//	RF      = (2/β)·tan(β/2), RF→1 as β→0                  ratio factor
//	Δp      = ΔMD/2 · RF · (t₁ + t₂)
//
// Desurvey returns the 3-D position at every station, starting from the
// collar. The segment from the collar to the first station is taken as
// straight along the first station's orientation.
//
// # Compositing
//
// Composite re-bins assay intervals into fixed downhole lengths,
// averaging grades weighted by contained length. Bins that are informed
// over less than Options.MinCoverage of their length are dropped, so
// sparse tails do not masquerade as full-support samples.
//
// Complexity: both routines are a single O(n) pass over sorted records.
//
// All validation failures surface as package sentinel errors — branch
// with errors.Is.
package drillhole
