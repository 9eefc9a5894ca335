// Package geostat provides light-weight geostatistical helpers for
// resource work: spacing-based classification of estimated blocks into
// Measured / Indicated / Inferred confidence classes, and
// inverse-distance-weighted (IDW) point estimation.
//
// # Classification
//
// Classify applies the common drillhole-spacing rule: a block informed
// by at least MinSamples samples is Measured when the mean spacing of
// informing holes is within MeasuredSpacing, Indicated within
// IndicatedSpacing, and Inferred otherwise. Blocks with no informing
// samples stay Unclassified. Thresholds are deposit-specific and always
// supplied by the caller; DefaultThresholds carries typical
// open-pit-gold figures only as a starting point.
//
// # IDW estimation
//
// IDW estimates a value at a point as the 1/d^power weighted mean of
// neighbouring samples, with an optional search radius and a cap on the
// number of nearest samples used. A sample within εf of the target
// short-circuits to its exact value.
//
// Both routines are deterministic and allocation-light: O(n) for
// Classify's inputs, O(n·log n) for IDW when a nearest-sample cap
// forces sorting.
package geostat
