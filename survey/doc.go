// Package survey implements plane surveying geometry for mine grids:
// traverse coordinate computation with misclosure reporting, Bowditch
// (compass rule) adjustment, azimuth math, slope-to-horizontal
// reduction, and polygon areas by the shoelace formula.
//
// Conventions: coordinates are (East, North) in metres; azimuths are
// degrees clockwise from grid north in [0, 360); zenith angles are
// degrees from the upward vertical in (0, 180).
//
// A traverse is a start point plus a sequence of legs (azimuth,
// distance). Traverse returns the running coordinates and the closure
// of the implied loop back to the start; AdjustBowditch distributes
// that misclosure along the legs in proportion to distance so the
// traverse closes exactly.
//
// All validation failures surface as package sentinel errors — branch
// with errors.Is.
package survey
