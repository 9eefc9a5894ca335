// Package equipment provides load-and-haul productivity formulas:
// truck cycle times from haul profiles, loader/truck match factor,
// fleet availability, and hourly truck productivity with the usual
// derating factors.
//
// Conventions: distances in metres, speeds in km/h, times in minutes,
// payloads in tonnes. Every routine validates its inputs and returns a
// package sentinel error on physically meaningless values — branch with
// errors.Is.
package equipment
