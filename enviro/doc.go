// Package enviro estimates routine environmental impacts of mining
// operations with published closed-form models:
//
//   - HaulRoadDust      — AP-42 unpaved-road particulate emission factor
//   - BlastVibrationPPV — scaled-distance ground vibration attenuation
//   - NoiseLevel        — spherical spreading + atmospheric absorption
//   - DieselCO2         — fuel-based carbon dioxide emissions
//
// Every routine takes plain scalars, validates them against physical
// bounds, and returns a single value. Empirical site constants (blast
// attenuation K and B, air absorption) default to widely used textbook
// figures and should be recalibrated from monitoring data per site.
//
// All validation failures surface as package sentinel errors — branch
// with errors.Is.
package enviro
