package enviro

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for environmental estimators.
var (
	// ErrBadSilt indicates a silt content outside (0, 100] percent.
	ErrBadSilt = errors.New("enviro: silt content must be in (0, 100] percent")
	// ErrBadMass indicates a non-positive vehicle mass.
	ErrBadMass = errors.New("enviro: vehicle mass must be positive")
	// ErrBadDistance indicates a non-positive distance.
	ErrBadDistance = errors.New("enviro: distance must be positive")
	// ErrBadCharge indicates a non-positive explosive charge mass.
	ErrBadCharge = errors.New("enviro: charge mass must be positive")
	// ErrBadLevel indicates a negative source sound level.
	ErrBadLevel = errors.New("enviro: source level must be non-negative")
	// ErrBadFuel indicates a negative fuel volume.
	ErrBadFuel = errors.New("enviro: fuel volume must be non-negative")
	// ErrBadAttenuation indicates non-positive blast attenuation constants.
	ErrBadAttenuation = errors.New("enviro: attenuation constants must be positive")
)

// Emission and attenuation constants.
const (
	// ap42BaseKgPerVKT is the AP-42 unpaved industrial road base factor
	// converted to kilograms of PM10 per vehicle-kilometre travelled.
	ap42BaseKgPerVKT = 0.423
	// ap42SiltRef is the AP-42 reference silt content. [%]
	ap42SiltRef = 12.0
	// ap42SiltExp is the silt-content exponent.
	ap42SiltExp = 0.9
	// ap42MassRef is the AP-42 reference mean vehicle mass. [t]
	ap42MassRef = 3.0
	// ap42MassExp is the vehicle-mass exponent.
	ap42MassExp = 0.45

	// DefaultBlastK is a typical hard-rock site constant for the
	// scaled-distance PPV law. [mm/s at SD=1]
	DefaultBlastK = 1140.0
	// DefaultBlastB is the matching attenuation exponent.
	DefaultBlastB = 1.6

	// DefaultNoiseRefDistance is the reference distance of the source
	// sound level. [m]
	DefaultNoiseRefDistance = 1.0
	// DefaultAirAbsorption is a mid-frequency atmospheric absorption
	// coefficient. [dB/m]
	DefaultAirAbsorption = 0.005

	// dieselCO2KgPerLitre is the combustion emission factor for diesel.
	dieselCO2KgPerLitre = 2.68
)

// HaulRoadDust returns the PM10 emission factor of an unpaved haul road
// in kg per vehicle-kilometre, from the AP-42 model
//
//	E = E₀ · (s/12)^0.9 · (W/3)^0.45
//
// with s the surface silt content [%] and W the mean vehicle mass [t].
func HaulRoadDust(siltPct, vehicleMassTonnes float64) (float64, error) {
	if !(siltPct > 0) || siltPct > 100 || math.IsNaN(siltPct) {
		return 0, fmt.Errorf("%w: got %g", ErrBadSilt, siltPct)
	}
	if !(vehicleMassTonnes > 0) || math.IsInf(vehicleMassTonnes, 1) {
		return 0, fmt.Errorf("%w: got %g", ErrBadMass, vehicleMassTonnes)
	}

	return ap42BaseKgPerVKT *
		math.Pow(siltPct/ap42SiltRef, ap42SiltExp) *
		math.Pow(vehicleMassTonnes/ap42MassRef, ap42MassExp), nil
}

// BlastOptions carries the site attenuation constants of the
// scaled-distance law. Calibrate from blast monitoring.
type BlastOptions struct {
	// SiteK is the PPV at unit scaled distance. [mm/s]
	SiteK float64
	// SiteB is the attenuation exponent.
	SiteB float64
}

// DefaultBlastOptions returns the typical hard-rock constants
// K=1140, B=1.6.
func DefaultBlastOptions() BlastOptions {
	return BlastOptions{SiteK: DefaultBlastK, SiteB: DefaultBlastB}
}

// BlastVibrationPPV returns the expected peak particle velocity in mm/s
// at `distance` metres from a blast of `chargeMass` kilograms per
// delay:
//
//	PPV = K · (D/√W)^(−B)
func BlastVibrationPPV(distance, chargeMass float64, opts BlastOptions) (float64, error) {
	if !(distance > 0) || math.IsInf(distance, 1) {
		return 0, fmt.Errorf("%w: got %g", ErrBadDistance, distance)
	}
	if !(chargeMass > 0) || math.IsInf(chargeMass, 1) {
		return 0, fmt.Errorf("%w: got %g", ErrBadCharge, chargeMass)
	}
	if !(opts.SiteK > 0) || !(opts.SiteB > 0) {
		return 0, fmt.Errorf("%w: K=%g B=%g", ErrBadAttenuation, opts.SiteK, opts.SiteB)
	}

	scaledDistance := distance / math.Sqrt(chargeMass)

	return opts.SiteK * math.Pow(scaledDistance, -opts.SiteB), nil
}

// NoiseOptions tunes the outdoor propagation model.
type NoiseOptions struct {
	// RefDistance is the distance at which the source level was
	// measured. [m]
	RefDistance float64
	// Absorption is the atmospheric absorption coefficient. [dB/m]
	Absorption float64
}

// DefaultNoiseOptions returns a 1 m reference and 0.005 dB/m
// absorption.
func DefaultNoiseOptions() NoiseOptions {
	return NoiseOptions{RefDistance: DefaultNoiseRefDistance, Absorption: DefaultAirAbsorption}
}

// NoiseLevel returns the sound pressure level in dB at `distance`
// metres from a point source of `sourceLevel` dB (measured at
// opts.RefDistance), using spherical spreading plus linear atmospheric
// absorption, floored at 0 dB:
//
//	L = L₀ − 20·log₁₀(d/d₀) − α·(d−d₀)
func NoiseLevel(sourceLevel, distance float64, opts NoiseOptions) (float64, error) {
	if sourceLevel < 0 || math.IsNaN(sourceLevel) {
		return 0, fmt.Errorf("%w: got %g", ErrBadLevel, sourceLevel)
	}
	if !(opts.RefDistance > 0) || distance < opts.RefDistance || math.IsInf(distance, 1) {
		return 0, fmt.Errorf("%w: distance %g, reference %g", ErrBadDistance, distance, opts.RefDistance)
	}

	level := sourceLevel -
		20*math.Log10(distance/opts.RefDistance) -
		opts.Absorption*(distance-opts.RefDistance)
	if level < 0 {
		level = 0
	}

	return level, nil
}

// DieselCO2 returns the combustion CO₂ mass in kilograms for `litres`
// of diesel burned (factor 2.68 kg/L).
func DieselCO2(litres float64) (float64, error) {
	if litres < 0 || math.IsNaN(litres) || math.IsInf(litres, 1) {
		return 0, fmt.Errorf("%w: got %g", ErrBadFuel, litres)
	}

	return litres * dieselCO2KgPerLitre, nil
}
