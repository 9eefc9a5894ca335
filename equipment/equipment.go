package equipment

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for productivity calculations.
var (
	// ErrNoSegments indicates an empty haul profile.
	ErrNoSegments = errors.New("equipment: at least one haul segment is required")
	// ErrBadSegment indicates a segment with non-positive distance or speed.
	ErrBadSegment = errors.New("equipment: segment distance and speed must be positive")
	// ErrBadTime indicates a non-positive time input.
	ErrBadTime = errors.New("equipment: time must be positive")
	// ErrBadFixedTime indicates a negative fixed (spot/load/dump) time.
	ErrBadFixedTime = errors.New("equipment: fixed time must be non-negative")
	// ErrBadCount indicates a non-positive fleet count.
	ErrBadCount = errors.New("equipment: fleet count must be positive")
	// ErrBadPayload indicates a non-positive payload.
	ErrBadPayload = errors.New("equipment: payload must be positive")
	// ErrBadFactor indicates a derating factor outside (0, 1].
	ErrBadFactor = errors.New("equipment: factor must be in (0, 1]")
	// ErrBadMTBF indicates a non-positive mean time between failures.
	ErrBadMTBF = errors.New("equipment: MTBF must be positive")
	// ErrBadMTTR indicates a negative mean time to repair.
	ErrBadMTTR = errors.New("equipment: MTTR must be non-negative")
)

// minutesPerHour and metresPerKm convert segment travel to minutes.
const (
	minutesPerHour = 60.0
	metresPerKm    = 1000.0
)

// Segment is one leg of a haul profile.
type Segment struct {
	// Distance travelled, metres.
	Distance float64
	// Speed over the leg, km/h.
	Speed float64
}

// CycleTime returns the full truck cycle in minutes: travel over every
// segment plus the fixed spot/load/dump component.
func CycleTime(segments []Segment, fixedMinutes float64) (float64, error) {
	if len(segments) == 0 {
		return 0, ErrNoSegments
	}
	if fixedMinutes < 0 || math.IsNaN(fixedMinutes) {
		return 0, fmt.Errorf("%w: got %g", ErrBadFixedTime, fixedMinutes)
	}

	total := fixedMinutes
	for i, s := range segments {
		if !(s.Distance > 0) || !(s.Speed > 0) || math.IsInf(s.Distance, 1) || math.IsInf(s.Speed, 1) {
			return 0, fmt.Errorf("%w: segment %d (%g m at %g km/h)", ErrBadSegment, i, s.Distance, s.Speed)
		}
		total += s.Distance / metresPerKm / s.Speed * minutesPerHour
	}

	return total, nil
}

// MatchFactor returns the fleet match factor
//
//	MF = (trucks · loadTime) / (loaders · truckCycle)
//
// MF < 1 starves the loaders, MF > 1 queues the trucks, MF = 1 is the
// theoretical balance point.
func MatchFactor(trucks, loaders int, loadTime, truckCycle float64) (float64, error) {
	if trucks < 1 || loaders < 1 {
		return 0, fmt.Errorf("%w: trucks=%d loaders=%d", ErrBadCount, trucks, loaders)
	}
	if !(loadTime > 0) || !(truckCycle > 0) {
		return 0, fmt.Errorf("%w: load=%g cycle=%g", ErrBadTime, loadTime, truckCycle)
	}

	return float64(trucks) * loadTime / (float64(loaders) * truckCycle), nil
}

// ProdOptions derates nameplate truck productivity.
type ProdOptions struct {
	// Availability is mechanical availability, (0, 1].
	Availability float64
	// Utilization is use of availability, (0, 1].
	Utilization float64
	// FillFactor is bucket/tray fill, (0, 1].
	FillFactor float64
}

// DefaultProdOptions returns common fleet planning figures:
// 90% available, 85% utilized, 95% fill.
func DefaultProdOptions() ProdOptions {
	return ProdOptions{Availability: 0.90, Utilization: 0.85, FillFactor: 0.95}
}

// TruckProductivity returns effective truck output in tonnes per hour:
//
//	P = payload·fill · (60/cycle) · availability · utilization
func TruckProductivity(payloadTonnes, cycleMinutes float64, opts ProdOptions) (float64, error) {
	if !(payloadTonnes > 0) || math.IsInf(payloadTonnes, 1) {
		return 0, fmt.Errorf("%w: got %g", ErrBadPayload, payloadTonnes)
	}
	if !(cycleMinutes > 0) || math.IsInf(cycleMinutes, 1) {
		return 0, fmt.Errorf("%w: cycle=%g", ErrBadTime, cycleMinutes)
	}
	for _, f := range [...]float64{opts.Availability, opts.Utilization, opts.FillFactor} {
		if !(f > 0) || f > 1 {
			return 0, fmt.Errorf("%w: got %g", ErrBadFactor, f)
		}
	}

	return payloadTonnes * opts.FillFactor * (minutesPerHour / cycleMinutes) *
		opts.Availability * opts.Utilization, nil
}

// Availability returns mechanical availability MTBF/(MTBF+MTTR) as a
// fraction in (0, 1].
func Availability(mtbf, mttr float64) (float64, error) {
	if !(mtbf > 0) || math.IsInf(mtbf, 1) {
		return 0, fmt.Errorf("%w: got %g", ErrBadMTBF, mtbf)
	}
	if mttr < 0 || math.IsNaN(mttr) || math.IsInf(mttr, 1) {
		return 0, fmt.Errorf("%w: got %g", ErrBadMTTR, mttr)
	}

	return mtbf / (mtbf + mttr), nil
}
