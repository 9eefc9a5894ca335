package drillhole

import (
	"fmt"
	"math"
)

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// minDogleg is the dogleg angle below which the arc is treated as
// straight (ratio factor 1) to avoid 0/0 in the RF formula.
const minDogleg = 1e-9

// maxDogleg rejects near-180° doglegs: the minimum-curvature arc
// between opposing tangents is undefined.
const maxDogleg = math.Pi - 1e-6

// Desurvey computes the 3-D position of every survey station using the
// minimum-curvature method, starting from the collar location.
//
// Steps:
//  1. Validate stations: depths strictly increasing and non-negative,
//     azimuth in [0,360), dip in [-90,90].
//  2. Walk the collar to the first station straight along the first
//     station's orientation.
//  3. Between consecutive stations, apply the circular-arc step
//     Δp = ΔMD/2·RF·(t₁+t₂) with RF = (2/β)·tan(β/2).
//
// The result has one Point per station, in station order.
//
// Complexity: O(n) time, O(n) memory.
func Desurvey(collar Point, stations []Station) ([]Point, error) {
	if err := validateStations(stations); err != nil {
		return nil, err
	}

	path := make([]Point, len(stations))

	// Collar → first station: straight along the first tangent.
	t1 := tangent(stations[0])
	pos := step(collar, t1, t1, stations[0].Depth, 1)
	path[0] = pos

	for i := 1; i < len(stations); i++ {
		t2 := tangent(stations[i])
		// Dogleg angle between tangents; clamp the dot product against
		// rounding before acos.
		dot := t1.East*t2.East + t1.North*t2.North + t1.Elev*t2.Elev
		beta := math.Acos(math.Max(-1, math.Min(1, dot)))
		if beta >= maxDogleg {
			return nil, fmt.Errorf("%w: stations %d and %d", ErrSharpDogleg, i-1, i)
		}
		rf := 1.0
		if beta > minDogleg {
			rf = (2 / beta) * math.Tan(beta/2)
		}
		pos = step(pos, t1, t2, stations[i].Depth-stations[i-1].Depth, rf)
		path[i] = pos
		t1 = t2
	}

	return path, nil
}

// Dogleg returns the dogleg severity between two stations in degrees
// per 30 m of measured depth. Zero-length pairs return 0.
func Dogleg(a, b Station) float64 {
	md := math.Abs(b.Depth - a.Depth)
	if md == 0 {
		return 0
	}
	ta, tb := tangent(a), tangent(b)
	dot := ta.East*tb.East + ta.North*tb.North + ta.Elev*tb.Elev
	beta := math.Acos(math.Max(-1, math.Min(1, dot)))

	return beta / degToRad * 30 / md
}

// tangent returns the unit direction vector of a station: azimuth spins
// the horizontal component clockwise from north, dip lifts or drops it.
func tangent(s Station) Point {
	az := s.Azimuth * degToRad
	dip := s.Dip * degToRad
	h := math.Cos(dip)

	return Point{
		East:  h * math.Sin(az),
		North: h * math.Cos(az),
		Elev:  math.Sin(dip),
	}
}

// step advances pos by the minimum-curvature displacement over md
// metres between tangents t1 and t2 with ratio factor rf.
func step(pos Point, t1, t2 Point, md, rf float64) Point {
	half := md / 2 * rf

	return Point{
		East:  pos.East + half*(t1.East+t2.East),
		North: pos.North + half*(t1.North+t2.North),
		Elev:  pos.Elev + half*(t1.Elev+t2.Elev),
	}
}

// validateStations applies the record rules shared by Desurvey.
func validateStations(stations []Station) error {
	if len(stations) == 0 {
		return ErrNoStations
	}
	prev := math.Inf(-1)
	for i, s := range stations {
		if s.Depth < 0 {
			return fmt.Errorf("%w: station %d at %g m", ErrNegativeDepth, i, s.Depth)
		}
		if s.Depth <= prev {
			return fmt.Errorf("%w: station %d at %g m", ErrUnsortedStations, i, s.Depth)
		}
		if s.Azimuth < 0 || s.Azimuth >= 360 || math.IsNaN(s.Azimuth) {
			return fmt.Errorf("%w: station %d has azimuth %g", ErrBadAzimuth, i, s.Azimuth)
		}
		if s.Dip < -90 || s.Dip > 90 || math.IsNaN(s.Dip) {
			return fmt.Errorf("%w: station %d has dip %g", ErrBadDip, i, s.Dip)
		}
		prev = s.Depth
	}

	return nil
}
