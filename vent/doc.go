// Package vent balances airflow in mine ventilation networks using the
// Hardy Cross relaxation method. It provides a small, deterministic
// solver for meshes of airways with quadratic (Atkinson) resistance,
// supporting fixed fan-driven branches and an explicit or derived loop
// basis.
//
// # Model
//
// A network is a list of Airway records. Each airway joins two junction
// IDs (From→To fixes the positive flow direction) and carries:
//
//	– Resistance: Atkinson coefficient R > 0, head loss H = R·Q·|Q|
//	– Flow:       signed airflow estimate Q in m³/s
//	– Fixed:      true when the flow is externally imposed (fan, regulator)
//
// A Loop is an ordered cycle of (airway, sign) pairs; sign +1 traverses
// the airway along From→To, −1 against it. The loop basis may be
// supplied by the caller or derived with DeriveLoops, which builds a
// fundamental cycle basis from a spanning forest (edges − nodes +
// components loops per network).
//
// # Algorithm
//
// Hardy Cross, per sweep and per loop:
//
//  1. ΔH   = Σ sign·R·Q·|Q|       (signed head loss around the loop)
//  2. sens = Σ 2·R·|Q|            (d|ΔH|/dQ; loop skipped when ≈ 0)
//  3. δQ   = −ΔH / sens
//  4. Q   += sign·δQ on every free member; fixed members never move
//     but still contribute to ΔH and sens.
//
// Sweeps repeat in the supplied loop order until the largest |δQ| of a
// sweep drops below Options.Tolerance, or Options.MaxIterations is
// reached. Hitting the cap is not an error: the Result reports
// Converged=false and callers decide what to do with the best-effort
// flows.
//
// Because every correction adds δQ on one side of a junction and
// removes it on the other, loop corrections preserve junction mass
// balance by construction. A post-solve sanity check verifies this and
// returns ErrMassBalance when a malformed loop basis broke it;
// junctions touching fixed airways are exempt (fixed branches exchange
// flow with the outside world).
//
// # Complexity
//
//	Time:   O(iterations · Σ loop lengths)
//	Memory: O(airways + junctions)
//
// # Errors
//
// All validation failures surface as package sentinels before the first
// sweep — branch with errors.Is. Non-convergence is never an error.
package vent
