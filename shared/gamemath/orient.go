package gamemath

import "math"

// Basis returns the body axes for Euler angles ang = (roll, yaw, pitch).
// At zero angles forward is +X, up is +Y and right is +Z. Yaw turns forward
// towards +Z, pitch lifts the nose and roll tips the right side up.
func Basis(ang [3]float64) (forward, up, right [3]float64) {
	sy, cy := math.Sincos(ang[1])
	sp, cp := math.Sincos(ang[2])
	sr, cr := math.Sincos(ang[0])

	f := [3]float64{cy, 0, sy}
	u := [3]float64{0, 1, 0}
	r := [3]float64{-sy, 0, cy}

	f, u = combine(f, cp, u, sp), combine(u, cp, f, -sp)
	r, u = combine(r, cr, u, sr), combine(u, cr, r, -sr)
	return f, u, r
}

// ToWorld places a body-space point (forward, up, right) at origin with the
// orientation ang.
func ToWorld(origin, ang, local [3]float64) [3]float64 {
	f, u, r := Basis(ang)
	var out [3]float64
	for i := range out {
		out[i] = origin[i] + local[0]*f[i] + local[1]*u[i] + local[2]*r[i]
	}
	return out
}

func combine(a [3]float64, sa float64, b [3]float64, sb float64) [3]float64 {
	return [3]float64{a[0]*sa + b[0]*sb, a[1]*sa + b[1]*sb, a[2]*sa + b[2]*sb}
}
