package foc

import (
	"github.com/soypat/foc/internal/d2"
	"github.com/soypat/glgl/math/ms2"
)

// DQ is a quantity in the rotor-aligned rotating frame:
// direct (D) and quadrature (Q) components.
type DQ struct {
	D, Q float32
}

// AlphaBeta is a quantity in the two-phase stationary frame.
type AlphaBeta struct {
	Alpha, Beta float32
}

// Vec returns v as a glgl 2D vector with X=Alpha and Y=Beta.
func (v AlphaBeta) Vec() ms2.Vec {
	return ms2.Vec{X: v.Alpha, Y: v.Beta}
}

// Polar returns the magnitude and angle of the space vector v.
// The angle is in (-π, π].
func (v AlphaBeta) Polar() (mag, angle float32) {
	p := d2.CartesianToPolar(v.Vec())
	return p.R, p.Theta
}

// Vec returns v as a glgl 2D vector with X=D and Y=Q.
func (v DQ) Vec() ms2.Vec {
	return ms2.Vec{X: v.D, Y: v.Q}
}

// Clarke converts three-phase quantities to the stationary two-phase frame.
// No balance between a, b and c is assumed.
func Clarke(a, b, c float32) AlphaBeta {
	return AlphaBeta{
		Alpha: a,
		Beta:  (b - c) * InvSqrt3,
	}
}

// ClarkeVec is Clarke applied to the phases of v.
func ClarkeVec(v Vec3) AlphaBeta {
	return Clarke(v[0], v[1], v[2])
}

// Clarke2 converts two phases of a balanced system to the stationary
// two-phase frame. The third phase is implied as c = -a-b.
func Clarke2(a, b float32) AlphaBeta {
	return AlphaBeta{
		Alpha: a,
		Beta:  (a + 2*b) * InvSqrt3,
	}
}

// Park rotates stationary (alpha, beta) into the rotor frame at electrical
// angle θ. sin and cos are sin(θ) and cos(θ), computed once per control
// tick by the caller.
func Park(alpha, beta, sin, cos float32) DQ {
	v := d2.Rotate(ms2.Vec{X: alpha, Y: beta}, -sin, cos)
	return DQ{D: v.X, Q: v.Y}
}

// InvPark rotates rotor frame (d, q) back into the stationary frame.
// It is the inverse of Park for the same sin and cos.
func InvPark(d, q, sin, cos float32) AlphaBeta {
	v := d2.Rotate(ms2.Vec{X: d, Y: q}, sin, cos)
	return AlphaBeta{Alpha: v.X, Beta: v.Y}
}
