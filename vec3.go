package foc

import (
	"github.com/soypat/glgl/math/ms3"
)

// Vec3 holds one float32 value per phase leg, indexed 0..2 as a, b, c.
// It carries three-phase quantities such as currents and voltages as well
// as SVPWM pulse durations.
type Vec3 [3]float32

// Phase identifies a leg of a three-phase bridge.
type Phase uint8

const (
	PhaseA Phase = iota
	PhaseB
	PhaseC
)

func (p Phase) String() string {
	switch p {
	case PhaseA:
		return "a"
	case PhaseB:
		return "b"
	case PhaseC:
		return "c"
	}
	return "phase(?)"
}

// At returns the value for phase p.
func (a Vec3) At(p Phase) float32 {
	return a[p]
}

// Ms3 converts a to a glgl 3D vector with X, Y, Z as phases a, b, c.
func (a Vec3) Ms3() ms3.Vec {
	return ms3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

// Vec3FromMs3 converts a glgl 3D vector to per-phase values.
func Vec3FromMs3(v ms3.Vec) Vec3 {
	return Vec3(v.Array())
}

// Sum returns a+b+c. It is zero for a balanced three-phase quantity.
func (a Vec3) Sum() float32 {
	return a[0] + a[1] + a[2]
}
