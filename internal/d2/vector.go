package d2

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// Rotate rotates a by the angle whose sine and cosine are given.
func Rotate(a ms2.Vec, sin, cos float32) ms2.Vec {
	return ms2.Vec{
		X: a.X*cos - a.Y*sin,
		Y: a.Y*cos + a.X*sin,
	}
}

// Pol is a polar coordinate.
type Pol struct {
	R, Theta float32
}

// CartesianToPolar converts a cartesian to a polar coordinate.
// Theta is in (-π, π].
func CartesianToPolar(a ms2.Vec) Pol {
	return Pol{ms2.Norm(a), math32.Atan2(a.Y, a.X)}
}
