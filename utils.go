package foc

import (
	"github.com/chewxy/math32"
)

const (
	// TwoPi is a full electrical revolution in radians.
	TwoPi = 6.2831853071795864769252867665590057683943387987502116419498891846
	// PiOver3 is the angular width of one SVPWM sector.
	PiOver3 = 1.0471975511965977461542144610931676280657231331250352736583148641
	// Sqrt3 is the square root of 3.
	Sqrt3 = 1.7320508075688772935274463415058723669428052538103806280558069794
	// InvSqrt3 is 1/Sqrt3.
	InvSqrt3 = 0.5773502691896257645091487805019574556476017512701268760186023264
)

const (
	pi       = math32.Pi
	degToRad = pi / 180
	radToDeg = 180 / pi
)

// DtoR converts degrees to radians
func DtoR(degrees float32) float32 {
	return degToRad * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float32) float32 {
	return radToDeg * radians
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Rem2Pi wraps angle into [0, 2π).
func Rem2Pi(angle float32) float32 {
	angle = math32.Mod(angle, TwoPi)
	if angle < 0 {
		angle += TwoPi
	}
	// -tiny + 2π rounds up to 2π in float32.
	if angle >= TwoPi {
		angle = 0
	}
	return angle
}
