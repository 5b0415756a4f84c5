// Package trig implements a table based float32 sine for targets where
// a hardware or library sine is too slow to call every PWM period.
//
// The table has 512 segments over one revolution and interpolates
// linearly between entries, the same scheme used by common MCU DSP
// libraries. The argument is reduced to a fraction of a revolution in
// float64, so the absolute error stays below 2e-5 for |x| up to 1e6
// radians. Larger finite arguments never index outside the table.
// Infinite and NaN arguments return NaN.
package trig

import "math"

const (
	tableSize = 512
	invTwoPi  = 1 / (2 * math.Pi)
)

// sinTable holds sin(2πi/512) for i in [0, 512]. The extra entry
// avoids wrapping the upper interpolation index.
var sinTable = makeSinTable()

func makeSinTable() (t [tableSize + 1]float32) {
	for i := range t {
		t[i] = float32(math.Sin(2 * math.Pi * float64(i) / tableSize))
	}
	return t
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return sinTurns(float64(x) * invTwoPi)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return sinTurns(float64(x)*invTwoPi + 0.25)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (sin, cos float32) {
	return Sin(x), Cos(x)
}

// sinTurns returns the sine of an angle given in revolutions.
func sinTurns(turns float64) float32 {
	if math.IsNaN(turns) || math.IsInf(turns, 0) {
		return float32(math.NaN())
	}
	// Fractional revolution in [0, 1].
	turns -= math.Floor(turns)

	findex := tableSize * turns
	index := int(findex)
	if index < 0 {
		index = 0
		findex = 0
	} else if index >= tableSize {
		// turns rounded up to a whole revolution.
		index = 0
		findex = 0
	}
	fract := float32(findex - float64(index))
	a := sinTable[index]
	b := sinTable[index+1]
	return (1-fract)*a + fract*b
}
