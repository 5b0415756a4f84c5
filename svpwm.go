package foc

// Sine evaluates sin(x) for x in radians.
type Sine func(x float32) float32

// Modulator computes space vector PWM duty cycles. The zero value is
// ready to use and evaluates sines with the build's default sine,
// math32.Sin unless built with the foclut tag.
type Modulator struct {
	// Sin overrides the sine implementation when not nil.
	Sin Sine
}

// SVPWM computes duty cycles with the default Modulator.
func SVPWM(mag, angle, vdc float32) Vec3 {
	return Modulator{}.SVPWM(mag, angle, vdc)
}

// SVPWM converts a voltage command of magnitude mag at electrical angle
// angle (radians) into normalized pulse durations for phases a, b and c,
// given DC bus voltage vdc. Each duration is the fraction of the PWM period
// the phase leg spends high, in [0, 1].
//
// angle is wrapped into [0, 2π) and mag is clamped to [0, vdc/√3], the
// largest vector the inverter hexagon can produce without saturating.
// vdc must be non-zero. A NaN magnitude or a NaN or infinite angle yields
// NaN durations for every phase.
func (m Modulator) SVPWM(mag, angle, vdc float32) Vec3 {
	sin := m.Sin
	if sin == nil {
		sin = defaultSine
	}
	angle = Rem2Pi(angle)
	mag = Clamp(mag, 0, vdc/Sqrt3)

	sector := sectorOf(angle)
	theta := angle - float32(sector)*PiOver3

	// Basis vector times.
	k := Sqrt3 * (mag / vdc)
	tb1 := k * sin(PiOver3-theta)
	tb2 := k * sin(theta)
	tb0 := (1 - tb1 - tb2) / 2

	var pulse Vec3
	switch sector {
	case 0:
		pulse[0] = tb1 + tb2 + tb0
		pulse[1] = tb2 + tb0
		pulse[2] = tb0
	case 1:
		pulse[0] = tb1 + tb0
		pulse[1] = tb1 + tb2 + tb0
		pulse[2] = tb0
	case 2:
		pulse[0] = tb0
		pulse[1] = tb1 + tb2 + tb0
		pulse[2] = tb2 + tb0
	case 3:
		pulse[0] = tb0
		pulse[1] = tb1 + tb0
		pulse[2] = tb1 + tb2 + tb0
	case 4:
		pulse[0] = tb2 + tb0
		pulse[1] = tb0
		pulse[2] = tb1 + tb2 + tb0
	case 5:
		pulse[0] = tb1 + tb2 + tb0
		pulse[1] = tb0
		pulse[2] = tb1 + tb0
	}
	for i := range pulse {
		pulse[i] = Clamp(pulse[i], 0, 1)
	}
	return pulse
}

// SVPWMAlphaBeta computes duty cycles for a stationary frame voltage
// command, typically the output of InvPark.
func (m Modulator) SVPWMAlphaBeta(v AlphaBeta, vdc float32) Vec3 {
	mag, angle := v.Polar()
	return m.SVPWM(mag, angle, vdc)
}

// Sector returns the 60° SVPWM sector in [0, 5] that contains angle.
// Non-finite angles report sector 0.
func Sector(angle float32) int {
	return sectorOf(Rem2Pi(angle))
}

// sectorOf expects angle in [0, 2π).
func sectorOf(angle float32) int {
	if !(angle >= 0) {
		// NaN.
		return 0
	}
	sector := int(angle / PiOver3)
	if sector > 5 {
		// angle/PiOver3 rounds up to 6 just below 2π.
		sector = 5
	}
	return sector
}
