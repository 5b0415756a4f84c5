package foc

// SpeedUnit selects how NewMotorSpeedFrom interprets its value.
type SpeedUnit uint8

const (
	// UnitRadps is electrical angular speed in radians per second.
	UnitRadps SpeedUnit = iota
	// UnitRPM is mechanical revolutions per minute.
	UnitRPM
)

func (u SpeedUnit) String() string {
	switch u {
	case UnitRadps:
		return "rad/s"
	case UnitRPM:
		return "rpm"
	}
	return "unit(?)"
}

// MotorSpeed is the speed of a motor with a fixed number of pole pairs.
// It stores electrical angular speed; all other units are derived.
// The pole pair count must be positive, a zero count yields non-finite
// conversions.
//
// MotorSpeed is not safe for concurrent use.
type MotorSpeed struct {
	polePairs int
	radpsElec float32
}

// NewMotorSpeed returns a stopped MotorSpeed.
func NewMotorSpeed(polePairs int) MotorSpeed {
	return MotorSpeed{polePairs: polePairs}
}

// NewMotorSpeedFrom returns a MotorSpeed initialized to value in unit.
func NewMotorSpeedFrom(polePairs int, value float32, unit SpeedUnit) MotorSpeed {
	s := NewMotorSpeed(polePairs)
	switch unit {
	case UnitRPM:
		s.SetRPM(value)
	default:
		s.SetRadps(value)
	}
	return s
}

// MotorSpeedFromRPM returns a MotorSpeed running at rpm.
func MotorSpeedFromRPM(polePairs int, rpm float32) MotorSpeed {
	return NewMotorSpeedFrom(polePairs, rpm, UnitRPM)
}

// MotorSpeedFromRadps returns a MotorSpeed running at electrical angular speed radps.
func MotorSpeedFromRadps(polePairs int, radps float32) MotorSpeed {
	return NewMotorSpeedFrom(polePairs, radps, UnitRadps)
}

// PolePairs returns the pole pair count fixed at construction.
func (s MotorSpeed) PolePairs() int { return s.polePairs }

// Radps returns electrical angular speed in rad/s.
func (s MotorSpeed) Radps() float32 { return s.radpsElec }

// RPM returns mechanical speed in revolutions per minute.
func (s MotorSpeed) RPM() float32 { return RadpsToRPM(s.radpsElec, s.polePairs) }

// RadpsMech returns mechanical angular speed in rad/s.
func (s MotorSpeed) RadpsMech() float32 { return s.radpsElec / float32(s.polePairs) }

// SetRadps sets electrical angular speed in rad/s.
func (s *MotorSpeed) SetRadps(radps float32) { s.radpsElec = radps }

// SetRPM sets mechanical speed in revolutions per minute.
func (s *MotorSpeed) SetRPM(rpm float32) { s.radpsElec = RPMToRadps(rpm, s.polePairs) }

// RPMToRadps converts mechanical rpm to electrical rad/s.
func RPMToRadps(rpm float32, polePairs int) float32 {
	return TwoPi * float32(polePairs) * rpm / 60
}

// RPMToRadpsMech converts rpm to mechanical rad/s.
func RPMToRadpsMech(rpm float32) float32 {
	return TwoPi * rpm / 60
}

// RadpsToRPM converts electrical rad/s to mechanical rpm.
func RadpsToRPM(radps float32, polePairs int) float32 {
	return 60 * radps / (TwoPi * float32(polePairs))
}
