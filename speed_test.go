package foc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMotorSpeedFromRPM(t *testing.T) {
	s := MotorSpeedFromRPM(4, 1500)
	require.Equal(t, 4, s.PolePairs())
	require.InDelta(t, 2*math.Pi*4*1500/60, s.Radps(), 1e-3)
	require.InDelta(t, 1500, s.RPM(), 1e-3)
	require.InDelta(t, 157.0796, s.RadpsMech(), 1e-3)
}

func TestMotorSpeedFromRadps(t *testing.T) {
	s := MotorSpeedFromRadps(7, 100)
	require.Equal(t, float32(100), s.Radps())
	require.InDelta(t, 100.0/7, s.RadpsMech(), 1e-5)
	require.InDelta(t, 60*100/(2*math.Pi*7), s.RPM(), 1e-4)

	require.Equal(t, s, NewMotorSpeedFrom(7, 100, UnitRadps))
	require.Equal(t, MotorSpeedFromRPM(7, 300), NewMotorSpeedFrom(7, 300, UnitRPM))
}

func TestMotorSpeedSetters(t *testing.T) {
	s := NewMotorSpeed(2)
	require.Equal(t, float32(0), s.Radps())
	require.Equal(t, float32(0), s.RPM())

	s.SetRPM(60)
	require.InDelta(t, 4*math.Pi, s.Radps(), 1e-5)
	require.InDelta(t, 2*math.Pi, s.RadpsMech(), 1e-5)

	s.SetRadps(-10)
	require.Equal(t, float32(-10), s.Radps())
	require.Equal(t, 2, s.PolePairs())
}

func TestMotorSpeedRoundTrip(t *testing.T) {
	for pp := 1; pp <= 12; pp++ {
		for _, rpm := range []float32{-3000, -1, 0, 0.5, 900, 12000} {
			s := MotorSpeedFromRPM(pp, rpm)
			require.InDelta(t, rpm, s.RPM(), 1e-3*math.Max(1, math.Abs(float64(rpm))), "pp=%d rpm=%g", pp, rpm)
			require.InDelta(t, RPMToRadpsMech(rpm), s.RadpsMech(), 1e-5*math.Max(1, math.Abs(float64(rpm))), "pp=%d rpm=%g", pp, rpm)
		}
	}
}

func TestMotorSpeedZeroPolePairs(t *testing.T) {
	s := MotorSpeedFromRadps(0, 10)
	require.True(t, math.IsInf(float64(s.RPM()), 1))
	require.True(t, math.IsInf(float64(s.RadpsMech()), 1))
}

func TestSpeedFuncs(t *testing.T) {
	require.InDelta(t, 2*math.Pi, RPMToRadpsMech(60), 1e-5)
	require.InDelta(t, 6*math.Pi, RPMToRadps(60, 3), 1e-5)
	require.InDelta(t, 60, RadpsToRPM(6*math.Pi, 3), 1e-4)
	require.Equal(t, "rpm", UnitRPM.String())
	require.Equal(t, "rad/s", UnitRadps.String())
}
