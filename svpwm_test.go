package foc

import (
	"fmt"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/foc/trig"
	"github.com/stretchr/testify/require"
)

func requireVec3InDelta(t *testing.T, want, got Vec3, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, msgAndArgs...)
	}
}

func TestSVPWMBounds(t *testing.T) {
	for _, vdc := range []float32{12, 48, 300} {
		for mag := float32(0); mag <= vdc; mag += vdc / 17 {
			for angle := float32(-10); angle < 10; angle += 0.013 {
				pulse := SVPWM(mag, angle, vdc)
				for i, p := range pulse {
					if p < 0 || p > 1 {
						t.Fatalf("phase %s duty %g out of range. mag=%g angle=%g vdc=%g", Phase(i), p, mag, angle, vdc)
					}
				}
			}
		}
	}
}

func TestSVPWMZeroMagnitude(t *testing.T) {
	for angle := float32(0); angle < TwoPi; angle += 0.5 {
		require.Equal(t, Vec3{0.5, 0.5, 0.5}, SVPWM(0, angle, 24))
	}
	// Negative magnitude clamps to zero.
	require.Equal(t, Vec3{0.5, 0.5, 0.5}, SVPWM(-3, 1, 24))
}

func TestSVPWMSectorContinuity(t *testing.T) {
	const (
		vdc = 48
		eps = 1e-4
	)
	for _, mag := range []float32{1, 10, vdc / Sqrt3} {
		for k := 0; k < 6; k++ {
			boundary := float32(k) * PiOver3
			before := SVPWM(mag, boundary-eps, vdc)
			after := SVPWM(mag, boundary+eps, vdc)
			requireVec3InDelta(t, before, after, 1e-3, "mag=%g boundary %d", mag, k)
		}
	}
}

func TestSVPWMSectorTable(t *testing.T) {
	const (
		vdc = 24
		mag = 9
	)
	m := Modulator{Sin: math32.Sin}
	for sector := 0; sector < 6; sector++ {
		t.Run(fmt.Sprintf("sector%d", sector), func(t *testing.T) {
			angle := (float32(sector) + 0.3) * PiOver3
			require.Equal(t, sector, Sector(angle))
			theta := angle - float32(sector)*PiOver3
			k := Sqrt3 * (float32(mag) / vdc)
			tb1 := k * math32.Sin(PiOver3-theta)
			tb2 := k * math32.Sin(theta)
			tb0 := (1 - tb1 - tb2) / 2
			want := [6]Vec3{
				{tb1 + tb2 + tb0, tb2 + tb0, tb0},
				{tb1 + tb0, tb1 + tb2 + tb0, tb0},
				{tb0, tb1 + tb2 + tb0, tb2 + tb0},
				{tb0, tb1 + tb0, tb1 + tb2 + tb0},
				{tb2 + tb0, tb0, tb1 + tb2 + tb0},
				{tb1 + tb2 + tb0, tb0, tb1 + tb0},
			}[sector]
			requireVec3InDelta(t, want, m.SVPWM(mag, angle, vdc), 1e-6)
		})
	}
}

func TestSVPWMFirstSectorValues(t *testing.T) {
	// At the start of sector 0 only the first basis vector is active,
	// for a fraction sin(60°) of the period at full magnitude.
	pulse := SVPWM(24/Sqrt3, 0, 24)
	requireVec3InDelta(t, Vec3{0.9330127, 0.0669873, 0.0669873}, pulse, 1e-6)
	pulse = SVPWM(12/Sqrt3, 0, 24)
	requireVec3InDelta(t, Vec3{0.7165064, 0.2834936, 0.2834936}, pulse, 1e-6)
}

func TestSVPWMMagnitudeClamp(t *testing.T) {
	const vdc = 36
	var vdcf float32 = vdc
	for angle := float32(0); angle < TwoPi; angle += 0.21 {
		limit := SVPWM(vdcf/Sqrt3, angle, vdc)
		require.Equal(t, limit, SVPWM(1000*vdc, angle, vdc))
		require.Equal(t, limit, SVPWM(vdc, angle, vdc))
	}
}

func TestSVPWMAngleWrap(t *testing.T) {
	const vdc = 48
	for angle := float32(0.05); angle < TwoPi; angle += 0.3 {
		base := SVPWM(20, angle, vdc)
		requireVec3InDelta(t, base, SVPWM(20, angle+TwoPi, vdc), 1e-5, "angle=%g", angle)
		requireVec3InDelta(t, base, SVPWM(20, angle-TwoPi, vdc), 1e-5, "angle=%g", angle)
	}
}

func TestSector(t *testing.T) {
	require.Equal(t, 0, Sector(0))
	require.Equal(t, 1, Sector(PiOver3))
	require.Equal(t, 3, Sector(pi+1e-3))
	require.Equal(t, 5, Sector(-1e-3))
	require.Equal(t, 5, Sector(math.Float32frombits(math.Float32bits(TwoPi)-1)))
	require.Equal(t, 2, Sector(TwoPi+2.5))
}

func TestSVPWMNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	for _, angle := range []float32{nan, inf, -inf} {
		require.Equal(t, 0, Sector(angle))
		for _, m := range []Modulator{{}, {Sin: math32.Sin}, {Sin: trig.Sin}} {
			pulse := m.SVPWM(10, angle, 24)
			for i, p := range pulse {
				require.True(t, math.IsNaN(float64(p)), "angle=%g phase %d: %g", angle, i, p)
			}
		}
	}
	pulse := SVPWM(nan, 1, 24)
	for i, p := range pulse {
		require.True(t, math.IsNaN(float64(p)), "phase %d: %g", i, p)
	}
}

func TestModulatorSine(t *testing.T) {
	calls := 0
	m := Modulator{Sin: func(x float32) float32 {
		calls++
		return math32.Sin(x)
	}}
	got := m.SVPWM(5, 1, 24)
	require.Equal(t, 2, calls)
	requireVec3InDelta(t, Modulator{Sin: math32.Sin}.SVPWM(5, 1, 24), got, 0)

	lut := Modulator{Sin: trig.Sin}
	for angle := float32(0); angle < TwoPi; angle += 0.05 {
		requireVec3InDelta(t, m.SVPWM(13, angle, 24), lut.SVPWM(13, angle, 24), 1e-4)
	}
}

func TestSVPWMAlphaBeta(t *testing.T) {
	const vdc = 24
	var m Modulator
	for theta := float32(0); theta < TwoPi; theta += 0.4 {
		sin, cos := math32.Sincos(theta)
		v := InvPark(6, 2, sin, cos)
		mag, angle := v.Polar()
		requireVec3InDelta(t, m.SVPWM(mag, angle, vdc), m.SVPWMAlphaBeta(v, vdc), 0)
		// Phase voltages relative to the midpoint reconstruct the command.
		pulse := m.SVPWMAlphaBeta(v, vdc)
		mean := pulse.Sum() / 3
		var phase Vec3
		for i := range pulse {
			phase[i] = (pulse[i] - mean) * vdc
		}
		got := ClarkeVec(phase)
		require.InDelta(t, v.Alpha, got.Alpha, 1e-3, "theta=%g", theta)
		require.InDelta(t, v.Beta, got.Beta, 1e-3, "theta=%g", theta)
	}
}
