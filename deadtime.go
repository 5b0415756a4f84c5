package foc

// CompensateDeadTime corrects pulse durations for inverter dead time dt,
// expressed as a fraction of the PWM period. A phase sourcing positive
// current loses on-time during dead time so its duty is extended by dt;
// a phase sinking current has its duty shortened by dt. Results are
// clamped to [0, 1].
func CompensateDeadTime(pulses, currents Vec3, dt float32) Vec3 {
	for i := range pulses {
		if currents[i] > 0 {
			pulses[i] += dt
		} else {
			pulses[i] -= dt
		}
		pulses[i] = Clamp(pulses[i], 0, 1)
	}
	return pulses
}

// CompareValues converts pulse durations into timer compare counts for a
// PWM counter with the given period. Fractional counts are truncated.
func CompareValues(pulses Vec3, period uint32) (cmp [3]uint32) {
	for i, p := range pulses {
		cmp[i] = uint32(Clamp(p, 0, 1) * float32(period))
	}
	return cmp
}
