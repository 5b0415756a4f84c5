// Package foc implements the float32 coordinate transforms and modulation
// used in field oriented control of three-phase motors: Clarke, Park and
// inverse Park transforms, space vector PWM duty cycle generation, dead
// time compensation and motor speed unit conversion.
//
// All functions are allocation free and run in a bounded number of
// arithmetic operations so they may be called from a PWM interrupt.
// None of them fail: out of range angles and magnitudes are wrapped and
// clamped rather than reported.
package foc
