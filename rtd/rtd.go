// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

// Package rtd converts platinum resistance thermometer readings using the
// ITS-90 (IEC 60751) curve for a Pt1000 element.
package rtd

import (
	"math"

	"github.com/mattleung10/PicoLog-Thermocouple-Converter/units"
)

// Callendar-Van Dusen constants.
const (
	A = 3.9083e-3
	B = -5.7750e-7
	C = -4.1830e-12 // below 0 °C only

	// R0 is the Pt1000 resistance at 0 °C in ohms.
	R0 = 1000.0
)

const (
	maxIterations = 50
	tolerance     = 1e-9
)

func discriminant(r float64) float64 {
	return (R0*A)*(R0*A) - 4*R0*B*(R0-r)
}

func quadraticRoot(r float64) float64 {
	return (-R0*A + math.Sqrt(discriminant(r))) / (2 * R0 * B)
}

// ResistanceToTemperature solves r = R0(1 + A*T + B*T^2) for T.
//
// Only valid for T >= 0 °C, i.e. r >= R0. Below that the returned root is
// the quadratic's, not the sensor's; see ResistanceToTemperatureCVD.
// Resistances high enough to make the discriminant negative return a
// *DomainError.
func ResistanceToTemperature(r units.Resistance) (units.Temperature, error) {
	if discriminant(r.Ohms()) < 0 {
		return units.Temperature{}, &DomainError{"ResistanceToTemperature", r.Ohms(), ErrNegativeDiscriminant}
	}
	return units.NewTemperatureCelsius(quadraticRoot(r.Ohms())), nil
}

// ResistanceToTemperatureCVD is ResistanceToTemperature extended below
// 0 °C with the C term of the Callendar-Van Dusen equation,
//
//	r = R0(1 + A*T + B*T^2 + C*(T-100)*T^3)
//
// which has no closed form, so it is solved with Newton's method seeded
// from the quadratic root.
func ResistanceToTemperatureCVD(r units.Resistance) (units.Temperature, error) {
	ohms := r.Ohms()
	if ohms >= R0 {
		return ResistanceToTemperature(r)
	}
	if ohms < 0 {
		return units.Temperature{}, &DomainError{"ResistanceToTemperatureCVD", ohms, ErrNegativeResistance}
	}

	t := quadraticRoot(ohms)
	for i := 0; i < maxIterations; i++ {
		f := R0*(1+A*t+B*t*t+C*(t-100)*t*t*t) - ohms
		df := R0 * (A + 2*B*t + C*(4*t*t*t-300*t*t))
		step := f / df
		t -= step
		if math.Abs(step) < tolerance {
			return units.NewTemperatureCelsius(t), nil
		}
	}
	return units.Temperature{}, &DomainError{"ResistanceToTemperatureCVD", ohms, ErrNoConvergence}
}

// TemperatureToResistance is the forward Callendar-Van Dusen equation.
func TemperatureToResistance(t units.Temperature) units.Resistance {
	c := t.Celsius()
	r := R0 * (1 + A*c + B*c*c)
	if c < 0 {
		r += R0 * C * (c - 100) * c * c * c
	}
	return units.NewResistanceOhms(r)
}

// ResistanceFromVoltageDivider recovers the sensor resistance of
//
//	supply ---[ series ]---+---[ sensor ]--- GND
//	                       measured
//
// An equal supply and measured voltage means no current flows, which is
// reported as a *DomainError wrapping ErrOpenCircuit.
func ResistanceFromVoltageDivider(measured, supply units.Voltage, series units.Resistance) (units.Resistance, error) {
	drop := supply.Volts() - measured.Volts()
	if drop == 0 {
		return units.Resistance{}, &DomainError{"ResistanceFromVoltageDivider", measured.Volts(), ErrOpenCircuit}
	}
	return units.NewResistanceOhms(measured.Volts() * series.Ohms() / drop), nil
}
