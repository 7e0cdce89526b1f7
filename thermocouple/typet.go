// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

// Package thermocouple converts between type T thermocouple EMF and
// temperature using the NIST ITS-90 polynomial approximations.
//
// The tables are accurate for junction temperatures from -200 °C to 400 °C.
// Outside that range the polynomials extrapolate without any error.
package thermocouple

import (
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/poly"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/units"
)

// Branch selects which inverse coefficient set applies to an EMF.
type Branch int

const (
	NonNegative Branch = iota
	Negative
)

func (b Branch) String() string {
	switch b {
	case NonNegative:
		return "non-negative"
	case Negative:
		return "negative"
	}
	return "unknown"
}

// mV -> °C, -5.603 mV to 0 mV (-200 °C to 0 °C)
var inverseNegative = [...]float64{
	0.0000000e+00,
	2.5949192e+01,
	-2.1316967e-01,
	7.9018692e-01,
	4.2527777e-01,
	1.3304473e-01,
	2.0241446e-02,
	1.2668171e-03,
}

// mV -> °C, 0 mV to 20.872 mV (0 °C to 400 °C)
var inverseNonNegative = [...]float64{
	0.000000e+00,
	2.592800e+01,
	-7.602961e-01,
	4.637791e-02,
	-2.165394e-03,
	6.048144e-05,
	-7.293422e-07,
	0.000000e+00,
}

// °C -> mV, 0 °C to 400 °C
var forward = [...]float64{
	0.000000000000e+00,
	0.387481063640e-01,
	0.332922278800e-04,
	0.206182434040e-06,
	-0.218822568460e-08,
	0.109968809280e-10,
	-0.308157587720e-13,
	0.454791352900e-16,
	-0.275129016730e-19,
}

// BranchFor reports the inverse branch used for v. Zero belongs to the
// non-negative branch.
func BranchFor(v units.Voltage) Branch {
	if v.Millivolts() >= 0 {
		return NonNegative
	}
	return Negative
}

// InverseCoefficients returns a copy of the mV -> °C coefficients for b.
func InverseCoefficients(b Branch) poly.Coefficients {
	switch b {
	case Negative:
		return append(poly.Coefficients(nil), inverseNegative[:]...)
	default:
		return append(poly.Coefficients(nil), inverseNonNegative[:]...)
	}
}

// ForwardCoefficients returns a copy of the °C -> mV coefficients.
func ForwardCoefficients() poly.Coefficients {
	return append(poly.Coefficients(nil), forward[:]...)
}

// VoltageToTemperature converts a thermocouple EMF referenced to 0 °C into
// the measuring junction temperature.
func VoltageToTemperature(v units.Voltage) units.Temperature {
	var c poly.Coefficients
	switch BranchFor(v) {
	case Negative:
		c = inverseNegative[:]
	default:
		c = inverseNonNegative[:]
	}
	return units.NewTemperatureCelsius(c.Eval(v.Millivolts()))
}

// TemperatureToVoltage returns the EMF generated at t with the reference
// junction held at 0 °C. The forward table is the 0 °C to 400 °C fit and is
// used for every input.
func TemperatureToVoltage(t units.Temperature) units.Voltage {
	c := poly.Coefficients(forward[:])
	return units.NewVoltageMillivolts(c.Eval(t.Celsius()))
}

// TemperatureFromMeasuredVoltage applies cold-junction compensation: the
// reference junction's equivalent EMF is added to the measured EMF before
// inverting.
func TemperatureFromMeasuredVoltage(v units.Voltage, reference units.Temperature) units.Temperature {
	return VoltageToTemperature(TemperatureToVoltage(reference).Add(v))
}

// VoltageFromTemperature is the EMF a thermocouple would produce at t with
// its reference junction at reference.
func VoltageFromTemperature(t units.Temperature, reference units.Temperature) units.Voltage {
	return TemperatureToVoltage(t).Sub(TemperatureToVoltage(reference))
}
