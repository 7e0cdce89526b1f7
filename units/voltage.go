// Copyright © 2016 Geoff Holden <geoff@geoffholden.com>

package units

import (
	"errors"
	"strings"
)

// Voltage is an electric potential difference, stored in millivolts since
// thermocouple tables are expressed in mV.
type Voltage struct {
	millivolts float64
}

func NewVoltageMillivolts(value float64) Voltage {
	return Voltage{value}
}

func NewVoltageVolts(value float64) Voltage {
	return Voltage{value * 1000.0}
}

func (v Voltage) Millivolts() float64 {
	return v.millivolts
}

func (v Voltage) Volts() float64 {
	return v.millivolts / 1000.0
}

func (v Voltage) Microvolts() float64 {
	return v.millivolts * 1000.0
}

func (v Voltage) Add(o Voltage) Voltage {
	return Voltage{v.millivolts + o.millivolts}
}

func (v Voltage) Sub(o Voltage) Voltage {
	return Voltage{v.millivolts - o.millivolts}
}

func (v Voltage) Get(unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "v", "volt", "volts":
		return v.Volts(), nil
	case "mv", "millivolt", "millivolts":
		return v.Millivolts(), nil
	case "uv", "µv", "microvolt", "microvolts":
		return v.Microvolts(), nil
	}
	return 0, errors.New("Unknown unit")
}
