// Copyright © 2016 Geoff Holden <geoff@geoffholden.com>

package units

type Resistance struct {
	ohms float64
}

func NewResistanceOhms(value float64) Resistance {
	return Resistance{value}
}

func (r Resistance) Ohms() float64 {
	return r.ohms
}
