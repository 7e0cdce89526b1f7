// Copyright © 2016 Geoff Holden <geoff@geoffholden.com>

package units

import (
	"testing"
	"testing/quick"
)

func TestVoltageMillivolts(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewVoltageMillivolts(x)
		return floatEquals(x, y.Millivolts())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestVoltageVolts(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewVoltageVolts(x)
		return floatEquals(x, y.Volts())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestVoltageMicrovolts(t *testing.T) {
	if err := quick.Check(func(n int32) bool {
		x := float64(n) / 1000
		y := NewVoltageMillivolts(x)
		return floatEquals(x*1000, y.Microvolts())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestVoltageScaling(t *testing.T) {
	v := NewVoltageVolts(0.00528)
	if !floatEquals(v.Millivolts(), 5.28) {
		t.Fatal("Value should be 5.28", v.Millivolts())
	}
}

func TestVoltageArithmetic(t *testing.T) {
	a := NewVoltageMillivolts(5.28)
	b := NewVoltageMillivolts(0.992)

	if sum := a.Add(b); !floatEquals(sum.Millivolts(), 6.272) {
		t.Fatal("Value should be 6.272", sum.Millivolts())
	}
	if diff := a.Sub(b); !floatEquals(diff.Millivolts(), 4.288) {
		t.Fatal("Value should be 4.288", diff.Millivolts())
	}
}

func TestVoltageGet(t *testing.T) {
	v := NewVoltageVolts(1.5)

	value, err := v.Get("V")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 1.5) {
		t.Fatal("Value should be 1.5")
	}

	value, err = v.Get("mV")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 1500) {
		t.Fatal("Value should be 1500")
	}

	value, err = v.Get("uv")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 1500000) {
		t.Fatal("Value should be 1500000")
	}

	_, err = v.Get("A")
	if err == nil {
		t.Fatal("Invalid unit should give an error")
	}
}
