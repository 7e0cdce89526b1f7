// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/mattleung10/PicoLog-Thermocouple-Converter/batch"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/units"
)

// number parses a positional argument, naming it in the error.
func number(name string, arg string) (float64, error) {
	x, err := batch.ParseFloat(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return x, nil
}

type quantity interface {
	Get(unit string) (float64, error)
}

// printIn writes q converted to the unit named by the "unit" setting.
func printIn(w io.Writer, label string, q quantity) error {
	unit := viper.GetString("unit")
	x, err := q.Get(unit)
	if err != nil {
		return fmt.Errorf("%s: %w", unit, err)
	}
	fmt.Fprintln(w, label+":", batch.FormatFloat(x), unit)
	return nil
}

func printTemperature(w io.Writer, t units.Temperature) error {
	return printIn(w, "Temperature", t)
}
