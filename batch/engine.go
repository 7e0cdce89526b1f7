// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

// Package batch applies the thermocouple and RTD conversions to every
// record of a logger export.
//
// A conversion either succeeds for the whole collection or fails with the
// first *FieldError; the input collection is never modified.
package batch

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mattleung10/PicoLog-Thermocouple-Converter/rtd"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/thermocouple"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/units"
)

// Engine converts collections. The zero value converts records one at a
// time, in order.
type Engine struct {
	// Workers bounds the number of records converted concurrently.
	Workers int
}

type convertFunc func(index int, in Record, out Record) error

// Thermocouple converts every non-timestamp field from volts to °C against
// a fixed cold-junction temperature.
func (e Engine) Thermocouple(c *Collection, reference units.Temperature) (*Collection, error) {
	fields := dataFields(c, "")
	return e.apply(c, func(i int, in Record, out Record) error {
		for _, f := range fields {
			v, err := voltage(i, f, in)
			if err != nil {
				return err
			}
			out[f] = format(thermocouple.TemperatureFromMeasuredVoltage(v, reference))
		}
		return nil
	})
}

// Picolog converts a logger export where refField carries the voltage
// across a Pt1000 in a divider with series, powered from supply. Each
// record's RTD temperature is the cold-junction reference for the
// thermocouple channels in the same record, and replaces the value of
// refField.
func (e Engine) Picolog(c *Collection, refField string, series units.Resistance, supply units.Voltage) (*Collection, error) {
	if !c.Has(refField) {
		return nil, &FieldError{Record: -1, Field: refField, Err: ErrUnknownField}
	}
	if refField == c.Timestamp() {
		return nil, &FieldError{Record: -1, Field: refField, Err: ErrTimestampReference}
	}
	fields := dataFields(c, refField)
	return e.apply(c, func(i int, in Record, out Record) error {
		reference, err := dividerTemperature(i, refField, in, series, supply)
		if err != nil {
			return err
		}
		for _, f := range fields {
			v, err := voltage(i, f, in)
			if err != nil {
				return err
			}
			out[f] = format(thermocouple.TemperatureFromMeasuredVoltage(v, reference))
		}
		out[refField] = format(reference)
		return nil
	})
}

// Divider converts every non-timestamp field as the voltage across a
// Pt1000 in a divider with series, powered from supply.
func (e Engine) Divider(c *Collection, series units.Resistance, supply units.Voltage) (*Collection, error) {
	fields := dataFields(c, "")
	return e.apply(c, func(i int, in Record, out Record) error {
		for _, f := range fields {
			t, err := dividerTemperature(i, f, in, series, supply)
			if err != nil {
				return err
			}
			out[f] = format(t)
		}
		return nil
	})
}

func (e Engine) apply(c *Collection, fn convertFunc) (*Collection, error) {
	out := c.Clone()

	g, ctx := errgroup.WithContext(context.Background())
	workers := e.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i := range c.Records {
		i := i
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			return fn(i, c.Records[i], out.Records[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// dataFields lists the columns to convert: everything except the
// timestamp and skip.
func dataFields(c *Collection, skip string) []string {
	var fields []string
	for i, f := range c.Fields {
		if i == 0 || f == skip {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

func dividerTemperature(i int, field string, in Record, series units.Resistance, supply units.Voltage) (units.Temperature, error) {
	v, err := voltage(i, field, in)
	if err != nil {
		return units.Temperature{}, err
	}
	r, err := rtd.ResistanceFromVoltageDivider(v, supply, series)
	if err != nil {
		return units.Temperature{}, &FieldError{i, field, err}
	}
	t, err := rtd.ResistanceToTemperature(r)
	if err != nil {
		return units.Temperature{}, &FieldError{i, field, err}
	}
	return t, nil
}

// voltage reads a field as volts, the unit the logger exports.
func voltage(i int, field string, in Record) (units.Voltage, error) {
	raw, ok := in[field]
	if !ok {
		return units.Voltage{}, &FieldError{i, field, ErrMissingField}
	}
	x, err := ParseFloat(raw)
	if err != nil {
		return units.Voltage{}, &FieldError{i, field, err}
	}
	return units.NewVoltageVolts(x), nil
}

// ParseFloat parses a number, ignoring surrounding white space. Failures
// are returned as *ParseError.
func ParseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ParseError{Value: s, Err: err}
	}
	return x, nil
}

func format(t units.Temperature) string {
	return FormatFloat(t.Celsius())
}

// FormatFloat renders x with the fewest digits that parse back to x.
func FormatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
