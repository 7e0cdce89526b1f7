// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package batch

import (
	"errors"
	"strconv"
	"testing"

	"github.com/mattleung10/PicoLog-Thermocouple-Converter/rtd"
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	series = units.NewResistanceOhms(4000)
	supply = units.NewVoltageVolts(2.5)
)

func picologSample() *Collection {
	return &Collection{
		Fields: []string{"time", "ch0", "ch1"},
		Records: []Record{
			{"time": "2019-06-01 12:00:00", "ch0": "0.55", "ch1": "0.002"},
			{"time": "2019-06-01 12:00:01", "ch0": "0.55", "ch1": "0.003"},
			{"time": "2019-06-01 12:00:02", "ch0": "0.6", "ch1": "-0.0005"},
		},
	}
}

func value(t *testing.T, r Record, field string) float64 {
	x, err := strconv.ParseFloat(r[field], 64)
	require.NoError(t, err, "field %s", field)
	return x
}

func TestPicolog(t *testing.T) {
	in := picologSample()
	out, err := Engine{}.Picolog(in, "ch0", series, supply)
	require.NoError(t, err)

	require.Len(t, out.Records, 3)
	assert.Equal(t, []string{"time", "ch0", "ch1"}, out.Fields)
	for i, r := range out.Records {
		assert.Equal(t, in.Records[i]["time"], r["time"])
	}

	assert.InDelta(t, 32.96385869395274, value(t, out.Records[0], "ch0"), 1e-9)
	assert.InDelta(t, 79.12841075899914, value(t, out.Records[0], "ch1"), 1e-9)
	assert.InDelta(t, 32.96385869395274, value(t, out.Records[1], "ch0"), 1e-9)
	assert.InDelta(t, 100.86242747641364, value(t, out.Records[1], "ch1"), 1e-9)
	assert.InDelta(t, 68.0166733417728, value(t, out.Records[2], "ch0"), 1e-9)
	assert.InDelta(t, 56.60026235156612, value(t, out.Records[2], "ch1"), 1e-9)
}

func TestPicologLeavesInputUntouched(t *testing.T) {
	in := picologSample()
	_, err := Engine{}.Picolog(in, "ch0", series, supply)
	require.NoError(t, err)
	assert.Equal(t, picologSample(), in)
}

func TestPicologReferenceField(t *testing.T) {
	in := picologSample()

	_, err := Engine{}.Picolog(in, "ch7", series, supply)
	assert.True(t, errors.Is(err, ErrUnknownField))

	_, err = Engine{}.Picolog(in, "time", series, supply)
	assert.True(t, errors.Is(err, ErrTimestampReference))
}

func TestPicologReferenceColumnInMiddle(t *testing.T) {
	in := &Collection{
		Fields: []string{"time", "tc1", "ref", "tc2"},
		Records: []Record{
			{"time": "0", "tc1": "0.002", "ref": "0.55", "tc2": "0.003"},
		},
	}
	out, err := Engine{}.Picolog(in, "ref", series, supply)
	require.NoError(t, err)
	assert.Equal(t, "0", out.Records[0]["time"])
	assert.InDelta(t, 32.96385869395274, value(t, out.Records[0], "ref"), 1e-9)
	assert.InDelta(t, 79.12841075899914, value(t, out.Records[0], "tc1"), 1e-9)
	assert.InDelta(t, 100.86242747641364, value(t, out.Records[0], "tc2"), 1e-9)
}

func TestPicologOpenCircuit(t *testing.T) {
	in := picologSample()
	in.Records[1]["ch0"] = "2.5"

	out, err := Engine{}.Picolog(in, "ch0", series, supply)
	require.Error(t, err)
	assert.Nil(t, out)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 1, fe.Record)
	assert.Equal(t, "ch0", fe.Field)

	var de *rtd.DomainError
	assert.True(t, errors.As(err, &de))
	assert.True(t, errors.Is(err, rtd.ErrOpenCircuit))
}

func TestThermocouple(t *testing.T) {
	in := &Collection{
		Fields: []string{"time", "a", "b"},
		Records: []Record{
			{"time": "t0", "a": "0.00528", "b": "0.001"},
			{"time": "t1", "a": " 0.001 ", "b": "0.00528"},
		},
	}
	out, err := Engine{Workers: 4}.Thermocouple(in, units.NewTemperatureCelsius(25))
	require.NoError(t, err)

	assert.Equal(t, "t0", out.Records[0]["time"])
	assert.Equal(t, "t1", out.Records[1]["time"])
	assert.InDelta(t, 141.345886904052, value(t, out.Records[0], "a"), 1e-9)
	assert.InDelta(t, 48.96548571651784, value(t, out.Records[0], "b"), 1e-9)
	assert.InDelta(t, 48.96548571651784, value(t, out.Records[1], "a"), 1e-9)
	assert.InDelta(t, 141.345886904052, value(t, out.Records[1], "b"), 1e-9)
}

func TestThermocoupleParseError(t *testing.T) {
	in := &Collection{
		Fields: []string{"time", "a"},
		Records: []Record{
			{"time": "t0", "a": "0.001"},
			{"time": "t1", "a": "n/a"},
			{"time": "t2", "a": "0.001"},
		},
	}
	out, err := Engine{}.Thermocouple(in, units.NewTemperatureCelsius(25))
	require.Error(t, err)
	assert.Nil(t, out)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 1, fe.Record)
	assert.Equal(t, "a", fe.Field)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "n/a", pe.Value)
}

func TestMissingField(t *testing.T) {
	in := &Collection{
		Fields:  []string{"time", "a"},
		Records: []Record{{"time": "t0"}},
	}
	_, err := Engine{}.Thermocouple(in, units.NewTemperatureCelsius(0))
	assert.True(t, errors.Is(err, ErrMissingField))
}

func TestDivider(t *testing.T) {
	in := &Collection{
		Fields: []string{"time", "r1", "r2"},
		Records: []Record{
			{"time": "t0", "r1": "0.5", "r2": "0.6"},
		},
	}
	out, err := Engine{Workers: 2}.Divider(in, series, supply)
	require.NoError(t, err)
	assert.Equal(t, "t0", out.Records[0]["time"])
	assert.InDelta(t, 0.0, value(t, out.Records[0], "r1"), 1e-9)
	assert.InDelta(t, 68.0166733417728, value(t, out.Records[0], "r2"), 1e-9)
}

func TestEmptyCollection(t *testing.T) {
	in := &Collection{Fields: []string{"time", "a"}}
	out, err := Engine{}.Thermocouple(in, units.NewTemperatureCelsius(25))
	require.NoError(t, err)
	assert.Equal(t, []string{"time", "a"}, out.Fields)
	assert.Empty(t, out.Records)
}

func TestParallelMatchesSerial(t *testing.T) {
	in := &Collection{Fields: []string{"time", "ch0", "ch1", "ch2"}}
	for i := 0; i < 200; i++ {
		in.Records = append(in.Records, Record{
			"time": strconv.Itoa(i),
			"ch0":  FormatFloat(0.5 + float64(i)/1000),
			"ch1":  FormatFloat(float64(i) / 100000),
			"ch2":  FormatFloat(-float64(i) / 200000),
		})
	}
	serial, err := Engine{}.Picolog(in, "ch0", series, supply)
	require.NoError(t, err)
	parallel, err := Engine{Workers: 8}.Picolog(in, "ch0", series, supply)
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "141.345886904052", FormatFloat(141.345886904052))
	assert.Equal(t, "25", FormatFloat(25))
	assert.Equal(t, "-0.5", FormatFloat(-0.5))
}
