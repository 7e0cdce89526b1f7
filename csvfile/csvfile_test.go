// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package csvfile

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/mattleung10/PicoLog-Thermocouple-Converter/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = "\ufefftime,ch0,ch1\r\n" +
	"2019-06-01 12:00:00,0.55,0.002\r\n" +
	"\"2019-06-01, 12:00:01\",0.55,0.003\r\n"

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(export))
	require.NoError(t, err)
	assert.Equal(t, []string{"time", "ch0", "ch1"}, c.Fields)
	require.Len(t, c.Records, 2)
	assert.Equal(t, batch.Record{"time": "2019-06-01 12:00:00", "ch0": "0.55", "ch1": "0.002"}, c.Records[0])
	assert.Equal(t, "2019-06-01, 12:00:01", c.Records[1]["time"])
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.Equal(t, ErrNoHeader, err)
}

func TestDecodeRagged(t *testing.T) {
	_, err := Decode(strings.NewReader("time,a\n1,2,3\n"))
	assert.Error(t, err)
}

func TestEncodeKeepsOrder(t *testing.T) {
	c := &batch.Collection{
		Fields: []string{"time", "z", "a"},
		Records: []batch.Record{
			{"a": "1", "time": "t0", "z": "2"},
			{"a": "3", "time": "t1", "z": "4"},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c))
	assert.Equal(t, "time,z,a\r\nt0,2,1\r\nt1,4,3\r\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	c, err := Decode(strings.NewReader(export))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c))
	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "run.csv")
	require.NoError(t, os.WriteFile(in, []byte(export), 0644))

	c, err := Read(in)
	require.NoError(t, err)

	out := OutputPath(in, "converted")
	require.NoError(t, os.WriteFile(out, []byte("stale contents that are longer than the new file\n"), 0644))
	c.Records = c.Records[:1]
	require.NoError(t, Write(out, c))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "time,ch0,ch1\r\n2019-06-01 12:00:00,0.55,0.002\r\n", string(written))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	c, err := Decode(strings.NewReader(export))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run_converted.csv")
	require.NoError(t, Write(path, c))
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), fi.Mode().Perm())

	require.NoError(t, os.Chmod(path, 0640))
	require.NoError(t, Write(path, c))
	fi, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), fi.Mode().Perm())
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "run_converted.csv", OutputPath("run.csv", "converted"))
	assert.Equal(t, "data/run_converted_25.csv", OutputPath("data/run.csv", "converted", "25"))
	assert.Equal(t, "run_converted", OutputPath("run", "converted"))
}
