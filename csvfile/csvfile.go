// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

// Package csvfile reads and writes logger exports: a header row of field
// names followed by one row per record, first column the timestamp.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattleung10/PicoLog-Thermocouple-Converter/batch"
)

var ErrNoHeader = errors.New("missing header row")

const bom = "\ufeff"

// Decode reads a collection from r.
func Decode(r io.Reader) (*batch.Collection, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	header[0] = strings.TrimPrefix(header[0], bom)

	c := &batch.Collection{Fields: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		record := make(batch.Record, len(header))
		for i, f := range header {
			record[f] = row[i]
		}
		c.Records = append(c.Records, record)
	}
	return c, nil
}

// Encode writes c to w, header first, fields in c.Fields order.
func Encode(w io.Writer, c *batch.Collection) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(c.Fields); err != nil {
		return err
	}
	row := make([]string, len(c.Fields))
	for _, r := range c.Records {
		for i, f := range c.Fields {
			row[i] = r[f]
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Read loads the collection stored at path.
func Read(path string) (*batch.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Mode is the permission given to new output files.
var Mode os.FileMode = 0644

// Write stores c at path, replacing any existing file. The data goes to a
// temporary file in the same directory first so a failed write leaves the
// previous contents in place. An existing file keeps its permissions; a new
// one gets Mode.
func Write(path string, c *batch.Collection) error {
	mode := Mode
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, c); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// OutputPath derives the name of a converted file from its input:
// OutputPath("run.csv", "converted", "25") is "run_converted_25.csv".
func OutputPath(input string, parts ...string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	for _, p := range parts {
		base += "_" + p
	}
	return base + ext
}
