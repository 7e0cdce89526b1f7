// Copyright © 2016 Geoff Holden <geoff@geoffholden.com>

package data

import (
	"github.com/mattleung10/PicoLog-Thermocouple-Converter/batch"
)

// Sample is the JSON message published for each converted record.
type Sample struct {
	Run       string
	Seq       int
	TimeStamp string
	Data      map[string]float64
}

// NewSamples builds one Sample per record of a converted collection.
func NewSamples(run string, c *batch.Collection) ([]Sample, error) {
	ts := c.Timestamp()
	samples := make([]Sample, len(c.Records))
	for seq, r := range c.Records {
		s := Sample{
			Run:       run,
			Seq:       seq,
			TimeStamp: r[ts],
			Data:      make(map[string]float64),
		}
		for _, f := range c.Fields {
			if f == ts {
				continue
			}
			value, err := batch.ParseFloat(r[f])
			if err != nil {
				return nil, &batch.FieldError{Record: seq, Field: f, Err: err}
			}
			s.Data[f] = value
		}
		samples[seq] = s
	}
	return samples, nil
}
