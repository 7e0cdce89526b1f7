// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package batch

// Record is one row of a logger export, keyed by column name.
type Record map[string]string

// Collection is an ordered series of records sharing the field set Fields.
// Fields[0] is the timestamp column.
type Collection struct {
	Fields  []string
	Records []Record
}

// Timestamp returns the name of the timestamp column, or "" when the
// collection has no fields.
func (c *Collection) Timestamp() string {
	if len(c.Fields) == 0 {
		return ""
	}
	return c.Fields[0]
}

// Has reports whether field is one of the collection's columns.
func (c *Collection) Has(field string) bool {
	for _, f := range c.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of c.
func (c *Collection) Clone() *Collection {
	out := &Collection{
		Fields:  append([]string(nil), c.Fields...),
		Records: make([]Record, len(c.Records)),
	}
	for i, r := range c.Records {
		out.Records[i] = r.clone()
	}
	return out
}

func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
