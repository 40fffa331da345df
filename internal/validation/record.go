package validation

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Record is a validated payload. Keys keep schema declaration order.
type Record struct {
	keys   []string
	values map[string]any
}

func newRecord(size int) Record {
	return Record{
		keys:   make([]string, 0, size),
		values: make(map[string]any, size),
	}
}

func (r *Record) set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Len returns the number of fields present in the record
func (r Record) Len() int {
	return len(r.keys)
}

// Keys returns field names in schema declaration order
func (r Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Has reports whether the field is present
func (r Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Get returns the raw normalized value of a field
func (r Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// String returns a string field
func (r Record) String(key string) (string, bool) {
	v, ok := r.values[key].(string)
	return v, ok
}

// Int returns an integer field
func (r Record) Int(key string) (int, bool) {
	v, ok := r.values[key].(int)
	return v, ok
}

// Float returns a number field
func (r Record) Float(key string) (float64, bool) {
	v, ok := r.values[key].(float64)
	return v, ok
}

// Strings returns a string list field
func (r Record) Strings(key string) ([]string, bool) {
	v, ok := r.values[key].([]string)
	if !ok {
		return nil, false
	}
	return cloneStrings(v), true
}

// Map returns the record as a plain map. Feeding it back to Validate with the same schema
// yields an equal record.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.keys))
	for _, k := range r.keys {
		v := r.values[k]
		if list, ok := v.([]string); ok {
			v = cloneStrings(list)
		}
		out[k] = v
	}
	return out
}

func cloneStrings(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// MarshalJSON encodes the record as an object with keys in declaration order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
