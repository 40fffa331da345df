// Package validation implements the input boundary of the API.
//
// A Schema is a plain table of fields. Validate interprets that table against an untyped payload
// (a decoded JSON body or a query string) and produces either a normalized Record or the complete
// list of Violations for the payload.
package validation

import (
	"fmt"

	"github.com/samber/lo"
)

// Kind is the primitive kind a field value is coerced to
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindInteger
	KindStringList
	KindAny
)

// String returns the name used in violation "expected" values
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindStringList:
		return "string[]"
	case KindAny:
		return "any"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) numeric() bool {
	return k == KindNumber || k == KindInteger
}

// RuleType identifies a constraint applied after coercion
type RuleType int

const (
	RuleMin RuleType = iota
	RuleMax
	RuleURL
	RuleEachString
)

// Rule is a single declarative constraint. Bound is used by RuleMin and RuleMax only.
type Rule struct {
	Type  RuleType
	Bound float64
}

// Field describes one key of a payload
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Rules    []Rule
	// Default is injected into the record when the field is absent and the payload is valid.
	Default any
}

// Require returns a copy of the field marked as required
func (f Field) Require() Field {
	f.Required = true
	return f
}

// Min returns a copy of the field with an inclusive lower bound
func (f Field) Min(bound float64) Field {
	f.Rules = append(append([]Rule(nil), f.Rules...), Rule{Type: RuleMin, Bound: bound})
	return f
}

// Max returns a copy of the field with an inclusive upper bound
func (f Field) Max(bound float64) Field {
	f.Rules = append(append([]Rule(nil), f.Rules...), Rule{Type: RuleMax, Bound: bound})
	return f
}

// WithDefault returns a copy of the field that defaults to value when absent
func (f Field) WithDefault(value any) Field {
	f.Default = value
	return f
}

// String declares an optional string field
func String(name string) Field {
	return Field{Name: name, Kind: KindString}
}

// URL declares an optional string field that must hold an absolute URL
func URL(name string) Field {
	return Field{Name: name, Kind: KindString, Rules: []Rule{{Type: RuleURL}}}
}

// Number declares an optional number field
func Number(name string) Field {
	return Field{Name: name, Kind: KindNumber}
}

// Integer declares an optional whole-number field
func Integer(name string) Field {
	return Field{Name: name, Kind: KindInteger}
}

// StringList declares an optional ordered sequence of strings
func StringList(name string) Field {
	return Field{Name: name, Kind: KindStringList, Rules: []Rule{{Type: RuleEachString}}}
}

// Any declares an optional field accepted without any check
func Any(name string) Field {
	return Field{Name: name, Kind: KindAny}
}

// Schema is the declared shape of one payload type
type Schema struct {
	Name   string
	Fields []Field
}

// NewSchema builds a schema and checks that the declaration itself is consistent.
// Errors returned here are programming mistakes, not input problems.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("schema name is required")
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema %s: field name is required", name)
		}
		if _, ok := seen[f.Name]; ok {
			return nil, fmt.Errorf("schema %s: duplicate field %q", name, f.Name)
		}
		seen[f.Name] = struct{}{}

		if err := checkField(f); err != nil {
			return nil, fmt.Errorf("schema %s: %w", name, err)
		}
	}

	return &Schema{Name: name, Fields: append([]Field(nil), fields...)}, nil
}

// MustSchema is like NewSchema but panics on a malformed declaration
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func checkField(f Field) error {
	for _, r := range f.Rules {
		switch r.Type {
		case RuleMin, RuleMax:
			if !f.Kind.numeric() {
				return fmt.Errorf("field %q: range rule on %s field", f.Name, f.Kind)
			}
		case RuleURL:
			if f.Kind != KindString {
				return fmt.Errorf("field %q: url rule on %s field", f.Name, f.Kind)
			}
		case RuleEachString:
			if f.Kind != KindStringList {
				return fmt.Errorf("field %q: element rule on %s field", f.Name, f.Kind)
			}
		default:
			return fmt.Errorf("field %q: unknown rule %d", f.Name, r.Type)
		}
	}

	if f.Default == nil {
		return nil
	}
	if f.Required {
		return fmt.Errorf("field %q: required field cannot have a default", f.Name)
	}
	// The default must itself satisfy the field, otherwise a valid payload could
	// produce an invalid record.
	if _, v := checkValue(f, f.Default); v != nil {
		return fmt.Errorf("field %q: default %v is invalid: %s", f.Name, f.Default, v.Kind)
	}
	return nil
}

// Field returns the declared field with the given name
func (s *Schema) Field(name string) (Field, bool) {
	return lo.Find(s.Fields, func(f Field) bool { return f.Name == name })
}

// FieldNames returns field names in declaration order
func (s *Schema) FieldNames() []string {
	return lo.Map(s.Fields, func(f Field, _ int) string { return f.Name })
}

// RequiredFields returns the names of required fields in declaration order
func (s *Schema) RequiredFields() []string {
	return lo.FilterMap(s.Fields, func(f Field, _ int) (string, bool) { return f.Name, f.Required })
}

// Partial derives a schema with every field optional and without defaults.
// Used for partial updates where only the supplied fields change.
func (s *Schema) Partial() *Schema {
	fields := lo.Map(s.Fields, func(f Field, _ int) Field {
		f.Required = false
		f.Default = nil
		return f
	})
	return &Schema{Name: s.Name + "_update", Fields: fields}
}
