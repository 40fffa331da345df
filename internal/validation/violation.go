package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ViolationKind classifies a field-level validation failure
type ViolationKind string

const (
	// ViolationMissing means a required field is absent
	ViolationMissing ViolationKind = "MISSING"
	// ViolationTypeMismatch means the value has the wrong kind or could not be coerced
	ViolationTypeMismatch ViolationKind = "TYPE_MISMATCH"
	// ViolationRange means a number falls outside the declared bounds
	ViolationRange ViolationKind = "RANGE_VIOLATION"
	// ViolationInvalidURL means a URL field does not hold an absolute URL
	ViolationInvalidURL ViolationKind = "INVALID_URL"
	// ViolationElementType means a sequence element has the wrong kind
	ViolationElementType ViolationKind = "ELEMENT_TYPE_MISMATCH"
)

// Violation describes one field-level validation failure
type Violation struct {
	Field    string        `json:"field"`
	Kind     ViolationKind `json:"kind"`
	Expected string        `json:"expected,omitempty"`
	Index    *int          `json:"index,omitempty"`
	Min      *float64      `json:"min,omitempty"`
	Max      *float64      `json:"max,omitempty"`
	Message  string        `json:"message"`
}

// Violations is the full list of problems found in one payload.
// It implements error so it can travel through the service layer.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	b.WriteString("validation failed: ")
	for i, v := range vs {
		if i == maxShown {
			fmt.Fprintf(b, "; ... (total %d)", len(vs))
			break
		}
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(v.Message)
	}
	return b.String()
}

// Fields returns the names of violated fields in report order
func (vs Violations) Fields() []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Field
	}
	return out
}

// ByField returns the violation reported for a field
func (vs Violations) ByField(field string) (Violation, bool) {
	for _, v := range vs {
		if v.Field == field {
			return v, true
		}
	}
	return Violation{}, false
}

// AsViolations extracts Violations from a (possibly wrapped) error
func AsViolations(err error) (Violations, bool) {
	if err == nil {
		return nil, false
	}
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}

func missing(field string) *Violation {
	return &Violation{
		Field:   field,
		Kind:    ViolationMissing,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func typeMismatch(field string, expected Kind) *Violation {
	return &Violation{
		Field:    field,
		Kind:     ViolationTypeMismatch,
		Expected: expected.String(),
		Message:  fmt.Sprintf("%s must be %s", field, article(expected)),
	}
}

func outOfRange(field string, rule Rule) *Violation {
	bound := rule.Bound
	v := &Violation{Field: field, Kind: ViolationRange}
	if rule.Type == RuleMin {
		v.Min = &bound
		v.Message = fmt.Sprintf("%s must not be less than %g", field, bound)
	} else {
		v.Max = &bound
		v.Message = fmt.Sprintf("%s must not be greater than %g", field, bound)
	}
	return v
}

func invalidURL(field string) *Violation {
	return &Violation{
		Field:    field,
		Kind:     ViolationInvalidURL,
		Expected: "url",
		Message:  fmt.Sprintf("%s must be a URL address", field),
	}
}

func elementMismatch(field string, index int) *Violation {
	return &Violation{
		Field:    field,
		Kind:     ViolationElementType,
		Expected: KindString.String(),
		Index:    &index,
		Message:  fmt.Sprintf("%s[%d] must be a string", field, index),
	}
}

func article(k Kind) string {
	switch k {
	case KindInteger:
		return "an integer number"
	case KindStringList:
		return "an array of strings"
	default:
		return "a " + k.String()
	}
}
