package validation

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
)

// numberLiteral accepts an optional sign, digits, an optional fraction and an optional exponent
var numberLiteral = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// numberText is satisfied by encoding/json.Number and goccy/go-json's Number
type numberText interface {
	String() string
	Float64() (float64, error)
}

// checkValue coerces a present raw value to the field kind and applies the field rules in
// declaration order. The first failing step is reported.
func checkValue(f Field, raw any) (any, *Violation) {
	value, ok := coerce(f.Kind, raw)
	if !ok {
		if f.Kind == KindInteger {
			if bad := boundWholeNumber(f, raw); bad != nil {
				return nil, bad
			}
		}
		return nil, typeMismatch(f.Name, f.Kind)
	}

	for _, rule := range f.Rules {
		var bad *Violation
		value, bad = applyRule(f.Name, rule, value)
		if bad != nil {
			return nil, bad
		}
	}

	// A list without an explicit element rule is still normalized to []string.
	if items, isList := value.([]any); isList && f.Kind == KindStringList {
		var bad *Violation
		value, bad = eachString(f.Name, items)
		if bad != nil {
			return nil, bad
		}
	}

	return value, nil
}

func coerce(kind Kind, raw any) (any, bool) {
	switch kind {
	case KindString:
		s, ok := raw.(string)
		return s, ok
	case KindNumber:
		return toNumber(raw)
	case KindInteger:
		return toInteger(raw)
	case KindStringList:
		switch v := raw.(type) {
		case []any:
			return v, true
		case []string:
			items := make([]any, len(v))
			for i, s := range v {
				items[i] = s
			}
			return items, true
		}
		return nil, false
	case KindAny:
		return raw, true
	}
	return nil, false
}

func applyRule(field string, rule Rule, value any) (any, *Violation) {
	switch rule.Type {
	case RuleMin:
		if n, ok := asFloat(value); ok && n < rule.Bound {
			return nil, outOfRange(field, rule)
		}
	case RuleMax:
		if n, ok := asFloat(value); ok && n > rule.Bound {
			return nil, outOfRange(field, rule)
		}
	case RuleURL:
		if s, ok := value.(string); !ok || !isURL(s) {
			return nil, invalidURL(field)
		}
	case RuleEachString:
		if items, ok := value.([]any); ok {
			return eachString(field, items)
		}
	}
	return value, nil
}

// boundWholeNumber reports the first violated min/max rule for a whole number that does not fit
// in an int. Nil means no bound applies and the value stays a type mismatch.
func boundWholeNumber(f Field, raw any) *Violation {
	n, ok := toNumber(raw)
	if !ok {
		return nil
	}
	whole := n.(float64)
	if whole != math.Trunc(whole) {
		return nil
	}
	for _, rule := range f.Rules {
		if rule.Type != RuleMin && rule.Type != RuleMax {
			continue
		}
		if _, bad := applyRule(f.Name, rule, whole); bad != nil {
			return bad
		}
	}
	return nil
}

func eachString(field string, items []any) (any, *Violation) {
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, elementMismatch(field, i)
		}
		out[i] = s
	}
	return out, nil
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func toNumber(raw any) (any, bool) {
	switch v := raw.(type) {
	case float64:
		return v, isFinite(v)
	case float32:
		return float64(v), isFinite(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		return parseNumber(v)
	case numberText:
		return parseNumber(v.String())
	}
	return nil, false
}

func parseNumber(s string) (any, bool) {
	if !numberLiteral.MatchString(s) {
		return nil, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

func toInteger(raw any) (any, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return fitInt(float64(v), v)
	case uint:
		return fitUint(uint64(v))
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return fitUint(uint64(v))
	case uint64:
		return fitUint(v)
	case string:
		return parseInteger(v)
	case numberText:
		return parseInteger(v.String())
	}

	n, ok := toNumber(raw)
	if !ok {
		return nil, false
	}
	return wholeNumber(n.(float64))
}

func parseInteger(s string) (any, bool) {
	// Exact path for plain integer literals, so large values keep their precision.
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fitInt(float64(i), i)
	}
	n, ok := parseNumber(s)
	if !ok {
		return nil, false
	}
	return wholeNumber(n.(float64))
}

func wholeNumber(f float64) (any, bool) {
	if f != math.Trunc(f) {
		return nil, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, false
	}
	return fitInt(f, int64(f))
}

func fitInt(f float64, i int64) (any, bool) {
	if f < math.MinInt || f > math.MaxInt {
		return nil, false
	}
	return int(i), true
}

func fitUint(u uint64) (any, bool) {
	if u > math.MaxInt {
		return nil, false
	}
	return int(u), true
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
