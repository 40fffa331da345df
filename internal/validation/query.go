package validation

import "net/url"

// FromQuery converts a parsed query string into a raw payload.
// A key with one value maps to that string; a repeated key maps to a []any of strings.
// Values stay strings, numeric fields are coerced by Validate.
func FromQuery(q url.Values) map[string]any {
	raw := make(map[string]any, len(q))
	for key, values := range q {
		switch len(values) {
		case 0:
			continue
		case 1:
			raw[key] = values[0]
		default:
			items := make([]any, len(values))
			for i, v := range values {
				items[i] = v
			}
			raw[key] = items
		}
	}
	return raw
}
