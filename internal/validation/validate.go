package validation

// Validate checks raw against schema.
//
// Every declared field is checked independently and all violations are returned together.
// Keys that the schema does not declare are ignored. When at least one violation is found the
// returned Record is empty; otherwise it holds the coerced values of the supplied fields plus the
// defaults of absent optional fields, in schema declaration order.
//
// Validate never fails on bad input: a malformed payload is reported through Violations.
// A nil schema is a programming error and panics.
func Validate(schema *Schema, raw map[string]any) (Record, Violations) {
	if schema == nil {
		panic("validation: nil schema")
	}

	var violations Violations
	values := make(map[string]any, len(schema.Fields))

	for _, f := range schema.Fields {
		value, present := raw[f.Name]
		if !present {
			if f.Required {
				violations = append(violations, *missing(f.Name))
			}
			continue
		}

		normalized, bad := checkValue(f, value)
		if bad != nil {
			violations = append(violations, *bad)
			continue
		}
		values[f.Name] = normalized
	}

	if len(violations) > 0 {
		return Record{}, violations
	}

	rec := newRecord(len(schema.Fields))
	for _, f := range schema.Fields {
		if value, ok := values[f.Name]; ok {
			rec.set(f.Name, value)
			continue
		}
		if f.Default != nil {
			// Defaults are checked when the schema is built, so this cannot fail.
			value, _ := checkValue(f, f.Default)
			rec.set(f.Name, value)
		}
	}

	return rec, nil
}
