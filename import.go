package dataclass

// Import populates an instance of the record type from a raw JSON-compatible
// mapping. Every descriptor is attempted in declared order and every
// per-field failure is collected, so the returned ValidationError names all
// missing required fields and all coercion failures in one round trip.
// Raw keys not declared on the record type are ignored.
//
// The raw mapping is treated as immutable input: imported object kinds
// allocate their own instances and never alias raw sub-mappings.
func Import(rt *RecordType, raw map[string]any) (*Instance, error) {
	inst := &Instance{typ: rt, values: make(map[string]any, len(rt.fields))}

	var fieldErrs []FieldError
	for i := range rt.fields {
		f := &rt.fields[i]
		rawValue, present := raw[f.name]
		v, err := f.importValue(rawValue, present)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{Field: f.name, Err: err})
			continue
		}
		inst.values[f.name] = v
	}

	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Record: rt.name, Errors: fieldErrs}
	}
	return inst, nil
}
