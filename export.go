package dataclass

// Export walks the instance's descriptors in declared order and produces a
// newly allocated JSON-compatible nested mapping. Export is total: an
// instance built by Import or through Instance.Set already satisfies its
// own descriptors. An unset optional field is emitted as an explicit nil,
// never omitted, so the output shape always matches the record type.
func Export(in *Instance) map[string]any {
	out := make(map[string]any, len(in.typ.fields))
	for i := range in.typ.fields {
		f := &in.typ.fields[i]
		out[f.name] = f.exportValue(in.values[f.name])
	}
	return out
}
