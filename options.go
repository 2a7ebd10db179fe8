package dataclass

// FieldOption configures a field descriptor at declaration time.
// Declaration problems (an option applied to a kind that cannot honor it,
// an empty layout, and so on) are reported by NewRecordType, aggregated
// across the whole declaration.
type FieldOption func(*Field)

// Required marks the field as mandatory: import fails with a missing
// required field error when the key is absent and no default is configured.
func Required() FieldOption {
	return func(f *Field) {
		f.required = true
	}
}

// WithDefault sets a default value used when the field's key is absent from
// the raw mapping. The value passes through the field's own coercion, so any
// raw form the field accepts on import is accepted here.
func WithDefault(v any) FieldOption {
	return func(f *Field) {
		f.def = v
	}
}

// WithDefaultFactory sets a factory resolved lazily on each import where the
// field's key is absent. Takes priority over WithDefault when both are set.
func WithDefaultFactory(factory func() any) FieldOption {
	return func(f *Field) {
		f.factory = factory
	}
}

// WithLayout sets the datetime layout used to parse string input and to
// format the exported value. The layout is per descriptor, not global:
// round-trip fidelity depends on the layout covering the precision the
// field actually carries.
func WithLayout(layout string) FieldOption {
	return func(f *Field) {
		f.layout = layout
	}
}

// WithEpochUnit sets the unit applied to numeric raw values of a datetime
// field. Defaults to EpochSeconds.
func WithEpochUnit(unit EpochUnit) FieldOption {
	return func(f *Field) {
		f.epoch = unit
	}
}
