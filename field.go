package dataclass

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TerehinAV/DataclassHelpers/internal/coerce"
)

// DefaultDatetimeLayout is the canonical datetime export format used when a
// descriptor does not configure its own layout.
const DefaultDatetimeLayout = "2006-01-02 15:04:05"

// EpochUnit selects how numeric raw values are interpreted by datetime
// descriptors.
type EpochUnit time.Duration

const (
	EpochSeconds      = EpochUnit(time.Second)
	EpochMilliseconds = EpochUnit(time.Millisecond)
)

// Field is the per-field descriptor: it owns import coercion, export
// coercion, default-value policy, and required-ness for one field of one
// record type. Descriptors are immutable after NewRecordType accepts them
// and are shared read-only across all import and export calls.
type Field struct {
	name     string
	kind     Kind
	required bool
	def      any
	factory  func() any
	layout   string
	epoch    EpochUnit
	elem     *RecordType
	elemKind Kind
}

// Name returns the field's key in raw mappings and instances.
func (f Field) Name() string { return f.name }

// Kind returns the field's type descriptor variant.
func (f Field) Kind() Kind { return f.kind }

// IsRequired reports whether import fails when the field's key is absent and
// no default is configured.
func (f Field) IsRequired() bool { return f.required }

// Elem returns the nested record type for object kinds, nil otherwise.
func (f Field) Elem() *RecordType { return f.elem }

// Layout returns the configured datetime layout for datetime descriptors.
func (f Field) Layout() string { return f.layout }

// String declares a string field.
func String(name string, opts ...FieldOption) Field {
	return newField(name, KindString, opts)
}

// Bool declares a bool field.
func Bool(name string, opts ...FieldOption) Field {
	return newField(name, KindBool, opts)
}

// Int declares an integer field. Import accepts integers, integral floats
// (2.0 narrows to 2, 2.5 is a coercion error) and numeric strings.
func Int(name string, opts ...FieldOption) Field {
	return newField(name, KindInt, opts)
}

// Float declares a float field. Import widens integer input and accepts
// numeric strings.
func Float(name string, opts ...FieldOption) Field {
	return newField(name, KindFloat, opts)
}

// Datetime declares a datetime field. Import accepts a string in the
// descriptor's layout (RFC3339 as a fallback) or a numeric epoch value in
// the configured unit; export always emits the descriptor's layout.
func Datetime(name string, opts ...FieldOption) Field {
	f := Field{name: name, kind: KindDatetime, layout: DefaultDatetimeLayout, epoch: EpochSeconds}
	return f.apply(opts)
}

// UUID declares a UUID field. Import accepts a uuid.UUID or its string form;
// export emits the canonical string form.
func UUID(name string, opts ...FieldOption) Field {
	return newField(name, KindUUID, opts)
}

// List declares a field holding an ordered sequence of scalar values, each
// imported and exported with the element kind's coercion rule. Datetime
// elements share the field's layout and epoch unit.
func List(name string, elem Kind, opts ...FieldOption) Field {
	f := Field{name: name, kind: KindList, elemKind: elem}
	if elem == KindDatetime {
		f.layout = DefaultDatetimeLayout
		f.epoch = EpochSeconds
	}
	return f.apply(opts)
}

// Object declares a nested record field importing and exporting through the
// given record type.
func Object(name string, elem *RecordType, opts ...FieldOption) Field {
	f := Field{name: name, kind: KindObject, elem: elem}
	return f.apply(opts)
}

// ObjectList declares a field holding an ordered sequence of nested records.
func ObjectList(name string, elem *RecordType, opts ...FieldOption) Field {
	f := Field{name: name, kind: KindObjectList, elem: elem}
	return f.apply(opts)
}

// ObjectMap declares a field holding a string-keyed mapping of nested
// records. Keys pass through unchanged.
func ObjectMap(name string, elem *RecordType, opts ...FieldOption) Field {
	f := Field{name: name, kind: KindObjectMap, elem: elem}
	return f.apply(opts)
}

func newField(name string, kind Kind, opts []FieldOption) Field {
	f := Field{name: name, kind: kind}
	return f.apply(opts)
}

func (f Field) apply(opts []FieldOption) Field {
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// importValue resolves one raw value into the field's target type. A raw nil
// counts as absent: the default applies if one is configured, otherwise a
// required field fails and an optional field resolves to nil.
func (f *Field) importValue(raw any, present bool) (any, error) {
	if !present || raw == nil {
		return f.resolveDefault()
	}
	return f.coerce(raw)
}

// resolveDefault applies the default policy. Factory takes priority over a
// plain default value; both run through the same per-kind coercion as raw
// input, so a string default for a datetime field works and a bad default
// surfaces as a coercion error on its field.
func (f *Field) resolveDefault() (any, error) {
	switch {
	case f.factory != nil:
		v := f.factory()
		if v == nil {
			return nil, nil
		}
		return f.coerce(v)
	case f.def != nil:
		return f.coerce(f.def)
	case f.required:
		return nil, NewMissingRequiredFieldError(f.name)
	default:
		return nil, nil
	}
}

func (f *Field) coerce(raw any) (any, error) {
	switch f.kind {
	case KindString, KindBool, KindInt, KindFloat, KindDatetime, KindUUID:
		return f.coerceScalar(f.kind, raw)
	case KindList:
		return f.importList(raw)
	case KindObject:
		return f.importObject(raw)
	case KindObjectList:
		return f.importObjectList(raw)
	case KindObjectMap:
		return f.importObjectMap(raw)
	default:
		return nil, NewCoercionError(f.name, f.kind, raw, "kind is not importable")
	}
}

// coerceScalar converts one raw scalar, for the field itself or for a list
// element, so both paths share one coercion rule per kind.
func (f *Field) coerceScalar(kind Kind, raw any) (any, error) {
	switch kind {
	case KindString:
		s, err := coerce.Str(raw)
		if err != nil {
			return nil, NewCoercionError(f.name, kind, raw, "")
		}
		return s, nil
	case KindBool:
		b, err := coerce.Bool(raw)
		if err != nil {
			return nil, NewCoercionError(f.name, kind, raw, "")
		}
		return b, nil
	case KindInt:
		n, err := coerce.Int64(raw)
		if err != nil {
			return nil, NewCoercionError(f.name, kind, raw, err.Error())
		}
		return n, nil
	case KindFloat:
		n, err := coerce.Float64(raw)
		if err != nil {
			return nil, NewCoercionError(f.name, kind, raw, err.Error())
		}
		return n, nil
	case KindDatetime:
		t, err := coerce.Time(raw, f.layout, time.Duration(f.epoch))
		if err != nil {
			return nil, NewCoercionError(f.name, kind, raw, err.Error())
		}
		return t, nil
	case KindUUID:
		u, err := coerce.UUID(raw)
		if err != nil {
			return nil, NewCoercionError(f.name, kind, raw, err.Error())
		}
		return u, nil
	default:
		return nil, NewCoercionError(f.name, kind, raw, "kind is not a scalar")
	}
}

// importList coerces every element of a scalar sequence, naming the failing
// element's zero-based index.
func (f *Field) importList(raw any) (any, error) {
	seq, ok := raw.([]any)
	if !ok {
		return nil, NewCoercionError(f.name, f.kind, raw, "not a sequence")
	}
	out := make([]any, len(seq))
	for i, elem := range seq {
		v, err := f.coerceScalar(f.elemKind, elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// importObject delegates back into the import engine for the nested record
// type. An already-built instance of the same type passes through untouched.
func (f *Field) importObject(raw any) (any, error) {
	switch v := raw.(type) {
	case *Instance:
		if v.typ != f.elem {
			return nil, NewCoercionError(f.name, f.kind, raw,
				"instance of record type '"+v.typ.name+"', want '"+f.elem.name+"'")
		}
		return v, nil
	case map[string]any:
		inst, err := Import(f.elem, v)
		if err != nil {
			return nil, err
		}
		return inst, nil
	default:
		return nil, NewCoercionError(f.name, f.kind, raw, "not a mapping")
	}
}

func (f *Field) importObjectList(raw any) (any, error) {
	seq, ok := raw.([]any)
	if !ok {
		return nil, NewCoercionError(f.name, f.kind, raw, "not a sequence")
	}
	out := make([]*Instance, len(seq))
	for i, elem := range seq {
		v, err := f.importObject(elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v.(*Instance)
	}
	return out, nil
}

func (f *Field) importObjectMap(raw any) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, NewCoercionError(f.name, f.kind, raw, "not a mapping")
	}
	out := make(map[string]*Instance, len(m))
	for key, elem := range m {
		v, err := f.importObject(elem)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		out[key] = v.(*Instance)
	}
	return out, nil
}

// exportValue converts a resolved value back to its JSON-compatible form.
// Export is total: a value placed by importValue always satisfies its own
// descriptor, and a nil resolved value exports as an explicit null.
func (f *Field) exportValue(v any) any {
	if v == nil {
		return nil
	}
	switch f.kind {
	case KindDatetime, KindUUID:
		return f.exportScalar(f.kind, v)
	case KindList:
		elems := v.([]any)
		out := make([]any, len(elems))
		for i, elem := range elems {
			out[i] = f.exportScalar(f.elemKind, elem)
		}
		return out
	case KindObject:
		return Export(v.(*Instance))
	case KindObjectList:
		insts := v.([]*Instance)
		out := make([]any, len(insts))
		for i, inst := range insts {
			out[i] = Export(inst)
		}
		return out
	case KindObjectMap:
		insts := v.(map[string]*Instance)
		out := make(map[string]any, len(insts))
		for key, inst := range insts {
			out[key] = Export(inst)
		}
		return out
	default:
		return v
	}
}

func (f *Field) exportScalar(kind Kind, v any) any {
	switch kind {
	case KindDatetime:
		return v.(time.Time).Format(f.layout)
	case KindUUID:
		return v.(uuid.UUID).String()
	default:
		return v
	}
}
