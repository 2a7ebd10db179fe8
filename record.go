package dataclass

import (
	"fmt"
	"strings"

	"github.com/hengadev/errsx"
)

// RecordType is a named, ordered set of field descriptors. It is immutable
// once NewRecordType returns: concurrent imports and exports share it
// read-only without locking.
type RecordType struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewRecordType validates a record type declaration and builds the shared
// descriptor set. Every declaration problem is reported, keyed by the field
// it concerns, rather than stopping at the first.
func NewRecordType(name string, fields ...Field) (*RecordType, error) {
	var errs errsx.Map
	if strings.TrimSpace(name) == "" {
		errs.Set("record type name", fmt.Errorf("%w: name cannot be empty", ErrInvalidSchema))
	}

	index := make(map[string]int, len(fields))
	for i, f := range fields {
		key := f.name
		if key == "" {
			key = fmt.Sprintf("field at position %d", i)
		}
		if strings.TrimSpace(f.name) == "" {
			errs.Set(key, fmt.Errorf("%w: field name cannot be empty", ErrInvalidSchema))
			continue
		}
		if _, dup := index[f.name]; dup {
			errs.Set(key, fmt.Errorf("%w: field name declared more than once", ErrInvalidSchema))
			continue
		}
		if !f.kind.valid() {
			errs.Set(key, fmt.Errorf("%w: field has no kind; declare it through a kind constructor", ErrInvalidSchema))
			continue
		}
		if f.kind.isObjectKind() && f.elem == nil {
			errs.Set(key, fmt.Errorf("%w: %s field needs a nested record type", ErrInvalidSchema, f.kind))
			continue
		}
		if f.kind == KindList && !f.elemKind.isScalarKind() {
			errs.Set(key, fmt.Errorf("%w: list field needs a scalar element kind, got %s", ErrInvalidSchema, f.elemKind))
			continue
		}
		datetimeValued := f.kind == KindDatetime || (f.kind == KindList && f.elemKind == KindDatetime)
		if datetimeValued && f.layout == "" {
			errs.Set(key, fmt.Errorf("%w: datetime field needs a non-empty layout", ErrInvalidSchema))
			continue
		}
		index[f.name] = i
	}

	if err := errs.AsError(); err != nil {
		return nil, err
	}
	return &RecordType{name: name, fields: fields, index: index}, nil
}

// MustRecordType is NewRecordType that panics on a declaration error. Meant
// for package-level schema definitions where the declaration is a constant.
func MustRecordType(name string, fields ...Field) *RecordType {
	rt, err := NewRecordType(name, fields...)
	if err != nil {
		panic(err)
	}
	return rt
}

// Name returns the record type's name.
func (rt *RecordType) Name() string { return rt.name }

// Fields returns the descriptors in declared order. The slice is a copy;
// the descriptors themselves are shared and immutable.
func (rt *RecordType) Fields() []Field {
	out := make([]Field, len(rt.fields))
	copy(out, rt.fields)
	return out
}

// Field looks up a descriptor by name.
func (rt *RecordType) Field(name string) (Field, bool) {
	i, ok := rt.index[name]
	if !ok {
		return Field{}, false
	}
	return rt.fields[i], true
}

// Len returns the number of declared fields.
func (rt *RecordType) Len() int { return len(rt.fields) }

// Instance is a populated record conforming to its record type. Instances
// are owned by the caller holding them; the engine makes no concurrency
// guarantee about instances shared across goroutines.
type Instance struct {
	typ    *RecordType
	values map[string]any
}

// NewInstance creates an empty instance of the record type. Values are set
// through Set, which runs the same per-field coercion as import, so a
// hand-built instance is validated at construction time rather than at
// export time.
func NewInstance(rt *RecordType) *Instance {
	return &Instance{typ: rt, values: make(map[string]any, len(rt.fields))}
}

// Type returns the record type this instance conforms to.
func (in *Instance) Type() *RecordType { return in.typ }

// Get returns the resolved value for a declared field. The second return is
// false only when the name is not declared on the record type; an unset
// optional field yields (nil, true).
func (in *Instance) Get(name string) (any, bool) {
	if _, ok := in.typ.index[name]; !ok {
		return nil, false
	}
	return in.values[name], true
}

// Set coerces raw into the named field's target type and stores it. A nil
// raw value resolves the field's default policy, exactly as an absent key
// does on import.
func (in *Instance) Set(name string, raw any) error {
	i, ok := in.typ.index[name]
	if !ok {
		return NewUnknownFieldError(in.typ.name, name)
	}
	f := &in.typ.fields[i]
	v, err := f.importValue(raw, raw != nil)
	if err != nil {
		return err
	}
	in.values[name] = v
	return nil
}

// Export re-expresses the instance as a JSON-compatible nested mapping.
func (in *Instance) Export() map[string]any {
	return Export(in)
}
