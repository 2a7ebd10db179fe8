// Package dataclass maps between typed record instances and JSON-compatible
// nested mappings using per-field descriptors.
//
// A record type is a named, ordered set of field descriptors. Each
// descriptor owns the import coercion, export coercion, default-value policy
// and required-ness for one field. Import consumes a raw mapping and
// produces a populated instance or a single aggregated validation error;
// export walks an instance back into a nested mapping; flatten collapses a
// nested mapping into one level with dotted path keys.
//
// # Quick Start
//
// Declare a record type once, at schema-definition time:
//
//	address := dataclass.MustRecordType("address",
//	    dataclass.String("city", dataclass.Required()),
//	    dataclass.String("zip"),
//	)
//	user := dataclass.MustRecordType("user",
//	    dataclass.UUID("id", dataclass.Required()),
//	    dataclass.String("name", dataclass.Required()),
//	    dataclass.Int("age", dataclass.WithDefault(0)),
//	    dataclass.Datetime("created_at"),
//	    dataclass.Object("address", address),
//	)
//
// Import a decoded payload:
//
//	inst, err := dataclass.Import(user, raw)
//	if err != nil {
//	    var ve *dataclass.ValidationError
//	    if errors.As(err, &ve) {
//	        // ve.Errors names every failed field, in declared order
//	    }
//	}
//
// Export back to a plain mapping, or flatten it:
//
//	nested := dataclass.Export(inst)
//	flat := dataclass.Flatten(nested)
//
// # Field Kinds
//
//   - String, Bool — strict membership check, no cross-type coercion
//   - Int — accepts integers, integral floats (2.0 narrows to 2, 2.5 fails)
//     and numeric strings
//   - Float — accepts floats, widened integers and numeric strings
//   - Datetime — accepts a string in the descriptor's layout (RFC3339 as a
//     fallback) or a numeric epoch value; exports the descriptor's layout
//   - UUID — accepts uuid.UUID values or canonical strings
//   - List — ordered sequence of scalar elements, each coerced with the
//     element kind's rule
//   - Object, ObjectList, ObjectMap — recursive delegation through a nested
//     record type
//
// # Error Handling
//
// Individual field errors never cross the Import boundary; only the
// aggregate does:
//
//	inst, err := dataclass.Import(user, raw)
//	switch {
//	case dataclass.IsMissingFieldError(err):
//	    // at least one required field was absent with no default
//	case dataclass.IsCoercionError(err):
//	    // at least one present value could not be converted
//	}
//
// Export never fails: instances built by Import or through Instance.Set
// already satisfy their own descriptors.
//
// # Concurrency
//
// Record types and their descriptors are immutable after construction and
// safe to share across goroutines. Instances are caller-owned; the engine
// makes no guarantee about instances mutated concurrently.
//
// # Limitations
//
// Nested record types form a graph the engine walks without cycle
// detection. A self-referential schema recurses until the stack runs out;
// keeping schemas acyclic is the caller's responsibility.
package dataclass
