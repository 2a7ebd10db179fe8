package dataclass

// Kind identifies the coercion behavior of a field descriptor. The set of
// kinds is closed: every descriptor dispatches on its kind exactly once per
// imported or exported value.
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindBool
	KindInt
	KindFloat
	KindDatetime
	KindUUID
	KindList
	KindObject
	KindObjectList
	KindObjectMap

	// kindTotal is the total number of kinds defined
	kindTotal = int(iota)
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDatetime:
		return "datetime"
	case KindUUID:
		return "uuid"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	case KindObjectList:
		return "object list"
	case KindObjectMap:
		return "object map"
	default:
		return "unknown"
	}
}

// isObjectKind reports whether the kind delegates to a nested record type.
func (k Kind) isObjectKind() bool {
	return k == KindObject || k == KindObjectList || k == KindObjectMap
}

// isScalarKind reports whether the kind resolves to a single scalar value,
// which also makes it usable as a list element kind.
func (k Kind) isScalarKind() bool {
	return k > KindUnknown && k < KindList
}

func (k Kind) valid() bool {
	return k > KindUnknown && int(k) < kindTotal
}
