package codec

import "github.com/esitarski/llrp-go/spec"

// Value is a tagged union holding the decoded contents of one field. Only
// the member matching Type is meaningful; the rest are zero.
type Value struct {
	Type FieldKind
	U    uint64
	I    int64
	Bool bool
	B    []byte
	S    string
}

// FieldKind mirrors spec.FieldType but is the codec's own notion of "how a
// Value is stored", so the codec does not need a spec.FieldSpec in hand to
// interpret one (an XmlCodec round-trip, for instance, only has the Value).
// KindBool is distinct from KindUint: a single-bit field is a boolean, never
// an integer, and the two must not satisfy each other in validation.
type FieldKind int

const (
	KindUint FieldKind = iota
	KindInt
	KindBool
	KindBytes
	KindString
)

func UintValue(v uint64) Value   { return Value{Type: KindUint, U: v} }
func IntValue(v int64) Value     { return Value{Type: KindInt, I: v} }
func BoolValue(b bool) Value     { return Value{Type: KindBool, Bool: b} }
func BytesValue(b []byte) Value  { return Value{Type: KindBytes, B: b} }
func StringValue(s string) Value { return Value{Type: KindString, S: s} }

// kindForFieldType reports which Value member a given spec.FieldType is
// stored under.
func kindForFieldType(t spec.FieldType) FieldKind {
	switch t {
	case spec.U1:
		return KindBool
	case spec.S8, spec.S16, spec.S32, spec.S64:
		return KindInt
	case spec.UTF8:
		return KindString
	case spec.U96, spec.BitArray, spec.BytesToEnd, spec.UNV:
		return KindBytes
	default:
		return KindUint
	}
}

// ExpectedKind reports which FieldKind a value for f must carry, accounting
// for array fields (KindBytes, packed) as well as scalar types. A UTF8 field
// is always KindString, whatever its array marking, since that is how the
// codec reads and writes it.
func ExpectedKind(f spec.FieldType, array spec.ArrayKind) FieldKind {
	if array != spec.ArrayNone && f != spec.UTF8 {
		return KindBytes
	}
	return kindForFieldType(f)
}
