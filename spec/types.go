// Package spec holds the in-memory description of the LLRP protocol:
// message types, parameter types, fields, enumerations, and vendor custom
// extensions. It is derived once from the LLRP XML definitions (offline,
// out of scope for this module) and loaded from a pre-compiled artifact.
package spec

// FieldType enumerates the primitive wire types a FieldSpec may carry.
type FieldType int

const (
	U1 FieldType = iota
	U2
	U8
	S8
	U16
	S16
	U32
	S32
	U64
	S64
	U96 // EPC, up to 96 bits
	UTF8
	BitArray
	UNV // variable-bit integer, width from BitWidth or from its own u16 bit-count prefix
	BytesToEnd
	Reserved
)

func (t FieldType) String() string {
	switch t {
	case U1:
		return "u1"
	case U2:
		return "u2"
	case U8:
		return "u8"
	case S8:
		return "s8"
	case U16:
		return "u16"
	case S16:
		return "s16"
	case U32:
		return "u32"
	case S32:
		return "s32"
	case U64:
		return "u64"
	case S64:
		return "s64"
	case U96:
		return "u96"
	case UTF8:
		return "utf8"
	case BitArray:
		return "bit_array"
	case UNV:
		return "uNv"
	case BytesToEnd:
		return "bytes_to_end"
	case Reserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// ArrayKind describes how a field's values repeat.
type ArrayKind int

const (
	ArrayNone ArrayKind = iota
	ArrayFixed
	ArrayLengthPrefixedU16
)

// FieldSpec describes a single field within a ParameterSpec or MessageSpec.
//
// Default/HasDefault stand in for a declared default value: a field that
// carries one accepts omission and falls back to it. They are plain
// fields rather than an Optional[int64] so FieldSpec survives gob encoding
// when stored in an ArtifactStore (gob requires exported fields only, and
// Optional's are private).
type FieldSpec struct {
	Name       string
	Type       FieldType
	BitWidth   int // meaningful for sub-byte fields and Reserved padding
	Array      ArrayKind
	ArrayLen   int // for ArrayFixed
	EnumRef    string
	OpenEnum   bool // values outside defined members still validate
	HasDefault bool
	Default    int64
}

// EnumSpec is a flat bijective mapping between symbolic member names and
// integer values, plus the underlying integer width.
type EnumSpec struct {
	Name          string
	UnderlyingBits int
	NameToValue   map[string]int64
	ValueToName   map[int64]string
	Open          bool // Validator accepts values outside ValueToName
}

// Encoding distinguishes TV (fixed layout, type 1..127) from TLV
// (length-prefixed, type >= 128) parameter framing.
type Encoding int

const (
	TV Encoding = iota
	TLV
)

// Cardinality constrains how many times a sub-parameter may appear under
// its parent.
type Cardinality int

const (
	One Cardinality = iota
	ZeroOrOne
	OneOrMore
	ZeroOrMore
)

func (c Cardinality) Allows(n int) bool {
	switch c {
	case One:
		return n == 1
	case ZeroOrOne:
		return n == 0 || n == 1
	case OneOrMore:
		return n >= 1
	case ZeroOrMore:
		return n >= 0
	default:
		return false
	}
}

// SubParamRule names a permitted child parameter and its cardinality.
// ChoiceGroup, when non-empty, names a set of mutually exclusive rules:
// exactly one rule sharing a ChoiceGroup value may be populated.
type SubParamRule struct {
	ParameterName string
	Cardinality   Cardinality
	ChoiceGroup   string
}

// ParameterSpec describes an LLRP parameter (nested data element).
type ParameterSpec struct {
	Name         string
	TypeNumber   int // 1..127 for TV, >=128 for TLV
	Encoding     Encoding
	Fields       []FieldSpec
	SubParams    []SubParamRule
	VendorID     uint32 // non-zero only for CustomExtension-registered specs
	SubType      uint32
}

// MessageSpec describes a top-level LLRP message (PDU).
type MessageSpec struct {
	Name        string
	TypeNumber  int // 0..1023
	Fields      []FieldSpec
	SubParams   []SubParamRule
	ResponseFor string // name of the request MessageSpec this replies to, if any
}

// CustomExtension registers a vendor-specific ParameterSpec or MessageSpec
// under the CUSTOM discriminant (vendor_id, subtype).
type CustomExtension struct {
	VendorID  uint32
	SubType   uint32
	Parameter *ParameterSpec // set for a custom parameter extension
	Message   *MessageSpec   // set for a custom message extension
}

// OptionalDefault presents f's Default/HasDefault pair as an Optional,
// without changing how the value is stored (FieldSpec keeps plain fields so
// it survives gob encoding; see the field comment above).
func (f FieldSpec) OptionalDefault() Optional[int64] {
	if !f.HasDefault {
		return None[int64]()
	}
	return Some(f.Default)
}

// SingleField reports whether p has exactly one field and no sub-parameters,
// making it eligible for the Validator's "single-field convenience": the
// field may be supplied positionally and the Validator expands it to the
// named field.
func (p *ParameterSpec) SingleField() (FieldSpec, bool) {
	if len(p.Fields) == 1 && len(p.SubParams) == 0 {
		return p.Fields[0], true
	}
	return FieldSpec{}, false
}
