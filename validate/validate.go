// Package validate checks a decoded or hand-assembled codec.Message or
// codec.Parameter tree against its spec.Registry definition: field types
// and ranges, enum membership, sub-parameter cardinality, and choice-group
// exclusivity. It also prepares a tree for encoding by expanding the
// "single-field convenience" and sorting sub-parameters into the order the
// spec declares them.
package validate

import (
	"sort"

	"github.com/esitarski/llrp-go/codec"
	"github.com/esitarski/llrp-go/spec"
)

// Validator checks trees against one Registry.
type Validator struct {
	reg *spec.Registry
}

// New returns a Validator bound to reg.
func New(reg *spec.Registry) *Validator {
	return &Validator{reg: reg}
}

// ValidateMessage checks msg's fields and sub-parameter tree against its
// registered MessageSpec.
func (v *Validator) ValidateMessage(msg *codec.Message) error {
	if msg.VendorID != 0 || msg.Opaque != nil {
		return nil // CUSTOM messages, recognized or opaque, are not checked
	}
	msgSpec, ok := v.reg.Message(msg.Name)
	if !ok {
		return FieldError{Kind: UnknownField, Path: []string{msg.Name}, Detail: "no such message"}
	}
	return v.checkContainer(msgSpec.Name, nil, msgSpec.Fields, msgSpec.SubParams, msg.Fields, msg.Params)
}

// ValidateParameter checks p's fields and sub-parameter tree against its
// registered ParameterSpec.
func (v *Validator) ValidateParameter(p *codec.Parameter) error {
	if p.VendorID != 0 || p.Opaque != nil {
		return nil
	}
	pspec, ok := v.reg.Parameter(p.Name)
	if !ok {
		return FieldError{Kind: UnknownField, Path: []string{p.Name}, Detail: "no such parameter"}
	}
	return v.checkContainer(pspec.Name, nil, pspec.Fields, pspec.SubParams, p.Fields, p.Params)
}

func (v *Validator) checkContainer(owner string, parents []string, fieldSpecs []spec.FieldSpec, subRules []spec.SubParamRule, fields map[string]codec.Value, params []*codec.Parameter) error {
	path := pathOf(owner, parents)

	for _, f := range fieldSpecs {
		if f.Type == spec.Reserved {
			continue
		}
		val, present := fields[f.Name]
		if !present {
			if f.HasDefault {
				continue
			}
			return FieldError{Kind: MissingField, Path: append(path, f.Name), Detail: "required field not supplied"}
		}
		if err := v.checkField(path, f, val); err != nil {
			return err
		}
	}
	for name := range fields {
		if !hasField(fieldSpecs, name) {
			return FieldError{Kind: UnknownField, Path: append(path, name), Detail: "not declared on " + owner}
		}
	}

	if err := v.checkCardinality(path, owner, subRules, params); err != nil {
		return err
	}
	if err := v.checkChoiceGroups(path, owner, subRules, params); err != nil {
		return err
	}

	for _, child := range params {
		if child.VendorID != 0 || child.Opaque != nil {
			continue
		}
		cspec, ok := v.reg.Parameter(child.Name)
		if !ok {
			return FieldError{Kind: UnknownField, Path: append(path, child.Name), Detail: "no such parameter"}
		}
		if err := v.checkContainer(cspec.Name, path, cspec.Fields, cspec.SubParams, child.Fields, child.Params); err != nil {
			return err
		}
	}
	return nil
}

func hasField(fieldSpecs []spec.FieldSpec, name string) bool {
	for _, f := range fieldSpecs {
		if f.Name == name {
			return true
		}
	}
	return false
}

func (v *Validator) checkField(path []string, f spec.FieldSpec, val codec.Value) error {
	fpath := append(append([]string{}, path...), f.Name)

	want := codec.ExpectedKind(f.Type, f.Array)
	if val.Type != want {
		return FieldError{Kind: TypeMismatch, Path: fpath, Detail: "value kind does not match field's declared type"}
	}

	if f.EnumRef != "" {
		e, ok := v.reg.Enum(f.EnumRef)
		if ok && !e.Open && !f.OpenEnum {
			if _, known := e.ValueToName[int64(val.U)]; !known {
				return FieldError{Kind: UnknownEnumMember, Path: fpath, Detail: "value not a member of " + f.EnumRef}
			}
		}
	}

	if f.Array == spec.ArrayFixed {
		if wantLen := (f.ArrayLen*elementBits(f.Type) + 7) / 8; len(val.B) != wantLen {
			return FieldError{Kind: OutOfRange, Path: fpath, Detail: "byte array length does not match declared array length"}
		}
		return nil
	}
	if f.Array == spec.ArrayLengthPrefixedU16 {
		return nil // length is self-describing and carried with the value
	}

	switch f.Type {
	case spec.U1:
		return nil // boolean, no numeric range to check
	case spec.U96:
		if len(val.B) != 12 {
			return FieldError{Kind: OutOfRange, Path: fpath, Detail: "u96 field must be exactly 12 bytes"}
		}
		return nil
	case spec.UTF8, spec.BytesToEnd, spec.UNV, spec.BitArray:
		return nil // variable-length fields have no fixed numeric range to check
	}

	width, ok := scalarWidth(f.Type)
	if !ok {
		return nil
	}
	if isSignedType(f.Type) {
		min := -(int64(1) << (width - 1))
		max := (int64(1) << (width - 1)) - 1
		if val.I < min || val.I > max {
			return FieldError{Kind: OutOfRange, Path: fpath, Detail: "signed value out of range for field width"}
		}
		return nil
	}
	var max uint64
	if width >= 64 {
		max = ^uint64(0)
	} else {
		max = (uint64(1) << width) - 1
	}
	if val.U > max {
		return FieldError{Kind: OutOfRange, Path: fpath, Detail: "unsigned value out of range for field width"}
	}
	return nil
}

// elementBits returns the bit width of one array element of type t, for
// computing an ArrayFixed field's expected byte length.
func elementBits(t spec.FieldType) int {
	switch t {
	case spec.U1:
		return 1
	case spec.U2:
		return 2
	case spec.U8, spec.S8:
		return 8
	case spec.U16, spec.S16:
		return 16
	case spec.U32, spec.S32:
		return 32
	case spec.U64, spec.S64:
		return 64
	default:
		return 8
	}
}

func scalarWidth(t spec.FieldType) (int, bool) {
	switch t {
	case spec.U1:
		return 1, true
	case spec.U2:
		return 2, true
	case spec.U8, spec.S8:
		return 8, true
	case spec.U16, spec.S16:
		return 16, true
	case spec.U32, spec.S32:
		return 32, true
	case spec.U64, spec.S64:
		return 64, true
	default:
		return 0, false
	}
}

func isSignedType(t spec.FieldType) bool {
	switch t {
	case spec.S8, spec.S16, spec.S32, spec.S64:
		return true
	default:
		return false
	}
}

func (v *Validator) checkCardinality(path []string, owner string, rules []spec.SubParamRule, params []*codec.Parameter) error {
	counts := map[string]int{}
	for _, p := range params {
		counts[p.Name]++
	}
	for _, rule := range rules {
		if !rule.Cardinality.Allows(counts[rule.ParameterName]) {
			return FieldError{
				Kind: CardinalityViolation,
				Path: append(append([]string{}, path...), rule.ParameterName),
				Detail: "count does not satisfy declared cardinality",
			}
		}
	}
	return nil
}

func (v *Validator) checkChoiceGroups(path []string, owner string, rules []spec.SubParamRule, params []*codec.Parameter) error {
	counts := map[string]int{}
	for _, p := range params {
		counts[p.Name]++
	}
	groups := map[string]int{}
	for _, rule := range rules {
		if rule.ChoiceGroup == "" {
			continue
		}
		groups[rule.ChoiceGroup] += counts[rule.ParameterName]
	}
	for group, n := range groups {
		if n != 1 {
			return FieldError{
				Kind:   ChoiceViolation,
				Path:   append(append([]string{}, path...), group),
				Detail: "exactly one member of the choice group must be present",
			}
		}
	}
	return nil
}

// PrepareForEncode returns a copy of msg with the single-field convenience
// expanded and every sub-parameter level sorted into spec declaration
// order, then validates the result.
func (v *Validator) PrepareForEncode(msg *codec.Message) (*codec.Message, error) {
	out := *msg
	if msg.VendorID == 0 && msg.Opaque == nil {
		msgSpec, ok := v.reg.Message(msg.Name)
		if !ok {
			return nil, FieldError{Kind: UnknownField, Path: []string{msg.Name}, Detail: "no such message"}
		}
		prepared, err := v.prepareParams(msgSpec.SubParams, msg.Params)
		if err != nil {
			return nil, err
		}
		out.Params = prepared
	}
	if err := v.ValidateMessage(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PrepareParameterForEncode is PrepareForEncode's parameter-level
// equivalent, used when assembling a standalone sub-tree. When p's
// ParameterSpec has exactly one field and no sub-parameters, a value
// supplied under the special key "" is renamed to that field's name (the
// "single-field convenience": callers building, say, an AntennaID
// parameter need not know its field is itself called "AntennaID").
func (v *Validator) PrepareParameterForEncode(p *codec.Parameter) (*codec.Parameter, error) {
	out := *p
	if p.VendorID == 0 && p.Opaque == nil {
		pspec, ok := v.reg.Parameter(p.Name)
		if !ok {
			return nil, FieldError{Kind: UnknownField, Path: []string{p.Name}, Detail: "no such parameter"}
		}
		if single, ok := pspec.SingleField(); ok {
			out.Fields = expandSingleField(single, p.Fields)
		}
		prepared, err := v.prepareParams(pspec.SubParams, p.Params)
		if err != nil {
			return nil, err
		}
		out.Params = prepared
	}
	if err := v.ValidateParameter(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// expandSingleField renames a bare positional value (keyed "") to the
// ParameterSpec's sole field name, leaving an already-named value alone.
func expandSingleField(single spec.FieldSpec, fields map[string]codec.Value) map[string]codec.Value {
	if fields == nil {
		return nil
	}
	if _, already := fields[single.Name]; already {
		return fields
	}
	bare, ok := fields[""]
	if !ok {
		return fields
	}
	out := make(map[string]codec.Value, len(fields))
	for k, v := range fields {
		if k != "" {
			out[k] = v
		}
	}
	out[single.Name] = bare
	return out
}

func (v *Validator) prepareParams(rules []spec.SubParamRule, params []*codec.Parameter) ([]*codec.Parameter, error) {
	order := map[string]int{}
	for i, r := range rules {
		if _, seen := order[r.ParameterName]; !seen {
			order[r.ParameterName] = i
		}
	}
	out := make([]*codec.Parameter, len(params))
	for i, p := range params {
		prepared, err := v.PrepareParameterForEncode(p)
		if err != nil {
			return nil, err
		}
		out[i] = prepared
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, iok := order[out[i].Name]
		oj, jok := order[out[j].Name]
		if !iok {
			oi = len(rules)
		}
		if !jok {
			oj = len(rules)
		}
		return oi < oj
	})
	return out, nil
}
