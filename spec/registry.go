package spec

import (
	"fmt"
	"sort"
)

// Registry is the resolved, read-only, process-wide view of the LLRP
// specification. It is built once by Load and passed explicitly to every
// component that needs it (Codec, Validator, XmlCodec, Session) rather
// than reached for as a hidden singleton, per the "Global spec state"
// design note.
type Registry struct {
	messagesByName   map[string]*MessageSpec
	messagesByNumber map[int]*MessageSpec

	tvParamsByName   map[string]*ParameterSpec
	tvParamsByNumber map[int]*ParameterSpec

	tlvParamsByName   map[string]*ParameterSpec
	tlvParamsByNumber map[int]*ParameterSpec

	enums map[string]*EnumSpec

	// custom is keyed by (vendorID, subType); CustomExtension.Parameter
	// is non-nil for parameter extensions, .Message for message extensions.
	custom map[customKey]*CustomExtension
}

type customKey struct {
	vendorID uint32
	subType  uint32
}

// CustomTypeNumber is the reserved TLV type number for the CUSTOM parameter,
// per LLRP 1.0.1.
const CustomTypeNumber = 1023

// CustomMessageTypeNumber is the reserved message type number for custom
// (vendor) messages.
const CustomMessageTypeNumber = 1023

func newRegistry() *Registry {
	return &Registry{
		messagesByName:    map[string]*MessageSpec{},
		messagesByNumber:  map[int]*MessageSpec{},
		tvParamsByName:    map[string]*ParameterSpec{},
		tvParamsByNumber:  map[int]*ParameterSpec{},
		tlvParamsByName:   map[string]*ParameterSpec{},
		tlvParamsByNumber: map[int]*ParameterSpec{},
		enums:             map[string]*EnumSpec{},
		custom:            map[customKey]*CustomExtension{},
	}
}

func (r *Registry) Message(name string) (*MessageSpec, bool) {
	m, ok := r.messagesByName[name]
	return m, ok
}

func (r *Registry) MessageByNumber(n int) (*MessageSpec, bool) {
	m, ok := r.messagesByNumber[n]
	return m, ok
}

func (r *Registry) Parameter(name string) (*ParameterSpec, bool) {
	if p, ok := r.tlvParamsByName[name]; ok {
		return p, true
	}
	p, ok := r.tvParamsByName[name]
	return p, ok
}

func (r *Registry) TVParameterByNumber(n int) (*ParameterSpec, bool) {
	p, ok := r.tvParamsByNumber[n]
	return p, ok
}

func (r *Registry) TLVParameterByNumber(n int) (*ParameterSpec, bool) {
	p, ok := r.tlvParamsByNumber[n]
	return p, ok
}

func (r *Registry) Enum(name string) (*EnumSpec, bool) {
	e, ok := r.enums[name]
	return e, ok
}

func (r *Registry) Custom(vendorID, subType uint32) (*CustomExtension, bool) {
	c, ok := r.custom[customKey{vendorID, subType}]
	return c, ok
}

// MessageNames returns every registered message name, sorted, for diagnostics.
func (r *Registry) MessageNames() []string {
	names := make([]string, 0, len(r.messagesByName))
	for n := range r.messagesByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// build validates and indexes a raw artifact's worth of definitions into a
// resolved Registry. It raises the SpecError-family errors for duplicates
// and unresolved references; Load raises SpecError for undecodable records.
func build(messages []*MessageSpec, tvParams, tlvParams []*ParameterSpec, enums []*EnumSpec, customs []*CustomExtension) (*Registry, error) {
	r := newRegistry()

	for _, e := range enums {
		if _, dup := r.enums[e.Name]; dup {
			return nil, SpecError{Reason: fmt.Sprintf("duplicate enum %q", e.Name)}
		}
		r.enums[e.Name] = e
	}

	for _, p := range tvParams {
		if p.Encoding != TV {
			return nil, SpecError{Reason: fmt.Sprintf("parameter %q registered as TV but Encoding != TV", p.Name)}
		}
		if other, dup := r.tvParamsByNumber[p.TypeNumber]; dup {
			return nil, ErrDuplicateTypeNumber{Namespace: "TV", TypeNumber: p.TypeNumber, First: other.Name, Second: p.Name}
		}
		r.tvParamsByNumber[p.TypeNumber] = p
		r.tvParamsByName[p.Name] = p
	}

	for _, p := range tlvParams {
		if p.Encoding != TLV {
			return nil, SpecError{Reason: fmt.Sprintf("parameter %q registered as TLV but Encoding != TLV", p.Name)}
		}
		if other, dup := r.tlvParamsByNumber[p.TypeNumber]; dup && p.TypeNumber != CustomTypeNumber {
			return nil, ErrDuplicateTypeNumber{Namespace: "TLV", TypeNumber: p.TypeNumber, First: other.Name, Second: p.Name}
		}
		r.tlvParamsByNumber[p.TypeNumber] = p
		r.tlvParamsByName[p.Name] = p
	}

	for _, m := range messages {
		if other, dup := r.messagesByNumber[m.TypeNumber]; dup && m.TypeNumber != CustomMessageTypeNumber {
			return nil, ErrDuplicateTypeNumber{Namespace: "message", TypeNumber: m.TypeNumber, First: other.Name, Second: m.Name}
		}
		r.messagesByNumber[m.TypeNumber] = m
		r.messagesByName[m.Name] = m
	}

	for _, c := range customs {
		key := customKey{c.VendorID, c.SubType}
		if _, dup := r.custom[key]; dup {
			return nil, SpecError{Reason: fmt.Sprintf("duplicate custom extension vendor=%d subtype=%d", c.VendorID, c.SubType)}
		}
		r.custom[key] = c
		if c.Parameter != nil {
			r.tlvParamsByName[c.Parameter.Name] = c.Parameter
		}
		if c.Message != nil {
			r.messagesByName[c.Message.Name] = c.Message
		}
	}

	if err := r.resolveCrossReferences(); err != nil {
		return nil, err
	}

	return r, nil
}

// resolveCrossReferences checks every enum_ref and parameter_name resolves,
// and that choice groups are disjoint.
func (r *Registry) resolveCrossReferences() error {
	checkFields := func(owner string, fields []FieldSpec) error {
		for _, f := range fields {
			if f.EnumRef == "" {
				continue
			}
			if _, ok := r.enums[f.EnumRef]; !ok {
				return ErrUnresolvedReference{From: owner, Kind: "enum_ref", Name: f.EnumRef}
			}
		}
		return nil
	}

	checkSubParams := func(owner string, rules []SubParamRule) error {
		seenInGroup := map[string]map[string]bool{}
		for _, rule := range rules {
			if _, ok := r.Parameter(rule.ParameterName); !ok {
				return ErrUnresolvedReference{From: owner, Kind: "parameter_name", Name: rule.ParameterName}
			}
			if rule.ChoiceGroup != "" {
				set, ok := seenInGroup[rule.ChoiceGroup]
				if !ok {
					set = map[string]bool{}
					seenInGroup[rule.ChoiceGroup] = set
				}
				if set[rule.ParameterName] {
					return ErrNonDisjointChoice{Parent: owner, Group: rule.ChoiceGroup, Name: rule.ParameterName}
				}
				set[rule.ParameterName] = true
			}
		}
		return nil
	}

	for _, m := range r.messagesByName {
		if err := checkFields(m.Name, m.Fields); err != nil {
			return err
		}
		if err := checkSubParams(m.Name, m.SubParams); err != nil {
			return err
		}
		if m.ResponseFor != "" {
			if _, ok := r.messagesByName[m.ResponseFor]; !ok {
				return ErrUnresolvedReference{From: m.Name, Kind: "response_for", Name: m.ResponseFor}
			}
		}
	}
	for _, p := range r.tvParamsByName {
		if err := checkFields(p.Name, p.Fields); err != nil {
			return err
		}
	}
	for _, p := range r.tlvParamsByName {
		if err := checkFields(p.Name, p.Fields); err != nil {
			return err
		}
		if err := checkSubParams(p.Name, p.SubParams); err != nil {
			return err
		}
	}
	return nil
}
