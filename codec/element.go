package codec

// Parameter is a decoded LLRP parameter: a name resolved against the
// spec.Registry, its scalar fields, and any nested sub-parameters. Opaque
// is set instead of Fields/Params when the parameter is an unrecognized
// CUSTOM extension whose bytes were preserved rather than parsed; in that
// case Fingerprint carries an xxhash64 of Opaque so two decoded trees can
// be compared for equality without re-parsing the payload.
type Parameter struct {
	Name        string
	VendorID    uint32
	SubType     uint32
	Fields      map[string]Value
	Params      []*Parameter
	Opaque      []byte
	Fingerprint uint64
}

// IsCustom reports whether this parameter decoded as a CUSTOM (TLV 1023)
// extension, recognized or not.
func (p *Parameter) IsCustom() bool {
	return p.VendorID != 0
}

// Field returns the named field's Value and whether it was present.
func (p *Parameter) Field(name string) (Value, bool) {
	v, ok := p.Fields[name]
	return v, ok
}

// Children returns every sub-parameter with the given name, in document
// order.
func (p *Parameter) Children(name string) []*Parameter {
	var out []*Parameter
	for _, c := range p.Params {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first sub-parameter with the given name.
func (p *Parameter) Child(name string) (*Parameter, bool) {
	for _, c := range p.Params {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Message is a decoded top-level LLRP PDU.
type Message struct {
	Name      string
	ID        uint32
	VendorID  uint32 // nonzero for a CUSTOM_MESSAGE extension
	SubType   uint32
	Fields    map[string]Value
	Params    []*Parameter
	Opaque    []byte
	Fingerprint uint64
}

func (m *Message) IsCustom() bool {
	return m.VendorID != 0
}

func (m *Message) Field(name string) (Value, bool) {
	v, ok := m.Fields[name]
	return v, ok
}

func (m *Message) Children(name string) []*Parameter {
	var out []*Parameter
	for _, c := range m.Params {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (m *Message) Child(name string) (*Parameter, bool) {
	for _, c := range m.Params {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}
