package codec

import (
	"github.com/cespare/xxhash"
	"github.com/esitarski/llrp-go/bitstream"
	"github.com/esitarski/llrp-go/spec"
)

const headerLen = 10

// DecodeMessage parses a single LLRP message PDU from buf. buf must contain
// exactly one message (the caller, typically session.Session, is
// responsible for splitting a TCP byte stream on the Length header field).
func DecodeMessage(reg *spec.Registry, buf []byte) (*Message, error) {
	if len(buf) < headerLen {
		return nil, ErrTruncated{Context: "message header", Wanted: headerLen, Have: len(buf)}
	}
	hr := bitstream.NewReader(buf[:2])
	if _, err := hr.ReadUint(3); err != nil { // reserved
		return nil, err
	}
	version, err := hr.ReadUint(3)
	if err != nil {
		return nil, err
	}
	if version != 1 {
		return nil, ErrUnsupportedVersion{Version: int(version)}
	}
	typeNumber, err := hr.ReadUint(10)
	if err != nil {
		return nil, err
	}
	length := be32(buf[2:6])
	messageID := be32(buf[6:10])

	if int(length) < headerLen {
		return nil, ErrFraming{Context: "message header", Reason: "Length shorter than header"}
	}
	if len(buf) < int(length) {
		return nil, ErrTruncated{Context: "message body", Wanted: int(length), Have: len(buf)}
	}
	body := buf[headerLen:length]

	msg := &Message{ID: messageID}

	if int(typeNumber) == spec.CustomMessageTypeNumber {
		if len(body) < 8 {
			return nil, ErrTruncated{Context: "CUSTOM_MESSAGE header", Wanted: 8, Have: len(body)}
		}
		vendorID := be32(body[0:4])
		subType := be32(body[4:8])
		msg.VendorID = vendorID
		msg.SubType = subType
		rest := body[8:]
		custom, ok := reg.Custom(vendorID, subType)
		if !ok || custom.Message == nil {
			msg.Name = "CUSTOM_MESSAGE"
			msg.Opaque = append([]byte(nil), rest...)
			msg.Fingerprint = xxhash.Sum64(rest)
			return msg, nil
		}
		msg.Name = custom.Message.Name
		r := bitstream.NewReader(rest)
		fields, params, err := decodeContainer(reg, r, custom.Message.Name, custom.Message.Fields, custom.Message.SubParams, len(rest))
		if err != nil {
			return nil, err
		}
		msg.Fields, msg.Params = fields, params
		return msg, nil
	}

	msgSpec, ok := reg.MessageByNumber(int(typeNumber))
	if !ok {
		return nil, ErrUnknownType{Context: "message", TypeNumber: int(typeNumber)}
	}
	msg.Name = msgSpec.Name
	r := bitstream.NewReader(body)
	fields, params, err := decodeContainer(reg, r, msgSpec.Name, msgSpec.Fields, msgSpec.SubParams, len(body))
	if err != nil {
		return nil, err
	}
	msg.Fields, msg.Params = fields, params
	return msg, nil
}

// decodeContainer reads fields then sub-parameters out of r, which must be
// positioned at the start of a message or parameter body exactly
// totalBytes long.
func decodeContainer(reg *spec.Registry, r *bitstream.Reader, owner string, fieldSpecs []spec.FieldSpec, subRules []spec.SubParamRule, totalBytes int) (map[string]Value, []*Parameter, error) {
	fields := map[string]Value{}
	for _, f := range fieldSpecs {
		remaining := totalBytes - r.ByteOffset()
		v, err := readField(r, f, remaining)
		if err != nil {
			return nil, nil, err
		}
		if f.Type != spec.Reserved {
			fields[f.Name] = v
		}
	}

	if !r.AtOctetBoundary() {
		r.AlignToOctet()
	}

	var params []*Parameter
	for r.ByteOffset() < totalBytes {
		p, err := decodeParameter(reg, r)
		if err != nil {
			return nil, nil, err
		}
		// CUSTOM parameters (recognized or opaque) may appear under any
		// container per LLRP's extension model; only core parameters are
		// checked against the declared SubParamRules.
		if p.VendorID == 0 && !allowedSubParam(subRules, p.Name) {
			return nil, nil, ErrUnexpectedParameter{Parent: owner, Name: p.Name}
		}
		params = append(params, p)
	}
	return fields, params, nil
}

func allowedSubParam(rules []spec.SubParamRule, name string) bool {
	for _, rule := range rules {
		if rule.ParameterName == name {
			return true
		}
	}
	return false
}

// decodeParameter reads one TV or TLV parameter starting at r's current
// (octet-aligned) position, advancing r past it.
func decodeParameter(reg *spec.Registry, r *bitstream.Reader) (*Parameter, error) {
	peek := r.Remaining()
	if len(peek) < 1 {
		return nil, ErrTruncated{Context: "parameter header", Wanted: 1, Have: 0}
	}
	if peek[0]&0x80 != 0 {
		return decodeTVParameter(reg, r)
	}
	return decodeTLVParameter(reg, r)
}

func decodeTVParameter(reg *spec.Registry, r *bitstream.Reader) (*Parameter, error) {
	start := r.ByteOffset()
	typeByte := r.Remaining()[0]
	typeNumber := int(typeByte & 0x7F)
	if err := r.Advance(1); err != nil {
		return nil, err
	}
	pspec, ok := reg.TVParameterByNumber(typeNumber)
	if !ok {
		return nil, ErrUnknownType{Context: "TV parameter", TypeNumber: typeNumber}
	}
	// TV parameters have no length field: the field list's own encoding
	// determines how many bytes are consumed.
	end := start + 1 + tvFieldsByteLen(pspec)
	fields, _, err := decodeContainer(reg, r, pspec.Name, pspec.Fields, nil, end)
	if err != nil {
		return nil, err
	}
	return &Parameter{Name: pspec.Name, Fields: fields}, nil
}

// tvFieldsByteLen computes the fixed byte length of a TV parameter's field
// list, since TV parameters carry no explicit length.
func tvFieldsByteLen(p *spec.ParameterSpec) int {
	bits := 0
	for _, f := range p.Fields {
		if w, ok := scalarBitWidth(f.Type); ok {
			bits += w
		} else {
			bits += f.BitWidth
		}
	}
	return (bits + 7) / 8
}

func decodeTLVParameter(reg *spec.Registry, r *bitstream.Reader) (*Parameter, error) {
	hdr := r.Remaining()
	if len(hdr) < 4 {
		return nil, ErrTruncated{Context: "TLV parameter header", Wanted: 4, Have: len(hdr)}
	}
	typeNumber := int(be16(hdr[0:2]) & 0x03FF)
	length := int(be16(hdr[2:4]))
	if length < 4 {
		return nil, ErrFraming{Context: "TLV parameter", Reason: "Length shorter than header"}
	}
	if len(hdr) < length {
		return nil, ErrTruncated{Context: "TLV parameter body", Wanted: length, Have: len(hdr)}
	}
	if err := r.Advance(4); err != nil {
		return nil, err
	}
	bodyLen := length - 4
	body := r.Remaining()[:bodyLen]

	if typeNumber == spec.CustomTypeNumber {
		if len(body) < 8 {
			return nil, ErrTruncated{Context: "CUSTOM parameter header", Wanted: 8, Have: len(body)}
		}
		vendorID := be32(body[0:4])
		subType := be32(body[4:8])
		if err := r.Advance(bodyLen); err != nil {
			return nil, err
		}
		custom, ok := reg.Custom(vendorID, subType)
		if !ok || custom.Parameter == nil {
			rest := body[8:]
			return &Parameter{
				VendorID: vendorID, SubType: subType,
				Name: "CUSTOM", Opaque: append([]byte(nil), rest...),
				Fingerprint: xxhash.Sum64(rest),
			}, nil
		}
		rest := body[8:]
		pr := bitstream.NewReader(rest)
		fields, params, err := decodeContainer(reg, pr, custom.Parameter.Name, custom.Parameter.Fields, custom.Parameter.SubParams, len(rest))
		if err != nil {
			return nil, err
		}
		return &Parameter{Name: custom.Parameter.Name, VendorID: vendorID, SubType: subType, Fields: fields, Params: params}, nil
	}

	pspec, ok := reg.TLVParameterByNumber(typeNumber)
	if !ok {
		return nil, ErrUnknownType{Context: "TLV parameter", TypeNumber: typeNumber}
	}
	pr := bitstream.NewReader(body)
	fields, params, err := decodeContainer(reg, pr, pspec.Name, pspec.Fields, pspec.SubParams, len(body))
	if err != nil {
		return nil, err
	}
	if err := r.Advance(bodyLen); err != nil {
		return nil, err
	}
	return &Parameter{Name: pspec.Name, Fields: fields, Params: params}, nil
}

func be16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
