package codec

import (
	"github.com/esitarski/llrp-go/bitstream"
	"github.com/esitarski/llrp-go/spec"
)

// EncodeMessage serializes msg into a complete LLRP PDU, including the
// 10-byte header. msg.Name must resolve in reg (or, for a CUSTOM_MESSAGE,
// msg.VendorID/SubType must resolve via reg.Custom).
func EncodeMessage(reg *spec.Registry, msg *Message) ([]byte, error) {
	w := bitstream.NewWriter()

	if msg.Opaque != nil {
		if err := w.WriteUint(uint64(msg.VendorID), 32); err != nil {
			return nil, err
		}
		if err := w.WriteUint(uint64(msg.SubType), 32); err != nil {
			return nil, err
		}
		if err := w.WriteBytes(msg.Opaque); err != nil {
			return nil, err
		}
		return frameMessage(spec.CustomMessageTypeNumber, msg.ID, w.Bytes()), nil
	}

	if msg.VendorID != 0 {
		custom, ok := reg.Custom(msg.VendorID, msg.SubType)
		if !ok || custom.Message == nil {
			return nil, ErrUnknownType{Context: "CUSTOM_MESSAGE", TypeNumber: int(msg.SubType)}
		}
		if err := w.WriteUint(uint64(msg.VendorID), 32); err != nil {
			return nil, err
		}
		if err := w.WriteUint(uint64(msg.SubType), 32); err != nil {
			return nil, err
		}
		if err := encodeContainer(reg, w, custom.Message.Fields, msg.Fields, msg.Params); err != nil {
			return nil, err
		}
		return frameMessage(spec.CustomMessageTypeNumber, msg.ID, w.Bytes()), nil
	}

	msgSpec, ok := reg.Message(msg.Name)
	if !ok {
		return nil, ErrUnknownType{Context: "message " + msg.Name, TypeNumber: -1}
	}
	if err := encodeContainer(reg, w, msgSpec.Fields, msg.Fields, msg.Params); err != nil {
		return nil, err
	}
	return frameMessage(msgSpec.TypeNumber, msg.ID, w.Bytes()), nil
}

func frameMessage(typeNumber int, messageID uint32, body []byte) []byte {
	hw := bitstream.NewWriter()
	hw.WriteUint(0, 3) // reserved
	hw.WriteUint(1, 3) // version
	hw.WriteUint(uint64(typeNumber), 10)
	header := hw.Bytes()

	total := headerLen + len(body)
	out := make([]byte, 0, total)
	out = append(out, header...)
	out = append(out, byte(total>>24), byte(total>>16), byte(total>>8), byte(total))
	out = append(out, byte(messageID>>24), byte(messageID>>16), byte(messageID>>8), byte(messageID))
	out = append(out, body...)
	return out
}

// EncodeParameter serializes a single top-level Parameter, choosing TV or
// TLV framing from its registered Encoding.
func EncodeParameter(reg *spec.Registry, p *Parameter) ([]byte, error) {
	if p.Opaque != nil {
		w := bitstream.NewWriter()
		w.WriteUint(uint64(p.VendorID), 32)
		w.WriteUint(uint64(p.SubType), 32)
		w.WriteBytes(p.Opaque)
		return frameTLV(spec.CustomTypeNumber, w.Bytes()), nil
	}
	if p.VendorID != 0 {
		custom, ok := reg.Custom(p.VendorID, p.SubType)
		if !ok || custom.Parameter == nil {
			return nil, ErrUnknownType{Context: "CUSTOM parameter", TypeNumber: int(p.SubType)}
		}
		w := bitstream.NewWriter()
		w.WriteUint(uint64(p.VendorID), 32)
		w.WriteUint(uint64(p.SubType), 32)
		if err := encodeContainer(reg, w, custom.Parameter.Fields, p.Fields, p.Params); err != nil {
			return nil, err
		}
		return frameTLV(spec.CustomTypeNumber, w.Bytes()), nil
	}

	pspec, ok := reg.Parameter(p.Name)
	if !ok {
		return nil, ErrUnknownType{Context: "parameter " + p.Name, TypeNumber: -1}
	}
	w := bitstream.NewWriter()
	if err := encodeContainer(reg, w, pspec.Fields, p.Fields, p.Params); err != nil {
		return nil, err
	}
	if pspec.Encoding == spec.TV {
		return frameTV(pspec.TypeNumber, w.Bytes()), nil
	}
	return frameTLV(pspec.TypeNumber, w.Bytes()), nil
}

func frameTV(typeNumber int, body []byte) []byte {
	out := make([]byte, 0, 1+len(body))
	out = append(out, byte(0x80|typeNumber&0x7F))
	out = append(out, body...)
	return out
}

func frameTLV(typeNumber int, body []byte) []byte {
	total := 4 + len(body)
	out := make([]byte, 0, total)
	out = append(out, byte((typeNumber>>8)&0x03), byte(typeNumber&0xFF))
	out = append(out, byte(total>>8), byte(total))
	out = append(out, body...)
	return out
}

// encodeContainer writes fieldSpecs' values (looked up by name in fields)
// followed by every sub-parameter in params, in document order.
func encodeContainer(reg *spec.Registry, w *bitstream.Writer, fieldSpecs []spec.FieldSpec, fields map[string]Value, params []*Parameter) error {
	for _, f := range fieldSpecs {
		if f.Type == spec.Reserved {
			if err := writeField(w, f, Value{}); err != nil {
				return err
			}
			continue
		}
		v, ok := fields[f.Name]
		if !ok {
			def, hasDefault := f.OptionalDefault().Get()
			if !hasDefault {
				return ErrFraming{Context: f.Name, Reason: "missing required field"}
			}
			v = defaultValue(f, def)
		}
		if err := writeField(w, f, v); err != nil {
			return err
		}
	}
	w.AlignToOctet()
	for _, p := range params {
		b, err := EncodeParameter(reg, p)
		if err != nil {
			return err
		}
		if err := w.WriteBytes(b); err != nil {
			return err
		}
	}
	return nil
}

func defaultValue(f spec.FieldSpec, def int64) Value {
	switch kindForFieldType(f.Type) {
	case KindInt:
		return IntValue(def)
	case KindBool:
		return BoolValue(def != 0)
	default:
		return UintValue(uint64(def))
	}
}
