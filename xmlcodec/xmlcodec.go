// Package xmlcodec provides a symmetric XML rendering of a decoded
// codec.Message/codec.Parameter tree, for logging and interop with tools
// that expect LLRP's companion XML binding rather than the binary one.
// It is built directly on encoding/xml's token API: the pack has no
// third-party XML tree codec, and encoding/xml's streaming Encoder/Decoder
// is exactly the tool the standard library offers for this, so this is the
// one package in the module with no ecosystem alternative to reach for.
package xmlcodec

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"encoding/xml"

	"github.com/esitarski/llrp-go/codec"
	"github.com/esitarski/llrp-go/spec"
)

// Codec renders codec.Message/codec.Parameter trees to and from XML,
// resolving enum fields to their symbolic member names.
type Codec struct {
	reg *spec.Registry
}

// New returns a Codec bound to reg.
func New(reg *spec.Registry) *Codec {
	return &Codec{reg: reg}
}

// EncodeMessage renders msg as an XML document.
func (c *Codec) EncodeMessage(msg *codec.Message) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	start := xml.StartElement{
		Name: xml.Name{Local: msg.Name},
		Attr: []xml.Attr{{Name: xml.Name{Local: "MessageID"}, Value: strconv.FormatUint(uint64(msg.ID), 10)}},
	}
	if msg.VendorID != 0 {
		start.Attr = append(start.Attr,
			xml.Attr{Name: xml.Name{Local: "VendorID"}, Value: strconv.FormatUint(uint64(msg.VendorID), 10)},
			xml.Attr{Name: xml.Name{Local: "SubType"}, Value: strconv.FormatUint(uint64(msg.SubType), 10)},
		)
	}
	if err := enc.EncodeToken(start); err != nil {
		return nil, err
	}

	var fieldSpecs []spec.FieldSpec
	if msg.VendorID == 0 {
		if ms, ok := c.reg.Message(msg.Name); ok {
			fieldSpecs = ms.Fields
		}
	} else if custom, ok := c.reg.Custom(msg.VendorID, msg.SubType); ok && custom.Message != nil {
		fieldSpecs = custom.Message.Fields
	}
	if err := c.encodeFields(enc, fieldSpecs, msg.Fields); err != nil {
		return nil, err
	}
	if msg.Opaque != nil {
		if err := c.encodeOpaque(enc, msg.Opaque); err != nil {
			return nil, err
		}
	}
	for _, p := range msg.Params {
		if err := c.encodeParameter(enc, p); err != nil {
			return nil, err
		}
	}

	if err := enc.EncodeToken(start.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Codec) encodeParameter(enc *xml.Encoder, p *codec.Parameter) error {
	start := xml.StartElement{Name: xml.Name{Local: p.Name}}
	if p.VendorID != 0 {
		start.Attr = []xml.Attr{
			{Name: xml.Name{Local: "VendorID"}, Value: strconv.FormatUint(uint64(p.VendorID), 10)},
			{Name: xml.Name{Local: "SubType"}, Value: strconv.FormatUint(uint64(p.SubType), 10)},
		}
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	var fieldSpecs []spec.FieldSpec
	if p.VendorID == 0 {
		if pspec, ok := c.reg.Parameter(p.Name); ok {
			fieldSpecs = pspec.Fields
		}
	} else if custom, ok := c.reg.Custom(p.VendorID, p.SubType); ok && custom.Parameter != nil {
		fieldSpecs = custom.Parameter.Fields
	}
	if err := c.encodeFields(enc, fieldSpecs, p.Fields); err != nil {
		return err
	}
	if p.Opaque != nil {
		if err := c.encodeOpaque(enc, p.Opaque); err != nil {
			return err
		}
	}
	for _, child := range p.Params {
		if err := c.encodeParameter(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func (c *Codec) encodeOpaque(enc *xml.Encoder, b []byte) error {
	el := xml.Name{Local: "Opaque"}
	if err := enc.EncodeToken(xml.StartElement{Name: el}); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(hex.EncodeToString(b))); err != nil {
		return err
	}
	return enc.EncodeToken(xml.EndElement{Name: el})
}

func (c *Codec) encodeFields(enc *xml.Encoder, fieldSpecs []spec.FieldSpec, fields map[string]codec.Value) error {
	for _, f := range fieldSpecs {
		if f.Type == spec.Reserved {
			continue
		}
		v, ok := fields[f.Name]
		if !ok {
			continue
		}
		text, err := c.renderValue(f, v)
		if err != nil {
			return err
		}
		el := xml.Name{Local: f.Name}
		if err := enc.EncodeToken(xml.StartElement{Name: el}); err != nil {
			return err
		}
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
		if err := enc.EncodeToken(xml.EndElement{Name: el}); err != nil {
			return err
		}
	}
	return nil
}

func (c *Codec) renderValue(f spec.FieldSpec, v codec.Value) (string, error) {
	if f.EnumRef != "" {
		if e, ok := c.reg.Enum(f.EnumRef); ok {
			if name, known := e.ValueToName[int64(v.U)]; known {
				return name, nil
			}
		}
	}
	switch v.Type {
	case codec.KindUint:
		return strconv.FormatUint(v.U, 10), nil
	case codec.KindInt:
		return strconv.FormatInt(v.I, 10), nil
	case codec.KindBool:
		return strconv.FormatBool(v.Bool), nil
	case codec.KindBytes:
		return hex.EncodeToString(v.B), nil
	case codec.KindString:
		return v.S, nil
	default:
		return "", fmt.Errorf("xmlcodec: field %s: unrenderable value kind", f.Name)
	}
}

// DecodeMessage parses an XML document produced by EncodeMessage back into
// a codec.Message, resolving symbolic enum names back to their integer
// values.
func (c *Codec) DecodeMessage(data []byte) (*codec.Message, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	tok, err := nextStart(dec)
	if err != nil {
		return nil, err
	}
	msg := &codec.Message{Name: tok.Name.Local, Fields: map[string]codec.Value{}}
	for _, a := range tok.Attr {
		switch a.Name.Local {
		case "MessageID":
			id, err := strconv.ParseUint(a.Value, 10, 32)
			if err != nil {
				return nil, err
			}
			msg.ID = uint32(id)
		case "VendorID":
			v, err := strconv.ParseUint(a.Value, 10, 32)
			if err != nil {
				return nil, err
			}
			msg.VendorID = uint32(v)
		case "SubType":
			v, err := strconv.ParseUint(a.Value, 10, 32)
			if err != nil {
				return nil, err
			}
			msg.SubType = uint32(v)
		}
	}

	var fieldSpecs []spec.FieldSpec
	if msg.VendorID == 0 {
		if ms, ok := c.reg.Message(msg.Name); ok {
			fieldSpecs = ms.Fields
		}
	} else if custom, ok := c.reg.Custom(msg.VendorID, msg.SubType); ok && custom.Message != nil {
		fieldSpecs = custom.Message.Fields
	}

	for {
		child, err := c.decodeElement(dec, fieldSpecs)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch el := child.(type) {
		case fieldResult:
			msg.Fields[el.name] = el.value
		case *codec.Parameter:
			msg.Params = append(msg.Params, el)
		case opaqueResult:
			msg.Opaque = el.bytes
		case endOfParent:
			return msg, nil
		}
	}
	return msg, nil
}

type fieldResult struct {
	name  string
	value codec.Value
}

type opaqueResult struct{ bytes []byte }

type endOfParent struct{}

// decodeElement reads the next start element (a field, a nested parameter,
// or the "Opaque" marker) at the current nesting level, or returns
// endOfParent when the enclosing element closes.
func (c *Codec) decodeElement(dec *xml.Decoder, fieldSpecs []spec.FieldSpec) (any, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "Opaque" {
				text, err := readCharData(dec)
				if err != nil {
					return nil, err
				}
				b, err := hex.DecodeString(text)
				if err != nil {
					return nil, err
				}
				return opaqueResult{bytes: b}, nil
			}
			if f, ok := findField(fieldSpecs, t.Name.Local); ok {
				text, err := readCharData(dec)
				if err != nil {
					return nil, err
				}
				v, err := c.parseValue(f, text)
				if err != nil {
					return nil, err
				}
				return fieldResult{name: f.Name, value: v}, nil
			}
			return c.decodeParameter(dec, t)
		case xml.EndElement:
			return endOfParent{}, nil
		}
	}
}

func (c *Codec) decodeParameter(dec *xml.Decoder, start xml.StartElement) (*codec.Parameter, error) {
	p := &codec.Parameter{Name: start.Name.Local, Fields: map[string]codec.Value{}}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "VendorID":
			v, err := strconv.ParseUint(a.Value, 10, 32)
			if err != nil {
				return nil, err
			}
			p.VendorID = uint32(v)
		case "SubType":
			v, err := strconv.ParseUint(a.Value, 10, 32)
			if err != nil {
				return nil, err
			}
			p.SubType = uint32(v)
		}
	}
	var fieldSpecs []spec.FieldSpec
	if p.VendorID == 0 {
		if pspec, ok := c.reg.Parameter(p.Name); ok {
			fieldSpecs = pspec.Fields
		}
	} else if custom, ok := c.reg.Custom(p.VendorID, p.SubType); ok && custom.Parameter != nil {
		fieldSpecs = custom.Parameter.Fields
	}
	for {
		child, err := c.decodeElement(dec, fieldSpecs)
		if err != nil {
			return nil, err
		}
		switch el := child.(type) {
		case fieldResult:
			p.Fields[el.name] = el.value
		case *codec.Parameter:
			p.Params = append(p.Params, el)
		case opaqueResult:
			p.Opaque = el.bytes
		case endOfParent:
			return p, nil
		}
	}
}

func (c *Codec) parseValue(f spec.FieldSpec, text string) (codec.Value, error) {
	if f.EnumRef != "" {
		if e, ok := c.reg.Enum(f.EnumRef); ok {
			if val, known := e.NameToValue[text]; known {
				return codec.UintValue(uint64(val)), nil
			}
			if n, err := strconv.ParseUint(text, 10, 64); err == nil {
				return codec.UintValue(n), nil
			}
		}
	}
	switch {
	case f.Type == spec.UTF8:
		return codec.StringValue(text), nil
	case f.Type == spec.U1:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.BoolValue(b), nil
	case f.Type == spec.S8 || f.Type == spec.S16 || f.Type == spec.S32 || f.Type == spec.S64:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.IntValue(n), nil
	case f.Type == spec.U96 || f.Type == spec.BitArray || f.Type == spec.BytesToEnd || f.Type == spec.UNV || f.Array != spec.ArrayNone:
		b, err := hex.DecodeString(text)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.BytesValue(b), nil
	default:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.UintValue(n), nil
	}
}

func findField(fieldSpecs []spec.FieldSpec, name string) (spec.FieldSpec, bool) {
	for _, f := range fieldSpecs {
		if f.Name == name {
			return f, true
		}
	}
	return spec.FieldSpec{}, false
}

func readCharData(dec *xml.Decoder) (string, error) {
	var buf bytes.Buffer
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			return buf.String(), nil
		}
	}
}

func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}
