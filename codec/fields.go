package codec

import (
	"github.com/esitarski/llrp-go/bitstream"
	"github.com/esitarski/llrp-go/spec"
)

// scalarBitWidth returns the bit width of a fixed-width scalar FieldType.
// Reserved, BitArray and UNV carry an explicit FieldSpec.BitWidth instead.
func scalarBitWidth(t spec.FieldType) (int, bool) {
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
	case spec.U96:
		return 96, true
	default:
		return 0, false
	}
}

func isSigned(t spec.FieldType) bool {
	switch t {
	case spec.S8, spec.S16, spec.S32, spec.S64:
		return true
	default:
		return false
	}
}

// readField reads one FieldSpec's worth of bits from r. remainingBytes is
// the number of whole bytes left in the enclosing container, used only by
// BytesToEnd.
func readField(r *bitstream.Reader, f spec.FieldSpec, remainingBytes int) (Value, error) {
	switch {
	case f.Type == spec.Reserved:
		if _, err := r.ReadUint(f.BitWidth); err != nil {
			return Value{}, err
		}
		return Value{}, nil

	case f.Type == spec.BytesToEnd:
		b, err := r.ReadBytes(remainingBytes)
		if err != nil {
			return Value{}, err
		}
		return BytesValue(b), nil

	case f.Type == spec.UNV || f.Type == spec.BitArray:
		width := f.BitWidth
		if f.Array == spec.ArrayLengthPrefixedU16 {
			count, err := r.ReadUint(16)
			if err != nil {
				return Value{}, err
			}
			width = int(count)
		}
		nbytes := (width + 7) / 8
		b, err := r.ReadBytes(nbytes)
		if err != nil {
			return Value{}, err
		}
		return BytesValue(b), nil

	case f.Type == spec.UTF8:
		count, err := r.ReadUint(16)
		if err != nil {
			return Value{}, err
		}
		b, err := r.ReadBytes(int(count))
		if err != nil {
			return Value{}, err
		}
		return StringValue(string(b)), nil

	case f.Array == spec.ArrayLengthPrefixedU16:
		width, ok := scalarBitWidth(f.Type)
		if !ok {
			return Value{}, ErrFraming{Context: f.Name, Reason: "array element type has no fixed bit width"}
		}
		count, err := r.ReadUint(16)
		if err != nil {
			return Value{}, err
		}
		nbytes := (int(count)*width + 7) / 8
		b, err := r.ReadBytes(nbytes)
		if err != nil {
			return Value{}, err
		}
		return BytesValue(b), nil

	case f.Type == spec.U1:
		v, err := r.ReadUint(1)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(v != 0), nil

	default:
		width, ok := scalarBitWidth(f.Type)
		if !ok {
			width = f.BitWidth
		}
		if f.Type == spec.U96 {
			b, err := r.ReadBytes(width / 8)
			if err != nil {
				return Value{}, err
			}
			return BytesValue(b), nil
		}
		if isSigned(f.Type) {
			v, err := r.ReadSint(width)
			if err != nil {
				return Value{}, err
			}
			return IntValue(v), nil
		}
		v, err := r.ReadUint(width)
		if err != nil {
			return Value{}, err
		}
		return UintValue(v), nil
	}
}

// writeField writes one FieldSpec's worth of bits to w. v is ignored for
// Reserved fields (always zero-padded).
func writeField(w *bitstream.Writer, f spec.FieldSpec, v Value) error {
	switch {
	case f.Type == spec.Reserved:
		return w.WriteUint(0, f.BitWidth)

	case f.Type == spec.BytesToEnd:
		return w.WriteBytes(v.B)

	case f.Type == spec.UNV || f.Type == spec.BitArray:
		if f.Array == spec.ArrayLengthPrefixedU16 {
			if err := w.WriteUint(uint64(len(v.B)*8), 16); err != nil {
				return err
			}
		}
		return w.WriteBytes(v.B)

	case f.Type == spec.UTF8:
		if err := w.WriteUint(uint64(len(v.S)), 16); err != nil {
			return err
		}
		return w.WriteBytes([]byte(v.S))

	case f.Array == spec.ArrayLengthPrefixedU16:
		width, ok := scalarBitWidth(f.Type)
		if !ok {
			return ErrFraming{Context: f.Name, Reason: "array element type has no fixed bit width"}
		}
		count := 0
		if width > 0 {
			count = (len(v.B) * 8) / width
		}
		if err := w.WriteUint(uint64(count), 16); err != nil {
			return err
		}
		return w.WriteBytes(v.B)

	case f.Type == spec.U1:
		var bit uint64
		if v.Bool {
			bit = 1
		}
		return w.WriteUint(bit, 1)

	default:
		width, ok := scalarBitWidth(f.Type)
		if !ok {
			width = f.BitWidth
		}
		if f.Type == spec.U96 {
			return w.WriteBytes(v.B)
		}
		if isSigned(f.Type) {
			return w.WriteSint(v.I, width)
		}
		return w.WriteUint(v.U, width)
	}
}
