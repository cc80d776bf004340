package bitstream_test

import (
	"testing"

	"github.com/esitarski/llrp-go/bitstream"
	"github.com/stretchr/testify/require"
)

func TestReadUintAcrossByteBoundary(t *testing.T) {
	// 0b1010_1100, 0b1111_0000: read a 12-bit field starting at bit 4.
	r := bitstream.NewReader([]byte{0xAC, 0xF0})
	_, err := r.ReadUint(4)
	require.NoError(t, err)
	v, err := r.ReadUint(12)
	require.NoError(t, err)
	require.Equal(t, uint64(0xCF0), v)
	require.Equal(t, 0, r.RemainingBits())
}

func TestReadSintNegative(t *testing.T) {
	r := bitstream.NewReader([]byte{0xFF}) // -1 as s8
	v, err := r.ReadSint(8)
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)
}

func TestReadBytesRequiresAlignment(t *testing.T) {
	r := bitstream.NewReader([]byte{0xFF, 0x00})
	_, err := r.ReadUint(3)
	require.NoError(t, err)
	_, err = r.ReadBytes(1)
	require.Error(t, err)
	require.IsType(t, bitstream.ErrMisaligned{}, err)
}

func TestReadTruncated(t *testing.T) {
	r := bitstream.NewReader([]byte{0x01})
	_, err := r.ReadUint(16)
	require.Error(t, err)
	require.IsType(t, bitstream.ErrTruncated{}, err)
}

func TestAlignToOctet(t *testing.T) {
	r := bitstream.NewReader([]byte{0xFF, 0xAA})
	_, err := r.ReadUint(3)
	require.NoError(t, err)
	skipped := r.AlignToOctet()
	require.Equal(t, 5, skipped)
	require.True(t, r.AtOctetBoundary())
	b, err := r.ReadBytes(1)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA}, b)
}

func TestWriterRoundTrip(t *testing.T) {
	w := bitstream.NewWriter()
	require.NoError(t, w.WriteUint(0xA, 4))
	require.NoError(t, w.WriteUint(0xCF0, 12))
	require.NoError(t, w.WriteBytes([]byte{0x11, 0x22}))

	r := bitstream.NewReader(w.Bytes())
	v1, err := r.ReadUint(4)
	require.NoError(t, err)
	require.Equal(t, uint64(0xA), v1)
	v2, err := r.ReadUint(12)
	require.NoError(t, err)
	require.Equal(t, uint64(0xCF0), v2)
	b, err := r.ReadBytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{0x11, 0x22}, b)
}

func TestWriteSintNegative(t *testing.T) {
	w := bitstream.NewWriter()
	require.NoError(t, w.WriteSint(-1, 8))
	require.Equal(t, []byte{0xFF}, w.Bytes())
}

func TestWriteBytesRequiresAlignment(t *testing.T) {
	w := bitstream.NewWriter()
	require.NoError(t, w.WriteUint(1, 3))
	err := w.WriteBytes([]byte{0x01})
	require.Error(t, err)
	require.IsType(t, bitstream.ErrMisaligned{}, err)
}
