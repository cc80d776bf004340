package codec_test

import (
	"testing"

	"github.com/esitarski/llrp-go/bitstream"
	"github.com/esitarski/llrp-go/codec"
	"github.com/esitarski/llrp-go/spec"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *spec.Registry {
	t.Helper()
	return spec.MustLoad(spec.Default())
}

// GET_READER_CAPABILITIES round-trips through encode/decode with its
// single RequestedData field intact: 10-byte header plus a 1-byte body.
func TestEncodeDecodeGetReaderCapabilities(t *testing.T) {
	reg := testRegistry(t)
	msg := &codec.Message{
		Name: "GET_READER_CAPABILITIES",
		ID:   1,
		Fields: map[string]codec.Value{
			"RequestedData": codec.UintValue(0),
		},
	}
	wire, err := codec.EncodeMessage(reg, msg)
	require.NoError(t, err)
	require.Equal(t, 11, len(wire))
	require.Equal(t, byte(0x04), wire[0]) // reserved(000) ver(001) type_hi(00)
	require.Equal(t, byte(0x01), wire[1]) // type_lo = 1

	decoded, err := codec.DecodeMessage(reg, wire)
	require.NoError(t, err)
	require.Equal(t, "GET_READER_CAPABILITIES", decoded.Name)
	require.Equal(t, uint32(1), decoded.ID)
	v, ok := decoded.Field("RequestedData")
	require.True(t, ok)
	require.Equal(t, uint64(0), v.U)
}

// ADD_ROSPEC carrying a full ROSpec tree survives a round trip,
// including the ROBoundarySpec/ROSpecStartTrigger/ROSpecStopTrigger nesting.
func TestEncodeDecodeAddROSpec(t *testing.T) {
	reg := testRegistry(t)
	rospec := &codec.Parameter{
		Name: "ROSpec",
		Fields: map[string]codec.Value{
			"ROSpecID":     codec.UintValue(123),
			"Priority":     codec.UintValue(0),
			"CurrentState": codec.UintValue(0),
		},
		Params: []*codec.Parameter{
			{
				Name: "ROBoundarySpec",
				Params: []*codec.Parameter{
					{
						Name:   "ROSpecStartTrigger",
						Fields: map[string]codec.Value{"TriggerType": codec.UintValue(1)},
					},
					{
						Name: "ROSpecStopTrigger",
						Fields: map[string]codec.Value{
							"TriggerType":          codec.UintValue(0),
							"DurationTriggerValue": codec.UintValue(0),
						},
					},
				},
			},
		},
	}
	msg := &codec.Message{
		Name:   "ADD_ROSPEC",
		ID:     2,
		Params: []*codec.Parameter{rospec},
	}
	wire, err := codec.EncodeMessage(reg, msg)
	require.NoError(t, err)

	decoded, err := codec.DecodeMessage(reg, wire)
	require.NoError(t, err)
	require.Equal(t, "ADD_ROSPEC", decoded.Name)
	ro, ok := decoded.Child("ROSpec")
	require.True(t, ok)
	v, _ := ro.Field("ROSpecID")
	require.Equal(t, uint64(123), v.U)
	boundary, ok := ro.Child("ROBoundarySpec")
	require.True(t, ok)
	start, ok := boundary.Child("ROSpecStartTrigger")
	require.True(t, ok)
	tv, _ := start.Field("TriggerType")
	require.Equal(t, uint64(1), tv.U)
}

// RO_ACCESS_REPORT with three sibling TagReportData parameters, each
// carrying an EPC_96 TV sub-parameter, decodes with three children intact.
func TestEncodeDecodeThreeTagReports(t *testing.T) {
	reg := testRegistry(t)
	epcs := [][]byte{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		{1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		{2, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}
	var reports []*codec.Parameter
	for _, epc := range epcs {
		reports = append(reports, &codec.Parameter{
			Name: "TagReportData",
			Params: []*codec.Parameter{
				{Name: "EPC_96", Fields: map[string]codec.Value{"EPC": codec.BytesValue(epc)}},
			},
		})
	}
	msg := &codec.Message{Name: "RO_ACCESS_REPORT", ID: 3, Params: reports}

	wire, err := codec.EncodeMessage(reg, msg)
	require.NoError(t, err)
	decoded, err := codec.DecodeMessage(reg, wire)
	require.NoError(t, err)
	got := decoded.Children("TagReportData")
	require.Len(t, got, 3)
	for i, tr := range got {
		epcParam, ok := tr.Child("EPC_96")
		require.True(t, ok)
		v, _ := epcParam.Field("EPC")
		require.Equal(t, epcs[i], v.B)
	}
}

// An EPC_96 TV parameter with a malformed (truncated) body must fail
// decode rather than silently return a short EPC.
func TestDecodeTruncatedEPC(t *testing.T) {
	reg := testRegistry(t)
	epc := &codec.Parameter{Name: "EPC_96", Fields: map[string]codec.Value{"EPC": codec.BytesValue(make([]byte, 12))}}
	wire, err := codec.EncodeParameter(reg, epc)
	require.NoError(t, err)

	truncated := wire[:len(wire)-2]
	_, err = decodeStandaloneParameter(reg, truncated)
	require.Error(t, err)
}

// A u1 field round-trips as a bool, never as an integer.
func TestEncodeDecodeBoolField(t *testing.T) {
	reg := testRegistry(t)
	msg := &codec.Message{
		Name:   "SET_READER_CONFIG",
		ID:     4,
		Fields: map[string]codec.Value{"ResetToFactoryDefault": codec.BoolValue(true)},
		Params: []*codec.Parameter{
			{
				Name:   "AntennaConfiguration",
				Fields: map[string]codec.Value{"AntennaID": codec.UintValue(1)},
				Params: []*codec.Parameter{
					{Name: "C1G2InventoryCommand", Fields: map[string]codec.Value{"TagInventoryStateAware": codec.BoolValue(true)}},
				},
			},
		},
	}
	wire, err := codec.EncodeMessage(reg, msg)
	require.NoError(t, err)

	decoded, err := codec.DecodeMessage(reg, wire)
	require.NoError(t, err)
	v, ok := decoded.Field("ResetToFactoryDefault")
	require.True(t, ok)
	require.Equal(t, codec.KindBool, v.Type)
	require.True(t, v.Bool)

	ac, ok := decoded.Child("AntennaConfiguration")
	require.True(t, ok)
	cmd, ok := ac.Child("C1G2InventoryCommand")
	require.True(t, ok)
	tisa, ok := cmd.Field("TagInventoryStateAware")
	require.True(t, ok)
	require.True(t, tisa.Bool)
}

// Unrecognized CUSTOM parameters are preserved opaquely with a stable
// fingerprint rather than rejected outright.
func TestDecodeUnknownCustomParameterOpaque(t *testing.T) {
	reg := testRegistry(t)
	p := &codec.Parameter{
		VendorID: 99999, SubType: 7,
		Opaque: []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}
	wire, err := codec.EncodeParameter(reg, p)
	require.NoError(t, err)

	decoded, err := decodeStandaloneParameter(reg, wire)
	require.NoError(t, err)
	require.True(t, decoded.IsCustom())
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, decoded.Opaque)
	require.NotZero(t, decoded.Fingerprint)
}

// decodeStandaloneParameter wraps a lone parameter wire (as produced by
// EncodeParameter) in a throwaway RO_ACCESS_REPORT so the package-private
// decode path can be exercised without a message envelope of its own.
func decodeStandaloneParameter(reg *spec.Registry, wire []byte) (*codec.Parameter, error) {
	body := append([]byte{}, wire...)
	header := bitstream.NewWriter()
	header.WriteUint(0, 3)
	header.WriteUint(1, 3)
	header.WriteUint(61, 10) // RO_ACCESS_REPORT
	h := header.Bytes()
	total := 10 + len(body)
	full := append([]byte{}, h...)
	full = append(full, byte(total>>24), byte(total>>16), byte(total>>8), byte(total))
	full = append(full, 0, 0, 0, 9)
	full = append(full, body...)

	msg, err := codec.DecodeMessage(reg, full)
	if err != nil {
		return nil, err
	}
	if len(msg.Params) == 0 {
		return nil, nil
	}
	return msg.Params[0], nil
}
