package xmlcodec_test

import (
	"testing"

	"github.com/esitarski/llrp-go/codec"
	"github.com/esitarski/llrp-go/spec"
	"github.com/esitarski/llrp-go/xmlcodec"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *spec.Registry {
	t.Helper()
	return spec.MustLoad(spec.Default())
}

func TestRoundTripGetReaderCapabilities(t *testing.T) {
	reg := testRegistry(t)
	c := xmlcodec.New(reg)

	msg := &codec.Message{
		Name:   "GET_READER_CAPABILITIES",
		ID:     7,
		Fields: map[string]codec.Value{"RequestedData": codec.UintValue(1)},
	}
	doc, err := c.EncodeMessage(msg)
	require.NoError(t, err)
	require.Contains(t, string(doc), "GeneralDeviceCapabilities")

	back, err := c.DecodeMessage(doc)
	require.NoError(t, err)
	require.Equal(t, "GET_READER_CAPABILITIES", back.Name)
	require.Equal(t, uint32(7), back.ID)
	v, ok := back.Field("RequestedData")
	require.True(t, ok)
	require.Equal(t, uint64(1), v.U)
}

func TestEnumFieldsRenderSymbolically(t *testing.T) {
	reg := testRegistry(t)
	c := xmlcodec.New(reg)

	rospec := &codec.Parameter{
		Name: "ROSpec",
		Fields: map[string]codec.Value{
			"ROSpecID":     codec.UintValue(1),
			"Priority":     codec.UintValue(0),
			"CurrentState": codec.UintValue(2), // Active
		},
		Params: []*codec.Parameter{
			{Name: "ROBoundarySpec", Params: []*codec.Parameter{
				{Name: "ROSpecStartTrigger", Fields: map[string]codec.Value{"TriggerType": codec.UintValue(1)}},
				{Name: "ROSpecStopTrigger", Fields: map[string]codec.Value{"TriggerType": codec.UintValue(0), "DurationTriggerValue": codec.UintValue(0)}},
			}},
		},
	}
	msg := &codec.Message{Name: "ADD_ROSPEC", ID: 1, Params: []*codec.Parameter{rospec}}

	doc, err := c.EncodeMessage(msg)
	require.NoError(t, err)
	require.Contains(t, string(doc), "Active")

	back, err := c.DecodeMessage(doc)
	require.NoError(t, err)
	ro, ok := back.Child("ROSpec")
	require.True(t, ok)
	v, _ := ro.Field("CurrentState")
	require.Equal(t, uint64(2), v.U)
}

func TestOpaqueCustomRoundTrips(t *testing.T) {
	reg := testRegistry(t)
	c := xmlcodec.New(reg)

	msg := &codec.Message{
		Name: "CUSTOM_MESSAGE", ID: 9,
		VendorID: 99999, SubType: 7,
		Opaque: []byte{0x01, 0x02, 0x03},
	}
	doc, err := c.EncodeMessage(msg)
	require.NoError(t, err)

	back, err := c.DecodeMessage(doc)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, back.Opaque)
	require.Equal(t, uint32(99999), back.VendorID)
}
