package validate_test

import (
	"testing"

	"github.com/esitarski/llrp-go/codec"
	"github.com/esitarski/llrp-go/spec"
	"github.com/esitarski/llrp-go/validate"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *spec.Registry {
	t.Helper()
	return spec.MustLoad(spec.Default())
}

func TestValidateMessageAcceptsWellFormedCapabilitiesRequest(t *testing.T) {
	reg := testRegistry(t)
	v := validate.New(reg)
	msg := &codec.Message{
		Name:   "GET_READER_CAPABILITIES",
		Fields: map[string]codec.Value{"RequestedData": codec.UintValue(0)},
	}
	require.NoError(t, v.ValidateMessage(msg))
}

func TestValidateMessageRejectsMissingRequiredField(t *testing.T) {
	reg := testRegistry(t)
	v := validate.New(reg)
	msg := &codec.Message{Name: "GET_READER_CAPABILITIES"}
	require.Error(t, v.ValidateMessage(msg))
}

func TestValidateMessageRejectsUnknownField(t *testing.T) {
	reg := testRegistry(t)
	v := validate.New(reg)
	msg := &codec.Message{
		Name: "GET_READER_CAPABILITIES",
		Fields: map[string]codec.Value{
			"RequestedData": codec.UintValue(0),
			"Bogus":         codec.UintValue(1),
		},
	}
	require.Error(t, v.ValidateMessage(msg))
}

func TestValidateMessageRejectsOutOfRangeEnum(t *testing.T) {
	reg := testRegistry(t)
	v := validate.New(reg)
	msg := &codec.Message{
		Name:   "GET_READER_CAPABILITIES",
		Fields: map[string]codec.Value{"RequestedData": codec.UintValue(250)},
	}
	require.Error(t, v.ValidateMessage(msg))
}

func TestValidateMessageRejectsWrongValueKindForField(t *testing.T) {
	reg := testRegistry(t)
	v := validate.New(reg)
	msg := &codec.Message{
		Name:   "GET_READER_CAPABILITIES",
		Fields: map[string]codec.Value{"RequestedData": codec.StringValue("x")},
	}
	err := v.ValidateMessage(msg)
	require.Error(t, err)
	fe, ok := err.(validate.FieldError)
	require.True(t, ok)
	require.Equal(t, validate.TypeMismatch, fe.Kind)
}

func TestValidateParameterRejectsWrongLengthEPC(t *testing.T) {
	reg := testRegistry(t)
	v := validate.New(reg)
	p := &codec.Parameter{Name: "EPC_96", Fields: map[string]codec.Value{"EPC": codec.BytesValue(make([]byte, 13))}}
	err := v.ValidateParameter(p)
	require.Error(t, err)
	fe, ok := err.(validate.FieldError)
	require.True(t, ok)
	require.Equal(t, validate.OutOfRange, fe.Kind)
}

func TestValidateParameterAcceptsExactLengthEPC(t *testing.T) {
	reg := testRegistry(t)
	v := validate.New(reg)
	p := &codec.Parameter{Name: "EPC_96", Fields: map[string]codec.Value{"EPC": codec.BytesValue(make([]byte, 12))}}
	require.NoError(t, v.ValidateParameter(p))
}

func TestValidateMessageRejectsMissingSubParameter(t *testing.T) {
	reg := testRegistry(t)
	v := validate.New(reg)
	msg := &codec.Message{Name: "ADD_ROSPEC"} // requires a ROSpec sub-parameter
	require.Error(t, v.ValidateMessage(msg))
}

func TestValidateMessageSkipsUnknownCustomMessage(t *testing.T) {
	reg := testRegistry(t)
	v := validate.New(reg)
	msg := &codec.Message{VendorID: 99999, SubType: 1, Opaque: []byte{1, 2, 3}}
	require.NoError(t, v.ValidateMessage(msg))
}

func TestPrepareForEncodeExpandsSingleFieldConvenience(t *testing.T) {
	reg := testRegistry(t)
	v := validate.New(reg)
	p := &codec.Parameter{Name: "RFReceiver", Fields: map[string]codec.Value{"": codec.UintValue(3)}}
	prepared, err := v.PrepareParameterForEncode(p)
	require.NoError(t, err)
	val, ok := prepared.Field("ReceiverSensitivity")
	require.True(t, ok)
	require.Equal(t, uint64(3), val.U)
}

func TestPrepareForEncodeSortsSubParametersIntoDeclarationOrder(t *testing.T) {
	reg := testRegistry(t)
	v := validate.New(reg)
	msg := &codec.Message{
		Name: "ADD_ROSPEC",
		Params: []*codec.Parameter{
			{
				Name: "ROSpec",
				Fields: map[string]codec.Value{
					"ROSpecID": codec.UintValue(1), "Priority": codec.UintValue(0), "CurrentState": codec.UintValue(0),
				},
				Params: []*codec.Parameter{
					// ROReportSpec declared after AISpec in ROSpec's
					// sub-parameter order, but supplied here out of order.
					{
						Name:   "ROReportSpec",
						Fields: map[string]codec.Value{"ROReportTrigger": codec.UintValue(0), "N": codec.UintValue(0)},
						Params: []*codec.Parameter{
							{Name: "TagReportContentSelector", Fields: allFalseSelector()},
						},
					},
					{
						Name:   "AISpec",
						Fields: map[string]codec.Value{"AntennaIDs": codec.BytesValue([]byte{0, 1})},
						Params: []*codec.Parameter{
							{Name: "AISpecStopTrigger", Fields: map[string]codec.Value{"TriggerType": codec.UintValue(0), "DurationTrigger": codec.UintValue(0)}},
							{Name: "InventoryParameterSpec", Fields: map[string]codec.Value{"InventoryParameterSpecID": codec.UintValue(1), "ProtocolID": codec.UintValue(1)}},
						},
					},
					{
						Name: "ROBoundarySpec",
						Params: []*codec.Parameter{
							{Name: "ROSpecStartTrigger", Fields: map[string]codec.Value{"TriggerType": codec.UintValue(0)}},
							{Name: "ROSpecStopTrigger", Fields: map[string]codec.Value{"TriggerType": codec.UintValue(0), "DurationTriggerValue": codec.UintValue(0)}},
						},
					},
				},
			},
		},
	}

	prepared, err := v.PrepareForEncode(msg)
	require.NoError(t, err)

	roSpec := prepared.Params[0]
	var names []string
	for _, p := range roSpec.Params {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"ROBoundarySpec", "AISpec", "ROReportSpec"}, names)
}

func allFalseSelector() map[string]codec.Value {
	return map[string]codec.Value{
		"EnableROSpecID": codec.BoolValue(false), "EnableSpecIndex": codec.BoolValue(false),
		"EnableInventoryParameterSpecID": codec.BoolValue(false), "EnableAntennaID": codec.BoolValue(false),
		"EnableChannelIndex": codec.BoolValue(false), "EnablePeakRSSI": codec.BoolValue(false),
		"EnableFirstSeenTimestamp": codec.BoolValue(false), "EnableLastSeenTimestamp": codec.BoolValue(false),
		"EnableTagSeenCount": codec.BoolValue(false), "EnableAccessSpecID": codec.BoolValue(false),
	}
}
