package spec

// builtinTLVROSpec returns the ROSpec parameter tree: everything needed to
// construct and decode an ADD_ROSPEC payload.
func builtinTLVROSpec() []*ParameterSpec {
	return []*ParameterSpec{
		{
			Name: "ROSpec", TypeNumber: 150, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "ROSpecID", Type: U32},
				{Name: "Priority", Type: U8},
				{Name: "CurrentState", Type: U8, EnumRef: "ROSpecState"},
			},
			SubParams: []SubParamRule{
				{ParameterName: "ROBoundarySpec", Cardinality: One},
				{ParameterName: "AISpec", Cardinality: ZeroOrMore},
				{ParameterName: "RFSurveySpec", Cardinality: ZeroOrMore},
				{ParameterName: "ROReportSpec", Cardinality: ZeroOrOne},
			},
		},
		{
			Name: "ROBoundarySpec", TypeNumber: 151, Encoding: TLV,
			SubParams: []SubParamRule{
				{ParameterName: "ROSpecStartTrigger", Cardinality: One},
				{ParameterName: "ROSpecStopTrigger", Cardinality: One},
			},
		},
		{
			Name: "ROSpecStartTrigger", TypeNumber: 152, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "TriggerType", Type: U8, EnumRef: "ROSpecStartTriggerType"},
			},
			SubParams: []SubParamRule{
				{ParameterName: "PeriodicTriggerValue", Cardinality: ZeroOrOne},
			},
		},
		{
			Name: "PeriodicTriggerValue", TypeNumber: 153, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "Offset", Type: U32},
				{Name: "Period", Type: U32},
			},
		},
		{
			Name: "ROSpecStopTrigger", TypeNumber: 154, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "TriggerType", Type: U8, EnumRef: "ROSpecStopTriggerType"},
				{Name: "DurationTriggerValue", Type: U32},
			},
		},
		{
			Name: "AISpec", TypeNumber: 155, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "AntennaIDs", Type: U16, Array: ArrayLengthPrefixedU16},
			},
			SubParams: []SubParamRule{
				{ParameterName: "AISpecStopTrigger", Cardinality: One},
				{ParameterName: "InventoryParameterSpec", Cardinality: OneOrMore},
			},
		},
		{
			Name: "AISpecStopTrigger", TypeNumber: 156, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "TriggerType", Type: U8, EnumRef: "AISpecStopTriggerType"},
				{Name: "DurationTrigger", Type: U32},
			},
		},
		{
			Name: "InventoryParameterSpec", TypeNumber: 157, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "InventoryParameterSpecID", Type: U16},
				{Name: "ProtocolID", Type: U8, EnumRef: "AirProtocols"},
			},
			SubParams: []SubParamRule{
				{ParameterName: "AntennaConfiguration", Cardinality: ZeroOrMore},
			},
		},
		{
			Name: "AntennaConfiguration", TypeNumber: 158, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "AntennaID", Type: U16},
			},
			SubParams: []SubParamRule{
				{ParameterName: "RFReceiver", Cardinality: ZeroOrOne},
				{ParameterName: "RFTransmitter", Cardinality: ZeroOrOne},
				{ParameterName: "C1G2InventoryCommand", Cardinality: ZeroOrMore},
			},
		},
		{
			Name: "RFReceiver", TypeNumber: 159, Encoding: TLV,
			Fields: []FieldSpec{{Name: "ReceiverSensitivity", Type: U16}},
		},
		{
			Name: "RFTransmitter", TypeNumber: 160, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "HopTableID", Type: U16},
				{Name: "ChannelIndex", Type: U16},
				{Name: "TransmitPower", Type: U16},
			},
		},
		{
			Name: "C1G2InventoryCommand", TypeNumber: 161, Encoding: TLV,
			Fields: []FieldSpec{{Name: "TagInventoryStateAware", Type: U1}},
		},
		{
			Name: "RFSurveySpec", TypeNumber: 162, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "AntennaID", Type: U16},
				{Name: "StartFrequency", Type: U32},
				{Name: "EndFrequency", Type: U32},
			},
		},
		{
			Name: "ROReportSpec", TypeNumber: 163, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "ROReportTrigger", Type: U8},
				{Name: "N", Type: U16},
			},
			SubParams: []SubParamRule{
				{ParameterName: "TagReportContentSelector", Cardinality: One},
			},
		},
		{
			Name: "TagReportContentSelector", TypeNumber: 164, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "EnableROSpecID", Type: U1},
				{Name: "EnableSpecIndex", Type: U1},
				{Name: "EnableInventoryParameterSpecID", Type: U1},
				{Name: "EnableAntennaID", Type: U1},
				{Name: "EnableChannelIndex", Type: U1},
				{Name: "EnablePeakRSSI", Type: U1},
				{Name: "EnableFirstSeenTimestamp", Type: U1},
				{Name: "EnableLastSeenTimestamp", Type: U1},
				{Name: "EnableTagSeenCount", Type: U1},
				{Name: "EnableAccessSpecID", Type: U1},
				{Name: "Reserved", Type: Reserved, BitWidth: 6},
			},
		},
		{
			// Each RO_ACCESS_REPORT carries one TagReportData per observed
			// tag read, with EPC_96 as its identifying TV sub-parameter.
			Name: "TagReportData", TypeNumber: 165, Encoding: TLV,
			SubParams: []SubParamRule{
				{ParameterName: "EPC_96", Cardinality: One},
				{ParameterName: "ROSpecID", Cardinality: ZeroOrOne},
				{ParameterName: "SpecIndex", Cardinality: ZeroOrOne},
				{ParameterName: "InventoryParameterSpecID", Cardinality: ZeroOrOne},
				{ParameterName: "AntennaID", Cardinality: ZeroOrOne},
				{ParameterName: "ChannelIndex", Cardinality: ZeroOrOne},
				{ParameterName: "PeakRSSI", Cardinality: ZeroOrOne},
				{ParameterName: "FirstSeenTimestampUTC", Cardinality: ZeroOrOne},
				{ParameterName: "LastSeenTimestampUTC", Cardinality: ZeroOrOne},
				{ParameterName: "TagSeenCount", Cardinality: ZeroOrOne},
			},
		},
	}
}
