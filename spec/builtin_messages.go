package spec

// builtinMessages returns the top-level LLRP 1.0.1 message set this module
// implements: reader capability/config exchange, ROSpec lifecycle, the
// tag-report/keepalive/event stream, and the generic error message.
func builtinMessages() []*MessageSpec {
	return []*MessageSpec{
		{
			Name: "GET_READER_CAPABILITIES", TypeNumber: 1,
			Fields: []FieldSpec{
				{Name: "RequestedData", Type: U8, EnumRef: "GetReaderCapabilitiesRequestedData"},
			},
		},
		{
			Name: "GET_READER_CAPABILITIES_RESPONSE", TypeNumber: 11, ResponseFor: "GET_READER_CAPABILITIES",
			SubParams: []SubParamRule{
				{ParameterName: "LLRPStatus", Cardinality: One},
				{ParameterName: "GeneralDeviceCapabilities", Cardinality: ZeroOrOne},
				{ParameterName: "LLRPCapabilities", Cardinality: ZeroOrOne},
				{ParameterName: "RegulatoryCapabilities", Cardinality: ZeroOrOne},
				{ParameterName: "C1G2LLRPCapabilities", Cardinality: ZeroOrOne},
			},
		},
		{
			Name: "GET_READER_CONFIG", TypeNumber: 2,
			Fields: []FieldSpec{
				{Name: "AntennaID", Type: U16},
				{Name: "RequestedData", Type: U8},
				{Name: "GPIPortNum", Type: U16},
				{Name: "GPOPortNum", Type: U16},
			},
		},
		{
			Name: "GET_READER_CONFIG_RESPONSE", TypeNumber: 12, ResponseFor: "GET_READER_CONFIG",
			SubParams: []SubParamRule{
				{ParameterName: "LLRPStatus", Cardinality: One},
				{ParameterName: "ReaderEventNotificationSpec", Cardinality: ZeroOrOne},
			},
		},
		{
			Name: "SET_READER_CONFIG", TypeNumber: 3,
			Fields: []FieldSpec{{Name: "ResetToFactoryDefault", Type: U1}},
			SubParams: []SubParamRule{
				{ParameterName: "ReaderEventNotificationSpec", Cardinality: ZeroOrOne},
				{ParameterName: "AntennaConfiguration", Cardinality: ZeroOrMore},
			},
		},
		{
			Name: "SET_READER_CONFIG_RESPONSE", TypeNumber: 13, ResponseFor: "SET_READER_CONFIG",
			SubParams: []SubParamRule{{ParameterName: "LLRPStatus", Cardinality: One}},
		},
		{
			Name: "CLOSE_CONNECTION", TypeNumber: 14,
		},
		{
			Name: "CLOSE_CONNECTION_RESPONSE", TypeNumber: 4, ResponseFor: "CLOSE_CONNECTION",
			SubParams: []SubParamRule{{ParameterName: "LLRPStatus", Cardinality: One}},
		},
		{
			Name: "ADD_ROSPEC", TypeNumber: 20,
			SubParams: []SubParamRule{{ParameterName: "ROSpec", Cardinality: One}},
		},
		{
			Name: "ADD_ROSPEC_RESPONSE", TypeNumber: 30, ResponseFor: "ADD_ROSPEC",
			SubParams: []SubParamRule{{ParameterName: "LLRPStatus", Cardinality: One}},
		},
		{
			Name: "DELETE_ROSPEC", TypeNumber: 21,
			Fields: []FieldSpec{{Name: "ROSpecID", Type: U32}},
		},
		{
			Name: "DELETE_ROSPEC_RESPONSE", TypeNumber: 31, ResponseFor: "DELETE_ROSPEC",
			SubParams: []SubParamRule{{ParameterName: "LLRPStatus", Cardinality: One}},
		},
		{
			Name: "START_ROSPEC", TypeNumber: 22,
			Fields: []FieldSpec{{Name: "ROSpecID", Type: U32}},
		},
		{
			Name: "START_ROSPEC_RESPONSE", TypeNumber: 32, ResponseFor: "START_ROSPEC",
			SubParams: []SubParamRule{{ParameterName: "LLRPStatus", Cardinality: One}},
		},
		{
			Name: "STOP_ROSPEC", TypeNumber: 23,
			Fields: []FieldSpec{{Name: "ROSpecID", Type: U32}},
		},
		{
			Name: "STOP_ROSPEC_RESPONSE", TypeNumber: 33, ResponseFor: "STOP_ROSPEC",
			SubParams: []SubParamRule{{ParameterName: "LLRPStatus", Cardinality: One}},
		},
		{
			Name: "ENABLE_ROSPEC", TypeNumber: 24,
			Fields: []FieldSpec{{Name: "ROSpecID", Type: U32}},
		},
		{
			Name: "ENABLE_ROSPEC_RESPONSE", TypeNumber: 34, ResponseFor: "ENABLE_ROSPEC",
			SubParams: []SubParamRule{{ParameterName: "LLRPStatus", Cardinality: One}},
		},
		{
			Name: "DISABLE_ROSPEC", TypeNumber: 25,
			Fields: []FieldSpec{{Name: "ROSpecID", Type: U32}},
		},
		{
			Name: "DISABLE_ROSPEC_RESPONSE", TypeNumber: 35, ResponseFor: "DISABLE_ROSPEC",
			SubParams: []SubParamRule{{ParameterName: "LLRPStatus", Cardinality: One}},
		},
		{
			Name: "GET_ROSPECS", TypeNumber: 26,
		},
		{
			Name: "GET_ROSPECS_RESPONSE", TypeNumber: 36, ResponseFor: "GET_ROSPECS",
			SubParams: []SubParamRule{
				{ParameterName: "LLRPStatus", Cardinality: One},
				{ParameterName: "ROSpec", Cardinality: ZeroOrMore},
			},
		},
		{
			Name: "RO_ACCESS_REPORT", TypeNumber: 61,
			SubParams: []SubParamRule{{ParameterName: "TagReportData", Cardinality: ZeroOrMore}},
		},
		{
			Name: "KEEPALIVE", TypeNumber: 62,
		},
		{
			Name: "KEEPALIVE_ACK", TypeNumber: 72,
		},
		{
			Name: "READER_EVENT_NOTIFICATION", TypeNumber: 63,
			SubParams: []SubParamRule{{ParameterName: "ReaderEventNotificationData", Cardinality: One}},
		},
		{
			Name: "ERROR_MESSAGE", TypeNumber: 100,
			SubParams: []SubParamRule{{ParameterName: "LLRPStatus", Cardinality: One}},
		},
	}
}
