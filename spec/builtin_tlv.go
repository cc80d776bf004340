package spec

// builtinTLVParams aggregates every TLV ParameterSpec this module knows:
// the capability tree, the ROSpec/AISpec/TagReportData tree, plus the
// status and event parameters shared by most responses.
func builtinTLVParams() []*ParameterSpec {
	var all []*ParameterSpec
	all = append(all, builtinTLVCapabilities()...)
	all = append(all, builtinTLVROSpec()...)
	all = append(all, builtinTLVStatusAndEvents()...)
	return all
}

// builtinTLVStatusAndEvents returns LLRPStatus and the reader-event
// notification tree, including the CONNECTION_ATTEMPT event.
func builtinTLVStatusAndEvents() []*ParameterSpec {
	return []*ParameterSpec{
		{
			Name: "LLRPStatus", TypeNumber: 287, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "StatusCode", Type: U16, EnumRef: "StatusCode"},
				{Name: "ErrorDescription", Type: UTF8, Array: ArrayLengthPrefixedU16},
			},
		},
		{
			Name: "UTCTimestamp", TypeNumber: 128, Encoding: TLV,
			Fields: []FieldSpec{{Name: "Microseconds", Type: U64}},
		},
		{
			Name: "Uptime", TypeNumber: 129, Encoding: TLV,
			Fields: []FieldSpec{{Name: "Microseconds", Type: U64}},
		},
		{
			Name: "ReaderEventNotificationSpec", TypeNumber: 244, Encoding: TLV,
			SubParams: []SubParamRule{
				{ParameterName: "EventNotificationState", Cardinality: OneOrMore},
			},
		},
		{
			Name: "EventNotificationState", TypeNumber: 245, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "EventType", Type: U16},
				{Name: "NotificationState", Type: U1},
				{Name: "Reserved", Type: Reserved, BitWidth: 7},
			},
		},
		{
			Name: "ReaderEventNotificationData", TypeNumber: 246, Encoding: TLV,
			SubParams: []SubParamRule{
				{ParameterName: "UTCTimestamp", Cardinality: ZeroOrOne},
				{ParameterName: "ConnectionAttemptEvent", Cardinality: ZeroOrOne},
			},
		},
		{
			// A READER_EVENT_NOTIFICATION carrying a failed
			// ConnectionAttemptEvent must surface as a session error, not a
			// silently-accepted READY transition.
			Name: "ConnectionAttemptEvent", TypeNumber: 256, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "Status", Type: U16, EnumRef: "ConnectionAttemptStatusType"},
			},
		},
	}
}
