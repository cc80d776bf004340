package spec

func enum(name string, bits int, members map[string]int64) *EnumSpec {
	e := &EnumSpec{
		Name:           name,
		UnderlyingBits: bits,
		NameToValue:    members,
		ValueToName:    make(map[int64]string, len(members)),
	}
	for n, v := range members {
		e.ValueToName[v] = n
	}
	return e
}

// builtinEnums returns the flat name<->value mappings used by the core
// LLRP 1.0.1 messages and parameters this module implements.
func builtinEnums() []*EnumSpec {
	return []*EnumSpec{
		enum("GetReaderCapabilitiesRequestedData", 8, map[string]int64{
			"All":                         0,
			"GeneralDeviceCapabilities":   1,
			"LLRPCapabilities":            2,
			"RegulatoryCapabilities":      3,
			"AirProtocolLLRPCapabilities": 4,
		}),
		enum("AirProtocols", 8, map[string]int64{
			"Unspecified":         0,
			"EPCGlobalClass1Gen2": 1,
		}),
		enum("ROSpecState", 8, map[string]int64{
			"Disabled": 0,
			"Inactive": 1,
			"Active":   2,
		}),
		enum("ROSpecStartTriggerType", 8, map[string]int64{
			"Null":     0,
			"Immediate": 1,
			"Periodic": 2,
			"GPI":      3,
		}),
		enum("ROSpecStopTriggerType", 8, map[string]int64{
			"Null":           0,
			"Duration":       1,
			"GPIWithTimeout": 2,
		}),
		enum("AISpecStopTriggerType", 8, map[string]int64{
			"Null":           0,
			"Duration":       1,
			"GPIWithTimeout": 2,
			"TagObservation": 3,
		}),
		enum("KeepaliveTriggerType", 8, map[string]int64{
			"Null":     0,
			"Periodic": 1,
		}),
		enum("ConnectionAttemptStatusType", 16, map[string]int64{
			"Success":                                       0,
			"FailedReaderInitiatedConnectionAlreadyExists":  1,
			"FailedClientInitiatedConnectionAlreadyExists":  2,
			"FailedReaderInitiatedConnectionFailed":         3,
			"FailedClientInitiatedConnectionFailed":         4,
			"AnotherConnectionAttempted":                    5,
		}),
		enum("StatusCode", 16, map[string]int64{
			"M_Success":             0,
			"M_ParameterError":      100,
			"M_FieldError":          101,
			"M_UnexpectedParameter": 102,
			"M_MissingParameter":    103,
			"M_DuplicateParameter":  104,
			"M_OverflowParameter":   105,
			"M_OverflowField":       106,
			"M_UnknownParameter":    107,
			"M_UnknownField":        108,
			"M_UnsupportedMessage":  109,
			"M_UnsupportedVersion":  110,
			"M_UnsupportedParameter": 111,
			"P_ParameterError":      200,
			"R_DeviceError":         401,
		}),
		// Impinj vendor extension enum, grounded on ImpinjSearchMode's
		// SearchMode field (vendor=25882). Kept open: unrecognized
		// Impinj-specific search modes on newer firmware should still
		// decode rather than fail Validator.
		enumOpen("C1G2SearchMode", 16, map[string]int64{
			"ReaderSelected":       0,
			"SingleTarget":         1,
			"DualTarget":           2,
			"SingleTargetReset":    3,
			"SingleTargetTagFocus": 5,
		}),
	}
}

func enumOpen(name string, bits int, members map[string]int64) *EnumSpec {
	e := enum(name, bits, members)
	e.Open = true
	return e
}
