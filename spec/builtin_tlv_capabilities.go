package spec

// builtinTLVCapabilities returns the GET_READER_CAPABILITIES_RESPONSE
// payload parameters: the sibling capability groups a reader advertises
// (general device, LLRP capabilities, regulatory, air-protocol UHF).
func builtinTLVCapabilities() []*ParameterSpec {
	return []*ParameterSpec{
		{
			Name: "GeneralDeviceCapabilities", TypeNumber: 142, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "MaxNumberOfAntennaSupported", Type: U16},
				{Name: "CanSetAntennaProperties", Type: U1},
				{Name: "HasUTCClockCapability", Type: U1},
				{Name: "Reserved", Type: Reserved, BitWidth: 14},
				{Name: "DeviceManufacturerName", Type: U32},
				{Name: "ModelName", Type: U32},
				{Name: "ReaderFirmwareVersion", Type: UTF8, Array: ArrayLengthPrefixedU16},
			},
		},
		{
			Name: "LLRPCapabilities", TypeNumber: 143, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "CanDoRFSurvey", Type: U1},
				{Name: "CanReportBufferFillWarning", Type: U1},
				{Name: "SupportsClientRequestOpSpec", Type: U1},
				{Name: "CanDoTagInventoryStateAwareSingulation", Type: U1},
				{Name: "SupportsEventAndReportHolding", Type: U1},
				{Name: "Reserved", Type: Reserved, BitWidth: 3},
				{Name: "MaxPriorityLevelSupported", Type: U8},
				{Name: "ClientRequestOpSpecTimeout", Type: U16},
				{Name: "MaxNumROSpec", Type: U32},
				{Name: "MaxNumSpecsPerROSpec", Type: U32},
				{Name: "MaxNumInventoryParameterSpecsPerAISpec", Type: U32},
				{Name: "MaxNumAccessSpec", Type: U32},
				{Name: "MaxNumOpSpecsPerAccessSpec", Type: U32},
			},
		},
		{
			Name: "RegulatoryCapabilities", TypeNumber: 144, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "CountryCode", Type: U16},
				{Name: "CommunicationsStandard", Type: U16},
			},
		},
		{
			Name: "C1G2LLRPCapabilities", TypeNumber: 145, Encoding: TLV,
			Fields: []FieldSpec{
				{Name: "CanSupportBlockErase", Type: U1},
				{Name: "CanSupportBlockWrite", Type: U1},
				{Name: "CanSupportBlockPermalock", Type: U1},
				{Name: "CanSupportTagRecommissioning", Type: U1},
				{Name: "CanSupportUMIMethod2", Type: U1},
				{Name: "CanSupportXPC", Type: U1},
				{Name: "Reserved", Type: Reserved, BitWidth: 2},
				{Name: "MaxNumSelectFiltersPerQuery", Type: U16},
			},
		},
	}
}
