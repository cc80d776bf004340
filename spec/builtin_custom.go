package spec

// ImpinjVendorID is the EPCglobal-assigned vendor ID for Impinj Inc,
// used by every Impinj CUSTOM message and parameter.
const ImpinjVendorID = 25882

// builtinCustomExtensions returns the vendor CUSTOM parameter and message
// extensions this module knows about: Impinj's ImpinjSearchMode parameter
// (carried inside C1G2InventoryCommand) and the ImpinjEnableExtensions
// custom message pair used at connection setup.
func builtinCustomExtensions() []*CustomExtension {
	return []*CustomExtension{
		{
			VendorID: ImpinjVendorID, SubType: 23,
			Parameter: &ParameterSpec{
				Name: "ImpinjSearchMode", TypeNumber: CustomTypeNumber, Encoding: TLV,
				VendorID: ImpinjVendorID, SubType: 23,
				Fields: []FieldSpec{
					{Name: "SearchMode", Type: U16, EnumRef: "C1G2SearchMode"},
				},
			},
		},
		{
			VendorID: ImpinjVendorID, SubType: 21,
			Message: &MessageSpec{
				Name: "ImpinjEnableExtensions", TypeNumber: CustomMessageTypeNumber,
			},
		},
		{
			VendorID: ImpinjVendorID, SubType: 22,
			Message: &MessageSpec{
				Name: "ImpinjEnableExtensionsResponse", TypeNumber: CustomMessageTypeNumber,
				SubParams: []SubParamRule{
					{ParameterName: "LLRPStatus", Cardinality: One},
				},
			},
		},
	}
}
