package spec

// builtinTVParams returns the fixed-layout (TV, type 1..127) parameters of
// the LLRP 1.0.1 core. Each has exactly the field(s) needed to decode the
// tag-report and capability data this module exercises.
func builtinTVParams() []*ParameterSpec {
	return []*ParameterSpec{
		{
			Name: "AntennaID", TypeNumber: 1, Encoding: TV,
			Fields: []FieldSpec{{Name: "AntennaID", Type: U16}},
		},
		{
			Name: "FirstSeenTimestampUTC", TypeNumber: 2, Encoding: TV,
			Fields: []FieldSpec{{Name: "Microseconds", Type: U64}},
		},
		{
			Name: "LastSeenTimestampUTC", TypeNumber: 3, Encoding: TV,
			Fields: []FieldSpec{{Name: "Microseconds", Type: U64}},
		},
		{
			Name: "PeakRSSI", TypeNumber: 4, Encoding: TV,
			Fields: []FieldSpec{{Name: "RSSI", Type: S8}},
		},
		{
			Name: "ChannelIndex", TypeNumber: 5, Encoding: TV,
			Fields: []FieldSpec{{Name: "ChannelIndex", Type: U16}},
		},
		{
			Name: "TagSeenCount", TypeNumber: 6, Encoding: TV,
			Fields: []FieldSpec{{Name: "TagCount", Type: U16}},
		},
		{
			Name: "ROSpecID", TypeNumber: 7, Encoding: TV,
			Fields: []FieldSpec{{Name: "ROSpecID", Type: U32}},
		},
		{
			Name: "SpecIndex", TypeNumber: 8, Encoding: TV,
			Fields: []FieldSpec{{Name: "SpecIndex", Type: U16}},
		},
		{
			Name: "InventoryParameterSpecID", TypeNumber: 9, Encoding: TV,
			Fields: []FieldSpec{{Name: "InventoryParameterSpecID", Type: U16}},
		},
		{
			// EPC-96: the identifying field of a tag report, always
			// exactly 12 bytes; 11 or 13 must be rejected.
			Name: "EPC_96", TypeNumber: 13, Encoding: TV,
			Fields: []FieldSpec{{Name: "EPC", Type: U96}},
		},
	}
}
