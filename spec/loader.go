package spec

// Load materializes a Registry from an ArtifactStore, resolving every
// field, sub-parameter, and custom-extension cross-reference. On any
// structural problem (missing reference, duplicate type number) it
// returns a SpecError-family error; callers are expected to treat that
// as fatal.
func Load(store ArtifactStore) (*Registry, error) {
	enumKeys, err := store.Keys(nsEnum)
	if err != nil {
		return nil, err
	}
	enums := make([]*EnumSpec, 0, len(enumKeys))
	for _, k := range enumKeys {
		data, err := store.Get(nsEnum, k)
		if err != nil {
			return nil, err
		}
		var e EnumSpec
		if err := decodeRecord(data, &e); err != nil {
			return nil, SpecError{Reason: "decode enum " + k + ": " + err.Error()}
		}
		enums = append(enums, &e)
	}

	tvKeys, err := store.Keys(nsTV)
	if err != nil {
		return nil, err
	}
	tvParams := make([]*ParameterSpec, 0, len(tvKeys))
	for _, k := range tvKeys {
		data, err := store.Get(nsTV, k)
		if err != nil {
			return nil, err
		}
		var p ParameterSpec
		if err := decodeRecord(data, &p); err != nil {
			return nil, SpecError{Reason: "decode TV parameter " + k + ": " + err.Error()}
		}
		tvParams = append(tvParams, &p)
	}

	tlvKeys, err := store.Keys(nsTLV)
	if err != nil {
		return nil, err
	}
	tlvParams := make([]*ParameterSpec, 0, len(tlvKeys))
	for _, k := range tlvKeys {
		data, err := store.Get(nsTLV, k)
		if err != nil {
			return nil, err
		}
		var p ParameterSpec
		if err := decodeRecord(data, &p); err != nil {
			return nil, SpecError{Reason: "decode TLV parameter " + k + ": " + err.Error()}
		}
		tlvParams = append(tlvParams, &p)
	}

	msgKeys, err := store.Keys(nsMessage)
	if err != nil {
		return nil, err
	}
	messages := make([]*MessageSpec, 0, len(msgKeys))
	for _, k := range msgKeys {
		data, err := store.Get(nsMessage, k)
		if err != nil {
			return nil, err
		}
		var m MessageSpec
		if err := decodeRecord(data, &m); err != nil {
			return nil, SpecError{Reason: "decode message " + k + ": " + err.Error()}
		}
		messages = append(messages, &m)
	}

	customKeys, err := store.Keys(nsCustom)
	if err != nil {
		return nil, err
	}
	customs := make([]*CustomExtension, 0, len(customKeys))
	for _, k := range customKeys {
		data, err := store.Get(nsCustom, k)
		if err != nil {
			return nil, err
		}
		var c CustomExtension
		if err := decodeRecord(data, &c); err != nil {
			return nil, SpecError{Reason: "decode custom extension " + k + ": " + err.Error()}
		}
		customs = append(customs, &c)
	}

	return build(messages, tvParams, tlvParams, enums, customs)
}

// MustLoad is Load but panics on failure, for use at package init time or
// in tests where a load failure is unambiguously a program-build error.
func MustLoad(store ArtifactStore) *Registry {
	r, err := Load(store)
	if err != nil {
		panic(err)
	}
	return r
}
