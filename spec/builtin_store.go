package spec

// BuiltinArtifact is an in-memory ArtifactStore populated from Go literal
// definitions (spec/builtin_*.go). It stands in for the static artifact an
// offline XML-to-artifact compiler would otherwise produce (that compiler
// is out of scope for this module; only its output's shape matters here).
type BuiltinArtifact struct {
	records map[string]map[string][]byte
}

func newBuiltinArtifact() *BuiltinArtifact {
	return &BuiltinArtifact{records: map[string]map[string][]byte{
		nsMessage: {},
		nsTV:      {},
		nsTLV:     {},
		nsEnum:    {},
		nsCustom:  {},
	}}
}

func (b *BuiltinArtifact) put(namespace, key string, v any) {
	b.records[namespace][key] = encodeRecord(v)
}

func (b *BuiltinArtifact) Keys(namespace string) ([]string, error) {
	ns := b.records[namespace]
	keys := make([]string, 0, len(ns))
	for k := range ns {
		keys = append(keys, k)
	}
	return keys, nil
}

func (b *BuiltinArtifact) Get(namespace, key string) ([]byte, error) {
	ns, ok := b.records[namespace]
	if !ok {
		return nil, ErrNotFound{Namespace: namespace, Key: key}
	}
	rec, ok := ns[key]
	if !ok {
		return nil, ErrNotFound{Namespace: namespace, Key: key}
	}
	return rec, nil
}

// Default returns the built-in artifact store covering the LLRP 1.0.1 core
// plus the Impinj vendor extensions this module knows about.
func Default() *BuiltinArtifact {
	b := newBuiltinArtifact()
	for _, e := range builtinEnums() {
		b.put(nsEnum, e.Name, e)
	}
	for _, p := range builtinTVParams() {
		b.put(nsTV, p.Name, p)
	}
	for _, p := range builtinTLVParams() {
		b.put(nsTLV, p.Name, p)
	}
	for _, m := range builtinMessages() {
		b.put(nsMessage, m.Name, m)
	}
	for _, c := range builtinCustomExtensions() {
		b.put(nsCustom, customKeyString(c.VendorID, c.SubType), c)
	}
	return b
}

func customKeyString(vendorID, subType uint32) string {
	return formatUint(vendorID) + ":" + formatUint(subType)
}

func formatUint(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
