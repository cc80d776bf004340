package spec

import (
	"bytes"
	"encoding/gob"
)

func encodeRecord(v any) []byte {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		// These are compiled-in Go literals; a gob encoding failure here
		// is a bug in this package, not a runtime condition.
		panic("spec: failed to encode builtin record: " + err.Error())
	}
	return buf.Bytes()
}

func decodeRecord(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
