package session

import (
	"errors"
	"fmt"
	"io"
)

// maxMessageSize bounds how much unframed data readLLRPStream will buffer
// before concluding the peer is not speaking LLRP.
const maxMessageSize = 64 * 1024 * 1024

// readLLRPStream reads framed LLRP messages from reader, calling onFrame
// once per complete message (header included) until onFrame returns false
// or the connection closes. Framing uses the 10-byte LLRP header: the
// 4-byte big-endian MessageLength field at byte offset 2 gives the total
// size of the PDU, header included.
func readLLRPStream(reader io.Reader, onFrame func([]byte) bool) error {
	buf := make([]byte, maxMessageSize/4)
	off := 0   // end of valid data
	start := 0 // start of the not-yet-dispatched frame

	for {
		if len(buf)-off < headerLen {
			copy(buf, buf[start:off])
			off -= start
			start = 0
			if len(buf)-off < headerLen {
				grown := make([]byte, len(buf)*2)
				copy(grown, buf[:off])
				buf = grown
			}
		}

		n, err := reader.Read(buf[off:])
		off += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		for {
			if off-start < headerLen {
				break
			}
			length := be32(buf[start+2 : start+6])
			if length < headerLen {
				return fmt.Errorf("session: invalid message length %d", length)
			}
			if off-start < int(length) {
				if off-start > maxMessageSize {
					return fmt.Errorf("session: message exceeds maximum size without completing")
				}
				break
			}
			if !onFrame(buf[start : start+int(length)]) {
				return nil
			}
			start += int(length)
		}
	}
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
