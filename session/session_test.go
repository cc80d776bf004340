package session_test

import (
	"net"
	"testing"
	"time"

	"github.com/esitarski/llrp-go/codec"
	"github.com/esitarski/llrp-go/session"
	"github.com/esitarski/llrp-go/spec"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *spec.Registry {
	t.Helper()
	return spec.MustLoad(spec.Default())
}

// fakeReader is a minimal TCP listener standing in for an LLRP reader: it
// accepts one connection, sends a READER_EVENT_NOTIFICATION, then answers
// whatever request it receives with a canned GET_READER_CAPABILITIES_RESPONSE.
func fakeReader(t *testing.T, reg *spec.Registry) (addr string, close func()) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		hello := &codec.Message{
			Name: "READER_EVENT_NOTIFICATION",
			ID:   0,
			Params: []*codec.Parameter{{
				Name: "ReaderEventNotificationData",
				Params: []*codec.Parameter{{
					Name:   "ConnectionAttemptEvent",
					Fields: map[string]codec.Value{"Status": codec.UintValue(0)},
				}},
			}},
		}
		wire, err := codec.EncodeMessage(reg, hello)
		require.NoError(t, err)
		_, err = conn.Write(wire)
		require.NoError(t, err)

		buf := make([]byte, 4096)
		for {
			n, err := conn.Read(buf)
			if err != nil {
				return
			}
			req, err := codec.DecodeMessage(reg, buf[:n])
			if err != nil {
				return
			}
			if req.Name == "KEEPALIVE" {
				continue
			}
			resp := &codec.Message{
				Name: "GET_READER_CAPABILITIES_RESPONSE",
				ID:   req.ID,
				Params: []*codec.Parameter{{
					Name:   "LLRPStatus",
					Fields: map[string]codec.Value{"StatusCode": codec.UintValue(0), "ErrorDescription": codec.StringValue("")},
				}},
			}
			wire, err := codec.EncodeMessage(reg, resp)
			if err != nil {
				return
			}
			if _, err := conn.Write(wire); err != nil {
				return
			}
		}
	}()

	return ln.Addr().String(), func() { ln.Close() }
}

func TestConnectAndTransact(t *testing.T) {
	reg := testRegistry(t)
	addr, closeReader := fakeReader(t, reg)
	defer closeReader()

	s := session.New(reg)
	err := s.Connect(addr, 2*time.Second)
	require.NoError(t, err)
	require.Equal(t, session.Ready, s.State())

	req := &codec.Message{Name: "GET_READER_CAPABILITIES", Fields: map[string]codec.Value{"RequestedData": codec.UintValue(0)}}
	resp, err := s.Transact(req, time.Second)
	require.NoError(t, err)
	require.Equal(t, "GET_READER_CAPABILITIES_RESPONSE", resp.Name)
	status, ok := resp.Child("LLRPStatus")
	require.True(t, ok)
	v, _ := status.Field("StatusCode")
	require.Equal(t, uint64(0), v.U)

	require.NoError(t, s.Close())
}

// A reader that reports a failed ConnectionAttemptEvent must surface
// as a Connect error, not a silent READY transition.
func TestConnectFailedAttempt(t *testing.T) {
	reg := testRegistry(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		hello := &codec.Message{
			Name: "READER_EVENT_NOTIFICATION",
			Params: []*codec.Parameter{{
				Name: "ReaderEventNotificationData",
				Params: []*codec.Parameter{{
					Name:   "ConnectionAttemptEvent",
					Fields: map[string]codec.Value{"Status": codec.UintValue(1)},
				}},
			}},
		}
		wire, _ := codec.EncodeMessage(reg, hello)
		conn.Write(wire)
		time.Sleep(50 * time.Millisecond)
	}()

	s := session.New(reg)
	err = s.Connect(ln.Addr().String(), 2*time.Second)
	require.Error(t, err)
	require.Equal(t, session.Disconnected, s.State())
}

func TestTransactFailsWhenDisconnected(t *testing.T) {
	reg := testRegistry(t)
	s := session.New(reg)
	_, err := s.Transact(&codec.Message{Name: "GET_READER_CAPABILITIES"}, time.Second)
	require.Error(t, err)
}
