// Package session implements the client side of an LLRP TCP connection:
// connection setup through the reader's unsolicited READER_EVENT_NOTIFICATION,
// request/response correlation by MessageID, automatic KEEPALIVE_ACK, and
// asynchronous dispatch of unsolicited messages (tag reports, events) to
// registered handlers.
package session

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/esitarski/llrp-go/codec"
	"github.com/esitarski/llrp-go/llrplog"
	"github.com/esitarski/llrp-go/spec"
)

const headerLen = 10

// State is a Session's position in the LLRP connection lifecycle.
type State int

const (
	Disconnected State = iota
	Connecting
	AwaitingReaderEvent
	Ready
	Listening
	Closing
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "DISCONNECTED"
	case Connecting:
		return "CONNECTING"
	case AwaitingReaderEvent:
		return "AWAITING_READER_EVENT"
	case Ready:
		return "READY"
	case Listening:
		return "LISTENING"
	case Closing:
		return "CLOSING"
	default:
		return "UNKNOWN"
	}
}

// DefaultTransactTimeout bounds how long Transact waits for a correlated
// response before returning SessionError{Kind: Timeout}.
const DefaultTransactTimeout = 10 * time.Second

// DefaultConnectTimeout bounds how long Connect waits for the reader's
// initial READER_EVENT_NOTIFICATION before giving up.
const DefaultConnectTimeout = 5 * time.Second

// Session is a single client connection to one LLRP reader.
type Session struct {
	reg *spec.Registry
	log *llrplog.Logger

	mu    sync.Mutex
	state State
	conn  net.Conn

	nextID atomic.Uint32
	pit    *pendingTable

	handlersMu sync.Mutex
	handlers   map[string]func(*codec.Message)
	onMessage  func(*codec.Message)

	readyCh chan error // closed/sent-to once AwaitingReaderEvent resolves

	audit *AuditLog
}

// New returns a Session bound to reg, in the Disconnected state.
func New(reg *spec.Registry) *Session {
	return &Session{
		reg:      reg,
		log:      llrplog.Default(),
		state:    Disconnected,
		pit:      newPendingTable(),
		handlers: map[string]func(*codec.Message){},
	}
}

// WithAuditLog attaches an AuditLog that records every message this
// Session sends and receives.
func (s *Session) WithAuditLog(a *AuditLog) *Session {
	s.audit = a
	return s
}

// State reports the Session's current connection state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	s.log.Debug("session", "state transition", "state", st.String())
}

// Connect dials addr, then blocks until the reader's initial
// READER_EVENT_NOTIFICATION arrives (or timeout elapses), per the LLRP
// connection handshake: a reader always sends this first, unsolicited.
// A timeout <= 0 means DefaultConnectTimeout.
func (s *Session) Connect(addr string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	s.mu.Lock()
	if s.state != Disconnected {
		s.mu.Unlock()
		return SessionError{Kind: NotReady, Detail: "session already connected"}
	}
	s.state = Connecting
	s.mu.Unlock()

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		s.setState(Disconnected)
		return SessionError{Kind: ConnectFailed, Detail: err.Error()}
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	s.setState(AwaitingReaderEvent)

	s.readyCh = make(chan error, 1)
	go s.readLoop()

	select {
	case err := <-s.readyCh:
		if err != nil {
			s.Close()
			return err
		}
		s.setState(Ready)
		return nil
	case <-time.After(timeout):
		s.Close()
		return SessionError{Kind: Timeout, Detail: "no READER_EVENT_NOTIFICATION within timeout"}
	}
}

// Close tears down the connection, failing every pending Transact call.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.state == Disconnected || s.state == Closing {
		s.mu.Unlock()
		return nil
	}
	s.state = Closing
	conn := s.conn
	s.mu.Unlock()

	var err error
	if conn != nil {
		err = conn.Close()
	}
	s.pit.cancelAll()
	s.setState(Disconnected)
	return err
}

// Transact sends msg (assigning it a fresh MessageID) and blocks for its
// correlated response. A timeout <= 0 means DefaultTransactTimeout.
func (s *Session) Transact(msg *codec.Message, timeout time.Duration) (*codec.Message, error) {
	if timeout <= 0 {
		timeout = DefaultTransactTimeout
	}
	s.mu.Lock()
	st := s.state
	conn := s.conn
	s.mu.Unlock()
	if st != Ready && st != Listening {
		return nil, SessionError{Kind: NotReady, Detail: "session is " + st.String()}
	}

	msg.ID = s.nextID.Add(1)
	wire, err := codec.EncodeMessage(s.reg, msg)
	if err != nil {
		return nil, err
	}

	entry := s.pit.register(msg.ID, timeout)
	if s.audit != nil {
		s.audit.RecordSent(msg)
	}
	if _, err := conn.Write(wire); err != nil {
		s.pit.cancelAll()
		return nil, SessionError{Kind: IOError, Detail: err.Error()}
	}

	reply := <-entry.reply
	if reply == nil {
		if entry.timedOut {
			return nil, SessionError{Kind: Timeout, Detail: "no response correlated within timeout"}
		}
		return nil, SessionError{Kind: Cancelled, Detail: "session closed while awaiting response"}
	}
	return reply, nil
}

// OnMessageType registers a handler invoked for every unsolicited message
// of the given name (a message with no pending Transact waiting on its
// MessageID): RO_ACCESS_REPORT, READER_EVENT_NOTIFICATION after connection
// setup, and so on. KEEPALIVE is answered with KEEPALIVE_ACK by the session
// itself and is never passed to a handler. Registering a second handler for
// the same name replaces the first.
func (s *Session) OnMessageType(name string, handler func(*codec.Message)) {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.handlers[name] = handler
}

// OnMessage registers a catch-all handler for unsolicited messages with no
// type-specific handler registered.
func (s *Session) OnMessage(handler func(*codec.Message)) {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.onMessage = handler
}

func (s *Session) readLoop() {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()

	err := readLLRPStream(conn, func(frame []byte) bool {
		s.handleFrame(frame)
		return true
	})
	if err != nil {
		s.log.Warn("session", "read loop ended", "err", err)
	}
	if s.readyCh != nil {
		select {
		case s.readyCh <- SessionError{Kind: PeerClosed, Detail: "connection closed before handshake completed"}:
		default:
		}
	}
	s.pit.cancelAll()
}

func (s *Session) handleFrame(frame []byte) {
	msg, err := codec.DecodeMessage(s.reg, frame)
	if err != nil {
		s.log.Error("session", "failed to decode incoming message", "err", err)
		return
	}
	if s.audit != nil {
		s.audit.RecordReceived(msg)
	}

	if s.State() == AwaitingReaderEvent {
		s.handleHandshake(msg)
		return
	}

	if msg.Name == "KEEPALIVE" {
		s.sendKeepaliveAck()
		return
	}

	if s.pit.resolve(msg) {
		return
	}

	s.dispatchUnsolicited(msg)
}

// handleHandshake inspects the reader's first READER_EVENT_NOTIFICATION,
// failing the handshake if it carries a non-Success ConnectionAttemptEvent.
func (s *Session) handleHandshake(msg *codec.Message) {
	if msg.Name != "READER_EVENT_NOTIFICATION" {
		s.readyCh <- SessionError{Kind: ConnectFailed, Detail: "expected READER_EVENT_NOTIFICATION, got " + msg.Name}
		return
	}
	data, ok := msg.Child("ReaderEventNotificationData")
	if ok {
		if attempt, ok := data.Child("ConnectionAttemptEvent"); ok {
			if v, ok := attempt.Field("Status"); ok && v.U != 0 {
				s.readyCh <- SessionError{Kind: ConnectFailed, Detail: "reader refused connection attempt"}
				return
			}
		}
	}
	s.readyCh <- nil
}

func (s *Session) dispatchUnsolicited(msg *codec.Message) {
	s.handlersMu.Lock()
	handler, ok := s.handlers[msg.Name]
	fallback := s.onMessage
	s.handlersMu.Unlock()

	if ok {
		go handler(msg)
		return
	}
	if fallback != nil {
		go fallback(msg)
	}
}

func (s *Session) sendKeepaliveAck() {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return
	}
	ack := &codec.Message{Name: "KEEPALIVE_ACK", ID: s.nextID.Add(1)}
	wire, err := codec.EncodeMessage(s.reg, ack)
	if err != nil {
		s.log.Error("session", "failed to encode KEEPALIVE_ACK", "err", err)
		return
	}
	if _, err := conn.Write(wire); err != nil {
		s.log.Error("session", "failed to send KEEPALIVE_ACK", "err", err)
	}
}

// StartListener transitions a Ready session into Listening: it continues
// to correlate Transact responses and auto-acknowledge keepalives, but
// also surfaces unsolicited tag reports via OnMessageType("RO_ACCESS_REPORT", ...).
// The read loop already does this regardless of state; StartListener exists
// so callers can observe the state transition explicitly.
func (s *Session) StartListener() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Ready {
		return SessionError{Kind: NotReady, Detail: "session is " + s.state.String()}
	}
	s.state = Listening
	return nil
}

// StopListener transitions back to Ready.
func (s *Session) StopListener() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Listening {
		return SessionError{Kind: NotReady, Detail: "session is " + s.state.String()}
	}
	s.state = Ready
	return nil
}
