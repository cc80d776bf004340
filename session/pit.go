package session

import (
	"sync"
	"time"

	"github.com/esitarski/llrp-go/codec"
)

// pendingTx is one outstanding request awaiting its correlated response.
// Correlation is by MessageID alone (LLRP, unlike NDN, has no hierarchical
// name to match against, so the table is a flat map rather than a trie).
type pendingTx struct {
	reply   chan *codec.Message
	timer   *time.Timer
	timedOut bool
}

// pendingTable is the flat equivalent of engine.go's PIT: one entry per
// in-flight request, keyed by the MessageID the request was sent with.
type pendingTable struct {
	mu      sync.Mutex
	entries map[uint32]*pendingTx
}

func newPendingTable() *pendingTable {
	return &pendingTable{entries: map[uint32]*pendingTx{}}
}

// register inserts a new pending entry for id, arming a timeout that
// delivers a nil reply (the caller interprets nil as SessionError{Timeout})
// if no response arrives first.
func (t *pendingTable) register(id uint32, timeout time.Duration) *pendingTx {
	entry := &pendingTx{reply: make(chan *codec.Message, 1)}
	t.mu.Lock()
	t.entries[id] = entry
	t.mu.Unlock()

	entry.timer = time.AfterFunc(timeout, func() {
		t.mu.Lock()
		_, stillPending := t.entries[id]
		delete(t.entries, id)
		t.mu.Unlock()
		if stillPending {
			entry.timedOut = true
			entry.reply <- nil
		}
	})
	return entry
}

// resolve delivers msg to the pending entry for msg.ID, if any, and
// cancels its timeout. Reports whether a waiter was found.
func (t *pendingTable) resolve(msg *codec.Message) bool {
	t.mu.Lock()
	entry, ok := t.entries[msg.ID]
	if ok {
		delete(t.entries, msg.ID)
	}
	t.mu.Unlock()
	if !ok {
		return false
	}
	entry.timer.Stop()
	entry.reply <- msg
	return true
}

// cancelAll fails every still-pending entry, used when the session tears
// down its connection while requests are outstanding.
func (t *pendingTable) cancelAll() {
	t.mu.Lock()
	entries := t.entries
	t.entries = map[uint32]*pendingTx{}
	t.mu.Unlock()
	for _, entry := range entries {
		entry.timer.Stop()
		entry.reply <- nil
	}
}
