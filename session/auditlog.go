package session

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/esitarski/llrp-go/codec"
	"github.com/esitarski/llrp-go/llrplog"
)

// AuditLog records every message a Session sends and receives into a
// SQLite database, for after-the-fact inspection of a reader session
// (what was requested, what came back, and when).
type AuditLog struct {
	db *sql.DB
}

// OpenAuditLog opens (creating if necessary) a SQLite database at path and
// ensures its schema exists.
func OpenAuditLog(path string) (*AuditLog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	const schema = `
CREATE TABLE IF NOT EXISTS audit_log (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	direction  TEXT NOT NULL,
	message    TEXT NOT NULL,
	message_id INTEGER NOT NULL,
	recorded_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &AuditLog{db: db}, nil
}

// Close closes the underlying database handle.
func (a *AuditLog) Close() error {
	return a.db.Close()
}

func (a *AuditLog) record(direction string, msg *codec.Message) {
	_, err := a.db.Exec(
		"INSERT INTO audit_log (direction, message, message_id) VALUES (?, ?, ?)",
		direction, msg.Name, msg.ID,
	)
	if err != nil {
		llrplog.Default().Error("session.auditlog", "failed to record message", "err", err)
	}
}

// RecordSent logs an outgoing message.
func (a *AuditLog) RecordSent(msg *codec.Message) {
	a.record("sent", msg)
}

// RecordReceived logs an incoming message.
func (a *AuditLog) RecordReceived(msg *codec.Message) {
	a.record("received", msg)
}

// Entry is one row of the audit trail, as returned by Recent.
type Entry struct {
	Direction  string
	Message    string
	MessageID  uint32
	RecordedAt string
}

// Recent returns the last n entries, most recent first.
func (a *AuditLog) Recent(n int) ([]Entry, error) {
	rows, err := a.db.Query(
		"SELECT direction, message, message_id, recorded_at FROM audit_log ORDER BY id DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Direction, &e.Message, &e.MessageID, &e.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
