package storage

import (
	"database/sql"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/registry"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Entry is an event as stored in the journal.
type Entry struct {
	Seq        int64
	Name       string
	Subject    string
	Payload    []byte
	RecordedAt time.Time
}

// Decode unmarshals the payload of the entry into evt, which must be a
// pointer to the event type named by the entry.
func (e Entry) Decode(evt types.Event) error {
	err := json.Unmarshal(e.Payload, evt)
	if err != nil {
		return xerrors.Errorf("failed to decode %s #%d: %v", e.Name, e.Seq, err)
	}
	return nil
}

// Journal is an append-only log of the protocol events, kept in a SQLite
// database. The protocol state lives in memory, the journal is an audit
// trail.
type Journal struct {
	db    *sql.DB
	clock func() time.Time
}

// NewJournal opens (or creates) the journal at path.
func NewJournal(path string) (*Journal, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, xerrors.Errorf("failed to open journal: %v", err)
	}
	// a single writer
	db.SetMaxOpenConns(1)

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, xerrors.Errorf("failed to open journal: %v", err)
	}

	j := &Journal{db: db, clock: time.Now}

	err = j.migrate()
	if err != nil {
		db.Close()
		return nil, xerrors.Errorf("failed to migrate journal: %v", err)
	}

	return j, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS events (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    subject TEXT NOT NULL,
    payload BLOB NOT NULL,
    recorded_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_subject ON events(subject);
CREATE INDEX IF NOT EXISTS idx_events_name ON events(name);
`
	_, err := j.db.Exec(schema)
	return err
}

// Attach records every event processed by the registry.
func (j *Journal) Attach(reg registry.Registry) {
	reg.RegisterNotify(j.Record)
}

// Record appends the event to the journal. It has the signature of a
// registry.Exec.
func (j *Journal) Record(evt types.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return xerrors.Errorf("failed to encode %s: %v", evt.Name(), err)
	}

	_, err = j.db.Exec(
		`INSERT INTO events (name, subject, payload, recorded_at) VALUES (?, ?, ?, ?)`,
		evt.Name(), evt.Subject(), payload, j.clock().UnixNano(),
	)
	if err != nil {
		return xerrors.Errorf("failed to record %s: %v", evt.Name(), err)
	}

	log.Debug().Msgf("journal: recorded %s on %s", evt.Name(), evt.Subject())
	return nil
}

// List returns the entries about subject in recording order. An empty
// subject lists the whole journal.
func (j *Journal) List(subject string) ([]Entry, error) {
	query := `SELECT seq, name, subject, payload, recorded_at FROM events`
	args := make([]interface{}, 0, 1)
	if subject != "" {
		query += ` WHERE subject = ?`
		args = append(args, subject)
	}
	query += ` ORDER BY seq`

	return j.query(query, args...)
}

// ListByName returns the entries of the given event type in recording order.
func (j *Journal) ListByName(name string) ([]Entry, error) {
	return j.query(
		`SELECT seq, name, subject, payload, recorded_at FROM events WHERE name = ? ORDER BY seq`,
		name,
	)
}

// Count returns the number of recorded events.
func (j *Journal) Count() (int, error) {
	var n int
	err := j.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n)
	if err != nil {
		return 0, xerrors.Errorf("failed to count events: %v", err)
	}
	return n, nil
}

func (j *Journal) query(query string, args ...interface{}) ([]Entry, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, xerrors.Errorf("failed to list events: %v", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		var recordedAt int64
		err = rows.Scan(&e.Seq, &e.Name, &e.Subject, &e.Payload, &recordedAt)
		if err != nil {
			return nil, xerrors.Errorf("failed to scan event: %v", err)
		}
		e.RecordedAt = time.Unix(0, recordedAt)
		entries = append(entries, e)
	}

	err = rows.Err()
	if err != nil {
		return nil, xerrors.Errorf("failed to list events: %v", err)
	}
	return entries, nil
}
