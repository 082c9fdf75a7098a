package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oliCHECK24/terminal-portfolio/internal/model"

	_ "modernc.org/sqlite"
)

const historyFileName = "history.sqlite"

func (s Store) historyPath() string {
	return filepath.Join(s.Dir, historyFileName)
}

func (s Store) openHistory(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.historyPath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when CLI and web read concurrently.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			event_id TEXT PRIMARY KEY,
			profile TEXT NOT NULL,
			type TEXT NOT NULL,
			payload_json TEXT NOT NULL,
			created_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_profile ON events(profile, created_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

// AppendEvent records one committed mutation in the edit history. The empty
// profile denotes the default document. History is advisory: callers treat
// append failures as best-effort and never roll back a committed save.
func (s Store) AppendEvent(ctx context.Context, profile, typ string, payload any) error {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return &PersistError{Path: s.historyPath(), Err: errMissingEventType}
	}
	db, err := s.openHistory(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	pb, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO events(event_id, profile, type, payload_json, created_at_unixms) VALUES(?, ?, ?, ?, ?)`,
		uuid.NewString(), strings.TrimSpace(profile), typ, string(pb), time.Now().UTC().UnixMilli(),
	)
	return err
}

// ReadEvents returns history events oldest-first. An empty profile returns
// events for every document; limit <= 0 returns all matches.
func (s Store) ReadEvents(ctx context.Context, profile string, limit int) ([]model.Event, error) {
	db, err := s.openHistory(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT event_id, profile, type, payload_json, created_at_unixms FROM events`
	args := []any{}
	if p := strings.TrimSpace(profile); p != "" {
		q += ` WHERE profile = ?`
		args = append(args, p)
	}
	q += ` ORDER BY created_at_unixms ASC, event_id ASC`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Event{}
	for rows.Next() {
		var id, prof, typ, payloadJSON string
		var tsMs int64
		if err := rows.Scan(&id, &prof, &typ, &payloadJSON, &tsMs); err != nil {
			return nil, err
		}
		var payload any
		_ = json.Unmarshal([]byte(payloadJSON), &payload)
		out = append(out, model.Event{
			ID:      id,
			TS:      time.UnixMilli(tsMs).UTC(),
			Profile: prof,
			Type:    typ,
			Payload: payload,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
