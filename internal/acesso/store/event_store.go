package store

import (
	"context"
	"database/sql"
)

// EventRecord captures a single access attempt reported by a terminal.
// MachineID and UID are stored as sent; neither is checked against the
// machines or users tables.
type EventRecord struct {
	ID        int64          `db:"id"`
	Timestamp int64          `db:"timestamp"` // terminal clock, epoch seconds
	MachineID string         `db:"machine_id"`
	UID       string         `db:"uid"`
	UserName  sql.NullString `db:"usuario"`
	Kind      string         `db:"evento"`
	RSSI      sql.NullInt64  `db:"rssi"`
	Duration  sql.NullInt64  `db:"duracao"`
	CreatedAt int64          `db:"criado_em"` // server clock, epoch seconds
}

// EventStore persists access events as an append-only log. It has no
// update or delete.
type EventStore interface {
	// Append inserts rec and returns the new id. ID and CreatedAt are
	// assigned by the store; Timestamp is stored as given, zero included.
	Append(ctx context.Context, rec EventRecord) (int64, error)
	// Recent returns at most limit events, newest first by creation order.
	Recent(ctx context.Context, limit int) ([]EventRecord, error)
	Count(ctx context.Context) (int64, error)
}
