package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
	dbpkg "github.com/BrandonDHaskell/acesso/server/internal/db"
)

type EventStore struct {
	db     *sqlx.DB
	writer *dbpkg.Worker
}

func NewEventStore(db *sqlx.DB, writer *dbpkg.Worker) *EventStore {
	return &EventStore{db: db, writer: writer}
}

func (s *EventStore) Append(ctx context.Context, rec store.EventRecord) (int64, error) {
	createdAt := time.Now().UTC().Unix()

	var id int64
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
INSERT INTO logs(
  timestamp, machine_id, uid, usuario, evento, rssi, duracao, criado_em
) VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`,
			rec.Timestamp, rec.MachineID, rec.UID, rec.UserName,
			rec.Kind, rec.RSSI, rec.Duration, createdAt,
		)
		if err != nil {
			return fmt.Errorf("Append insert: %w", err)
		}

		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("Append last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Recent orders by id: AUTOINCREMENT ids grow with every insert, so this is
// exact creation order even for rows created within the same second.
func (s *EventStore) Recent(ctx context.Context, limit int) ([]store.EventRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	var out []store.EventRecord
	if err := s.db.SelectContext(ctx, &out, `
SELECT id, timestamp, machine_id, uid, usuario, evento, rssi, duracao, criado_em
FROM logs
ORDER BY id DESC
LIMIT ?;
`, limit); err != nil {
		return nil, fmt.Errorf("Recent logs: %w", err)
	}
	return out, nil
}

func (s *EventStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, "logs")
}
