package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
	dbpkg "github.com/BrandonDHaskell/acesso/server/internal/db"
)

const userColumns = `id, uid, nome, cargo, ativo, validade, criado_em`

type UserStore struct {
	db     *sqlx.DB
	writer *dbpkg.Worker
}

func NewUserStore(db *sqlx.DB, writer *dbpkg.Worker) *UserStore {
	return &UserStore{db: db, writer: writer}
}

func (s *UserStore) List(ctx context.Context) ([]store.UserRecord, error) {
	var out []store.UserRecord
	if err := s.db.SelectContext(ctx, &out, `
SELECT `+userColumns+`
FROM usuarios
ORDER BY nome, id;
`); err != nil {
		return nil, fmt.Errorf("List usuarios: %w", err)
	}
	return out, nil
}

func (s *UserStore) GetByUID(ctx context.Context, uid string) (store.UserRecord, error) {
	var rec store.UserRecord
	err := s.db.GetContext(ctx, &rec, `
SELECT `+userColumns+`
FROM usuarios
WHERE uid = ?;
`, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserRecord{}, store.ErrNotFound
	}
	if err != nil {
		return store.UserRecord{}, fmt.Errorf("GetByUID: %w", err)
	}
	return rec, nil
}

// Create relies on ON CONFLICT DO NOTHING rather than matching driver error
// codes: zero affected rows means the uid already exists.
func (s *UserStore) Create(ctx context.Context, u store.NewUser) (int64, error) {
	now := time.Now().UTC().Unix()

	var id int64
	err := s.writer.Do(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
INSERT INTO usuarios(uid, nome, cargo, ativo, criado_em)
VALUES (?, ?, ?, 1, ?)
ON CONFLICT(uid) DO NOTHING;
`, u.UID, u.Name, u.Role, now)
		if err != nil {
			return fmt.Errorf("Create insert: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("Create rows affected: %w", err)
		}
		if n == 0 {
			return store.ErrConflict
		}

		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("Create last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	return s.writer.Do(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM usuarios WHERE id = ?;`, id); err != nil {
			return fmt.Errorf("Delete usuario %d: %w", id, err)
		}
		return nil
	})
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, "usuarios")
}
