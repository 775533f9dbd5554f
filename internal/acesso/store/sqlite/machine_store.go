package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
)

type MachineStore struct {
	db *sqlx.DB
}

func NewMachineStore(db *sqlx.DB) *MachineStore {
	return &MachineStore{db: db}
}

func (s *MachineStore) List(ctx context.Context) ([]store.MachineRecord, error) {
	var out []store.MachineRecord
	if err := s.db.SelectContext(ctx, &out, `
SELECT id, machine_id, nome, local, ativa, ip, criado_em
FROM maquinas
ORDER BY nome, id;
`); err != nil {
		return nil, fmt.Errorf("List maquinas: %w", err)
	}
	return out, nil
}

func (s *MachineStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, "maquinas")
}
