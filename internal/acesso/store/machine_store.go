package store

import (
	"context"
	"database/sql"
)

// MachineRecord is one row of the maquinas table.
type MachineRecord struct {
	ID        int64          `db:"id"`
	MachineID string         `db:"machine_id"`
	Name      string         `db:"nome"`
	Location  sql.NullString `db:"local"`
	Active    bool           `db:"ativa"`
	IP        sql.NullString `db:"ip"`
	CreatedAt int64          `db:"criado_em"`
}

// MachineStore is read-only: machines are provisioned by seeding.
type MachineStore interface {
	// List returns every machine ordered by name.
	List(ctx context.Context) ([]MachineRecord, error)
	Count(ctx context.Context) (int64, error)
}
