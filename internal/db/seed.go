package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type seedUser struct {
	uid, nome, cargo string
}

type seedMachine struct {
	machineID, nome, local string
}

var (
	seedUsers = []seedUser{
		{"FA089CBC", "João Silva", "Operador Senior"},
		{"EBEABCA5", "Maria Santos", "Supervisora"},
		{"6B423203", "Pedro Costa", "Técnico"},
		{"FB32FAA5", "Ana Oliveira", "Operadora"},
		{"AA5C15BC", "Carlos Souza", "Mecânico"},
		{"F1B2715B", "Lucas Ferreira", "Auxiliar"},
	}

	seedMachines = []seedMachine{
		{"DEMO-01", "Torno Mecânico", "Oficina A"},
	}
)

// Seed inserts the demo users and machine. Rows whose uid or machine_id
// already exist are left untouched, so Seed can run any number of times.
func Seed(ctx context.Context, db *sqlx.DB) error {
	now := time.Now().UTC().Unix()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range seedUsers {
		if _, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO usuarios(uid, nome, cargo, ativo, criado_em)
VALUES (?, ?, ?, 1, ?);`, u.uid, u.nome, u.cargo, now); err != nil {
			return fmt.Errorf("seed usuario %s: %w", u.uid, err)
		}
	}

	for _, m := range seedMachines {
		if _, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO maquinas(machine_id, nome, local, ativa, criado_em)
VALUES (?, ?, ?, 1, ?);`, m.machineID, m.nome, m.local, now); err != nil {
			return fmt.Errorf("seed maquina %s: %w", m.machineID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}
	return nil
}
