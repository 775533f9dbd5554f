package store

import (
	"context"
	"database/sql"
)

// UserRecord is one row of the usuarios table. UID is always stored
// uppercase; Active mirrors the 0/1 ativo column.
type UserRecord struct {
	ID        int64          `db:"id"`
	UID       string         `db:"uid"`
	Name      string         `db:"nome"`
	Role      sql.NullString `db:"cargo"`
	Active    bool           `db:"ativo"`
	ExpiresAt sql.NullInt64  `db:"validade"` // epoch seconds; not enforced
	CreatedAt int64          `db:"criado_em"`
}

// NewUser carries the caller-supplied columns of an explicit create.
type NewUser struct {
	UID  string
	Name string
	Role string
}

type UserStore interface {
	// List returns every user ordered by name.
	List(ctx context.Context) ([]UserRecord, error)
	// GetByUID returns ErrNotFound when no row has that exact uid.
	GetByUID(ctx context.Context, uid string) (UserRecord, error)
	// Create inserts an active user and returns its id, or ErrConflict
	// when the uid is taken.
	Create(ctx context.Context, u NewUser) (int64, error)
	// Delete removes the user with that id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
