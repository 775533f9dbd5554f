package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// count is only called with the fixed table names above; never pass
// caller-controlled input.
func count(ctx context.Context, db *sqlx.DB, table string) (int64, error) {
	var n int64
	if err := db.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+table+";"); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
