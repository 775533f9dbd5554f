package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
	sqlitestore "github.com/BrandonDHaskell/acesso/server/internal/acesso/store/sqlite"
)

// ═══════════════════════════════════════════════════════════════════════════
// Append
// ═══════════════════════════════════════════════════════════════════════════

func TestEventStore_Append_ColumnsCorrect(t *testing.T) {
	conn := openTestDB(t)
	es := sqlitestore.NewEventStore(conn, newTestWriter(t, conn))

	id, err := es.Append(context.Background(), store.EventRecord{
		Timestamp: 1700000000,
		MachineID: "DEMO-01",
		UID:       "FA089CBC",
		UserName:  sql.NullString{String: "João Silva", Valid: true},
		Kind:      "ACESSO_LIBERADO",
		RSSI:      sql.NullInt64{Int64: -60, Valid: true},
		Duration:  sql.NullInt64{Valid: true},
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	var (
		ts, createdAt   int64
		machine, uid    string
		usuario, evento string
		rssi, duracao   int64
	)
	require.NoError(t, conn.QueryRow(`
SELECT timestamp, machine_id, uid, usuario, evento, rssi, duracao, criado_em
FROM logs WHERE id = ?`, id,
	).Scan(&ts, &machine, &uid, &usuario, &evento, &rssi, &duracao, &createdAt))

	assert.EqualValues(t, 1700000000, ts)
	assert.Equal(t, "DEMO-01", machine)
	assert.Equal(t, "FA089CBC", uid)
	assert.Equal(t, "João Silva", usuario)
	assert.Equal(t, "ACESSO_LIBERADO", evento)
	assert.EqualValues(t, -60, rssi)
	assert.Zero(t, duracao)
	assert.NotZero(t, createdAt)
}

func TestEventStore_Append_UnknownMachineAccepted(t *testing.T) {
	conn := openTestDB(t)
	es := sqlitestore.NewEventStore(conn, newTestWriter(t, conn))

	_, err := es.Append(context.Background(), store.EventRecord{
		MachineID: "NAO-CADASTRADA",
		UID:       "00000000",
		Kind:      "ACESSO_NEGADO",
	})
	require.NoError(t, err)

	n, err := es.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestEventStore_Append_StoresTimestampAsGiven(t *testing.T) {
	conn := openTestDB(t)
	es := sqlitestore.NewEventStore(conn, newTestWriter(t, conn))

	_, err := es.Append(context.Background(), store.EventRecord{
		Timestamp: 0,
		MachineID: "DEMO-01", UID: "FA089CBC", Kind: "TESTE",
	})
	require.NoError(t, err)

	recs, err := es.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Zero(t, recs[0].Timestamp, "explicit zero is not replaced")
	assert.NotZero(t, recs[0].CreatedAt)
	assert.False(t, recs[0].UserName.Valid)
	assert.False(t, recs[0].RSSI.Valid)
}

// ═══════════════════════════════════════════════════════════════════════════
// Recent
// ═══════════════════════════════════════════════════════════════════════════

func TestEventStore_Recent_NewestFirstAndLimited(t *testing.T) {
	conn := openTestDB(t)
	es := sqlitestore.NewEventStore(conn, newTestWriter(t, conn))
	ctx := context.Background()

	// Same terminal timestamp for all rows: order must still follow insertion.
	for i := 1; i <= 5; i++ {
		_, err := es.Append(ctx, store.EventRecord{
			Timestamp: 1700000000,
			MachineID: "DEMO-01",
			UID:       fmt.Sprintf("UID%d", i),
			Kind:      "ACESSO_LIBERADO",
		})
		require.NoError(t, err)
	}

	recs, err := es.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "UID5", recs[0].UID)
	assert.Equal(t, "UID4", recs[1].UID)
	assert.Equal(t, "UID3", recs[2].UID)

	all, err := es.Recent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestEventStore_Recent_NonPositiveLimit(t *testing.T) {
	conn := openTestDB(t)
	es := sqlitestore.NewEventStore(conn, newTestWriter(t, conn))

	_, err := es.Append(context.Background(), store.EventRecord{MachineID: "M", UID: "U", Kind: "E"})
	require.NoError(t, err)

	recs, err := es.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestEventStore_Recent_Empty(t *testing.T) {
	conn := openTestDB(t)
	es := sqlitestore.NewEventStore(conn, newTestWriter(t, conn))

	recs, err := es.Recent(context.Background(), 50)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
