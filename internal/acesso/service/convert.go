package service

import (
	"database/sql"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
	"github.com/BrandonDHaskell/acesso/server/internal/acesso/types"
)

func userFromRecord(r store.UserRecord) types.User {
	return types.User{
		ID:        r.ID,
		UID:       r.UID,
		Name:      r.Name,
		Role:      nullString(r.Role),
		Active:    boolInt(r.Active),
		ExpiresAt: nullInt(r.ExpiresAt),
		CreatedAt: r.CreatedAt,
	}
}

func machineFromRecord(r store.MachineRecord) types.Machine {
	return types.Machine{
		ID:        r.ID,
		MachineID: r.MachineID,
		Name:      r.Name,
		Location:  nullString(r.Location),
		Active:    boolInt(r.Active),
		IP:        nullString(r.IP),
		CreatedAt: r.CreatedAt,
	}
}

func eventFromRecord(r store.EventRecord) types.AccessEvent {
	return types.AccessEvent{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		MachineID: r.MachineID,
		UID:       r.UID,
		UserName:  nullString(r.UserName),
		Event:     r.Kind,
		RSSI:      nullInt(r.RSSI),
		Duration:  nullInt(r.Duration),
		CreatedAt: r.CreatedAt,
	}
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
