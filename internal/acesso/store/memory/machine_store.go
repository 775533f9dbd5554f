package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
)

type MachineStore struct {
	mu   sync.RWMutex
	rows []store.MachineRecord
}

// NewMachineStore returns a store preloaded with machines. IDs and creation
// times are filled in when left zero.
func NewMachineStore(machines ...store.MachineRecord) *MachineStore {
	now := time.Now().UTC().Unix()
	rows := make([]store.MachineRecord, 0, len(machines))
	for i, m := range machines {
		if m.ID == 0 {
			m.ID = int64(i + 1)
		}
		if m.CreatedAt == 0 {
			m.CreatedAt = now
		}
		rows = append(rows, m)
	}
	return &MachineStore{rows: rows}
}

func (s *MachineStore) List(_ context.Context) ([]store.MachineRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.MachineRecord, len(s.rows))
	copy(out, s.rows)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MachineStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.rows)), nil
}
