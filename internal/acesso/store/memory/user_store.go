package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
)

// UserStore is an in-memory usuarios table for tests and dev runs.
type UserStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]store.UserRecord
}

func NewUserStore() *UserStore {
	return &UserStore{rows: make(map[int64]store.UserRecord)}
}

func (s *UserStore) List(_ context.Context) ([]store.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.UserRecord, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *UserStore) GetByUID(_ context.Context, uid string) (store.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rows {
		if r.UID == uid {
			return r, nil
		}
	}
	return store.UserRecord{}, store.ErrNotFound
}

func (s *UserStore) Create(_ context.Context, u store.NewUser) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rows {
		if r.UID == u.UID {
			return 0, store.ErrConflict
		}
	}

	s.nextID++
	s.rows[s.nextID] = store.UserRecord{
		ID:        s.nextID,
		UID:       u.UID,
		Name:      u.Name,
		Role:      sql.NullString{String: u.Role, Valid: true},
		Active:    true,
		CreatedAt: time.Now().UTC().Unix(),
	}
	return s.nextID, nil
}

func (s *UserStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, id)
	return nil
}

func (s *UserStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.rows)), nil
}

// SetActive flips the ativo flag of the user with that uid. There is no API
// for this; tests use it to stand in for a direct database edit.
func (s *UserStore) SetActive(uid string, active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range s.rows {
		if r.UID == uid {
			r.Active = active
			s.rows[id] = r
			return true
		}
	}
	return false
}
