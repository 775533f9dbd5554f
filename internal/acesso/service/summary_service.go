package service

import (
	"context"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
	"github.com/BrandonDHaskell/acesso/server/internal/acesso/types"
)

// SummaryService reads the row counts for the index page.
type SummaryService struct {
	users    store.UserStore
	machines store.MachineStore
	events   store.EventStore
}

func NewSummaryService(users store.UserStore, machines store.MachineStore, events store.EventStore) *SummaryService {
	return &SummaryService{users: users, machines: machines, events: events}
}

func (s *SummaryService) Summary(ctx context.Context) (types.Summary, error) {
	var (
		sum types.Summary
		err error
	)
	if sum.Users, err = s.users.Count(ctx); err != nil {
		return types.Summary{}, err
	}
	if sum.Machines, err = s.machines.Count(ctx); err != nil {
		return types.Summary{}, err
	}
	if sum.Events, err = s.events.Count(ctx); err != nil {
		return types.Summary{}, err
	}
	return sum, nil
}
