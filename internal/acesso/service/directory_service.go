package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
	"github.com/BrandonDHaskell/acesso/server/internal/acesso/types"
)

// DirectoryService manages registered users and lists the machines
// provisioned at first boot.
type DirectoryService struct {
	users    store.UserStore
	machines store.MachineStore
	logger   *zap.Logger
}

func NewDirectoryService(users store.UserStore, machines store.MachineStore, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{users: users, machines: machines, logger: logger.Named("directory")}
}

func (s *DirectoryService) ListUsers(ctx context.Context) ([]types.User, error) {
	recs, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.User, 0, len(recs))
	for _, r := range recs {
		out = append(out, userFromRecord(r))
	}
	return out, nil
}

// CreateUser registers an active user and returns its id.
func (s *DirectoryService) CreateUser(ctx context.Context, req types.CreateUserRequest) (int64, error) {
	uid := NormalizeUID(req.UID)
	name := strings.TrimSpace(req.Name)
	if uid == "" || name == "" {
		return 0, ErrUIDAndNameRequired
	}

	id, err := s.users.Create(ctx, store.NewUser{
		UID:  uid,
		Name: name,
		Role: strings.TrimSpace(req.Role),
	})
	if errors.Is(err, store.ErrConflict) {
		return 0, ErrUIDConflict
	}
	if err != nil {
		return 0, err
	}

	s.logger.Info("user created", zap.Int64("id", id), zap.String("uid", uid), zap.String("nome", name))
	return id, nil
}

// DeleteUser removes a user by id. Unknown ids succeed silently.
func (s *DirectoryService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int64("id", id))
	return nil
}

func (s *DirectoryService) ListMachines(ctx context.Context) ([]types.Machine, error) {
	recs, err := s.machines.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.Machine, 0, len(recs))
	for _, r := range recs {
		out = append(out, machineFromRecord(r))
	}
	return out, nil
}
