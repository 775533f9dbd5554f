package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
	"github.com/BrandonDHaskell/acesso/server/internal/acesso/types"
	"github.com/BrandonDHaskell/acesso/server/internal/metrics"
)

// ValidationService answers whether a presented card may be granted access.
// It only reads; terminals report the outcome separately through the event log.
type ValidationService struct {
	users  store.UserStore
	logger *zap.Logger
}

func NewValidationService(users store.UserStore, logger *zap.Logger) *ValidationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ValidationService{users: users, logger: logger.Named("validation")}
}

// Validate reports authorized only for an existing, active user. Every other
// outcome, including an unknown uid, is the same bare rejection.
func (s *ValidationService) Validate(ctx context.Context, uid string) (types.ValidateResponse, error) {
	uid = NormalizeUID(uid)
	if uid == "" {
		s.reject(uid)
		return types.ValidateResponse{Authorized: false}, nil
	}

	rec, err := s.users.GetByUID(ctx, uid)
	if errors.Is(err, store.ErrNotFound) {
		s.reject(uid)
		return types.ValidateResponse{Authorized: false}, nil
	}
	if err != nil {
		return types.ValidateResponse{}, err
	}
	if !rec.Active {
		s.reject(uid)
		return types.ValidateResponse{Authorized: false}, nil
	}

	metrics.ValidationsTotal.WithLabelValues(metrics.ResultAccepted).Inc()
	s.logger.Info("uid accepted", zap.String("uid", uid), zap.String("nome", rec.Name))

	return types.ValidateResponse{
		Authorized: true,
		User: &types.UserSummary{
			UID:  rec.UID,
			Name: rec.Name,
			Role: nullString(rec.Role),
		},
	}, nil
}

func (s *ValidationService) reject(uid string) {
	metrics.ValidationsTotal.WithLabelValues(metrics.ResultRejected).Inc()
	s.logger.Info("uid rejected", zap.String("uid", uid))
}
