package service

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store"
	"github.com/BrandonDHaskell/acesso/server/internal/acesso/types"
	"github.com/BrandonDHaskell/acesso/server/internal/metrics"
)

const (
	// DefaultRecentLimit is used when the caller gives no usable limit.
	DefaultRecentLimit = 50

	// DefaultMaxRecentLimit caps a single history read.
	DefaultMaxRecentLimit = 1000

	maxEventLabelLen = 32
)

// EventLogConfig holds the parameters for NewEventLogService.
type EventLogConfig struct {
	// MaxRecentLimit caps Recent. Zero means DefaultMaxRecentLimit;
	// a negative value disables the cap.
	MaxRecentLimit int
}

// EventLogService appends terminal-reported access events and serves the
// recent history. Events are accepted for any machine or uid, known or not.
type EventLogService struct {
	events   store.EventStore
	maxLimit int
	logger   *zap.Logger
}

func NewEventLogService(es store.EventStore, cfg EventLogConfig, logger *zap.Logger) *EventLogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	maxLimit := cfg.MaxRecentLimit
	if maxLimit == 0 {
		maxLimit = DefaultMaxRecentLimit
	}
	return &EventLogService{events: es, maxLimit: maxLimit, logger: logger.Named("eventlog")}
}

func (s *EventLogService) Append(ctx context.Context, req types.LogEventRequest) (int64, error) {
	machineID := strings.TrimSpace(req.MachineID)
	uid := strings.TrimSpace(req.UID)
	kind := strings.TrimSpace(req.Event)
	if machineID == "" || uid == "" || kind == "" {
		return 0, ErrEventFieldsRequired
	}

	rec := store.EventRecord{
		Timestamp: time.Now().UTC().Unix(),
		MachineID: machineID,
		UID:       uid,
		Kind:      kind,
		RSSI:      intColumn(req.RSSI),
		Duration:  intColumn(req.Duration),
	}
	if req.Timestamp != nil {
		rec.Timestamp = *req.Timestamp
	}
	if req.UserName != nil {
		rec.UserName = sql.NullString{String: *req.UserName, Valid: true}
	}

	id, err := s.events.Append(ctx, rec)
	if err != nil {
		return 0, err
	}

	metrics.EventsLoggedTotal.WithLabelValues(eventLabel(kind)).Inc()
	s.logger.Info("event logged",
		zap.Int64("id", id),
		zap.String("evento", kind),
		zap.String("machine_id", machineID),
		zap.String("uid", uid),
		zap.String("usuario", rec.UserName.String),
	)
	return id, nil
}

// Recent returns at most limit events, newest first. The limit is resolved
// with ResolveLimit, so zero or less yields an empty slice.
func (s *EventLogService) Recent(ctx context.Context, limit int) ([]types.AccessEvent, error) {
	recs, err := s.events.Recent(ctx, s.ResolveLimit(limit))
	if err != nil {
		return nil, err
	}
	out := make([]types.AccessEvent, 0, len(recs))
	for _, r := range recs {
		out = append(out, eventFromRecord(r))
	}
	return out, nil
}

// ResolveLimit maps a caller-supplied limit onto [0, max]. Negative values
// become 0. Callers with no limit at all pass DefaultRecentLimit.
func (s *EventLogService) ResolveLimit(limit int) int {
	if limit < 0 {
		return 0
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}
	return limit
}

// intColumn stores an omitted field as 0 and an explicit null as NULL.
func intColumn(v types.OptionalInt) sql.NullInt64 {
	if !v.Present {
		return sql.NullInt64{Valid: true}
	}
	return sql.NullInt64{Int64: v.Int64, Valid: v.Valid}
}

// eventLabel bounds the metric label; evento is free-form terminal input.
func eventLabel(kind string) string {
	r := []rune(strings.ToLower(kind))
	if len(r) > maxEventLabelLen {
		r = r[:maxEventLabelLen]
	}
	return string(r)
}
