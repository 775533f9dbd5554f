package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BrandonDHaskell/acesso/server/internal/metrics"
)

// StatsRefresher periodically copies the table counts from a SummaryService
// into the acesso_table_rows gauge. It runs as a background goroutine and
// is stopped via its context or the Stop method.
//
// An interval of 0 disables it entirely.
type StatsRefresher struct {
	summary  *SummaryService
	interval time.Duration
	logger   *zap.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// StatsConfig holds the parameters for NewStatsRefresher.
type StatsConfig struct {
	// IntervalSec is how often counts are refreshed. 0 disables the refresher.
	IntervalSec int
}

// NewStatsRefresher creates a refresher but does not start it.
func NewStatsRefresher(summary *SummaryService, cfg StatsConfig, logger *zap.Logger) *StatsRefresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsRefresher{
		summary:  summary,
		interval: time.Duration(cfg.IntervalSec) * time.Second,
		logger:   logger.Named("stats"),
		done:     make(chan struct{}),
	}
}

// Start refreshes once immediately, then on every interval until ctx is
// cancelled or Stop is called.
func (r *StatsRefresher) Start(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Info("stats refresher disabled")
		close(r.done)
		return
	}

	ctx, r.cancel = context.WithCancel(ctx)
	go r.loop(ctx)

	r.logger.Info("stats refresher started", zap.Duration("interval", r.interval))
}

// Stop signals the refresher to exit and waits for it to finish.
func (r *StatsRefresher) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	<-r.done
}

func (r *StatsRefresher) loop(ctx context.Context) {
	defer close(r.done)

	r.Refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Refresh(ctx)
		}
	}
}

// Refresh reads the counts once and updates the gauge. Errors are logged
// and the previous values kept.
func (r *StatsRefresher) Refresh(ctx context.Context) {
	sum, err := r.summary.Summary(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Warn("stats refresh failed", zap.Error(err))
		}
		return
	}
	metrics.TableRows.WithLabelValues("usuarios").Set(float64(sum.Users))
	metrics.TableRows.WithLabelValues("maquinas").Set(float64(sum.Machines))
	metrics.TableRows.WithLabelValues("logs").Set(float64(sum.Events))
}
