package service

import (
	"context"
	"sync"
	"time"

	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
	"go.uber.org/zap"
)

// Refresher re-runs one aggregation on a fixed interval.
type Refresher struct {
	log      *zap.Logger
	runner   AggregationRunner
	req      entity.AggregationRequest
	every    time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewRefresher(log *zap.Logger, runner AggregationRunner, req entity.AggregationRequest, every time.Duration) *Refresher {
	if every <= 0 {
		every = time.Hour
	}
	return &Refresher{log: log, runner: runner, req: req, every: every, stopCh: make(chan struct{}), done: make(chan struct{})}
}

// Run aggregates once immediately and then on every tick until ctx is done
// or Stop is called. A failed tick is logged and the next one proceeds.
// Run must be called at most once.
func (r *Refresher) Run(ctx context.Context) {
	defer close(r.done)
	select {
	case <-r.stopCh:
		return
	default:
	}
	r.tick(ctx)

	t := time.NewTicker(r.every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-t.C:
			r.tick(ctx)
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	err := r.runner.RunAggregation(ctx, r.req.Identifier, r.req.Mode)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		r.log.Debug("scheduled aggregation interrupted", zap.Error(ctx.Err()))
	default:
		r.log.Warn("scheduled aggregation failed",
			zap.String("identifier", r.req.Identifier),
			zap.String("mode", r.req.Mode.String()),
			zap.Error(err),
		)
	}
}

// Stop prevents further ticks and waits for Run to return or ctx to end.
// An in-flight aggregation is only interrupted by cancelling Run's ctx.
func (r *Refresher) Stop(ctx context.Context) {
	r.stopOnce.Do(func() { close(r.stopCh) })
	select {
	case <-r.done:
	case <-ctx.Done():
		r.log.Warn("refresher did not stop in time", zap.Error(ctx.Err()))
	}
}
