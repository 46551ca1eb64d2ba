package service

import (
	"context"
	"testing"
	"time"

	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// helper: wait with timeout for a signal
func waitCh[T any](t *testing.T, ch <-chan T, d time.Duration) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(d):
		t.Fatalf("timeout waiting for channel")
		return *new(T)
	}
}

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func TestRefresher_RunsImmediatelyAndOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := NewMockAggregationRunner(ctrl)
	req := entity.AggregationRequest{Identifier: "abc", Mode: entity.ModeGist}
	calls := make(chan struct{}, 8)

	runner.EXPECT().
		RunAggregation(gomock.Any(), "abc", entity.ModeGist).
		DoAndReturn(func(context.Context, string, entity.Mode) error {
			notify(calls)
			return nil
		}).
		MinTimes(2)

	r := NewRefresher(zap.NewNop(), runner, req, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	waitCh(t, calls, 300*time.Millisecond)
	waitCh(t, calls, 300*time.Millisecond)

	r.Stop(context.Background())
	waitCh(t, done, 300*time.Millisecond)
}

func TestRefresher_FailedTickKeepsGoing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := NewMockAggregationRunner(ctrl)
	calls := make(chan struct{}, 8)

	gomock.InOrder(
		runner.EXPECT().RunAggregation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string, entity.Mode) error {
				notify(calls)
				return ErrAggregationFailed
			}),
		runner.EXPECT().RunAggregation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string, entity.Mode) error {
				notify(calls)
				return nil
			}).
			AnyTimes(),
	)

	r := NewRefresher(zap.NewNop(), runner, entity.AggregationRequest{Identifier: "x", Mode: entity.ModeWakaTime}, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	waitCh(t, calls, 300*time.Millisecond)
	waitCh(t, calls, 300*time.Millisecond)

	cancel()
	waitCh(t, done, 300*time.Millisecond)
	r.Stop(context.Background())
	r.Stop(context.Background())
}

func TestRefresher_StopWaitsForInFlightRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := NewMockAggregationRunner(ctrl)
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	runner.EXPECT().RunAggregation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, entity.Mode) error {
			notify(started)
			<-release
			return nil
		})

	r := NewRefresher(zap.NewNop(), runner, entity.AggregationRequest{Identifier: "abc", Mode: entity.ModeGist}, time.Hour)
	go r.Run(context.Background())
	waitCh(t, started, 300*time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		r.Stop(context.Background())
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatalf("Stop returned while an aggregation was still running")
	case <-time.After(30 * time.Millisecond):
	}
	close(release)
	waitCh(t, stopped, 300*time.Millisecond)
}

func TestRefresher_StopGivesUpWhenContextEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := NewMockAggregationRunner(ctrl)
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	runner.EXPECT().RunAggregation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, entity.Mode) error {
			notify(started)
			<-release
			return nil
		})

	r := NewRefresher(zap.NewNop(), runner, entity.AggregationRequest{Identifier: "abc", Mode: entity.ModeGist}, time.Hour)
	runDone := make(chan struct{})
	go func() {
		r.Run(context.Background())
		close(runDone)
	}()
	waitCh(t, started, 300*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	stopped := make(chan struct{})
	go func() {
		r.Stop(ctx)
		close(stopped)
	}()
	waitCh(t, stopped, 300*time.Millisecond)

	close(release)
	waitCh(t, runDone, 300*time.Millisecond)
}

func TestRefresher_StopBeforeRunSkipsFirstTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no RunAggregation expectation: any call fails the test
	runner := NewMockAggregationRunner(ctrl)
	r := NewRefresher(zap.NewNop(), runner, entity.AggregationRequest{Identifier: "abc", Mode: entity.ModeGist}, time.Hour)

	stopped := make(chan struct{})
	go func() {
		r.Stop(context.Background())
		close(stopped)
	}()
	r.Run(context.Background())
	waitCh(t, stopped, 300*time.Millisecond)
}

func TestRefresher_InterruptedTickIsNotAWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := NewMockAggregationRunner(ctrl)
	runner.EXPECT().RunAggregation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, entity.Mode) error {
			cancel()
			return ErrAggregationFailed
		})

	r := NewRefresher(zap.New(core), runner, entity.AggregationRequest{Identifier: "abc", Mode: entity.ModeGist}, time.Hour)
	r.Run(ctx)

	if n := logs.FilterLevelExact(zapcore.WarnLevel).Len(); n != 0 {
		t.Fatalf("expected no warnings for a cancelled tick, got %d", n)
	}
	if n := logs.FilterMessage("scheduled aggregation interrupted").Len(); n != 1 {
		t.Fatalf("expected one interrupted entry, got %d", n)
	}
}

func TestRefresher_FailedTickIsAWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	core, logs := observer.New(zapcore.DebugLevel)
	runner := NewMockAggregationRunner(ctrl)
	calls := make(chan struct{}, 1)
	runner.EXPECT().RunAggregation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, entity.Mode) error {
			notify(calls)
			return ErrAggregationFailed
		})

	r := NewRefresher(zap.New(core), runner, entity.AggregationRequest{Identifier: "abc", Mode: entity.ModeGist}, time.Hour)
	go r.Run(context.Background())
	waitCh(t, calls, 300*time.Millisecond)
	r.Stop(context.Background())

	if n := logs.FilterMessage("scheduled aggregation failed").Len(); n != 1 {
		t.Fatalf("expected one warning, got %d", n)
	}
}
