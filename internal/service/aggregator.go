package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dayanaadylkhanova/codetime-charts/internal/chart"
	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
	"github.com/dayanaadylkhanova/codetime-charts/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Aggregator runs the fetch, parse, build and store pipeline. Calls are
// independent of each other; concurrent runs race on the store and the
// last write wins.
type Aggregator struct {
	log        *zap.Logger
	source     SourceClient
	store      ChartWriter
	maxBuckets int
	metrics    *metrics.Metrics
}

// NewAggregator builds an Aggregator. maxBuckets <= 0 disables truncation.
func NewAggregator(log *zap.Logger, src SourceClient, store ChartWriter, maxBuckets int, m *metrics.Metrics) *Aggregator {
	return &Aggregator{log: log, source: src, store: store, maxBuckets: maxBuckets, metrics: m}
}

type chartWrite struct {
	field entity.Field
	cfg   entity.ChartConfig
}

// RunAggregation refreshes every chart field for identifier. The loading
// flag is raised for the duration of the call. Any failure is logged with
// its cause and reported as ErrAggregationFailed.
func (a *Aggregator) RunAggregation(ctx context.Context, identifier string, mode entity.Mode) error {
	log := a.log.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("identifier", identifier),
		zap.String("mode", mode.String()),
	)
	start := time.Now()

	release := a.acquireLoading(ctx, log)
	defer release()

	err := a.run(ctx, log, identifier, mode)
	a.metrics.ObserveRun(mode.String(), err == nil, time.Since(start))
	if err != nil {
		log.Error("aggregation failed",
			zap.String("op", opName(err)),
			zap.Error(err),
		)
		return ErrAggregationFailed
	}
	log.Info("aggregation done", zap.Duration("took", time.Since(start)))
	return nil
}

// acquireLoading sets the loading flag and returns its release. Release is
// safe to call more than once and survives a cancelled ctx.
func (a *Aggregator) acquireLoading(ctx context.Context, log *zap.Logger) func() {
	if err := a.store.SetLoading(ctx, true); err != nil {
		log.Warn("set loading flag", zap.Error(err))
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			if err := a.store.SetLoading(context.WithoutCancel(ctx), false); err != nil {
				log.Warn("clear loading flag", zap.Error(err))
			}
		})
	}
}

func (a *Aggregator) run(ctx context.Context, log *zap.Logger, identifier string, mode entity.Mode) error {
	urls, err := a.resolve(ctx, identifier, mode)
	if err != nil {
		return err
	}
	selected := selectURLs(urls, a.maxBuckets)
	log.Debug("urls resolved", zap.Int("resolved", len(urls)), zap.Int("selected", len(selected)))
	if len(selected) == 0 {
		log.Warn("no sources resolved")
	}

	contents, err := a.source.FetchContents(ctx, selected)
	if err != nil {
		return &FetchError{URLs: len(selected), Err: err}
	}
	if len(contents) != len(selected) {
		return &FetchError{URLs: len(selected), Err: fmt.Errorf("got %d contents", len(contents))}
	}
	a.metrics.ObserveBuckets(len(contents))

	// Fetched newest first; charts read oldest to newest.
	contents = reversed(contents)

	bar, err := ParseBarSeries(contents)
	if err != nil {
		return err
	}
	pie, err := ParsePieSeries(ctx, contents)
	if err != nil {
		return err
	}

	writes := []chartWrite{{
		field: entity.FieldProjects,
		cfg:   chart.BuildBarConfig(bar.XAxisData, bar.SeriesData, entity.ProjectsChartTitle),
	}}
	for _, pc := range entity.PieCharts {
		slices, ok := pie[pc.Category]
		if !ok || len(slices) == 0 {
			continue
		}
		writes = append(writes, chartWrite{field: pc.Field, cfg: chart.BuildPieConfig(slices, pc.Title)})
	}

	for _, w := range writes {
		if err := a.store.PutChart(ctx, w.field, w.cfg); err != nil {
			return &StoreError{Field: w.field, Err: err}
		}
		a.metrics.ChartWritten(string(w.field))
	}
	log.Debug("charts written", zap.Int("charts", len(writes)), zap.Int("buckets", len(contents)))
	return nil
}

func (a *Aggregator) resolve(ctx context.Context, identifier string, mode entity.Mode) ([]string, error) {
	var (
		urls []string
		err  error
	)
	switch mode {
	case entity.ModeGist:
		urls, err = a.source.ResolveGistURLs(ctx, identifier)
	case entity.ModeWakaTime:
		urls, err = a.source.ResolveWakaTimeURLs(ctx, identifier)
	default:
		err = errors.New("unsupported mode")
	}
	if err != nil {
		return nil, &ResolutionError{Mode: mode, Identifier: identifier, Err: err}
	}
	return urls, nil
}

// selectURLs reverses the resolved list so the newest source comes first
// and keeps at most max entries.
func selectURLs(urls []string, max int) []string {
	out := reversed(urls)
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func opName(err error) string {
	var (
		re *ResolutionError
		fe *FetchError
		pe *ParseError
		se *StoreError
	)
	switch {
	case errors.As(err, &re):
		return "resolve_urls"
	case errors.As(err, &fe):
		return "fetch_contents"
	case errors.As(err, &pe):
		return "parse"
	case errors.As(err, &se):
		return "store_charts"
	default:
		return "aggregate"
	}
}
