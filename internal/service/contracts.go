package service

//go:generate mockgen -source=contracts.go -destination=mock_contracts.go -package=service

import (
	"context"

	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
)

// AggregationRunner is what transports and the refresher call.
type AggregationRunner interface {
	RunAggregation(ctx context.Context, identifier string, mode entity.Mode) error
}

// SourceClient resolves identifiers to content URLs and fetches them.
type SourceClient interface {
	ResolveGistURLs(ctx context.Context, id string) ([]string, error)
	ResolveWakaTimeURLs(ctx context.Context, identifier string) ([]string, error)
	// FetchContents preserves order and fails as a batch.
	FetchContents(ctx context.Context, urls []string) ([]entity.RawContent, error)
}

// ChartWriter is the write side of the chart store.
type ChartWriter interface {
	SetLoading(ctx context.Context, loading bool) error
	PutChart(ctx context.Context, field entity.Field, cfg entity.ChartConfig) error
}

// ChartReader is the read side of the chart store.
type ChartReader interface {
	Snapshot(ctx context.Context) (entity.Snapshot, error)
}

// ChartStore is implemented by every store adapter.
type ChartStore interface {
	ChartWriter
	ChartReader
}
