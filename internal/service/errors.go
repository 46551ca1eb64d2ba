package service

import (
	"errors"
	"fmt"

	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
)

// ErrAggregationFailed is the only error RunAggregation returns. The cause is logged.
var ErrAggregationFailed = errors.New("aggregation failed")

// ResolutionError means the identifier could not be resolved to URLs.
type ResolutionError struct {
	Mode       entity.Mode
	Identifier string
	Err        error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s urls for %q: %v", e.Mode, e.Identifier, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// FetchError means the batched content fetch failed.
type FetchError struct {
	URLs int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %d contents: %v", e.URLs, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means a bucket payload has an unrecognizable structure.
type ParseError struct {
	Index int
	URL   string
	Err   error
}

func (e *ParseError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("parse bucket %d (%s): %v", e.Index, e.URL, e.Err)
	}
	return fmt.Sprintf("parse bucket %d: %v", e.Index, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StoreError means a chart could not be written to the store.
type StoreError struct {
	Field entity.Field
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Field, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
