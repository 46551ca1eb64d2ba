package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
)

// Store keeps the chart fields in process. Subscribers are called after
// every write with the field that changed.
type Store struct {
	mu      sync.RWMutex
	loading bool
	charts  map[entity.Field]json.RawMessage
	subs    []func(entity.Field)
}

func New() *Store {
	return &Store{charts: make(map[entity.Field]json.RawMessage)}
}

// Subscribe registers fn for change notifications. fn must not block.
func (s *Store) Subscribe(fn func(entity.Field)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) SetLoading(_ context.Context, loading bool) error {
	s.mu.Lock()
	s.loading = loading
	subs := s.subs
	s.mu.Unlock()
	notify(subs, entity.FieldLoading)
	return nil
}

func (s *Store) PutChart(_ context.Context, field entity.Field, cfg entity.ChartConfig) error {
	b, err := sonic.Marshal(cfg)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.charts[field] = b
	subs := s.subs
	s.mu.Unlock()
	notify(subs, field)
	return nil
}

func (s *Store) Snapshot(_ context.Context) (entity.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	charts := make(map[entity.Field]json.RawMessage, len(s.charts))
	for k, v := range s.charts {
		charts[k] = v
	}
	return entity.Snapshot{Loading: s.loading, Charts: charts}, nil
}

func notify(subs []func(entity.Field), f entity.Field) {
	for _, fn := range subs {
		fn(f)
	}
}
