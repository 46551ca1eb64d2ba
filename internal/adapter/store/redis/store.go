package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultKey = "codetime:store"
	// UpdatesChannel receives the name of every field written.
	UpdatesChannel = "codetime:store:updates"

	connectionTimeout = 5 * time.Second
)

// ErrEmptyAddress is returned when the Redis address is not configured.
var ErrEmptyAddress = errors.New("redis address is required")

type Config struct {
	Address  string
	Password string
	DB       int
}

// Store keeps chart fields in one Redis hash.
type Store struct {
	client redis.UniversalClient
	key    string
	log    *zap.Logger
}

// NewClient connects and pings Redis.
func NewClient(cfg Config) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, ErrEmptyAddress
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func New(client redis.UniversalClient, log *zap.Logger) *Store {
	return &Store{client: client, key: DefaultKey, log: log}
}

func (s *Store) put(ctx context.Context, field entity.Field, value string) error {
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.key, string(field), value)
	pipe.Publish(ctx, UpdatesChannel, string(field))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write %s: %w", field, err)
	}
	return nil
}

// SetLoading implements service.ChartWriter
func (s *Store) SetLoading(ctx context.Context, loading bool) error {
	return s.put(ctx, entity.FieldLoading, strconv.FormatBool(loading))
}

// PutChart implements service.ChartWriter
func (s *Store) PutChart(ctx context.Context, field entity.Field, cfg entity.ChartConfig) error {
	b, err := sonic.MarshalString(cfg)
	if err != nil {
		return err
	}
	return s.put(ctx, field, b)
}

// Snapshot implements service.ChartReader
func (s *Store) Snapshot(ctx context.Context) (entity.Snapshot, error) {
	all, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return entity.Snapshot{}, err
	}
	snap := entity.Snapshot{Charts: make(map[entity.Field]json.RawMessage, len(all))}
	for k, v := range all {
		if entity.Field(k) == entity.FieldLoading {
			snap.Loading, _ = strconv.ParseBool(v)
			continue
		}
		snap.Charts[entity.Field(k)] = json.RawMessage(v)
	}
	return snap, nil
}

func (s *Store) Close() error { return s.client.Close() }
