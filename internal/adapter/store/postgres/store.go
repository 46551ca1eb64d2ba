package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func New(dsn string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool, log: log}, nil
}

func (s *Store) Init(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS chart_store (
	field      TEXT        PRIMARY KEY,
	value      JSONB       NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
	_, err := s.pool.Exec(ctx, ddl)
	return err
}

const upsert = `INSERT INTO chart_store (field, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (field) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

func (s *Store) put(ctx context.Context, field entity.Field, value []byte) error {
	if _, err := s.pool.Exec(ctx, upsert, string(field), value); err != nil {
		return fmt.Errorf("upsert %s: %w", field, err)
	}
	return nil
}

// SetLoading implements service.ChartWriter
func (s *Store) SetLoading(ctx context.Context, loading bool) error {
	return s.put(ctx, entity.FieldLoading, []byte(strconv.FormatBool(loading)))
}

// PutChart implements service.ChartWriter
func (s *Store) PutChart(ctx context.Context, field entity.Field, cfg entity.ChartConfig) error {
	b, err := sonic.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.put(ctx, field, b)
}

// Snapshot implements service.ChartReader
func (s *Store) Snapshot(ctx context.Context) (entity.Snapshot, error) {
	const q = `SELECT field, value FROM chart_store`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return entity.Snapshot{}, err
	}
	defer rows.Close()

	snap := entity.Snapshot{Charts: make(map[entity.Field]json.RawMessage)}
	for rows.Next() {
		var (
			field string
			value []byte
		)
		if err := rows.Scan(&field, &value); err != nil {
			return entity.Snapshot{}, err
		}
		if entity.Field(field) == entity.FieldLoading {
			snap.Loading, _ = strconv.ParseBool(string(value))
			continue
		}
		snap.Charts[entity.Field(field)] = value
	}
	return snap, rows.Err()
}

func (s *Store) Close() { s.pool.Close() }
