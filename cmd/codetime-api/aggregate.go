package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dayanaadylkhanova/codetime-charts/internal/adapter/store/memory"
	"github.com/dayanaadylkhanova/codetime-charts/internal/app"
	"github.com/dayanaadylkhanova/codetime-charts/internal/entity"
	"github.com/dayanaadylkhanova/codetime-charts/pkg/config"
	"github.com/dayanaadylkhanova/codetime-charts/pkg/logger"
	"github.com/spf13/cobra"
)

func newAggregateCmd() *cobra.Command {
	var (
		mode       string
		maxBuckets int
	)
	cmd := &cobra.Command{
		Use:   "aggregate <gist-id|wakatime-url>",
		Short: "Run one aggregation and print the resulting store as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("can't parse app config: %w", err)
			}
			m, err := entity.ParseMode(mode)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max") {
				cfg.MaxBuckets = maxBuckets
			}

			zl := logger.New(cfg.LogLevel, "console")
			defer func() { _ = zl.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st := memory.New()
			agg := app.NewAggregator(*cfg, zl, st, nil)
			if err := agg.RunAggregation(ctx, args[0], m); err != nil {
				return err
			}
			return printSnapshot(ctx, cmd, st)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(entity.ModeGist), "source mode: gist or wakatime")
	cmd.Flags().IntVarP(&maxBuckets, "max", "n", 0, "maximum number of buckets to fetch (default from MAX_BUCKETS)")
	return cmd
}

func printSnapshot(ctx context.Context, cmd *cobra.Command, st *memory.Store) error {
	snap, err := st.Snapshot(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
