package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/tugalex-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tugalex-backend/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/tugalex-backend/internal/app"
	"github.com/heartmarshall/tugalex-backend/internal/dataset"
)

type importView struct {
	Lexicon     int64          `json:"lexicon"     yaml:"lexicon"`
	Orthography int64          `json:"orthography" yaml:"orthography"`
	Homographs  int64          `json:"homographs"  yaml:"homographs"`
	Archaisms   int64          `json:"archaisms"   yaml:"archaisms"`
	Regions     map[string]int `json:"regions"     yaml:"regions"`
	Duration    string         `json:"duration"    yaml:"duration"`
}

func (c *cli) openPool(ctx context.Context) (*pgxpool.Pool, error) {
	if c.cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database DSN is required (set DATABASE_DSN or --dsn)")
	}
	return postgres.NewPool(ctx, c.cfg.Database)
}

func migrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := c.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			return postgres.Migrate(cmd.Context(), pool, c.logger)
		},
	}
}

func importCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the PostgreSQL tables with the CSV dataset",
		Long: `Read every table from the CSV directory (--data-dir) and replace the
contents of the PostgreSQL tables in a single transaction. Readers of the
database see either the old dataset or the new one, never a mix.`,
		Example: `  tugalex import --data-dir ./data --dsn postgres://localhost/tugalex --migrate`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			withMigrate, _ := cmd.Flags().GetBool("migrate")

			start := time.Now()
			tables, err := dataset.ReadAll(ctx, app.NewCSVSource(c.cfg.Dataset, c.logger))
			if err != nil {
				return fmt.Errorf("read csv dataset: %w", err)
			}
			c.logger.Info("csv dataset read",
				slog.Int("lexicon", len(tables.Lexicon)),
				slog.Int("orthography", len(tables.Orthography)),
				slog.Int("homographs", len(tables.Homographs)),
				slog.Int("archaisms", len(tables.Archaisms)),
			)
			if bad := dataset.NonIPARows(tables.Lexicon); len(bad) > 0 {
				c.logger.Warn("importing lexicon rows without IPA symbols",
					slog.Int("rows", len(bad)),
					slog.String("first_word", bad[0].Word),
				)
			}

			pool, err := c.openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if withMigrate {
				if err := postgres.Migrate(ctx, pool, c.logger); err != nil {
					return err
				}
			}

			repo := lexicon.New(pool, postgres.NewTxManager(pool))
			res, err := repo.ReplaceAll(ctx, tables)
			if err != nil {
				return fmt.Errorf("import dataset: %w", err)
			}
			counts, err := repo.CountByRegion(ctx)
			if err != nil {
				return fmt.Errorf("count imported rows: %w", err)
			}
			regions := make(map[string]int, len(counts))
			for r, n := range counts {
				regions[r.ISO()] = n
			}

			return c.render(cmd.OutOrStdout(), importView{
				Lexicon:     res.Lexicon,
				Orthography: res.Orthography,
				Homographs:  res.Homographs,
				Archaisms:   res.Archaisms,
				Regions:     regions,
				Duration:    time.Since(start).Round(time.Millisecond).String(),
			})
		},
	}
	cmd.Flags().Bool("migrate", false, "Apply pending migrations before importing")
	return cmd
}
