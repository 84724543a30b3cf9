package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tugalex-backend/internal/adapter/csvsource"
	"github.com/heartmarshall/tugalex-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tugalex-backend/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/tugalex-backend/internal/config"
	"github.com/heartmarshall/tugalex-backend/internal/dataset"
)

// Dataset is an opened lexicon source together with its store. Pool is set
// only for the postgres source.
type Dataset struct {
	Store *dataset.Store
	Pool  *pgxpool.Pool
}

// Close releases the database pool, if any.
func (d *Dataset) Close() {
	if d.Pool != nil {
		d.Pool.Close()
	}
}

// CSVFiles maps the configured file names onto csvsource.Files.
func CSVFiles(cfg config.DatasetConfig) csvsource.Files {
	return csvsource.Files{
		Lexicon:       cfg.LexiconFile,
		OrthographyPT: cfg.OrthographyPTFile,
		OrthographyBR: cfg.OrthographyBRFile,
		Homographs:    cfg.HomographsFile,
		Archaisms:     cfg.ArchaismsFile,
	}
}

// NewCSVSource opens the CSV tables under cfg.Dir.
func NewCSVSource(cfg config.DatasetConfig, logger *slog.Logger) *csvsource.Source {
	return csvsource.NewDir(logger, cfg.Dir, CSVFiles(cfg))
}

// OpenDataset builds the source selected by cfg.Dataset.Source and wraps it
// in a dataset.Store. Nothing is loaded yet.
func OpenDataset(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dataset, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Dataset.Source)) {
	case config.SourceCSV:
		logger.Info("dataset source",
			slog.String("source", config.SourceCSV),
			slog.String("lexicon", cfg.Dataset.Path(cfg.Dataset.LexiconFile)),
		)
		src := NewCSVSource(cfg.Dataset, logger)
		return &Dataset{Store: dataset.NewStore(logger, src)}, nil

	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		logger.Info("dataset source", slog.String("source", config.SourcePostgres))
		repo := lexicon.New(pool, postgres.NewTxManager(pool))
		return &Dataset{Store: dataset.NewStore(logger, repo), Pool: pool}, nil

	default:
		return nil, fmt.Errorf("open dataset: unknown source %q", cfg.Dataset.Source)
	}
}
