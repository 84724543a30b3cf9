// Package lexicon is the query surface over the loaded dataset tables:
// pronunciation lookups, AO1990 spelling conversion, linguistic insights and
// bulk exports.
package lexicon

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tugalex-backend/internal/dataset"
	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

//go:generate moq -out dataset_store_mock_test.go -pkg lexicon . datasetStore

type datasetStore interface {
	Regional(ctx context.Context) (*dataset.Regional, error)
	Orthography(ctx context.Context) (*dataset.Orthography, error)
	Archaisms(ctx context.Context) (*dataset.Archaisms, error)
	Stats(ctx context.Context) (dataset.Stats, error)
}

// Service answers lexicon queries.
type Service struct {
	data datasetStore
	log  *slog.Logger
}

// NewService creates a new Lexicon service.
func NewService(
	log *slog.Logger,
	data datasetStore,
) *Service {
	return &Service{
		data: data,
		log:  log.With("service", "lexicon"),
	}
}

// Regions lists the supported regions.
func (s *Service) Regions() []domain.RegionInfo {
	return domain.DescribeRegions()
}

// Stats returns the sizes of the loaded tables.
func (s *Service) Stats(ctx context.Context) (dataset.Stats, error) {
	st, err := s.data.Stats(ctx)
	if err != nil {
		return dataset.Stats{}, fmt.Errorf("dataset stats: %w", err)
	}
	return st, nil
}
