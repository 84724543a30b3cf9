package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

// StaticSource serves rows held in memory. A nil optional table reports
// fs.ErrNotExist, like a missing file would.
type StaticSource struct {
	Lexicon     []domain.LexiconRow
	Orthography []domain.OrthographyRow
	Homographs  []domain.HomographRow
	Archaisms   []domain.ArchaismRow
}

func (s *StaticSource) LexiconRows(_ context.Context) ([]domain.LexiconRow, error) {
	return s.Lexicon, nil
}

func (s *StaticSource) OrthographyRows(_ context.Context) ([]domain.OrthographyRow, error) {
	return s.Orthography, nil
}

func (s *StaticSource) HomographRows(_ context.Context) ([]domain.HomographRow, error) {
	if s.Homographs == nil {
		return nil, fmt.Errorf("static %s: %w", TableHomographs, fs.ErrNotExist)
	}
	return s.Homographs, nil
}

func (s *StaticSource) ArchaismRows(_ context.Context) ([]domain.ArchaismRow, error) {
	if s.Archaisms == nil {
		return nil, fmt.Errorf("static %s: %w", TableArchaisms, fs.ErrNotExist)
	}
	return s.Archaisms, nil
}

// Tables holds the raw rows of every table, as read from a Source.
type Tables struct {
	Lexicon     []domain.LexiconRow
	Orthography []domain.OrthographyRow
	Homographs  []domain.HomographRow
	Archaisms   []domain.ArchaismRow
}

// ReadAll reads every table from src. Missing optional tables come back empty.
func ReadAll(ctx context.Context, src Source) (Tables, error) {
	var (
		t   Tables
		err error
	)

	if t.Lexicon, err = src.LexiconRows(ctx); err != nil {
		return Tables{}, domain.NewDatasetLoadError(TableLexicon, err)
	}
	if t.Orthography, err = src.OrthographyRows(ctx); err != nil {
		return Tables{}, domain.NewDatasetLoadError(TableOrthography, err)
	}
	if t.Homographs, err = src.HomographRows(ctx); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Tables{}, domain.NewDatasetLoadError(TableHomographs, err)
	}
	if t.Archaisms, err = src.ArchaismRows(ctx); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Tables{}, domain.NewDatasetLoadError(TableArchaisms, err)
	}
	return t, nil
}
