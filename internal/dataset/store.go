// Package dataset holds the immutable lookup tables behind the lexicon and
// the guarded loader that builds each of them exactly once.
package dataset

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

// Table names used in logs and DatasetLoadError.
const (
	TableLexicon     = "lexicon"
	TableOrthography = "orthography"
	TableHomographs  = "homographs"
	TableArchaisms   = "archaisms"
)

// Source reads raw table rows from backing storage.
// Optional tables (homographs, archaisms) may return an error wrapping
// fs.ErrNotExist; the store then treats them as empty.
type Source interface {
	LexiconRows(ctx context.Context) ([]domain.LexiconRow, error)
	OrthographyRows(ctx context.Context) ([]domain.OrthographyRow, error)
	HomographRows(ctx context.Context) ([]domain.HomographRow, error)
	ArchaismRows(ctx context.Context) ([]domain.ArchaismRow, error)
}

// Stats summarizes the loaded tables.
type Stats struct {
	Rows           map[domain.Region]int `json:"rows"`
	Words          map[domain.Region]int `json:"words"`
	OrthographyPT  int                   `json:"orthographyPT"`
	OrthographyBR  int                   `json:"orthographyBR"`
	ArchaismsCount int                   `json:"archaisms"`
}

// Store builds each table from its Source on first access and keeps it for
// the lifetime of the Store. A failed load is not memoized; the next access
// retries it.
type Store struct {
	log         *slog.Logger
	src         Source
	regional    *Lazy[*Regional]
	orthography *Lazy[*Orthography]
	archaisms   *Lazy[*Archaisms]
}

// NewStore creates a Store reading from src. Nothing is loaded until first use.
func NewStore(logger *slog.Logger, src Source) *Store {
	s := &Store{
		log: logger.With("component", "dataset"),
		src: src,
	}
	s.regional = NewLazy(s.loadRegional)
	s.orthography = NewLazy(s.loadOrthography)
	s.archaisms = NewLazy(s.loadArchaisms)
	return s
}

// Regional returns the regional pronunciation table.
func (s *Store) Regional(ctx context.Context) (*Regional, error) {
	return s.regional.Get(ctx)
}

// Orthography returns the AO1990 spelling table.
func (s *Store) Orthography(ctx context.Context) (*Orthography, error) {
	return s.orthography.Get(ctx)
}

// Archaisms returns the archaism table.
func (s *Store) Archaisms(ctx context.Context) (*Archaisms, error) {
	return s.archaisms.Get(ctx)
}

// Preload loads every table concurrently and returns the first failure.
func (s *Store) Preload(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.Regional(gctx)
		return err
	})
	g.Go(func() error {
		_, err := s.Orthography(gctx)
		return err
	})
	g.Go(func() error {
		_, err := s.Archaisms(gctx)
		return err
	})
	return g.Wait()
}

// Ping reports whether every table is available, loading those that are not.
func (s *Store) Ping(ctx context.Context) error {
	if s.regional.Loaded() && s.orthography.Loaded() && s.archaisms.Loaded() {
		return nil
	}
	return s.Preload(ctx)
}

// Stats loads every table and returns its sizes.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	if err := s.Preload(ctx); err != nil {
		return Stats{}, err
	}
	reg, _ := s.Regional(ctx)
	orth, _ := s.Orthography(ctx)
	arch, _ := s.Archaisms(ctx)

	st := Stats{
		Rows:           make(map[domain.Region]int, len(domain.Regions)),
		Words:          make(map[domain.Region]int, len(domain.Regions)),
		OrthographyPT:  orth.Size(domain.VariantPT),
		OrthographyBR:  orth.Size(domain.VariantBR),
		ArchaismsCount: arch.Len(),
	}
	for _, r := range domain.Regions {
		st.Rows[r] = reg.RowCount(r)
		st.Words[r] = len(reg.words[r])
	}
	return st, nil
}

func (s *Store) loadRegional(ctx context.Context) (*Regional, error) {
	start := time.Now()

	rows, err := s.src.LexiconRows(ctx)
	if err != nil {
		return nil, domain.NewDatasetLoadError(TableLexicon, err)
	}

	overlay, err := s.src.HomographRows(ctx)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewDatasetLoadError(TableHomographs, err)
		}
		s.log.WarnContext(ctx, "optional table missing, continuing without it",
			slog.String("table", TableHomographs),
			slog.String("error", err.Error()),
		)
		overlay = nil
	}

	if bad := NonIPARows(rows); len(bad) > 0 {
		s.log.WarnContext(ctx, "lexicon rows without IPA symbols",
			slog.Int("rows", len(bad)),
			slog.String("first_word", bad[0].Word),
			slog.String("first_region", string(bad[0].Region)),
		)
	}

	reg := BuildRegional(rows, overlay)

	s.log.InfoContext(ctx, "dataset table loaded",
		slog.String("table", TableLexicon),
		slog.Int("rows", len(rows)),
		slog.Int("homographs", len(overlay)),
		slog.Duration("duration", time.Since(start)),
	)
	return reg, nil
}

func (s *Store) loadOrthography(ctx context.Context) (*Orthography, error) {
	start := time.Now()

	rows, err := s.src.OrthographyRows(ctx)
	if err != nil {
		return nil, domain.NewDatasetLoadError(TableOrthography, err)
	}
	o := BuildOrthography(rows)

	s.log.InfoContext(ctx, "dataset table loaded",
		slog.String("table", TableOrthography),
		slog.Int("pt", o.Size(domain.VariantPT)),
		slog.Int("br", o.Size(domain.VariantBR)),
		slog.Duration("duration", time.Since(start)),
	)
	return o, nil
}

func (s *Store) loadArchaisms(ctx context.Context) (*Archaisms, error) {
	rows, err := s.src.ArchaismRows(ctx)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewDatasetLoadError(TableArchaisms, err)
		}
		s.log.WarnContext(ctx, "optional table missing, continuing without it",
			slog.String("table", TableArchaisms),
			slog.String("error", err.Error()),
		)
		rows = nil
	}
	a := BuildArchaisms(rows)

	s.log.InfoContext(ctx, "dataset table loaded",
		slog.String("table", TableArchaisms),
		slog.Int("rows", a.Len()),
	)
	return a, nil
}
