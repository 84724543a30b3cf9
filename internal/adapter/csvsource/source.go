// Package csvsource reads the lexicon tables from CSV files.
// Pure parsing: file system in, domain rows out. No caching; the dataset
// store decides when to read.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

// Files names the table files inside the source directory.
type Files struct {
	Lexicon       string
	OrthographyPT string
	OrthographyBR string
	Homographs    string
	Archaisms     string
}

// DefaultFiles returns the file names shipped with the dataset.
func DefaultFiles() Files {
	return Files{
		Lexicon:       "regional_dict.csv",
		OrthographyPT: "acordo_ortografico_pt_PT.csv",
		OrthographyBR: "acordo_ortografico_pt_BR.csv",
		Homographs:    "heterophonic_homographs.csv",
		Archaisms:     "archaisms.csv",
	}
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalRows  int
	ParsedRows int
	ShortRows  int
	BadRegion  int
	BadPOS     int
}

// Source reads tables from an fs.FS.
type Source struct {
	log   *slog.Logger
	fsys  fs.FS
	files Files
}

// New creates a Source over fsys.
func New(logger *slog.Logger, fsys fs.FS, files Files) *Source {
	return &Source{
		log:   logger.With("source", "csv"),
		fsys:  fsys,
		files: files,
	}
}

// NewDir creates a Source over a directory on disk.
func NewDir(logger *slog.Logger, dir string, files Files) *Source {
	return New(logger, os.DirFS(dir), files)
}

// LexiconRows parses the regional dictionary.
//
// Columns: id, word, pos, frequency, phonemes, syllables, region. The header
// row is skipped. Phoneme separators "|" become "·"; syllables are split on
// spaces or "|". Rows with an unsupported region or POS are skipped.
func (s *Source) LexiconRows(ctx context.Context) ([]domain.LexiconRow, error) {
	var (
		rows  []domain.LexiconRow
		stats Stats
	)
	err := s.readRecords(s.files.Lexicon, true, func(rec []string) {
		stats.TotalRows++
		if len(rec) < 7 {
			stats.ShortRows++
			return
		}

		region, err := domain.ParseRegion(rec[6])
		if err != nil {
			stats.BadRegion++
			return
		}
		pos, err := domain.ParsePartOfSpeech(rec[2])
		if err != nil {
			stats.BadPOS++
			return
		}
		word := domain.FoldWord(rec[1])
		if word == "" {
			stats.ShortRows++
			return
		}

		stats.ParsedRows++
		rows = append(rows, domain.LexiconRow{
			Word:         word,
			PartOfSpeech: pos,
			Region:       region,
			Syllables:    splitSyllables(rec[5]),
			Phonemes:     strings.ReplaceAll(strings.TrimSpace(rec[4]), "|", "·"),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logStats(ctx, s.files.Lexicon, stats)
	return rows, nil
}

// OrthographyRows parses both agreement tables, PT rows first.
//
// Columns: old spelling, modern spelling. The modern column may hold several
// comma-separated alternatives inside quotes; the first is canonical.
func (s *Source) OrthographyRows(ctx context.Context) ([]domain.OrthographyRow, error) {
	pt, err := s.orthography(ctx, s.files.OrthographyPT, domain.VariantPT)
	if err != nil {
		return nil, err
	}
	br, err := s.orthography(ctx, s.files.OrthographyBR, domain.VariantBR)
	if err != nil {
		return nil, err
	}
	return append(pt, br...), nil
}

func (s *Source) orthography(ctx context.Context, name string, v domain.Variant) ([]domain.OrthographyRow, error) {
	var (
		rows  []domain.OrthographyRow
		stats Stats
		first = true
	)
	err := s.readRecords(name, false, func(rec []string) {
		isFirst := first
		first = false

		stats.TotalRows++
		if len(rec) < 2 {
			stats.ShortRows++
			return
		}
		if isFirst && isHeader(rec[0]) {
			return
		}

		var alternatives []string
		for _, n := range strings.Split(rec[1], ",") {
			if n = strings.TrimSpace(n); n != "" {
				alternatives = append(alternatives, n)
			}
		}
		old := strings.TrimSpace(rec[0])
		if old == "" || len(alternatives) == 0 {
			stats.ShortRows++
			return
		}

		stats.ParsedRows++
		rows = append(rows, domain.OrthographyRow{Variant: v, Old: old, New: alternatives})
	})
	if err != nil {
		return nil, err
	}

	s.logStats(ctx, name, stats)
	return rows, nil
}

// HomographRows parses the curated homograph list.
// Columns: word, pos, phonemes and an optional region (default Portugal).
func (s *Source) HomographRows(ctx context.Context) ([]domain.HomographRow, error) {
	var (
		rows  []domain.HomographRow
		stats Stats
	)
	err := s.readRecords(s.files.Homographs, true, func(rec []string) {
		stats.TotalRows++
		if len(rec) < 3 {
			stats.ShortRows++
			return
		}
		pos, err := domain.ParsePartOfSpeech(rec[1])
		if err != nil {
			stats.BadPOS++
			return
		}
		region := domain.RegionPortugal
		if len(rec) > 3 && strings.TrimSpace(rec[3]) != "" {
			region, err = domain.ParseRegion(rec[3])
			if err != nil {
				stats.BadRegion++
				return
			}
		}

		stats.ParsedRows++
		rows = append(rows, domain.HomographRow{
			Word:         domain.FoldWord(rec[0]),
			PartOfSpeech: pos,
			Region:       region,
			Phonemes:     strings.TrimSpace(rec[2]),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logStats(ctx, s.files.Homographs, stats)
	return rows, nil
}

// ArchaismRows parses the archaism table. Columns: archaic, modern, note.
func (s *Source) ArchaismRows(ctx context.Context) ([]domain.ArchaismRow, error) {
	var (
		rows  []domain.ArchaismRow
		stats Stats
	)
	err := s.readRecords(s.files.Archaisms, true, func(rec []string) {
		stats.TotalRows++
		if len(rec) < 2 {
			stats.ShortRows++
			return
		}
		stats.ParsedRows++
		rows = append(rows, domain.ArchaismRow{
			Archaic: strings.TrimSpace(rec[0]),
			Modern:  strings.TrimSpace(rec[1]),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logStats(ctx, s.files.Archaisms, stats)
	return rows, nil
}

// readRecords streams CSV records of a file to fn. Blank lines are ignored
// by encoding/csv; field counts may vary between rows.
func (s *Source) readRecords(name string, skipHeader bool, fn func(rec []string)) error {
	if name == "" {
		return fmt.Errorf("csv: no file configured: %w", fs.ErrNotExist)
	}

	f, err := s.fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	header := skipHeader
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if header {
			header = false
			continue
		}
		fn(rec)
	}
}

func (s *Source) logStats(ctx context.Context, name string, st Stats) {
	s.log.DebugContext(ctx, "csv table parsed",
		slog.String("file", name),
		slog.Int("total", st.TotalRows),
		slog.Int("parsed", st.ParsedRows),
		slog.Int("short", st.ShortRows),
		slog.Int("bad_region", st.BadRegion),
		slog.Int("bad_pos", st.BadPOS),
	)
}

// splitSyllables splits "a cor do" or "a|cor|do" into syllables.
func splitSyllables(raw string) []string {
	return strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == '|' || r == ' '
	})
}

func isHeader(field string) bool {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "old", "old_word", "old_spelling", "antes":
		return true
	}
	return false
}
