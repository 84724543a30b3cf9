package lexicon

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

// Get returns the pronunciation entry of a word.
//
// Without a part of speech the default entry is returned: the only entry if
// the word has one, else its NOUN entry, else the entry whose tag sorts
// first. A word missing from the region but listed as an archaism is looked
// up by its modern form and the entry records the requested spelling in
// ResolvedFrom.
func (s *Service) Get(ctx context.Context, input LookupInput) (domain.Entry, error) {
	q, err := input.parse()
	if err != nil {
		return domain.Entry{}, err
	}

	reg, err := s.data.Regional(ctx)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("get entry: %w", err)
	}

	if e, ok := reg.Lookup(q.region, q.word, q.pos); ok {
		return e, nil
	}

	arch, err := s.data.Archaisms(ctx)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	if modern, ok := arch.Modern(q.word); ok {
		if e, ok := reg.Lookup(q.region, modern, q.pos); ok {
			e.ResolvedFrom = domain.FoldWord(q.word)
			s.log.DebugContext(ctx, "resolved archaic spelling",
				slog.String("word", q.word),
				slog.String("modern", e.Word),
			)
			return e, nil
		}
	}

	return domain.Entry{}, fmt.Errorf("get entry %q in %s: %w", q.word, q.region.ISO(), domain.ErrNotFound)
}

// Phonemes returns the IPA transcription of a word.
func (s *Service) Phonemes(ctx context.Context, input LookupInput) (string, error) {
	e, err := s.Get(ctx, input)
	if err != nil {
		return "", err
	}
	return e.Phonemes, nil
}

// Syllables returns the syllable segmentation of a word.
func (s *Service) Syllables(ctx context.Context, input LookupInput) ([]string, error) {
	e, err := s.Get(ctx, input)
	if err != nil {
		return nil, err
	}
	return e.Syllables, nil
}
