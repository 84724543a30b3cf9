package lexicon

import (
	"context"
	"fmt"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
	"github.com/heartmarshall/tugalex-backend/internal/orthography"
)

// Normalize rewrites pre-agreement spellings in text to their AO1990 form
// for the region's orthographic variant.
func (s *Service) Normalize(ctx context.Context, text, region string) (string, error) {
	r, err := domain.ParseRegion(region)
	if err != nil {
		return "", err
	}

	orth, err := s.data.Orthography(ctx)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}

	v := r.Variant()
	return orthography.Rewrite(text, func(word string) (string, bool) {
		return orth.Modern(v, word)
	}), nil
}

// Reverse rewrites AO1990 spellings in text back to the pre-agreement form
// of the region's orthographic variant.
func (s *Service) Reverse(ctx context.Context, text, region string) (string, error) {
	r, err := domain.ParseRegion(region)
	if err != nil {
		return "", err
	}

	orth, err := s.data.Orthography(ctx)
	if err != nil {
		return "", fmt.Errorf("reverse: %w", err)
	}

	v := r.Variant()
	return orthography.Rewrite(text, func(word string) (string, bool) {
		return orth.Old(v, word)
	}), nil
}
