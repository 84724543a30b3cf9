package lexicon

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

// Wordlist returns the sorted distinct words of a region.
func (s *Service) Wordlist(ctx context.Context, region string) ([]string, error) {
	r, err := domain.ParseRegion(region)
	if err != nil {
		return nil, err
	}

	reg, err := s.data.Regional(ctx)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	return reg.Words(r), nil
}

// IPAMap returns word → phonemes for a region. With a part of speech only
// words having that tag are included; without one every word contributes
// its default entry.
func (s *Service) IPAMap(ctx context.Context, region, pos string) (map[string]string, error) {
	r, err := domain.ParseRegion(region)
	if err != nil {
		return nil, err
	}

	var p domain.PartOfSpeech
	if strings.TrimSpace(pos) != "" {
		if p, err = domain.ParsePartOfSpeech(pos); err != nil {
			return nil, err
		}
	}

	reg, err := s.data.Regional(ctx)
	if err != nil {
		return nil, fmt.Errorf("ipa map: %w", err)
	}
	return reg.IPAMap(r, p), nil
}
