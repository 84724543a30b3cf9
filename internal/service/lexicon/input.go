package lexicon

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

const MaxWordLength = 200

// LookupInput identifies one word in one region. An empty PartOfSpeech asks
// for the default entry.
type LookupInput struct {
	Word         string
	Region       string
	PartOfSpeech string
}

type lookupQuery struct {
	word   string
	region domain.Region
	pos    domain.PartOfSpeech
}

// parse validates the input. The region is checked first so that an unknown
// region is always reported as domain.ErrInvalidRegion.
func (i LookupInput) parse() (lookupQuery, error) {
	region, err := domain.ParseRegion(i.Region)
	if err != nil {
		return lookupQuery{}, err
	}

	var pos domain.PartOfSpeech
	if strings.TrimSpace(i.PartOfSpeech) != "" {
		pos, err = domain.ParsePartOfSpeech(i.PartOfSpeech)
		if err != nil {
			return lookupQuery{}, err
		}
	}

	word, err := validateWord(i.Word)
	if err != nil {
		return lookupQuery{}, err
	}

	return lookupQuery{word: word, region: region, pos: pos}, nil
}

func validateWord(w string) (string, error) {
	word := strings.TrimSpace(w)
	if word == "" {
		return "", domain.NewValidationError("word", "required")
	}
	if len(word) > MaxWordLength {
		return "", domain.NewValidationError("word", fmt.Sprintf("max %d bytes", MaxWordLength))
	}
	return word, nil
}
