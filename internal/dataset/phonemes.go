package dataset

import (
	"strings"

	"github.com/temporal-IPA/tipa/pkg/ipa"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

// NonIPARows returns the rows whose transcription is set but carries no IPA
// symbol at all, which usually means a shifted or mistyped CSV column.
func NonIPARows(rows []domain.LexiconRow) []domain.LexiconRow {
	var out []domain.LexiconRow
	for _, row := range rows {
		ph := strings.TrimSpace(row.Phonemes)
		if ph != "" && !strings.ContainsAny(ph, ipa.Charset) {
			out = append(out, row)
		}
	}
	return out
}
