package dataset

import (
	"strings"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

// Archaisms is the immutable archaic → modern spelling table.
type Archaisms struct {
	modern map[string]string
}

// BuildArchaisms indexes archaism rows; a repeated archaic form keeps the last row.
func BuildArchaisms(rows []domain.ArchaismRow) *Archaisms {
	a := &Archaisms{modern: make(map[string]string, len(rows))}
	for _, row := range rows {
		key := domain.FoldWord(row.Archaic)
		modern := strings.TrimSpace(row.Modern)
		if key == "" || modern == "" {
			continue
		}
		a.modern[key] = modern
	}
	return a
}

// Modern returns the modern form of an archaic word.
func (a *Archaisms) Modern(word string) (string, bool) {
	m, ok := a.modern[domain.FoldWord(word)]
	return m, ok
}

// Len returns the number of archaic forms.
func (a *Archaisms) Len() int {
	return len(a.modern)
}
