package dataset

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

// Orthography is the immutable AO1990 spelling table for both variants.
// Forward maps a pre-agreement spelling to its modern spellings, reverse maps
// a modern spelling back to the first pre-agreement spelling that produced it.
// Keys are folded with domain.FoldWord; values keep their source casing.
type Orthography struct {
	forward map[domain.Variant]map[string][]string
	reverse map[domain.Variant]map[string]string
}

// BuildOrthography indexes mapping rows in source order.
func BuildOrthography(rows []domain.OrthographyRow) *Orthography {
	o := &Orthography{
		forward: map[domain.Variant]map[string][]string{
			domain.VariantPT: {},
			domain.VariantBR: {},
		},
		reverse: map[domain.Variant]map[string]string{
			domain.VariantPT: {},
			domain.VariantBR: {},
		},
	}

	for _, row := range rows {
		fwd, ok := o.forward[row.Variant]
		if !ok {
			continue
		}
		oldKey := domain.FoldWord(row.Old)
		if oldKey == "" {
			continue
		}

		modern := make([]string, 0, len(row.New))
		for _, n := range row.New {
			n = norm.NFC.String(strings.TrimSpace(n))
			if n != "" {
				modern = append(modern, n)
			}
		}
		if len(modern) == 0 {
			continue
		}
		fwd[oldKey] = modern

		old := norm.NFC.String(strings.TrimSpace(row.Old))
		rev := o.reverse[row.Variant]
		for _, n := range modern {
			newKey := domain.FoldWord(n)
			if _, taken := rev[newKey]; !taken {
				rev[newKey] = old
			}
		}
	}

	return o
}

// Modern returns the canonical modern spelling of a pre-agreement word.
func (o *Orthography) Modern(v domain.Variant, old string) (string, bool) {
	modern, ok := o.forward[v][domain.FoldWord(old)]
	if !ok {
		return "", false
	}
	return modern[0], true
}

// ModernForms returns every modern spelling listed for a pre-agreement word.
func (o *Orthography) ModernForms(v domain.Variant, old string) []string {
	return slices.Clone(o.forward[v][domain.FoldWord(old)])
}

// Old returns the pre-agreement spelling of a modern word.
func (o *Orthography) Old(v domain.Variant, modern string) (string, bool) {
	old, ok := o.reverse[v][domain.FoldWord(modern)]
	return old, ok
}

// Size returns the number of pre-agreement spellings mapped for v.
func (o *Orthography) Size(v domain.Variant) int {
	return len(o.forward[v])
}
