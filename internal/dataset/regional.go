package dataset

import (
	"maps"
	"slices"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

type pronunciation struct {
	syllables []string
	phonemes  string
}

// wordEntries holds every POS-tagged pronunciation of one word.
type wordEntries map[domain.PartOfSpeech]pronunciation

// Regional is the immutable (word, POS, region) → pronunciation table.
// Words are keyed by domain.FoldWord.
type Regional struct {
	words map[domain.Region]map[string]wordEntries
	rows  map[domain.Region]int
}

// BuildRegional indexes lexicon rows and applies the homograph overlay.
//
// A repeated (word, POS, region) row replaces the earlier one. Overlay rows
// without a region apply to Portugal; they replace the phonemes of an existing
// entry or add a new entry that borrows the syllables of another POS of the
// same word. Overlay rows for a word the lexicon lacks are ignored.
func BuildRegional(rows []domain.LexiconRow, overlay []domain.HomographRow) *Regional {
	r := &Regional{
		words: make(map[domain.Region]map[string]wordEntries, len(domain.Regions)),
		rows:  make(map[domain.Region]int, len(domain.Regions)),
	}
	for _, region := range domain.Regions {
		r.words[region] = make(map[string]wordEntries)
	}

	for _, row := range rows {
		words, ok := r.words[row.Region]
		if !ok {
			continue
		}
		key := domain.FoldWord(row.Word)
		if key == "" {
			continue
		}
		r.rows[row.Region]++

		entries := words[key]
		if entries == nil {
			entries = make(wordEntries)
			words[key] = entries
		}
		entries[row.PartOfSpeech] = pronunciation{
			syllables: slices.Clone(row.Syllables),
			phonemes:  row.Phonemes,
		}
	}

	for _, h := range overlay {
		region := h.Region
		if region == "" {
			region = domain.RegionPortugal
		}
		words, ok := r.words[region]
		if !ok {
			continue
		}
		key := domain.FoldWord(h.Word)
		if key == "" {
			continue
		}

		entries := words[key]
		if len(entries) == 0 {
			continue
		}
		p, exists := entries[h.PartOfSpeech]
		if !exists {
			p.syllables = entries.anySyllables()
		}
		p.phonemes = h.Phonemes
		entries[h.PartOfSpeech] = p
	}

	return r
}

// anySyllables returns the syllables of the alphabetically first POS that has them.
func (e wordEntries) anySyllables() []string {
	for _, pos := range e.sortedPOS() {
		if s := e[pos].syllables; len(s) > 0 {
			return s
		}
	}
	return nil
}

func (e wordEntries) sortedPOS() []domain.PartOfSpeech {
	return slices.Sorted(maps.Keys(e))
}

// defaultPOS picks the entry used when the caller gives no part of speech:
// the only entry if there is one, else NOUN if present, else the
// alphabetically first tag.
func (e wordEntries) defaultPOS() (domain.PartOfSpeech, bool) {
	if len(e) == 0 {
		return "", false
	}
	if len(e) > 1 {
		if _, ok := e[domain.PartOfSpeechNoun]; ok {
			return domain.PartOfSpeechNoun, true
		}
	}
	return e.sortedPOS()[0], true
}

// Lookup returns the entry for word in region. An empty pos selects the
// default entry (see defaultPOS).
func (r *Regional) Lookup(region domain.Region, word string, pos domain.PartOfSpeech) (domain.Entry, bool) {
	key := domain.FoldWord(word)
	entries := r.words[region][key]
	if len(entries) == 0 {
		return domain.Entry{}, false
	}

	if pos == "" {
		pos, _ = entries.defaultPOS()
	}
	p, ok := entries[pos]
	if !ok {
		return domain.Entry{}, false
	}

	return domain.Entry{
		Word:         key,
		PartOfSpeech: pos,
		Region:       region,
		Syllables:    slices.Clone(p.syllables),
		Phonemes:     p.phonemes,
	}, true
}

// PartsOfSpeech returns the sorted POS tags recorded for word in region.
func (r *Regional) PartsOfSpeech(region domain.Region, word string) []domain.PartOfSpeech {
	return r.words[region][domain.FoldWord(word)].sortedPOS()
}

// IsHomograph reports whether word has, in some region, at least two POS
// entries with different phoneme strings.
func (r *Regional) IsHomograph(word string) bool {
	key := domain.FoldWord(word)
	for _, region := range domain.Regions {
		entries := r.words[region][key]
		if len(entries) < 2 {
			continue
		}
		var first string
		seen := false
		for _, pos := range entries.sortedPOS() {
			ph := entries[pos].phonemes
			if !seen {
				first, seen = ph, true
				continue
			}
			if ph != first {
				return true
			}
		}
	}
	return false
}

// Phonemes returns every phoneme string recorded for word across regions,
// Portugal first, in region then POS order.
func (r *Regional) Phonemes(word string) []string {
	key := domain.FoldWord(word)
	var out []string
	for _, region := range domain.Regions {
		entries := r.words[region][key]
		for _, pos := range entries.sortedPOS() {
			if ph := entries[pos].phonemes; ph != "" {
				out = append(out, ph)
			}
		}
	}
	return out
}

// Words returns the sorted distinct words of region.
func (r *Regional) Words(region domain.Region) []string {
	return slices.Sorted(maps.Keys(r.words[region]))
}

// IPAMap returns word → phonemes for region. With a POS, only words having
// that POS are included; without one, each word contributes its default entry.
func (r *Regional) IPAMap(region domain.Region, pos domain.PartOfSpeech) map[string]string {
	words := r.words[region]
	out := make(map[string]string, len(words))
	for word, entries := range words {
		p := pos
		if p == "" {
			p, _ = entries.defaultPOS()
		}
		if e, ok := entries[p]; ok {
			out[word] = e.phonemes
		}
	}
	return out
}

// RowCount returns the number of source rows accepted for region.
func (r *Regional) RowCount(region domain.Region) int {
	return r.rows[region]
}
