package lexicon

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/tugalex-backend/internal/dataset"
	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

// Insights bundles every derived fact about one word in one region.
type Insights struct {
	Word          string
	Region        domain.Region
	Homograph     bool
	ModernForm    string   // set when Word is an archaism
	Agreement     []string // AO1990 spellings when Word predates the agreement
	SilentLetter  bool
	VoicedU       bool
	PartsOfSpeech []domain.PartOfSpeech
}

// Insights runs every insight query for word.
func (s *Service) Insights(ctx context.Context, word, region string) (Insights, error) {
	r, err := domain.ParseRegion(region)
	if err != nil {
		return Insights{}, err
	}
	w, err := validateWord(word)
	if err != nil {
		return Insights{}, err
	}

	out := Insights{Word: domain.FoldWord(w), Region: r}
	if out.Homograph, err = s.IsHomograph(ctx, w); err != nil {
		return Insights{}, err
	}
	if out.ModernForm, _, err = s.Archaic(ctx, w); err != nil {
		return Insights{}, err
	}
	orth, err := s.data.Orthography(ctx)
	if err != nil {
		return Insights{}, fmt.Errorf("insights: %w", err)
	}
	out.Agreement = orth.ModernForms(r.Variant(), w)
	if out.SilentLetter, err = s.HasSilentLetter(ctx, w, region); err != nil {
		return Insights{}, err
	}
	if out.VoicedU, err = s.HasVoicedU(ctx, w); err != nil {
		return Insights{}, err
	}
	if out.PartsOfSpeech, err = s.PossiblePOS(ctx, w, region); err != nil {
		return Insights{}, err
	}
	return out, nil
}

// IsHomograph reports whether word has, in some region, two parts of speech
// pronounced differently.
func (s *Service) IsHomograph(ctx context.Context, word string) (bool, error) {
	w, err := validateWord(word)
	if err != nil {
		return false, err
	}
	reg, err := s.data.Regional(ctx)
	if err != nil {
		return false, fmt.Errorf("is homograph: %w", err)
	}
	return reg.IsHomograph(w), nil
}

// Archaic returns the modern form of an archaic spelling.
func (s *Service) Archaic(ctx context.Context, word string) (string, bool, error) {
	w, err := validateWord(word)
	if err != nil {
		return "", false, err
	}
	arch, err := s.data.Archaisms(ctx)
	if err != nil {
		return "", false, fmt.Errorf("archaic: %w", err)
	}
	modern, ok := arch.Modern(w)
	return modern, ok, nil
}

// PossiblePOS returns the sorted part-of-speech tags recorded for word in
// region, following the archaism table when the word itself is absent.
func (s *Service) PossiblePOS(ctx context.Context, word, region string) ([]domain.PartOfSpeech, error) {
	r, err := domain.ParseRegion(region)
	if err != nil {
		return nil, err
	}
	w, err := validateWord(word)
	if err != nil {
		return nil, err
	}

	reg, err := s.data.Regional(ctx)
	if err != nil {
		return nil, fmt.Errorf("possible pos: %w", err)
	}
	if tags := reg.PartsOfSpeech(r, w); len(tags) > 0 {
		return tags, nil
	}

	arch, err := s.data.Archaisms(ctx)
	if err != nil {
		return nil, fmt.Errorf("possible pos: %w", err)
	}
	if modern, ok := arch.Modern(w); ok {
		return reg.PartsOfSpeech(r, modern), nil
	}
	return nil, nil
}

// HasSilentLetter reports whether word carries a mute "p" or "c" before
// c, ç or t. The word may be given in either spelling; it is paired with its
// counterpart through the region's agreement table. A consonant the modern
// spelling dropped is silent. A consonant it kept is silent when none of the
// region's transcriptions of the word pronounce the cluster.
func (s *Service) HasSilentLetter(ctx context.Context, word, region string) (bool, error) {
	r, err := domain.ParseRegion(region)
	if err != nil {
		return false, err
	}
	w, err := validateWord(word)
	if err != nil {
		return false, err
	}

	orth, err := s.data.Orthography(ctx)
	if err != nil {
		return false, fmt.Errorf("has silent letter: %w", err)
	}

	v := r.Variant()
	old, modern := domain.FoldWord(w), domain.FoldWord(w)
	if m, ok := orth.Modern(v, w); ok {
		modern = domain.FoldWord(m)
	} else if o, ok := orth.Old(v, w); ok {
		old = domain.FoldWord(o)
	}

	clusters := mutableClusters(old)
	if len(clusters) == 0 {
		return false, nil
	}

	var kept []cluster
	for _, c := range clusters {
		if strings.Count(modern, c.letters) < strings.Count(old, c.letters) {
			return true, nil
		}
		kept = append(kept, c)
	}

	reg, err := s.data.Regional(ctx)
	if err != nil {
		return false, fmt.Errorf("has silent letter: %w", err)
	}
	phonemes := regionPhonemes(reg, r, modern, old)
	if len(phonemes) == 0 {
		return false, nil
	}
	for _, c := range kept {
		pronounced := false
		for _, ph := range phonemes {
			if c.pronounced(stripProsody(ph)) {
				pronounced = true
				break
			}
		}
		if !pronounced {
			return true, nil
		}
	}
	return false, nil
}

// HasVoicedU reports whether the "u" of a gue/gui/que/qui cluster in word is
// pronounced: the word is, or was before the agreement, spelled with a
// trema, or some region transcribes the cluster as /ɡw/ or /kw/ before a
// front vowel.
func (s *Service) HasVoicedU(ctx context.Context, word string) (bool, error) {
	w, err := validateWord(word)
	if err != nil {
		return false, err
	}
	key := domain.FoldWord(w)
	if hasTremaCluster(key) {
		return true, nil
	}

	orth, err := s.data.Orthography(ctx)
	if err != nil {
		return false, fmt.Errorf("has voiced u: %w", err)
	}
	if old, ok := orth.Old(domain.VariantBR, key); ok && hasTremaCluster(domain.FoldWord(old)) {
		return true, nil
	}

	if !hasUCluster(key) {
		return false, nil
	}
	reg, err := s.data.Regional(ctx)
	if err != nil {
		return false, fmt.Errorf("has voiced u: %w", err)
	}
	for _, ph := range reg.Phonemes(key) {
		if hasLabializedVelar(ph) {
			return true, nil
		}
	}
	return false, nil
}

// cluster is a written consonant pair and the phones it spells when the
// first consonant is pronounced.
type cluster struct {
	letters string
	first   rune
	second  rune
}

// pronounced reports whether ph has the first phone followed by the second,
// either directly ("ˈpaktu") or across one epenthetic vowel ("ˈpakitu").
func (c cluster) pronounced(ph string) bool {
	rs := []rune(ph)
	for i, r := range rs {
		if r != c.first || i+1 >= len(rs) {
			continue
		}
		if rs[i+1] == c.second {
			return true
		}
		if i+2 < len(rs) && isVowelPhone(rs[i+1]) && rs[i+2] == c.second {
			return true
		}
	}
	return false
}

func isVowelPhone(r rune) bool {
	return strings.ContainsRune("aeiouɐɛɔɨəɪʊy", r)
}

// mutableClusters finds every "p" or "c" followed by c, ç or t.
func mutableClusters(word string) []cluster {
	rs := []rune(word)
	var out []cluster
	for i := 0; i+1 < len(rs); i++ {
		var first rune
		switch rs[i] {
		case 'p':
			first = 'p'
		case 'c':
			first = 'k'
		default:
			continue
		}

		var second rune
		switch rs[i+1] {
		case 't':
			second = 't'
		case 'ç':
			second = 's'
		case 'c':
			second = 'k'
			if i+2 < len(rs) && isFrontVowelLetter(rs[i+2]) {
				second = 's'
			}
		default:
			continue
		}
		out = append(out, cluster{letters: string(rs[i : i+2]), first: first, second: second})
	}
	return out
}

func regionPhonemes(reg *dataset.Regional, region domain.Region, words ...string) []string {
	var out []string
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		for _, pos := range reg.PartsOfSpeech(region, w) {
			if e, ok := reg.Lookup(region, w, pos); ok && e.Phonemes != "" {
				out = append(out, e.Phonemes)
			}
		}
	}
	return out
}

// stripProsody removes stress marks, syllable boundaries and spaces.
func stripProsody(ph string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'ˈ', 'ˌ', '.', '·', ' ', '\'':
			return -1
		}
		return r
	}, ph)
}

func hasTremaCluster(word string) bool {
	rs := []rune(word)
	for i := 0; i+2 < len(rs); i++ {
		if (rs[i] == 'g' || rs[i] == 'q') && rs[i+1] == 'ü' && isFrontVowelLetter(rs[i+2]) {
			return true
		}
	}
	return false
}

func hasUCluster(word string) bool {
	rs := []rune(word)
	for i := 0; i+2 < len(rs); i++ {
		if (rs[i] == 'g' || rs[i] == 'q') && (rs[i+1] == 'u' || rs[i+1] == 'ü') && isFrontVowelLetter(rs[i+2]) {
			return true
		}
	}
	return false
}

func isFrontVowelLetter(r rune) bool {
	switch r {
	case 'e', 'é', 'ê', 'i', 'í':
		return true
	}
	return false
}

// hasLabializedVelar reports whether ph contains /ɡ/ or /k/ followed by /w/
// or /u/ and a front vowel. Diacritics such as nasal tildes are ignored.
func hasLabializedVelar(ph string) bool {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	bare, _, err := transform.String(t, stripProsody(ph))
	if err != nil {
		bare = stripProsody(ph)
	}

	rs := []rune(bare)
	for i := 0; i+2 < len(rs); i++ {
		switch rs[i] {
		case 'ɡ', 'g', 'k':
		default:
			continue
		}
		switch rs[i+1] {
		case 'w', 'u', 'ʷ':
		default:
			continue
		}
		switch rs[i+2] {
		case 'e', 'ɛ', 'i', 'ɪ', 'ɨ':
			return true
		}
	}
	return false
}
