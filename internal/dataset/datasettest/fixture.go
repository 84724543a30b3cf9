// Package datasettest provides a small, hand-checked lexicon shared by tests.
package datasettest

import (
	"github.com/heartmarshall/tugalex-backend/internal/dataset"
	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

const (
	lbx = domain.RegionPortugal
	rjx = domain.RegionBrazil
	lda = domain.RegionAngola

	noun = domain.PartOfSpeechNoun
	verb = domain.PartOfSpeechVerb
	adj  = domain.PartOfSpeechAdjective
	adp  = domain.PartOfSpeechAdposition
)

// BrazilRows is the number of Brazilian rows in Source, all distinct words.
const BrazilRows = 6

// Source returns a fresh StaticSource with every table populated.
func Source() *dataset.StaticSource {
	return &dataset.StaticSource{
		Lexicon:     Lexicon(),
		Orthography: Orthography(),
		Homographs:  Homographs(),
		Archaisms:   Archaisms(),
	}
}

// Lexicon returns the regional rows.
func Lexicon() []domain.LexiconRow {
	return []domain.LexiconRow{
		{Word: "acordo", PartOfSpeech: noun, Region: lbx, Syllables: []string{"a", "cor", "do"}, Phonemes: "ɐˈkoɾdu"},
		{Word: "acordo", PartOfSpeech: verb, Region: lbx, Syllables: []string{"a", "cor", "do"}, Phonemes: "ɐˈkɔɾdu"},
		{Word: "sede", PartOfSpeech: noun, Region: lbx, Syllables: []string{"se", "de"}, Phonemes: "ˈsedɨ"},
		{Word: "colher", PartOfSpeech: noun, Region: lbx, Syllables: []string{"co", "lher"}, Phonemes: "kuˈʎɛɾ"},
		{Word: "colher", PartOfSpeech: verb, Region: lbx, Syllables: []string{"co", "lher"}, Phonemes: "kuˈʎeɾ"},
		{Word: "para", PartOfSpeech: verb, Region: lbx, Syllables: []string{"pa", "ra"}, Phonemes: "ˈpaɾɐ"},
		{Word: "para", PartOfSpeech: adp, Region: lbx, Syllables: []string{"pa", "ra"}, Phonemes: "ˈpɐɾɐ"},
		{Word: "café", PartOfSpeech: noun, Region: lbx, Syllables: []string{"ca", "fé"}, Phonemes: "kɐˈfɛ"},
		{Word: "ação", PartOfSpeech: noun, Region: lbx, Syllables: []string{"a", "ção"}, Phonemes: "aˈsɐ̃w̃"},
		{Word: "ótimo", PartOfSpeech: adj, Region: lbx, Syllables: []string{"ó", "ti", "mo"}, Phonemes: "ˈɔtimu"},
		{Word: "facto", PartOfSpeech: noun, Region: lbx, Syllables: []string{"fac", "to"}, Phonemes: "ˈfaktu"},
		{Word: "receção", PartOfSpeech: noun, Region: lbx, Syllables: []string{"re", "ce", "ção"}, Phonemes: "ʁɨsɛˈsɐ̃w̃"},
		{Word: "perentório", PartOfSpeech: adj, Region: lbx, Syllables: []string{"pe", "ren", "tó", "ri", "o"}, Phonemes: "pɨɾẽˈtɔɾju"},
		{Word: "frequente", PartOfSpeech: adj, Region: lbx, Syllables: []string{"fre", "quen", "te"}, Phonemes: "fɾɨˈkwẽtɨ"},
		{Word: "guerra", PartOfSpeech: noun, Region: lbx, Syllables: []string{"guer", "ra"}, Phonemes: "ˈɡɛʁɐ"},
		{Word: "farmácia", PartOfSpeech: noun, Region: lbx, Syllables: []string{"far", "má", "ci", "a"}, Phonemes: "fɐɾˈmasjɐ"},

		{Word: "acordo", PartOfSpeech: noun, Region: rjx, Syllables: []string{"a", "cor", "do"}, Phonemes: "aˈkoʁdu"},
		{Word: "ação", PartOfSpeech: noun, Region: rjx, Syllables: []string{"a", "ção"}, Phonemes: "aˈsɐ̃w̃"},
		{Word: "frequente", PartOfSpeech: adj, Region: rjx, Syllables: []string{"fre", "quen", "te"}, Phonemes: "fɾeˈkwẽtʃi"},
		{Word: "linguiça", PartOfSpeech: noun, Region: rjx, Syllables: []string{"lin", "gui", "ça"}, Phonemes: "lĩˈɡwisɐ"},
		{Word: "recepção", PartOfSpeech: noun, Region: rjx, Syllables: []string{"re", "cep", "ção"}, Phonemes: "ʁesepˈsɐ̃w̃"},
		{Word: "ótimo", PartOfSpeech: adj, Region: rjx, Syllables: []string{"ó", "ti", "mo"}, Phonemes: "ˈɔtʃimu"},

		{Word: "casa", PartOfSpeech: noun, Region: lda, Syllables: []string{"ca", "sa"}, Phonemes: "ˈkazɐ"},
	}
}

// Orthography returns pre-/post-AO1990 pairs for both variants.
func Orthography() []domain.OrthographyRow {
	pt := domain.VariantPT
	br := domain.VariantBR
	return []domain.OrthographyRow{
		{Variant: pt, Old: "acção", New: []string{"ação"}},
		{Variant: pt, Old: "óptimo", New: []string{"ótimo"}},
		{Variant: pt, Old: "recepção", New: []string{"receção"}},
		{Variant: pt, Old: "peremptório", New: []string{"perentório"}},
		{Variant: pt, Old: "actua", New: []string{"atua"}},
		{Variant: pt, Old: "director", New: []string{"diretor"}},
		{Variant: pt, Old: "sector", New: []string{"setor", "sector"}},

		{Variant: br, Old: "freqüente", New: []string{"frequente"}},
		{Variant: br, Old: "lingüiça", New: []string{"linguiça"}},
		{Variant: br, Old: "idéia", New: []string{"ideia"}},
		{Variant: br, Old: "vôo", New: []string{"voo"}},
	}
}

// Homographs returns the curated overlay rows.
func Homographs() []domain.HomographRow {
	return []domain.HomographRow{
		{Word: "sede", PartOfSpeech: verb, Phonemes: "ˈsɛdɨ"},
	}
}

// Archaisms returns archaic → modern pairs.
func Archaisms() []domain.ArchaismRow {
	return []domain.ArchaismRow{
		{Archaic: "pharmacia", Modern: "farmácia"},
		{Archaic: "asthma", Modern: "asma"},
	}
}

// Store returns a dataset.Store over Source.
func Store() *dataset.Store {
	return dataset.NewStore(Logger(), Source())
}
