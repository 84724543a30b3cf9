package domain

import (
	"fmt"
	"strings"
)

// PartOfSpeech is a Universal Dependencies part-of-speech tag.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechProperNoun   PartOfSpeech = "PROPN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAuxiliary    PartOfSpeech = "AUX"
	PartOfSpeechAdjective    PartOfSpeech = "ADJ"
	PartOfSpeechAdverb       PartOfSpeech = "ADV"
	PartOfSpeechPronoun      PartOfSpeech = "PRON"
	PartOfSpeechDeterminer   PartOfSpeech = "DET"
	PartOfSpeechAdposition   PartOfSpeech = "ADP"
	PartOfSpeechCoordConj    PartOfSpeech = "CCONJ"
	PartOfSpeechSubordConj   PartOfSpeech = "SCONJ"
	PartOfSpeechNumeral      PartOfSpeech = "NUM"
	PartOfSpeechInterjection PartOfSpeech = "INTJ"
	PartOfSpeechParticle     PartOfSpeech = "PART"
	PartOfSpeechPunctuation  PartOfSpeech = "PUNCT"
	PartOfSpeechSymbol       PartOfSpeech = "SYM"
	PartOfSpeechOther        PartOfSpeech = "X"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechProperNoun, PartOfSpeechVerb, PartOfSpeechAuxiliary,
		PartOfSpeechAdjective, PartOfSpeechAdverb, PartOfSpeechPronoun, PartOfSpeechDeterminer,
		PartOfSpeechAdposition, PartOfSpeechCoordConj, PartOfSpeechSubordConj, PartOfSpeechNumeral,
		PartOfSpeechInterjection, PartOfSpeechParticle, PartOfSpeechPunctuation, PartOfSpeechSymbol,
		PartOfSpeechOther:
		return true
	}
	return false
}

// posAliases maps lowercase long-form and dictionary-style tags to UD tags.
var posAliases = map[string]PartOfSpeech{
	"noun":         PartOfSpeechNoun,
	"name":         PartOfSpeechProperNoun,
	"proper noun":  PartOfSpeechProperNoun,
	"verb":         PartOfSpeechVerb,
	"auxiliary":    PartOfSpeechAuxiliary,
	"adj":          PartOfSpeechAdjective,
	"adjective":    PartOfSpeechAdjective,
	"adv":          PartOfSpeechAdverb,
	"adverb":       PartOfSpeechAdverb,
	"pron":         PartOfSpeechPronoun,
	"pronoun":      PartOfSpeechPronoun,
	"det":          PartOfSpeechDeterminer,
	"article":      PartOfSpeechDeterminer,
	"determiner":   PartOfSpeechDeterminer,
	"prep":         PartOfSpeechAdposition,
	"preposition":  PartOfSpeechAdposition,
	"conj":         PartOfSpeechCoordConj,
	"conjunction":  PartOfSpeechCoordConj,
	"num":          PartOfSpeechNumeral,
	"numeral":      PartOfSpeechNumeral,
	"intj":         PartOfSpeechInterjection,
	"interjection": PartOfSpeechInterjection,
	"particle":     PartOfSpeechParticle,
	"symbol":       PartOfSpeechSymbol,
	"punctuation":  PartOfSpeechPunctuation,
}

// ParsePartOfSpeech converts a tag to a PartOfSpeech. UD tags match
// case-insensitively; common long-form names are accepted as aliases.
func ParsePartOfSpeech(tag string) (PartOfSpeech, error) {
	t := strings.TrimSpace(tag)
	if p := PartOfSpeech(strings.ToUpper(t)); p.IsValid() {
		return p, nil
	}
	if p, ok := posAliases[strings.ToLower(t)]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPOS, tag)
}
