package orthography

import (
	"testing"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

func mapLookup(m map[string]string) Lookup {
	return func(word string) (string, bool) {
		r, ok := m[domain.FoldWord(word)]
		return r, ok
	}
}

var oldToNew = map[string]string{
	"acção":        "ação",
	"actua":        "atua",
	"director":     "diretor",
	"óptimo":       "ótimo",
	"anti-séptico": "antissético",
	"sector":       "setor",
	"facto":        "facto",
}

func TestRewrite(t *testing.T) {
	t.Parallel()

	lookup := mapLookup(oldToNew)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single word", input: "acção", want: "ação"},
		{name: "unmapped passes through", input: "café", want: "café"},
		{name: "capitalized", input: "Acção", want: "Ação"},
		{name: "all caps", input: "ACÇÃO", want: "AÇÃO"},
		{name: "trailing punctuation", input: "acção.", want: "ação."},
		{name: "surrounding punctuation", input: "(«acção»)!", want: "(«ação»)!"},
		{name: "whitespace preserved", input: "  a\tacção \n\n óptimo  ", want: "  a\tação \n\n ótimo  "},
		{name: "sentence", input: "O Director actua, é óptimo.", want: "O Diretor atua, é ótimo."},
		{name: "hyphenated whole token", input: "anti-séptico", want: "antissético"},
		{name: "hyphenated clitic", input: "Actua-se", want: "Atua-se"},
		{name: "hyphen parts unmapped", input: "guarda-chuva", want: "guarda-chuva"},
		{name: "apostrophe does not split", input: "d'acção", want: "d'acção"},
		{name: "punctuation only", input: "... -- !!", want: "... -- !!"},
		{name: "identity mapping keeps bytes", input: "FACTO", want: "FACTO"},
		{name: "empty", input: "", want: ""},
		{name: "only spaces", input: "   ", want: "   "},
		{name: "decomposed input", input: "acc\u0327a\u0303o", want: "ação"},
		{name: "digits untouched", input: "2024 sector", want: "2024 setor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Rewrite(tt.input, lookup); got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRewrite_RoundTripOnMappedTokens(t *testing.T) {
	t.Parallel()

	newToOld := make(map[string]string, len(oldToNew))
	for o, n := range oldToNew {
		newToOld[domain.FoldWord(n)] = o
	}
	forward := mapLookup(oldToNew)
	backward := mapLookup(newToOld)

	for _, text := range []string{
		"acção",
		"Acção, director; ÓPTIMO!",
		"  O sector actua-se\t(anti-séptico).",
	} {
		normalized := Rewrite(text, forward)
		if got := Rewrite(normalized, backward); got != text {
			t.Errorf("round trip %q -> %q -> %q", text, normalized, got)
		}
	}
}

func TestMatchCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src, repl, want string
	}{
		{"acção", "ação", "ação"},
		{"Acção", "ação", "Ação"},
		{"ACÇÃO", "ação", "AÇÃO"},
		{"A", "à", "À"},
		{"aCÇÃO", "Ação", "Ação"},
		{"Idéia", "ideia", "Ideia"},
		{"egípcio", "Egípcio", "egípcio"},
		{"Egipto", "Egito", "Egito"},
		{"iPhone", "IPhone", "IPhone"},
	}
	for _, tt := range tests {
		if got := MatchCase(tt.src, tt.repl); got != tt.want {
			t.Errorf("MatchCase(%q, %q) = %q, want %q", tt.src, tt.repl, got, tt.want)
		}
	}
}
