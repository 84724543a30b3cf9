package domain

import "testing"

func TestFoldWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  acordo  ", want: "acordo"},
		{name: "lowercase", input: "Acção", want: "acção"},
		{name: "diacritics preserved", input: "Café", want: "café"},
		{name: "decomposed input composed", input: "cafe\u0301", want: "caf\u00e9"},
		{name: "hyphens preserved", input: "Guarda-Chuva", want: "guarda-chuva"},
		{name: "apostrophes preserved", input: "D'Água", want: "d'água"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "uppercase cedilla", input: "AÇÃO", want: "ação"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FoldWord(tt.input); got != tt.want {
				t.Errorf("FoldWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUpperWord(t *testing.T) {
	t.Parallel()

	if got := UpperWord("ação"); got != "AÇÃO" {
		t.Errorf("UpperWord(ação) = %q", got)
	}
}

func TestLowerWord(t *testing.T) {
	t.Parallel()

	if got := LowerWord("EGIPTO"); got != "egipto" {
		t.Errorf("LowerWord(EGIPTO) = %q", got)
	}
}
