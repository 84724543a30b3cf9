package domain

import (
	"fmt"
	"strings"
)

// Region is a Portuguese-speaking locale with its own lexicon table.
// The value is the internal dataset code.
type Region string

const (
	RegionPortugal   Region = "lbx"
	RegionBrazil     Region = "rjx"
	RegionAngola     Region = "lda"
	RegionMozambique Region = "mpx"
	RegionTimorLeste Region = "dli"
)

// Regions lists every supported region in a stable order.
var Regions = []Region{
	RegionPortugal,
	RegionBrazil,
	RegionAngola,
	RegionMozambique,
	RegionTimorLeste,
}

var regionISO = map[Region]string{
	RegionPortugal:   "pt-PT",
	RegionBrazil:     "pt-BR",
	RegionAngola:     "pt-AO",
	RegionMozambique: "pt-MZ",
	RegionTimorLeste: "pt-TL",
}

var regionNames = map[Region]string{
	RegionPortugal:   "Portugal",
	RegionBrazil:     "Brazil",
	RegionAngola:     "Angola",
	RegionMozambique: "Mozambique",
	RegionTimorLeste: "Timor-Leste",
}

func (r Region) String() string { return string(r) }

func (r Region) IsValid() bool {
	_, ok := regionISO[r]
	return ok
}

// ISO returns the BCP 47 style code, e.g. "pt-PT".
func (r Region) ISO() string { return regionISO[r] }

// Name returns the English country name.
func (r Region) Name() string { return regionNames[r] }

// Variant returns the orthographic variant whose agreement table applies.
// Only Brazil uses the Brazilian table; the other regions follow the European norm.
func (r Region) Variant() Variant {
	if r == RegionBrazil {
		return VariantBR
	}
	return VariantPT
}

// ParseRegion accepts an ISO code ("pt-BR", "pt_br") or an internal code ("rjx").
func ParseRegion(code string) (Region, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	c = strings.ReplaceAll(c, "_", "-")

	if r := Region(c); r.IsValid() {
		return r, nil
	}
	for r, iso := range regionISO {
		if strings.ToLower(iso) == c {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRegion, code)
}

// Variant identifies one of the two orthographic agreement tables.
type Variant string

const (
	VariantPT Variant = "PT"
	VariantBR Variant = "BR"
)

func (v Variant) String() string { return string(v) }

func (v Variant) IsValid() bool {
	return v == VariantPT || v == VariantBR
}
