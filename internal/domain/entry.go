package domain

// Entry is a single lexicon record: one pronunciation of a word for a
// part of speech in a region.
type Entry struct {
	Word         string
	PartOfSpeech PartOfSpeech
	Region       Region
	Syllables    []string
	Phonemes     string

	// ResolvedFrom holds the archaic spelling the caller asked for when the
	// entry was found through the archaism table.
	ResolvedFrom string
}

// LexiconRow is one row of the regional dataset as read from a source.
type LexiconRow struct {
	Word         string
	PartOfSpeech PartOfSpeech
	Region       Region
	Syllables    []string
	Phonemes     string
}

// OrthographyRow maps a pre-agreement spelling to its modern spellings.
// The first element of New is the canonical modern form.
type OrthographyRow struct {
	Variant Variant
	Old     string
	New     []string
}

// HomographRow is a curated pronunciation for a heterophonic homograph.
type HomographRow struct {
	Word         string
	PartOfSpeech PartOfSpeech
	Region       Region
	Phonemes     string
}

// ArchaismRow maps an archaic spelling to its modern form.
type ArchaismRow struct {
	Archaic string
	Modern  string
}

// RegionInfo describes a supported region for listings.
type RegionInfo struct {
	Code    Region
	ISO     string
	Name    string
	Variant Variant
}

// DescribeRegions returns RegionInfo for every supported region.
func DescribeRegions() []RegionInfo {
	out := make([]RegionInfo, 0, len(Regions))
	for _, r := range Regions {
		out = append(out, RegionInfo{Code: r, ISO: r.ISO(), Name: r.Name(), Variant: r.Variant()})
	}
	return out
}
