package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

// Truncate empties every lexicon table so a test starts from a known state.
// Tests that call it must not run in parallel with other tests of the package.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE lexicon_entries, orthography_mappings, homographs, archaisms RESTART IDENTITY`)
	if err != nil {
		t.Fatalf("testhelper: truncate: %v", err)
	}
}

// SeedLexicon inserts lexicon rows one by one in order.
func SeedLexicon(t *testing.T, pool *pgxpool.Pool, rows []domain.LexiconRow) {
	t.Helper()
	ctx := context.Background()

	for _, r := range rows {
		_, err := pool.Exec(ctx,
			`INSERT INTO lexicon_entries (word, pos, region, syllables, phonemes)
			 VALUES ($1, $2, $3, $4, $5)`,
			r.Word, string(r.PartOfSpeech), string(r.Region), r.Syllables, r.Phonemes,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedLexicon insert %q: %v", r.Word, err)
		}
	}
}

// SeedOrthography inserts orthography rows one by one in order.
func SeedOrthography(t *testing.T, pool *pgxpool.Pool, rows []domain.OrthographyRow) {
	t.Helper()
	ctx := context.Background()

	for _, r := range rows {
		_, err := pool.Exec(ctx,
			`INSERT INTO orthography_mappings (variant, old_spelling, new_spellings)
			 VALUES ($1, $2, $3)`,
			string(r.Variant), r.Old, r.New,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedOrthography insert %q: %v", r.Old, err)
		}
	}
}
