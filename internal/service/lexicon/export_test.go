package lexicon

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tugalex-backend/internal/dataset/datasettest"
	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

func TestWordlist(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	br, err := svc.Wordlist(ctx, "pt-BR")
	require.NoError(t, err)
	assert.Len(t, br, datasettest.BrazilRows)
	assert.True(t, slices.IsSorted(br))
	assert.Contains(t, br, "linguiça")

	pt, err := svc.Wordlist(ctx, "lbx")
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(pt))
	assert.Equal(t, 1, countOf(pt, "acordo"), "words are distinct")

	tl, err := svc.Wordlist(ctx, "dli")
	require.NoError(t, err)
	assert.Empty(t, tl)
}

func TestIPAMap(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	verbs, err := svc.IPAMap(ctx, "lbx", "VERB")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"acordo": "ɐˈkɔɾdu",
		"colher": "kuˈʎeɾ",
		"para":   "ˈpaɾɐ",
		"sede":   "ˈsɛdɨ",
	}, verbs)

	all, err := svc.IPAMap(ctx, "lbx", "")
	require.NoError(t, err)
	assert.Equal(t, "ɐˈkoɾdu", all["acordo"])
	assert.Equal(t, "ˈpɐɾɐ", all["para"])
	assert.Equal(t, "ˈsedɨ", all["sede"])
	assert.Len(t, all, 13)

	_, err = svc.IPAMap(ctx, "lbx", "nounish")
	assert.ErrorIs(t, err, domain.ErrInvalidPOS)
}

func countOf(words []string, w string) int {
	n := 0
	for _, x := range words {
		if x == w {
			n++
		}
	}
	return n
}
