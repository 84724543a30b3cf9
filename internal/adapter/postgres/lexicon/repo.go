// Package lexicon stores the lexicon tables in PostgreSQL. It serves them to
// the dataset store as a row source and replaces them wholesale on import.
package lexicon

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tugalex-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tugalex-backend/internal/dataset"
	"github.com/heartmarshall/tugalex-backend/internal/domain"
)

const (
	tableLexicon     = "lexicon_entries"
	tableOrthography = "orthography_mappings"
	tableHomographs  = "homographs"
	tableArchaisms   = "archaisms"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var _ dataset.Source = (*Repo)(nil)

// Repo provides lexicon table persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new lexicon repository.
func New(pool *pgxpool.Pool, tx *postgres.TxManager) *Repo {
	return &Repo{pool: pool, tx: tx}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// LexiconRows returns every lexicon entry in insertion order.
func (r *Repo) LexiconRows(ctx context.Context) ([]domain.LexiconRow, error) {
	query := psql.
		Select("word", "pos", "region", "syllables", "phonemes").
		From(tableLexicon).
		OrderBy("id")

	return queryRows(ctx, r.q(ctx), query, tableLexicon, func(row pgx.Rows) (domain.LexiconRow, error) {
		var (
			e           domain.LexiconRow
			pos, region string
		)
		if err := row.Scan(&e.Word, &pos, &region, &e.Syllables, &e.Phonemes); err != nil {
			return e, err
		}
		e.PartOfSpeech = domain.PartOfSpeech(pos)
		e.Region = domain.Region(region)
		return e, nil
	})
}

// OrthographyRows returns every spelling mapping, PT rows first, each
// variant in insertion order.
func (r *Repo) OrthographyRows(ctx context.Context) ([]domain.OrthographyRow, error) {
	query := psql.
		Select("variant", "old_spelling", "new_spellings").
		From(tableOrthography).
		OrderBy("variant DESC", "id")

	return queryRows(ctx, r.q(ctx), query, tableOrthography, func(row pgx.Rows) (domain.OrthographyRow, error) {
		var (
			m       domain.OrthographyRow
			variant string
		)
		if err := row.Scan(&variant, &m.Old, &m.New); err != nil {
			return m, err
		}
		m.Variant = domain.Variant(variant)
		return m, nil
	})
}

// HomographRows returns the curated homograph overlay. An empty table is
// not an error.
func (r *Repo) HomographRows(ctx context.Context) ([]domain.HomographRow, error) {
	query := psql.
		Select("word", "pos", "COALESCE(region, '')", "phonemes").
		From(tableHomographs).
		OrderBy("id")

	return queryRows(ctx, r.q(ctx), query, tableHomographs, func(row pgx.Rows) (domain.HomographRow, error) {
		var (
			h           domain.HomographRow
			pos, region string
		)
		if err := row.Scan(&h.Word, &pos, &region, &h.Phonemes); err != nil {
			return h, err
		}
		h.PartOfSpeech = domain.PartOfSpeech(pos)
		h.Region = domain.Region(region)
		return h, nil
	})
}

// ArchaismRows returns the archaism table. An empty table is not an error.
func (r *Repo) ArchaismRows(ctx context.Context) ([]domain.ArchaismRow, error) {
	query := psql.
		Select("archaic", "modern").
		From(tableArchaisms).
		OrderBy("id")

	return queryRows(ctx, r.q(ctx), query, tableArchaisms, func(row pgx.Rows) (domain.ArchaismRow, error) {
		var a domain.ArchaismRow
		err := row.Scan(&a.Archaic, &a.Modern)
		return a, err
	})
}

// CountByRegion returns the number of lexicon rows per region.
func (r *Repo) CountByRegion(ctx context.Context) (map[domain.Region]int, error) {
	query := psql.
		Select("region", "count(*)").
		From(tableLexicon).
		GroupBy("region")

	type regionCount struct {
		region domain.Region
		n      int
	}
	rows, err := queryRows(ctx, r.q(ctx), query, tableLexicon, func(row pgx.Rows) (regionCount, error) {
		var (
			rc     regionCount
			region string
		)
		err := row.Scan(&region, &rc.n)
		rc.region = domain.Region(region)
		return rc, err
	})
	if err != nil {
		return nil, err
	}

	out := make(map[domain.Region]int, len(rows))
	for _, rc := range rows {
		out[rc.region] = rc.n
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// ImportResult reports how many rows ReplaceAll wrote per table.
type ImportResult struct {
	Lexicon     int64
	Orthography int64
	Homographs  int64
	Archaisms   int64
}

// ReplaceAll swaps the content of every table for t in one transaction.
// Readers see either the old tables or the new ones.
func (r *Repo) ReplaceAll(ctx context.Context, t dataset.Tables) (ImportResult, error) {
	var res ImportResult

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := r.q(ctx)

		_, err := q.Exec(ctx, `TRUNCATE lexicon_entries, orthography_mappings, homographs, archaisms RESTART IDENTITY`)
		if err != nil {
			return postgres.MapError(err, "truncate")
		}

		res.Lexicon, err = q.CopyFrom(ctx,
			pgx.Identifier{tableLexicon},
			[]string{"word", "pos", "region", "syllables", "phonemes"},
			pgx.CopyFromSlice(len(t.Lexicon), func(i int) ([]any, error) {
				e := t.Lexicon[i]
				syllables := e.Syllables
				if syllables == nil {
					syllables = []string{}
				}
				return []any{e.Word, string(e.PartOfSpeech), string(e.Region), syllables, e.Phonemes}, nil
			}),
		)
		if err != nil {
			return postgres.MapError(err, tableLexicon)
		}

		res.Orthography, err = q.CopyFrom(ctx,
			pgx.Identifier{tableOrthography},
			[]string{"variant", "old_spelling", "new_spellings"},
			pgx.CopyFromSlice(len(t.Orthography), func(i int) ([]any, error) {
				m := t.Orthography[i]
				return []any{string(m.Variant), m.Old, m.New}, nil
			}),
		)
		if err != nil {
			return postgres.MapError(err, tableOrthography)
		}

		res.Homographs, err = q.CopyFrom(ctx,
			pgx.Identifier{tableHomographs},
			[]string{"word", "pos", "region", "phonemes"},
			pgx.CopyFromSlice(len(t.Homographs), func(i int) ([]any, error) {
				h := t.Homographs[i]
				var region *string
				if h.Region != "" {
					s := string(h.Region)
					region = &s
				}
				return []any{h.Word, string(h.PartOfSpeech), region, h.Phonemes}, nil
			}),
		)
		if err != nil {
			return postgres.MapError(err, tableHomographs)
		}

		res.Archaisms, err = q.CopyFrom(ctx,
			pgx.Identifier{tableArchaisms},
			[]string{"archaic", "modern"},
			pgx.CopyFromSlice(len(t.Archaisms), func(i int) ([]any, error) {
				a := t.Archaisms[i]
				return []any{a.Archaic, a.Modern}, nil
			}),
		)
		if err != nil {
			return postgres.MapError(err, tableArchaisms)
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("replace lexicon tables: %w", err)
	}
	return res, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.pool)
}

func queryRows[T any](
	ctx context.Context,
	q postgres.Querier,
	query squirrel.SelectBuilder,
	table string,
	scan func(pgx.Rows) (T, error),
) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", table, err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, table)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, postgres.MapError(err, table)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, table)
	}
	return out, nil
}
