package lexicon

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-screener/internal/types"
)

// Store reads skill terms from the skill_terms table:
//
//	CREATE TABLE skill_terms (category TEXT NOT NULL, term TEXT NOT NULL, PRIMARY KEY (category, term));
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a connection pool and verifies it
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Source returns a Source for one category of the table
func (s *Store) Source(category types.Category) Source {
	return &postgresSource{store: s, category: category}
}

// Terms returns the terms of a category
func (s *Store) Terms(ctx context.Context, category types.Category) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT term FROM skill_terms WHERE category = $1 ORDER BY term`,
		string(category),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query skill terms: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("failed to scan skill term: %w", err)
		}
		values = append(values, term)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill terms: %w", err)
	}
	return cleanTerms(values), nil
}

// AddTerms inserts terms into a category, ignoring existing ones
func (s *Store) AddTerms(ctx context.Context, category types.Category, terms ...string) error {
	for _, term := range cleanTerms(terms) {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO skill_terms (category, term) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			string(category), term,
		)
		if err != nil {
			return fmt.Errorf("failed to insert skill term %q: %w", term, err)
		}
	}
	return nil
}

type postgresSource struct {
	store    *Store
	category types.Category
}

func (p *postgresSource) Name() string { return "postgres:skill_terms/" + string(p.category) }

func (p *postgresSource) Load(ctx context.Context) ([]string, error) {
	terms, err := p.store.Terms(ctx, p.category)
	if err != nil {
		return nil, &UnavailableError{Source: p.Name(), Cause: err}
	}
	return terms, nil
}
