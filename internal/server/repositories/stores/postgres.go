package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/staffscore/internal/common"
	"github.com/dmitrijs2005/staffscore/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Countries(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT country FROM stores`
	return r.strings(ctx, query)
}

func (r *PostgresRepository) Companies(ctx context.Context, country string) ([]string, error) {
	query :=
		`SELECT DISTINCT f.name FROM franchises f
		 JOIN stores s ON s.franchise_id = f.id
		 WHERE s.country = $1
		 `
	return r.strings(ctx, query, country)
}

func (r *PostgresRepository) Branches(ctx context.Context, country, company string) ([]string, error) {
	query :=
		`SELECT DISTINCT s.branch FROM stores s
		 JOIN franchises f ON f.id = s.franchise_id
		 WHERE s.country = $1 AND f.name = $2
		 `
	return r.strings(ctx, query, country, company)
}

func (r *PostgresRepository) FranchiseIDByName(ctx context.Context, name string) (int64, error) {
	query := `SELECT id FROM franchises WHERE name = $1`
	return r.id(r.db.QueryRowContext(ctx, query, name))
}

func (r *PostgresRepository) FindStoreID(ctx context.Context, franchiseID int64, country, branch string) (int64, error) {
	query :=
		`SELECT id FROM stores
		 WHERE franchise_id = $1 AND country = $2 AND branch = $3
		 ORDER BY id
		 LIMIT 1
		 `
	return r.id(r.db.QueryRowContext(ctx, query, franchiseID, country, branch))
}

func (r *PostgresRepository) id(row *sql.Row) (int64, error) {
	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// strings runs a single-column query. The result is never nil.
func (r *PostgresRepository) strings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
