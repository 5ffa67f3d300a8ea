// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/staffscore/internal/dbx"
	"github.com/dmitrijs2005/staffscore/internal/server/migrations"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/scores"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/staff"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/stores"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Stores(db dbx.DBTX) stores.Repository {
	return stores.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Staff(db dbx.DBTX) staff.Repository {
	return staff.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Scores(db dbx.DBTX) scores.Repository {
	return scores.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Catalog(db dbx.DBTX) catalog.Repository {
	return catalog.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
