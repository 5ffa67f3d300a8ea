package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/staffscore/internal/dbx"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/scores"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/staff"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/stores"
)

// RepositoryManager vends repositories bound to a database handle, which
// may be the pool itself or a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Stores(db dbx.DBTX) stores.Repository
	Staff(db dbx.DBTX) staff.Repository
	Scores(db dbx.DBTX) scores.Repository
	Catalog(db dbx.DBTX) catalog.Repository
}
