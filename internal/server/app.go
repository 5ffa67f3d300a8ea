// Package server assembles the staffscore service: logger, database pool,
// migrations, services and the HTTP server, and runs it until a shutdown
// signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/staffscore/internal/logging"
	"github.com/dmitrijs2005/staffscore/internal/server/auth"
	"github.com/dmitrijs2005/staffscore/internal/server/config"
	"github.com/dmitrijs2005/staffscore/internal/server/metrics"
	"github.com/dmitrijs2005/staffscore/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/staffscore/internal/server/rest"
	"github.com/dmitrijs2005/staffscore/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config      *config.Config
	logger      *logging.ZapLogger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewApp opens the database and builds the logger. Nothing is served yet.
func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.NewZapLogger(c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", c.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(c.DBMaxOpenConns)
	db.SetMaxIdleConns(c.DBMaxIdleConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &App{config: c, logger: logger, db: db, repomanager: repomanager.NewPostgresRepositoryManager()}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// handler builds services and the router over the app's database.
func (app *App) handler() *rest.Handler {
	issuer := auth.NewIssuer([]byte(app.config.SecretKey),
		app.config.AccessTokenValidityDuration, app.config.RefreshTokenValidityDuration)

	return rest.NewHandler(
		services.NewStaffService(app.db, app.repomanager, issuer),
		services.NewLookupService(app.db, app.repomanager),
		services.NewScoreService(app.db, app.repomanager),
		services.NewCatalogService(app.db, app.repomanager),
		app.db,
		metrics.New(),
		app.logger,
	).WithAuthRateLimit(app.config.AuthRateLimit, app.config.AuthRateBurst)
}

// Run pings the database, applies migrations and serves HTTP until ctx is
// cancelled or SIGINT/SIGTERM/SIGQUIT arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.close()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	pctx, pcancel := context.WithTimeout(ctx, 10*time.Second)
	defer pcancel()
	if err := app.db.PingContext(pctx); err != nil {
		return fmt.Errorf("db ping error: %w", err)
	}

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return err
	}

	srv := rest.NewServer(app.config.EndpointAddrHTTP, app.handler().Router(app.config.RequestTimeout), app.logger)
	if err := srv.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server stopped", "err", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}

func (app *App) close() {
	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "err", err)
	}
	_ = app.logger.Sync()
}
