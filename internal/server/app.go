// Package server wires configuration, storage, services and the HTTP API
// into a runnable application with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/folio/internal/logging"
	"github.com/dmitrijs2005/folio/internal/server/config"
	"github.com/dmitrijs2005/folio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/folio/internal/server/rest"
	"github.com/dmitrijs2005/folio/internal/server/services"
	"github.com/dmitrijs2005/folio/internal/server/storage"
)

// MemoryDSN selects the process-local repositories instead of PostgreSQL.
const MemoryDSN = "memory"

// openDB is a seam for tests.
var openDB = func(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	services rest.Services
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)

	if c.DatabaseDSN == MemoryDSN {
		logger.Warn(ctx, "using in-memory storage, data is lost on exit")
		rm = repomanager.NewInMemoryRepositoryManager()
	} else {
		var err error
		db, err = openDB(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store, err := storage.NewS3Store(ctx, c, logger)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("object store init error: %w", err)
	}

	us := services.NewUserService(db, rm, c, logger)
	if err := us.EnsureAdmin(ctx, c.AdminUsername, c.AdminPassword); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("admin seed error: %w", err)
	}

	svc := rest.Services{
		Users:       us,
		About:       services.NewAboutService(db, rm, store, logger),
		Contact:     services.NewContactService(db, rm, logger),
		Experiences: services.NewExperienceService(db, rm, logger),
		Skills:      services.NewSkillService(db, rm, logger),
		Projects:    services.NewProjectService(db, rm, store, logger),
	}

	return &App{config: c, logger: logger, db: db, services: svc}, nil
}

func closeDB(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewHTTPServer(app.config, app.logger, app.services)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives or the server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "environment", app.config.Environment)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	closeDB(app.db)
	app.logger.Info(context.WithoutCancel(ctx), "App stopped")
}
