package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"slot_backend/internal/config"
	"slot_backend/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (a *App) initServiceProvider() {
	a.ServiceProvider = newServiceProvider()
}

func (a *App) Run() error {
	a.initServiceProvider()
	log := a.ServiceProvider.Logger()

	err := config.Load(".env")
	if err != nil {
		log.Warnf("error loading .env file: %v", err)
	}

	ctx := context.Background()

	if err := a.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Идемпотентный сидинг таблицы символов
	defaults := a.ServiceProvider.SlotCfg().DefaultSymbols()
	if err := a.ServiceProvider.SymbolService(ctx).EnsureDefaults(ctx, defaults); err != nil {
		return fmt.Errorf("failed to seed symbols: %w", err)
	}

	r := a.ServiceProvider.Router(ctx)

	log.Infof("starting server at %s", a.ServiceProvider.HTTPCfg().Address())
	return http.ListenAndServe(a.ServiceProvider.HTTPCfg().Address(), r)
}

// runMigrations - применяет goose-миграции через database/sql поверх pgx
func (a *App) runMigrations() error {
	db, err := sql.Open("pgx", a.ServiceProvider.PgConfig().DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	db.SetConnMaxLifetime(time.Minute)

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
