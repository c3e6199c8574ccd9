package app

import (
	"context"
	"time"

	accountAPI "slot_backend/internal/api/account"
	gameAPI "slot_backend/internal/api/game"
	symbolAPI "slot_backend/internal/api/symbol"
	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/account_repo"
	"slot_backend/internal/repository/spin_repo"
	"slot_backend/internal/repository/symbol_repo"
	"slot_backend/internal/service"
	"slot_backend/internal/service/slot"
	"slot_backend/internal/service/symbol"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type ServiceProvider struct {
	// Logger
	log *logrus.Logger

	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Repositories
	accountRepo repository.AccountRepository
	symbolRepo  repository.SymbolRepository
	spinRepo    repository.SpinRepository

	// Slot bits
	slotCfg     config.SlotConfig
	rng         slot.Rand
	slotServ    service.SlotService
	accountHand *accountAPI.Handler
	gameHand    *gameAPI.Handler

	// Symbol administration bits
	symbolServ service.SymbolService
	symbolHand *symbolAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Logger() *logrus.Logger {
	if sp.log == nil {
		log := logrus.New()
		log.SetFormatter(&logrus.JSONFormatter{})
		sp.log = log
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) AccountRepository(ctx context.Context) repository.AccountRepository {
	if sp.accountRepo == nil {
		sp.accountRepo = account_repo.NewAccountRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.accountRepo
}

func (sp *ServiceProvider) SymbolRepository(ctx context.Context) repository.SymbolRepository {
	if sp.symbolRepo == nil {
		sp.symbolRepo = symbol_repo.NewSymbolRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.symbolRepo
}

func (sp *ServiceProvider) SpinRepository(ctx context.Context) repository.SpinRepository {
	if sp.spinRepo == nil {
		sp.spinRepo = spin_repo.NewSpinRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.spinRepo
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) Rng() slot.Rand {
	if sp.rng == nil {
		sp.rng = slot.NewLockedRand(time.Now().UnixNano())
	}
	return sp.rng
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(
			sp.AccountRepository(ctx),
			sp.SymbolRepository(ctx),
			sp.SpinRepository(ctx),
			sp.TXManager(ctx),
			sp.Rng(),
			sp.Logger(),
		)
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SymbolService(ctx context.Context) service.SymbolService {
	if sp.symbolServ == nil {
		sp.symbolServ = symbol.NewSymbolService(sp.SymbolRepository(ctx), sp.TXManager(ctx), sp.Logger())
	}
	return sp.symbolServ
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{Serv: sp.SlotService(ctx)})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.SlotService(ctx)})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) SymbolHandler(ctx context.Context) *symbolAPI.Handler {
	if sp.symbolHand == nil {
		sp.symbolHand = symbolAPI.NewHandler(symbolAPI.HandlerDeps{Serv: sp.SymbolService(ctx)})
	}
	return sp.symbolHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Account endpoints
		accountHandler := sp.AccountHandler(ctx)
		r.Route("/accounts", func(rr chi.Router) {
			rr.Post("/", accountHandler.Create)
			rr.Get("/", accountHandler.List)
			rr.Get("/by-name/{name}", accountHandler.GetByName)
			rr.Get("/{accountID}", accountHandler.Get)
			rr.Post("/{accountID}/cash", accountHandler.AddCash)
			rr.Post("/{accountID}/free-spins", accountHandler.GrantFreeSpins)
			rr.Post("/{accountID}/cashout", accountHandler.Cashout)
			rr.Get("/{accountID}/can-play", accountHandler.CanPlay)
		})

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Route("/games", func(rr chi.Router) {
			rr.Post("/{accountID}/spin", gameHandler.Spin)
			rr.Get("/{accountID}/history", gameHandler.History)
		})

		// Symbol administration endpoints
		symbolHandler := sp.SymbolHandler(ctx)
		r.Route("/symbols", func(rr chi.Router) {
			rr.Get("/", symbolHandler.List)
			rr.Put("/{symbolID}", symbolHandler.Update)
		})

		// Prometheus metrics
		r.Handle("/metrics", promhttp.Handler())

		sp.router = r
	}
	return sp.router
}
