package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/mariner/fueleuledger/internal/adapter/http/handler"
	"github.com/mariner/fueleuledger/internal/adapter/http/middleware"
	"github.com/mariner/fueleuledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	BalanceHandler   *handler.BalanceHandler
	BankingHandler   *handler.BankingHandler
	PoolHandler      *handler.PoolHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           *zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	if cfg.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(*cfg.Logger).Wrap)
	} else {
		r.Use(chimiddleware.Logger)
	}

	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Compliance balances
		r.Route("/balances", func(r chi.Router) {
			r.Post("/compute", cfg.BalanceHandler.Compute)
			r.Get("/", cfg.BalanceHandler.List)
			r.Get("/{vesselID}", cfg.BalanceHandler.Get)
		})

		// Banking
		r.Route("/banking", func(r chi.Router) {
			r.Post("/bank", cfg.BankingHandler.Bank)
			r.Post("/apply", cfg.BankingHandler.Apply)
			r.Get("/{vesselID}/total", cfg.BankingHandler.GetTotal)
		})

		// Pools
		r.Route("/pools", func(r chi.Router) {
			r.Post("/", cfg.PoolHandler.Create)
			r.Get("/", cfg.PoolHandler.List)
			r.Get("/{id}", cfg.PoolHandler.Get)
		})

		// Ledger-wide checks
		r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)
	})

	return r
}
