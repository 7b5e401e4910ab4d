package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/adapter/http/handler"
	apimiddleware "github.com/mariner/fueleuledger/internal/adapter/http/middleware"
	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"vessel_id":"IMO9074729","period":2025,"amount":"1000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/banking/bank", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/balances/compute",
		"GET /api/v1/balances/",
		"GET /api/v1/balances/{vesselID}",
		"POST /api/v1/banking/bank",
		"POST /api/v1/banking/apply",
		"GET /api/v1/banking/{vesselID}/total",
		"POST /api/v1/pools/",
		"GET /api/v1/pools/{id}",
		"GET /api/v1/ledger/consistency",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	balanceHandler := handler.NewBalanceHandler(&stubBalanceService{})
	bankingHandler := handler.NewBankingHandler(&stubBankingService{}, nil)
	poolHandler := handler.NewPoolHandler(&stubPoolService{})
	ledgerHandler := handler.NewLedgerHandler(usecase.NewConsistencyUseCase(&stubConsistencyRepository{}))

	cfg := RouterConfig{
		HealthHandler:  &handler.HealthHandler{},
		BalanceHandler: balanceHandler,
		BankingHandler: bankingHandler,
		PoolHandler:    poolHandler,
		LedgerHandler:  ledgerHandler,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubBalanceService struct{}

func (stubBalanceService) ComputeBalance(ctx context.Context, input usecase.ComputeBalanceInput) (*domain.ComplianceBalance, error) {
	return &domain.ComplianceBalance{VesselID: input.VesselID, Period: input.Period}, nil
}

func (stubBalanceService) GetBalance(ctx context.Context, vesselID string, period int) (*domain.ComplianceBalance, error) {
	return &domain.ComplianceBalance{VesselID: vesselID, Period: period}, nil
}

func (stubBalanceService) ListBalances(ctx context.Context, input usecase.ListBalancesInput) ([]*domain.ComplianceBalance, error) {
	return []*domain.ComplianceBalance{}, nil
}

type stubBankingService struct{}

func (stubBankingService) Bank(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error) {
	return &domain.BankingResult{VesselID: input.VesselID, Period: input.Period}, nil
}

func (stubBankingService) Apply(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error) {
	return &domain.BankingResult{VesselID: input.VesselID, Period: input.Period}, nil
}

func (stubBankingService) GetBankedTotal(ctx context.Context, vesselID string, period int) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type stubPoolService struct{}

func (stubPoolService) CreatePool(ctx context.Context, input usecase.CreatePoolInput) (*domain.Pool, error) {
	return &domain.Pool{ID: "pool", Period: input.Period}, nil
}

func (stubPoolService) GetPool(ctx context.Context, id string) (*domain.Pool, error) {
	return &domain.Pool{ID: id}, nil
}

func (stubPoolService) ListPools(ctx context.Context, input usecase.ListPoolsInput) ([]*domain.Pool, error) {
	return []*domain.Pool{}, nil
}

type stubConsistencyRepository struct{}

func (stubConsistencyRepository) CountNonPositiveBankEntries(ctx context.Context) (int64, error) {
	return 0, nil
}

func (stubConsistencyRepository) CountPoolSumMismatches(ctx context.Context) (int64, error) {
	return 0, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
