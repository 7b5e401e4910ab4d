package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mariner/fueleuledger/internal/adapter/http/dto"
	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/usecase"
)

// PoolService defines the behavior needed by PoolHandler.
type PoolService interface {
	CreatePool(ctx context.Context, input usecase.CreatePoolInput) (*domain.Pool, error)
	GetPool(ctx context.Context, id string) (*domain.Pool, error)
	ListPools(ctx context.Context, input usecase.ListPoolsInput) ([]*domain.Pool, error)
}

// PoolHandler handles pool HTTP requests.
type PoolHandler struct {
	poolUC PoolService
}

// NewPoolHandler creates a new PoolHandler.
func NewPoolHandler(poolUC PoolService) *PoolHandler {
	return &PoolHandler{poolUC: poolUC}
}

// Create creates a pool from the named vessels' current balances.
func (h *PoolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	pool, err := h.poolUC.CreatePool(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create pool", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.PoolFromDomain(pool))
}

// Get retrieves a pool by ID.
func (h *PoolHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing pool ID", "")
		return
	}

	pool, err := h.poolUC.GetPool(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to get pool", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PoolFromDomain(pool))
}

// List lists pools.
func (h *PoolHandler) List(w http.ResponseWriter, r *http.Request) {
	pools, err := h.poolUC.ListPools(r.Context(), usecase.ListPoolsInput{
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, "failed to list pools", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListPoolsResponse{
		Pools: dto.PoolsFromDomain(pools),
		Total: int64(len(pools)),
	})
}
