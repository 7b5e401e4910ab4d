package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/infrastructure/metrics"
)

// PoolUseCase validates and records pooling events. Pool creation reads
// member balances under ordinary read-committed semantics and writes only to
// the append-only pool store; the ledger itself is never mutated.
type PoolUseCase struct {
	txManager   TransactionManager
	balanceRepo BalanceRepository
	poolRepo    PoolRepository
	outboxRepo  OutboxRepository
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewPoolUseCase creates a new PoolUseCase.
func NewPoolUseCase(
	txManager TransactionManager,
	balanceRepo BalanceRepository,
	poolRepo PoolRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *PoolUseCase {
	return &PoolUseCase{
		txManager:   txManager,
		balanceRepo: balanceRepo,
		poolRepo:    poolRepo,
		outboxRepo:  outboxRepo,
		idGen:       idGen,
		metrics:     metrics,
	}
}

// CreatePoolInput represents input for creating a pool.
type CreatePoolInput struct {
	Period    int
	Name      string
	VesselIDs []string
}

func (i CreatePoolInput) validate() error {
	if err := domain.ValidatePeriod(i.Period); err != nil {
		return err
	}
	if err := domain.ValidatePoolName(i.Name); err != nil {
		return err
	}
	if len(i.VesselIDs) == 0 {
		return domain.ErrEmptyPool
	}

	seen := make(map[string]bool, len(i.VesselIDs))
	for _, id := range i.VesselIDs {
		if err := domain.ValidateVesselID(id); err != nil {
			return err
		}
		if seen[id] {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateMember, id)
		}
		seen[id] = true
	}

	return nil
}

// CreatePool reads the members' current balances, enforces the pool-level
// and Article 21 constraints, and persists a pool snapshot. Either every
// member is recorded or nothing is.
func (uc *PoolUseCase) CreatePool(ctx context.Context, input CreatePoolInput) (*domain.Pool, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	members := make([]domain.PoolMember, 0, len(input.VesselIDs))
	sum := decimal.Zero

	for _, vesselID := range input.VesselIDs {
		balance, err := uc.balanceRepo.Get(ctx, vesselID, input.Period)
		if err != nil {
			if errors.Is(err, domain.ErrBalanceNotFound) {
				return nil, fmt.Errorf("%w: vessel %s, period %d",
					domain.ErrBalanceNotFound, vesselID, input.Period)
			}

			return nil, fmt.Errorf("read balance for vessel %s, period %d: %w",
				vesselID, input.Period, err)
		}

		members = append(members, domain.PoolMember{
			VesselID:      vesselID,
			BalanceBefore: balance.Value,
		})
		sum = sum.Add(balance.Value)
	}

	// Equal redistribution: the same rounded share for every member.
	share := sum.DivRound(decimal.NewFromInt(int64(len(members))), domain.ShareScale)

	poolID := uc.idGen.Generate()
	now := time.Now().UTC()

	for i := range members {
		members[i].PoolID = poolID
		members[i].BalanceAfter = share
	}

	pool := &domain.Pool{
		ID:        poolID,
		Name:      input.Name,
		Period:    input.Period,
		SumBefore: sum,
		Members:   members,
		CreatedAt: now,
	}

	if err := pool.Validate(); err != nil {
		if uc.metrics != nil {
			uc.metrics.PoolsRejected.WithLabelValues(rejectionReason(err)).Inc()
		}

		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	if err := uc.poolRepo.Create(txCtx, tx, pool); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   poolID,
		AggregateType: domain.AggregateTypePool,
		EventType:     domain.EventTypePoolCreated,
		Payload: map[string]any{
			"pool_id":    poolID,
			"period":     input.Period,
			"members":    input.VesselIDs,
			"sum_before": sum.String(),
			"share":      share.String(),
		},
		CreatedAt: now,
		Published: false,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PoolsCreated.Inc()
	}

	return pool, nil
}

// GetPool retrieves a pool snapshot by ID.
func (uc *PoolUseCase) GetPool(ctx context.Context, id string) (*domain.Pool, error) {
	return uc.poolRepo.GetByID(ctx, id)
}

// ListPoolsInput represents input for listing pools.
type ListPoolsInput struct {
	Limit  int
	Offset int
}

// ListPools lists pool snapshots, most recent first.
func (uc *PoolUseCase) ListPools(ctx context.Context, input ListPoolsInput) ([]*domain.Pool, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.poolRepo.List(ctx, limit, offset)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNegativePoolSum):
		return "negative_sum"
	default:
		return "article_21"
	}
}
