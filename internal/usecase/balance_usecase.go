package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/infrastructure/metrics"
)

// BalanceUseCase derives compliance balances from voyage activity and serves
// ledger reads.
type BalanceUseCase struct {
	txManager   TransactionManager
	balanceRepo BalanceRepository
	activity    ActivityProvider
	outboxRepo  OutboxRepository
	cache       Cache
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(
	txManager TransactionManager,
	balanceRepo BalanceRepository,
	activity ActivityProvider,
	outboxRepo OutboxRepository,
	cache Cache,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *BalanceUseCase {
	return &BalanceUseCase{
		txManager:   txManager,
		balanceRepo: balanceRepo,
		activity:    activity,
		outboxRepo:  outboxRepo,
		cache:       cache,
		idGen:       idGen,
		metrics:     metrics,
	}
}

// ComputeBalanceInput represents input for computing a compliance balance.
type ComputeBalanceInput struct {
	VesselID string
	Period   int
}

// ComputeBalance resolves voyage activity for the vessel and period, derives
// the compliance balance and upserts the ledger row. Recomputation replaces
// the previous value.
func (uc *BalanceUseCase) ComputeBalance(ctx context.Context, input ComputeBalanceInput) (*domain.ComplianceBalance, error) {
	if err := domain.ValidateVesselID(input.VesselID); err != nil {
		return nil, err
	}
	if err := domain.ValidatePeriod(input.Period); err != nil {
		return nil, err
	}

	activity, err := uc.activity.GetActivity(ctx, input.VesselID, input.Period)
	if err != nil {
		return nil, err
	}

	value := activity.ComplianceValue()

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	now := time.Now().UTC()

	balance, err := uc.balanceRepo.Upsert(txCtx, tx, input.VesselID, input.Period, value, now)
	if err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   balanceAggregateID(input.VesselID, input.Period),
		AggregateType: domain.AggregateTypeBalance,
		EventType:     domain.EventTypeBalanceComputed,
		Payload: map[string]any{
			"vessel_id": input.VesselID,
			"period":    input.Period,
			"value":     value.String(),
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

	uc.invalidateCache(ctx, input.VesselID, input.Period)

	if uc.metrics != nil {
		uc.metrics.BalancesComputed.Inc()
	}

	return balance, nil
}

// GetBalance retrieves the compliance balance for a vessel and period,
// reading through the cache when one is configured.
func (uc *BalanceUseCase) GetBalance(ctx context.Context, vesselID string, period int) (*domain.ComplianceBalance, error) {
	if err := domain.ValidateVesselID(vesselID); err != nil {
		return nil, err
	}
	if err := domain.ValidatePeriod(period); err != nil {
		return nil, err
	}

	key := balanceCacheKey(vesselID, period)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err == nil {
			var balance domain.ComplianceBalance
			if err := json.Unmarshal([]byte(cached), &balance); err == nil {
				if uc.metrics != nil {
					uc.metrics.CacheHits.Inc()
				}
				return &balance, nil
			}
		}
	}

	balance, err := uc.balanceRepo.Get(ctx, vesselID, period)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if encoded, err := json.Marshal(balance); err == nil {
			_ = uc.cache.Set(ctx, key, string(encoded), BalanceCacheTTL)
		}
	}

	return balance, nil
}

// ListBalancesInput represents input for listing balances of a period.
type ListBalancesInput struct {
	Period int
	Limit  int
	Offset int
}

// ListBalances lists all compliance balances for a period.
func (uc *BalanceUseCase) ListBalances(ctx context.Context, input ListBalancesInput) ([]*domain.ComplianceBalance, error) {
	if err := domain.ValidatePeriod(input.Period); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.balanceRepo.ListByPeriod(ctx, input.Period, limit, offset)
}

func (uc *BalanceUseCase) invalidateCache(ctx context.Context, vesselID string, period int) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, balanceCacheKey(vesselID, period))
}

func balanceCacheKey(vesselID string, period int) string {
	return fmt.Sprintf("balance:%s:%d", vesselID, period)
}

func balanceAggregateID(vesselID string, period int) string {
	return fmt.Sprintf("%s:%d", vesselID, period)
}
