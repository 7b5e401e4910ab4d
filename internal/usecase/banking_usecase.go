package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/infrastructure/metrics"
)

// BankingUseCase moves compliance value between the live ledger and the
// banked-surplus queue of one vessel and period. Bank and apply each run as a
// single transaction holding the FOR UPDATE lock on the balance row, so
// concurrent operations on the same key serialize against each other.
type BankingUseCase struct {
	txManager   TransactionManager
	balanceRepo BalanceRepository
	bankRepo    BankEntryRepository
	outboxRepo  OutboxRepository
	cache       Cache
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewBankingUseCase creates a new BankingUseCase.
func NewBankingUseCase(
	txManager TransactionManager,
	balanceRepo BalanceRepository,
	bankRepo BankEntryRepository,
	outboxRepo OutboxRepository,
	cache Cache,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *BankingUseCase {
	return &BankingUseCase{
		txManager:   txManager,
		balanceRepo: balanceRepo,
		bankRepo:    bankRepo,
		outboxRepo:  outboxRepo,
		cache:       cache,
		idGen:       idGen,
		metrics:     metrics,
	}
}

// BankingInput represents input for a bank or apply operation.
type BankingInput struct {
	VesselID string
	Period   int
	Amount   decimal.Decimal
}

func (i BankingInput) validate() error {
	if err := domain.ValidateVesselID(i.VesselID); err != nil {
		return err
	}
	if err := domain.ValidatePeriod(i.Period); err != nil {
		return err
	}
	return domain.ValidateAmount(i.Amount)
}

// Bank moves amount from the vessel's current surplus into the bank. Fails
// with ErrInsufficientSurplus when the current balance cannot cover amount;
// nothing is written on failure.
func (uc *BankingUseCase) Bank(ctx context.Context, input BankingInput) (*domain.BankingResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	// Lock the ledger row; the lock is held until commit or rollback.
	balance, err := uc.balanceRepo.GetForUpdate(txCtx, tx, input.VesselID, input.Period)
	if err != nil {
		return nil, err
	}

	if err := balance.ValidateBank(input.Amount); err != nil {
		return nil, fmt.Errorf("%w: requested %s, available %s",
			err, input.Amount, balance.Value)
	}

	now := time.Now().UTC()
	newValue := balance.ApplyDebit(input.Amount)

	if err := uc.balanceRepo.UpdateValue(txCtx, tx, input.VesselID, input.Period, newValue, now); err != nil {
		return nil, err
	}

	entry := &domain.BankEntry{
		ID:        uc.idGen.Generate(),
		VesselID:  input.VesselID,
		Period:    input.Period,
		Amount:    input.Amount,
		CreatedAt: now,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := uc.bankRepo.Create(txCtx, tx, entry); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   balanceAggregateID(input.VesselID, input.Period),
		AggregateType: domain.AggregateTypeBalance,
		EventType:     domain.EventTypeSurplusBanked,
		Payload: map[string]any{
			"vessel_id":     input.VesselID,
			"period":        input.Period,
			"amount":        input.Amount.String(),
			"balance_after": newValue.String(),
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
		uc.metrics.BankOperations.WithLabelValues("bank").Inc()
		uc.metrics.BankingDuration.Observe(time.Since(start).Seconds())
	}

	return &domain.BankingResult{
		VesselID:      input.VesselID,
		Period:        input.Period,
		BalanceBefore: balance.Value,
		Applied:       input.Amount,
		BalanceAfter:  newValue,
	}, nil
}

// Apply consumes banked entries FIFO until amount is exhausted and credits
// the ledger. Fails with ErrInsufficientBanked when the banked total cannot
// cover amount; no partial consumption survives a failure.
func (uc *BankingUseCase) Apply(ctx context.Context, input BankingInput) (*domain.BankingResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	balance, err := uc.balanceRepo.GetForUpdate(txCtx, tx, input.VesselID, input.Period)
	if err != nil {
		return nil, err
	}

	entries, err := uc.bankRepo.ListForUpdate(txCtx, tx, input.VesselID, input.Period)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}

	if total.LessThan(input.Amount) {
		return nil, fmt.Errorf("%w: requested %s, banked %s",
			domain.ErrInsufficientBanked, input.Amount, total)
	}

	now := time.Now().UTC()

	// Consume oldest-first: full entries are deleted, the boundary entry is
	// reduced, never below zero.
	remaining := input.Amount
	for _, e := range entries {
		if remaining.IsZero() {
			break
		}

		if e.Amount.LessThanOrEqual(remaining) {
			if err := uc.bankRepo.Delete(txCtx, tx, e.ID); err != nil {
				return nil, err
			}
			remaining = remaining.Sub(e.Amount)

			continue
		}

		if err := uc.bankRepo.UpdateAmount(txCtx, tx, e.ID, e.Amount.Sub(remaining)); err != nil {
			return nil, err
		}
		remaining = decimal.Zero
	}

	newValue := balance.ApplyCredit(input.Amount)
	if err := uc.balanceRepo.UpdateValue(txCtx, tx, input.VesselID, input.Period, newValue, now); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   balanceAggregateID(input.VesselID, input.Period),
		AggregateType: domain.AggregateTypeBalance,
		EventType:     domain.EventTypeBankedApplied,
		Payload: map[string]any{
			"vessel_id":     input.VesselID,
			"period":        input.Period,
			"amount":        input.Amount.String(),
			"balance_after": newValue.String(),
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
		uc.metrics.BankOperations.WithLabelValues("apply").Inc()
		uc.metrics.BankingDuration.Observe(time.Since(start).Seconds())
	}

	return &domain.BankingResult{
		VesselID:      input.VesselID,
		Period:        input.Period,
		BalanceBefore: balance.Value,
		Applied:       input.Amount,
		BalanceAfter:  newValue,
	}, nil
}

// GetBankedTotal returns the sum of all banked entries for a vessel and
// period. A vessel with no entries has a zero total.
func (uc *BankingUseCase) GetBankedTotal(ctx context.Context, vesselID string, period int) (decimal.Decimal, error) {
	if err := domain.ValidateVesselID(vesselID); err != nil {
		return decimal.Zero, err
	}
	if err := domain.ValidatePeriod(period); err != nil {
		return decimal.Zero, err
	}

	return uc.bankRepo.SumAmounts(ctx, vesselID, period)
}

func (uc *BankingUseCase) invalidateCache(ctx context.Context, vesselID string, period int) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, balanceCacheKey(vesselID, period))
}
