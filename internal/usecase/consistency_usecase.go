package usecase

import (
	"context"
	"errors"
)

var (
	// ErrInconsistentLedger is returned when a ledger-wide invariant is broken.
	ErrInconsistentLedger = errors.New("ledger is inconsistent")
)

// ConsistencyUseCase verifies ledger-wide invariants: every bank entry is
// strictly positive and every stored pool sum equals the sum of its members'
// entry balances.
type ConsistencyUseCase struct {
	consistencyRepo ConsistencyRepository
}

// NewConsistencyUseCase creates a new ConsistencyUseCase.
func NewConsistencyUseCase(consistencyRepo ConsistencyRepository) *ConsistencyUseCase {
	return &ConsistencyUseCase{
		consistencyRepo: consistencyRepo,
	}
}

// CheckConsistency verifies the stored-state invariants.
func (uc *ConsistencyUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	badEntries, err := uc.consistencyRepo.CountNonPositiveBankEntries(ctx)
	if err != nil {
		return false, err
	}

	if badEntries != 0 {
		return false, ErrInconsistentLedger
	}

	badPools, err := uc.consistencyRepo.CountPoolSumMismatches(ctx)
	if err != nil {
		return false, err
	}

	if badPools != 0 {
		return false, ErrInconsistentLedger
	}

	return true, nil
}
