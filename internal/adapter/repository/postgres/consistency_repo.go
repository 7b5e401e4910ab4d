package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariner/fueleuledger/internal/infrastructure/postgres/generated"
)

// ConsistencyRepository implements usecase.ConsistencyRepository.
type ConsistencyRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewConsistencyRepository creates a new ConsistencyRepository.
func NewConsistencyRepository(pool *pgxpool.Pool) *ConsistencyRepository {
	return &ConsistencyRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CountNonPositiveBankEntries counts bank entries whose remaining amount is
// zero or negative. Consumed entries are deleted, so any hit is a defect.
func (r *ConsistencyRepository) CountNonPositiveBankEntries(ctx context.Context) (int64, error) {
	return r.queries.CountNonPositiveBankEntries(ctx)
}

// CountPoolSumMismatches counts pools whose recorded sum differs from the
// sum of their members' entry balances.
func (r *ConsistencyRepository) CountPoolSumMismatches(ctx context.Context) (int64, error) {
	return r.queries.CountPoolSumMismatches(ctx)
}
