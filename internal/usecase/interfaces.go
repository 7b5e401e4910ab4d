package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/domain"
)

// BalanceRepository defines data access for compliance balances.
type BalanceRepository interface {
	Get(ctx context.Context, vesselID string, period int) (*domain.ComplianceBalance, error)
	GetForUpdate(ctx context.Context, tx Transaction, vesselID string, period int) (*domain.ComplianceBalance, error)
	Upsert(ctx context.Context, tx Transaction, vesselID string, period int, value decimal.Decimal, now time.Time) (*domain.ComplianceBalance, error)
	UpdateValue(ctx context.Context, tx Transaction, vesselID string, period int, value decimal.Decimal, updatedAt time.Time) error
	ListByPeriod(ctx context.Context, period, limit, offset int) ([]*domain.ComplianceBalance, error)
}

// BankEntryRepository defines data access for banked surplus entries.
// Entries are ordered by their per-key FIFO sequence.
type BankEntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.BankEntry) error
	ListForUpdate(ctx context.Context, tx Transaction, vesselID string, period int) ([]*domain.BankEntry, error)
	UpdateAmount(ctx context.Context, tx Transaction, id string, amount decimal.Decimal) error
	Delete(ctx context.Context, tx Transaction, id string) error
	SumAmounts(ctx context.Context, vesselID string, period int) (decimal.Decimal, error)
}

// PoolRepository defines data access for pool snapshots.
type PoolRepository interface {
	Create(ctx context.Context, tx Transaction, pool *domain.Pool) error
	GetByID(ctx context.Context, id string) (*domain.Pool, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Pool, error)
}

// ActivityProvider resolves aggregated voyage activity for a vessel and
// period. The voyage data system behind it is outside the engine.
type ActivityProvider interface {
	GetActivity(ctx context.Context, vesselID string, period int) (*domain.VoyageActivity, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
}

// ConsistencyRepository defines ledger-wide invariant checks.
type ConsistencyRepository interface {
	CountNonPositiveBankEntries(ctx context.Context) (int64, error)
	CountPoolSumMismatches(ctx context.Context) (int64, error)
}

// Retrier retries an operation that failed with a transient storage error.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines read-path caching. A failed Get is treated as a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
