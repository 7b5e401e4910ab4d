package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/infrastructure/postgres/generated"
	"github.com/mariner/fueleuledger/internal/usecase"
)

// BalanceRepository implements usecase.BalanceRepository.
type BalanceRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Get retrieves the compliance balance for a vessel and period.
func (r *BalanceRepository) Get(ctx context.Context, vesselID string, period int) (*domain.ComplianceBalance, error) {
	row, err := r.queries.GetBalance(ctx, generated.GetBalanceParams{
		VesselID: vesselID,
		Period:   int32(period),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}

		return nil, err
	}

	return rowToBalance(row), nil
}

// GetForUpdate retrieves a compliance balance with a FOR UPDATE lock.
// Concurrent writers on the same (vessel, period) serialize here.
func (r *BalanceRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, vesselID string, period int) (*domain.ComplianceBalance, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetBalanceForUpdate(ctx, generated.GetBalanceForUpdateParams{
		VesselID: vesselID,
		Period:   int32(period),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}

		return nil, err
	}

	return rowToBalance(row), nil
}

// Upsert inserts the balance row or replaces its value if one exists.
func (r *BalanceRepository) Upsert(ctx context.Context, tx usecase.Transaction, vesselID string, period int, value decimal.Decimal, now time.Time) (*domain.ComplianceBalance, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.UpsertBalance(ctx, generated.UpsertBalanceParams{
		VesselID:  vesselID,
		Period:    int32(period),
		Value:     decimalToNumeric(value),
		CreatedAt: timeToPgTimestamptz(now),
	})
	if err != nil {
		return nil, err
	}

	return rowToBalance(row), nil
}

// UpdateValue updates the value of a balance row within a transaction.
func (r *BalanceRepository) UpdateValue(ctx context.Context, tx usecase.Transaction, vesselID string, period int, value decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateBalanceValue(ctx, generated.UpdateBalanceValueParams{
		VesselID:  vesselID,
		Period:    int32(period),
		Value:     decimalToNumeric(value),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
}

// ListByPeriod lists compliance balances for a period with pagination.
func (r *BalanceRepository) ListByPeriod(ctx context.Context, period, limit, offset int) ([]*domain.ComplianceBalance, error) {
	rows, err := r.queries.ListBalancesByPeriod(ctx, generated.ListBalancesByPeriodParams{
		Period: int32(period),
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	balances := make([]*domain.ComplianceBalance, 0, len(rows))
	for _, row := range rows {
		balances = append(balances, rowToBalance(row))
	}

	return balances, nil
}

func rowToBalance(row generated.ComplianceBalance) *domain.ComplianceBalance {
	return &domain.ComplianceBalance{
		VesselID:  row.VesselID,
		Period:    int(row.Period),
		Value:     numericToDecimal(row.Value),
		Version:   row.Version,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
