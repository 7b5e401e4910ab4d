package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/infrastructure/postgres/generated"
	"github.com/mariner/fueleuledger/internal/usecase"
)

// BankEntryRepository implements usecase.BankEntryRepository.
type BankEntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewBankEntryRepository creates a new BankEntryRepository.
func NewBankEntryRepository(pool *pgxpool.Pool) *BankEntryRepository {
	return &BankEntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a bank entry within a transaction. The FIFO sequence is
// assigned by the database and written back to the entry.
func (r *BankEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.BankEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.CreateBankEntry(ctx, generated.CreateBankEntryParams{
		ID:        entry.ID,
		VesselID:  entry.VesselID,
		Period:    int32(entry.Period),
		Amount:    decimalToNumeric(entry.Amount),
		CreatedAt: timeToPgTimestamptz(entry.CreatedAt),
	})
	if err != nil {
		return err
	}

	entry.Seq = row.Seq

	return nil
}

// ListForUpdate retrieves the bank entries for a vessel and period in FIFO
// order, locking each row.
func (r *BankEntryRepository) ListForUpdate(ctx context.Context, tx usecase.Transaction, vesselID string, period int) ([]*domain.BankEntry, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	rows, err := queries.ListBankEntriesForUpdate(ctx, generated.ListBankEntriesForUpdateParams{
		VesselID: vesselID,
		Period:   int32(period),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.BankEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToBankEntry(row))
	}

	return entries, nil
}

// UpdateAmount updates the remaining amount of a bank entry.
func (r *BankEntryRepository) UpdateAmount(ctx context.Context, tx usecase.Transaction, id string, amount decimal.Decimal) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateBankEntryAmount(ctx, generated.UpdateBankEntryAmountParams{
		ID:     id,
		Amount: decimalToNumeric(amount),
	})
}

// Delete removes a fully consumed bank entry.
func (r *BankEntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.DeleteBankEntry(ctx, id)
}

// SumAmounts returns the total banked amount for a vessel and period.
func (r *BankEntryRepository) SumAmounts(ctx context.Context, vesselID string, period int) (decimal.Decimal, error) {
	total, err := r.queries.SumBankEntryAmounts(ctx, generated.SumBankEntryAmountsParams{
		VesselID: vesselID,
		Period:   int32(period),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}

		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

func rowToBankEntry(row generated.BankEntry) *domain.BankEntry {
	return &domain.BankEntry{
		ID:        row.ID,
		VesselID:  row.VesselID,
		Period:    int(row.Period),
		Amount:    numericToDecimal(row.Amount),
		Seq:       row.Seq,
		CreatedAt: row.CreatedAt.Time,
	}
}
