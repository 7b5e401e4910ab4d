package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countNonPositiveBankEntries = `-- name: CountNonPositiveBankEntries :one
SELECT COUNT(*) FROM bank_entries WHERE amount <= 0
`

func (q *Queries) CountNonPositiveBankEntries(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countNonPositiveBankEntries)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createBankEntry = `-- name: CreateBankEntry :one
INSERT INTO bank_entries (id, vessel_id, period, amount, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, vessel_id, period, amount, seq, created_at
`

type CreateBankEntryParams struct {
	ID        string             `json:"id"`
	VesselID  string             `json:"vessel_id"`
	Period    int32              `json:"period"`
	Amount    pgtype.Numeric     `json:"amount"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBankEntry(ctx context.Context, arg CreateBankEntryParams) (BankEntry, error) {
	row := q.db.QueryRow(ctx, createBankEntry,
		arg.ID,
		arg.VesselID,
		arg.Period,
		arg.Amount,
		arg.CreatedAt,
	)
	var i BankEntry
	err := row.Scan(
		&i.ID,
		&i.VesselID,
		&i.Period,
		&i.Amount,
		&i.Seq,
		&i.CreatedAt,
	)
	return i, err
}

const deleteBankEntry = `-- name: DeleteBankEntry :exec
DELETE FROM bank_entries WHERE id = $1
`

func (q *Queries) DeleteBankEntry(ctx context.Context, id string) error {
	_, err := q.db.Exec(ctx, deleteBankEntry, id)
	return err
}

const listBankEntriesForUpdate = `-- name: ListBankEntriesForUpdate :many
SELECT id, vessel_id, period, amount, seq, created_at FROM bank_entries
WHERE vessel_id = $1 AND period = $2
ORDER BY seq
FOR UPDATE
`

type ListBankEntriesForUpdateParams struct {
	VesselID string `json:"vessel_id"`
	Period   int32  `json:"period"`
}

func (q *Queries) ListBankEntriesForUpdate(ctx context.Context, arg ListBankEntriesForUpdateParams) ([]BankEntry, error) {
	rows, err := q.db.Query(ctx, listBankEntriesForUpdate, arg.VesselID, arg.Period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BankEntry{}
	for rows.Next() {
		var i BankEntry
		if err := rows.Scan(
			&i.ID,
			&i.VesselID,
			&i.Period,
			&i.Amount,
			&i.Seq,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const sumBankEntryAmounts = `-- name: SumBankEntryAmounts :one
SELECT COALESCE(SUM(amount), 0)::NUMERIC AS total FROM bank_entries
WHERE vessel_id = $1 AND period = $2
`

type SumBankEntryAmountsParams struct {
	VesselID string `json:"vessel_id"`
	Period   int32  `json:"period"`
}

func (q *Queries) SumBankEntryAmounts(ctx context.Context, arg SumBankEntryAmountsParams) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, sumBankEntryAmounts, arg.VesselID, arg.Period)
	var total pgtype.Numeric
	err := row.Scan(&total)
	return total, err
}

const updateBankEntryAmount = `-- name: UpdateBankEntryAmount :exec
UPDATE bank_entries SET amount = $2 WHERE id = $1
`

type UpdateBankEntryAmountParams struct {
	ID     string         `json:"id"`
	Amount pgtype.Numeric `json:"amount"`
}

func (q *Queries) UpdateBankEntryAmount(ctx context.Context, arg UpdateBankEntryAmountParams) error {
	_, err := q.db.Exec(ctx, updateBankEntryAmount, arg.ID, arg.Amount)
	return err
}
