package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getBalance = `-- name: GetBalance :one
SELECT vessel_id, period, value, version, created_at, updated_at FROM compliance_balances
WHERE vessel_id = $1 AND period = $2
`

type GetBalanceParams struct {
	VesselID string `json:"vessel_id"`
	Period   int32  `json:"period"`
}

func (q *Queries) GetBalance(ctx context.Context, arg GetBalanceParams) (ComplianceBalance, error) {
	row := q.db.QueryRow(ctx, getBalance, arg.VesselID, arg.Period)
	var i ComplianceBalance
	err := row.Scan(
		&i.VesselID,
		&i.Period,
		&i.Value,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBalanceForUpdate = `-- name: GetBalanceForUpdate :one
SELECT vessel_id, period, value, version, created_at, updated_at FROM compliance_balances
WHERE vessel_id = $1 AND period = $2 FOR UPDATE
`

type GetBalanceForUpdateParams struct {
	VesselID string `json:"vessel_id"`
	Period   int32  `json:"period"`
}

func (q *Queries) GetBalanceForUpdate(ctx context.Context, arg GetBalanceForUpdateParams) (ComplianceBalance, error) {
	row := q.db.QueryRow(ctx, getBalanceForUpdate, arg.VesselID, arg.Period)
	var i ComplianceBalance
	err := row.Scan(
		&i.VesselID,
		&i.Period,
		&i.Value,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listBalancesByPeriod = `-- name: ListBalancesByPeriod :many
SELECT vessel_id, period, value, version, created_at, updated_at FROM compliance_balances
WHERE period = $1
ORDER BY vessel_id
LIMIT $2 OFFSET $3
`

type ListBalancesByPeriodParams struct {
	Period int32 `json:"period"`
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListBalancesByPeriod(ctx context.Context, arg ListBalancesByPeriodParams) ([]ComplianceBalance, error) {
	rows, err := q.db.Query(ctx, listBalancesByPeriod, arg.Period, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ComplianceBalance{}
	for rows.Next() {
		var i ComplianceBalance
		if err := rows.Scan(
			&i.VesselID,
			&i.Period,
			&i.Value,
			&i.Version,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const updateBalanceValue = `-- name: UpdateBalanceValue :exec
UPDATE compliance_balances
SET value = $3, version = version + 1, updated_at = $4
WHERE vessel_id = $1 AND period = $2
`

type UpdateBalanceValueParams struct {
	VesselID  string             `json:"vessel_id"`
	Period    int32              `json:"period"`
	Value     pgtype.Numeric     `json:"value"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBalanceValue(ctx context.Context, arg UpdateBalanceValueParams) error {
	_, err := q.db.Exec(ctx, updateBalanceValue,
		arg.VesselID,
		arg.Period,
		arg.Value,
		arg.UpdatedAt,
	)
	return err
}

const upsertBalance = `-- name: UpsertBalance :one
INSERT INTO compliance_balances (vessel_id, period, value, version, created_at, updated_at)
VALUES ($1, $2, $3, 1, $4, $4)
ON CONFLICT (vessel_id, period) DO UPDATE
SET value = EXCLUDED.value, version = compliance_balances.version + 1, updated_at = EXCLUDED.updated_at
RETURNING vessel_id, period, value, version, created_at, updated_at
`

type UpsertBalanceParams struct {
	VesselID  string             `json:"vessel_id"`
	Period    int32              `json:"period"`
	Value     pgtype.Numeric     `json:"value"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) UpsertBalance(ctx context.Context, arg UpsertBalanceParams) (ComplianceBalance, error) {
	row := q.db.QueryRow(ctx, upsertBalance,
		arg.VesselID,
		arg.Period,
		arg.Value,
		arg.CreatedAt,
	)
	var i ComplianceBalance
	err := row.Scan(
		&i.VesselID,
		&i.Period,
		&i.Value,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
