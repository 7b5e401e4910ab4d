package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countPoolSumMismatches = `-- name: CountPoolSumMismatches :one
SELECT COUNT(*) FROM pools p
WHERE p.sum_before <> (
    SELECT COALESCE(SUM(m.balance_before), 0) FROM pool_members m WHERE m.pool_id = p.id
)
`

func (q *Queries) CountPoolSumMismatches(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countPoolSumMismatches)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createPool = `-- name: CreatePool :exec
INSERT INTO pools (id, name, period, sum_before, created_at)
VALUES ($1, $2, $3, $4, $5)
`

type CreatePoolParams struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Period    int32              `json:"period"`
	SumBefore pgtype.Numeric     `json:"sum_before"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreatePool(ctx context.Context, arg CreatePoolParams) error {
	_, err := q.db.Exec(ctx, createPool,
		arg.ID,
		arg.Name,
		arg.Period,
		arg.SumBefore,
		arg.CreatedAt,
	)
	return err
}

const createPoolMember = `-- name: CreatePoolMember :exec
INSERT INTO pool_members (pool_id, vessel_id, balance_before, balance_after)
VALUES ($1, $2, $3, $4)
`

type CreatePoolMemberParams struct {
	PoolID        string         `json:"pool_id"`
	VesselID      string         `json:"vessel_id"`
	BalanceBefore pgtype.Numeric `json:"balance_before"`
	BalanceAfter  pgtype.Numeric `json:"balance_after"`
}

func (q *Queries) CreatePoolMember(ctx context.Context, arg CreatePoolMemberParams) error {
	_, err := q.db.Exec(ctx, createPoolMember,
		arg.PoolID,
		arg.VesselID,
		arg.BalanceBefore,
		arg.BalanceAfter,
	)
	return err
}

const getPoolByID = `-- name: GetPoolByID :one
SELECT id, name, period, sum_before, created_at FROM pools WHERE id = $1
`

func (q *Queries) GetPoolByID(ctx context.Context, id string) (Pool, error) {
	row := q.db.QueryRow(ctx, getPoolByID, id)
	var i Pool
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Period,
		&i.SumBefore,
		&i.CreatedAt,
	)
	return i, err
}

const getPoolMembers = `-- name: GetPoolMembers :many
SELECT pool_id, vessel_id, balance_before, balance_after FROM pool_members
WHERE pool_id = $1
ORDER BY vessel_id
`

func (q *Queries) GetPoolMembers(ctx context.Context, poolID string) ([]PoolMember, error) {
	rows, err := q.db.Query(ctx, getPoolMembers, poolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []PoolMember{}
	for rows.Next() {
		var i PoolMember
		if err := rows.Scan(
			&i.PoolID,
			&i.VesselID,
			&i.BalanceBefore,
			&i.BalanceAfter,
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

const listPools = `-- name: ListPools :many
SELECT id, name, period, sum_before, created_at FROM pools
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2
`

type ListPoolsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListPools(ctx context.Context, arg ListPoolsParams) ([]Pool, error) {
	rows, err := q.db.Query(ctx, listPools, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Pool{}
	for rows.Next() {
		var i Pool
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Period,
			&i.SumBefore,
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
