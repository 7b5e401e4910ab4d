package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/infrastructure/postgres/generated"
	"github.com/mariner/fueleuledger/internal/usecase"
)

// PoolRepository implements usecase.PoolRepository.
type PoolRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPoolRepository creates a new PoolRepository.
func NewPoolRepository(pool *pgxpool.Pool) *PoolRepository {
	return &PoolRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create persists a pool snapshot and its members within a transaction.
func (r *PoolRepository) Create(ctx context.Context, tx usecase.Transaction, p *domain.Pool) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	err := queries.CreatePool(ctx, generated.CreatePoolParams{
		ID:        p.ID,
		Name:      p.Name,
		Period:    int32(p.Period),
		SumBefore: decimalToNumeric(p.SumBefore),
		CreatedAt: timeToPgTimestamptz(p.CreatedAt),
	})
	if err != nil {
		return err
	}

	for _, m := range p.Members {
		err := queries.CreatePoolMember(ctx, generated.CreatePoolMemberParams{
			PoolID:        p.ID,
			VesselID:      m.VesselID,
			BalanceBefore: decimalToNumeric(m.BalanceBefore),
			BalanceAfter:  decimalToNumeric(m.BalanceAfter),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a pool and its members by ID.
func (r *PoolRepository) GetByID(ctx context.Context, id string) (*domain.Pool, error) {
	row, err := r.queries.GetPoolByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPoolNotFound
		}

		return nil, err
	}

	memberRows, err := r.queries.GetPoolMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	return rowToPool(row, memberRows), nil
}

// List lists pools with pagination, most recent first. Members are loaded
// per pool.
func (r *PoolRepository) List(ctx context.Context, limit, offset int) ([]*domain.Pool, error) {
	rows, err := r.queries.ListPools(ctx, generated.ListPoolsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	pools := make([]*domain.Pool, 0, len(rows))
	for _, row := range rows {
		memberRows, err := r.queries.GetPoolMembers(ctx, row.ID)
		if err != nil {
			return nil, err
		}

		pools = append(pools, rowToPool(row, memberRows))
	}

	return pools, nil
}

func rowToPool(row generated.Pool, memberRows []generated.PoolMember) *domain.Pool {
	members := make([]domain.PoolMember, 0, len(memberRows))
	for _, m := range memberRows {
		members = append(members, domain.PoolMember{
			PoolID:        m.PoolID,
			VesselID:      m.VesselID,
			BalanceBefore: numericToDecimal(m.BalanceBefore),
			BalanceAfter:  numericToDecimal(m.BalanceAfter),
		})
	}

	return &domain.Pool{
		ID:        row.ID,
		Name:      row.Name,
		Period:    int(row.Period),
		SumBefore: numericToDecimal(row.SumBefore),
		Members:   members,
		CreatedAt: row.CreatedAt.Time,
	}
}
