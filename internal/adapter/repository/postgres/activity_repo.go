package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/infrastructure/postgres/generated"
)

// ActivityRepository implements usecase.ActivityProvider over the
// voyage_activities table. Rows are written by the voyage data pipeline;
// Upsert exists for operational seeding.
type ActivityRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// GetActivity retrieves aggregated voyage activity for a vessel and period.
func (r *ActivityRepository) GetActivity(ctx context.Context, vesselID string, period int) (*domain.VoyageActivity, error) {
	row, err := r.queries.GetVoyageActivity(ctx, generated.GetVoyageActivityParams{
		VesselID: vesselID,
		Period:   int32(period),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}

		return nil, err
	}

	return rowToActivity(row), nil
}

// Upsert writes aggregated voyage activity for a vessel and period.
func (r *ActivityRepository) Upsert(ctx context.Context, activity *domain.VoyageActivity) (*domain.VoyageActivity, error) {
	row, err := r.queries.UpsertVoyageActivity(ctx, generated.UpsertVoyageActivityParams{
		VesselID:        activity.VesselID,
		Period:          int32(activity.Period),
		IntensityActual: decimalToNumeric(activity.IntensityActual),
		EnergyUsedMj:    decimalToNumeric(activity.EnergyUsedMJ),
		UpdatedAt:       timeToPgTimestamptz(time.Now().UTC()),
	})
	if err != nil {
		return nil, err
	}

	return rowToActivity(row), nil
}

func rowToActivity(row generated.VoyageActivity) *domain.VoyageActivity {
	return &domain.VoyageActivity{
		VesselID:        row.VesselID,
		Period:          int(row.Period),
		IntensityActual: numericToDecimal(row.IntensityActual),
		EnergyUsedMJ:    numericToDecimal(row.EnergyUsedMj),
	}
}
