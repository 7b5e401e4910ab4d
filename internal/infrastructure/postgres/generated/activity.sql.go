package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getVoyageActivity = `-- name: GetVoyageActivity :one
SELECT vessel_id, period, intensity_actual, energy_used_mj, updated_at FROM voyage_activities
WHERE vessel_id = $1 AND period = $2
`

type GetVoyageActivityParams struct {
	VesselID string `json:"vessel_id"`
	Period   int32  `json:"period"`
}

func (q *Queries) GetVoyageActivity(ctx context.Context, arg GetVoyageActivityParams) (VoyageActivity, error) {
	row := q.db.QueryRow(ctx, getVoyageActivity, arg.VesselID, arg.Period)
	var i VoyageActivity
	err := row.Scan(
		&i.VesselID,
		&i.Period,
		&i.IntensityActual,
		&i.EnergyUsedMj,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertVoyageActivity = `-- name: UpsertVoyageActivity :one
INSERT INTO voyage_activities (vessel_id, period, intensity_actual, energy_used_mj, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (vessel_id, period) DO UPDATE
SET intensity_actual = EXCLUDED.intensity_actual, energy_used_mj = EXCLUDED.energy_used_mj, updated_at = EXCLUDED.updated_at
RETURNING vessel_id, period, intensity_actual, energy_used_mj, updated_at
`

type UpsertVoyageActivityParams struct {
	VesselID        string             `json:"vessel_id"`
	Period          int32              `json:"period"`
	IntensityActual pgtype.Numeric     `json:"intensity_actual"`
	EnergyUsedMj    pgtype.Numeric     `json:"energy_used_mj"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpsertVoyageActivity(ctx context.Context, arg UpsertVoyageActivityParams) (VoyageActivity, error) {
	row := q.db.QueryRow(ctx, upsertVoyageActivity,
		arg.VesselID,
		arg.Period,
		arg.IntensityActual,
		arg.EnergyUsedMj,
		arg.UpdatedAt,
	)
	var i VoyageActivity
	err := row.Scan(
		&i.VesselID,
		&i.Period,
		&i.IntensityActual,
		&i.EnergyUsedMj,
		&i.UpdatedAt,
	)
	return i, err
}
