package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type BankEntry struct {
	ID        string             `json:"id"`
	VesselID  string             `json:"vessel_id"`
	Period    int32              `json:"period"`
	Amount    pgtype.Numeric     `json:"amount"`
	Seq       int64              `json:"seq"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type ComplianceBalance struct {
	VesselID  string             `json:"vessel_id"`
	Period    int32              `json:"period"`
	Value     pgtype.Numeric     `json:"value"`
	Version   int64              `json:"version"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type OutboxEvent struct {
	ID            string             `json:"id"`
	AggregateID   string             `json:"aggregate_id"`
	AggregateType string             `json:"aggregate_type"`
	EventType     string             `json:"event_type"`
	Payload       []byte             `json:"payload"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	PublishedAt   pgtype.Timestamptz `json:"published_at"`
	Published     bool               `json:"published"`
}

type Pool struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Period    int32              `json:"period"`
	SumBefore pgtype.Numeric     `json:"sum_before"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type PoolMember struct {
	PoolID        string         `json:"pool_id"`
	VesselID      string         `json:"vessel_id"`
	BalanceBefore pgtype.Numeric `json:"balance_before"`
	BalanceAfter  pgtype.Numeric `json:"balance_after"`
}

type VoyageActivity struct {
	VesselID        string             `json:"vessel_id"`
	Period          int32              `json:"period"`
	IntensityActual pgtype.Numeric     `json:"intensity_actual"`
	EnergyUsedMj    pgtype.Numeric     `json:"energy_used_mj"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}
