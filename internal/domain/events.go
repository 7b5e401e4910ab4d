package domain

import "time"

// Aggregate types for outbox events.
const (
	AggregateTypeBalance = "balance"
	AggregateTypePool    = "pool"
)

// Event types emitted by the engine.
const (
	EventTypeBalanceComputed = "balance.computed"
	EventTypeSurplusBanked   = "balance.surplus_banked"
	EventTypeBankedApplied   = "balance.banked_applied"
	EventTypePoolCreated     = "pool.created"
)

// OutboxEvent is a domain event staged in the same transaction as the state
// change it describes, published asynchronously by the event publisher.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	Published     bool
	PublishedAt   *time.Time
}
