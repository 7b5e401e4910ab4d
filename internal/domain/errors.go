package domain

import "errors"

var (
	// Ledger errors
	ErrBalanceNotFound  = errors.New("compliance balance not found")
	ErrActivityNotFound = errors.New("no voyage activity for vessel and period")

	// Banking errors
	ErrInsufficientSurplus = errors.New("bank amount exceeds current surplus")
	ErrInsufficientBanked  = errors.New("apply amount exceeds banked balance")

	// Pooling errors
	ErrPoolNotFound    = errors.New("pool not found")
	ErrNegativePoolSum = errors.New("pool members are collectively non-compliant")
	ErrEmptyPool       = errors.New("pool requires at least one member")
	ErrDuplicateMember = errors.New("pool members must be distinct")

	// Input errors
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidPeriod   = errors.New("period outside the reporting horizon")
	ErrInvalidVesselID = errors.New("invalid vessel identifier")

	// Storage errors
	ErrConcurrencyConflict = errors.New("concurrent modification, retry the operation")
)
