package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/usecase"
	"github.com/mariner/fueleuledger/internal/usecase/mocks"
)

const (
	testVessel = "IMO9074729"
	testPeriod = 2025
)

type bankingFixture struct {
	balanceRepo *mocks.MockBalanceRepository
	bankRepo    *mocks.MockBankEntryRepository
	outboxRepo  *mocks.MockOutboxRepository
	uc          *usecase.BankingUseCase
}

func newBankingFixture() *bankingFixture {
	f := &bankingFixture{
		balanceRepo: mocks.NewMockBalanceRepository(),
		bankRepo:    mocks.NewMockBankEntryRepository(),
		outboxRepo:  mocks.NewMockOutboxRepository(),
	}
	f.uc = usecase.NewBankingUseCase(
		mocks.NewMockTransactionManager(),
		f.balanceRepo,
		f.bankRepo,
		f.outboxRepo,
		nil,
		mocks.NewMockIDGenerator(),
		nil,
	)
	return f
}

func (f *bankingFixture) ledgerValue(t *testing.T) decimal.Decimal {
	t.Helper()
	b, err := f.balanceRepo.Get(context.Background(), testVessel, testPeriod)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	return b.Value
}

func (f *bankingFixture) bankedTotal(t *testing.T) decimal.Decimal {
	t.Helper()
	total, err := f.bankRepo.SumAmounts(context.Background(), testVessel, testPeriod)
	if err != nil {
		t.Fatalf("sum amounts: %v", err)
	}
	return total
}

func TestBankingUseCase_BankThenApply(t *testing.T) {
	// Bank 6000 out of 10000, then apply it back.
	f := newBankingFixture()
	f.balanceRepo.Seed(testVessel, testPeriod, decimal.NewFromInt(10000))
	ctx := context.Background()

	banked, err := f.uc.Bank(ctx, usecase.BankingInput{
		VesselID: testVessel,
		Period:   testPeriod,
		Amount:   decimal.NewFromInt(6000),
	})
	if err != nil {
		t.Fatalf("Bank() error: %v", err)
	}

	if !banked.BalanceBefore.Equal(decimal.NewFromInt(10000)) ||
		!banked.BalanceAfter.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("Bank() result = before %s after %s, want 10000/4000",
			banked.BalanceBefore, banked.BalanceAfter)
	}

	if got := f.ledgerValue(t); !got.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("ledger = %s, want 4000", got)
	}
	if got := f.bankedTotal(t); !got.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("banked total = %s, want 6000", got)
	}

	applied, err := f.uc.Apply(ctx, usecase.BankingInput{
		VesselID: testVessel,
		Period:   testPeriod,
		Amount:   decimal.NewFromInt(6000),
	})
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if !applied.BalanceAfter.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("Apply() balance after = %s, want 10000", applied.BalanceAfter)
	}
	if got := f.bankedTotal(t); !got.IsZero() {
		t.Errorf("banked total after apply = %s, want 0", got)
	}
}

func TestBankingUseCase_BankInsufficientSurplus(t *testing.T) {
	f := newBankingFixture()
	f.balanceRepo.Seed(testVessel, testPeriod, decimal.NewFromInt(10000))

	_, err := f.uc.Bank(context.Background(), usecase.BankingInput{
		VesselID: testVessel,
		Period:   testPeriod,
		Amount:   decimal.NewFromInt(15000),
	})
	if !errors.Is(err, domain.ErrInsufficientSurplus) {
		t.Fatalf("Bank() error = %v, want ErrInsufficientSurplus", err)
	}

	// No partial state: ledger untouched, nothing banked.
	if got := f.ledgerValue(t); !got.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("ledger = %s, want 10000", got)
	}
	if got := f.bankedTotal(t); !got.IsZero() {
		t.Errorf("banked total = %s, want 0", got)
	}
}

func TestBankingUseCase_BankFromDeficit(t *testing.T) {
	f := newBankingFixture()
	f.balanceRepo.Seed(testVessel, testPeriod, decimal.NewFromInt(-5000))

	_, err := f.uc.Bank(context.Background(), usecase.BankingInput{
		VesselID: testVessel,
		Period:   testPeriod,
		Amount:   decimal.NewFromInt(100),
	})
	if !errors.Is(err, domain.ErrInsufficientSurplus) {
		t.Fatalf("Bank() error = %v, want ErrInsufficientSurplus", err)
	}
}

func TestBankingUseCase_ApplyInsufficientBanked(t *testing.T) {
	f := newBankingFixture()
	f.balanceRepo.Seed(testVessel, testPeriod, decimal.NewFromInt(10000))
	ctx := context.Background()

	if _, err := f.uc.Bank(ctx, usecase.BankingInput{
		VesselID: testVessel, Period: testPeriod, Amount: decimal.NewFromInt(2000),
	}); err != nil {
		t.Fatalf("Bank() error: %v", err)
	}

	_, err := f.uc.Apply(ctx, usecase.BankingInput{
		VesselID: testVessel, Period: testPeriod, Amount: decimal.NewFromInt(3000),
	})
	if !errors.Is(err, domain.ErrInsufficientBanked) {
		t.Fatalf("Apply() error = %v, want ErrInsufficientBanked", err)
	}

	// Failed apply must not consume anything.
	if got := f.bankedTotal(t); !got.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("banked total = %s, want 2000", got)
	}
	if got := f.ledgerValue(t); !got.Equal(decimal.NewFromInt(8000)) {
		t.Errorf("ledger = %s, want 8000", got)
	}
}

func TestBankingUseCase_ApplyConsumesFIFO(t *testing.T) {
	f := newBankingFixture()
	f.balanceRepo.Seed(testVessel, testPeriod, decimal.NewFromInt(10000))
	ctx := context.Background()

	// Three slices: 1000, 2000, 3000, banked in that order.
	for _, amount := range []int64{1000, 2000, 3000} {
		if _, err := f.uc.Bank(ctx, usecase.BankingInput{
			VesselID: testVessel, Period: testPeriod, Amount: decimal.NewFromInt(amount),
		}); err != nil {
			t.Fatalf("Bank(%d) error: %v", amount, err)
		}
	}

	// 2500 spans the first two entries: 1000 fully consumed, 2000 reduced
	// to 500, 3000 untouched.
	if _, err := f.uc.Apply(ctx, usecase.BankingInput{
		VesselID: testVessel, Period: testPeriod, Amount: decimal.NewFromInt(2500),
	}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	entries := f.bankRepo.Entries(testVessel, testPeriod)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !entries[0].Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("oldest remaining entry = %s, want 500", entries[0].Amount)
	}
	if !entries[1].Amount.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("newest entry = %s, want 3000", entries[1].Amount)
	}

	// An amount smaller than the oldest entry reduces only that entry.
	if _, err := f.uc.Apply(ctx, usecase.BankingInput{
		VesselID: testVessel, Period: testPeriod, Amount: decimal.NewFromInt(200),
	}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	entries = f.bankRepo.Entries(testVessel, testPeriod)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !entries[0].Amount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("oldest entry = %s, want 300", entries[0].Amount)
	}

	for _, e := range entries {
		if !e.Amount.IsPositive() {
			t.Errorf("entry %s has non-positive amount %s", e.ID, e.Amount)
		}
	}
}

func TestBankingUseCase_Conservation(t *testing.T) {
	// ledger + banked stays invariant across any succeeding sequence.
	f := newBankingFixture()
	f.balanceRepo.Seed(testVessel, testPeriod, decimal.NewFromInt(10000))
	ctx := context.Background()

	ops := []struct {
		op     string
		amount int64
	}{
		{"bank", 4000},
		{"bank", 1500},
		{"apply", 2000},
		{"bank", 3000},
		{"apply", 6500},
	}

	total := decimal.NewFromInt(10000)
	for _, op := range ops {
		input := usecase.BankingInput{
			VesselID: testVessel, Period: testPeriod, Amount: decimal.NewFromInt(op.amount),
		}
		var err error
		if op.op == "bank" {
			_, err = f.uc.Bank(ctx, input)
		} else {
			_, err = f.uc.Apply(ctx, input)
		}
		if err != nil {
			t.Fatalf("%s(%d) error: %v", op.op, op.amount, err)
		}

		sum := f.ledgerValue(t).Add(f.bankedTotal(t))
		if !sum.Equal(total) {
			t.Fatalf("after %s(%d): ledger+banked = %s, want %s", op.op, op.amount, sum, total)
		}
	}
}

func TestBankingUseCase_InvalidInputs(t *testing.T) {
	f := newBankingFixture()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   usecase.BankingInput
		wantErr error
	}{
		{
			name:    "zero amount",
			input:   usecase.BankingInput{VesselID: testVessel, Period: testPeriod, Amount: decimal.Zero},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			input:   usecase.BankingInput{VesselID: testVessel, Period: testPeriod, Amount: decimal.NewFromInt(-10)},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "bad period",
			input:   usecase.BankingInput{VesselID: testVessel, Period: 1999, Amount: decimal.NewFromInt(10)},
			wantErr: domain.ErrInvalidPeriod,
		},
		{
			name:    "bad vessel id",
			input:   usecase.BankingInput{VesselID: "", Period: testPeriod, Amount: decimal.NewFromInt(10)},
			wantErr: domain.ErrInvalidVesselID,
		},
		{
			name:    "unknown vessel",
			input:   usecase.BankingInput{VesselID: "IMO9999999", Period: testPeriod, Amount: decimal.NewFromInt(10)},
			wantErr: domain.ErrBalanceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.uc.Bank(ctx, tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Bank() error = %v, want %v", err, tt.wantErr)
			}
			if _, err := f.uc.Apply(ctx, tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Apply() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBankingUseCase_GetBankedTotalEmpty(t *testing.T) {
	f := newBankingFixture()

	total, err := f.uc.GetBankedTotal(context.Background(), testVessel, testPeriod)
	if err != nil {
		t.Fatalf("GetBankedTotal() error: %v", err)
	}
	if !total.IsZero() {
		t.Errorf("total = %s, want 0", total)
	}
}

func TestBankingUseCase_EmitsOutboxEvents(t *testing.T) {
	f := newBankingFixture()
	f.balanceRepo.Seed(testVessel, testPeriod, decimal.NewFromInt(10000))
	ctx := context.Background()

	if _, err := f.uc.Bank(ctx, usecase.BankingInput{
		VesselID: testVessel, Period: testPeriod, Amount: decimal.NewFromInt(1000),
	}); err != nil {
		t.Fatalf("Bank() error: %v", err)
	}
	if _, err := f.uc.Apply(ctx, usecase.BankingInput{
		VesselID: testVessel, Period: testPeriod, Amount: decimal.NewFromInt(1000),
	}); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	events := f.outboxRepo.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].EventType != domain.EventTypeSurplusBanked {
		t.Errorf("first event = %s, want %s", events[0].EventType, domain.EventTypeSurplusBanked)
	}
	if events[1].EventType != domain.EventTypeBankedApplied {
		t.Errorf("second event = %s, want %s", events[1].EventType, domain.EventTypeBankedApplied)
	}
}
