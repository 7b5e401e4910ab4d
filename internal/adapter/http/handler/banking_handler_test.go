package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mariner/fueleuledger/internal/adapter/http/dto"
	"github.com/mariner/fueleuledger/internal/domain"
	"github.com/mariner/fueleuledger/internal/usecase"
)

type bankingServiceStub struct {
	bankFn  func(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error)
	applyFn func(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error)
	totalFn func(ctx context.Context, vesselID string, period int) (decimal.Decimal, error)
}

func (s *bankingServiceStub) Bank(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error) {
	return s.bankFn(ctx, input)
}

func (s *bankingServiceStub) Apply(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error) {
	return s.applyFn(ctx, input)
}

func (s *bankingServiceStub) GetBankedTotal(ctx context.Context, vesselID string, period int) (decimal.Decimal, error) {
	return s.totalFn(ctx, vesselID, period)
}

func TestBankingHandler_Bank_Success(t *testing.T) {
	var captured usecase.BankingInput

	handler := NewBankingHandler(&bankingServiceStub{
		bankFn: func(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error) {
			captured = input
			return &domain.BankingResult{
				VesselID:      input.VesselID,
				Period:        input.Period,
				BalanceBefore: decimal.NewFromInt(5000),
				Applied:       input.Amount,
				BalanceAfter:  decimal.NewFromInt(3000),
			}, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.BankingRequest{
		VesselID: "IMO9074729",
		Period:   2025,
		Amount:   decimal.NewFromInt(2000),
	})

	req := httptest.NewRequest(http.MethodPost, "/banking/bank", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Bank(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if captured.VesselID != "IMO9074729" || captured.Period != 2025 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.BankingResultResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.BalanceAfter.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected balance_after 3000, got %s", resp.BalanceAfter)
	}
}

func TestBankingHandler_Bank_InvalidBody(t *testing.T) {
	handler := NewBankingHandler(&bankingServiceStub{
		bankFn: func(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error) {
			t.Fatal("Bank should not be called")
			return nil, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/banking/bank", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	handler.Bank(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBankingHandler_Bank_InsufficientSurplus(t *testing.T) {
	handler := NewBankingHandler(&bankingServiceStub{
		bankFn: func(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error) {
			return nil, domain.ErrInsufficientSurplus
		},
	}, nil)

	body, _ := json.Marshal(dto.BankingRequest{VesselID: "IMO9074729", Period: 2025, Amount: decimal.NewFromInt(9000)})
	req := httptest.NewRequest(http.MethodPost, "/banking/bank", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Bank(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestBankingHandler_Apply_InsufficientBanked(t *testing.T) {
	handler := NewBankingHandler(&bankingServiceStub{
		applyFn: func(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error) {
			return nil, domain.ErrInsufficientBanked
		},
	}, nil)

	body, _ := json.Marshal(dto.BankingRequest{VesselID: "IMO9074729", Period: 2025, Amount: decimal.NewFromInt(500)})
	req := httptest.NewRequest(http.MethodPost, "/banking/apply", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Apply(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

type retrierStub struct {
	calls int
}

func (r *retrierStub) Retry(ctx context.Context, operation func() error) error {
	r.calls++
	return operation()
}

func TestBankingHandler_Apply_UsesRetrier(t *testing.T) {
	retrier := &retrierStub{}
	handler := NewBankingHandler(&bankingServiceStub{
		applyFn: func(ctx context.Context, input usecase.BankingInput) (*domain.BankingResult, error) {
			return &domain.BankingResult{VesselID: input.VesselID, Period: input.Period}, nil
		},
	}, retrier)

	body, _ := json.Marshal(dto.BankingRequest{VesselID: "IMO9074729", Period: 2025, Amount: decimal.NewFromInt(100)})
	req := httptest.NewRequest(http.MethodPost, "/banking/apply", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Apply(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if retrier.calls != 1 {
		t.Fatalf("expected retrier to wrap the call, got %d calls", retrier.calls)
	}
}

func TestBankingHandler_GetTotal(t *testing.T) {
	handler := NewBankingHandler(&bankingServiceStub{
		totalFn: func(ctx context.Context, vesselID string, period int) (decimal.Decimal, error) {
			if vesselID != "IMO9074729" || period != 2025 {
				t.Fatalf("unexpected args %s %d", vesselID, period)
			}
			return decimal.NewFromInt(7500), nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/banking/IMO9074729/total?period=2025", nil)
	req = setChiURLParam(req, "vesselID", "IMO9074729")
	rec := httptest.NewRecorder()

	handler.GetTotal(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.BankedTotalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Total.Equal(decimal.NewFromInt(7500)) {
		t.Fatalf("expected total 7500, got %s", resp.Total)
	}
}
