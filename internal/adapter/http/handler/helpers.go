package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mariner/fueleuledger/internal/adapter/http/dto"
	"github.com/mariner/fueleuledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError maps a domain error to a status code and writes the
// response. Pool allocation rejections carry the full violator list.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	var a21 *domain.Article21ViolationError
	if errors.As(err, &a21) {
		violations := make([]dto.ViolationDetail, len(a21.Violations))
		for i, v := range a21.Violations {
			violations[i] = dto.ViolationDetail{
				VesselID:      v.VesselID,
				Rule:          v.Rule,
				BalanceBefore: v.BalanceBefore,
				BalanceAfter:  v.BalanceAfter,
			}
		}

		writeJSON(w, http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:      message,
			Message:    err.Error(),
			Violations: violations,
		})

		return
	}

	writeError(w, mapDomainError(err), message, err.Error())
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBalanceNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrPoolNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidVesselID),
		errors.Is(err, domain.ErrEmptyPool),
		errors.Is(err, domain.ErrDuplicateMember):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientSurplus),
		errors.Is(err, domain.ErrInsufficientBanked),
		errors.Is(err, domain.ErrNegativePoolSum):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
