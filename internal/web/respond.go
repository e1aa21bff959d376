package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Snoopy-too/fidels-pizza/internal/models"
)

// RespondJSON writes a JSON response with the given status code
func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// RespondError writes an error response in JSON format
func RespondError(w http.ResponseWriter, statusCode int, message, requestID string) {
	RespondJSON(w, statusCode, map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	})
}

// ErrorStatus maps domain errors to HTTP status codes
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrMenuItemNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrOrderFinalized):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotOrderOwner):
		return http.StatusForbidden
	case errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrMenuItemUnavailable),
		errors.Is(err, models.ErrInvalidOrderStatus),
		errors.Is(err, models.ErrInvalidPickupTime),
		errors.Is(err, models.ErrInvalidAccessCode),
		errors.Is(err, models.ErrInvalidResetToken),
		errors.Is(err, models.ErrWrongPassword),
		errors.Is(err, models.ErrConfirmRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes a request body, rejecting unknown fields
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
