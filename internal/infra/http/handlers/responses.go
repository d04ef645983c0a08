package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/santoscleaning/website-api/internal/entity"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeValidationError answers a 422 with per-field detail.
func writeValidationError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":   "VALIDATION_ERROR",
		"details": validationDetails(err),
	})
}

// validationDetails flattens validator errors into field/message pairs.
func validationDetails(err error) []map[string]string {
	details := make([]map[string]string, 0)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			field := strings.ToLower(e.Field())
			message := "is invalid"
			switch e.Tag() {
			case "required":
				message = "is required"
			case "email":
				message = "must be a valid email address"
			case "min":
				message = "is too short"
			case "max":
				message = "is too long"
			}
			details = append(details, map[string]string{field: message})
		}
		return details
	}

	details = append(details, map[string]string{"body": err.Error()})
	return details
}

// writeStoreError is the single boundary mapping store failures to
// response codes.
func writeStoreError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, entity.ErrNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		return
	}
	writeErrorResponse(w, http.StatusInternalServerError, "STORE_ERROR", message)
}
