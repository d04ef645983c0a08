package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/santoscleaning/website-api/internal/usecase"
)

type ContactHandler struct {
	CaptureLead *usecase.CaptureLeadUseCase
	Validate    *validator.Validate
}

func NewContactHandler(captureLead *usecase.CaptureLeadUseCase, validate *validator.Validate) *ContactHandler {
	return &ContactHandler{CaptureLead: captureLead, Validate: validate}
}

type ContactRequest struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Message    string `json:"message"`
	SMSConsent *bool  `json:"sms_consent" validate:"required"`
	Language   string `json:"language"`
	Source     string `json:"source"`
}

func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	output, err := h.CaptureLead.Execute(r.Context(), usecase.CaptureLeadInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Message:    req.Message,
		SMSConsent: *req.SMSConsent,
		Language:   req.Language,
		Source:     req.Source,
	})
	if err != nil {
		writeStoreError(w, err, "Failed to submit contact")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
