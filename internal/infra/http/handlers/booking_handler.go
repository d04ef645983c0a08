package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/internal/infra/queue"
	"github.com/santoscleaning/website-api/internal/usecase"
	"github.com/santoscleaning/website-api/pkg/logger"
	"github.com/santoscleaning/website-api/pkg/metrics"
)

type BookingHandler struct {
	Bookings entity.BookingRepositoryInterface
	Producer usecase.QueueProducerInterface
	Validate *validator.Validate
	Log      logger.Logger
}

func NewBookingHandler(bookings entity.BookingRepositoryInterface, producer usecase.QueueProducerInterface, validate *validator.Validate, log logger.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Producer: producer, Validate: validate, Log: log}
}

type BookingRequest struct {
	CustomerName        string   `json:"customer_name" validate:"required"`
	Email               string   `json:"email" validate:"required,email"`
	Phone               string   `json:"phone" validate:"required"`
	ServiceType         string   `json:"service_type" validate:"required"`
	PreferredDate       string   `json:"preferred_date" validate:"required"`
	PreferredTime       string   `json:"preferred_time" validate:"required"`
	Address             string   `json:"address" validate:"required"`
	SpecialInstructions string   `json:"special_instructions"`
	EstimatedPrice      *float64 `json:"estimated_price"`
}

func (h *BookingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	booking, err := entity.NewBooking(
		req.CustomerName, req.Email, req.Phone, req.ServiceType,
		req.PreferredDate, req.PreferredTime, req.Address,
		req.SpecialInstructions, req.EstimatedPrice,
	)
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	id, err := h.Bookings.Insert(r.Context(), booking)
	if err != nil {
		writeStoreError(w, err, "Failed to create booking")
		return
	}

	metrics.RecordBookingCreated()
	h.Log.Info("new booking received", "customer", booking.CustomerName, "service", booking.ServiceType)

	if h.Producer != nil {
		payload := queue.NotificationPayload{
			Kind:        queue.KindBooking,
			Name:        booking.CustomerName,
			Email:       booking.Email,
			Phone:       booking.Phone,
			ServiceType: booking.ServiceType,
			Message:     booking.SpecialInstructions,
		}
		if err := h.Producer.PublishNotification(r.Context(), payload); err != nil {
			h.Log.Error("booking notification publish failed", "error", err)
			metrics.RecordNotificationError()
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"message":    "Booking request submitted successfully",
		"booking_id": id,
	})
}
