package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/santoscleaning/website-api/internal/infra/mongodb"
)

type HealthHandler struct {
	Mongo             *mongo.Client
	RabbitMQ          *amqp091.Connection
	PrimaryConfigured bool
	StartTime         time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(mongoClient *mongo.Client, rabbitMQ *amqp091.Connection, primaryConfigured bool) *HealthHandler {
	return &HealthHandler{
		Mongo:             mongoClient,
		RabbitMQ:          rabbitMQ,
		PrimaryConfigured: primaryConfigured,
		StartTime:         time.Now(),
	}
}

// HandleRoot is the liveness banner.
func (h *HealthHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Santos Cleaning Solutions API",
	})
}

// Handle probes the fallback store and reports dependency health. A
// dead document store is a hard failure; everything else is advisory.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	dbStatus := "connected"
	if err := mongodb.Ping(r.Context(), h.Mongo); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR",
			fmt.Sprintf("Database connection failed: %v", err))
		return
	}
	deps["mongodb"] = "healthy"

	if h.PrimaryConfigured {
		deps["supabase"] = "configured"
	} else {
		deps["supabase"] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       "healthy",
		Database:     dbStatus,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
