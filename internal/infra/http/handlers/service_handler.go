package handlers

import (
	"net/http"

	"github.com/santoscleaning/website-api/internal/entity"
)

type ServiceHandler struct {
	Services entity.ServiceRepositoryInterface
}

func NewServiceHandler(services entity.ServiceRepositoryInterface) *ServiceHandler {
	return &ServiceHandler{Services: services}
}

func (h *ServiceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.Services.ListActive(r.Context())
	if err != nil {
		writeStoreError(w, err, "Error fetching services")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"services": offerings})
}
