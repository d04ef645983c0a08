package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/santoscleaning/website-api/internal/entity"
)

// Demo records seeded during dashboard and webhook testing; the cleanup
// endpoint removes exactly these.
var demoLeads = entity.DemoLeadMatcher{
	Names: []string{
		"João Silva",
		"Maria Santos",
		"Carlos Oliveira",
		"Dashboard Test Lead",
		"Lead Teste",
		"Webhook Final Test",
		"Webhook Test Success",
	},
	Emails: []string{
		"joao@email.com",
		"maria@email.com",
		"carlos@email.com",
		"dashboard@test.com",
		"teste@email.com",
	},
	Sources: []string{
		"dashboard_test",
		"webhook_test",
	},
}

type LeadHandler struct {
	Leads entity.LeadRepositoryInterface
}

func NewLeadHandler(leads entity.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{Leads: leads}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := entity.LeadFilter{
		Status: r.URL.Query().Get("status"),
		Offset: queryInt(r, "offset", 0),
		Limit:  queryInt(r, "limit", 50),
	}

	leads, total, err := h.Leads.List(r.Context(), filter)
	if err != nil {
		writeStoreError(w, err, "Error fetching leads")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"leads":  leads,
		"total":  total,
		"offset": filter.Offset,
		"limit":  filter.Limit,
	})
}

type UpdateLeadRequest struct {
	Status     string `json:"status"`
	Notes      string `json:"notes"`
	AssignedTo string `json:"assigned_to"`
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	update := entity.LeadUpdate{
		Status:     req.Status,
		Notes:      req.Notes,
		AssignedTo: req.AssignedTo,
	}
	if update.IsEmpty() {
		writeErrorResponse(w, http.StatusBadRequest, "EMPTY_UPDATE", "No fields to update")
		return
	}

	// Status milestones get a timestamp alongside the transition.
	now := time.Now().UTC()
	switch update.Status {
	case entity.LeadStatusContacted:
		update.ContactedAt = &now
	case entity.LeadStatusConverted:
		update.ConvertedAt = &now
	}

	if err := h.Leads.Update(r.Context(), id, update); err != nil {
		writeStoreError(w, err, "Error updating lead")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Lead updated successfully",
	})
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Leads.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "Error deleting lead")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Lead deleted successfully",
	})
}

func (h *LeadHandler) HandleCleanupDemo(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Leads.DeleteDemo(r.Context(), demoLeads)
	if err != nil {
		writeStoreError(w, err, "Error cleaning up demo leads")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"message":       "Demo leads cleanup completed",
		"deleted_count": deleted,
	})
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	if value, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil && value >= 0 {
		return value
	}
	return defaultValue
}
