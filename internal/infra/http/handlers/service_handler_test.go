package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/santoscleaning/website-api/internal/entity"
)

func TestServiceHandlerListsActiveOfferings(t *testing.T) {
	services := new(MockServiceRepo)
	services.On("ListActive", mock.Anything).Return([]entity.ServiceOffering{
		{ID: "svc-1", Name: "Deep Cleaning", BasePrice: 159.0, Active: true},
	}, nil)

	h := NewServiceHandler(services)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)

	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Deep Cleaning")
	services.AssertExpectations(t)
}

func TestServiceHandlerMapsStoreFailure(t *testing.T) {
	services := new(MockServiceRepo)
	services.On("ListActive", mock.Anything).Return(nil, errors.New("no reachable servers"))

	h := NewServiceHandler(services)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)

	h.HandleList(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
