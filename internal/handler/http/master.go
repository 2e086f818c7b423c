package http

import (
	"encoding/json"
	"net/http"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/master"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
	"github.com/bookstore-chain/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	CreateStore(w http.ResponseWriter, r *http.Request)
	GetStore(w http.ResponseWriter, r *http.Request)
	ListStores(w http.ResponseWriter, r *http.Request)
	UpdateStore(w http.ResponseWriter, r *http.Request)
	DeleteStore(w http.ResponseWriter, r *http.Request)

	CreateShift(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// CreateStore implements MasterHandler
func (h *masterHandlerImpl) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req store.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.masterService.CreateStore(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Store created", result)
}

// GetStore implements MasterHandler
func (h *masterHandlerImpl) GetStore(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetStore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListStores implements MasterHandler
func (h *masterHandlerImpl) ListStores(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListStores(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateStore implements MasterHandler
func (h *masterHandlerImpl) UpdateStore(w http.ResponseWriter, r *http.Request) {
	var req store.UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateStore(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store updated", result)
}

// DeleteStore implements MasterHandler
func (h *masterHandlerImpl) DeleteStore(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteStore(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store deleted", nil)
}

// CreateShift implements MasterHandler
func (h *masterHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.masterService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", result)
}

// GetShift implements MasterHandler
func (h *masterHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetShift(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListShifts implements MasterHandler
func (h *masterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateShift implements MasterHandler
func (h *masterHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.masterService.UpdateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated", result)
}

// DeleteShift implements MasterHandler
func (h *masterHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}
