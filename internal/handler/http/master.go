package http

import (
	"net/http"

	"github.com/craneworks/craneops-backend-go/internal/handler/http/response"
	mastersvc "github.com/craneworks/craneops-backend-go/internal/service/master"
)

type MasterHandler interface {
	ListCraneCategories(w http.ResponseWriter, r *http.Request)
	ListCraneTypes(w http.ResponseWriter, r *http.Request)
	ListCraneModels(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService *mastersvc.Service
}

func NewMasterHandler(masterService *mastersvc.Service) MasterHandler {
	return &masterHandlerImpl{masterService: masterService}
}

func (h *masterHandlerImpl) ListCraneCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.masterService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, categories)
}

func (h *masterHandlerImpl) ListCraneTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.masterService.ListTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

func (h *masterHandlerImpl) ListCraneModels(w http.ResponseWriter, r *http.Request) {
	craneTypeID := r.URL.Query().Get("crane_type_id")
	if craneTypeID == "" {
		response.BadRequest(w, "crane_type_id is required", nil)
		return
	}

	models, err := h.masterService.ListModels(r.Context(), craneTypeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, models)
}
