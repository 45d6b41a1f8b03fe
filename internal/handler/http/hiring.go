package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craneworks/craneops-backend-go/internal/handler/http/response"
	hiringsvc "github.com/craneworks/craneops-backend-go/internal/service/hiring"
)

type HiringHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type hiringHandlerImpl struct {
	hiringService *hiringsvc.Service
}

func NewHiringHandler(hiringService *hiringsvc.Service) HiringHandler {
	return &hiringHandlerImpl{hiringService: hiringService}
}

func (h *hiringHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req hiringsvc.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	request, err := h.hiringService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Hiring request created", request)
}

func (h *hiringHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *string
	if v := r.URL.Query().Get("status"); v != "" {
		status = &v
	}

	requests, err := h.hiringService.List(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

func (h *hiringHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	request, err := h.hiringService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, request)
}
