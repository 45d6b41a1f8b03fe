package http

import (
	"net/http"

	"github.com/craneworks/craneops-backend-go/internal/handler/http/middleware"
	"github.com/craneworks/craneops-backend-go/internal/handler/http/response"
	dashboardsvc "github.com/craneworks/craneops-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Chef(w http.ResponseWriter, r *http.Request)
	Worker(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService *dashboardsvc.Service
}

func NewDashboardHandler(dashboardService *dashboardsvc.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *dashboardHandlerImpl) Chef(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.Chef(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, data)
}

func (h *dashboardHandlerImpl) Worker(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.Worker(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, data)
}
