package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/domain/leave"
	"github.com/craneworks/craneops-backend-go/internal/handler/http/middleware"
	"github.com/craneworks/craneops-backend-go/internal/handler/http/response"
	leavesvc "github.com/craneworks/craneops-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	EmployeeBalance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService *leavesvc.Service
}

func NewLeaveHandler(leaveService *leavesvc.Service) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request created", request)
}

// List scopes arbejder callers to their own requests. Byggeleder and chef may
// filter by any employee.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveRequestFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}

	if middleware.Role(r) == string(employee.RoleArbejder) {
		own := middleware.EmployeeID(r)
		filter.EmployeeID = &own
	} else if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("type"); v != "" {
		filter.Type = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	requests, total, err := h.leaveService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, requests, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *leaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	request, err := h.leaveService.GetRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if middleware.Role(r) == string(employee.RoleArbejder) && request.EmployeeID != middleware.EmployeeID(r) {
		response.Forbidden(w, "Insufficient permissions")
		return
	}
	response.Success(w, request)
}

func (h *leaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req leave.DecideLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")
	req.DeciderID = middleware.EmployeeID(r)
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.leaveService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request processed", request)
}

// Balance returns the caller's own balance for the requested year, defaulting
// to the current one.
func (h *leaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	h.writeBalance(w, r, middleware.EmployeeID(r))
}

// EmployeeBalance returns any employee's balance, for managers.
func (h *leaveHandlerImpl) EmployeeBalance(w http.ResponseWriter, r *http.Request) {
	h.writeBalance(w, r, chi.URLParam(r, "id"))
}

func (h *leaveHandlerImpl) writeBalance(w http.ResponseWriter, r *http.Request, employeeID string) {
	year := queryInt(r, "year", time.Now().Year())

	balance, err := h.leaveService.GetBalance(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, balance)
}
