package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/domain/workentry"
	"github.com/craneworks/craneops-backend-go/internal/handler/http/middleware"
	"github.com/craneworks/craneops-backend-go/internal/handler/http/response"
	workentrysvc "github.com/craneworks/craneops-backend-go/internal/service/workentry"
)

type WorkEntryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type workEntryHandlerImpl struct {
	workEntryService *workentrysvc.Service
}

func NewWorkEntryHandler(workEntryService *workentrysvc.Service) WorkEntryHandler {
	return &workEntryHandlerImpl{workEntryService: workEntryService}
}

func (h *workEntryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workentry.CreateWorkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.workEntryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Work entry created", workentry.ToResponse(entry))
}

// List scopes arbejder callers to their own entries. Byggeleder and chef may
// filter by any employee.
func (h *workEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := workentry.WorkEntryFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}

	if middleware.Role(r) == string(employee.RoleArbejder) {
		own := middleware.EmployeeID(r)
		filter.EmployeeID = &own
	} else if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("task_id"); v != "" {
		filter.TaskID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("from_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "from_date must be YYYY-MM-DD", nil)
			return
		}
		filter.FromDate = &d
	}
	if v := r.URL.Query().Get("to_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "to_date must be YYYY-MM-DD", nil)
			return
		}
		filter.ToDate = &d
	}

	entries, total, err := h.workEntryService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]workentry.WorkEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = workentry.ToResponse(e)
	}
	response.SuccessWithMeta(w, items, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *workEntryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.workEntryService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if middleware.Role(r) == string(employee.RoleArbejder) && entry.EmployeeID != middleware.EmployeeID(r) {
		response.HandleError(w, workentry.ErrNotEntryOwner)
		return
	}
	response.Success(w, workentry.ToResponse(entry))
}

func (h *workEntryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req workentry.UpdateWorkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.EmployeeID = middleware.EmployeeID(r)

	entry, err := h.workEntryService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work entry updated", workentry.ToResponse(entry))
}

func (h *workEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.workEntryService.Delete(r.Context(), chi.URLParam(r, "id"), middleware.EmployeeID(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work entry deleted", nil)
}

func (h *workEntryHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	entry, err := h.workEntryService.Submit(r.Context(), chi.URLParam(r, "id"), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work entry submitted", workentry.ToResponse(entry))
}

func (h *workEntryHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	entry, err := h.workEntryService.Decide(r.Context(), workentry.DecideWorkEntryRequest{
		ID:        chi.URLParam(r, "id"),
		DeciderID: middleware.EmployeeID(r),
		Approve:   true,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work entry confirmed", workentry.ToResponse(entry))
}

func (h *workEntryHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req workentry.DecideWorkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.DeciderID = middleware.EmployeeID(r)
	req.Approve = false
	if req.RejectionReason == nil || *req.RejectionReason == "" {
		response.BadRequest(w, "rejection_reason is required", nil)
		return
	}

	entry, err := h.workEntryService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work entry rejected", workentry.ToResponse(entry))
}
