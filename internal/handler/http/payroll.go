package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/craneworks/craneops-backend-go/internal/handler/http/middleware"
	"github.com/craneworks/craneops-backend-go/internal/handler/http/response"
	payrollsvc "github.com/craneworks/craneops-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	CurrentPeriod(w http.ResponseWriter, r *http.Request)
	Ready(w http.ResponseWriter, r *http.Request)
	CreateBatch(w http.ResponseWriter, r *http.Request)
	ListBatches(w http.ResponseWriter, r *http.Request)
	GetBatch(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
	TestConnection(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService *payrollsvc.Service
}

func NewPayrollHandler(payrollService *payrollsvc.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) CurrentPeriod(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.payrollService.CurrentPeriod())
}

func (h *payrollHandlerImpl) Ready(w http.ResponseWriter, r *http.Request) {
	hours, err := h.payrollService.Ready(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, hours)
}

func (h *payrollHandlerImpl) CreateBatch(w http.ResponseWriter, r *http.Request) {
	batch, err := h.payrollService.CreateBatch(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll batch created", batch)
}

func (h *payrollHandlerImpl) ListBatches(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)

	batches, total, err := h.payrollService.ListBatches(r.Context(), limit, (page-1)*limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, batches, response.NewMeta(page, limit, total))
}

func (h *payrollHandlerImpl) GetBatch(w http.ResponseWriter, r *http.Request) {
	batch, err := h.payrollService.GetBatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, batch)
}

// Payslip renders a PDF for the period containing the date query parameter,
// defaulting to the current period. Without an employeeID path parameter the
// caller gets their own payslip.
func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		employeeID = middleware.EmployeeID(r)
	}

	anchor := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		anchor = d
	}
	period := payrollsvc.PeriodFor(anchor)

	pdf, err := h.payrollService.Payslip(r.Context(), employeeID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(
		`attachment; filename="payslip-%d-%02d.pdf"`, period.Year, period.Number))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *payrollHandlerImpl) TestConnection(w http.ResponseWriter, r *http.Request) {
	status, err := h.payrollService.TestConnection(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, status)
}
