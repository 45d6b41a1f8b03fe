package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/handler/http/response"
	employeesvc "github.com/craneworks/craneops-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	GetSkills(w http.ResponseWriter, r *http.Request)
	AddSkill(w http.ResponseWriter, r *http.Request)
	RemoveSkill(w http.ResponseWriter, r *http.Request)
	AddCertificate(w http.ResponseWriter, r *http.Request)
	RemoveCertificate(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService *employeesvc.Service
}

func NewEmployeeHandler(employeeService *employeesvc.Service) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created", employee.ToResponse(emp))
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if v := r.URL.Query().Get("role"); v != "" {
		filter.Role = &v
	}
	if v := r.URL.Query().Get("is_active"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}
	if v := r.URL.Query().Get("search"); v != "" {
		filter.Search = &v
	}

	employees, total, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]employee.EmployeeResponse, len(employees))
	for i, e := range employees {
		items[i] = employee.ToResponse(e)
	}
	response.SuccessWithMeta(w, items, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.ToResponse(emp))
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	emp, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated", employee.ToResponse(emp))
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}

func (h *employeeHandlerImpl) GetSkills(w http.ResponseWriter, r *http.Request) {
	skills, certs, err := h.employeeService.GetSkills(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"skills":       skills,
		"certificates": certs,
	})
}

type addSkillRequest struct {
	CraneTypeID          string  `json:"crane_type_id"`
	CertificationExpires *string `json:"certification_expires,omitempty"`
}

func (h *employeeHandlerImpl) AddSkill(w http.ResponseWriter, r *http.Request) {
	var req addSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.CraneTypeID == "" {
		response.BadRequest(w, "Crane type ID is required", nil)
		return
	}

	skill := employee.WorkerSkill{
		EmployeeID:  chi.URLParam(r, "id"),
		CraneTypeID: req.CraneTypeID,
	}
	if req.CertificationExpires != nil {
		expires, err := time.Parse("2006-01-02", *req.CertificationExpires)
		if err != nil {
			response.BadRequest(w, "certification_expires must be YYYY-MM-DD", nil)
			return
		}
		skill.CertificationExpires = &expires
	}

	created, err := h.employeeService.AddSkill(r.Context(), skill)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Skill added", created)
}

func (h *employeeHandlerImpl) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.RemoveSkill(r.Context(), chi.URLParam(r, "skillID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Skill removed", nil)
}

type addCertificateRequest struct {
	CertificateTypeID string  `json:"certificate_type_id"`
	CertificateNumber *string `json:"certificate_number,omitempty"`
	Expires           *string `json:"expires,omitempty"`
}

func (h *employeeHandlerImpl) AddCertificate(w http.ResponseWriter, r *http.Request) {
	var req addCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.CertificateTypeID == "" {
		response.BadRequest(w, "Certificate type ID is required", nil)
		return
	}

	cert := employee.WorkerCertificate{
		EmployeeID:        chi.URLParam(r, "id"),
		CertificateTypeID: req.CertificateTypeID,
		CertificateNumber: req.CertificateNumber,
	}
	if req.Expires != nil {
		expires, err := time.Parse("2006-01-02", *req.Expires)
		if err != nil {
			response.BadRequest(w, "expires must be YYYY-MM-DD", nil)
			return
		}
		cert.Expires = &expires
	}

	created, err := h.employeeService.AddCertificate(r.Context(), cert)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Certificate added", created)
}

func (h *employeeHandlerImpl) RemoveCertificate(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.RemoveCertificate(r.Context(), chi.URLParam(r, "certID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Certificate removed", nil)
}

// queryInt parses an integer query parameter with a fallback.
func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
