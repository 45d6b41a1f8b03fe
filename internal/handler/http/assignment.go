package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/task"
	"github.com/craneworks/craneops-backend-go/internal/handler/http/response"
	assignmentsvc "github.com/craneworks/craneops-backend-go/internal/service/assignment"
)

type AssignmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	BulkCreate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListByTask(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService *assignmentsvc.Service
}

func NewAssignmentHandler(assignmentService *assignmentsvc.Service) AssignmentHandler {
	return &assignmentHandlerImpl{assignmentService: assignmentService}
}

// Create answers 200 instead of 201 when the employee already holds the
// assignment, so retried calls stay harmless.
func (h *assignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.assignmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result.AlreadyExisted {
		response.SuccessWithMessage(w, "Employee already assigned", result.Assignment)
		return
	}
	response.Created(w, "Assignment created", result.Assignment)
}

func (h *assignmentHandlerImpl) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req task.BulkCreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.assignmentService.BulkCreate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Assignments processed", result)
}

func (h *assignmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.assignmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment removed", nil)
}

func (h *assignmentHandlerImpl) ListByTask(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.assignmentService.ListByTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, assignments)
}
