package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/project"
	"github.com/craneworks/craneops-backend-go/internal/handler/http/response"
	projectsvc "github.com/craneworks/craneops-backend-go/internal/service/project"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService *projectsvc.Service
}

func NewProjectHandler(projectService *projectsvc.Service) ProjectHandler {
	return &projectHandlerImpl{projectService: projectService}
}

func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	p, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Project created", p)
}

func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := project.ProjectFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("search"); v != "" {
		filter.Search = &v
	}

	projects, total, err := h.projectService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, projects, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *projectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.projectService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

type updateProjectStatusRequest struct {
	Status string `json:"status"`
}

func (h *projectHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateProjectStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	status := project.ProjectStatus(req.Status)
	switch status {
	case project.ProjectStatusActive, project.ProjectStatusCompleted, project.ProjectStatusCancelled:
	default:
		response.BadRequest(w, "status must be active, completed or cancelled", nil)
		return
	}

	p, err := h.projectService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Project status updated", p)
}

func (h *projectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Project deleted", nil)
}
