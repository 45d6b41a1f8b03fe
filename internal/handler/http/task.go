package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/craneworks/craneops-backend-go/internal/domain/task"
	"github.com/craneworks/craneops-backend-go/internal/handler/http/response"
	availabilitysvc "github.com/craneworks/craneops-backend-go/internal/service/availability"
	projectsvc "github.com/craneworks/craneops-backend-go/internal/service/project"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	AvailableWorkers(w http.ResponseWriter, r *http.Request)
	WorkerAvailability(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	projectService      *projectsvc.Service
	availabilityService *availabilitysvc.Service
}

func NewTaskHandler(projectService *projectsvc.Service, availabilityService *availabilitysvc.Service) TaskHandler {
	return &taskHandlerImpl{
		projectService:      projectService,
		availabilityService: availabilityService,
	}
}

func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	t, err := h.projectService.CreateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Task created", t)
}

func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := task.TaskFilter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if v := r.URL.Query().Get("project_id"); v != "" {
		filter.ProjectID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	tasks, total, err := h.projectService.ListTasks(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, tasks, response.NewMeta(filter.Page, filter.Limit, total))
}

func (h *taskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.projectService.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

func (h *taskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	t, err := h.projectService.UpdateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task updated", t)
}

// AvailableWorkers lists every active operator with qualification results for
// the task. include_availability=true also runs the scheduling check, with an
// optional date=YYYY-MM-DD as the target start date.
func (h *taskHandlerImpl) AvailableWorkers(w http.ResponseWriter, r *http.Request) {
	opts := availabilitysvc.EligibilityOptions{
		IncludeAvailability: r.URL.Query().Get("include_availability") == "true",
	}
	if v := r.URL.Query().Get("date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		opts.TargetDate = &d
	}

	workers, err := h.availabilityService.AvailableWorkers(r.Context(), chi.URLParam(r, "id"), opts)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, workers)
}

// WorkerAvailability answers the scheduling question for one employee,
// independent of any task.
func (h *taskHandlerImpl) WorkerAvailability(w http.ResponseWriter, r *http.Request) {
	var targetDate *time.Time
	if v := r.URL.Query().Get("date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		targetDate = &d
	}

	verdict, err := h.availabilityService.IsAvailable(r.Context(), chi.URLParam(r, "id"), targetDate, nil)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, verdict)
}
