package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/craneworks/craneops-backend-go/internal/handler/http/middleware"
	"github.com/craneworks/craneops-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Master       MasterHandler
	Project      ProjectHandler
	Task         TaskHandler
	Assignment   AssignmentHandler
	WorkEntry    WorkEntryHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	Hiring       HiringHandler
	Dashboard    DashboardHandler
	Notification NotificationHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "craneops"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// The SSE stream authenticates with a token query parameter, it
		// cannot pass through the Verifier middleware.
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/sse-token", h.Auth.SSEToken)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}/availability", h.Task.WorkerAvailability)

				// Chef only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireChef)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)

					r.Get("/{id}/skills", h.Employee.GetSkills)
					r.Post("/{id}/skills", h.Employee.AddSkill)
					r.Delete("/{id}/skills/{skillID}", h.Employee.RemoveSkill)
					r.Post("/{id}/certificates", h.Employee.AddCertificate)
					r.Delete("/{id}/certificates/{certID}", h.Employee.RemoveCertificate)

					r.Get("/{id}/leave-balance", h.Leave.EmployeeBalance)
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/crane-categories", h.Master.ListCraneCategories)
				r.Get("/crane-types", h.Master.ListCraneTypes)
				r.Get("/crane-models", h.Master.ListCraneModels)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.List)
				r.Get("/{id}", h.Project.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireChef)
					r.Post("/", h.Project.Create)
					r.Put("/{id}/status", h.Project.UpdateStatus)
					r.Delete("/{id}", h.Project.Delete)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Get("/{id}", h.Task.Get)
				r.Get("/{id}/assignments", h.Assignment.ListByTask)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireChef)
					r.Post("/", h.Task.Create)
					r.Put("/{id}", h.Task.Update)
					r.Get("/{id}/available-workers", h.Task.AvailableWorkers)
				})
			})

			r.Route("/task-assignments", func(r chi.Router) {
				r.Use(middleware.RequireChef)
				r.Post("/", h.Assignment.Create)
				r.Post("/bulk", h.Assignment.BulkCreate)
				r.Delete("/{id}", h.Assignment.Delete)
			})

			r.Route("/work-entries", func(r chi.Router) {
				r.Get("/", h.WorkEntry.List)
				r.Post("/", h.WorkEntry.Create)
				r.Get("/{id}", h.WorkEntry.Get)
				r.Put("/{id}", h.WorkEntry.Update)
				r.Delete("/{id}", h.WorkEntry.Delete)
				r.Post("/{id}/submit", h.WorkEntry.Submit)

				// Byggeleder and chef
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireByggeleder)
					r.Post("/{id}/confirm", h.WorkEntry.Confirm)
					r.Post("/{id}/reject", h.WorkEntry.Reject)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Create)
				r.Get("/balance", h.Leave.Balance)
				r.Get("/requests/{id}", h.Leave.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireByggeleder)
					r.Put("/requests/{id}/decide", h.Leave.Decide)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/payslip", h.Payroll.Payslip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireChef)
					r.Get("/period", h.Payroll.CurrentPeriod)
					r.Get("/ready", h.Payroll.Ready)
					r.Post("/batches", h.Payroll.CreateBatch)
					r.Get("/batches", h.Payroll.ListBatches)
					r.Get("/batches/{id}", h.Payroll.GetBatch)
					r.Get("/payslips/{employeeID}", h.Payroll.Payslip)
				})
			})

			r.Route("/zenegy", func(r chi.Router) {
				r.Use(middleware.RequireChef)
				r.Get("/test-connection", h.Payroll.TestConnection)
				r.Post("/test-connection", h.Payroll.TestConnection)
			})

			r.Route("/hiring-requests", func(r chi.Router) {
				r.Use(middleware.RequireByggeleder)
				r.Get("/", h.Hiring.List)
				r.Post("/", h.Hiring.Create)
				r.Get("/{id}", h.Hiring.Get)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/worker", h.Dashboard.Worker)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireChef)
					r.Get("/", h.Dashboard.Chef)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Put("/read", h.Notification.MarkAsRead)
				r.Put("/read-all", h.Notification.MarkAllAsRead)
			})
		})
	})
	return r
}
