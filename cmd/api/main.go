package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/craneworks/craneops-backend-go/internal/config"
	appHTTP "github.com/craneworks/craneops-backend-go/internal/handler/http"
	"github.com/craneworks/craneops-backend-go/internal/pkg/cron"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
	"github.com/craneworks/craneops-backend-go/internal/pkg/email"
	"github.com/craneworks/craneops-backend-go/internal/pkg/jwt"
	"github.com/craneworks/craneops-backend-go/internal/pkg/sse"
	"github.com/craneworks/craneops-backend-go/internal/pkg/zenegy"
	"github.com/craneworks/craneops-backend-go/internal/repository/postgresql"
	assignmentService "github.com/craneworks/craneops-backend-go/internal/service/assignment"
	authService "github.com/craneworks/craneops-backend-go/internal/service/auth"
	availabilityService "github.com/craneworks/craneops-backend-go/internal/service/availability"
	dashboardService "github.com/craneworks/craneops-backend-go/internal/service/dashboard"
	employeeService "github.com/craneworks/craneops-backend-go/internal/service/employee"
	hiringService "github.com/craneworks/craneops-backend-go/internal/service/hiring"
	leaveService "github.com/craneworks/craneops-backend-go/internal/service/leave"
	masterService "github.com/craneworks/craneops-backend-go/internal/service/master"
	notificationService "github.com/craneworks/craneops-backend-go/internal/service/notification"
	payrollService "github.com/craneworks/craneops-backend-go/internal/service/payroll"
	projectService "github.com/craneworks/craneops-backend-go/internal/service/project"
	workentryService "github.com/craneworks/craneops-backend-go/internal/service/workentry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.Default()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	skillRepo := postgresql.NewSkillRepository(db)
	craneRepo := postgresql.NewCraneRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db)
	hiringRepo := postgresql.NewHiringRepository(db)
	workEntryRepo := postgresql.NewWorkEntryRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	zenegyClient := zenegy.NewClient(cfg.Zenegy)
	hub := sse.NewHub()

	notifier := notificationService.NewService(notificationRepo, hub, logger, notificationService.Config{})
	defer notifier.Stop()

	authSvc := authService.NewService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewService(employeeRepo, skillRepo)
	masterSvc := masterService.NewService(craneRepo)
	projectSvc := projectService.NewService(db, projectRepo, taskRepo, craneRepo)
	availabilitySvc := availabilityService.NewService(employeeRepo, skillRepo, craneRepo, taskRepo, assignmentRepo, calendarRepo)
	assignmentSvc := assignmentService.NewService(db, taskRepo, assignmentRepo, employeeRepo, hiringRepo, availabilitySvc, notifier, emailService, logger)
	workEntrySvc := workentryService.NewService(workEntryRepo, taskRepo, notifier)
	leaveSvc := leaveService.NewService(leaveRequestRepo, leaveBalanceRepo, employeeRepo, notifier, emailService, logger)
	payrollSvc := payrollService.NewService(db, payrollRepo, workEntryRepo, employeeRepo, zenegyClient, notifier, logger)
	hiringSvc := hiringService.NewService(hiringRepo)
	dashboardSvc := dashboardService.NewService(dashboardRepo, calendarRepo, leaveSvc)

	scheduler := cron.NewScheduler(logger)
	scheduler.AddJob("leave-balance-reconciliation", 24*time.Hour, func(ctx context.Context) error {
		return leaveSvc.ReconcileBalances(ctx, time.Now().Year())
	})
	scheduler.AddJob("payroll-period-rollover", 24*time.Hour, payrollSvc.PeriodRollover)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Master:       appHTTP.NewMasterHandler(masterSvc),
		Project:      appHTTP.NewProjectHandler(projectSvc),
		Task:         appHTTP.NewTaskHandler(projectSvc, availabilitySvc),
		Assignment:   appHTTP.NewAssignmentHandler(assignmentSvc),
		WorkEntry:    appHTTP.NewWorkEntryHandler(workEntrySvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Hiring:       appHTTP.NewHiringHandler(hiringSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Notification: appHTTP.NewNotificationHandler(notifier, jwtService),
	}

	router := appHTTP.NewRouter(jwtService, handlers, []string{cfg.App.FrontendURL})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
}
