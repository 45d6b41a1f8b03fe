// Seeds an empty database with the crane taxonomy, a management account and a
// roster of fake crane operators. Intended for development environments only.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/craneworks/craneops-backend-go/internal/config"
	"github.com/craneworks/craneops-backend-go/internal/domain/employee"
	"github.com/craneworks/craneops-backend-go/internal/domain/project"
	"github.com/craneworks/craneops-backend-go/internal/domain/task"
	"github.com/craneworks/craneops-backend-go/internal/fixtures"
	"github.com/craneworks/craneops-backend-go/internal/pkg/database"
	"github.com/craneworks/craneops-backend-go/internal/repository/postgresql"
	employeeService "github.com/craneworks/craneops-backend-go/internal/service/employee"
	projectService "github.com/craneworks/craneops-backend-go/internal/service/project"
)

const workerCount = 12

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		log.Fatal("Error connecting to database:", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := gofakeit.Seed(11); err != nil {
		log.Fatal("Failed to seed rng:", err)
	}

	craneTypeIDs, err := seedTaxonomy(ctx, db)
	if err != nil {
		log.Fatal("Failed to seed crane taxonomy:", err)
	}
	fmt.Printf("Seeded %d crane types\n", len(craneTypeIDs))

	employeeRepo := postgresql.NewEmployeeRepository(db)
	skillRepo := postgresql.NewSkillRepository(db)
	employeeSvc := employeeService.NewService(employeeRepo, skillRepo)

	if err := seedEmployees(ctx, employeeSvc, craneTypeIDs); err != nil {
		log.Fatal("Failed to seed employees:", err)
	}
	fmt.Printf("Seeded %d employees\n", workerCount+2)

	craneRepo := postgresql.NewCraneRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	projectSvc := projectService.NewService(db, projectRepo, taskRepo, craneRepo)

	if err := seedProjects(ctx, projectSvc, craneTypeIDs); err != nil {
		log.Fatal("Failed to seed projects:", err)
	}
	fmt.Println("Seeded projects and tasks")
}

// seedTaxonomy loads certificate types, crane categories, types and models,
// returning the crane type ids for skill assignment.
func seedTaxonomy(ctx context.Context, db *database.DB) ([]string, error) {
	certIDs := make(map[string]string)
	for _, c := range fixtures.CertificateTypes() {
		var id string
		err := db.QueryRow(ctx,
			`INSERT INTO certificate_types (name, code) VALUES ($1, $2) RETURNING id`,
			c.Name, c.Code,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("certificate type %s: %w", c.Name, err)
		}
		certIDs[c.Name] = id
	}

	var craneTypeIDs []string
	for _, cat := range fixtures.CraneTaxonomy() {
		var categoryID string
		err := db.QueryRow(ctx,
			`INSERT INTO crane_categories (name, description) VALUES ($1, $2) RETURNING id`,
			cat.Name, cat.Description,
		).Scan(&categoryID)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", cat.Name, err)
		}

		for _, certName := range cat.Certificates {
			_, err := db.Exec(ctx,
				`INSERT INTO category_certificates (category_id, certificate_type_id) VALUES ($1, $2)`,
				categoryID, certIDs[certName],
			)
			if err != nil {
				return nil, fmt.Errorf("category certificate %s: %w", certName, err)
			}
		}

		for _, t := range cat.Types {
			var typeID string
			err := db.QueryRow(ctx,
				`INSERT INTO crane_types (category_id, name, code, is_active) VALUES ($1, $2, $3, TRUE) RETURNING id`,
				categoryID, t.Name, t.Code,
			).Scan(&typeID)
			if err != nil {
				return nil, fmt.Errorf("crane type %s: %w", t.Name, err)
			}
			craneTypeIDs = append(craneTypeIDs, typeID)

			for _, m := range t.Models {
				_, err := db.Exec(ctx,
					`INSERT INTO crane_models (crane_type_id, brand, name, max_load_tonnes, max_height_meter, is_active)
					 VALUES ($1, $2, $3, $4, $5, TRUE)`,
					typeID, m.Brand, m.Name, m.MaxLoadTonnes, m.MaxHeightMeter,
				)
				if err != nil {
					return nil, fmt.Errorf("crane model %s: %w", m.Name, err)
				}
			}
		}
	}
	return craneTypeIDs, nil
}

func seedEmployees(ctx context.Context, svc *employeeService.Service, craneTypeIDs []string) error {
	fixed := []employee.CreateEmployeeRequest{
		{
			Name: "Karen Holm", Email: "chef@craneworks.dk", Password: "changeme123",
			Role: string(employee.RoleChef), HourlyRateNormal: "0", HourlyRateOvertime: "0", HourlyRateWeekend: "0",
		},
		{
			Name: "Jens Lauridsen", Email: "byggeleder@craneworks.dk", Password: "changeme123",
			Role: string(employee.RoleByggeleder), HourlyRateNormal: "0", HourlyRateOvertime: "0", HourlyRateWeekend: "0",
		},
	}
	for _, req := range fixed {
		if _, err := svc.Create(ctx, req); err != nil {
			return fmt.Errorf("employee %s: %w", req.Email, err)
		}
	}

	for i := 0; i < workerCount; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("%s%d@craneworks.dk", strings.ToLower(strings.ReplaceAll(name, " ", ".")), i)
		phone := gofakeit.Phone()

		emp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			Name:               name,
			Email:              email,
			Password:           "changeme123",
			Phone:              &phone,
			Role:               string(employee.RoleArbejder),
			HourlyRateNormal:   fmt.Sprintf("%d", gofakeit.Number(210, 260)),
			HourlyRateOvertime: fmt.Sprintf("%d", gofakeit.Number(310, 390)),
			HourlyRateWeekend:  fmt.Sprintf("%d", gofakeit.Number(420, 520)),
		})
		if err != nil {
			return fmt.Errorf("worker %s: %w", email, err)
		}

		// Every worker can run at least one crane type.
		for _, typeID := range pickTypes(craneTypeIDs) {
			_, err := svc.AddSkill(ctx, employee.WorkerSkill{
				EmployeeID:  emp.ID,
				CraneTypeID: typeID,
			})
			if err != nil {
				return fmt.Errorf("skill for %s: %w", email, err)
			}
		}
	}
	return nil
}

func pickTypes(craneTypeIDs []string) []string {
	idx := make([]int, len(craneTypeIDs))
	for i := range idx {
		idx[i] = i
	}
	gofakeit.ShuffleInts(idx)

	n := gofakeit.Number(1, len(craneTypeIDs))
	picked := make([]string, 0, n)
	for _, i := range idx[:n] {
		picked = append(picked, craneTypeIDs[i])
	}
	return picked
}

func seedProjects(ctx context.Context, svc *projectService.Service, craneTypeIDs []string) error {
	for i := 0; i < 3; i++ {
		site := gofakeit.Street()
		p, err := svc.Create(ctx, project.CreateProjectRequest{
			Name:         fmt.Sprintf("%s byggeri", gofakeit.City()),
			CustomerName: gofakeit.Company(),
			SiteAddress:  &site,
		})
		if err != nil {
			return err
		}

		for j := 0; j < gofakeit.Number(2, 4); j++ {
			deadline := gofakeit.FutureDate().Format("2006-01-02")
			_, err := svc.CreateTask(ctx, task.CreateTaskRequest{
				ProjectID:            p.ID,
				Title:                fmt.Sprintf("Løft %s", gofakeit.ProductName()),
				Deadline:             &deadline,
				RequiredCraneTypeIDs: []string{craneTypeIDs[gofakeit.Number(0, len(craneTypeIDs)-1)]},
				RequiredOperators:    gofakeit.Number(1, 3),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
