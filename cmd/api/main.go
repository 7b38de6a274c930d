package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/corepay/payroll-backend-go/internal/config"
	appHTTP "github.com/corepay/payroll-backend-go/internal/handler/http"
	"github.com/corepay/payroll-backend-go/internal/pkg/database"
	"github.com/corepay/payroll-backend-go/internal/pkg/export"
	"github.com/corepay/payroll-backend-go/internal/pkg/jwt"
	"github.com/corepay/payroll-backend-go/internal/repository/postgresql"
	departmentService "github.com/corepay/payroll-backend-go/internal/service/department"
	employeeService "github.com/corepay/payroll-backend-go/internal/service/employee"
	payrollService "github.com/corepay/payroll-backend-go/internal/service/payroll"
	timeEntryService "github.com/corepay/payroll-backend-go/internal/service/timeentry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolSettings{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	if err := database.Migrate(context.Background(), db, cfg.Database.MigrationsDir); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	paySlipRepo := postgresql.NewPaySlipRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	paySlipExporter := export.NewPaySlipExporter()

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	departmentSvc := departmentService.NewDepartmentService(db, departmentRepo, employeeRepo, payrollRepo, timeEntryRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(db, timeEntryRepo, employeeRepo, departmentRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, paySlipRepo, employeeRepo, departmentRepo, timeEntryRepo, paySlipExporter)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc, payrollSvc)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		employeeHandler,
		departmentHandler,
		timeEntryHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
