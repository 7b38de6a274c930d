package http

import (
	"log/slog"
	"os"

	"github.com/corepay/payroll-backend-go/internal/handler/http/middleware"
	"github.com/corepay/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	timeEntryHandler TimeEntryHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Post("/", employeeHandler.Create)
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.GetByID)
				r.Put("/{id}", employeeHandler.Update)
				r.Put("/{id}/department", employeeHandler.AssignDepartment)
				r.Post("/{id}/convert", employeeHandler.ConvertType)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Post("/", departmentHandler.Create)
				r.Get("/", departmentHandler.List)
				r.Get("/{id}", departmentHandler.GetByID)
				r.Put("/{id}", departmentHandler.Update)
				r.Delete("/{id}", departmentHandler.Delete)
				r.Get("/{id}/payroll-summary", departmentHandler.PayrollSummary)
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/", timeEntryHandler.Record)
				r.Post("/import", timeEntryHandler.Import)
				r.Get("/{id}", timeEntryHandler.GetByID)
				r.Put("/{id}/status", timeEntryHandler.UpdateStatus)
				r.Delete("/{id}", timeEntryHandler.Delete)
				r.Route("/employee/{employeeId}", func(r chi.Router) {
					r.Get("/", timeEntryHandler.ListForEmployee)
					r.Get("/hours", timeEntryHandler.AggregateHours)
				})
				r.Get("/department/{departmentId}", timeEntryHandler.ListForDepartment)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Post("/process", payrollHandler.Process)
				r.Get("/{id}", payrollHandler.GetByID)
				r.Get("/employee/{employeeId}", payrollHandler.ListByEmployee)
				r.Get("/department/{departmentId}", payrollHandler.ListByDepartment)
				r.Post("/{id}/payslip", payrollHandler.IssuePaySlip)
				r.Get("/{id}/payslip", payrollHandler.GetPaySlipByPayroll)
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/", payrollHandler.ListPaySlips)
				r.Get("/{id}", payrollHandler.GetPaySlip)
				r.Get("/employee/{employeeId}", payrollHandler.ListPaySlipsByEmployee)
				r.Get("/employee/{employeeId}/latest", payrollHandler.GetLatestPaySlipByEmployee)
				r.Get("/{id}/pdf", payrollHandler.ExportPaySlipPDF)
			})
		})
	})

	return r
}
