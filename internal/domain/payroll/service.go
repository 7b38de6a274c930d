package payroll

import "context"

type PayrollService interface {
	// Process computes and persists one pay period for one employee. A second
	// call for the same employee and period fails with
	// ErrPayrollAlreadyProcessed regardless of who wrote the first record.
	Process(ctx context.Context, req ProcessPayrollRequest) (PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]PayrollResponse, error)
	SummarizeDepartment(ctx context.Context, departmentID, start, end string) (DepartmentSummaryResponse, error)

	// IssuePaySlip creates the slip for a payroll, or returns the existing one
	// when a slip was already issued.
	IssuePaySlip(ctx context.Context, req IssuePaySlipRequest) (PaySlipResponse, error)
	GetPaySlip(ctx context.Context, id string) (PaySlipResponse, error)
	GetPaySlipByPayroll(ctx context.Context, payrollID string) (PaySlipResponse, error)
	ListPaySlipsByEmployee(ctx context.Context, employeeID string) ([]PaySlipResponse, error)
	// GetLatestPaySlipByEmployee returns the most recently issued slip for an
	// employee, or ErrPaySlipNotFound when none has been issued.
	GetLatestPaySlipByEmployee(ctx context.Context, employeeID string) (PaySlipResponse, error)
	ListPaySlips(ctx context.Context) ([]PaySlipResponse, error)
	// ExportPaySlipPDF renders the slip and its payroll breakdown as a PDF.
	ExportPaySlipPDF(ctx context.Context, id string) ([]byte, string, error)
}
