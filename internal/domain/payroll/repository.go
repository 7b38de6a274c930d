package payroll

import (
	"context"
	"time"
)

// PayrollRepository persists processed pay periods. Create must be backed by
// a uniqueness constraint on (employee_id, pay_period_start, pay_period_end)
// and report a violation as ErrPayrollAlreadyProcessed, so that two
// concurrent processing calls cannot both succeed.
type PayrollRepository interface {
	Create(ctx context.Context, record Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) (Payroll, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]Payroll, error)
	SummarizeDepartment(ctx context.Context, departmentID string, start, end time.Time) (DepartmentPayrollSummary, error)
	DetachDepartment(ctx context.Context, departmentID string) error
}

// PaySlipRepository persists issued payslips, at most one per payroll. Create
// must be backed by a uniqueness constraint on payroll_id; callers resolve a
// violation by re-reading the winning slip.
type PaySlipRepository interface {
	Create(ctx context.Context, slip PaySlip) (PaySlip, error)
	GetByID(ctx context.Context, id string) (PaySlip, error)
	GetByPayrollID(ctx context.Context, payrollID string) (PaySlip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PaySlip, error)
	ListAll(ctx context.Context) ([]PaySlip, error)
}
