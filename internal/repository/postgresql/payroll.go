package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/corepay/payroll-backend-go/internal/domain/department"
	"github.com/corepay/payroll-backend-go/internal/domain/payroll"
	"github.com/corepay/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, employee_id, department_id, pay_period_start, pay_period_end,
	gross_pay, income_tax, provident_fund, social_contribution, professional_tax,
	health_insurance, retirement_contribution, other_deductions, net_pay,
	regular_hours, overtime_hours, processing_date, payment_method, notes, created_at
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.DepartmentID, &p.PayPeriodStart, &p.PayPeriodEnd,
		&p.GrossPay, &p.Deductions.IncomeTax, &p.Deductions.ProvidentFund,
		&p.Deductions.SocialContribution, &p.Deductions.ProfessionalTax,
		&p.Deductions.HealthInsurance, &p.Deductions.RetirementContribution,
		&p.Deductions.OtherDeductions, &p.NetPay,
		&p.RegularHours, &p.OvertimeHours, &p.ProcessingDate, &p.PaymentMethod, &p.Notes, &p.CreatedAt,
	)
	return p, err
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, employee_id, department_id, pay_period_start, pay_period_end,
			gross_pay, income_tax, provident_fund, social_contribution, professional_tax,
			health_insurance, retirement_contribution, other_deductions, net_pay,
			regular_hours, overtime_hours, processing_date, payment_method, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)
		RETURNING ` + payrollColumns

	created, err := scanPayroll(q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.DepartmentID, record.PayPeriodStart, record.PayPeriodEnd,
		record.GrossPay, record.Deductions.IncomeTax, record.Deductions.ProvidentFund,
		record.Deductions.SocialContribution, record.Deductions.ProfessionalTax,
		record.Deductions.HealthInsurance, record.Deductions.RetirementContribution,
		record.Deductions.OtherDeductions, record.NetPay,
		record.RegularHours, record.OvertimeHours, record.ProcessingDate, record.PaymentMethod, record.Notes,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payrolls_employee_period") {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyProcessed
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE id = $1`

	record, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE employee_id = $1 AND pay_period_start = $2 AND pay_period_end = $3
	`

	record, err := scanPayroll(q.QueryRow(ctx, query, employeeID, start, end))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by period: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE employee_id = $1
		ORDER BY pay_period_start DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls by employee: %w", err)
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

func (r *payrollRepository) ListByDepartment(ctx context.Context, departmentID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE department_id = $1
		ORDER BY pay_period_start DESC
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls by department: %w", err)
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

func collectPayrolls(rows pgx.Rows) ([]payroll.Payroll, error) {
	var records []payroll.Payroll
	for rows.Next() {
		record, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *payrollRepository) SummarizeDepartment(ctx context.Context, departmentID string, start, end time.Time) (payroll.DepartmentPayrollSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.cost_center,
			   COALESCE(SUM(p.gross_pay), 0),
			   COALESCE(SUM(p.net_pay), 0),
			   COALESCE(SUM(p.regular_hours), 0),
			   COALESCE(SUM(p.overtime_hours), 0)
		FROM departments d
		LEFT JOIN payrolls p
			ON p.department_id = d.id
			AND p.pay_period_start >= $2 AND p.pay_period_start <= $3
		WHERE d.id = $1
		GROUP BY d.id, d.name, d.cost_center
	`

	var s payroll.DepartmentPayrollSummary
	err := q.QueryRow(ctx, query, departmentID, start, end).Scan(
		&s.DepartmentID, &s.DepartmentName, &s.CostCenter,
		&s.TotalGrossPay, &s.TotalNetPay, &s.TotalRegularHours, &s.TotalOvertimeHours,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.DepartmentPayrollSummary{}, department.ErrDepartmentNotFound
		}
		return payroll.DepartmentPayrollSummary{}, fmt.Errorf("failed to summarize department payrolls: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) DetachDepartment(ctx context.Context, departmentID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE payrolls SET department_id = NULL WHERE department_id = $1`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to detach payrolls from department: %w", err)
	}
	return nil
}
