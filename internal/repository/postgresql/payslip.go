package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/corepay/payroll-backend-go/internal/domain/payroll"
	"github.com/corepay/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type paySlipRepository struct {
	db *database.DB
}

func NewPaySlipRepository(db *database.DB) payroll.PaySlipRepository {
	return &paySlipRepository{db: db}
}

const paySlipColumns = `
	id, payroll_id, payslip_number, issue_date, payment_date,
	bank_account_ref, status, created_at
`

func scanPaySlip(row pgx.Row) (payroll.PaySlip, error) {
	var s payroll.PaySlip
	err := row.Scan(
		&s.ID, &s.PayrollID, &s.PayslipNumber, &s.IssueDate, &s.PaymentDate,
		&s.BankAccountRef, &s.Status, &s.CreatedAt,
	)
	return s, err
}

func (r *paySlipRepository) Create(ctx context.Context, slip payroll.PaySlip) (payroll.PaySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_slips (
			id, payroll_id, payslip_number, issue_date, payment_date, bank_account_ref, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + paySlipColumns

	created, err := scanPaySlip(q.QueryRow(ctx, query,
		uuid.NewString(), slip.PayrollID, slip.PayslipNumber, slip.IssueDate, slip.PaymentDate,
		slip.BankAccountRef, slip.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_pay_slips_payroll_id") {
			return payroll.PaySlip{}, payroll.ErrPaySlipAlreadyIssued
		}
		if strings.Contains(err.Error(), "uk_pay_slips_number") {
			return payroll.PaySlip{}, payroll.ErrPayslipNumberTaken
		}
		return payroll.PaySlip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return created, nil
}

func (r *paySlipRepository) GetByID(ctx context.Context, id string) (payroll.PaySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paySlipColumns + ` FROM pay_slips WHERE id = $1`

	slip, err := scanPaySlip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PaySlip{}, payroll.ErrPaySlipNotFound
		}
		return payroll.PaySlip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return slip, nil
}

func (r *paySlipRepository) GetByPayrollID(ctx context.Context, payrollID string) (payroll.PaySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paySlipColumns + ` FROM pay_slips WHERE payroll_id = $1`

	slip, err := scanPaySlip(q.QueryRow(ctx, query, payrollID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PaySlip{}, payroll.ErrPaySlipNotFound
		}
		return payroll.PaySlip{}, fmt.Errorf("failed to get payslip by payroll: %w", err)
	}

	return slip, nil
}

func (r *paySlipRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PaySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.payroll_id, s.payslip_number, s.issue_date, s.payment_date,
			   s.bank_account_ref, s.status, s.created_at
		FROM pay_slips s
		JOIN payrolls p ON p.id = s.payroll_id
		WHERE p.employee_id = $1
		ORDER BY s.issue_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips by employee: %w", err)
	}
	defer rows.Close()

	return collectPaySlips(rows)
}

func (r *paySlipRepository) ListAll(ctx context.Context) ([]payroll.PaySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paySlipColumns + ` FROM pay_slips ORDER BY issue_date DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	return collectPaySlips(rows)
}

func collectPaySlips(rows pgx.Rows) ([]payroll.PaySlip, error) {
	var slips []payroll.PaySlip
	for rows.Next() {
		slip, err := scanPaySlip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, slip)
	}
	return slips, nil
}
