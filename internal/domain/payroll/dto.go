package payroll

import (
	"github.com/corepay/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ProcessPayrollRequest struct {
	EmployeeID     string `json:"employee_id"`
	PayPeriodStart string `json:"pay_period_start"`
	PayPeriodEnd   string `json:"pay_period_end"`
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.PayPeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PayPeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must not be before pay_period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IssuePaySlipRequest struct {
	PayrollID string
	// IssueDate lets callers backdate the slip; it defaults to today.
	IssueDate *string `json:"issue_date,omitempty"`
}

func (r *IssuePaySlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.IssueDate != nil {
		if _, ok := validator.IsValidDate(*r.IssueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "issue_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	DepartmentID   *string         `json:"department_id,omitempty"`
	PayPeriodStart string          `json:"pay_period_start"`
	PayPeriodEnd   string          `json:"pay_period_end"`
	GrossPay       decimal.Decimal `json:"gross_pay"`

	IncomeTax              decimal.Decimal `json:"income_tax"`
	ProvidentFund          decimal.Decimal `json:"provident_fund"`
	SocialContribution     decimal.Decimal `json:"social_contribution"`
	ProfessionalTax        decimal.Decimal `json:"professional_tax"`
	HealthInsurance        decimal.Decimal `json:"health_insurance"`
	RetirementContribution decimal.Decimal `json:"retirement_contribution"`
	OtherDeductions        decimal.Decimal `json:"other_deductions"`

	NetPay         decimal.Decimal `json:"net_pay"`
	RegularHours   decimal.Decimal `json:"regular_hours"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	ProcessingDate string          `json:"processing_date"`
	PaymentMethod  string          `json:"payment_method"`
	Notes          *string         `json:"notes,omitempty"`
}

type PaySlipResponse struct {
	ID             string `json:"id"`
	PayrollID      string `json:"payroll_id"`
	PayslipNumber  string `json:"payslip_number"`
	IssueDate      string `json:"issue_date"`
	PaymentDate    string `json:"payment_date"`
	BankAccountRef string `json:"bank_account_ref"`
	Status         string `json:"status"`
}

type DepartmentSummaryResponse struct {
	DepartmentID       string          `json:"department_id"`
	DepartmentName     string          `json:"department_name"`
	CostCenter         *string         `json:"cost_center,omitempty"`
	TotalGrossPay      decimal.Decimal `json:"total_gross_pay"`
	TotalNetPay        decimal.Decimal `json:"total_net_pay"`
	TotalRegularHours  decimal.Decimal `json:"total_regular_hours"`
	TotalOvertimeHours decimal.Decimal `json:"total_overtime_hours"`
}
