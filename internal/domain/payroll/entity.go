package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one processed pay period for one employee. DepartmentID is a
// snapshot taken at processing time; later department changes do not update
// it. The record is immutable once written.
type Payroll struct {
	ID             string
	EmployeeID     string
	DepartmentID   *string
	PayPeriodStart time.Time
	PayPeriodEnd   time.Time
	GrossPay       decimal.Decimal
	Deductions     Deductions
	NetPay         decimal.Decimal
	RegularHours   decimal.Decimal
	OvertimeHours  decimal.Decimal
	ProcessingDate time.Time
	PaymentMethod  string
	Notes          *string
	CreatedAt      time.Time
}

// Deductions is the fixed schedule of line items withheld from gross pay.
type Deductions struct {
	IncomeTax              decimal.Decimal
	ProvidentFund          decimal.Decimal
	SocialContribution     decimal.Decimal
	ProfessionalTax        decimal.Decimal
	HealthInsurance        decimal.Decimal
	RetirementContribution decimal.Decimal
	OtherDeductions        decimal.Decimal
}

// Total sums every line item.
func (d Deductions) Total() decimal.Decimal {
	return d.IncomeTax.
		Add(d.ProvidentFund).
		Add(d.SocialContribution).
		Add(d.ProfessionalTax).
		Add(d.HealthInsurance).
		Add(d.RetirementContribution).
		Add(d.OtherDeductions)
}

// PaySlip is the issued document for a payroll record, one per payroll.
type PaySlip struct {
	ID             string
	PayrollID      string
	PayslipNumber  string
	IssueDate      time.Time
	PaymentDate    time.Time
	BankAccountRef string
	Status         string
	CreatedAt      time.Time
}

// DepartmentPayrollSummary is a computed projection over payroll records; it
// is recomputed on every request and never stored.
type DepartmentPayrollSummary struct {
	DepartmentID       string
	DepartmentName     string
	CostCenter         *string
	TotalGrossPay      decimal.Decimal
	TotalNetPay        decimal.Decimal
	TotalRegularHours  decimal.Decimal
	TotalOvertimeHours decimal.Decimal
}
