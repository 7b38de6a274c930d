package payroll

import (
	"github.com/corepay/payroll-backend-go/internal/domain/employee"
	"github.com/corepay/payroll-backend-go/internal/domain/payroll"
	"github.com/corepay/payroll-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
)

// Deduction schedule. The rates are a deliberate simplification and must stay
// stable across releases; anyone swapping in real tax logic should keep the
// CalculateDeductions signature.
var (
	incomeTaxRate          = decimal.RequireFromString("0.10")
	providentFundRate      = decimal.RequireFromString("0.12")
	socialContributionRate = decimal.RequireFromString("0.0075")
	professionalTaxFixed   = decimal.NewFromInt(200)
	healthInsuranceFixed   = decimal.NewFromInt(1500)
	retirementRate         = decimal.RequireFromString("0.05")

	monthsPerYear       = decimal.NewFromInt(12)
	percentBase         = decimal.NewFromInt(100)
	defaultMonthlyHours = decimal.NewFromInt(160)
)

// GrossPay computes the pay-period gross for an employee given the approved
// hour totals for the period.
//
// Salaried employees earn annualSalary/12 plus a twelfth of the annual bonus
// when a positive bonus percentage is set; period hours are ignored. Hourly
// employees earn rate*regular + rate*multiplier*overtime, falling back to the
// stored default hours (160 regular, 0 overtime when unset) if the period
// aggregation produced nothing. The fallback prices the gross only; the
// payroll record always carries the aggregated period totals. A missing or
// non-positive salary or rate yields a gross of 0 rather than an error;
// callers flag it downstream.
//
// The amount is rounded half-up to cent precision.
func GrossPay(emp employee.Employee, worked timeentry.HoursTotals) decimal.Decimal {
	switch emp.Type {
	case employee.TypeSalaried:
		return salariedGross(emp.Salaried)
	case employee.TypeHourly:
		return hourlyGross(emp.Hourly, worked)
	default:
		return decimal.Zero
	}
}

func salariedGross(d *employee.SalariedDetails) decimal.Decimal {
	if d == nil || d.AnnualSalary == nil || !d.AnnualSalary.IsPositive() {
		return decimal.Zero
	}

	gross := d.AnnualSalary.Div(monthsPerYear)
	if d.BonusPercentage != nil && d.BonusPercentage.IsPositive() {
		annualBonus := d.AnnualSalary.Mul(*d.BonusPercentage).Div(percentBase)
		gross = gross.Add(annualBonus.Div(monthsPerYear))
	}

	return gross.Round(2)
}

func hourlyGross(d *employee.HourlyDetails, worked timeentry.HoursTotals) decimal.Decimal {
	regular := worked.RegularHours
	overtime := worked.OvertimeHours

	// Employees without a single approved entry in the period still get paid
	// on their stored defaults.
	if regular.IsZero() && overtime.IsZero() {
		regular = defaultMonthlyHours
		overtime = decimal.Zero
		if d != nil {
			if d.HoursWorked != nil {
				regular = *d.HoursWorked
			}
			if d.OvertimeHours != nil {
				overtime = *d.OvertimeHours
			}
		}
	}

	if d == nil || d.HourlyRate == nil || !d.HourlyRate.IsPositive() {
		return decimal.Zero
	}

	multiplier := d.OvertimeMultiplier
	if multiplier.IsZero() {
		multiplier = employee.DefaultOvertimeMultiplier
	}

	regularPay := d.HourlyRate.Mul(regular)
	overtimePay := d.HourlyRate.Mul(multiplier).Mul(overtime)

	return regularPay.Add(overtimePay).Round(2)
}

// CalculateDeductions maps a gross amount to the fixed deduction schedule.
// The fixed line items apply even when gross is zero, so a zero gross yields
// a negative net; the processor surfaces the record as-is.
func CalculateDeductions(gross decimal.Decimal) (payroll.Deductions, decimal.Decimal) {
	d := payroll.Deductions{
		IncomeTax:              gross.Mul(incomeTaxRate).Round(2),
		ProvidentFund:          gross.Mul(providentFundRate).Round(2),
		SocialContribution:     gross.Mul(socialContributionRate).Round(2),
		ProfessionalTax:        professionalTaxFixed,
		HealthInsurance:        healthInsuranceFixed,
		RetirementContribution: gross.Mul(retirementRate).Round(2),
		OtherDeductions:        decimal.Zero,
	}
	return d, gross.Sub(d.Total()).Round(2)
}
