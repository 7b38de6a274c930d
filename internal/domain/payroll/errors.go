package payroll

import "errors"

var (
	ErrPayrollNotFound         = errors.New("payroll not found")
	ErrPayrollAlreadyProcessed = errors.New("payroll already processed for this employee and pay period")
	ErrPaySlipNotFound         = errors.New("payslip not found")
	ErrPaySlipAlreadyIssued    = errors.New("payslip already issued for this payroll")
	ErrPayslipNumberTaken      = errors.New("payslip number already taken")
)
