package response

import (
	"errors"
	"net/http"

	"github.com/corepay/payroll-backend-go/internal/domain/department"
	"github.com/corepay/payroll-backend-go/internal/domain/employee"
	"github.com/corepay/payroll-backend-go/internal/domain/payroll"
	"github.com/corepay/payroll-backend-go/internal/domain/timeentry"
	"github.com/corepay/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrTaxIDExists):
		Conflict(w, "Tax ID already registered")
	case errors.Is(err, employee.ErrInvalidType):
		BadRequest(w, "Invalid employee type", nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrInvalidStatus):
		BadRequest(w, "Invalid time entry status", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyProcessed):
		Conflict(w, "Payroll already processed for this employee and pay period")
	case errors.Is(err, payroll.ErrPaySlipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPaySlipAlreadyIssued):
		Conflict(w, "Payslip already issued for this payroll")
	case errors.Is(err, payroll.ErrPayslipNumberTaken):
		Conflict(w, "Payslip number collision, retry the request")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
