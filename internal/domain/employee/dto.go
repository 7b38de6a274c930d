package employee

import (
	"github.com/corepay/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phone_number"`
	HireDate     string  `json:"hire_date"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	ZipCode      *string `json:"zip_code,omitempty"`
	TaxID        *string `json:"tax_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Type         string  `json:"type"` // "salaried" or "hourly"

	AnnualSalary    *decimal.Decimal `json:"annual_salary,omitempty"`
	BonusPercentage *decimal.Decimal `json:"bonus_percentage,omitempty"`

	HourlyRate         *decimal.Decimal `json:"hourly_rate,omitempty"`
	HoursWorked        *decimal.Decimal `json:"hours_worked,omitempty"`
	OvertimeHours      *decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeMultiplier *decimal.Decimal `json:"overtime_multiplier,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}
	if r.Type != string(TypeSalaried) && r.Type != string(TypeHourly) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'salaried' or 'hourly'"})
	}
	if r.AnnualSalary != nil && r.AnnualSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "annual_salary", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.OvertimeMultiplier != nil && !r.OvertimeMultiplier.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "overtime_multiplier", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	ZipCode      *string `json:"zip_code,omitempty"`
	TaxID        *string `json:"tax_id,omitempty"`
	Status       *string `json:"status,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`

	AnnualSalary    *decimal.Decimal `json:"annual_salary,omitempty"`
	BonusPercentage *decimal.Decimal `json:"bonus_percentage,omitempty"`

	HourlyRate         *decimal.Decimal `json:"hourly_rate,omitempty"`
	HoursWorked        *decimal.Decimal `json:"hours_worked,omitempty"`
	OvertimeHours      *decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeMultiplier *decimal.Decimal `json:"overtime_multiplier,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Status != nil {
		switch Status(*r.Status) {
		case StatusActive, StatusOnLeave, StatusTerminated:
		default:
			errs = append(errs, validator.ValidationError{Field: "status", Message: "must be Active, On Leave or Terminated"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AssignDepartmentRequest moves an employee between departments. A null
// department_id detaches the employee from any department.
type AssignDepartmentRequest struct {
	DepartmentID *string `json:"department_id"`
}

// ConvertTypeRequest rebuilds an employee under the other pay variant. The
// shared identity fields carry over untouched; the variant payload is replaced
// wholesale by the values supplied here.
type ConvertTypeRequest struct {
	ID   string
	Type string `json:"type"`

	AnnualSalary    *decimal.Decimal `json:"annual_salary,omitempty"`
	BonusPercentage *decimal.Decimal `json:"bonus_percentage,omitempty"`

	HourlyRate         *decimal.Decimal `json:"hourly_rate,omitempty"`
	HoursWorked        *decimal.Decimal `json:"hours_worked,omitempty"`
	OvertimeHours      *decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeMultiplier *decimal.Decimal `json:"overtime_multiplier,omitempty"`
}

func (r *ConvertTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != string(TypeSalaried) && r.Type != string(TypeHourly) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'salaried' or 'hourly'"})
	}
	if r.AnnualSalary != nil && r.AnnualSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "annual_salary", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.OvertimeMultiplier != nil && !r.OvertimeMultiplier.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "overtime_multiplier", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phone_number"`
	HireDate     string  `json:"hire_date"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	ZipCode      *string `json:"zip_code,omitempty"`
	TaxID        *string `json:"tax_id,omitempty"`
	Status       string  `json:"status"`
	DepartmentID *string `json:"department_id,omitempty"`
	Type         string  `json:"type"`

	AnnualSalary    *decimal.Decimal `json:"annual_salary,omitempty"`
	BonusPercentage *decimal.Decimal `json:"bonus_percentage,omitempty"`

	HourlyRate         *decimal.Decimal `json:"hourly_rate,omitempty"`
	HoursWorked        *decimal.Decimal `json:"hours_worked,omitempty"`
	OvertimeHours      *decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeMultiplier *decimal.Decimal `json:"overtime_multiplier,omitempty"`
}
