package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/corepay/payroll-backend-go/internal/domain/employee"
	"github.com/corepay/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, first_name, last_name, email, phone_number, hire_date,
	address, city, state, zip_code, tax_id, status, department_id,
	employee_type, annual_salary, bonus_percentage,
	hourly_rate, hours_worked, overtime_hours, overtime_multiplier,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var annualSalary, bonusPercentage *decimal.Decimal
	var hourlyRate, hoursWorked, overtimeHours, overtimeMultiplier *decimal.Decimal

	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber, &e.HireDate,
		&e.Address, &e.City, &e.State, &e.ZipCode, &e.TaxID, &e.Status, &e.DepartmentID,
		&e.Type, &annualSalary, &bonusPercentage,
		&hourlyRate, &hoursWorked, &overtimeHours, &overtimeMultiplier,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	switch e.Type {
	case employee.TypeSalaried:
		e.Salaried = &employee.SalariedDetails{
			AnnualSalary:    annualSalary,
			BonusPercentage: bonusPercentage,
		}
	case employee.TypeHourly:
		multiplier := employee.DefaultOvertimeMultiplier
		if overtimeMultiplier != nil {
			multiplier = *overtimeMultiplier
		}
		e.Hourly = &employee.HourlyDetails{
			HourlyRate:         hourlyRate,
			HoursWorked:        hoursWorked,
			OvertimeHours:      overtimeHours,
			OvertimeMultiplier: multiplier,
		}
	default:
		// A row with an unknown employee_type is corrupt; surface it rather
		// than returning an employee with no pay variant.
		return employee.Employee{}, employee.ErrInvalidType
	}

	return e, nil
}

func variantArgs(emp employee.Employee) (annualSalary, bonusPercentage, hourlyRate, hoursWorked, overtimeHours, overtimeMultiplier *decimal.Decimal) {
	if emp.Salaried != nil {
		annualSalary = emp.Salaried.AnnualSalary
		bonusPercentage = emp.Salaried.BonusPercentage
	}
	if emp.Hourly != nil {
		hourlyRate = emp.Hourly.HourlyRate
		hoursWorked = emp.Hourly.HoursWorked
		overtimeHours = emp.Hourly.OvertimeHours
		overtimeMultiplier = &emp.Hourly.OvertimeMultiplier
	}
	return
}

func mapEmployeeConstraintErr(err error) error {
	if strings.Contains(err.Error(), "uk_employees_email") {
		return employee.ErrEmailExists
	}
	if strings.Contains(err.Error(), "uk_employees_tax_id") {
		return employee.ErrTaxIDExists
	}
	return nil
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	annualSalary, bonusPercentage, hourlyRate, hoursWorked, overtimeHours, overtimeMultiplier := variantArgs(emp)

	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, phone_number, hire_date,
			address, city, state, zip_code, tax_id, status, department_id,
			employee_type, annual_salary, bonus_percentage,
			hourly_rate, hours_worked, overtime_hours, overtime_multiplier
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING ` + employeeColumns

	row := q.QueryRow(ctx, query,
		uuid.NewString(), emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber, emp.HireDate,
		emp.Address, emp.City, emp.State, emp.ZipCode, emp.TaxID, emp.Status, emp.DepartmentID,
		emp.Type, annualSalary, bonusPercentage,
		hourlyRate, hoursWorked, overtimeHours, overtimeMultiplier,
	)

	created, err := scanEmployee(row)
	if err != nil {
		if mapped := mapEmployeeConstraintErr(err); mapped != nil {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY last_name, first_name`)
}

func (r *employeeRepository) ListByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees WHERE department_id = $1 ORDER BY last_name, first_name`, departmentID)
}

func (r *employeeRepository) list(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return r.write(ctx, emp)
}

func (r *employeeRepository) Replace(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	// Same single UPDATE as a plain field update. Writing every variant
	// column at once is what makes a type conversion atomic: the old
	// variant's columns are nulled in the same statement that fills the
	// new variant's.
	return r.write(ctx, emp)
}

func (r *employeeRepository) write(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	annualSalary, bonusPercentage, hourlyRate, hoursWorked, overtimeHours, overtimeMultiplier := variantArgs(emp)

	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3, email = $4, phone_number = $5, hire_date = $6,
			address = $7, city = $8, state = $9, zip_code = $10, tax_id = $11,
			status = $12, department_id = $13,
			employee_type = $14, annual_salary = $15, bonus_percentage = $16,
			hourly_rate = $17, hours_worked = $18, overtime_hours = $19, overtime_multiplier = $20,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	row := q.QueryRow(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber, emp.HireDate,
		emp.Address, emp.City, emp.State, emp.ZipCode, emp.TaxID,
		emp.Status, emp.DepartmentID,
		emp.Type, annualSalary, bonusPercentage,
		hourlyRate, hoursWorked, overtimeHours, overtimeMultiplier,
	)

	updated, err := scanEmployee(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if mapped := mapEmployeeConstraintErr(err); mapped != nil {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

func (r *employeeRepository) DetachDepartment(ctx context.Context, departmentID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE employees SET department_id = NULL, updated_at = NOW() WHERE department_id = $1`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to detach employees from department: %w", err)
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
