package employee

import (
	"context"
	"time"

	"github.com/corepay/payroll-backend-go/internal/domain/department"
	"github.com/corepay/payroll-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	emp := employee.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		HireDate:     hireDate,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		TaxID:        req.TaxID,
		Status:       employee.StatusActive,
		DepartmentID: req.DepartmentID,
		Type:         employee.Type(req.Type),
	}

	switch emp.Type {
	case employee.TypeSalaried:
		emp.Salaried = &employee.SalariedDetails{
			AnnualSalary:    req.AnnualSalary,
			BonusPercentage: req.BonusPercentage,
		}
	case employee.TypeHourly:
		multiplier := employee.DefaultOvertimeMultiplier
		if req.OvertimeMultiplier != nil {
			multiplier = *req.OvertimeMultiplier
		}
		emp.Hourly = &employee.HourlyDetails{
			HourlyRate:         req.HourlyRate,
			HoursWorked:        req.HoursWorked,
			OvertimeHours:      req.OvertimeHours,
			OvertimeMultiplier: multiplier,
		}
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(employees), nil
}

// ListByDepartment implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByDepartment(ctx context.Context, departmentID string) ([]employee.EmployeeResponse, error) {
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(employees), nil
}

// Update implements employee.EmployeeService. Variant fields are updated in
// place only within the employee's current variant; switching variants goes
// through ConvertType.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = *req.PhoneNumber
	}
	if req.HireDate != nil {
		emp.HireDate, _ = time.Parse("2006-01-02", *req.HireDate)
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.City != nil {
		emp.City = req.City
	}
	if req.State != nil {
		emp.State = req.State
	}
	if req.ZipCode != nil {
		emp.ZipCode = req.ZipCode
	}
	if req.TaxID != nil {
		emp.TaxID = req.TaxID
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.DepartmentID = req.DepartmentID
	}

	switch emp.Type {
	case employee.TypeSalaried:
		if emp.Salaried == nil {
			emp.Salaried = &employee.SalariedDetails{}
		}
		if req.AnnualSalary != nil {
			emp.Salaried.AnnualSalary = req.AnnualSalary
		}
		if req.BonusPercentage != nil {
			emp.Salaried.BonusPercentage = req.BonusPercentage
		}
	case employee.TypeHourly:
		if emp.Hourly == nil {
			emp.Hourly = &employee.HourlyDetails{OvertimeMultiplier: employee.DefaultOvertimeMultiplier}
		}
		if req.HourlyRate != nil {
			emp.Hourly.HourlyRate = req.HourlyRate
		}
		if req.HoursWorked != nil {
			emp.Hourly.HoursWorked = req.HoursWorked
		}
		if req.OvertimeHours != nil {
			emp.Hourly.OvertimeHours = req.OvertimeHours
		}
		if req.OvertimeMultiplier != nil {
			emp.Hourly.OvertimeMultiplier = *req.OvertimeMultiplier
		}
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// AssignDepartment implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AssignDepartment(ctx context.Context, id string, departmentID *string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if departmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *departmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	emp.DepartmentID = departmentID

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// ConvertType implements employee.EmployeeService. The shared identity fields
// carry over untouched; the old variant payload is discarded, not archived,
// and the swap commits in a single write so no reader ever sees an employee
// with both payloads or neither.
func (s *EmployeeServiceImpl) ConvertType(ctx context.Context, req employee.ConvertTypeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Type = employee.Type(req.Type)
	emp.Salaried = nil
	emp.Hourly = nil

	switch emp.Type {
	case employee.TypeSalaried:
		emp.Salaried = &employee.SalariedDetails{
			AnnualSalary:    req.AnnualSalary,
			BonusPercentage: req.BonusPercentage,
		}
	case employee.TypeHourly:
		multiplier := employee.DefaultOvertimeMultiplier
		if req.OvertimeMultiplier != nil {
			multiplier = *req.OvertimeMultiplier
		}
		emp.Hourly = &employee.HourlyDetails{
			HourlyRate:         req.HourlyRate,
			HoursWorked:        req.HoursWorked,
			OvertimeHours:      req.OvertimeHours,
			OvertimeMultiplier: multiplier,
		}
	}

	replaced, err := s.employeeRepo.Replace(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(replaced), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func toEmployeeResponses(employees []employee.Employee) []employee.EmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           emp.ID,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		PhoneNumber:  emp.PhoneNumber,
		HireDate:     emp.HireDate.Format("2006-01-02"),
		Address:      emp.Address,
		City:         emp.City,
		State:        emp.State,
		ZipCode:      emp.ZipCode,
		TaxID:        emp.TaxID,
		Status:       string(emp.Status),
		DepartmentID: emp.DepartmentID,
		Type:         string(emp.Type),
	}

	if emp.Salaried != nil {
		resp.AnnualSalary = emp.Salaried.AnnualSalary
		resp.BonusPercentage = emp.Salaried.BonusPercentage
	}
	if emp.Hourly != nil {
		resp.HourlyRate = emp.Hourly.HourlyRate
		resp.HoursWorked = emp.Hourly.HoursWorked
		resp.OvertimeHours = emp.Hourly.OvertimeHours
		m := emp.Hourly.OvertimeMultiplier
		resp.OvertimeMultiplier = &m
	}

	return resp
}
