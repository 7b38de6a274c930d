package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/corepay/payroll-backend-go/internal/domain/department"
	"github.com/corepay/payroll-backend-go/internal/domain/employee"
	"github.com/corepay/payroll-backend-go/internal/domain/payroll"
	"github.com/corepay/payroll-backend-go/internal/domain/timeentry"
	"github.com/corepay/payroll-backend-go/internal/pkg/database"
	"github.com/corepay/payroll-backend-go/internal/repository/postgresql"
)

type DepartmentServiceImpl struct {
	db             *database.DB
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
	payrollRepo    payroll.PayrollRepository
	timeEntryRepo  timeentry.TimeEntryRepository
}

func NewDepartmentService(
	db *database.DB,
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
	payrollRepo payroll.PayrollRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
) department.DepartmentService {
	return &DepartmentServiceImpl{
		db:             db,
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		payrollRepo:    payrollRepo,
		timeEntryRepo:  timeEntryRepo,
	}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	// Name check up front for a clean error; the unique index on the
	// lowercased name is the real guard.
	_, err := s.departmentRepo.GetByName(ctx, req.Name)
	if err == nil {
		return department.DepartmentResponse{}, department.ErrDepartmentNameExists
	}
	if !errors.Is(err, department.ErrDepartmentNotFound) {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		CostCenter:  req.CostCenter,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toDepartmentResponse(created), nil
}

// GetByID implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(dept), nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, toDepartmentResponse(dept))
	}
	return responses, nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.CostCenter != nil {
		dept.CostCenter = req.CostCenter
	}
	if req.Description != nil {
		dept.Description = req.Description
	}

	updated, err := s.departmentRepo.Update(ctx, dept)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toDepartmentResponse(updated), nil
}

// Delete implements department.DepartmentService. Dependent records are
// detached, not deleted: employees, payrolls and time entries keep existing
// with a null department. The detaches and the delete commit together.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.DetachDepartment(txCtx, id); err != nil {
			return fmt.Errorf("failed to detach employees: %w", err)
		}
		if err := s.payrollRepo.DetachDepartment(txCtx, id); err != nil {
			return fmt.Errorf("failed to detach payrolls: %w", err)
		}
		if err := s.timeEntryRepo.DetachDepartment(txCtx, id); err != nil {
			return fmt.Errorf("failed to detach time entries: %w", err)
		}
		return s.departmentRepo.Delete(txCtx, id)
	})
}

func toDepartmentResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		CostCenter:  dept.CostCenter,
		Description: dept.Description,
	}
}
