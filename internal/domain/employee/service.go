package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// AssignDepartment moves the employee into a department, or out of any
	// department when departmentID is nil.
	AssignDepartment(ctx context.Context, id string, departmentID *string) (EmployeeResponse, error)
	ConvertType(ctx context.Context, req ConvertTypeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
