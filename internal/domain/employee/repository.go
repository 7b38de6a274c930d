package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	// Replace swaps the full record, variant payload included. It is the
	// storage half of a type conversion: the old variant's fields are gone
	// once the write commits.
	Replace(ctx context.Context, emp Employee) (Employee, error)
	DetachDepartment(ctx context.Context, departmentID string) error
	Delete(ctx context.Context, id string) error
}
