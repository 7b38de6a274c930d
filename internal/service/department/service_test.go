package department

import (
	"context"
	"strings"
	"testing"

	"github.com/corepay/payroll-backend-go/internal/domain/department"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

type fakeDepartmentRepo struct {
	departments map[string]department.Department
	nextID      int
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: map[string]department.Department{}}
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	for _, existing := range f.departments {
		if strings.EqualFold(existing.Name, dept.Name) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
	}
	f.nextID++
	dept.ID = "dept-1"
	f.departments[dept.ID] = dept
	return dept, nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id string) (department.Department, error) {
	dept, ok := f.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}

func (f *fakeDepartmentRepo) GetByName(ctx context.Context, name string) (department.Department, error) {
	for _, dept := range f.departments {
		if strings.EqualFold(dept.Name, name) {
			return dept, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) List(ctx context.Context) ([]department.Department, error) {
	var out []department.Department
	for _, dept := range f.departments {
		out = append(out, dept)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, dept department.Department) (department.Department, error) {
	if _, ok := f.departments[dept.ID]; !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	f.departments[dept.ID] = dept
	return dept, nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	delete(f.departments, id)
	return nil
}

func newService(repo *fakeDepartmentRepo) department.DepartmentService {
	return NewDepartmentService(nil, repo, nil, nil, nil)
}

func TestDepartmentService_Create(t *testing.T) {
	t.Parallel()
	repo := newFakeDepartmentRepo()
	svc := newService(repo)

	result, err := svc.Create(context.Background(), department.CreateDepartmentRequest{
		Name:       "Engineering",
		CostCenter: strPtr("CC-100"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "Engineering", result.Name)
	require.NotNil(t, result.CostCenter)
	assert.Equal(t, "CC-100", *result.CostCenter)
}

func TestDepartmentService_Create_NameConflict(t *testing.T) {
	t.Parallel()
	repo := newFakeDepartmentRepo()
	svc := newService(repo)

	_, err := svc.Create(context.Background(), department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)

	// The name check is case-insensitive.
	_, err = svc.Create(context.Background(), department.CreateDepartmentRequest{Name: "engineering"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
}

func TestDepartmentService_Create_RejectsBlankName(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeDepartmentRepo())

	_, err := svc.Create(context.Background(), department.CreateDepartmentRequest{Name: "   "})
	assert.Error(t, err)
}

func TestDepartmentService_Update(t *testing.T) {
	t.Parallel()
	repo := newFakeDepartmentRepo()
	svc := newService(repo)

	created, err := svc.Create(context.Background(), department.CreateDepartmentRequest{
		Name:        "Engineering",
		Description: strPtr("Builds the product"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), department.UpdateDepartmentRequest{
		ID:         created.ID,
		CostCenter: strPtr("CC-200"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.CostCenter)
	assert.Equal(t, "CC-200", *updated.CostCenter)
	// Untouched fields survive.
	assert.Equal(t, "Engineering", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Builds the product", *updated.Description)
}

func TestDepartmentService_Update_UnknownDepartment(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeDepartmentRepo())

	_, err := svc.Update(context.Background(), department.UpdateDepartmentRequest{
		ID:   "missing",
		Name: strPtr("Renamed"),
	})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestDepartmentService_GetByID_UnknownDepartment(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeDepartmentRepo())

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestDepartmentService_Delete_UnknownDepartment(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeDepartmentRepo())

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}
