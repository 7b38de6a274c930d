package timeentry

import (
	"context"
	"testing"
	"time"

	"github.com/corepay/payroll-backend-go/internal/domain/department"
	"github.com/corepay/payroll-backend-go/internal/domain/employee"
	"github.com/corepay/payroll-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type fakeTimeEntryRepo struct {
	created    []timeentry.TimeEntry
	totals     timeentry.HoursTotals
	lastStatus timeentry.Status
	lastBy     *string
	findStatus timeentry.Status
}

func (f *fakeTimeEntryRepo) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	entry.ID = "te-1"
	entry.ImportedAt = time.Now()
	f.created = append(f.created, entry)
	return entry, nil
}

func (f *fakeTimeEntryRepo) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	for _, entry := range f.created {
		if entry.ID == id {
			return entry, nil
		}
	}
	return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
}

func (f *fakeTimeEntryRepo) FindForEmployee(ctx context.Context, employeeID string, start, end time.Time, status timeentry.Status) ([]timeentry.TimeEntry, error) {
	f.findStatus = status
	return nil, nil
}

func (f *fakeTimeEntryRepo) FindByDepartment(ctx context.Context, departmentID string) ([]timeentry.TimeEntry, error) {
	var out []timeentry.TimeEntry
	for _, entry := range f.created {
		if entry.DepartmentID != nil && *entry.DepartmentID == departmentID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeTimeEntryRepo) SumApprovedHours(ctx context.Context, employeeID string, start, end time.Time) (timeentry.HoursTotals, error) {
	return f.totals, nil
}

func (f *fakeTimeEntryRepo) UpdateStatus(ctx context.Context, id string, status timeentry.Status, approvedBy *string) (timeentry.TimeEntry, error) {
	f.lastStatus = status
	f.lastBy = approvedBy
	entry, err := f.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}
	entry.Status = status
	if status == timeentry.StatusApproved {
		now := time.Now()
		entry.ApprovedAt = &now
		entry.ApprovedBy = approvedBy
	} else {
		entry.ApprovedAt = nil
		entry.ApprovedBy = nil
	}
	return entry, nil
}

func (f *fakeTimeEntryRepo) DetachDepartment(ctx context.Context, departmentID string) error {
	return nil
}

func (f *fakeTimeEntryRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) ListByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) Replace(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) DetachDepartment(ctx context.Context, departmentID string) error {
	return nil
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeDepartmentRepo struct {
	departments map[string]department.Department
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept department.Department) (department.Department, error) {
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
	return department.Department{}, department.ErrDepartmentNotFound
}
func (f *fakeDepartmentRepo) List(ctx context.Context) ([]department.Department, error) {
	return nil, nil
}
func (f *fakeDepartmentRepo) Update(ctx context.Context, dept department.Department) (department.Department, error) {
	return dept, nil
}
func (f *fakeDepartmentRepo) Delete(ctx context.Context, id string) error { return nil }

func newFixture() (*fakeTimeEntryRepo, timeentry.TimeEntryService) {
	deptID := "dept-1"
	repo := &fakeTimeEntryRepo{}
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", DepartmentID: &deptID},
	}}
	deptRepo := &fakeDepartmentRepo{departments: map[string]department.Department{
		deptID: {ID: deptID, Name: "Engineering"},
	}}
	return repo, NewTimeEntryService(nil, repo, empRepo, deptRepo)
}

func strPtr(s string) *string { return &s }

func TestTimeEntryService_Record_DerivesHoursFromClocks(t *testing.T) {
	t.Parallel()
	repo, svc := newFixture()

	result, err := svc.Record(context.Background(), timeentry.RecordTimeEntryRequest{
		EmployeeID: "emp-1",
		EntryDate:  "2025-01-15",
		ClockIn:    strPtr("2025-01-15T09:00:00Z"),
		ClockOut:   strPtr("2025-01-15T17:30:00Z"),
	})
	require.NoError(t, err)

	require.NotNil(t, result.RegularHours)
	assert.True(t, dec("8.5").Equal(*result.RegularHours), "got %s", result.RegularHours)
	assert.Equal(t, string(timeentry.StatusPending), result.Status)
	require.Len(t, repo.created, 1)
}

func TestTimeEntryService_Record_ExplicitHoursWinOverClocks(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	result, err := svc.Record(context.Background(), timeentry.RecordTimeEntryRequest{
		EmployeeID:   "emp-1",
		EntryDate:    "2025-01-15",
		ClockIn:      strPtr("2025-01-15T09:00:00Z"),
		ClockOut:     strPtr("2025-01-15T17:00:00Z"),
		RegularHours: decPtr("6"),
	})
	require.NoError(t, err)

	require.NotNil(t, result.RegularHours)
	assert.True(t, dec("6").Equal(*result.RegularHours))
}

func TestTimeEntryService_Record_NegativeDurationYieldsZero(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	result, err := svc.Record(context.Background(), timeentry.RecordTimeEntryRequest{
		EmployeeID: "emp-1",
		EntryDate:  "2025-01-15",
		ClockIn:    strPtr("2025-01-15T17:00:00Z"),
		ClockOut:   strPtr("2025-01-15T09:00:00Z"),
	})
	require.NoError(t, err)

	require.NotNil(t, result.RegularHours)
	assert.True(t, decimal.Zero.Equal(*result.RegularHours))
}

func TestTimeEntryService_Record_SnapshotsEmployeeDepartment(t *testing.T) {
	t.Parallel()
	repo, svc := newFixture()

	_, err := svc.Record(context.Background(), timeentry.RecordTimeEntryRequest{
		EmployeeID: "emp-1",
		EntryDate:  "2025-01-15",
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	require.NotNil(t, repo.created[0].DepartmentID)
	assert.Equal(t, "dept-1", *repo.created[0].DepartmentID)
}

func TestTimeEntryService_Record_UnknownEmployee(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	_, err := svc.Record(context.Background(), timeentry.RecordTimeEntryRequest{
		EmployeeID: "nobody",
		EntryDate:  "2025-01-15",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestTimeEntryService_Record_RejectsBadStatus(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	_, err := svc.Record(context.Background(), timeentry.RecordTimeEntryRequest{
		EmployeeID: "emp-1",
		EntryDate:  "2025-01-15",
		Status:     strPtr("DONE"),
	})
	assert.Error(t, err)
}

func TestTimeEntryService_UpdateStatus_ApproveStampsAndRejectClears(t *testing.T) {
	t.Parallel()
	repo, svc := newFixture()

	created, err := svc.Record(context.Background(), timeentry.RecordTimeEntryRequest{
		EmployeeID: "emp-1",
		EntryDate:  "2025-01-15",
	})
	require.NoError(t, err)

	approved, err := svc.UpdateStatus(context.Background(), timeentry.UpdateStatusRequest{
		ID:         created.ID,
		Status:     string(timeentry.StatusApproved),
		ApprovedBy: strPtr("manager-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(timeentry.StatusApproved), approved.Status)
	assert.NotNil(t, approved.ApprovedAt)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "manager-1", *approved.ApprovedBy)

	rejected, err := svc.UpdateStatus(context.Background(), timeentry.UpdateStatusRequest{
		ID:     created.ID,
		Status: string(timeentry.StatusRejected),
	})
	require.NoError(t, err)
	assert.Equal(t, string(timeentry.StatusRejected), rejected.Status)
	assert.Nil(t, rejected.ApprovedAt)
	assert.Nil(t, rejected.ApprovedBy)
	assert.Equal(t, timeentry.StatusRejected, repo.lastStatus)
}

func TestTimeEntryService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	_, err := svc.UpdateStatus(context.Background(), timeentry.UpdateStatusRequest{
		ID:     "te-1",
		Status: "ARCHIVED",
	})
	assert.Error(t, err)
}

func TestTimeEntryService_AggregateApprovedHours(t *testing.T) {
	t.Parallel()
	repo, svc := newFixture()
	repo.totals = timeentry.HoursTotals{RegularHours: dec("152.505"), OvertimeHours: dec("8.004")}

	result, err := svc.AggregateApprovedHours(context.Background(), "emp-1", "2025-01-01", "2025-01-31")
	require.NoError(t, err)

	assert.True(t, dec("152.51").Equal(result.RegularHours), "got %s", result.RegularHours)
	assert.True(t, dec("8").Equal(result.OvertimeHours), "got %s", result.OvertimeHours)
	assert.Equal(t, "emp-1", result.EmployeeID)
}

func TestTimeEntryService_AggregateApprovedHours_EmptyRangeIsZero(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	result, err := svc.AggregateApprovedHours(context.Background(), "emp-1", "2025-01-01", "2025-01-31")
	require.NoError(t, err)

	assert.True(t, decimal.Zero.Equal(result.RegularHours))
	assert.True(t, decimal.Zero.Equal(result.OvertimeHours))
}

func TestTimeEntryService_AggregateApprovedHours_BadDates(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	_, err := svc.AggregateApprovedHours(context.Background(), "emp-1", "January 1", "2025-01-31")
	assert.Error(t, err)
}

func TestTimeEntryService_ListForEmployee_DefaultsToApproved(t *testing.T) {
	t.Parallel()
	repo, svc := newFixture()

	_, err := svc.ListForEmployee(context.Background(), "emp-1", "2025-01-01", "2025-01-31", "")
	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusApproved, repo.findStatus)

	_, err = svc.ListForEmployee(context.Background(), "emp-1", "2025-01-01", "2025-01-31", "PENDING")
	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusPending, repo.findStatus)

	_, err = svc.ListForEmployee(context.Background(), "emp-1", "2025-01-01", "2025-01-31", "BOGUS")
	assert.ErrorIs(t, err, timeentry.ErrInvalidStatus)
}

func TestTimeEntryService_ListForDepartment(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	_, err := svc.Record(context.Background(), timeentry.RecordTimeEntryRequest{
		EmployeeID:   "emp-1",
		EntryDate:    "2025-01-15",
		RegularHours: decPtr("8"),
	})
	require.NoError(t, err)

	result, err := svc.ListForDepartment(context.Background(), "dept-1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "emp-1", result[0].EmployeeID)
}

func TestTimeEntryService_ListForDepartment_UnknownDepartment(t *testing.T) {
	t.Parallel()
	_, svc := newFixture()

	_, err := svc.ListForDepartment(context.Background(), "missing")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}
