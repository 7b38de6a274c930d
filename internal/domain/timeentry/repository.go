package timeentry

import (
	"context"
	"time"
)

type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string) (TimeEntry, error)
	FindForEmployee(ctx context.Context, employeeID string, start, end time.Time, status Status) ([]TimeEntry, error)
	FindByDepartment(ctx context.Context, departmentID string) ([]TimeEntry, error)
	// SumApprovedHours totals regular and overtime hours over APPROVED
	// entries with entry_date in [start, end]. Missing hour fields count
	// as zero; an empty range yields zero totals.
	SumApprovedHours(ctx context.Context, employeeID string, start, end time.Time) (HoursTotals, error)
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy *string) (TimeEntry, error)
	DetachDepartment(ctx context.Context, departmentID string) error
	Delete(ctx context.Context, id string) error
}
