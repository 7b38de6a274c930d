package timeentry

import "context"

type TimeEntryService interface {
	Record(ctx context.Context, req RecordTimeEntryRequest) (TimeEntryResponse, error)
	// Import records a batch atomically; one bad entry rolls back the lot.
	Import(ctx context.Context, req ImportTimeEntriesRequest) ([]TimeEntryResponse, error)
	GetByID(ctx context.Context, id string) (TimeEntryResponse, error)
	ListForEmployee(ctx context.Context, employeeID, start, end, status string) ([]TimeEntryResponse, error)
	ListForDepartment(ctx context.Context, departmentID string) ([]TimeEntryResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (TimeEntryResponse, error)
	AggregateApprovedHours(ctx context.Context, employeeID, start, end string) (HoursSummaryResponse, error)
	Delete(ctx context.Context, id string) error
}
