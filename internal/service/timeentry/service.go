package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/corepay/payroll-backend-go/internal/domain/department"
	"github.com/corepay/payroll-backend-go/internal/domain/employee"
	"github.com/corepay/payroll-backend-go/internal/domain/timeentry"
	"github.com/corepay/payroll-backend-go/internal/pkg/database"
	"github.com/corepay/payroll-backend-go/internal/pkg/validator"
	"github.com/corepay/payroll-backend-go/internal/repository/postgresql"
)

type TimeEntryServiceImpl struct {
	db             *database.DB
	timeEntryRepo  timeentry.TimeEntryRepository
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewTimeEntryService(
	db *database.DB,
	timeEntryRepo timeentry.TimeEntryRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		db:             db,
		timeEntryRepo:  timeEntryRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// Record implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Record(ctx context.Context, req timeentry.RecordTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.buildEntry(ctx, req)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	created, err := s.timeEntryRepo.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return toTimeEntryResponse(created), nil
}

// Import implements timeentry.TimeEntryService. The batch commits as one
// transaction; an unknown employee in any row rolls back every row.
func (s *TimeEntryServiceImpl) Import(ctx context.Context, req timeentry.ImportTimeEntriesRequest) ([]timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(req.Entries))
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for i, entryReq := range req.Entries {
			entry, err := s.buildEntry(txCtx, entryReq)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			created, err := s.timeEntryRepo.Create(txCtx, entry)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			responses = append(responses, toTimeEntryResponse(created))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// buildEntry validates the employee, snapshots the department and derives
// regular hours from the clock pair when absent.
func (s *TimeEntryServiceImpl) buildEntry(ctx context.Context, req timeentry.RecordTimeEntryRequest) (timeentry.TimeEntry, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}

	entryDate, _ := time.Parse("2006-01-02", req.EntryDate)

	entry := timeentry.TimeEntry{
		EmployeeID:      emp.ID,
		DepartmentID:    emp.DepartmentID,
		EntryDate:       entryDate,
		RegularHours:    req.RegularHours,
		OvertimeHours:   req.OvertimeHours,
		SourceReference: req.SourceReference,
		Status:          timeentry.StatusPending,
		Notes:           req.Notes,
	}
	if req.DepartmentID != nil {
		entry.DepartmentID = req.DepartmentID
	}
	if req.Source != nil {
		source := timeentry.Source(*req.Source)
		entry.Source = &source
	}
	if req.Status != nil {
		entry.Status = timeentry.Status(*req.Status)
	}
	if req.ClockIn != nil {
		t, _ := validator.IsValidDateTime(*req.ClockIn)
		entry.ClockIn = &t
	}
	if req.ClockOut != nil {
		t, _ := validator.IsValidDateTime(*req.ClockOut)
		entry.ClockOut = &t
	}

	if entry.RegularHours == nil && entry.ClockIn != nil && entry.ClockOut != nil {
		derived := timeentry.DeriveRegularHours(*entry.ClockIn, *entry.ClockOut)
		entry.RegularHours = &derived
	}

	return entry, nil
}

// GetByID implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetByID(ctx context.Context, id string) (timeentry.TimeEntryResponse, error) {
	entry, err := s.timeEntryRepo.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toTimeEntryResponse(entry), nil
}

// ListForEmployee implements timeentry.TimeEntryService. Status defaults to
// APPROVED, matching what the payroll aggregation consumes.
func (s *TimeEntryServiceImpl) ListForEmployee(ctx context.Context, employeeID, start, end, status string) ([]timeentry.TimeEntryResponse, error) {
	startDate, endDate, err := parseDateRange(start, end)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	entryStatus := timeentry.StatusApproved
	if status != "" {
		switch timeentry.Status(status) {
		case timeentry.StatusPending, timeentry.StatusApproved, timeentry.StatusRejected:
			entryStatus = timeentry.Status(status)
		default:
			return nil, timeentry.ErrInvalidStatus
		}
	}

	entries, err := s.timeEntryRepo.FindForEmployee(ctx, employeeID, startDate, endDate, entryStatus)
	if err != nil {
		return nil, err
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toTimeEntryResponse(entry))
	}
	return responses, nil
}

// ListForDepartment implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ListForDepartment(ctx context.Context, departmentID string) ([]timeentry.TimeEntryResponse, error) {
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	entries, err := s.timeEntryRepo.FindByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toTimeEntryResponse(entry))
	}
	return responses, nil
}

// UpdateStatus implements timeentry.TimeEntryService. Any state can move to
// any other; entering APPROVED stamps the approval pair and leaving it clears
// them, which the repository encodes in the update itself.
func (s *TimeEntryServiceImpl) UpdateStatus(ctx context.Context, req timeentry.UpdateStatusRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.timeEntryRepo.UpdateStatus(ctx, req.ID, timeentry.Status(req.Status), req.ApprovedBy)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return toTimeEntryResponse(entry), nil
}

// AggregateApprovedHours implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) AggregateApprovedHours(ctx context.Context, employeeID, start, end string) (timeentry.HoursSummaryResponse, error) {
	startDate, endDate, err := parseDateRange(start, end)
	if err != nil {
		return timeentry.HoursSummaryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return timeentry.HoursSummaryResponse{}, err
	}

	totals, err := s.timeEntryRepo.SumApprovedHours(ctx, employeeID, startDate, endDate)
	if err != nil {
		return timeentry.HoursSummaryResponse{}, err
	}

	return timeentry.HoursSummaryResponse{
		EmployeeID:    employeeID,
		PeriodStart:   start,
		PeriodEnd:     end,
		RegularHours:  totals.RegularHours.Round(2),
		OvertimeHours: totals.OvertimeHours.Round(2),
	}, nil
}

// Delete implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.timeEntryRepo.Delete(ctx, id)
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	var errs validator.ValidationErrors

	startDate, okStart := validator.IsValidDate(start)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "must be YYYY-MM-DD"})
	}
	endDate, okEnd := validator.IsValidDate(end)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return startDate, endDate, nil
}

func toTimeEntryResponse(entry timeentry.TimeEntry) timeentry.TimeEntryResponse {
	resp := timeentry.TimeEntryResponse{
		ID:              entry.ID,
		EmployeeID:      entry.EmployeeID,
		DepartmentID:    entry.DepartmentID,
		EntryDate:       entry.EntryDate.Format("2006-01-02"),
		RegularHours:    entry.RegularHours,
		OvertimeHours:   entry.OvertimeHours,
		SourceReference: entry.SourceReference,
		Status:          string(entry.Status),
		ApprovedBy:      entry.ApprovedBy,
		Notes:           entry.Notes,
	}
	if entry.ClockIn != nil {
		v := entry.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &v
	}
	if entry.ClockOut != nil {
		v := entry.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	if entry.Source != nil {
		v := string(*entry.Source)
		resp.Source = &v
	}
	if entry.ApprovedAt != nil {
		v := entry.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}
