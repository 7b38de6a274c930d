package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/corepay/payroll-backend-go/internal/domain/timeentry"
	"github.com/corepay/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const timeEntryColumns = `
	id, employee_id, department_id, entry_date, clock_in, clock_out,
	regular_hours, overtime_hours, source, source_reference, status,
	imported_at, approved_at, approved_by, notes
`

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var t timeentry.TimeEntry
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.DepartmentID, &t.EntryDate, &t.ClockIn, &t.ClockOut,
		&t.RegularHours, &t.OvertimeHours, &t.Source, &t.SourceReference, &t.Status,
		&t.ImportedAt, &t.ApprovedAt, &t.ApprovedBy, &t.Notes,
	)
	return t, err
}

func (r *timeEntryRepository) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			id, employee_id, department_id, entry_date, clock_in, clock_out,
			regular_hours, overtime_hours, source, source_reference, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + timeEntryColumns

	created, err := scanTimeEntry(q.QueryRow(ctx, query,
		uuid.NewString(), entry.EmployeeID, entry.DepartmentID, entry.EntryDate, entry.ClockIn, entry.ClockOut,
		entry.RegularHours, entry.OvertimeHours, entry.Source, entry.SourceReference, entry.Status, entry.Notes,
	))
	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return created, nil
}

func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE id = $1`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return entry, nil
}

func (r *timeEntryRepository) FindForEmployee(ctx context.Context, employeeID string, start, end time.Time, status timeentry.Status) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1 AND entry_date BETWEEN $2 AND $3 AND status = $4
		ORDER BY entry_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end, status)
	if err != nil {
		return nil, fmt.Errorf("failed to find time entries: %w", err)
	}
	defer rows.Close()

	return collectTimeEntries(rows)
}

func (r *timeEntryRepository) FindByDepartment(ctx context.Context, departmentID string) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE department_id = $1
		ORDER BY entry_date
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find time entries by department: %w", err)
	}
	defer rows.Close()

	return collectTimeEntries(rows)
}

func collectTimeEntries(rows pgx.Rows) ([]timeentry.TimeEntry, error) {
	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *timeEntryRepository) SumApprovedHours(ctx context.Context, employeeID string, start, end time.Time) (timeentry.HoursTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(COALESCE(regular_hours, 0)), 0),
			   COALESCE(SUM(COALESCE(overtime_hours, 0)), 0)
		FROM time_entries
		WHERE employee_id = $1 AND entry_date BETWEEN $2 AND $3 AND status = $4
	`

	var totals timeentry.HoursTotals
	err := q.QueryRow(ctx, query, employeeID, start, end, timeentry.StatusApproved).Scan(
		&totals.RegularHours, &totals.OvertimeHours,
	)
	if err != nil {
		return timeentry.HoursTotals{}, fmt.Errorf("failed to sum approved hours: %w", err)
	}

	return totals, nil
}

func (r *timeEntryRepository) UpdateStatus(ctx context.Context, id string, status timeentry.Status, approvedBy *string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	// Entering APPROVED stamps the approval pair; any other target clears it.
	query := `
		UPDATE time_entries
		SET status = $2,
			approved_at = CASE WHEN $2 = 'APPROVED' THEN NOW() ELSE NULL END,
			approved_by = CASE WHEN $2 = 'APPROVED' THEN $3 ELSE NULL END
		WHERE id = $1
		RETURNING ` + timeEntryColumns

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, id, status, approvedBy))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to update time entry status: %w", err)
	}

	return entry, nil
}

func (r *timeEntryRepository) DetachDepartment(ctx context.Context, departmentID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE time_entries SET department_id = NULL WHERE department_id = $1`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to detach time entries from department: %w", err)
	}
	return nil
}

func (r *timeEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM time_entries WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.ErrTimeEntryNotFound
		}
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	return nil
}
