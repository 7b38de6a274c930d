package timeentry

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry is one imported attendance record. DepartmentID is a snapshot of
// the employee's department at creation time and is not kept in sync with
// later reassignments.
type TimeEntry struct {
	ID              string
	EmployeeID      string
	DepartmentID    *string
	EntryDate       time.Time
	ClockIn         *time.Time
	ClockOut        *time.Time
	RegularHours    *decimal.Decimal
	OvertimeHours   *decimal.Decimal
	Source          *Source
	SourceReference *string
	Status          Status
	ImportedAt      time.Time
	ApprovedAt      *time.Time
	ApprovedBy      *string
	Notes           *string
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Source string

const (
	SourceBiometric Source = "BIOMETRIC"
	SourceTimesheet Source = "TIMESHEET"
	SourceManual    Source = "MANUAL"
	SourceAPI       Source = "API"
)

// HoursTotals is the aggregation result over a range of approved entries.
type HoursTotals struct {
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
}

// DeriveRegularHours fills in regular hours from the clock pair when the
// caller supplied neither. A non-positive duration yields zero.
func DeriveRegularHours(clockIn, clockOut time.Time) decimal.Decimal {
	minutes := clockOut.Sub(clockIn).Minutes()
	if minutes <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60)).Round(2)
}
