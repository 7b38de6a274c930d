package timeentry

import (
	"errors"
	"fmt"

	"github.com/corepay/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordTimeEntryRequest struct {
	EmployeeID      string           `json:"employee_id"`
	DepartmentID    *string          `json:"department_id,omitempty"`
	EntryDate       string           `json:"entry_date"`
	ClockIn         *string          `json:"clock_in,omitempty"`
	ClockOut        *string          `json:"clock_out,omitempty"`
	RegularHours    *decimal.Decimal `json:"regular_hours,omitempty"`
	OvertimeHours   *decimal.Decimal `json:"overtime_hours,omitempty"`
	Source          *string          `json:"source,omitempty"`
	SourceReference *string          `json:"source_reference,omitempty"`
	Status          *string          `json:"status,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

func (r *RecordTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.EntryDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "entry_date", Message: "must be YYYY-MM-DD"})
	}
	if r.ClockIn != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.ClockOut != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.RegularHours != nil && r.RegularHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "regular_hours", Message: "must be non-negative"})
	}
	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.Source != nil {
		switch Source(*r.Source) {
		case SourceBiometric, SourceTimesheet, SourceManual, SourceAPI:
		default:
			errs = append(errs, validator.ValidationError{Field: "source", Message: "must be BIOMETRIC, TIMESHEET, MANUAL or API"})
		}
	}
	if r.Status != nil {
		switch Status(*r.Status) {
		case StatusPending, StatusApproved, StatusRejected:
		default:
			errs = append(errs, validator.ValidationError{Field: "status", Message: "must be PENDING, APPROVED or REJECTED"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportTimeEntriesRequest struct {
	Entries []RecordTimeEntryRequest `json:"entries"`
}

func (r *ImportTimeEntriesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "must not be empty"})
	}
	for i := range r.Entries {
		if err := r.Entries[i].Validate(); err != nil {
			var nested validator.ValidationErrors
			if errors.As(err, &nested) {
				for _, e := range nested {
					errs = append(errs, validator.ValidationError{
						Field:   fmt.Sprintf("entries[%d].%s", i, e.Field),
						Message: e.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID         string
	Status     string  `json:"status"`
	ApprovedBy *string `json:"approved_by,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	switch Status(r.Status) {
	case StatusPending, StatusApproved, StatusRejected:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be PENDING, APPROVED or REJECTED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HoursSummaryResponse struct {
	EmployeeID    string          `json:"employee_id"`
	PeriodStart   string          `json:"period_start"`
	PeriodEnd     string          `json:"period_end"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

type TimeEntryResponse struct {
	ID              string           `json:"id"`
	EmployeeID      string           `json:"employee_id"`
	DepartmentID    *string          `json:"department_id,omitempty"`
	EntryDate       string           `json:"entry_date"`
	ClockIn         *string          `json:"clock_in,omitempty"`
	ClockOut        *string          `json:"clock_out,omitempty"`
	RegularHours    *decimal.Decimal `json:"regular_hours,omitempty"`
	OvertimeHours   *decimal.Decimal `json:"overtime_hours,omitempty"`
	Source          *string          `json:"source,omitempty"`
	SourceReference *string          `json:"source_reference,omitempty"`
	Status          string           `json:"status"`
	ApprovedAt      *string          `json:"approved_at,omitempty"`
	ApprovedBy      *string          `json:"approved_by,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}
