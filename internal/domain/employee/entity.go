package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the shared identity record for every worker in the system.
// Exactly one of Salaried or Hourly is non-nil at any time; Type names which.
type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	HireDate     time.Time
	Address      *string
	City         *string
	State        *string
	ZipCode      *string
	TaxID        *string
	Status       Status
	DepartmentID *string
	Type         Type
	Salaried     *SalariedDetails
	Hourly       *HourlyDetails
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Type string

const (
	TypeSalaried Type = "salaried"
	TypeHourly   Type = "hourly"
)

type Status string

const (
	StatusActive     Status = "Active"
	StatusOnLeave    Status = "On Leave"
	StatusTerminated Status = "Terminated"
)

// SalariedDetails holds the pay basis for fixed-salary employees.
type SalariedDetails struct {
	AnnualSalary    *decimal.Decimal
	BonusPercentage *decimal.Decimal
}

// HourlyDetails holds the pay basis for hourly employees. HoursWorked and
// OvertimeHours are stored defaults used when a pay period has no approved
// time entries.
type HourlyDetails struct {
	HourlyRate         *decimal.Decimal
	HoursWorked        *decimal.Decimal
	OvertimeHours      *decimal.Decimal
	OvertimeMultiplier decimal.Decimal
}

// DefaultOvertimeMultiplier applies when an hourly employee is created without
// an explicit multiplier.
var DefaultOvertimeMultiplier = decimal.RequireFromString("1.5")
