package department

import "time"

type Department struct {
	ID          string
	Name        string
	CostCenter  *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
