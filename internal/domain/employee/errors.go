package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrTaxIDExists      = errors.New("tax id already registered")
	ErrInvalidType      = errors.New("invalid employee type")
)
