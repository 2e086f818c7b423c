package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidPIN       = errors.New("PIN must be exactly 4 digits")
	ErrPINMismatch      = errors.New("incorrect PIN")
)
