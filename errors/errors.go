package errors

import "fmt"

var (
	ErrInvalidSalary      = fmt.Errorf("salary cannot be negative")
	ErrEmployeeNotFound   = fmt.Errorf("employee not found")
	ErrUnknownKind        = fmt.Errorf("unknown employee kind")
	ErrInvalidHireRequest = fmt.Errorf("invalid hire request")
)
