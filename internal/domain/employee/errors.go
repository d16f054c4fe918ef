package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrNotReportingTo     = errors.New("employee does not report to this manager")
	ErrDepartmentNotFound = errors.New("department not found")
)
