package employee

import "context"

type EmployeeService interface {
	Me(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ListTeam(ctx context.Context, managerUserID string) ([]Employee, error)
	ListDepartments(ctx context.Context) ([]string, error)
}
