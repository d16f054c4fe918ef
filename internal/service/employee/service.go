package employee

import (
	"context"

	"github.com/flexidesk/wfh-backend-go/internal/domain/employee"
)

type service struct {
	employees employee.EmployeeRepository
}

func NewService(employees employee.EmployeeRepository) employee.EmployeeService {
	return &service{employees: employees}
}

func (s *service) Me(ctx context.Context, userID string) (employee.Employee, error) {
	return s.employees.GetByUserID(ctx, userID)
}

func (s *service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employees.List(ctx)
}

func (s *service) ListTeam(ctx context.Context, managerUserID string) ([]employee.Employee, error) {
	mgr, err := s.employees.GetByUserID(ctx, managerUserID)
	if err != nil {
		return nil, err
	}
	return s.employees.ListByManager(ctx, mgr.ID)
}

func (s *service) ListDepartments(ctx context.Context) ([]string, error) {
	return s.employees.ListDepartments(ctx)
}
