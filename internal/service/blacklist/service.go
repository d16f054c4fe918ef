package blacklist

import (
	"context"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/blacklist"
	"github.com/flexidesk/wfh-backend-go/internal/domain/employee"
	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/database"
	"github.com/flexidesk/wfh-backend-go/internal/service/scheduling"
)

type service struct {
	tx        database.TxRunner
	windows   blacklist.WindowRepository
	employees employee.EmployeeRepository
}

func NewService(
	tx database.TxRunner,
	windows blacklist.WindowRepository,
	employees employee.EmployeeRepository,
) blacklist.WindowService {
	return &service{
		tx:        tx,
		windows:   windows,
		employees: employees,
	}
}

func (s *service) Create(ctx context.Context, req blacklist.CreateWindowRequest) ([]blacklist.Window, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	mgr, err := s.employees.GetByUserID(ctx, req.ManagerID)
	if err != nil {
		return nil, err
	}

	p, err := period.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.windows.WindowPeriods(ctx, mgr.ID)
	if err != nil {
		return nil, err
	}
	validate := func(start, end time.Time) error {
		conflict, err := scheduling.HasOverlap(start, end, existing, scheduling.CategoryBlacklist)
		if err != nil {
			return err
		}
		if conflict {
			return &scheduling.OverlapError{Category: scheduling.CategoryBlacklist}
		}
		return nil
	}
	if err := validate(p.Start, p.End); err != nil {
		return nil, err
	}

	instances := []period.Period{p}
	if req.RecurrenceUnit != "" {
		until, err := period.ParseDateTime(req.RecurrenceEndDate)
		if err != nil {
			return nil, err
		}
		rule := scheduling.RecurrenceRule{
			Unit:  scheduling.RecurrenceUnit(req.RecurrenceUnit),
			Until: period.EndOfDay(until),
		}
		expanded, err := scheduling.ExpandRecurrence(p.Start, p.End, rule, validate)
		if err != nil {
			return nil, err
		}
		instances = append(instances, expanded...)
	}

	var created []blacklist.Window
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, inst := range instances {
			w, err := s.windows.Create(txCtx, blacklist.Window{
				CreatedBy: mgr.ID,
				StartDate: inst.Start,
				EndDate:   inst.End,
				Remarks:   req.Remarks,
			})
			if err != nil {
				return err
			}
			created = append(created, w)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *service) List(ctx context.Context, managerUserID string, from, to *time.Time) ([]blacklist.Window, error) {
	mgr, err := s.employees.GetByUserID(ctx, managerUserID)
	if err != nil {
		return nil, err
	}
	return s.windows.ListByManager(ctx, mgr.ID, from, to)
}

func (s *service) Update(ctx context.Context, req blacklist.UpdateWindowRequest) (blacklist.Window, error) {
	if err := req.Validate(); err != nil {
		return blacklist.Window{}, err
	}

	mgr, err := s.employees.GetByUserID(ctx, req.ManagerID)
	if err != nil {
		return blacklist.Window{}, err
	}

	w, err := s.windows.GetByID(ctx, req.ID)
	if err != nil {
		return blacklist.Window{}, err
	}
	if w.CreatedBy != mgr.ID {
		return blacklist.Window{}, blacklist.ErrNotWindowOwner
	}

	start, end := w.StartDate.Format("2006-01-02 15:04:05"), w.EndDate.Format("2006-01-02 15:04:05")
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	p, err := period.ParsePeriod(start, end)
	if err != nil {
		return blacklist.Window{}, err
	}

	w.StartDate, w.EndDate = p.Start, p.End
	if req.Remarks != nil {
		w.Remarks = req.Remarks
	}

	if err := s.windows.Update(ctx, w); err != nil {
		return blacklist.Window{}, err
	}

	return s.windows.GetByID(ctx, w.ID)
}

func (s *service) Delete(ctx context.Context, managerUserID, windowID string) error {
	mgr, err := s.employees.GetByUserID(ctx, managerUserID)
	if err != nil {
		return err
	}

	w, err := s.windows.GetByID(ctx, windowID)
	if err != nil {
		return err
	}
	if w.CreatedBy != mgr.ID {
		return blacklist.ErrNotWindowOwner
	}

	return s.windows.Delete(ctx, windowID)
}
