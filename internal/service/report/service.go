package report

import (
	"context"
	"sort"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/domain/employee"
	"github.com/flexidesk/wfh-backend-go/internal/domain/period"
	"github.com/flexidesk/wfh-backend-go/internal/domain/report"
	"github.com/flexidesk/wfh-backend-go/internal/domain/schedule"
)

const dateFormat = "2006-01-02"

type service struct {
	employees employee.EmployeeRepository
	schedules schedule.ScheduleRepository
}

func NewService(
	employees employee.EmployeeRepository,
	schedules schedule.ScheduleRepository,
) report.ReportService {
	return &service{
		employees: employees,
		schedules: schedules,
	}
}

// CompanyWide loads all employees and every schedule touching the day in
// two queries, then counts in memory.
func (s *service) CompanyWide(ctx context.Context, date time.Time) (report.CompanyWideResponse, error) {
	resp := report.CompanyWideResponse{Date: date.Format(dateFormat)}

	employees, err := s.employees.List(ctx)
	if err != nil {
		return report.CompanyWideResponse{}, err
	}
	if len(employees) == 0 {
		return resp, nil
	}

	covering, err := s.schedulesByEmployee(ctx, date)
	if err != nil {
		return report.CompanyWideResponse{}, err
	}

	type counts struct{ wfh, total int }
	byDepartment := make(map[string]*counts)
	for _, emp := range employees {
		c, ok := byDepartment[emp.Department]
		if !ok {
			c = &counts{}
			byDepartment[emp.Department] = c
		}
		c.total++
		if len(covering[emp.ID]) > 0 {
			c.wfh++
		}
	}

	departments := make([]string, 0, len(byDepartment))
	for d := range byDepartment {
		departments = append(departments, d)
	}
	sort.Strings(departments)

	for _, d := range departments {
		c := byDepartment[d]
		resp.Departments = append(resp.Departments, report.DepartmentCount{
			Department: d,
			WFH:        c.wfh,
			WFO:        c.total - c.wfh,
		})
	}

	return resp, nil
}

func (s *service) DepartmentDetail(ctx context.Context, date time.Time, department string) (report.DepartmentDetailResponse, error) {
	resp := report.DepartmentDetailResponse{
		Department: department,
		Date:       date.Format(dateFormat),
	}

	employees, err := s.employees.ListByDepartment(ctx, department)
	if err != nil {
		return report.DepartmentDetailResponse{}, err
	}
	if len(employees) == 0 {
		// Vacuous success: an empty department reports zeroes.
		return resp, nil
	}

	covering, err := s.schedulesByEmployee(ctx, date)
	if err != nil {
		return report.DepartmentDetailResponse{}, err
	}

	dayStart, dayEnd := period.StartOfDay(date), period.EndOfDay(date)

	for _, emp := range employees {
		for _, sched := range covering[emp.ID] {
			block := classifyDay(sched, dayStart, dayEnd, date)

			switch block.Label {
			case period.LabelAM:
				resp.WFHStats.AM++
			case period.LabelPM:
				resp.WFHStats.PM++
			case period.LabelFullDay:
				resp.WFHStats.FullDay++
			}

			resp.WFHStaff = append(resp.WFHStaff, report.WFHStaff{
				EmployeeID: emp.ID,
				Name:       emp.FullName,
				WFHPeriod:  string(block.Label),
			})
		}
	}

	total := resp.WFHStats.AM + resp.WFHStats.PM + resp.WFHStats.FullDay
	if total > 0 {
		resp.WFHStats.AMRatio = float64(resp.WFHStats.AM) / float64(total)
		resp.WFHStats.PMRatio = float64(resp.WFHStats.PM) / float64(total)
		resp.WFHStats.FullDayRatio = float64(resp.WFHStats.FullDay) / float64(total)
	}

	return resp, nil
}

func (s *service) schedulesByEmployee(ctx context.Context, date time.Time) (map[string][]schedule.Schedule, error) {
	covering, err := s.schedules.ListCovering(ctx, date)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string][]schedule.Schedule, len(covering))
	for _, sched := range covering {
		byEmployee[sched.EmployeeID] = append(byEmployee[sched.EmployeeID], sched)
	}
	return byEmployee, nil
}

// classifyDay clips the schedule to the requested day and labels the
// resulting coverage by containment against the fixed business windows.
func classifyDay(sched schedule.Schedule, dayStart, dayEnd, date time.Time) period.DateBlock {
	start, end := sched.StartDate, sched.EndDate
	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}

	block := period.DateBlock{Date: period.StartOfDay(date)}
	switch {
	case !start.After(period.At(date, period.FullStartHour)) && !end.Before(period.At(date, period.FullEndHour)):
		block.Label = period.LabelFullDay
		block.Start, block.End = period.FullDayWindow(date)
	case !end.After(period.At(date, period.AMEndHour)):
		block.Label = period.LabelAM
		block.Start, block.End = period.AMWindow(date)
	case !start.Before(period.At(date, period.PMStartHour)):
		block.Label = period.LabelPM
		block.Start, block.End = period.PMWindow(date)
	default:
		block.Label = period.LabelPartial
		block.Start, block.End = start, end
	}
	return block
}
