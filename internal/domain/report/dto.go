package report

// ========== COMPANY-WIDE OCCUPANCY ==========

// DepartmentCount is one department's WFH/office split for a day.
type DepartmentCount struct {
	Department string `json:"department"`
	WFH        int    `json:"wfh"`
	WFO        int    `json:"wfo"`
}

type CompanyWideResponse struct {
	Date        string            `json:"date"` // Format: "YYYY-MM-DD"
	Departments []DepartmentCount `json:"departments"`
}

// ========== DEPARTMENT DETAIL ==========

// PeriodBreakdown counts WFH coverage per business window, with proportions
// of the day's total. Proportions are 0 when nothing matched, never NaN.
type PeriodBreakdown struct {
	AM           int     `json:"am"`
	PM           int     `json:"pm"`
	FullDay      int     `json:"full_day"`
	AMRatio      float64 `json:"am_ratio"`
	PMRatio      float64 `json:"pm_ratio"`
	FullDayRatio float64 `json:"full_day_ratio"`
}

// WFHStaff is one employee's WFH entry on the requested day.
type WFHStaff struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	WFHPeriod  string `json:"wfh_period"` // AM, PM, Full Day or Partial Day
}

type DepartmentDetailResponse struct {
	Department string          `json:"department"`
	Date       string          `json:"date"`
	WFHStats   PeriodBreakdown `json:"wfh_stats"`
	WFHStaff   []WFHStaff      `json:"wfh_staff"`
}
