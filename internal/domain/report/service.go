package report

import (
	"context"
	"time"
)

type ReportService interface {
	// CompanyWide computes each department's WFH/office headcount split
	// for the given day. An empty company yields an empty report.
	CompanyWide(ctx context.Context, date time.Time) (CompanyWideResponse, error)

	// DepartmentDetail breaks one department's WFH coverage down by
	// business window (AM, PM, full day) and lists the staff working
	// from home that day.
	DepartmentDetail(ctx context.Context, date time.Time, department string) (DepartmentDetailResponse, error)
}
