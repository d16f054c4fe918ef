package schedule

import "time"

// Schedule is the committed WFH record materialized when an application is
// approved; one-to-one with its originating application, matched by
// employee + start date + end date.
type Schedule struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}
