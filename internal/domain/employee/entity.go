package employee

import "time"

type Employee struct {
	ID                 string
	UserID             *string
	FullName           string
	Email              string
	Department         string
	Position           *string
	ReportingManagerID *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
