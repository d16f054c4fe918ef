package period

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid period")
)
