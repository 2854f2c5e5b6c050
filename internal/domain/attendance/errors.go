package attendance

import "errors"

var (
	ErrEventNotFound = errors.New("attendance record not found")
)
