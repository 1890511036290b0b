package utils

import "errors"

var (
	ErrSessionNotFound    = errors.New("trip session not found")
	ErrDayNotFound        = errors.New("day not found in trip schedule")
	ErrSlotNotFound       = errors.New("time slot not found")
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrBookingNotFound    = errors.New("accommodation booking not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDateFormat  = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidTimeFormat  = errors.New("invalid time format, expected HH:MM")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
)
