package seating

import "errors"

var (
	ErrEventIDRequired = errors.New("event ID is required")
	ErrGuestNotFound   = errors.New("guest not found")
	ErrTableNotFound   = errors.New("table not found")
	ErrTableFull       = errors.New("table has no available seats")
	ErrGuestDeclined   = errors.New("guest declined the invitation")
	ErrPersist         = errors.New("failed to persist seating change")
)
