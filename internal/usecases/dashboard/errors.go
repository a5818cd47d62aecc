package dashboard

import "errors"

var (
	ErrOrganizationRequired = errors.New("organization ID is required")
	ErrClientRequired       = errors.New("client ID is required")
	ErrInvalidPeriod        = errors.New("invalid period")
	ErrInvalidSort          = errors.New("invalid sort field")
	ErrInvalidStatus        = errors.New("invalid campaign status")
	ErrOverviewNotFound     = errors.New("analytics overview not found")
)
