package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrEndpointNotFound  = errors.New("endpoint not found")
	ErrInvalidEndpoint   = errors.New("invalid endpoint")
	ErrUptimeUnavailable = errors.New("uptime analytics is not configured")
	ErrInvalidDateRange  = errors.New("start date must be before end date")
	ErrStaleCheck        = errors.New("endpoint was checked again since it was scheduled")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, typeReason string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       typeReason,
		Reason:     reason,
	}
}
