package timeindex

import "errors"

var (
	// ErrUnsupportedIndexClass is returned when a container's temporal axis is
	// not one of Date, DateTime, YearMonth or YearQuarter.
	ErrUnsupportedIndexClass = errors.New("unsupported index class")

	// ErrInvalidHorizon is returned when a future horizon is not positive.
	ErrInvalidHorizon = errors.New("horizon must be positive")

	// ErrEmptyIndex is returned when an index holds too few instants to infer a step.
	ErrEmptyIndex = errors.New("index has too few instants to infer a step")

	// ErrInvalidOrder is returned when instants are not in non-decreasing order.
	ErrInvalidOrder = errors.New("index instants are not in ascending order")
)
