package redblack

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("redblack: invalid configuration")
	// ErrNilComparator signals a Config with no Compare function.
	ErrNilComparator = errors.New("redblack: comparator is required")
	// ErrNilKeyFunc signals a Config with no Key projection function.
	ErrNilKeyFunc = errors.New("redblack: key function is required")
)
