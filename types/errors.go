package types

import "errors"

var (
	ErrUnmarshal              = errors.New("unmarshal error")
	ErrEmptyServiceReference  = errors.New("service reference is empty")
	ErrPaddedServiceReference = errors.New("service reference has surrounding whitespace")

	ErrDuplicateServiceReference = errors.New("duplicate service reference")
)
