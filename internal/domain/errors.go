package domain

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnknownProduct        = errors.New("unknown product")
	ErrMissingSignature      = errors.New("missing signature")
	ErrInvalidSignature      = errors.New("invalid signature")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
