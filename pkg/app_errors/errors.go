package apperrors

import "errors"

var (
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrLocationOutOfBounds = errors.New("location must be within Israel boundaries")
	ErrEventNotInFuture    = errors.New("event date must be in the future")
	ErrInvalidCreateDate   = errors.New("create_date must be an ISO-8601 datetime")
	ErrEventNotFound       = errors.New("event not found")
	ErrStoreUnavailable    = errors.New("store not reachable")
)
