package model

import (
	apperrors "event-lifecycle-service/pkg/app_errors"
)

// Status 事件生命週期狀態
type Status string

const (
	StatusOpen     Status = "OPEN"
	StatusActive   Status = "ACTIVE"
	StatusTesting  Status = "TESTING"
	StatusChecking Status = "CHECKING"
	StatusClosed   Status = "CLOSED"
	StatusCanceled Status = "CANCELED"
)

// statusByCode maps the numeric wire codes 1..6 onto the six enumerants.
var statusByCode = map[int]Status{
	1: StatusOpen,
	2: StatusActive,
	3: StatusTesting,
	4: StatusChecking,
	5: StatusClosed,
	6: StatusCanceled,
}

// StatusFromCode converts a wire code into a Status.
// Codes outside [1,6] fail with ErrInvalidStatus.
func StatusFromCode(code int) (Status, error) {
	s, ok := statusByCode[code]
	if !ok {
		return "", apperrors.ErrInvalidStatus
	}
	return s, nil
}

// Code returns the numeric wire code for s, or 0 if s is not a known status.
func (s Status) Code() int {
	for code, status := range statusByCode {
		if status == s {
			return code
		}
	}
	return 0
}

// IsValid 驗證狀態是否有效
func (s Status) IsValid() bool {
	return s.Code() != 0
}
