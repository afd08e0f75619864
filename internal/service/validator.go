package service

import (
	"time"

	"event-lifecycle-service/internal/model"
	apperrors "event-lifecycle-service/pkg/app_errors"
	"event-lifecycle-service/pkg/clock"
)

// 事件地點必須落在的邊界框
const (
	MinLatitude  = 29.0
	MaxLatitude  = 33.5
	MinLongitude = 34.0
	MaxLongitude = 36.0
)

// EventValidator 對已通過 schema 綁定的請求做業務檢查。
// 依序檢查，遇到第一個錯誤即停止。
type EventValidator interface {
	// Validate 回傳解析後的 create_date
	Validate(req *model.UpsertEventRequest) (time.Time, error)
}

type EventValidatorImpl struct {
	clock clock.Clock
}

func NewEventValidator(clk clock.Clock) EventValidator {
	return &EventValidatorImpl{clock: clk}
}

func (v *EventValidatorImpl) Validate(req *model.UpsertEventRequest) (time.Time, error) {
	// 1. 狀態碼必須在 1..6
	if req.Status < 1 || req.Status > 6 {
		return time.Time{}, apperrors.ErrInvalidStatus
	}

	// 2. 座標必須在以色列邊界內
	latitude, longitude := *req.Location.Latitude, *req.Location.Longitude
	if latitude < MinLatitude || latitude > MaxLatitude || longitude < MinLongitude || longitude > MaxLongitude {
		return time.Time{}, apperrors.ErrLocationOutOfBounds
	}

	// 3. 事件日期必須嚴格晚於現在
	createDate, err := time.Parse(time.RFC3339, req.CreateDate)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidCreateDate
	}
	if !createDate.After(v.clock.Now()) {
		return time.Time{}, apperrors.ErrEventNotInFuture
	}

	return createDate, nil
}
