package service

import (
	"context"
	"errors"
	"time"

	"event-lifecycle-service/internal/model"
	"event-lifecycle-service/internal/notifier"
	"event-lifecycle-service/internal/repository"
	apperrors "event-lifecycle-service/pkg/app_errors"
	"event-lifecycle-service/pkg/logger"

	"go.uber.org/zap"
)

type EventService interface {
	// Upsert 驗證並寫入事件：請求帶 id 且存在時更新，否則建立。
	// 成功後觸發 alert fanout，但 fanout 結果不影響回傳值。
	Upsert(ctx context.Context, req *model.UpsertEventRequest) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
}

type EventServiceImpl struct {
	repo       repository.EventRepository
	validator  EventValidator
	locations  LocationResolver
	dispatcher notifier.Dispatcher
}

func NewEventService(
	repo repository.EventRepository,
	validator EventValidator,
	locations LocationResolver,
	dispatcher notifier.Dispatcher,
) EventService {
	return &EventServiceImpl{
		repo:       repo,
		validator:  validator,
		locations:  locations,
		dispatcher: dispatcher,
	}
}

func (s *EventServiceImpl) Upsert(ctx context.Context, req *model.UpsertEventRequest) (*model.Event, error) {
	createDate, err := s.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	location, err := s.locations.Resolve(ctx, *req.Location.Latitude, *req.Location.Longitude)
	if err != nil {
		return nil, err
	}

	// Validator 已擋掉範圍外的碼，這裡再轉一次是防禦性的
	status, err := model.StatusFromCode(req.Status)
	if err != nil {
		return nil, err
	}

	event, err := s.persist(ctx, req, createDate, status, location)
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(event)

	return event, nil
}

func (s *EventServiceImpl) persist(
	ctx context.Context,
	req *model.UpsertEventRequest,
	createDate time.Time,
	status model.Status,
	location *model.Location,
) (*model.Event, error) {
	if req.ID != nil {
		existing, err := s.repo.FindByID(ctx, *req.ID)
		if err != nil && !errors.Is(err, apperrors.ErrEventNotFound) {
			return nil, err
		}
		if existing != nil {
			return s.repo.Update(ctx, existing.ID, model.UpdateEventParams{
				Name:        req.Name,
				Description: req.Description,
				CreateDate:  createDate,
				Status:      status,
				Alerts:      req.Alerts,
				LocationID:  location.ID,
			})
		}
		// 帶了 id 但查無此列：當成新事件建立
		logger.WithComponent("event_service").Debug("upsert id not found, creating",
			zap.Int64("requested_id", *req.ID))
	}

	return s.repo.Create(ctx, &model.Event{
		Name:        req.Name,
		Description: req.Description,
		CreateDate:  createDate,
		Status:      status,
		Alerts:      req.Alerts,
		Location:    *location,
	})
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.repo.List(ctx)
}
