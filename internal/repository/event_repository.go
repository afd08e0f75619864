package repository

import (
	"context"
	"errors"
	"time"

	"event-lifecycle-service/internal/model"
	apperrors "event-lifecycle-service/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, id int64, params model.UpdateEventParams) (*model.Event, error)
	FindByID(ctx context.Context, id int64) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	// FindStale 回傳 updated_at 早於 updatedBefore 的事件（status 為 nil 時不過濾狀態）
	FindStale(ctx context.Context, updatedBefore time.Time, status *model.Status) ([]*model.Event, error)
	// TransitionStale 批次更新：把 updated_at 早於 updatedBefore 的事件狀態改為 to，
	// from 為 nil 時不限原狀態。回傳受影響筆數。
	TransitionStale(ctx context.Context, to model.Status, updatedBefore time.Time, from *model.Status) (int64, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `
	e.id, e.name, e.description, e.create_date, e.status, e.alerts, e.created_at, e.updated_at,
	l.id, l.latitude, l.longitude
`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.CreateDate,
		&event.Status,
		&event.Alerts,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.Location.ID,
		&event.Location.Latitude,
		&event.Location.Longitude,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		WITH inserted AS (
			INSERT INTO events (name, description, create_date, status, alerts, location_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, name, description, create_date, status, alerts, location_id, created_at, updated_at
		)
		SELECT ` + eventColumns + `
		FROM inserted e
		JOIN locations l ON l.id = e.location_id
	`
	return scanEvent(r.pool.QueryRow(ctx, query,
		event.Name, event.Description, event.CreateDate, event.Status, event.Alerts, event.Location.ID,
	))
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int64, params model.UpdateEventParams) (*model.Event, error) {
	query := `
		WITH updated AS (
			UPDATE events
			SET name = $1, description = $2, create_date = $3, status = $4, alerts = $5, location_id = $6, updated_at = $7
			WHERE id = $8
			RETURNING id, name, description, create_date, status, alerts, location_id, created_at, updated_at
		)
		SELECT ` + eventColumns + `
		FROM updated e
		JOIN locations l ON l.id = e.location_id
	`
	event, err := scanEvent(r.pool.QueryRow(ctx, query,
		params.Name, params.Description, params.CreateDate, params.Status, params.Alerts, params.LocationID,
		time.Now().UTC(), id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN locations l ON l.id = e.location_id
		WHERE e.id = $1
	`
	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN locations l ON l.id = e.location_id
		ORDER BY e.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) FindStale(ctx context.Context, updatedBefore time.Time, status *model.Status) ([]*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN locations l ON l.id = e.location_id
		WHERE e.updated_at < $1
	`
	args := []interface{}{updatedBefore}
	if status != nil {
		query += ` AND e.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY e.updated_at ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) TransitionStale(ctx context.Context, to model.Status, updatedBefore time.Time, from *model.Status) (int64, error) {
	query := `UPDATE events SET status = $1 WHERE updated_at < $2`
	args := []interface{}{to, updatedBefore}
	if from != nil {
		query += ` AND status = $3`
		args = append(args, *from)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
