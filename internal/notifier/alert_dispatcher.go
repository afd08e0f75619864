package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"event-lifecycle-service/config"
	"event-lifecycle-service/internal/model"
	"event-lifecycle-service/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const timestampLayout = "2006-01-02 15:04:05"

// Dispatcher 對事件的每個 alert 發送一則外部通知
type Dispatcher interface {
	// Dispatch 立即返回；投遞在背景進行，失敗只記 log
	Dispatch(event *model.Event)
}

// alertPayload 單一 alert 的通知內容：事件欄位原樣帶出，
// alerts 陣列換成單一 alert 欄位，時間戳以目標時區呈現
type alertPayload struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreateDate  string         `json:"create_date"`
	Status      model.Status   `json:"status"`
	Alert       int64          `json:"alert"`
	Location    model.Location `json:"location"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	Timezone    string         `json:"timezone"`
}

type AlertDispatcher struct {
	client   *http.Client
	endpoint string
	tzName   string
	tz       *time.Location
}

func NewAlertDispatcher(client *http.Client, cfg config.FanoutConfig) (*AlertDispatcher, error) {
	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid fanout timezone %q: %w", cfg.Timezone, err)
	}
	return &AlertDispatcher{
		client:   client,
		endpoint: cfg.EndpointURL,
		tzName:   cfg.Timezone,
		tz:       tz,
	}, nil
}

// Dispatch 每個 alert 各開一個 goroutine，互不影響：
// 單一 alert 投遞失敗或卡住，不波及其他 alert，也不影響已回應的請求
func (d *AlertDispatcher) Dispatch(event *model.Event) {
	for _, alertID := range event.Alerts {
		go d.deliver(event, alertID)
	}
}

func (d *AlertDispatcher) deliver(event *model.Event, alertID int64) {
	log := logger.WithComponent("dispatcher").With(
		zap.String("delivery_id", uuid.New().String()),
		zap.Int64("event_id", event.ID),
		zap.Int64("alert", alertID),
	)

	payload := alertPayload{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		CreateDate:  event.CreateDate.In(d.tz).Format(timestampLayout),
		Status:      event.Status,
		Alert:       alertID,
		Location:    event.Location,
		CreatedAt:   event.CreatedAt.In(d.tz).Format(timestampLayout),
		UpdatedAt:   event.UpdatedAt.In(d.tz).Format(timestampLayout),
		Timezone:    d.tzName,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to encode alert payload", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Error("failed to build alert request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		log.Error("alert delivery failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("alert delivery rejected", zap.Int("status_code", resp.StatusCode))
		return
	}

	log.Debug("alert delivered")
}
