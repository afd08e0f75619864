package model

import "time"

// Location 事件地點，以精確座標去重
type Location struct {
	ID        int64   `json:"id" db:"id"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Event 事件模型
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreateDate  time.Time `json:"create_date" db:"create_date"`
	Status      Status    `json:"status" db:"status"`
	Alerts      []int64   `json:"alerts" db:"alerts"`
	Location    Location  `json:"location"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// LocationRequest 請求中的座標
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// UpsertEventRequest 建立或更新事件請求
type UpsertEventRequest struct {
	ID          *int64          `json:"id"`
	Name        string          `json:"name" binding:"required,alphanumspace"`
	CreateDate  string          `json:"create_date" binding:"required"`
	Location    LocationRequest `json:"location" binding:"required"`
	Alerts      []int64         `json:"alerts" binding:"required"`
	Status      int             `json:"status" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// UpdateEventParams 更新既有事件的欄位
type UpdateEventParams struct {
	Name        string
	Description string
	CreateDate  time.Time
	Status      Status
	Alerts      []int64
	LocationID  int64
}
