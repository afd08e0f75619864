package handler

import (
	"net/http"

	"event-lifecycle-service/internal/model"
	"event-lifecycle-service/internal/service"
	apperrors "event-lifecycle-service/pkg/app_errors"
	"event-lifecycle-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/update", h.Upsert)
	r.GET("/event", h.List)
}

func (h *EventHandler) Upsert(c *gin.Context) {
	var req model.UpsertEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  FieldErrorsFrom(err),
		})
		return
	}

	event, err := h.service.Upsert(c, &req)
	if err != nil {
		h.handleError(c, err, "Upsert")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event updated successfully",
		"event":   event,
	})
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

// 業務規則錯誤沿用 schema 驗證的 400 格式，帶上對應欄位
func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch err {
	case apperrors.ErrInvalidStatus:
		log.Warn("invalid status")
		h.validationFailed(c, "status", err)
	case apperrors.ErrLocationOutOfBounds:
		log.Warn("location out of bounds")
		h.validationFailed(c, "location", err)
	case apperrors.ErrInvalidCreateDate, apperrors.ErrEventNotInFuture:
		log.Warn("invalid create date")
		h.validationFailed(c, "create_date", err)
	default:
		log.Error("unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *EventHandler) validationFailed(c *gin.Context, path string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation failed",
		"errors":  []FieldError{{Path: path, Message: err.Error()}},
	})
}
