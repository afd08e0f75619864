package handler

import (
	"net/http"
	"time"

	"event-lifecycle-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StatusHandler 健康檢查：探測 Postgres 與 Redis 連線
type StatusHandler struct {
	pool    *pgxpool.Pool
	rdb     *redis.Client
	started time.Time
}

func NewStatusHandler(pool *pgxpool.Pool, rdb *redis.Client) *StatusHandler {
	return &StatusHandler{
		pool:    pool,
		rdb:     rdb,
		started: time.Now(),
	}
}

func (h *StatusHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/status", h.Status)
}

func (h *StatusHandler) Status(c *gin.Context) {
	log := logger.WithComponent("handler").With(zap.String("operation", "Status"))

	var one int
	if err := h.pool.QueryRow(c, "SELECT 1").Scan(&one); err != nil {
		log.Error("database not reachable", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "reason": "store not reachable"})
		return
	}

	if err := h.rdb.Ping(c).Err(); err != nil {
		log.Error("redis not reachable", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "reason": "cache not reachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(h.started).Seconds(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
