package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"event-lifecycle-service/config"
	"event-lifecycle-service/internal/model"
	"event-lifecycle-service/internal/repository"
	"event-lifecycle-service/pkg/clock"
	"event-lifecycle-service/pkg/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LifecycleScheduler 以固定間隔推進事件狀態：
//   - 啟用：OPEN 且 updated_at 早於 now-activationThreshold → ACTIVE
//   - 關閉：不分狀態，updated_at 早於 now-closureThreshold → CLOSED
//
// 關閉規則永遠有最後決定權：同一個 tick 剛被啟用的事件，只要夠舊仍會被關閉。
// 兩次批次更新都不會刷新 updated_at，事件的時效只由呼叫端寫入驅動。
type LifecycleScheduler interface {
	Start(ctx context.Context)
	// RunOnce 執行單一個 tick 的兩次批次更新
	RunOnce(ctx context.Context) error
}

type LifecycleSchedulerImpl struct {
	repo    repository.EventRepository
	clock   clock.Clock
	cfg     config.SchedulerConfig
	running atomic.Bool
}

func NewLifecycleScheduler(repo repository.EventRepository, clk clock.Clock, cfg config.SchedulerConfig) LifecycleScheduler {
	return &LifecycleSchedulerImpl{
		repo:  repo,
		clock: clk,
		cfg:   cfg,
	}
}

// Start 啟動 tick 迴圈，ctx 取消時停止。
// 上一個 tick 還在跑時跳過本次，避免批次更新互相重疊。
func (s *LifecycleSchedulerImpl) Start(ctx context.Context) {
	log := logger.WithComponent("scheduler")
	ticker := time.NewTicker(s.cfg.Interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info("scheduler stopped")
				return
			case <-ticker.C:
				if !s.running.CompareAndSwap(false, true) {
					log.Warn("previous tick still running, skipping")
					continue
				}
				if err := s.RunOnce(ctx); err != nil {
					log.Error("tick failed", zap.Error(err))
				}
				s.running.Store(false)
			}
		}
	}()
}

func (s *LifecycleSchedulerImpl) RunOnce(ctx context.Context) error {
	log := logger.WithComponent("scheduler")
	now := s.clock.Now()
	activationCutoff := now.Add(-s.cfg.ActivationThreshold)
	closureCutoff := now.Add(-s.cfg.ClosureThreshold)

	log.Debug("running tick",
		zap.Time("now", now),
		zap.Time("activation_cutoff", activationCutoff),
		zap.Time("closure_cutoff", closureCutoff),
	)

	if log.Core().Enabled(zapcore.DebugLevel) {
		s.logCandidates(ctx, log, activationCutoff, closureCutoff)
	}

	open := model.StatusOpen
	activated, err := s.repo.TransitionStale(ctx, model.StatusActive, activationCutoff, &open)
	if err != nil {
		return err
	}
	log.Debug("activated stale open events", zap.Int64("count", activated))

	closed, err := s.repo.TransitionStale(ctx, model.StatusClosed, closureCutoff, nil)
	if err != nil {
		return err
	}
	log.Debug("closed stale events", zap.Int64("count", closed))

	return nil
}

func (s *LifecycleSchedulerImpl) logCandidates(ctx context.Context, log *zap.Logger, activationCutoff, closureCutoff time.Time) {
	open := model.StatusOpen
	openEvents, err := s.repo.FindStale(ctx, activationCutoff, &open)
	if err != nil {
		log.Warn("failed to list activation candidates", zap.Error(err))
	} else {
		log.Debug("activation candidates", zap.Int("count", len(openEvents)))
		for _, e := range openEvents {
			log.Debug("activation candidate",
				zap.Int64("id", e.ID), zap.String("name", e.Name), zap.Time("updated_at", e.UpdatedAt))
		}
	}

	staleEvents, err := s.repo.FindStale(ctx, closureCutoff, nil)
	if err != nil {
		log.Warn("failed to list closure candidates", zap.Error(err))
		return
	}
	log.Debug("closure candidates", zap.Int("count", len(staleEvents)))
	for _, e := range staleEvents {
		log.Debug("closure candidate",
			zap.Int64("id", e.ID), zap.String("name", e.Name),
			zap.String("status", string(e.Status)), zap.Time("updated_at", e.UpdatedAt))
	}
}
