package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/bloodbank-service/internal/config"
	"github.com/spec-kit/bloodbank-service/internal/events"
	"github.com/spec-kit/bloodbank-service/internal/persistence"
)

// AuditService records admin mutations of staff records. Each event is
// logged and pushed onto a capped Redis list so recent activity can be
// inspected without a database round trip.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	redis      *persistence.Redis
	cfg        config.AuditConfig
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, redis *persistence.Redis, cfg config.AuditConfig) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		redis:      redis,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to staff mutation events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventStaffCreated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventStaffUpdated, a.handleEvent)
	a.dispatcher.Subscribe(events.EventStaffDeleted, a.handleEvent)
}

func (a *AuditService) handleEvent(ctx context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event", string(event.Type)),
		zap.Int64("staff_id", event.StaffID),
		zap.String("actor_identity", string(event.Actor.Identity)),
		zap.String("actor_role", string(event.Actor.Role)),
		zap.Any("payload", event.Payload),
	)
	a.pushEntry(ctx, event)
	return nil
}

// pushEntry appends the entry to the Redis audit list and trims it to
// the configured cap. Redis being unreachable only costs the cached
// trail, never the request.
func (a *AuditService) pushEntry(ctx context.Context, event events.Event) {
	if a.redis == nil || a.redis.Client == nil {
		return
	}

	entry := map[string]any{
		"ts":       event.Timestamp.Format(time.RFC3339Nano),
		"type":     "audit",
		"event":    event.Type,
		"staff_id": event.StaffID,
		"actor":    event.Actor,
		"fields":   event.Payload,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		a.logger.Warn("marshal audit entry", zap.Error(err))
		return
	}

	if err := a.redis.Client.LPush(ctx, a.cfg.RedisKey, data).Err(); err != nil {
		a.logger.Warn("push audit entry", zap.Error(err))
		return
	}
	if a.cfg.MaxEntries > 0 {
		if err := a.redis.Client.LTrim(ctx, a.cfg.RedisKey, 0, a.cfg.MaxEntries-1).Err(); err != nil {
			a.logger.Warn("trim audit list", zap.Error(err))
		}
	}
}
