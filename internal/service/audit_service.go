package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/edupulse/internal/domain"
	"github.com/spec-kit/edupulse/internal/events"
	"github.com/spec-kit/edupulse/internal/repository"
)

// AuditService turns activity events into append-only activity_logs rows.
type AuditService struct {
	dispatcher events.Dispatcher
	logs       repository.ActivityLogRepository
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logs repository.ActivityLogRepository, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logs: logs, logger: logger}
}

// RegisterHandlers subscribes to every audited event type.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserLoggedIn, a.handleActivity)
	a.dispatcher.Subscribe(events.EventUserCreated, a.handleActivity)
	a.dispatcher.Subscribe(events.EventUserDeleted, a.handleActivity)
}

// RecentLogs reads the newest audit entries for the admin log view.
func (a *AuditService) RecentLogs(ctx context.Context, limit int) ([]*domain.ActivityLog, error) {
	return a.logs.ListRecent(ctx, limit)
}

func (a *AuditService) handleActivity(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ActivityPayload)
	if !ok {
		return nil
	}

	entry := &domain.ActivityLog{
		UserID:    event.ActorID,
		Action:    payload.Action,
		Details:   payload.Details,
		IPAddress: payload.IPAddress,
	}
	if err := a.logs.Insert(ctx, entry); err != nil {
		a.logger.Warn("failed to append activity log",
			zap.String("action", payload.Action),
			zap.Error(err))
		return err
	}
	return nil
}
