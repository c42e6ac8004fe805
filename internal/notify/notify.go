// Package notify delivers data store notifications to their sinks.
package notify

import (
	"context"
	"log/slog"

	"aiva/internal/domain"
	"aiva/internal/service"
)

// Log writes every notification to a structured logger. Failures are logged
// at warn level.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger.With("component", "notifications")}
}

func (l *Log) Notify(ctx context.Context, n domain.Notification) {
	level := slog.LevelInfo
	if n.Level == domain.NotificationFailure {
		level = slog.LevelWarn
	}
	l.logger.Log(ctx, level, n.Message,
		"action", n.Action,
		"collection", n.Collection,
		"entity_id", n.EntityID,
		"timestamp", n.Timestamp,
	)
}

// Multi fans a notification out to every non-nil notifier in order.
type Multi []service.Notifier

func (m Multi) Notify(ctx context.Context, n domain.Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(ctx, n)
		}
	}
}

var (
	_ service.Notifier = (*Log)(nil)
	_ service.Notifier = Multi(nil)
)
