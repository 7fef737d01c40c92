package application

import (
	"context"
	"github.com/sebuszqo/ExpenseTracker/internal/events"
	"log/slog"
)

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// publish never fails the caller; a broken broker only costs the notification.
func publish(ctx context.Context, publisher EventPublisher, eventType events.Type, payload any) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, events.New(eventType, payload)); err != nil {
		slog.WarnContext(ctx, "Failed to publish event", "type", eventType, "error", err)
	}
}
