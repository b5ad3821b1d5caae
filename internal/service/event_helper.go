package service

import (
	"context"
	"time"

	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/pkg/events"
)

const eventPublishTimeout = 3 * time.Second

// publishEvent ships an event on a detached context. Failures are logged and
// never reach the caller.
func publishEvent(publisher events.Publisher, log logger.ILogger, eventType string, data map[string]interface{}) {
	if publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), eventPublishTimeout)
		defer cancel()
		if err := publisher.Publish(ctx, events.New(eventType, data)); err != nil {
			log.Warn("Events", "Failed to publish event", map[string]interface{}{"type": eventType, "error": err.Error()})
		}
	}()
}
