package notify

import (
	"context"
	"log/slog"

	"servicerequest/internal/core/domain/model/request"
)

// Log writes one structured record per event.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger.With("component", "EventLog")}
}

func (l *Log) Publish(ctx context.Context, events ...request.Event) error {
	for _, e := range events {
		attrs := []any{
			"event_id", e.ID().String(),
			"event", e.Name(),
			"request_id", e.RequestID().String(),
			"status", e.Snapshot().Status.String(),
		}
		switch ev := e.(type) {
		case request.RequestApprovedEvent:
			attrs = append(attrs, "approving_party", ev.ApprovingParty.String())
		case request.RequestRejectedEvent:
			attrs = append(attrs, "close_reason", ev.CloseReason)
		case request.ClosedEvent:
			attrs = append(attrs, "close_reason", ev.CloseReason)
		}
		l.logger.InfoContext(ctx, "request event", attrs...)
	}
	return nil
}
