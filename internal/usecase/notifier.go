package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Notifier fans a user-facing event out to whatever channels are wired
// (inbox row, websocket push, email). Implementations absorb their own
// failures; a notification must never fail the flow that raised it.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind, message string)
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, uuid.UUID, string, string) {}

func orNoopNotifier(n Notifier) Notifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
