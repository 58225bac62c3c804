package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"worklink/internal/domain/notification"
)

type notificationEvent struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Timestamp string    `json:"timestamp"`
}

// NotifyUser pushes one notification event to every open connection of
// its user. Delivery inherits the hub's best-effort semantics.
func (h *Hub) NotifyUser(n notification.Notification) {
	if h == nil || n.UserID == uuid.Nil {
		return
	}

	evt := notificationEvent{
		Type:      "notification",
		ID:        n.ID,
		Kind:      n.Kind,
		Message:   n.Message,
		Timestamp: n.CreatedAt.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.SendToUser(n.UserID, b)
}
