package lifecycle

import (
	"context"

	"github.com/google/uuid"
	"github.com/puoklam/lab-app-backend/db/model"
)

type EventKind string

const (
	EventNewApplication      EventKind = "NewApplication"
	EventApplicationApproved EventKind = "ApplicationApproved"
	EventApplicationRejected EventKind = "ApplicationRejected"
	EventTransferApproved    EventKind = "TransferApproved"
	EventTransferRejected    EventKind = "TransferRejected"
)

// Event describes one committed transition. ID is the dedup key for
// at-least-once consumers.
type Event struct {
	ID        uuid.UUID      `json:"id"`
	Kind      EventKind      `json:"kind"`
	MemberID  uint           `json:"member_id"`
	ProjectID uint           `json:"project_id"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Notifier delivers events to the notification gateway. Called strictly
// after the transition's transaction commits.
type Notifier interface {
	Notify(ctx context.Context, e Event) error
}

// notify is fire-and-forget: a gateway failure is logged, never surfaced
// to the caller of a committed transition.
func (e *Engine) notify(ctx context.Context, kind EventKind, m *model.Membership, payload map[string]any) {
	if e.notifier == nil {
		return
	}
	ev := Event{
		ID:        uuid.New(),
		Kind:      kind,
		MemberID:  m.MemberID,
		ProjectID: m.ProjectID,
		Payload:   payload,
	}
	if err := e.notifier.Notify(ctx, ev); err != nil && e.logger != nil {
		e.logger.Println(err)
	}
}
