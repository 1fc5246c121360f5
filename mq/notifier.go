package mq

import (
	"context"

	"github.com/puoklam/lab-app-backend/env"
	"github.com/puoklam/lab-app-backend/lifecycle"
)

// Notifier publishes committed lifecycle events to the events topic.
// Delivery to gateways (live feed, device push, mail) is the consumers'
// concern; consumers see each event at least once and dedup on Event.ID.
type Notifier struct{}

func (Notifier) Notify(ctx context.Context, e lifecycle.Event) error {
	return Publish(env.EVENTS_TOPIC, e)
}
