// Package events emits employee change notifications to the configured
// message broker. Publishing is best-effort: the write path that produced
// the change never fails because the broker is down.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/staffdir/apiserver/internal/mq"
	"github.com/staffdir/apiserver/types"
)

const (
	EmployeeCreated = "employee.created"
	EmployeeUpdated = "employee.updated"
	EmployeeDeleted = "employee.deleted"
)

// EmployeeEvent is the envelope published for every employee change.
type EmployeeEvent struct {
	Type       string          `json:"type"`
	EmployeeID int             `json:"employee_id"`
	Employee   *types.Employee `json:"employee,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Publisher publishes employee events to a channel. A nil Publisher is
// valid and drops every event, which is how the service runs when no
// broker is configured.
type Publisher struct {
	mq      *mq.MQ
	channel string
}

// NewPublisher wraps the given MQ. Returns nil when queue is nil so
// callers can hold a disabled publisher without checks at every site.
func NewPublisher(queue *mq.MQ, channel string) *Publisher {
	if queue == nil {
		return nil
	}
	return &Publisher{mq: queue, channel: channel}
}

// Publish serializes and sends the event. Failures are logged and dropped.
func (p *Publisher) Publish(ctx context.Context, event EmployeeEvent) {
	if p == nil {
		return
	}
	event.OccurredAt = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("events: marshal %s: %v", event.Type, err)
		return
	}
	attrs := map[string]string{"type": event.Type}
	if _, err := p.mq.Publish(ctx, p.channel, data, attrs); err != nil {
		log.Printf("events: publish %s: %v", event.Type, err)
	}
}
