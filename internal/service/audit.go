package service

import (
	"context"
	"log"
	"time"

	"food-console/internal/domain"
)

// Auditor records mutating operator actions. Both sinks are optional and
// best-effort: an unreachable store or broker must never fail the operation
// that triggered the event.
type Auditor struct {
	store     AuditStore
	publisher AuditPublisher
}

func NewAuditor(store AuditStore, publisher AuditPublisher) *Auditor {
	return &Auditor{store: store, publisher: publisher}
}

// Record stores and publishes one audit event. Safe on a nil receiver so
// services can be wired without auditing.
func (a *Auditor) Record(ctx context.Context, action, resource, resourceID, detail string) {
	if a == nil {
		return
	}
	event := domain.AuditEvent{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Detail:     detail,
		Timestamp:  time.Now(),
	}
	if a.store != nil {
		if err := a.store.InsertEvent(&event); err != nil {
			log.Printf("Warning: failed to store audit event %s: %v", action, err)
		}
	}
	if a.publisher != nil {
		if err := a.publisher.PublishEvent(ctx, event); err != nil {
			log.Printf("Warning: failed to publish audit event %s: %v", action, err)
		}
	}
}
