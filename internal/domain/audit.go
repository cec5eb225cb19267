package domain

import "time"

// AuditEvent records one mutating operator action. The same shape is stored
// in postgres and published to kafka.
type AuditEvent struct {
	ID         int64     `json:"id,omitempty"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	Detail     string    `json:"detail,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
