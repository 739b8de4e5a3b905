package domain

import "time"

// AuditEntry records one successful admin mutation for the audit trail.
type AuditEntry struct {
	Actor      string    `json:"actor"`
	Action     string    `json:"action"` // "create", "update", "delete"
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
