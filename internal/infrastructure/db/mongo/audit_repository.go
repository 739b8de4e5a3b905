package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gymcore/admin-console/internal/core/domain"
)

const auditCollection = "audit_log"

// AuditRepository persists the admin mutation trail in MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDocument struct {
	Actor      string `bson:"actor"`
	Action     string `bson:"action"`
	Resource   string `bson:"resource"`
	ResourceID string `bson:"resource_id,omitempty"`
	OccurredAt int64  `bson:"occurred_at"`
}

// Record appends one entry to the audit trail.
func (r *AuditRepository) Record(ctx context.Context, entry domain.AuditEntry) error {
	doc := auditDocument{
		Actor:      entry.Actor,
		Action:     entry.Action,
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		OccurredAt: entry.OccurredAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
