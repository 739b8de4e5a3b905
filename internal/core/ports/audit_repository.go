package ports

import (
	"context"

	"github.com/gymcore/admin-console/internal/core/domain"
)

// AuditRepository persists the trail of successful admin mutations.
type AuditRepository interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}
