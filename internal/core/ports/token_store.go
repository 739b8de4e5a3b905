package ports

import "context"

// TokenStore persists the bearer credential of each signed-in console session,
// keyed by the session cookie identifier. Find returns "" when no credential
// is stored for the key.
type TokenStore interface {
	Save(ctx context.Context, sessionID, token string) error
	Find(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
