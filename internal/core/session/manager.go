package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gymcore/admin-console/internal/core/ports"
)

// Manager owns the persisted credentials behind console sessions. It is
// constructed once and injected into the route guards and handlers that need
// it; nothing reads ambient global state.
type Manager struct {
	tokens ports.TokenStore
	log    zerolog.Logger
}

func NewManager(tokens ports.TokenStore, log zerolog.Logger) *Manager {
	return &Manager{tokens: tokens, log: log}
}

// SetToken persists a bearer credential under the session identifier and
// returns the decoded session. An empty token erases the credential and
// yields the anonymous session.
func (m *Manager) SetToken(ctx context.Context, sessionID, token string) (Session, error) {
	if token == "" {
		if err := m.tokens.Delete(ctx, sessionID); err != nil {
			return Anonymous(), fmt.Errorf("erase credential: %w", err)
		}
		return Anonymous(), nil
	}
	if err := m.tokens.Save(ctx, sessionID, token); err != nil {
		return Anonymous(), fmt.Errorf("persist credential: %w", err)
	}
	return FromToken(token), nil
}

// Logout erases the persisted credential. There is no server round trip; any
// upstream session invalidation is the upstream's own concern.
func (m *Manager) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := m.tokens.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("erase credential: %w", err)
	}
	return nil
}

// Resolve rebuilds the session for one request from the persisted credential.
// Returns the session plus the raw token so callers can forward it upstream.
// Any lookup failure degrades to anonymous rather than erroring the request.
func (m *Manager) Resolve(ctx context.Context, sessionID string) (Session, string) {
	if sessionID == "" {
		return Anonymous(), ""
	}
	token, err := m.tokens.Find(ctx, sessionID)
	if err != nil {
		m.log.Warn().Err(err).Msg("credential lookup failed")
		return Anonymous(), ""
	}
	if token == "" {
		return Anonymous(), ""
	}
	return FromToken(token), token
}
