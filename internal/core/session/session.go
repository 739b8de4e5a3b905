// Package session holds the decoded identity behind a bearer token and
// answers admission-control queries for protected navigation.
package session

import (
	"sort"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gymcore/admin-console/internal/core/domain"
)

// Claim keys as issued by the upstream identity provider. The role claim uses
// the namespaced key and its value is either a single string or an array of
// strings; it is normalized into a set here, once, at the decode boundary.
const (
	roleClaimKey  = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	nameClaimKey  = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	emailClaimKey = "email"
)

// Session is the decoded identity. The zero value is unauthenticated with no
// roles and no username.
type Session struct {
	authenticated bool
	username      string
	email         string
	roles         map[string]struct{}
}

// Anonymous returns the unauthenticated session.
func Anonymous() Session {
	return Session{}
}

// FromToken decodes a bearer token's embedded claims into a Session. The
// signature is NOT verified: the token was issued and validated by the
// upstream API, and the console trusts its claims until logout or
// replacement. An empty or undecodable token yields the anonymous session.
func FromToken(token string) Session {
	if token == "" {
		return Anonymous()
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Anonymous()
	}

	sess := Session{
		authenticated: true,
		roles:         normalizeRoles(claims[roleClaimKey]),
	}
	if name, ok := claims[nameClaimKey].(string); ok {
		sess.username = name
	} else if sub, ok := claims["sub"].(string); ok {
		sess.username = sub
	}
	if email, ok := claims[emailClaimKey].(string); ok {
		sess.email = email
	}
	return sess
}

// normalizeRoles folds the string-or-array role claim into a set: a single
// string becomes a one-element set, an array its full set, anything else the
// empty set. Downstream code never re-checks the claim's shape.
func normalizeRoles(claim any) map[string]struct{} {
	roles := make(map[string]struct{})
	switch v := claim.(type) {
	case string:
		roles[v] = struct{}{}
	case []any:
		for _, item := range v {
			if role, ok := item.(string); ok {
				roles[role] = struct{}{}
			}
		}
	}
	return roles
}

// IsAuthenticated reports whether a token has been decoded into this session.
func (s Session) IsAuthenticated() bool {
	return s.authenticated
}

// Username returns the display name claim, "" when unauthenticated.
func (s Session) Username() string {
	return s.username
}

// Email returns the email claim, "" when unauthenticated or absent.
func (s Session) Email() string {
	return s.email
}

// Roles returns the role set in sorted order.
func (s Session) Roles() []string {
	out := make([]string, 0, len(s.roles))
	for role := range s.roles {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}

// HasRole reports membership of one role name in the session's role set.
func (s Session) HasRole(role string) bool {
	_, ok := s.roles[role]
	return ok
}

// IsAdmin is the capability check used by the admin-only guard. Derived, never
// stored.
func (s Session) IsAdmin() bool {
	return s.HasRole(domain.RoleAdministrator)
}

// HasAnyRole reports whether the session's role set intersects required. An
// empty requirement is satisfied by any session.
func (s Session) HasAnyRole(required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, role := range required {
		if s.HasRole(role) {
			return true
		}
	}
	return false
}
