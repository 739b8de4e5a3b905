package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/gymcore/admin-console/internal/api/middleware"
	"github.com/gymcore/admin-console/internal/core/domain"
	"github.com/gymcore/admin-console/internal/core/session"
)

type stubAuthenticator struct {
	loginFn func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthenticator) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

type stubSessions struct {
	saved   map[string]string
	deleted []string
}

func newStubSessions() *stubSessions {
	return &stubSessions{saved: make(map[string]string)}
}

func (s *stubSessions) SetToken(_ context.Context, sid, token string) (session.Session, error) {
	s.saved[sid] = token
	return session.FromToken(token), nil
}

func (s *stubSessions) Logout(_ context.Context, sid string) error {
	s.deleted = append(s.deleted, sid)
	delete(s.saved, sid)
	return nil
}

func adminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"http://schemas.microsoft.com/ws/2008/06/identity/claims/role": "Administrator",
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name":   "alice",
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	token := adminToken(t)
	upstream := &stubAuthenticator{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "alice@gym.example" || password != "secret123" {
				t.Fatalf("unexpected credentials: %s", email)
			}
			return token, nil
		},
	}
	sessions := newStubSessions()
	handler := NewAuthHandler(upstream, sessions, 0, false)

	body := strings.NewReader(`{"email":"alice@gym.example","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice" {
		t.Fatalf("unexpected username: %v", resp["username"])
	}

	cookies := rec.Result().Cookies()
	var sid string
	for _, cookie := range cookies {
		if cookie.Name == middleware.SessionCookie {
			sid = cookie.Value
			if !cookie.HttpOnly {
				t.Fatalf("session cookie must be HttpOnly")
			}
		}
	}
	if sid == "" {
		t.Fatalf("session cookie not set")
	}
	if sessions.saved[sid] != token {
		t.Fatalf("credential not persisted under the cookie id")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	upstream := &stubAuthenticator{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(upstream, newStubSessions(), 0, false)

	body := strings.NewReader(`{"email":"alice@gym.example","password":"wrong-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if err == nil {
		t.Fatalf("expected error for rejected credentials")
	}
	e.HTTPErrorHandler(err, c)
	if rec.Code != http.StatusInternalServerError && rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected auth failure status, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MalformedPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthenticator{}, newStubSessions(), 0, false)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout_ErasesCredentialAndCookie(t *testing.T) {
	e := echo.New()
	sessions := newStubSessions()
	sessions.saved["sid-1"] = "token"
	handler := NewAuthHandler(&stubAuthenticator{}, sessions, 0, false)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "sid-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(sessions.deleted) != 1 || sessions.deleted[0] != "sid-1" {
		t.Fatalf("credential not erased: %v", sessions.deleted)
	}

	var expired bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie && cookie.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Fatalf("session cookie not expired")
	}
}
