package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gymcore/admin-console/internal/core/domain"
	"github.com/gymcore/admin-console/internal/core/session"
	"github.com/gymcore/admin-console/internal/core/store"
)

type stubAudit struct {
	entries []domain.AuditEntry
}

func (s *stubAudit) Record(_ context.Context, entry domain.AuditEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

// exerciseOps is an in-memory upstream for the exercise resource.
type exerciseOps struct {
	items     []domain.Exercise
	nextID    int
	createErr error
	updateErr error
}

func newExerciseOps(items ...domain.Exercise) *exerciseOps {
	return &exerciseOps{items: items, nextID: 100}
}

func (o *exerciseOps) operations() store.Operations[domain.Exercise, domain.CreateExerciseRequest, domain.UpdateExerciseRequest, int] {
	return store.Operations[domain.Exercise, domain.CreateExerciseRequest, domain.UpdateExerciseRequest, int]{
		List: func(ctx context.Context) ([]domain.Exercise, error) {
			return append([]domain.Exercise(nil), o.items...), nil
		},
		Get: func(ctx context.Context, id int) (domain.Exercise, error) {
			for _, item := range o.items {
				if item.ID == id {
					return item, nil
				}
			}
			return domain.Exercise{}, domain.ErrNotFound
		},
		Create: func(ctx context.Context, req domain.CreateExerciseRequest) (domain.Exercise, error) {
			if o.createErr != nil {
				return domain.Exercise{}, o.createErr
			}
			created := domain.Exercise{ID: o.nextID, Name: req.Name, MuscleGroup: req.MuscleGroup}
			o.nextID++
			o.items = append(o.items, created)
			return created, nil
		},
		Update: func(ctx context.Context, id int, req domain.UpdateExerciseRequest) error {
			if o.updateErr != nil {
				return o.updateErr
			}
			for i := range o.items {
				if o.items[i].ID == id {
					o.items[i].Name = req.Name
					o.items[i].MuscleGroup = req.MuscleGroup
					return nil
				}
			}
			return domain.ErrNotFound
		},
		Delete: func(ctx context.Context, id int) error {
			for i := range o.items {
				if o.items[i].ID == id {
					o.items = append(o.items[:i], o.items[i+1:]...)
					return nil
				}
			}
			return domain.ErrNotFound
		},
	}
}

func newExerciseHandler(ops *exerciseOps, audit *stubAudit) *ResourceHandler[domain.Exercise, domain.CreateExerciseRequest, domain.UpdateExerciseRequest] {
	s := store.New("exercises", func(e domain.Exercise) int { return e.ID }, ops.operations(), zerolog.Nop())
	return NewResourceHandler("exercises", s, audit, zerolog.Nop())
}

func adminContext(t *testing.T, e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", session.FromToken(adminToken(t)))
	return c, rec
}

func TestResourceHandler_ListServesCollection(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	ops := newExerciseOps(
		domain.Exercise{ID: 1, Name: "Squat", MuscleGroup: "Legs"},
		domain.Exercise{ID: 2, Name: "Bench Press", MuscleGroup: "Chest"},
	)
	handler := newExerciseHandler(ops, &stubAudit{})

	c, rec := adminContext(t, e, http.MethodGet, "/admin/exercises", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data  []domain.Exercise `json:"data"`
		Error string            `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].Name != "Squat" {
		t.Fatalf("unexpected collection: %+v", resp.Data)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error in envelope: %q", resp.Error)
	}
}

func TestResourceHandler_CreateAppendsAndAudits(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	ops := newExerciseOps()
	audit := &stubAudit{}
	handler := newExerciseHandler(ops, audit)

	c, rec := adminContext(t, e, http.MethodPost, "/admin/exercises", `{"name":"Deadlift","muscle_group":"Back"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(ops.items) != 1 || ops.items[0].ID != 100 {
		t.Fatalf("upstream create not issued: %+v", ops.items)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != "create" || audit.entries[0].Actor != "alice" {
		t.Fatalf("audit entry missing or wrong: %+v", audit.entries)
	}
}

func TestResourceHandler_CreateValidationRejects(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := newExerciseHandler(newExerciseOps(), &stubAudit{})

	c, _ := adminContext(t, e, http.MethodPost, "/admin/exercises", `{"name":""}`)
	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 validation error, got %v", err)
	}
}

func TestResourceHandler_CreateUpstreamFailure(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	ops := newExerciseOps()
	ops.createErr = errors.New("boom")
	audit := &stubAudit{}
	handler := newExerciseHandler(ops, audit)

	c, rec := adminContext(t, e, http.MethodPost, "/admin/exercises", `{"name":"Deadlift","muscle_group":"Back"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if len(audit.entries) != 0 {
		t.Fatalf("failed mutation must not be audited")
	}
}

func TestResourceHandler_UpdateConfirmsByRefetch(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	ops := newExerciseOps(domain.Exercise{ID: 7, Name: "Squat", MuscleGroup: "Legs"})
	audit := &stubAudit{}
	handler := newExerciseHandler(ops, audit)

	c, rec := adminContext(t, e, http.MethodPut, "/admin/exercises/7", `{"name":"Front Squat","muscle_group":"Legs"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ops.items[0].Name != "Front Squat" {
		t.Fatalf("upstream not updated: %+v", ops.items)
	}
	if len(audit.entries) != 1 || audit.entries[0].ResourceID != "7" {
		t.Fatalf("audit entry wrong: %+v", audit.entries)
	}
}

func TestResourceHandler_DeleteRemovesAndAudits(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	ops := newExerciseOps(domain.Exercise{ID: 5, Name: "Squat"})
	audit := &stubAudit{}
	handler := newExerciseHandler(ops, audit)

	c, rec := adminContext(t, e, http.MethodDelete, "/admin/exercises/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(ops.items) != 0 {
		t.Fatalf("record not removed upstream")
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != "delete" {
		t.Fatalf("audit entry wrong: %+v", audit.entries)
	}
}

func TestResourceHandler_BadIdentifier(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := newExerciseHandler(newExerciseOps(), &stubAudit{})

	c, _ := adminContext(t, e, http.MethodGet, "/admin/exercises/x", "")
	c.SetParamNames("id")
	c.SetParamValues("x")
	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
