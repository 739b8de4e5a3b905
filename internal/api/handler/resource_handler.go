package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gymcore/admin-console/internal/core/domain"
	"github.com/gymcore/admin-console/internal/core/ports"
	"github.com/gymcore/admin-console/internal/core/store"
)

// collectionResponse is the envelope returned by list and detail endpoints.
// On a failed refresh the last-known-good data is still served, with the
// store's pending failure message alongside, mirroring the console's
// "stale table plus dismissible notification" behavior.
type collectionResponse[R any] struct {
	Data  []R    `json:"data"`
	Error string `json:"error,omitempty"`
}

type recordResponse[R any] struct {
	Data  *R     `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// ResourceHandler serves one admin resource's CRUD surface from its store.
// All four resources share this shape; only the store binding differs.
type ResourceHandler[R, C, U any] struct {
	resource string
	store    *store.Store[R, C, U, int]
	audit    ports.AuditRepository
	log      zerolog.Logger
}

func NewResourceHandler[R, C, U any](resource string, s *store.Store[R, C, U, int], audit ports.AuditRepository, log zerolog.Logger) *ResourceHandler[R, C, U] {
	return &ResourceHandler[R, C, U]{resource: resource, store: s, audit: audit, log: log}
}

// Register wires the CRUD routes under the given group, e.g. /admin/users.
func (h *ResourceHandler[R, C, U]) Register(g *echo.Group, prefix string) {
	g.GET(prefix, h.List)
	g.GET(prefix+"/:id", h.Get)
	g.POST(prefix, h.Create)
	g.PUT(prefix+"/:id", h.Update)
	g.DELETE(prefix+"/:id", h.Delete)
}

func (h *ResourceHandler[R, C, U]) paramID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid identifier")
	}
	return id, nil
}

// record writes one audit entry for a successful mutation. Audit failures are
// logged, never surfaced: the mutation already happened upstream.
func (h *ResourceHandler[R, C, U]) record(c echo.Context, action, resourceID string) {
	sess, err := ctxSession(c)
	if err != nil {
		return
	}
	entry := domain.AuditEntry{
		Actor:      sess.Username(),
		Action:     action,
		Resource:   h.resource,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
	}
	if err := h.audit.Record(c.Request().Context(), entry); err != nil {
		h.log.Error().Err(err).Str("resource", h.resource).Str("action", action).Msg("audit record failed")
	}
}

// List refreshes the collection from upstream and serves it.
func (h *ResourceHandler[R, C, U]) List(c echo.Context) error {
	h.store.FetchAll(c.Request().Context())
	return c.JSON(http.StatusOK, collectionResponse[R]{
		Data:  h.store.Items(),
		Error: h.store.Err(),
	})
}

// Get loads one record into the selection slot and serves it.
func (h *ResourceHandler[R, C, U]) Get(c echo.Context) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}

	h.store.FetchOne(c.Request().Context(), id)
	if msg := h.store.Err(); msg != "" {
		return c.JSON(http.StatusBadGateway, recordResponse[R]{Error: msg})
	}
	selected, ok := h.store.Selected()
	if !ok {
		return domain.ErrNotFound
	}
	return c.JSON(http.StatusOK, recordResponse[R]{Data: &selected})
}

// Create submits a new record upstream and appends it to the collection.
func (h *ResourceHandler[R, C, U]) Create(c echo.Context) error {
	var req C
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !h.store.Create(c.Request().Context(), req) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": h.store.Err()})
	}

	h.record(c, "create", "")
	return c.JSON(http.StatusCreated, map[string]string{"status": "created"})
}

// Update mutates a record upstream; the store refetches the authoritative
// copy before patching its cache.
func (h *ResourceHandler[R, C, U]) Update(c echo.Context) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}

	var req U
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !h.store.Update(c.Request().Context(), id, req) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": h.store.Err()})
	}

	h.record(c, "update", strconv.Itoa(id))
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

// Delete removes a record upstream and from the collection.
func (h *ResourceHandler[R, C, U]) Delete(c echo.Context) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}

	if !h.store.Delete(c.Request().Context(), id) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": h.store.Err()})
	}

	h.record(c, "delete", strconv.Itoa(id))
	return c.NoContent(http.StatusNoContent)
}
