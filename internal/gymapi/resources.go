package gymapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gymcore/admin-console/internal/core/domain"
)

// Every resource follows the same upstream contract:
//
//	GET    /{resource}      -> JSON array
//	GET    /{resource}/{id} -> JSON object
//	POST   /{resource}      -> created object with server-assigned id
//	PUT    /{resource}/{id} -> no body
//	DELETE /{resource}/{id} -> no body

// --- Users ---

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user)
	return user, err
}

func (c *Client) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, http.MethodPost, "/users", req, &user)
	return user, err
}

func (c *Client) UpdateUser(ctx context.Context, id int, req domain.UpdateUserRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), req, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

// --- Memberships ---

func (c *Client) ListMemberships(ctx context.Context) ([]domain.Membership, error) {
	var memberships []domain.Membership
	if err := c.do(ctx, http.MethodGet, "/memberships", nil, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (c *Client) GetMembership(ctx context.Context, id int) (domain.Membership, error) {
	var membership domain.Membership
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/memberships/%d", id), nil, &membership)
	return membership, err
}

func (c *Client) CreateMembership(ctx context.Context, req domain.CreateMembershipRequest) (domain.Membership, error) {
	var membership domain.Membership
	err := c.do(ctx, http.MethodPost, "/memberships", req, &membership)
	return membership, err
}

func (c *Client) UpdateMembership(ctx context.Context, id int, req domain.UpdateMembershipRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/memberships/%d", id), req, nil)
}

func (c *Client) DeleteMembership(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/memberships/%d", id), nil, nil)
}

// --- Schedules ---

func (c *Client) ListSchedules(ctx context.Context) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	if err := c.do(ctx, http.MethodGet, "/schedules", nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (c *Client) GetSchedule(ctx context.Context, id int) (domain.Schedule, error) {
	var schedule domain.Schedule
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/schedules/%d", id), nil, &schedule)
	return schedule, err
}

func (c *Client) CreateSchedule(ctx context.Context, req domain.CreateScheduleRequest) (domain.Schedule, error) {
	var schedule domain.Schedule
	err := c.do(ctx, http.MethodPost, "/schedules", req, &schedule)
	return schedule, err
}

func (c *Client) UpdateSchedule(ctx context.Context, id int, req domain.UpdateScheduleRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/schedules/%d", id), req, nil)
}

func (c *Client) DeleteSchedule(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/schedules/%d", id), nil, nil)
}

// --- Exercises ---

func (c *Client) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	if err := c.do(ctx, http.MethodGet, "/exercises", nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *Client) GetExercise(ctx context.Context, id int) (domain.Exercise, error) {
	var exercise domain.Exercise
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/exercises/%d", id), nil, &exercise)
	return exercise, err
}

func (c *Client) CreateExercise(ctx context.Context, req domain.CreateExerciseRequest) (domain.Exercise, error) {
	var exercise domain.Exercise
	err := c.do(ctx, http.MethodPost, "/exercises", req, &exercise)
	return exercise, err
}

func (c *Client) UpdateExercise(ctx context.Context, id int, req domain.UpdateExerciseRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/exercises/%d", id), req, nil)
}

func (c *Client) DeleteExercise(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/exercises/%d", id), nil, nil)
}

// --- Auth ---

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResult struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. Credential verification is
// entirely the upstream server's concern.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var result loginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", loginPayload{Email: email, Password: password}, &result)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	return result.Token, nil
}
