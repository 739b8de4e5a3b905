package store

import (
	"github.com/rs/zerolog"

	"github.com/gymcore/admin-console/internal/core/domain"
	"github.com/gymcore/admin-console/internal/gymapi"
)

// The four admin resources share one engine; each constructor only binds the
// typed API calls and the identifier extractor.

func NewUserStore(api *gymapi.Client, log zerolog.Logger) *Store[domain.User, domain.CreateUserRequest, domain.UpdateUserRequest, int] {
	return New("users", func(u domain.User) int { return u.ID }, Operations[domain.User, domain.CreateUserRequest, domain.UpdateUserRequest, int]{
		List:   api.ListUsers,
		Get:    api.GetUser,
		Create: api.CreateUser,
		Update: api.UpdateUser,
		Delete: api.DeleteUser,
	}, log)
}

func NewMembershipStore(api *gymapi.Client, log zerolog.Logger) *Store[domain.Membership, domain.CreateMembershipRequest, domain.UpdateMembershipRequest, int] {
	return New("memberships", func(m domain.Membership) int { return m.ID }, Operations[domain.Membership, domain.CreateMembershipRequest, domain.UpdateMembershipRequest, int]{
		List:   api.ListMemberships,
		Get:    api.GetMembership,
		Create: api.CreateMembership,
		Update: api.UpdateMembership,
		Delete: api.DeleteMembership,
	}, log)
}

func NewScheduleStore(api *gymapi.Client, log zerolog.Logger) *Store[domain.Schedule, domain.CreateScheduleRequest, domain.UpdateScheduleRequest, int] {
	return New("schedules", func(s domain.Schedule) int { return s.ID }, Operations[domain.Schedule, domain.CreateScheduleRequest, domain.UpdateScheduleRequest, int]{
		List:   api.ListSchedules,
		Get:    api.GetSchedule,
		Create: api.CreateSchedule,
		Update: api.UpdateSchedule,
		Delete: api.DeleteSchedule,
	}, log)
}

func NewExerciseStore(api *gymapi.Client, log zerolog.Logger) *Store[domain.Exercise, domain.CreateExerciseRequest, domain.UpdateExerciseRequest, int] {
	return New("exercises", func(e domain.Exercise) int { return e.ID }, Operations[domain.Exercise, domain.CreateExerciseRequest, domain.UpdateExerciseRequest, int]{
		List:   api.ListExercises,
		Get:    api.GetExercise,
		Create: api.CreateExercise,
		Update: api.UpdateExercise,
		Delete: api.DeleteExercise,
	}, log)
}
