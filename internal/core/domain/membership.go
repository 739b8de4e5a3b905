package domain

import "time"

// MembershipType is a purchasable plan (e.g. "Monthly", "Annual").
type MembershipType struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
}

// Membership links a user to a membership type for a period of time.
// The *Display fields are rendered server-side (formatted price, duration and
// dates) and are carried verbatim so the console never re-formats them.
type Membership struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	UserName         string    `json:"user_name"`
	MembershipTypeID int       `json:"membership_type_id"`
	TypeName         string    `json:"type_name"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	IsActive         bool      `json:"is_active"`
	PriceDisplay     string    `json:"price_display"`
	DurationDisplay  string    `json:"duration_display"`
	StartDateDisplay string    `json:"start_date_display"`
	EndDateDisplay   string    `json:"end_date_display"`
}

// CreateMembershipRequest assigns a plan to a user. Start date defaults to
// "now" upstream when zero.
type CreateMembershipRequest struct {
	UserID           int       `json:"user_id"            validate:"required,gt=0"`
	MembershipTypeID int       `json:"membership_type_id" validate:"required,gt=0"`
	StartDate        time.Time `json:"start_date"`
}

// UpdateMembershipRequest changes the plan or validity window of an existing
// membership.
type UpdateMembershipRequest struct {
	MembershipTypeID int       `json:"membership_type_id" validate:"required,gt=0"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	IsActive         bool      `json:"is_active"`
}
