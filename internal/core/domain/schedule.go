package domain

// Schedule is a recurring class slot on the weekly calendar.
type Schedule struct {
	ID        int    `json:"id"`
	ClassName string `json:"class_name"`
	Trainer   string `json:"trainer"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"` // "HH:MM", 24h
	EndTime   string `json:"end_time"`
	Capacity  int    `json:"capacity"`
}

type CreateScheduleRequest struct {
	ClassName string `json:"class_name"  validate:"required"`
	Trainer   string `json:"trainer"     validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time"  validate:"required"`
	EndTime   string `json:"end_time"    validate:"required"`
	Capacity  int    `json:"capacity"    validate:"required,gt=0"`
}

type UpdateScheduleRequest struct {
	ClassName string `json:"class_name"  validate:"required"`
	Trainer   string `json:"trainer"     validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time"  validate:"required"`
	EndTime   string `json:"end_time"    validate:"required"`
	Capacity  int    `json:"capacity"    validate:"required,gt=0"`
}
