package domain

// Exercise is a catalog entry trainers attach to workout plans.
type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	Description string `json:"description"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
}

type CreateExerciseRequest struct {
	Name        string `json:"name"         validate:"required"`
	MuscleGroup string `json:"muscle_group" validate:"required"`
	Description string `json:"description"`
	Sets        int    `json:"sets" validate:"gte=0"`
	Reps        int    `json:"reps" validate:"gte=0"`
}

type UpdateExerciseRequest struct {
	Name        string `json:"name"         validate:"required"`
	MuscleGroup string `json:"muscle_group" validate:"required"`
	Description string `json:"description"`
	Sets        int    `json:"sets" validate:"gte=0"`
	Reps        int    `json:"reps" validate:"gte=0"`
}
