package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartWorkoutRequest struct {
	Title string `json:"title" validate:"omitempty,max=255"`
}

type WorkoutResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type LoggedSetResponse struct {
	Id           uuid.UUID `json:"id"`
	ExerciseId   uuid.UUID `json:"exercise_id"`
	Weight       *float64  `json:"weight,omitempty"`
	WeightUnit   string    `json:"weight_unit,omitempty"`
	Reps         int       `json:"reps"`
	SetNumber    int       `json:"set_number"`
	Estimated1RM *float64  `json:"estimated_1rm,omitempty"`
	IsPR         bool      `json:"is_pr"`
	CreatedAt    time.Time `json:"created_at"`
}

type WorkoutDetailResponse struct {
	Workout WorkoutResponse     `json:"workout"`
	Sets    []LoggedSetResponse `json:"sets"`
}

// PublishGenerateProgramMessage is the payload queued for the async
// program generator.
type PublishGenerateProgramMessage struct {
	UserId      uuid.UUID `json:"user_id"`
	ProgramType string    `json:"program_type"`
	Answers     []byte    `json:"answers"`
}
