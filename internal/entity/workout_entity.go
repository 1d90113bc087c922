package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workout is the active log target sets are accumulated against
type Workout struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// IsOpen reports whether sets can still be logged against this workout
func (w *Workout) IsOpen() bool {
	return w.CompletedAt == nil
}

// LoggedSet is one persisted set of an exercise
type LoggedSet struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	WorkoutId     uuid.UUID
	ExerciseId    uuid.UUID
	Weight        *float64
	WeightUnit    string
	Reps          int
	RPE           *float64
	SetNumber     int
	Estimated1RM  *float64
	IsPR          bool
	LoggingMethod string // "chat" or "voice"
	RawTranscript string
	Confidence    float64
	CreatedAt     time.Time
}
