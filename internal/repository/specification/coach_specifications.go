package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByUserID filters by owning user
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByWorkoutID filters logged sets by workout
type ByWorkoutID struct {
	WorkoutID uuid.UUID
}

func (s ByWorkoutID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("workout_id = ?", s.WorkoutID)
}

// ByExerciseID filters logged sets by exercise
type ByExerciseID struct {
	ExerciseID uuid.UUID
}

func (s ByExerciseID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("exercise_id = ?", s.ExerciseID)
}

// ByName matches an exact name, case-insensitively
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(name) = ?", strings.ToLower(s.Name))
}

// ByPartition filters knowledge chunks by partition
type ByPartition struct {
	Partition string
}

func (s ByPartition) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("partition = ?", s.Partition)
}

// ByProgramType filters programs and intake responses
type ByProgramType struct {
	ProgramType string
}

func (s ByProgramType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("program_type = ?", s.ProgramType)
}

// OpenWorkouts keeps workouts that have not been completed yet
type OpenWorkouts struct{}

func (s OpenWorkouts) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("completed_at IS NULL")
}

// IncompleteIntake keeps intake responses still collecting answers
type IncompleteIntake struct{}

func (s IncompleteIntake) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("completed_at IS NULL")
}
