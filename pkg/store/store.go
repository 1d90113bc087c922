package store

import "fmt"

// Document represents a knowledge snippet returned by partition retrieval
type Document struct {
	ID              string                 `json:"id"`
	Score           float32                `json:"score"`
	Title           string                 `json:"title"`
	Content         string                 `json:"content"`
	SourcePartition string                 `json:"source_partition"`
	Metadata        map[string]interface{} `json:"metadata"`
}

// Session holds the active logging state for one (user, workout) pair.
// It is created implicitly on first reference and only removed by an
// explicit Clear.
type Session struct {
	UserID            string   `json:"user_id"`
	WorkoutID         string   `json:"workout_id"`
	CurrentExercise   string   `json:"current_exercise"`
	CurrentExerciseID string   `json:"current_exercise_id"`
	LastWeight        *float64 `json:"last_weight"`
	LastWeightUnit    string   `json:"last_weight_unit"`
	SetCount          int      `json:"set_count"`
}

// SessionKey builds the composite key for the session store
func SessionKey(userID, workoutID string) string {
	return fmt.Sprintf("%s:%s", userID, workoutID)
}
