package events

import "time"

// Event type codes published by the coach core.
const (
	TypeSetLogged        = "COACH_SET_LOGGED"
	TypePBLogged         = "COACH_PB_LOGGED"
	TypeProgramRequested = "COACH_PROGRAM_REQUESTED"
	TypeProgramReady     = "COACH_PROGRAM_READY"
)

// NewSetLoggedEvent is emitted after a set is persisted, PR or not.
func NewSetLoggedEvent(userId, workoutId, exerciseId string, setNumber int, isPR bool) Event {
	return BaseEvent{
		Type: TypeSetLogged,
		Data: map[string]interface{}{
			"user_id":     userId,
			"workout_id":  workoutId,
			"exercise_id": exerciseId,
			"set_number":  setNumber,
			"is_pr":       isPR,
		},
		OccurredAt: time.Now(),
	}
}

// NewPBLoggedEvent is emitted when a benchmark attempt beats the stored best.
func NewPBLoggedEvent(userId, benchmarkId string, timeSeconds int, previousBest *int) Event {
	data := map[string]interface{}{
		"user_id":      userId,
		"benchmark_id": benchmarkId,
		"time_seconds": timeSeconds,
	}
	if previousBest != nil {
		data["previous_best_seconds"] = *previousBest
	}
	return BaseEvent{
		Type:       TypePBLogged,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

// NewProgramReadyEvent is emitted once a generated program is persisted, so
// connected clients can be told without polling.
func NewProgramReadyEvent(userId, programId, programType string, weeks int) Event {
	return BaseEvent{
		Type: TypeProgramReady,
		Data: map[string]interface{}{
			"user_id":      userId,
			"program_id":   programId,
			"program_type": programType,
			"weeks":        weeks,
		},
		OccurredAt: time.Now(),
	}
}

// NewProgramRequestedEvent hands a completed intake off to the async
// program generator.
func NewProgramRequestedEvent(userId, programType string, answers map[string]interface{}) Event {
	return BaseEvent{
		Type: TypeProgramRequested,
		Data: map[string]interface{}{
			"user_id":      userId,
			"program_type": programType,
			"answers":      answers,
		},
		OccurredAt: time.Now(),
	}
}
