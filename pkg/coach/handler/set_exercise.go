package handler

import (
	"context"
	"fmt"

	"fitcoach-be/internal/repository/memory"
	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/coach/classifier"
	"fitcoach-be/pkg/store"
)

// SetExerciseHandler switches the session's current exercise without
// logging a set. Set numbering restarts at zero for the new exercise.
type SetExerciseHandler struct {
	sessions *memory.SessionRepository
}

func NewSetExerciseHandler(sessions *memory.SessionRepository) *SetExerciseHandler {
	return &SetExerciseHandler{sessions: sessions}
}

func (h *SetExerciseHandler) Handle(ctx context.Context, uow unitofwork.UnitOfWork, req *Request) (*Response, error) {
	data := req.Classification.Extracted

	if data.Exercise == "" {
		return &Response{
			Reply:  "Which exercise are you moving to?",
			Intent: classifier.IntentSetExercise,
			Action: ActionNeedsExercise,
		}, nil
	}

	workout, err := activeWorkout(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return &Response{
			Reply:  "Start a workout first, then tell me what you're lifting.",
			Intent: classifier.IntentSetExercise,
			Action: ActionNeedsWorkout,
		}, nil
	}

	exercise, err := ResolveExercise(ctx, uow, data.Exercise)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return &Response{
			Reply:  fmt.Sprintf("I couldn't find an exercise called %q. What's it usually called?", data.Exercise),
			Intent: classifier.IntentSetExercise,
			Action: ActionNeedsExercise,
		}, nil
	}

	h.sessions.Mutate(req.UserID.String(), workout.Id.String(), func(s *store.Session) {
		if exercise.Id.String() != s.CurrentExerciseID {
			s.CurrentExercise = exercise.Name
			s.CurrentExerciseID = exercise.Id.String()
			s.SetCount = 0
		}
	})

	return &Response{
		Reply:  fmt.Sprintf("On to %s. Tell me the weight and reps when you finish a set.", exercise.Name),
		Intent: classifier.IntentSetExercise,
		Action: ActionExerciseSet,
		Payload: map[string]interface{}{
			"exercise_id": exercise.Id.String(),
		},
	}, nil
}
