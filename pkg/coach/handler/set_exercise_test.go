package handler

import (
	"context"
	"testing"

	"fitcoach-be/pkg/coach/classifier"

	"github.com/google/uuid"
)

func setExerciseRequest(userID uuid.UUID, exercise string) *Request {
	return &Request{
		UserID:  userID,
		Message: "switching to " + exercise,
		Classification: &classifier.ClassificationResult{
			Intent:      classifier.IntentSetExercise,
			Confidence:  0.85,
			Extracted:   classifier.ExtractedData{Exercise: exercise},
			UsedPattern: true,
		},
	}
}

func TestSetExerciseSwitchesSession(t *testing.T) {
	uow, logHandler, _, sessions, userID, workoutID := newWorkoutFixture(t)
	h := NewSetExerciseHandler(sessions)
	ctx := context.Background()

	res, err := h.Handle(ctx, uow, setExerciseRequest(userID, "bench"))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionExerciseSet {
		t.Errorf("Action = %q, want %q", res.Action, ActionExerciseSet)
	}

	session, found := sessions.Get(userID.String(), workoutID.String())
	if !found {
		t.Fatal("no session after switching exercise")
	}
	if session.CurrentExercise != "Bench Press" {
		t.Errorf("CurrentExercise = %q, want %q", session.CurrentExercise, "Bench Press")
	}
	if session.SetCount != 0 {
		t.Errorf("SetCount = %d, want 0", session.SetCount)
	}

	// A bare "100 kg for 5" now logs against the announced exercise.
	logRes, err := logHandler.Handle(ctx, uow, setLogRequest(userID, "100 kg for 5", classifier.ExtractedData{
		Weight: ptrF(100), WeightUnit: "kg", Reps: ptrI(5),
	}))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if logRes.Payload["set_number"] != 1 {
		t.Errorf("set number = %v, want 1", logRes.Payload["set_number"])
	}
	if len(uow.sets.created) != 1 {
		t.Fatalf("sets created = %d, want 1", len(uow.sets.created))
	}
}

func TestSetExerciseWithoutName(t *testing.T) {
	uow, _, _, sessions, userID, _ := newWorkoutFixture(t)
	h := NewSetExerciseHandler(sessions)

	res, err := h.Handle(context.Background(), uow, setExerciseRequest(userID, ""))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionNeedsExercise {
		t.Errorf("Action = %q, want %q", res.Action, ActionNeedsExercise)
	}
}

func TestSetExerciseWithoutWorkout(t *testing.T) {
	uow, _, _, sessions, userID, _ := newWorkoutFixture(t)
	uow.workouts.open = nil
	h := NewSetExerciseHandler(sessions)

	res, err := h.Handle(context.Background(), uow, setExerciseRequest(userID, "bench"))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionNeedsWorkout {
		t.Errorf("Action = %q, want %q", res.Action, ActionNeedsWorkout)
	}
}
