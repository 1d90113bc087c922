package handler

import (
	"context"
	"fmt"
	"log"

	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/memory"
	"fitcoach-be/internal/repository/specification"
	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/coach/classifier"
	"fitcoach-be/pkg/events"
	"fitcoach-be/pkg/store"

	"github.com/google/uuid"
)

// EventPublisher is the slice of the event bus the logging handlers need.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// WorkoutLogHandler persists one set per turn against the user's open
// workout. It walks the states no-active-target, awaiting-exercise,
// awaiting-reps, logged; every halt before "logged" leaves both the session
// and the store untouched.
type WorkoutLogHandler struct {
	sessions  *memory.SessionRepository
	publisher EventPublisher
	logger    *log.Logger
}

func NewWorkoutLogHandler(sessions *memory.SessionRepository, publisher EventPublisher, logger *log.Logger) *WorkoutLogHandler {
	return &WorkoutLogHandler{
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
	}
}

func (h *WorkoutLogHandler) Handle(ctx context.Context, uow unitofwork.UnitOfWork, req *Request) (*Response, error) {
	data := req.Classification.Extracted

	workout, err := activeWorkout(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return &Response{
			Reply:  "You don't have a workout going right now. Start one and I'll log that set for you.",
			Intent: classifier.IntentWorkoutLog,
			Action: ActionNeedsWorkout,
		}, nil
	}

	// Resolve any named exercise before taking the session lock; the
	// disambiguation lookups must not extend the critical section.
	var named *entity.Exercise
	if data.Exercise != "" {
		named, err = ResolveExercise(ctx, uow, data.Exercise)
		if err != nil {
			return nil, err
		}
		if named == nil {
			return &Response{
				Reply:  fmt.Sprintf("I couldn't find an exercise called %q. What's it usually called?", data.Exercise),
				Intent: classifier.IntentWorkoutLog,
				Action: ActionNeedsExercise,
			}, nil
		}
	}

	userID := req.UserID.String()
	workoutID := workout.Id.String()

	// Peek without mutating: a halt for a missing exercise or reps must not
	// create or alter session state.
	current, _ := h.sessions.Get(userID, workoutID)
	if named == nil && (current == nil || current.CurrentExerciseID == "") {
		return &Response{
			Reply:  "Which exercise is that for?",
			Intent: classifier.IntentWorkoutLog,
			Action: ActionNeedsExercise,
		}, nil
	}

	if data.Reps == nil {
		return &Response{
			Reply:  "Nice — how many reps?",
			Intent: classifier.IntentWorkoutLog,
			Action: ActionNeedsReps,
		}, nil
	}
	reps := *data.Reps

	// Everything from set numbering through the PR write runs under the
	// per-session lock: two concurrent logs cannot read the same
	// pre-increment SetCount or mark PRs against the same stale maximum.
	var (
		setNumber  int
		exerciseID uuid.UUID
		exName     string
		weight     *float64
		weightUnit string
		isPR       bool
		estimated  *float64
		persistErr error
	)
	h.sessions.Mutate(userID, workoutID, func(s *store.Session) {
		// Any failure below restores this snapshot so a failed turn burns no
		// set number and leaves no half-applied exercise switch.
		snapshot := *s

		if named != nil && named.Id.String() != s.CurrentExerciseID {
			// Switching exercise restarts set numbering.
			s.CurrentExercise = named.Name
			s.CurrentExerciseID = named.Id.String()
			s.SetCount = 0
		}

		exerciseID, persistErr = uuid.Parse(s.CurrentExerciseID)
		if persistErr != nil {
			*s = snapshot
			return
		}
		exName = s.CurrentExercise

		weight, weightUnit = resolveWeight(req.Message, data, s)

		s.SetCount++
		setNumber = s.SetCount

		estimated = estimate1RM(weight, reps)
		if estimated != nil {
			var prior *float64
			prior, persistErr = uow.LoggedSetRepository().MaxEstimated1RM(ctx, req.UserID, exerciseID)
			if persistErr != nil {
				*s = snapshot
				return
			}
			// Matching the prior max is not a record; strictly greater only.
			isPR = prior != nil && *estimated > *prior
		}

		set := &entity.LoggedSet{
			UserId:        req.UserID,
			WorkoutId:     workout.Id,
			ExerciseId:    exerciseID,
			Weight:        weight,
			WeightUnit:    weightUnit,
			Reps:          reps,
			RPE:           data.RPE,
			SetNumber:     setNumber,
			Estimated1RM:  estimated,
			IsPR:          isPR,
			LoggingMethod: req.LoggingMethod,
			RawTranscript: req.Message,
			Confidence:    req.Classification.Confidence,
		}
		persistErr = uow.LoggedSetRepository().Create(ctx, set)
		if persistErr != nil {
			*s = snapshot
			return
		}

		if weight != nil {
			s.LastWeight = weight
			s.LastWeightUnit = weightUnit
		}
	})
	if persistErr != nil {
		return nil, persistErr
	}

	if h.publisher != nil {
		if err := h.publisher.Publish(ctx, events.NewSetLoggedEvent(userID, workoutID, exerciseID.String(), setNumber, isPR)); err != nil {
			h.logger.Printf("[WORKOUT_LOG] Failed to publish set event: %v", err)
		}
	}

	action := ActionSetLogged
	if isPR {
		action = ActionPRLogged
	}
	return &Response{
		Reply:  confirmSet(exName, weight, weightUnit, reps, setNumber, isPR),
		Intent: classifier.IntentWorkoutLog,
		Action: action,
		Payload: map[string]interface{}{
			"exercise_id": exerciseID.String(),
			"set_number":  setNumber,
			"is_pr":       isPR,
		},
	}, nil
}

// activeWorkout prefers the id carried in session context, falling back to
// the open-workout lookup.
func activeWorkout(ctx context.Context, uow unitofwork.UnitOfWork, req *Request) (*entity.Workout, error) {
	if req.Context != nil && req.Context.ActiveWorkoutID != "" {
		id, err := uuid.Parse(req.Context.ActiveWorkoutID)
		if err == nil {
			workout, err := uow.WorkoutRepository().FindOne(ctx, specification.ByID{ID: id})
			if err != nil {
				return nil, err
			}
			if workout != nil && workout.IsOpen() {
				return workout, nil
			}
		}
	}
	return uow.WorkoutRepository().FindOpenByUserId(ctx, req.UserID)
}

// ResolveExercise runs the exact-name, substring, synonym lookup chain.
// A nil result with nil error means "ask the user".
func ResolveExercise(ctx context.Context, uow unitofwork.UnitOfWork, name string) (*entity.Exercise, error) {
	repo := uow.ExerciseRepository()

	ex, err := repo.FindByExactName(ctx, name)
	if err != nil || ex != nil {
		return ex, err
	}
	ex, err = repo.FindBySubstring(ctx, name)
	if err != nil || ex != nil {
		return ex, err
	}
	return repo.FindBySynonym(ctx, name)
}

// resolveWeight applies the precedence: explicit number, then same-weight
// referent against session history, then absent.
func resolveWeight(message string, data classifier.ExtractedData, s *store.Session) (*float64, string) {
	if data.Weight != nil {
		return data.Weight, data.WeightUnit
	}
	if classifier.HasSameWeightReferent(message) && s.LastWeight != nil {
		return s.LastWeight, s.LastWeightUnit
	}
	return nil, ""
}

// estimate1RM is the Epley-style estimate; nil when no weight was given.
func estimate1RM(weight *float64, reps int) *float64 {
	if weight == nil {
		return nil
	}
	est := *weight * (1 + float64(reps)/30)
	return &est
}

func confirmSet(exercise string, weight *float64, unit string, reps, setNumber int, isPR bool) string {
	load := "bodyweight"
	if weight != nil {
		load = fmt.Sprintf("%g %s", *weight, unit)
	}
	if isPR {
		return fmt.Sprintf("PR alert! %s at %s for %d reps — set %d logged. That's a new best, huge work!",
			exercise, load, reps, setNumber)
	}
	return fmt.Sprintf("Logged: %s, %s for %d reps (set %d). Keep it moving!",
		exercise, load, reps, setNumber)
}
