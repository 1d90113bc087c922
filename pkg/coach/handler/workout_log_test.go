package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/contract"
	"fitcoach-be/internal/repository/memory"
	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/coach/classifier"
	"fitcoach-be/pkg/events"

	"github.com/google/uuid"
)

// Fakes embed the interface they fake; only the methods the handlers touch
// are overridden, anything else panics loudly.

type fakeWorkoutRepo struct {
	contract.WorkoutRepository
	open *entity.Workout
}

func (f *fakeWorkoutRepo) FindOpenByUserId(ctx context.Context, userId uuid.UUID) (*entity.Workout, error) {
	return f.open, nil
}

type fakeExerciseRepo struct {
	contract.ExerciseRepository
	byName    map[string]*entity.Exercise
	bySynonym map[string]*entity.Exercise
}

func (f *fakeExerciseRepo) FindByExactName(ctx context.Context, name string) (*entity.Exercise, error) {
	return f.byName[strings.ToLower(name)], nil
}

func (f *fakeExerciseRepo) FindBySubstring(ctx context.Context, fragment string) (*entity.Exercise, error) {
	for name, ex := range f.byName {
		if strings.Contains(name, strings.ToLower(fragment)) {
			return ex, nil
		}
	}
	return nil, nil
}

func (f *fakeExerciseRepo) FindBySynonym(ctx context.Context, name string) (*entity.Exercise, error) {
	return f.bySynonym[strings.ToLower(name)], nil
}

type fakeLoggedSetRepo struct {
	contract.LoggedSetRepository
	created []*entity.LoggedSet

	// One-shot failures, consumed by the next call.
	createErr error
	maxErr    error
}

func (f *fakeLoggedSetRepo) Create(ctx context.Context, set *entity.LoggedSet) error {
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return err
	}
	f.created = append(f.created, set)
	return nil
}

func (f *fakeLoggedSetRepo) MaxEstimated1RM(ctx context.Context, userId, exerciseId uuid.UUID) (*float64, error) {
	if f.maxErr != nil {
		err := f.maxErr
		f.maxErr = nil
		return nil, err
	}
	var max *float64
	for _, set := range f.created {
		if set.UserId != userId || set.ExerciseId != exerciseId || set.Estimated1RM == nil {
			continue
		}
		if max == nil || *set.Estimated1RM > *max {
			v := *set.Estimated1RM
			max = &v
		}
	}
	return max, nil
}

type fakeBenchmarkRepo struct {
	contract.BenchmarkRepository
	byName  map[string]*entity.BenchmarkWOD
	results []*entity.BenchmarkResult
}

func (f *fakeBenchmarkRepo) FindByName(ctx context.Context, name string) (*entity.BenchmarkWOD, error) {
	return f.byName[strings.ToLower(name)], nil
}

func (f *fakeBenchmarkRepo) BestResult(ctx context.Context, userId, benchmarkId uuid.UUID) (*entity.BenchmarkResult, error) {
	var best *entity.BenchmarkResult
	for _, r := range f.results {
		if r.UserId != userId || r.BenchmarkId != benchmarkId {
			continue
		}
		if best == nil || r.TimeSeconds < best.TimeSeconds {
			best = r
		}
	}
	return best, nil
}

func (f *fakeBenchmarkRepo) CreateResult(ctx context.Context, result *entity.BenchmarkResult) error {
	f.results = append(f.results, result)
	return nil
}

type fakeUOW struct {
	unitofwork.UnitOfWork
	workouts   *fakeWorkoutRepo
	exercises  *fakeExerciseRepo
	sets       *fakeLoggedSetRepo
	benchmarks *fakeBenchmarkRepo
	intakes    *fakeIntakeRepo
}

func (f *fakeUOW) WorkoutRepository() contract.WorkoutRepository     { return f.workouts }
func (f *fakeUOW) ExerciseRepository() contract.ExerciseRepository   { return f.exercises }
func (f *fakeUOW) LoggedSetRepository() contract.LoggedSetRepository { return f.sets }
func (f *fakeUOW) BenchmarkRepository() contract.BenchmarkRepository { return f.benchmarks }
func (f *fakeUOW) IntakeRepository() contract.IntakeRepository       { return f.intakes }

type fakePublisher struct {
	published []events.Event
}

func (f *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	f.published = append(f.published, event)
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func setLogRequest(userID uuid.UUID, message string, data classifier.ExtractedData) *Request {
	return &Request{
		UserID:  userID,
		Message: message,
		Classification: &classifier.ClassificationResult{
			Intent:      classifier.IntentWorkoutLog,
			Confidence:  0.85,
			Extracted:   data,
			UsedPattern: true,
		},
		LoggingMethod: "chat",
	}
}

func newWorkoutFixture(t *testing.T) (*fakeUOW, *WorkoutLogHandler, *fakePublisher, *memory.SessionRepository, uuid.UUID, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	bench := &entity.Exercise{Id: uuid.New(), Name: "Bench Press"}
	squat := &entity.Exercise{Id: uuid.New(), Name: "Back Squat"}

	uow := &fakeUOW{
		workouts: &fakeWorkoutRepo{open: &entity.Workout{Id: uuid.New(), UserId: userID}},
		exercises: &fakeExerciseRepo{
			byName: map[string]*entity.Exercise{
				"bench press": bench,
				"back squat":  squat,
			},
			bySynonym: map[string]*entity.Exercise{
				"bench": bench,
				"squat": squat,
			},
		},
		sets: &fakeLoggedSetRepo{},
	}
	sessions := memory.NewSessionRepository()
	publisher := &fakePublisher{}
	h := NewWorkoutLogHandler(sessions, publisher, quietLogger())
	return uow, h, publisher, sessions, userID, uow.workouts.open.Id
}

func TestWorkoutLogNoActiveWorkout(t *testing.T) {
	uow, h, _, _, userID, _ := newWorkoutFixture(t)
	uow.workouts.open = nil

	res, err := h.Handle(context.Background(), uow, setLogRequest(userID, "bench 185 for 8", classifier.ExtractedData{
		Exercise: "bench", Weight: ptrF(185), WeightUnit: "lbs", Reps: ptrI(8),
	}))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionNeedsWorkout {
		t.Errorf("Action = %q, want %q", res.Action, ActionNeedsWorkout)
	}
	if len(uow.sets.created) != 0 {
		t.Errorf("sets created = %d, want 0", len(uow.sets.created))
	}
}

func TestWorkoutLogUnknownExercise(t *testing.T) {
	uow, h, _, sessions, userID, workoutID := newWorkoutFixture(t)

	res, err := h.Handle(context.Background(), uow, setLogRequest(userID, "blorp 100 for 5", classifier.ExtractedData{
		Exercise: "blorp", Weight: ptrF(100), WeightUnit: "lbs", Reps: ptrI(5),
	}))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionNeedsExercise {
		t.Errorf("Action = %q, want %q", res.Action, ActionNeedsExercise)
	}
	if _, found := sessions.Get(userID.String(), workoutID.String()); found {
		t.Error("a halted turn must not create session state")
	}
}

func TestWorkoutLogNeedsReps(t *testing.T) {
	uow, h, _, sessions, userID, workoutID := newWorkoutFixture(t)

	res, err := h.Handle(context.Background(), uow, setLogRequest(userID, "bench 185", classifier.ExtractedData{
		Exercise: "bench", Weight: ptrF(185), WeightUnit: "lbs",
	}))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionNeedsReps {
		t.Errorf("Action = %q, want %q", res.Action, ActionNeedsReps)
	}
	if len(uow.sets.created) != 0 {
		t.Errorf("sets created = %d, want 0", len(uow.sets.created))
	}
	if _, found := sessions.Get(userID.String(), workoutID.String()); found {
		t.Error("a halted turn must not create session state")
	}
}

func TestWorkoutLogSetSequenceAndPRs(t *testing.T) {
	uow, h, publisher, _, userID, _ := newWorkoutFixture(t)
	ctx := context.Background()

	// Set 1: first ever set for the exercise is never a record.
	res, err := h.Handle(ctx, uow, setLogRequest(userID, "bench 100 kg for 5", classifier.ExtractedData{
		Exercise: "bench", Weight: ptrF(100), WeightUnit: "kg", Reps: ptrI(5),
	}))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionSetLogged {
		t.Errorf("set 1 Action = %q, want %q", res.Action, ActionSetLogged)
	}
	if res.Payload["set_number"] != 1 {
		t.Errorf("set 1 number = %v, want 1", res.Payload["set_number"])
	}

	// Set 2: heavier estimate beats the stored max.
	res, err = h.Handle(ctx, uow, setLogRequest(userID, "bench 110 kg for 5", classifier.ExtractedData{
		Exercise: "bench", Weight: ptrF(110), WeightUnit: "kg", Reps: ptrI(5),
	}))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionPRLogged {
		t.Errorf("set 2 Action = %q, want %q", res.Action, ActionPRLogged)
	}
	if res.Payload["set_number"] != 2 {
		t.Errorf("set 2 number = %v, want 2", res.Payload["set_number"])
	}

	// Set 3: matching the max exactly is not a new record.
	res, err = h.Handle(ctx, uow, setLogRequest(userID, "bench 110 kg for 5", classifier.ExtractedData{
		Exercise: "bench", Weight: ptrF(110), WeightUnit: "kg", Reps: ptrI(5),
	}))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionSetLogged {
		t.Errorf("set 3 Action = %q, want %q", res.Action, ActionSetLogged)
	}
	if res.Payload["set_number"] != 3 {
		t.Errorf("set 3 number = %v, want 3", res.Payload["set_number"])
	}

	if len(uow.sets.created) != 3 {
		t.Fatalf("sets created = %d, want 3", len(uow.sets.created))
	}
	if !uow.sets.created[1].IsPR || uow.sets.created[0].IsPR || uow.sets.created[2].IsPR {
		t.Error("only the second set should carry the PR flag")
	}
	if len(publisher.published) != 3 {
		t.Fatalf("events published = %d, want 3", len(publisher.published))
	}
	if publisher.published[0].EventType() != events.TypeSetLogged {
		t.Errorf("event type = %q, want %q", publisher.published[0].EventType(), events.TypeSetLogged)
	}
}

func TestWorkoutLogExerciseSwitchResetsSetCount(t *testing.T) {
	uow, h, _, _, userID, _ := newWorkoutFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := h.Handle(ctx, uow, setLogRequest(userID, "bench 100 kg for 5", classifier.ExtractedData{
			Exercise: "bench", Weight: ptrF(100), WeightUnit: "kg", Reps: ptrI(5),
		})); err != nil {
			t.Fatalf("Handle err = %v", err)
		}
	}

	res, err := h.Handle(ctx, uow, setLogRequest(userID, "squat 140 kg for 5", classifier.ExtractedData{
		Exercise: "squat", Weight: ptrF(140), WeightUnit: "kg", Reps: ptrI(5),
	}))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Payload["set_number"] != 1 {
		t.Errorf("set number after switch = %v, want 1", res.Payload["set_number"])
	}
}

func TestWorkoutLogSameWeightReferent(t *testing.T) {
	uow, h, _, _, userID, _ := newWorkoutFixture(t)
	ctx := context.Background()

	if _, err := h.Handle(ctx, uow, setLogRequest(userID, "bench 100 kg for 5", classifier.ExtractedData{
		Exercise: "bench", Weight: ptrF(100), WeightUnit: "kg", Reps: ptrI(5),
	})); err != nil {
		t.Fatalf("Handle err = %v", err)
	}

	res, err := h.Handle(ctx, uow, setLogRequest(userID, "same weight for 5", classifier.ExtractedData{
		Reps: ptrI(5),
	}))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionSetLogged {
		t.Errorf("Action = %q, want %q", res.Action, ActionSetLogged)
	}

	logged := uow.sets.created[1]
	if logged.Weight == nil || *logged.Weight != 100 || logged.WeightUnit != "kg" {
		t.Errorf("carried weight = %v %s, want 100 kg", logged.Weight, logged.WeightUnit)
	}
}

func TestWorkoutLogBodyweightSet(t *testing.T) {
	uow, h, _, _, userID, _ := newWorkoutFixture(t)

	res, err := h.Handle(context.Background(), uow, setLogRequest(userID, "bench for 12", classifier.ExtractedData{
		Exercise: "bench", Reps: ptrI(12),
	}))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionSetLogged {
		t.Errorf("Action = %q, want %q", res.Action, ActionSetLogged)
	}
	logged := uow.sets.created[0]
	if logged.Weight != nil {
		t.Errorf("Weight = %v, want nil for bodyweight", *logged.Weight)
	}
	if logged.Estimated1RM != nil {
		t.Errorf("Estimated1RM = %v, want nil without a load", *logged.Estimated1RM)
	}
	if !strings.Contains(res.Reply, "bodyweight") {
		t.Errorf("Reply = %q, want a bodyweight confirmation", res.Reply)
	}
}

func TestWorkoutLogFailedTurnBurnsNoSetNumber(t *testing.T) {
	uow, h, _, sessions, userID, workoutID := newWorkoutFixture(t)
	ctx := context.Background()

	uow.sets.maxErr = errors.New("store unavailable")
	if _, err := h.Handle(ctx, uow, setLogRequest(userID, "bench 100 kg for 5", classifier.ExtractedData{
		Exercise: "bench", Weight: ptrF(100), WeightUnit: "kg", Reps: ptrI(5),
	})); err == nil {
		t.Fatal("Handle err = nil, want the prior-max failure surfaced")
	}

	if s, found := sessions.Get(userID.String(), workoutID.String()); found {
		if s.SetCount != 0 || s.CurrentExerciseID != "" {
			t.Errorf("session after failed turn = count %d exercise %q, want untouched", s.SetCount, s.CurrentExerciseID)
		}
	}

	// The retry starts the sequence at 1.
	res, err := h.Handle(ctx, uow, setLogRequest(userID, "bench 100 kg for 5", classifier.ExtractedData{
		Exercise: "bench", Weight: ptrF(100), WeightUnit: "kg", Reps: ptrI(5),
	}))
	if err != nil {
		t.Fatalf("retry Handle err = %v", err)
	}
	if res.Payload["set_number"] != 1 {
		t.Errorf("retry set number = %v, want 1", res.Payload["set_number"])
	}
	if len(uow.sets.created) != 1 {
		t.Fatalf("persisted sets = %d, want 1", len(uow.sets.created))
	}
	if uow.sets.created[0].SetNumber != 1 {
		t.Errorf("persisted set number = %d, want 1", uow.sets.created[0].SetNumber)
	}
}

func TestWorkoutLogFailedWriteRollsBackExerciseSwitch(t *testing.T) {
	uow, h, _, sessions, userID, workoutID := newWorkoutFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := h.Handle(ctx, uow, setLogRequest(userID, "bench 100 kg for 5", classifier.ExtractedData{
			Exercise: "bench", Weight: ptrF(100), WeightUnit: "kg", Reps: ptrI(5),
		})); err != nil {
			t.Fatalf("Handle err = %v", err)
		}
	}

	uow.sets.createErr = errors.New("store unavailable")
	if _, err := h.Handle(ctx, uow, setLogRequest(userID, "squat 140 kg for 5", classifier.ExtractedData{
		Exercise: "squat", Weight: ptrF(140), WeightUnit: "kg", Reps: ptrI(5),
	})); err == nil {
		t.Fatal("Handle err = nil, want the write failure surfaced")
	}

	s, found := sessions.Get(userID.String(), workoutID.String())
	if !found {
		t.Fatal("session disappeared after failed turn")
	}
	if s.CurrentExercise != "Bench Press" || s.SetCount != 2 {
		t.Errorf("session after failed switch = %q count %d, want Bench Press count 2", s.CurrentExercise, s.SetCount)
	}

	res, err := h.Handle(ctx, uow, setLogRequest(userID, "bench 100 kg for 5", classifier.ExtractedData{
		Exercise: "bench", Weight: ptrF(100), WeightUnit: "kg", Reps: ptrI(5),
	}))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Payload["set_number"] != 3 {
		t.Errorf("set number after recovery = %v, want 3", res.Payload["set_number"])
	}
}

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }
