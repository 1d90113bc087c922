package coach

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
	"fitcoach-be/pkg/coach/handler"
	"fitcoach-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	response string
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, nil
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.response, nil
}

type stubHandler struct {
	reply string
	err   error
}

func (s *stubHandler) Handle(ctx context.Context, uow unitofwork.UnitOfWork, req *handler.Request) (*handler.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &handler.Response{Reply: s.reply, Intent: req.Classification.Intent}, nil
}

type chatTurnRecorder struct {
	contract.ChatTurnRepository
	turns []*entity.ChatTurn
}

func (r *chatTurnRecorder) Create(ctx context.Context, turn *entity.ChatTurn) error {
	r.turns = append(r.turns, turn)
	return nil
}

func (r *chatTurnRecorder) FindRecent(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ChatTurn, error) {
	return nil, nil
}

type openWorkoutRepo struct {
	contract.WorkoutRepository
	open *entity.Workout
}

func (r *openWorkoutRepo) FindOpenByUserId(ctx context.Context, userId uuid.UUID) (*entity.Workout, error) {
	return r.open, nil
}

type singleExerciseRepo struct {
	contract.ExerciseRepository
	exercise *entity.Exercise
}

func (r *singleExerciseRepo) FindByExactName(ctx context.Context, name string) (*entity.Exercise, error) {
	if strings.EqualFold(name, r.exercise.Name) {
		return r.exercise, nil
	}
	return nil, nil
}

func (r *singleExerciseRepo) FindBySubstring(ctx context.Context, fragment string) (*entity.Exercise, error) {
	if strings.Contains(strings.ToLower(r.exercise.Name), strings.ToLower(fragment)) {
		return r.exercise, nil
	}
	return nil, nil
}

func (r *singleExerciseRepo) FindBySynonym(ctx context.Context, name string) (*entity.Exercise, error) {
	return nil, nil
}

type setRecorder struct {
	contract.LoggedSetRepository
	created []*entity.LoggedSet
}

func (r *setRecorder) Create(ctx context.Context, set *entity.LoggedSet) error {
	r.created = append(r.created, set)
	return nil
}

func (r *setRecorder) MaxEstimated1RM(ctx context.Context, userId, exerciseId uuid.UUID) (*float64, error) {
	return nil, nil
}

type turnUOW struct {
	unitofwork.UnitOfWork
	chatTurns *chatTurnRecorder
	workouts  *openWorkoutRepo
	exercises *singleExerciseRepo
	sets      *setRecorder
}

func (u *turnUOW) ChatTurnRepository() contract.ChatTurnRepository   { return u.chatTurns }
func (u *turnUOW) WorkoutRepository() contract.WorkoutRepository     { return u.workouts }
func (u *turnUOW) ExerciseRepository() contract.ExerciseRepository   { return u.exercises }
func (u *turnUOW) LoggedSetRepository() contract.LoggedSetRepository { return u.sets }

type staticFactory struct {
	uow *turnUOW
}

func (f *staticFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// newTurnFixture wires a full pipeline and registry around in-memory fakes.
// Every intent gets a canned handler except workout_log, which runs the real
// one so a turn exercises classification, dispatch and persistence together.
func newTurnFixture(t *testing.T) (*Coach, *turnUOW) {
	t.Helper()

	quiet := log.New(io.Discard, "", 0)

	uow := &turnUOW{
		chatTurns: &chatTurnRecorder{},
		workouts:  &openWorkoutRepo{open: &entity.Workout{Id: uuid.New()}},
		exercises: &singleExerciseRepo{exercise: &entity.Exercise{Id: uuid.New(), Name: "Bench Press"}},
		sets:      &setRecorder{},
	}

	handlers := make(map[classifier.Intent]handler.Handler)
	for _, intent := range classifier.AllIntents() {
		handlers[intent] = &stubHandler{reply: "canned " + string(intent)}
	}
	handlers[classifier.IntentWorkoutLog] = handler.NewWorkoutLogHandler(memory.NewSessionRepository(), nil, quiet)

	registry, err := handler.NewRegistry(handlers)
	require.NoError(t, err)

	pipeline := classifier.NewPipeline(
		classifier.NewPatternClassifier(),
		classifier.NewFallbackClassifier(&stubProvider{
			response: `{"intent": "general_fitness", "confidence": 0.6, "extracted_data": {}}`,
		}, quiet),
		quiet,
	)

	return New(pipeline, registry, &staticFactory{uow: uow}, quiet), uow
}

func TestProcessMessageGreeting(t *testing.T) {
	c, uow := newTurnFixture(t)
	userID := uuid.New()

	resp := c.ProcessMessage(context.Background(), userID, "hey coach", nil, "chat")
	require.NotNil(t, resp)
	assert.Equal(t, classifier.IntentGreeting, resp.Intent)
	assert.Equal(t, "canned greeting", resp.Reply)

	require.Len(t, uow.chatTurns.turns, 2)
	assert.Equal(t, "user", uow.chatTurns.turns[0].Role)
	assert.Equal(t, "hey coach", uow.chatTurns.turns[0].Content)
	assert.Equal(t, "coach", uow.chatTurns.turns[1].Role)
	assert.Equal(t, resp.Reply, uow.chatTurns.turns[1].Content)
}

func TestProcessMessageLogsSet(t *testing.T) {
	c, uow := newTurnFixture(t)
	userID := uuid.New()

	resp := c.ProcessMessage(context.Background(), userID, "bench 185 for 8", nil, "chat")
	require.NotNil(t, resp)
	assert.Equal(t, classifier.IntentWorkoutLog, resp.Intent)
	assert.Equal(t, handler.ActionSetLogged, resp.Action)

	require.Len(t, uow.sets.created, 1)
	logged := uow.sets.created[0]
	assert.Equal(t, userID, logged.UserId)
	assert.Equal(t, 8, logged.Reps)
	require.NotNil(t, logged.Weight)
	assert.Equal(t, 185.0, *logged.Weight)
	assert.Equal(t, "lbs", logged.WeightUnit)
	assert.Equal(t, "chat", logged.LoggingMethod)
	assert.Equal(t, "bench 185 for 8", logged.RawTranscript)
}

func TestProcessMessageHandlerFailureYieldsFallbackReply(t *testing.T) {
	c, _ := newTurnFixture(t)

	broken := &stubHandler{err: errors.New("storage down")}
	c.registry, _ = handler.NewRegistry(allIntentsWith(broken))

	resp := c.ProcessMessage(context.Background(), uuid.New(), "bench 185 for 8", nil, "chat")
	require.NotNil(t, resp)
	assert.Equal(t, fallbackReply, resp.Reply)
	assert.Equal(t, classifier.IntentWorkoutLog, resp.Intent)
}

func TestProcessMessageStreamChunksInOrder(t *testing.T) {
	c, _ := newTurnFixture(t)

	var chunks []string
	resp := c.ProcessMessageStream(context.Background(), uuid.New(), "hey coach", nil, "chat", func(chunk string) {
		chunks = append(chunks, chunk)
	})
	require.NotNil(t, resp)
	assert.NotEmpty(t, chunks)
	assert.Equal(t, resp.Reply, strings.Join(chunks, ""))
}

func allIntentsWith(h handler.Handler) map[classifier.Intent]handler.Handler {
	handlers := make(map[classifier.Intent]handler.Handler)
	for _, intent := range classifier.AllIntents() {
		handlers[intent] = h
	}
	return handlers
}
