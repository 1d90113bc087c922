package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fitcoach-be/internal/constant"
	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/contract"
	"fitcoach-be/pkg/coach/classifier"

	"github.com/google/uuid"
)

type fakeIntakeRepo struct {
	contract.IntakeRepository
	incomplete *entity.IntakeResponse
	completed  *entity.IntakeResponse
	created    []*entity.IntakeResponse
	updated    []*entity.IntakeResponse
}

func (f *fakeIntakeRepo) Create(ctx context.Context, intake *entity.IntakeResponse) error {
	f.created = append(f.created, intake)
	return nil
}

func (f *fakeIntakeRepo) Update(ctx context.Context, intake *entity.IntakeResponse) error {
	f.updated = append(f.updated, intake)
	return nil
}

func (f *fakeIntakeRepo) FindIncomplete(ctx context.Context, userId uuid.UUID, programType string) (*entity.IntakeResponse, error) {
	return f.incomplete, nil
}

func (f *fakeIntakeRepo) FindCompleted(ctx context.Context, userId uuid.UUID, programType string) (*entity.IntakeResponse, error) {
	return f.completed, nil
}

type queuedGeneration struct {
	userId      uuid.UUID
	programType string
	answers     json.RawMessage
}

type fakeProgramQueue struct {
	queued []queuedGeneration
}

func (f *fakeProgramQueue) EnqueueGeneration(ctx context.Context, userId uuid.UUID, programType string, answers json.RawMessage) error {
	f.queued = append(f.queued, queuedGeneration{userId: userId, programType: programType, answers: answers})
	return nil
}

func programRequest(userID uuid.UUID, message string) *Request {
	return &Request{
		UserID:  userID,
		Message: message,
		Classification: &classifier.ClassificationResult{
			Intent:     classifier.IntentFullProgram,
			Confidence: 0.85,
		},
	}
}

func newProgramFixture(t *testing.T) (*fakeUOW, *ProgramHandler, *fakeProgramQueue, uuid.UUID) {
	t.Helper()
	uow := &fakeUOW{intakes: &fakeIntakeRepo{}}
	queue := &fakeProgramQueue{}
	h := NewFullProgramHandler(queue, quietLogger())
	return uow, h, queue, uuid.New()
}

func TestProgramFreshUserGetsFirstQuestion(t *testing.T) {
	uow, h, queue, userID := newProgramFixture(t)

	res, err := h.Handle(context.Background(), uow, programRequest(userID, "build me a program"))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionIntakeQuestion {
		t.Errorf("Action = %q, want %q", res.Action, ActionIntakeQuestion)
	}
	if res.Payload["next_field"] != "goal" {
		t.Errorf("next_field = %v, want goal", res.Payload["next_field"])
	}
	if len(uow.intakes.created) != 1 {
		t.Errorf("intakes created = %d, want 1", len(uow.intakes.created))
	}
	if len(queue.queued) != 0 {
		t.Errorf("generations queued = %d, want 0 before intake completes", len(queue.queued))
	}
}

func TestProgramCompletedIntakeQueuesFromStoredAnswers(t *testing.T) {
	uow, h, queue, userID := newProgramFixture(t)

	answers := json.RawMessage(`{"goal":"strength","days_per_week":"4","equipment":"full gym"}`)
	done := time.Now().Add(-24 * time.Hour)
	uow.intakes.completed = &entity.IntakeResponse{
		Id:          uuid.New(),
		UserId:      userID,
		ProgramType: constant.ProgramTypeStrength,
		Answers:     answers,
		CompletedAt: &done,
	}

	res, err := h.Handle(context.Background(), uow, programRequest(userID, "make me a new program"))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionProgramQueued {
		t.Errorf("Action = %q, want %q", res.Action, ActionProgramQueued)
	}
	if len(uow.intakes.created) != 0 {
		t.Errorf("intakes created = %d, want 0: completed intake must not restart the questionnaire", len(uow.intakes.created))
	}
	if len(queue.queued) != 1 {
		t.Fatalf("generations queued = %d, want 1", len(queue.queued))
	}
	q := queue.queued[0]
	if q.userId != userID || q.programType != constant.ProgramTypeStrength {
		t.Errorf("queued for %s/%s, want %s/%s", q.userId, q.programType, userID, constant.ProgramTypeStrength)
	}
	if string(q.answers) != string(answers) {
		t.Errorf("queued answers = %s, want the stored intake answers", q.answers)
	}
}

func TestProgramAnswerAdvancesQuestionnaire(t *testing.T) {
	uow, h, _, userID := newProgramFixture(t)

	uow.intakes.incomplete = &entity.IntakeResponse{
		Id:          uuid.New(),
		UserId:      userID,
		ProgramType: constant.ProgramTypeStrength,
		Answers:     json.RawMessage(`{}`),
		NextField:   "goal",
	}

	res, err := h.Handle(context.Background(), uow, programRequest(userID, "strength"))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionIntakeQuestion {
		t.Errorf("Action = %q, want %q", res.Action, ActionIntakeQuestion)
	}
	if res.Payload["next_field"] != "days_per_week" {
		t.Errorf("next_field = %v, want days_per_week", res.Payload["next_field"])
	}
	if len(uow.intakes.updated) != 1 {
		t.Fatalf("intakes updated = %d, want 1", len(uow.intakes.updated))
	}
	var recorded map[string]interface{}
	if err := json.Unmarshal(uow.intakes.updated[0].Answers, &recorded); err != nil {
		t.Fatalf("answers unmarshal err = %v", err)
	}
	if recorded["goal"] != "strength" {
		t.Errorf("recorded goal = %v, want strength", recorded["goal"])
	}
}

func TestProgramFinalAnswerCompletesAndQueues(t *testing.T) {
	uow, h, queue, userID := newProgramFixture(t)

	uow.intakes.incomplete = &entity.IntakeResponse{
		Id:          uuid.New(),
		UserId:      userID,
		ProgramType: constant.ProgramTypeStrength,
		Answers:     json.RawMessage(`{"goal":"strength","days_per_week":"4"}`),
		NextField:   "equipment",
	}

	res, err := h.Handle(context.Background(), uow, programRequest(userID, "barbell and a rack"))
	if err != nil {
		t.Fatalf("Handle err = %v", err)
	}
	if res.Action != ActionProgramQueued {
		t.Errorf("Action = %q, want %q", res.Action, ActionProgramQueued)
	}
	if len(uow.intakes.updated) != 1 {
		t.Fatalf("intakes updated = %d, want 1", len(uow.intakes.updated))
	}
	final := uow.intakes.updated[0]
	if final.CompletedAt == nil || final.NextField != "" {
		t.Errorf("intake not closed: CompletedAt=%v NextField=%q", final.CompletedAt, final.NextField)
	}
	if len(queue.queued) != 1 {
		t.Fatalf("generations queued = %d, want 1", len(queue.queued))
	}
	var answers map[string]interface{}
	if err := json.Unmarshal(queue.queued[0].answers, &answers); err != nil {
		t.Fatalf("answers unmarshal err = %v", err)
	}
	if answers["equipment"] != "barbell and a rack" {
		t.Errorf("queued equipment = %v, want the final answer", answers["equipment"])
	}
}
