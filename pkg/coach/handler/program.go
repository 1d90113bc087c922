package handler

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fitcoach-be/internal/constant"
	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/coach/classifier"

	"github.com/google/uuid"
)

// ProgramQueue hands a completed intake off to the asynchronous program
// generator.
type ProgramQueue interface {
	EnqueueGeneration(ctx context.Context, userId uuid.UUID, programType string, answers json.RawMessage) error
}

// intakeField is one question of the program questionnaire.
type intakeField struct {
	Name     string
	Question string
}

// Intake sequences per program type, asked strictly in order.
var intakeSequences = map[string][]intakeField{
	constant.ProgramTypeStrength: {
		{Name: "goal", Question: "What's the main goal — strength, muscle, or general fitness?"},
		{Name: "days_per_week", Question: "How many days a week can you train?"},
		{Name: "equipment", Question: "What equipment do you have access to?"},
	},
	constant.ProgramTypeRunning: {
		{Name: "race_distance", Question: "What distance are you training for?"},
		{Name: "weekly_mileage", Question: "What's your current weekly mileage?"},
		{Name: "days_per_week", Question: "How many days a week can you run?"},
	},
}

// ProgramHandler drives full_program and running_program turns. With a
// completed intake it queues generation; otherwise it advances the
// questionnaire one structured question at a time.
type ProgramHandler struct {
	programType string
	intent      classifier.Intent
	queue       ProgramQueue
	logger      *log.Logger
}

func NewFullProgramHandler(queue ProgramQueue, logger *log.Logger) *ProgramHandler {
	return &ProgramHandler{
		programType: constant.ProgramTypeStrength,
		intent:      classifier.IntentFullProgram,
		queue:       queue,
		logger:      logger,
	}
}

func NewRunningProgramHandler(queue ProgramQueue, logger *log.Logger) *ProgramHandler {
	return &ProgramHandler{
		programType: constant.ProgramTypeRunning,
		intent:      classifier.IntentRunningProgram,
		queue:       queue,
		logger:      logger,
	}
}

func (h *ProgramHandler) Handle(ctx context.Context, uow unitofwork.UnitOfWork, req *Request) (*Response, error) {
	intake, err := uow.IntakeRepository().FindIncomplete(ctx, req.UserID, h.programType)
	if err != nil {
		return nil, err
	}

	fields := intakeSequences[h.programType]

	if intake == nil {
		// No questionnaire in flight. A user who already finished intake gets
		// a fresh program from their stored answers instead of redoing it.
		completed, err := uow.IntakeRepository().FindCompleted(ctx, req.UserID, h.programType)
		if err != nil {
			return nil, err
		}
		if completed != nil {
			return h.queueGeneration(ctx, req.UserID, completed.Answers)
		}

		// First-time request: open the questionnaire with its first question.
		first := fields[0]
		intake = &entity.IntakeResponse{
			Id:          uuid.New(),
			UserId:      req.UserID,
			ProgramType: h.programType,
			Answers:     json.RawMessage(`{}`),
			NextField:   first.Name,
		}
		if err := uow.IntakeRepository().Create(ctx, intake); err != nil {
			return nil, err
		}
		return h.askQuestion(first), nil
	}

	// In-progress questionnaire: record this message as the answer to the
	// pending field, then ask the next or queue generation.
	answers := map[string]interface{}{}
	if len(intake.Answers) > 0 {
		if err := json.Unmarshal(intake.Answers, &answers); err != nil {
			h.logger.Printf("[PROGRAM] Resetting corrupt intake answers for %s: %v", intake.Id, err)
			answers = map[string]interface{}{}
		}
	}
	answers[intake.NextField] = req.Message

	next := nextField(fields, intake.NextField)

	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	intake.Answers = raw

	if next != nil {
		intake.NextField = next.Name
		if err := uow.IntakeRepository().Update(ctx, intake); err != nil {
			return nil, err
		}
		return h.askQuestion(*next), nil
	}

	now := time.Now()
	intake.NextField = ""
	intake.CompletedAt = &now
	if err := uow.IntakeRepository().Update(ctx, intake); err != nil {
		return nil, err
	}

	return h.queueGeneration(ctx, req.UserID, intake.Answers)
}

func (h *ProgramHandler) queueGeneration(ctx context.Context, userId uuid.UUID, answers json.RawMessage) (*Response, error) {
	if err := h.queue.EnqueueGeneration(ctx, userId, h.programType, answers); err != nil {
		return nil, err
	}

	return &Response{
		Reply:  "That's everything I need. I'm building your program now — it'll show up in a moment.",
		Intent: h.intent,
		Action: ActionProgramQueued,
		Payload: map[string]interface{}{
			"program_type": h.programType,
		},
	}, nil
}

func (h *ProgramHandler) askQuestion(field intakeField) *Response {
	return &Response{
		Reply:  field.Question,
		Intent: h.intent,
		Action: ActionIntakeQuestion,
		Payload: map[string]interface{}{
			"program_type": h.programType,
			"next_field":   field.Name,
		},
	}
}

func nextField(fields []intakeField, current string) *intakeField {
	for i, f := range fields {
		if f.Name == current && i+1 < len(fields) {
			return &fields[i+1]
		}
	}
	return nil
}
