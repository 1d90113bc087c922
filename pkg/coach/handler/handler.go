// Package handler contains one handler per coach intent. Handlers consume a
// classified message plus session state, perform their side effects, and
// build the conversational response.
package handler

import (
	"context"
	"fmt"

	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/coach/classifier"
	"fitcoach-be/pkg/llm"

	"github.com/google/uuid"
)

// Request is the per-turn input every handler receives.
type Request struct {
	UserID         uuid.UUID
	Message        string
	Classification *classifier.ClassificationResult
	Context        *classifier.MessageContext
	History        []llm.Message
	LoggingMethod  string // "chat" or "voice"
}

// Response is the typed result of a turn. Every failure path inside a
// handler still produces one of these; the user never sees a raw error.
type Response struct {
	Reply   string                 `json:"reply"`
	Intent  classifier.Intent      `json:"intent"`
	Action  string                 `json:"action,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// Actions set on Response.Action so clients can react without parsing the
// reply text.
const (
	ActionSetLogged      = "set_logged"
	ActionPRLogged       = "pr_logged"
	ActionWODLogged      = "wod_logged"
	ActionPBLogged       = "pb_logged"
	ActionExerciseSet    = "exercise_set"
	ActionNeedsReps      = "needs_reps"
	ActionNeedsExercise  = "needs_exercise"
	ActionNeedsWorkout   = "needs_workout"
	ActionIntakeQuestion = "intake_question"
	ActionProgramQueued  = "program_queued"
)

type Handler interface {
	Handle(ctx context.Context, uow unitofwork.UnitOfWork, req *Request) (*Response, error)
}

// Registry maps every intent to exactly one handler. Construction fails if
// any enumerated intent is left unmapped, so adding an intent without a
// handler is caught at startup rather than at dispatch time.
type Registry struct {
	handlers map[classifier.Intent]Handler
}

func NewRegistry(handlers map[classifier.Intent]Handler) (*Registry, error) {
	for _, intent := range classifier.AllIntents() {
		if _, ok := handlers[intent]; !ok {
			return nil, fmt.Errorf("no handler registered for intent %q", intent)
		}
	}
	return &Registry{handlers: handlers}, nil
}

func (r *Registry) Resolve(intent classifier.Intent) Handler {
	if h, ok := r.handlers[intent]; ok {
		return h
	}
	// Unknown intents (future values from the fallback classifier) land on
	// the general knowledge handler.
	return r.handlers[classifier.IntentGeneralFitness]
}
