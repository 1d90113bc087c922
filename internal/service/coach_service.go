package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fitcoach-be/internal/constant"
	"fitcoach-be/internal/dto"
	"fitcoach-be/internal/repository/memory"
	"fitcoach-be/internal/repository/specification"
	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/pkg/coach"
	"fitcoach-be/pkg/coach/classifier"

	"github.com/google/uuid"
)

// ICoachService is the application boundary in front of the coach pipeline.
type ICoachService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendCoachMessageRequest) (*dto.SendCoachMessageResponse, error)
	SendMessageStream(ctx context.Context, userId uuid.UUID, req *dto.SendCoachMessageRequest, onChunk func(string)) (*dto.SendCoachMessageResponse, error)
	Classify(ctx context.Context, userId uuid.UUID, req *dto.ClassifyMessageRequest) (*dto.ClassifyMessageResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]dto.ChatTurnResponse, error)
	ClearSession(ctx context.Context, userId uuid.UUID, workoutId uuid.UUID) error
}

type coachService struct {
	coach       *coach.Coach
	pipeline    *classifier.Pipeline
	uowFactory  unitofwork.RepositoryFactory
	sessionRepo *memory.SessionRepository
	logger      *log.Logger
}

func NewCoachService(
	coachOrchestrator *coach.Coach,
	pipeline *classifier.Pipeline,
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
	logger *log.Logger,
) ICoachService {
	return &coachService{
		coach:       coachOrchestrator,
		pipeline:    pipeline,
		uowFactory:  uowFactory,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (s *coachService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendCoachMessageRequest) (*dto.SendCoachMessageResponse, error) {
	sctx, err := s.buildMessageContext(ctx, userId, req.WorkoutId)
	if err != nil {
		return nil, err
	}

	resp := s.coach.ProcessMessage(ctx, userId, req.Message, sctx, loggingMethod(req))

	return &dto.SendCoachMessageResponse{
		Reply:   resp.Reply,
		Intent:  string(resp.Intent),
		Action:  resp.Action,
		Payload: resp.Payload,
	}, nil
}

func (s *coachService) SendMessageStream(ctx context.Context, userId uuid.UUID, req *dto.SendCoachMessageRequest, onChunk func(string)) (*dto.SendCoachMessageResponse, error) {
	sctx, err := s.buildMessageContext(ctx, userId, req.WorkoutId)
	if err != nil {
		return nil, err
	}

	resp := s.coach.ProcessMessageStream(ctx, userId, req.Message, sctx, loggingMethod(req), onChunk)

	return &dto.SendCoachMessageResponse{
		Reply:   resp.Reply,
		Intent:  string(resp.Intent),
		Action:  resp.Action,
		Payload: resp.Payload,
	}, nil
}

// Classify exposes the fast pattern stage alone, used by clients that only
// need routing hints (e.g. showing a logging UI before the full reply).
func (s *coachService) Classify(ctx context.Context, userId uuid.UUID, req *dto.ClassifyMessageRequest) (*dto.ClassifyMessageResponse, error) {
	sctx, err := s.buildMessageContext(ctx, userId, nil)
	if err != nil {
		return nil, err
	}

	result := s.pipeline.Classify(ctx, req.Message, sctx)
	return &dto.ClassifyMessageResponse{
		Intent:      string(result.Intent),
		Confidence:  result.Confidence,
		UsedPattern: result.UsedPattern,
	}, nil
}

// GetHistory returns the user's recent turns, oldest first, ready for a
// transcript view.
func (s *coachService) GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]dto.ChatTurnResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	turns, err := uow.ChatTurnRepository().FindRecent(ctx, userId, limit)
	if err != nil {
		return nil, err
	}

	history := make([]dto.ChatTurnResponse, 0, len(turns))
	for i := len(turns) - 1; i >= 0; i-- {
		history = append(history, dto.ChatTurnResponse{
			Role:      turns[i].Role,
			Content:   turns[i].Content,
			Intent:    turns[i].Intent,
			CreatedAt: turns[i].CreatedAt,
		})
	}
	return history, nil
}

// ClearSession drops the logging session for a workout without completing
// the workout itself.
func (s *coachService) ClearSession(ctx context.Context, userId uuid.UUID, workoutId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workout, err := uow.WorkoutRepository().FindOne(ctx,
		specification.ByID{ID: workoutId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return err
	}
	if workout == nil {
		return fmt.Errorf("workout %s not found", workoutId)
	}

	s.sessionRepo.Clear(userId.String(), workoutId.String())
	return nil
}

// buildMessageContext assembles the session context the classifier and
// handlers read: user name, active workout, and the logging session state.
func (s *coachService) buildMessageContext(ctx context.Context, userId uuid.UUID, workoutId *uuid.UUID) (*classifier.MessageContext, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userId)
	}

	sctx := &classifier.MessageContext{UserName: user.Name}

	workout, err := uow.WorkoutRepository().FindOpenByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if workoutId != nil && (workout == nil || workout.Id != *workoutId) {
		// The client pinned a specific workout; trust it only if open.
		pinned, err := uow.WorkoutRepository().FindOne(ctx, specification.ByID{ID: *workoutId})
		if err != nil {
			return nil, err
		}
		if pinned != nil && pinned.IsOpen() {
			workout = pinned
		}
	}
	if workout == nil {
		return sctx, nil
	}

	sctx.ActiveWorkoutID = workout.Id.String()
	if session, found := s.sessionRepo.Get(userId.String(), workout.Id.String()); found {
		sctx.CurrentExercise = session.CurrentExercise
		sctx.CurrentExerciseID = session.CurrentExerciseID
		sctx.LastWeight = session.LastWeight
		sctx.LastWeightUnit = session.LastWeightUnit
	}
	return sctx, nil
}

func loggingMethod(req *dto.SendCoachMessageRequest) string {
	if req.LoggingMethod != "" {
		return req.LoggingMethod
	}
	return constant.LoggingMethodChat
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_coach.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-COACH] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
