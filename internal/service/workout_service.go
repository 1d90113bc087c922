package service

import (
	"context"
	"fmt"
	"time"

	"fitcoach-be/internal/dto"
	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/memory"
	"fitcoach-be/internal/repository/specification"
	"fitcoach-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWorkoutService interface {
	Start(ctx context.Context, userId uuid.UUID, req *dto.StartWorkoutRequest) (*dto.WorkoutResponse, error)
	Complete(ctx context.Context, userId uuid.UUID, workoutId uuid.UUID) (*dto.WorkoutResponse, error)
	GetActive(ctx context.Context, userId uuid.UUID) (*dto.WorkoutResponse, error)
	GetDetail(ctx context.Context, userId uuid.UUID, workoutId uuid.UUID) (*dto.WorkoutDetailResponse, error)
}

type workoutService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessionRepo *memory.SessionRepository
}

func NewWorkoutService(uowFactory unitofwork.RepositoryFactory, sessionRepo *memory.SessionRepository) IWorkoutService {
	return &workoutService{
		uowFactory:  uowFactory,
		sessionRepo: sessionRepo,
	}
}

func (s *workoutService) Start(ctx context.Context, userId uuid.UUID, req *dto.StartWorkoutRequest) (*dto.WorkoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// One open workout per user: starting while one is open resumes it.
	open, err := uow.WorkoutRepository().FindOpenByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return toWorkoutResponse(open), nil
	}

	title := req.Title
	if title == "" {
		title = "Workout " + time.Now().Format("Jan 2")
	}

	workout := &entity.Workout{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		StartedAt: time.Now(),
	}
	if err := uow.WorkoutRepository().Create(ctx, workout); err != nil {
		return nil, err
	}
	return toWorkoutResponse(workout), nil
}

func (s *workoutService) Complete(ctx context.Context, userId uuid.UUID, workoutId uuid.UUID) (*dto.WorkoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workout, err := uow.WorkoutRepository().FindOne(ctx,
		specification.ByID{ID: workoutId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, fmt.Errorf("workout %s not found", workoutId)
	}
	if workout.IsOpen() {
		now := time.Now()
		workout.CompletedAt = &now
		if err := uow.WorkoutRepository().Update(ctx, workout); err != nil {
			return nil, err
		}
		// Completing the workout is the explicit end of its logging session.
		s.sessionRepo.Clear(userId.String(), workoutId.String())
	}
	return toWorkoutResponse(workout), nil
}

func (s *workoutService) GetActive(ctx context.Context, userId uuid.UUID) (*dto.WorkoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workout, err := uow.WorkoutRepository().FindOpenByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, nil
	}
	return toWorkoutResponse(workout), nil
}

func (s *workoutService) GetDetail(ctx context.Context, userId uuid.UUID, workoutId uuid.UUID) (*dto.WorkoutDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workout, err := uow.WorkoutRepository().FindOne(ctx,
		specification.ByID{ID: workoutId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, fmt.Errorf("workout %s not found", workoutId)
	}

	sets, err := uow.LoggedSetRepository().FindAll(ctx,
		specification.ByWorkoutID{WorkoutID: workoutId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	detail := &dto.WorkoutDetailResponse{
		Workout: *toWorkoutResponse(workout),
		Sets:    make([]dto.LoggedSetResponse, len(sets)),
	}
	for i, set := range sets {
		detail.Sets[i] = dto.LoggedSetResponse{
			Id:           set.Id,
			ExerciseId:   set.ExerciseId,
			Weight:       set.Weight,
			WeightUnit:   set.WeightUnit,
			Reps:         set.Reps,
			SetNumber:    set.SetNumber,
			Estimated1RM: set.Estimated1RM,
			IsPR:         set.IsPR,
			CreatedAt:    set.CreatedAt,
		}
	}
	return detail, nil
}

func toWorkoutResponse(w *entity.Workout) *dto.WorkoutResponse {
	return &dto.WorkoutResponse{
		Id:          w.Id,
		Title:       w.Title,
		StartedAt:   w.StartedAt,
		CompletedAt: w.CompletedAt,
	}
}
