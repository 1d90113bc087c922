package service

import (
	"context"
	"encoding/json"
	"fmt"

	"fitcoach-be/internal/dto"
	"fitcoach-be/internal/repository/specification"
	"fitcoach-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error
	GetLatestProgram(ctx context.Context, userId uuid.UUID, programType string) (*dto.ProgramResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userId)
	}

	return &dto.UserProfileResponse{
		Id:              user.Id,
		Name:            user.Name,
		Email:           user.Email,
		Goal:            user.Goal,
		ExperienceLevel: user.ExperienceLevel,
		BodyweightKg:    user.BodyweightKg,
		CreatedAt:       user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s not found", userId)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Goal != "" {
		user.Goal = req.Goal
	}
	if req.ExperienceLevel != "" {
		user.ExperienceLevel = req.ExperienceLevel
	}
	if req.BodyweightKg != nil {
		user.BodyweightKg = req.BodyweightKg
	}

	return uow.UserRepository().Update(ctx, user)
}

// GetLatestProgram returns the user's newest generated program, optionally
// filtered to one program type. Nil without error means none exists yet.
func (s *userService) GetLatestProgram(ctx context.Context, userId uuid.UUID, programType string) (*dto.ProgramResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	program, err := uow.ProgramRepository().FindLatestByUserId(ctx, userId, programType)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, nil
	}

	var structure interface{}
	if err := json.Unmarshal(program.Structure, &structure); err != nil {
		structure = string(program.Structure)
	}

	return &dto.ProgramResponse{
		Id:          program.Id,
		ProgramType: program.ProgramType,
		Weeks:       program.Weeks,
		Structure:   structure,
		CreatedAt:   program.CreatedAt,
	}, nil
}
