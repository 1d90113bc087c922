package unitofwork

import (
	"context"

	"fitcoach-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ExerciseRepository() contract.ExerciseRepository
	WorkoutRepository() contract.WorkoutRepository
	LoggedSetRepository() contract.LoggedSetRepository
	BenchmarkRepository() contract.BenchmarkRepository
	ProgramRepository() contract.ProgramRepository
	IntakeRepository() contract.IntakeRepository
	ChatTurnRepository() contract.ChatTurnRepository
	KnowledgeRepository() contract.KnowledgeRepository
}
