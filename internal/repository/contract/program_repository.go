package contract

import (
	"context"

	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProgramRepository interface {
	Create(ctx context.Context, program *entity.Program) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Program, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Program, error)
	// FindLatestByUserId returns the user's newest program. An empty
	// programType matches any type.
	FindLatestByUserId(ctx context.Context, userId uuid.UUID, programType string) (*entity.Program, error)
}

type IntakeRepository interface {
	Create(ctx context.Context, intake *entity.IntakeResponse) error
	Update(ctx context.Context, intake *entity.IntakeResponse) error
	// FindIncomplete returns the user's open questionnaire for a program type,
	// or nil when none is in progress.
	FindIncomplete(ctx context.Context, userId uuid.UUID, programType string) (*entity.IntakeResponse, error)
	// FindCompleted returns the user's most recently finished questionnaire
	// for a program type, or nil when none has been completed.
	FindCompleted(ctx context.Context, userId uuid.UUID, programType string) (*entity.IntakeResponse, error)
}
