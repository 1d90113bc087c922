package contract

import (
	"context"

	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WorkoutRepository interface {
	Create(ctx context.Context, workout *entity.Workout) error
	Update(ctx context.Context, workout *entity.Workout) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workout, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Workout, error)

	// FindOpenByUserId returns the user's active workout, or nil when none is open.
	FindOpenByUserId(ctx context.Context, userId uuid.UUID) (*entity.Workout, error)
}

type LoggedSetRepository interface {
	Create(ctx context.Context, set *entity.LoggedSet) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LoggedSet, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// MaxEstimated1RM returns the user's best estimated one-rep max for an
	// exercise across all history, or nil when no prior sets exist.
	MaxEstimated1RM(ctx context.Context, userId, exerciseId uuid.UUID) (*float64, error)
}
