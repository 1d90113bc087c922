package contract

import (
	"context"

	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/specification"
)

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *entity.Exercise) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Exercise, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Exercise, error)

	// FindByExactName matches the canonical name case-insensitively.
	FindByExactName(ctx context.Context, name string) (*entity.Exercise, error)
	// FindBySubstring matches any exercise whose name contains the fragment.
	FindBySubstring(ctx context.Context, fragment string) (*entity.Exercise, error)
	// FindBySynonym matches against the synonym list.
	FindBySynonym(ctx context.Context, name string) (*entity.Exercise, error)
}
