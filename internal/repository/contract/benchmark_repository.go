package contract

import (
	"context"

	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BenchmarkRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BenchmarkWOD, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BenchmarkWOD, error)
	FindByName(ctx context.Context, name string) (*entity.BenchmarkWOD, error)

	CreateResult(ctx context.Context, result *entity.BenchmarkResult) error
	// BestResult returns the user's fastest recorded time for a benchmark,
	// or nil when they have never attempted it.
	BestResult(ctx context.Context, userId, benchmarkId uuid.UUID) (*entity.BenchmarkResult, error)
	ResultHistory(ctx context.Context, userId, benchmarkId uuid.UUID) ([]*entity.BenchmarkResult, error)
}
