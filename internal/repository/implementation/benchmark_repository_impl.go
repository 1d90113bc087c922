package implementation

import (
	"context"
	"errors"
	"strings"

	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/mapper"
	"fitcoach-be/internal/model"
	"fitcoach-be/internal/repository/contract"
	"fitcoach-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BenchmarkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BenchmarkMapper
}

func NewBenchmarkRepository(db *gorm.DB) contract.BenchmarkRepository {
	return &BenchmarkRepositoryImpl{
		db:     db,
		mapper: mapper.NewBenchmarkMapper(),
	}
}

func (r *BenchmarkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BenchmarkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BenchmarkWOD, error) {
	var m model.BenchmarkWOD
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BenchmarkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BenchmarkWOD, error) {
	var models []*model.BenchmarkWOD
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.BenchmarkWOD, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *BenchmarkRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.BenchmarkWOD, error) {
	var m model.BenchmarkWOD
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BenchmarkRepositoryImpl) CreateResult(ctx context.Context, result *entity.BenchmarkResult) error {
	m := r.mapper.ResultToModel(result)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*result = *r.mapper.ResultToEntity(m)
	return nil
}

func (r *BenchmarkRepositoryImpl) BestResult(ctx context.Context, userId, benchmarkId uuid.UUID) (*entity.BenchmarkResult, error) {
	var m model.BenchmarkResult
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Where("benchmark_id = ?", benchmarkId).
		Order("time_seconds ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ResultToEntity(&m), nil
}

func (r *BenchmarkRepositoryImpl) ResultHistory(ctx context.Context, userId, benchmarkId uuid.UUID) ([]*entity.BenchmarkResult, error) {
	var models []*model.BenchmarkResult
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Where("benchmark_id = ?", benchmarkId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	results := make([]*entity.BenchmarkResult, len(models))
	for i, m := range models {
		results[i] = r.mapper.ResultToEntity(m)
	}
	return results, nil
}
