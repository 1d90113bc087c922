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

	"gorm.io/gorm"
)

type ExerciseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ExerciseMapper
}

func NewExerciseRepository(db *gorm.DB) contract.ExerciseRepository {
	return &ExerciseRepositoryImpl{
		db:     db,
		mapper: mapper.NewExerciseMapper(),
	}
}

func (r *ExerciseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExerciseRepositoryImpl) Create(ctx context.Context, exercise *entity.Exercise) error {
	m := r.mapper.ToModel(exercise)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*exercise = *r.mapper.ToEntity(m)
	return nil
}

func (r *ExerciseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Exercise, error) {
	var m model.Exercise
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ExerciseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Exercise, error) {
	var models []*model.Exercise
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Exercise, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ExerciseRepositoryImpl) FindByExactName(ctx context.Context, name string) (*entity.Exercise, error) {
	var m model.Exercise
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

func (r *ExerciseRepositoryImpl) FindBySubstring(ctx context.Context, fragment string) (*entity.Exercise, error) {
	var m model.Exercise
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+fragment+"%").
		Order("LENGTH(name) ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ExerciseRepositoryImpl) FindBySynonym(ctx context.Context, name string) (*entity.Exercise, error) {
	var m model.Exercise
	err := r.db.WithContext(ctx).
		Where("? = ANY(synonyms)", strings.ToLower(name)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
