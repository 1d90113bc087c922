package implementation

import (
	"context"
	"errors"

	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/mapper"
	"fitcoach-be/internal/model"
	"fitcoach-be/internal/repository/contract"
	"fitcoach-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WorkoutMapper
}

func NewWorkoutRepository(db *gorm.DB) contract.WorkoutRepository {
	return &WorkoutRepositoryImpl{
		db:     db,
		mapper: mapper.NewWorkoutMapper(),
	}
}

func (r *WorkoutRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WorkoutRepositoryImpl) Create(ctx context.Context, workout *entity.Workout) error {
	m := r.mapper.ToModel(workout)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*workout = *r.mapper.ToEntity(m)
	return nil
}

func (r *WorkoutRepositoryImpl) Update(ctx context.Context, workout *entity.Workout) error {
	m := r.mapper.ToModel(workout)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*workout = *r.mapper.ToEntity(m)
	return nil
}

func (r *WorkoutRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workout, error) {
	var m model.Workout
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WorkoutRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Workout, error) {
	var models []*model.Workout
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Workout, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *WorkoutRepositoryImpl) FindOpenByUserId(ctx context.Context, userId uuid.UUID) (*entity.Workout, error) {
	var m model.Workout
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Where("completed_at IS NULL").
		Order("started_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

type LoggedSetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LoggedSetMapper
}

func NewLoggedSetRepository(db *gorm.DB) contract.LoggedSetRepository {
	return &LoggedSetRepositoryImpl{
		db:     db,
		mapper: mapper.NewLoggedSetMapper(),
	}
}

func (r *LoggedSetRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LoggedSetRepositoryImpl) Create(ctx context.Context, set *entity.LoggedSet) error {
	m := r.mapper.ToModel(set)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*set = *r.mapper.ToEntity(m)
	return nil
}

func (r *LoggedSetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LoggedSet, error) {
	var models []*model.LoggedSet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.LoggedSet, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *LoggedSetRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.LoggedSet{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LoggedSetRepositoryImpl) MaxEstimated1RM(ctx context.Context, userId, exerciseId uuid.UUID) (*float64, error) {
	var best *float64
	err := r.db.WithContext(ctx).
		Model(&model.LoggedSet{}).
		Select("MAX(estimated_1rm)").
		Where("user_id = ?", userId).
		Where("exercise_id = ?", exerciseId).
		Scan(&best).Error
	if err != nil {
		return nil, err
	}
	return best, nil
}
