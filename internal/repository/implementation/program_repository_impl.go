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

type ProgramRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgramMapper
}

func NewProgramRepository(db *gorm.DB) contract.ProgramRepository {
	return &ProgramRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgramMapper(),
	}
}

func (r *ProgramRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProgramRepositoryImpl) Create(ctx context.Context, program *entity.Program) error {
	m := r.mapper.ToModel(program)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*program = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProgramRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Program, error) {
	var m model.Program
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProgramRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Program, error) {
	var models []*model.Program
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Program, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ProgramRepositoryImpl) FindLatestByUserId(ctx context.Context, userId uuid.UUID, programType string) (*entity.Program, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userId)
	if programType != "" {
		query = query.Where("program_type = ?", programType)
	}

	var m model.Program
	err := query.Order("created_at DESC").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

type IntakeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgramMapper
}

func NewIntakeRepository(db *gorm.DB) contract.IntakeRepository {
	return &IntakeRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgramMapper(),
	}
}

func (r *IntakeRepositoryImpl) Create(ctx context.Context, intake *entity.IntakeResponse) error {
	m := r.mapper.IntakeToModel(intake)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*intake = *r.mapper.IntakeToEntity(m)
	return nil
}

func (r *IntakeRepositoryImpl) Update(ctx context.Context, intake *entity.IntakeResponse) error {
	m := r.mapper.IntakeToModel(intake)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*intake = *r.mapper.IntakeToEntity(m)
	return nil
}

func (r *IntakeRepositoryImpl) FindIncomplete(ctx context.Context, userId uuid.UUID, programType string) (*entity.IntakeResponse, error) {
	var m model.IntakeResponse
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Where("program_type = ?", programType).
		Where("completed_at IS NULL").
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.IntakeToEntity(&m), nil
}

func (r *IntakeRepositoryImpl) FindCompleted(ctx context.Context, userId uuid.UUID, programType string) (*entity.IntakeResponse, error) {
	var m model.IntakeResponse
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Where("program_type = ?", programType).
		Where("completed_at IS NOT NULL").
		Order("completed_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.IntakeToEntity(&m), nil
}
