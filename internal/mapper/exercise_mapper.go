package mapper

import (
	"fitcoach-be/internal/entity"
	"fitcoach-be/internal/model"
)

type ExerciseMapper struct{}

func NewExerciseMapper() *ExerciseMapper {
	return &ExerciseMapper{}
}

func (m *ExerciseMapper) ToEntity(e *model.Exercise) *entity.Exercise {
	if e == nil {
		return nil
	}

	return &entity.Exercise{
		Id:        e.Id,
		Name:      e.Name,
		BodyPart:  e.BodyPart,
		Equipment: e.Equipment,
		Synonyms:  []string(e.Synonyms),
		CreatedAt: e.CreatedAt,
	}
}

func (m *ExerciseMapper) ToModel(e *entity.Exercise) *model.Exercise {
	if e == nil {
		return nil
	}

	return &model.Exercise{
		Id:        e.Id,
		Name:      e.Name,
		BodyPart:  e.BodyPart,
		Equipment: e.Equipment,
		Synonyms:  e.Synonyms,
		CreatedAt: e.CreatedAt,
	}
}
